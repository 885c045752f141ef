package inventory

import (
	"embed"
	"html/template"
	"it-inventory/rest"
	"it-inventory/server"
	"it-inventory/vocabulary"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//go:embed templates/index.html
var templates embed.FS

var index = template.Must(template.ParseFS(templates, "templates/index.html"))

// InitResource serves the landing page relative to the server root.
func InitResource(db *gorm.DB, v vocabulary.Model, alertDays int) server.RouteInitializer {
	return func(router *mux.Router, l logrus.FieldLogger) {
		register := rest.RegisterHandler(l)
		router.HandleFunc("/", register("get_index", handleGetIndex(db, v, alertDays))).Methods(http.MethodGet)
	}
}

type activityView struct {
	Timestamp string
	Action    string
	AssetCode string
	Details   string
	User      string
}

type bucketView struct {
	Key   string
	Count int
}

type indexView struct {
	Total          int
	Active         int
	Maintenance    int
	Broken         int
	WarrantyAlerts int
	AlertDays      int
	Categories     []bucketView
	Recent         []activityView
}

func handleGetIndex(db *gorm.DB, v vocabulary.Model, alertDays int) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			o, err := NewProcessor(d.Logger(), d.Context(), db).WithVocabulary(v, alertDays).GetOverview()
			if err != nil {
				d.Logger().WithError(err).Errorf("Building inventory overview.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			view := indexView{
				Total:          o.Stats().Total(),
				Active:         o.Stats().Active(),
				Maintenance:    o.Stats().Maintenance(),
				Broken:         o.Stats().Broken(),
				WarrantyAlerts: o.Stats().WarrantyAlerts(),
				AlertDays:      alertDays,
			}
			for _, b := range o.Charts().Category() {
				view.Categories = append(view.Categories, bucketView{Key: b.Key, Count: b.Count})
			}
			for _, a := range o.Recent() {
				view.Recent = append(view.Recent, activityView{
					Timestamp: a.Timestamp().UTC().Format("2006-01-02 15:04"),
					Action:    string(a.Action()),
					AssetCode: a.AssetCode(),
					Details:   a.Details(),
					User:      a.User(),
				})
			}

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err = index.Execute(w, view); err != nil {
				d.Logger().WithError(err).Errorf("Rendering landing page.")
			}
		}
	}
}
