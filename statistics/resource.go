package statistics

import (
	"it-inventory/asset"
	"it-inventory/model"
	"it-inventory/rest"
	"it-inventory/server"
	"it-inventory/vocabulary"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(db *gorm.DB, v vocabulary.Model, alertDays int) server.RouteInitializer {
	return func(router *mux.Router, l logrus.FieldLogger) {
		register := rest.RegisterHandler(l)
		router.HandleFunc("/stats", register("get_stats", handleGetStats(db, v, alertDays))).Methods(http.MethodGet)
		router.HandleFunc("/charts", register("get_charts", handleGetCharts(db, v, alertDays))).Methods(http.MethodGet)
		router.HandleFunc("/stats/warranty", register("get_warranty_alerts", handleGetWarrantyAlerts(db, v, alertDays))).Methods(http.MethodGet)
	}
}

// InitDashboard serves the rendered chart page relative to the server root.
func InitDashboard(db *gorm.DB, v vocabulary.Model, alertDays int) server.RouteInitializer {
	return func(router *mux.Router, l logrus.FieldLogger) {
		register := rest.RegisterHandler(l)
		router.HandleFunc("/dashboard", register("get_dashboard", handleGetDashboard(db, v, alertDays))).Methods(http.MethodGet)
	}
}

func processor(d *rest.HandlerDependency, db *gorm.DB, v vocabulary.Model, alertDays int) *Processor {
	return NewProcessor(d.Logger(), d.Context(), db).WithVocabulary(v).WithAlertDays(alertDays)
}

func handleGetStats(db *gorm.DB, v vocabulary.Model, alertDays int) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rm, err := model.Map(TransformStats)(processor(d, db, v, alertDays).StatsProvider())()
			if err != nil {
				d.Logger().WithError(err).Errorf("Computing asset statistics.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.MarshalResponse[StatsRestModel](d.Logger())(w)(http.StatusOK)(rm)
		}
	}
}

func handleGetCharts(db *gorm.DB, v vocabulary.Model, alertDays int) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rm, err := model.Map(TransformCharts)(processor(d, db, v, alertDays).ChartsProvider())()
			if err != nil {
				d.Logger().WithError(err).Errorf("Computing chart data.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.MarshalResponse[ChartsRestModel](d.Logger())(w)(http.StatusOK)(rm)
		}
	}
}

func handleGetWarrantyAlerts(db *gorm.DB, v vocabulary.Model, alertDays int) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rm, err := model.SliceMap(asset.Transform)(processor(d, db, v, alertDays).ExpiringProvider())()
			if err != nil {
				d.Logger().WithError(err).Errorf("Listing warranty alerts.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if rm == nil {
				rm = []asset.RestModel{}
			}
			rest.MarshalResponse[[]asset.RestModel](d.Logger())(w)(http.StatusOK)(rm)
		}
	}
}

func handleGetDashboard(db *gorm.DB, v vocabulary.Model, alertDays int) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			p := processor(d, db, v, alertDays)
			s, err := p.GetStats()
			if err != nil {
				d.Logger().WithError(err).Errorf("Computing asset statistics.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			ch, err := p.GetCharts()
			if err != nil {
				d.Logger().WithError(err).Errorf("Computing chart data.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err = RenderDashboard(w, s, ch); err != nil {
				d.Logger().WithError(err).Errorf("Rendering dashboard.")
			}
		}
	}
}
