package asset

import (
	"errors"
	"it-inventory/model"
	"it-inventory/rest"
	"it-inventory/server"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(db *gorm.DB) server.RouteInitializer {
	return func(router *mux.Router, l logrus.FieldLogger) {
		register := rest.RegisterHandler(l)
		registerInput := rest.RegisterInputHandler[InputRestModel](l)
		r := router.PathPrefix("/assets").Subrouter()
		r.HandleFunc("", register("get_assets", handleGetAssets(db))).Methods(http.MethodGet)
		r.HandleFunc("", registerInput("create_asset", handleCreateAsset(db))).Methods(http.MethodPost)
		r.HandleFunc("/{assetId}", register("get_asset", handleGetAsset(db))).Methods(http.MethodGet)
		r.HandleFunc("/{assetId}", registerInput("update_asset", handleUpdateAsset(db))).Methods(http.MethodPut)
		r.HandleFunc("/{assetId}", register("delete_asset", handleDeleteAsset(db))).Methods(http.MethodDelete)
	}
}

// FilterFromRequest reads search, category and status query parameters. An absent category or
// status does not filter.
func FilterFromRequest(r *http.Request) Filter {
	q := r.URL.Query()
	f := Filter{Search: q.Get("search"), Category: FilterAll, Status: FilterAll}
	if q.Has("category") {
		f.Category = q.Get("category")
	}
	if q.Has("status") {
		f.Status = q.Get("status")
	}
	return f
}

func handleGetAssets(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f := FilterFromRequest(r)
			rm, err := model.SliceMap(Transform)(NewProcessor(d.Logger(), d.Context(), db).SearchProvider(f))()
			if err != nil {
				WriteError(d.Logger(), w, err)
				return
			}
			rest.MarshalResponse[[]RestModel](d.Logger())(w)(http.StatusOK)(rm)
		}
	}
}

func handleGetAsset(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseAssetId(d.Logger(), func(assetId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				rm, err := model.Map(Transform)(NewProcessor(d.Logger(), d.Context(), db).ByIdProvider(assetId))()
				if err != nil {
					WriteError(d.Logger(), w, err)
					return
				}
				rest.MarshalResponse[RestModel](d.Logger())(w)(http.StatusOK)(rm)
			}
		})
	}
}

func handleCreateAsset(db *gorm.DB) rest.InputHandler[InputRestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input InputRestModel) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f, err := Extract(input)
			if err != nil {
				WriteError(d.Logger(), w, err)
				return
			}
			m, err := NewProcessor(d.Logger(), d.Context(), db).CreateAndEmit(uuid.New(), f)
			if err != nil {
				WriteError(d.Logger(), w, err)
				return
			}
			respond(d, w, http.StatusCreated, m)
		}
	}
}

func handleUpdateAsset(db *gorm.DB) rest.InputHandler[InputRestModel] {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext, input InputRestModel) http.HandlerFunc {
		return rest.ParseAssetId(d.Logger(), func(assetId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				f, err := Extract(input)
				if err != nil {
					WriteError(d.Logger(), w, err)
					return
				}
				m, err := NewProcessor(d.Logger(), d.Context(), db).UpdateAndEmit(uuid.New(), assetId, f)
				if err != nil {
					WriteError(d.Logger(), w, err)
					return
				}
				respond(d, w, http.StatusOK, m)
			}
		})
	}
}

func handleDeleteAsset(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseAssetId(d.Logger(), func(assetId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				err := NewProcessor(d.Logger(), d.Context(), db).DeleteAndEmit(uuid.New(), assetId)
				if err != nil {
					WriteError(d.Logger(), w, err)
					return
				}
				rest.MarshalResponse[rest.MessageRestModel](d.Logger())(w)(http.StatusOK)(rest.MessageRestModel{Message: "Asset deleted successfully"})
			}
		})
	}
}

func respond(d *rest.HandlerDependency, w http.ResponseWriter, status int, m Model) {
	rm, err := Transform(m)
	if err != nil {
		d.Logger().WithError(err).Errorf("Creating REST model.")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	rest.MarshalResponse[RestModel](d.Logger())(w)(status)(rm)
}

// WriteError reports err with the status ErrorStatus assigns to it. Internal failures are logged
// and their detail withheld from the caller.
func WriteError(l logrus.FieldLogger, w http.ResponseWriter, err error) {
	status := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		l.WithError(err).Errorf("Unexpected failure handling asset request.")
		err = errors.New("internal server error")
	}
	rest.WriteError(l)(w)(status, err)
}
