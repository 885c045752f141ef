package audit

import (
	"it-inventory/model"
	"it-inventory/rest"
	"it-inventory/server"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(db *gorm.DB, limit int) server.RouteInitializer {
	return func(router *mux.Router, l logrus.FieldLogger) {
		register := rest.RegisterHandler(l)
		r := router.PathPrefix("/history").Subrouter()
		r.HandleFunc("", register("get_history", handleGetHistory(db, limit))).Methods(http.MethodGet)
		r.HandleFunc("/stream", GetHub().Serve(l)).Methods(http.MethodGet)
	}
}

func handleGetHistory(db *gorm.DB, limit int) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			p := NewProcessor(d.Logger(), d.Context(), db)
			mp := p.LatestProvider(limit)
			if code := r.URL.Query().Get("assetCode"); code != "" {
				mp = p.ByAssetCodeProvider(code, limit)
			}
			rm, err := model.SliceMap(Transform)(mp)()
			if err != nil {
				d.Logger().WithError(err).Errorf("Retrieving audit history.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.MarshalResponse[[]RestModel](d.Logger())(w)(http.StatusOK)(rm)
		}
	}
}

// ActorMiddleware attributes every mutation made while handling a request to actor.
func ActorMiddleware(actor string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}
