package label

import (
	"errors"
	"it-inventory/asset"
	"it-inventory/rest"
	"it-inventory/server"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitResource(db *gorm.DB, size int) server.RouteInitializer {
	return func(router *mux.Router, l logrus.FieldLogger) {
		register := rest.RegisterHandler(l)
		router.HandleFunc("/qrcode/{assetId}", register("get_label", handleGetLabel(db, size))).Methods(http.MethodGet)
	}
}

func handleGetLabel(db *gorm.DB, size int) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return rest.ParseAssetId(d.Logger(), func(assetId uint32) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				b, err := NewProcessor(d.Logger(), d.Context(), db).WithSize(size).Generate(assetId)
				if errors.Is(err, ErrEncoding) {
					rest.WriteError(d.Logger())(w)(http.StatusInternalServerError, ErrEncoding)
					return
				}
				if err != nil {
					asset.WriteError(d.Logger(), w, err)
					return
				}
				w.Header().Set("Content-Type", "image/png")
				w.WriteHeader(http.StatusOK)
				if _, err = w.Write(b); err != nil {
					d.Logger().WithError(err).Errorf("Writing label.")
				}
			}
		})
	}
}
