package interchange

import (
	"bytes"
	"errors"
	"it-inventory/asset"
	"it-inventory/rest"
	"it-inventory/server"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ExportFileName         = "inventory_export.csv"
	WorkbookFileName       = "inventory_export.xlsx"
	maxUploadSize    int64 = 32 << 20
	uploadField            = "file"
)

var (
	ErrNoFile       = errors.New("no file provided")
	ErrNoFileName   = errors.New("no file selected")
	ErrNotDelimited = errors.New("file must be csv")
)

var uploadMessages = map[error]string{
	ErrNoFile:       "No file provided",
	ErrNoFileName:   "No file selected",
	ErrNotDelimited: "File must be CSV",
}

// UploadMessage is the response text for an upload validation error.
func UploadMessage(err error) string {
	for e, msg := range uploadMessages {
		if errors.Is(err, e) {
			return msg
		}
	}
	return err.Error()
}

func writeUploadError(l logrus.FieldLogger, w http.ResponseWriter, err error) {
	rest.MarshalResponse[rest.ErrorRestModel](l)(w)(http.StatusBadRequest)(rest.ErrorRestModel{Error: UploadMessage(err)})
}

func InitResource(db *gorm.DB) server.RouteInitializer {
	return func(router *mux.Router, l logrus.FieldLogger) {
		register := rest.RegisterHandler(l)
		router.HandleFunc("/export", register("export_assets", handleExport(db))).Methods(http.MethodGet)
		router.HandleFunc("/export/xlsx", register("export_assets_workbook", handleExportWorkbook(db))).Methods(http.MethodGet)
		router.HandleFunc("/import", register("import_assets", handleImport(db))).Methods(http.MethodPost)
	}
}

func handleExport(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var buf bytes.Buffer
			if err := NewProcessor(d.Logger(), d.Context(), db).Export(&buf); err != nil {
				d.Logger().WithError(err).Errorf("Exporting assets.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			attach(d, w, "text/csv; charset=utf-8", ExportFileName, buf.Bytes())
		}
	}
}

func handleExportWorkbook(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			var buf bytes.Buffer
			if err := NewProcessor(d.Logger(), d.Context(), db).ExportWorkbook(&buf); err != nil {
				d.Logger().WithError(err).Errorf("Exporting asset workbook.")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			attach(d, w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", WorkbookFileName, buf.Bytes())
		}
	}
}

func attach(d *rest.HandlerDependency, w http.ResponseWriter, contentType string, name string, b []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+name)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		d.Logger().WithError(err).Errorf("Writing export.")
	}
}

func handleImport(db *gorm.DB) rest.GetHandler {
	return func(d *rest.HandlerDependency, c *rest.HandlerContext) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			fh, err := upload(r)
			if err != nil {
				writeUploadError(d.Logger(), w, err)
				return
			}
			file, err := fh.Open()
			if err != nil {
				d.Logger().WithError(err).Errorf("Opening uploaded file.")
				writeUploadError(d.Logger(), w, ErrNoFile)
				return
			}
			defer file.Close()

			res, err := NewProcessor(d.Logger(), d.Context(), db).Import(file)
			if err != nil {
				asset.WriteError(d.Logger(), w, err)
				return
			}
			rm, err := TransformResult(res)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			rest.MarshalResponse[ImportRestModel](d.Logger())(w)(http.StatusOK)(rm)
		}
	}
}

// upload locates the uploaded file part and checks its name. A part submitted without a file
// name arrives as a plain form value.
func upload(r *http.Request) (*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, ErrNoFile
	}
	if fhs := r.MultipartForm.File[uploadField]; len(fhs) > 0 {
		fh := fhs[0]
		if fh.Filename == "" {
			return nil, ErrNoFileName
		}
		if !strings.EqualFold(filepath.Ext(fh.Filename), ".csv") {
			return nil, ErrNotDelimited
		}
		return fh, nil
	}
	if _, ok := r.MultipartForm.Value[uploadField]; ok {
		return nil, ErrNoFileName
	}
	return nil, ErrNoFile
}
