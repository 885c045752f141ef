package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HandlerDependency struct {
	l   logrus.FieldLogger
	ctx context.Context
}

func (h HandlerDependency) Logger() logrus.FieldLogger {
	return h.l
}

func (h HandlerDependency) Context() context.Context {
	return h.ctx
}

type HandlerContext struct {
	name string
}

func (h HandlerContext) Name() string {
	return h.name
}

type GetHandler func(d *HandlerDependency, c *HandlerContext) http.HandlerFunc

type InputHandler[M any] func(d *HandlerDependency, c *HandlerContext, input M) http.HandlerFunc

func RegisterHandler(l logrus.FieldLogger) func(handlerName string, handler GetHandler) http.HandlerFunc {
	return func(handlerName string, handler GetHandler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			fl := l.WithField("handler", handlerName)
			handler(&HandlerDependency{l: fl, ctx: r.Context()}, &HandlerContext{name: handlerName})(w, r)
		}
	}
}

func RegisterInputHandler[M any](l logrus.FieldLogger) func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
	return func(handlerName string, handler InputHandler[M]) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			fl := l.WithField("handler", handlerName)
			var input M
			body, err := io.ReadAll(r.Body)
			if err != nil {
				fl.WithError(err).Errorf("Reading request body.")
				WriteError(fl)(w)(http.StatusBadRequest, errors.New("unable to read request body"))
				return
			}
			if err = json.Unmarshal(body, &input); err != nil {
				fl.WithError(err).Debugf("Decoding request body.")
				WriteError(fl)(w)(http.StatusBadRequest, errors.New("request body must be a JSON object"))
				return
			}
			handler(&HandlerDependency{l: fl, ctx: r.Context()}, &HandlerContext{name: handlerName}, input)(w, r)
		}
	}
}

type AssetIdHandler func(assetId uint32) http.HandlerFunc

func ParseAssetId(l logrus.FieldLogger, next AssetIdHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := strconv.ParseUint(mux.Vars(r)["assetId"], 10, 32)
		if err != nil {
			l.WithError(err).Debugf("Unable to parse assetId from path.")
			WriteError(l)(w)(http.StatusNotFound, errors.New("asset not found"))
			return
		}
		next(uint32(value))(w, r)
	}
}

func MarshalResponse[M any](l logrus.FieldLogger) func(w http.ResponseWriter) func(status int) func(m M) {
	return func(w http.ResponseWriter) func(status int) func(m M) {
		return func(status int) func(m M) {
			return func(m M) {
				b, err := json.Marshal(m)
				if err != nil {
					l.WithError(err).Errorf("Marshalling response.")
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(status)
				if _, err = w.Write(b); err != nil {
					l.WithError(err).Errorf("Writing response.")
				}
			}
		}
	}
}

type ErrorRestModel struct {
	Error string `json:"error"`
}

type MessageRestModel struct {
	Message string `json:"message"`
}

func WriteError(l logrus.FieldLogger) func(w http.ResponseWriter) func(status int, err error) {
	return func(w http.ResponseWriter) func(status int, err error) {
		return func(status int, err error) {
			MarshalResponse[ErrorRestModel](l)(w)(status)(ErrorRestModel{Error: err.Error()})
		}
	}
}
