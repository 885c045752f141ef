package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type RouteInitializer func(router *mux.Router, l logrus.FieldLogger)

type Builder struct {
	l                logrus.FieldLogger
	ctx              context.Context
	wg               *sync.WaitGroup
	basePath         string
	port             string
	initializers     []RouteInitializer
	rootInitializers []RouteInitializer
	middleware       []mux.MiddlewareFunc
}

func New(l logrus.FieldLogger) *Builder {
	return &Builder{
		l:        l,
		ctx:      context.Background(),
		wg:       &sync.WaitGroup{},
		basePath: "/",
		port:     "5000",
	}
}

func (b *Builder) WithContext(ctx context.Context) *Builder {
	b.ctx = ctx
	return b
}

func (b *Builder) WithWaitGroup(wg *sync.WaitGroup) *Builder {
	b.wg = wg
	return b
}

func (b *Builder) SetBasePath(basePath string) *Builder {
	b.basePath = basePath
	return b
}

func (b *Builder) SetPort(port string) *Builder {
	if port != "" {
		b.port = port
	}
	return b
}

// AddRouteInitializer registers routes below the base path.
func (b *Builder) AddRouteInitializer(ri RouteInitializer) *Builder {
	b.initializers = append(b.initializers, ri)
	return b
}

// AddRootRouteInitializer registers routes relative to the server root.
func (b *Builder) AddRootRouteInitializer(ri RouteInitializer) *Builder {
	b.rootInitializers = append(b.rootInitializers, ri)
	return b
}

func (b *Builder) AddMiddleware(mw ...mux.MiddlewareFunc) *Builder {
	b.middleware = append(b.middleware, mw...)
	return b
}

func (b *Builder) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(RecoveryMiddleware(b.l))
	router.Use(LoggingMiddleware(b.l))
	router.Use(CORSMiddleware)
	router.Use(b.middleware...)

	prefix := strings.TrimSuffix(b.basePath, "/")
	api := router.PathPrefix(prefix).Subrouter()
	if prefix == "" {
		api = router
	}
	for _, ri := range b.initializers {
		ri(api, b.l)
	}
	for _, ri := range b.rootInitializers {
		ri(router, b.l)
	}
	return router
}

func (b *Builder) Run() {
	srv := &http.Server{
		Addr:         ":" + b.port,
		Handler:      b.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		<-b.ctx.Done()
		b.l.Infof("Shutting down server on port [%s].", b.port)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			b.l.WithError(err).Errorf("Server forced to shut down.")
		}
	}()

	go func() {
		b.l.Infof("Starting server on port [%s].", b.port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			b.l.WithError(err).Errorf("Server stopped unexpectedly.")
		}
	}()
}
