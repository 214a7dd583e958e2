package router

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"cats-form/internal/adapters/catsapi"
	"cats-form/internal/devproxy"
	_ "cats-form/internal/docs"
	"cats-form/internal/domain/cats"
	"cats-form/internal/middleware"
	"cats-form/internal/platform/httpclient"
	"cats-form/internal/platform/logger"
	"cats-form/internal/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	// Upstream es el destino del dev proxy. Vacío = sin proxy.
	Upstream string

	// Source es la API que usan las vistas. Si es nil se arma un catsapi.Client
	// contra APIURL.
	Source      cats.Source
	APIURL      string
	HTTPTimeout time.Duration

	// Views opcional; si es nil se crea uno con ViewTTL.
	Views   *view.Registry
	ViewTTL time.Duration

	PrettyHTML bool
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	src := opts.Source
	if src == nil {
		if opts.APIURL == "" {
			return nil, errors.New("router: APIURL or Source required")
		}
		hc, err := httpclient.NewWithBaseURL(opts.APIURL, opts.HTTPTimeout)
		if err != nil {
			return nil, fmt.Errorf("router: api client: %w", err)
		}
		hc.Log = log.With(map[string]any{"component": "catsapi"})
		src = catsapi.New(hc)
	}

	views := opts.Views
	if views == nil {
		views = view.NewRegistry(src, log, opts.ViewTTL)
	}

	renderer, err := view.NewRenderer(opts.PrettyHTML)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	view.RegisterRoutes(r, view.NewHandler(views, renderer, log))

	if opts.Upstream != "" {
		p, err := devproxy.New(opts.Upstream, log)
		if err != nil {
			return nil, err
		}
		r.Handle(devproxy.Prefix, p)
		r.Handle(devproxy.Prefix+"/*", p)
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r, nil
}
