package view

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cats-form/internal/domain/cats"
	"cats-form/internal/platform/logger"
)

// maxWait acota cuánto espera un request a que termine una llamada a la API.
const maxWait = 15 * time.Second

type Handler struct {
	views  *Registry
	render *Renderer
	log    logger.Logger
}

func NewHandler(views *Registry, render *Renderer, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{views: views, render: render, log: log}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.newView)

	r.Route("/views/{viewID}", func(vr chi.Router) {
		vr.Get("/", h.showView)
		vr.Post("/submit", h.submit)
		vr.Post("/events", h.event)
	})
}

func viewURL(id string) string { return "/views/" + id }

// newView equivale a montar el componente: vista nueva + read-all.
func (h *Handler) newView(w http.ResponseWriter, r *http.Request) {
	id, ctrl := h.views.Create()
	ctrl.Mount()
	http.Redirect(w, r, viewURL(id), http.StatusSeeOther)
}

func (h *Handler) showView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "viewID")
	ctrl, ok := h.views.Get(id)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	waitFor(r.Context(), ctrl.Mount())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.render.Render(w, NewPage(viewURL(id), ctrl.Snapshot())); err != nil {
		h.log.Error("render failed", map[string]any{"view": id, "error": err})
	}
}

// submit aplica los campos del form al borrador y lo envía. Si la API falla,
// la vista vuelve a pintarse igual que antes, sin mensaje.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "viewID")
	ctrl, ok := h.views.Get(id)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	for _, f := range cats.Fields {
		if vals, ok := r.PostForm[string(f)]; ok && len(vals) > 0 {
			ctrl.Edit(f, vals[0])
		}
	}

	waitFor(r.Context(), ctrl.Submit())
	http.Redirect(w, r, viewURL(id), http.StatusSeeOther)
}

// event recibe focus/blur/hover desde el script de la página. El borrador
// solo cambia con el POST de submit, que trae todos los campos.
func (h *Handler) event(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.views.Get(chi.URLParam(r, "viewID"))
	if !ok {
		http.Error(w, "view not found", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	field := cats.Field(r.PostForm.Get("field"))
	switch r.PostForm.Get("type") {
	case "focus":
		ctrl.Focus(field)
	case "blur":
		ctrl.Blur()
	case "hover":
		ctrl.SetHovered(true)
	case "unhover":
		ctrl.SetHovered(false)
	default:
		http.Error(w, "unknown event type", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func waitFor(ctx context.Context, done <-chan struct{}) {
	t := time.NewTimer(maxWait)
	defer t.Stop()
	select {
	case <-done:
	case <-ctx.Done():
	case <-t.C:
	}
}
