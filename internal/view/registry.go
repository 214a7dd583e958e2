package view

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"cats-form/internal/domain/cats"
	"cats-form/internal/platform/logger"
)

const (
	DefaultTTL = 30 * time.Minute

	minSweepInterval = time.Second
)

type entry struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry guarda las vistas vivas. Cada carga de "/" crea una vista nueva,
// igual que un reload del navegador monta el componente desde cero.
type Registry struct {
	src cats.Source
	log logger.Logger
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	views map[string]*entry
}

func NewRegistry(src cats.Source, log logger.Logger, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		src:   src,
		log:   log,
		ttl:   ttl,
		now:   time.Now,
		views: make(map[string]*entry),
	}
}

func (r *Registry) Create() (string, *Controller) {
	id := uuid.NewString()
	ctrl := NewController(r.src, r.log.With(map[string]any{"view": id}))

	r.mu.Lock()
	r.views[id] = &entry{ctrl: ctrl, lastSeen: r.now()}
	r.mu.Unlock()

	return id, ctrl
}

// Get devuelve la vista y renueva su lastSeen.
func (r *Registry) Get(id string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.views[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.ctrl, true
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	e, ok := r.views[id]
	delete(r.views, id)
	r.mu.Unlock()

	if ok {
		e.ctrl.Close()
	}
}

// Sweep cierra las vistas sin uso desde hace más de ttl. Devuelve cuántas.
func (r *Registry) Sweep(now time.Time) int {
	var stale []*Controller

	r.mu.Lock()
	for id, e := range r.views {
		if now.Sub(e.lastSeen) > r.ttl {
			stale = append(stale, e.ctrl)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()

	for _, c := range stale {
		c.Close()
	}
	return len(stale)
}

// Run barre periódicamente hasta que ctx termina; al salir cierra todo.
func (r *Registry) Run(ctx context.Context) {
	interval := r.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.closeAll()
			return
		case now := <-t.C:
			if n := r.Sweep(now); n > 0 {
				r.log.Debug("evicted idle views", map[string]any{"count": n})
			}
		}
	}
}

func (r *Registry) closeAll() {
	r.mu.Lock()
	all := r.views
	r.views = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range all {
		e.ctrl.Close()
	}
}
