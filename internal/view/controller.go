package view

import (
	"context"
	"sync"

	"cats-form/internal/domain/cats"
	"cats-form/internal/platform/logger"
)

// State es todo lo que la vista necesita para pintarse.
type State struct {
	Cats  []cats.Cat
	Draft cats.Draft

	// Focused es el input con foco; vacío si ninguno.
	Focused       cats.Field
	ButtonHovered bool
}

func (s State) clone() State {
	out := s
	out.Cats = append([]cats.Cat(nil), s.Cats...)
	return out
}

// Controller es dueño del estado de una vista. Todas las mutaciones corren en
// la goroutine del loop; las llamadas a la API corren aparte y devuelven su
// resultado como un mensaje más.
type Controller struct {
	src cats.Source
	log logger.Logger

	msgs chan func(*State)
	quit chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	closeOnce sync.Once
	loopDone  chan struct{}

	// solo se toca desde el loop
	state   State
	mounted chan struct{}
}

func NewController(src cats.Source, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		src:      src,
		log:      log,
		msgs:     make(chan func(*State)),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
		loopDone: make(chan struct{}),
	}
	go c.loop()
	return c
}

func (c *Controller) loop() {
	defer close(c.loopDone)
	for {
		select {
		case m := <-c.msgs:
			m(&c.state)
		case <-c.quit:
			return
		}
	}
}

// post encola m en el loop. Devuelve false si el controller ya se cerró.
func (c *Controller) post(m func(*State)) bool {
	select {
	case c.msgs <- m:
		return true
	case <-c.quit:
		return false
	}
}

// Close detiene el loop y cancela las llamadas en vuelo.
func (c *Controller) Close() {
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.quit)
	})
	<-c.loopDone
}

// Mount pide la lista la primera vez. Las siguientes llamadas devuelven
// el canal del primer montaje.
func (c *Controller) Mount() <-chan struct{} {
	reply := make(chan (<-chan struct{}), 1)
	ok := c.post(func(s *State) {
		if c.mounted != nil {
			reply <- c.mounted
			return
		}
		done := make(chan struct{})
		c.mounted = done
		reply <- done
		go c.fetchAll(done)
	})
	if !ok {
		return closedChan()
	}
	return <-reply
}

func (c *Controller) fetchAll(done chan struct{}) {
	list, err := c.src.List(c.ctx)
	if err != nil {
		c.log.Warn("list cats failed", map[string]any{"error": err})
		close(done)
		return
	}

	ok := c.post(func(s *State) {
		s.Cats = list
		close(done)
	})
	if !ok {
		close(done)
	}
}

// Edit cambia un campo del borrador. Campos desconocidos se ignoran.
func (c *Controller) Edit(field cats.Field, value string) {
	c.post(func(s *State) {
		s.Draft.Set(field, value)
	})
}

// Submit envía el borrador actual. Si la API responde bien, agrega el gato al
// final de la lista y limpia el formulario. No hay protección contra envíos
// repetidos. Los errores solo se loguean.
func (c *Controller) Submit() <-chan struct{} {
	done := make(chan struct{})
	ok := c.post(func(s *State) {
		in, err := s.Draft.CreateInput()
		if err != nil {
			c.log.Warn("draft not submitted", map[string]any{"error": err, "age": s.Draft.Age})
			close(done)
			return
		}
		go c.create(in, done)
	})
	if !ok {
		close(done)
	}
	return done
}

func (c *Controller) create(in cats.CreateInput, done chan struct{}) {
	created, err := c.src.Create(c.ctx, in)
	if err != nil {
		c.log.Warn("create cat failed", map[string]any{"error": err})
		close(done)
		return
	}

	ok := c.post(func(s *State) {
		s.Cats = append(s.Cats, created)
		s.Draft = cats.Draft{}
		close(done)
	})
	if !ok {
		close(done)
	}
}

func (c *Controller) Focus(field cats.Field) {
	if _, ok := cats.ParseField(string(field)); !ok {
		return
	}
	c.post(func(s *State) {
		s.Focused = field
	})
}

func (c *Controller) Blur() {
	c.post(func(s *State) {
		s.Focused = ""
	})
}

func (c *Controller) SetHovered(hovered bool) {
	c.post(func(s *State) {
		s.ButtonHovered = hovered
	})
}

// Snapshot devuelve una copia del estado actual.
func (c *Controller) Snapshot() State {
	reply := make(chan State, 1)
	if !c.post(func(s *State) { reply <- s.clone() }) {
		return State{}
	}
	return <-reply
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
