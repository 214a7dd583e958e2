package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yosssi/gohtml"

	"cats-form/internal/domain/cats"
)

//go:embed templates/page.html
var templatesFS embed.FS

const (
	textTitle    = "Котики"
	textSubtitle = "Добавить котика"
	textButton   = "Добавить"
)

// Page es el modelo de la plantilla.
type Page struct {
	Title       string
	Subtitle    string
	ButtonLabel string

	SubmitURL string
	EventsURL string

	Items  []Item
	Inputs []Input

	AppStyle      template.CSS
	TitleStyle    template.CSS
	ListStyle     template.CSS
	ItemStyle     template.CSS
	SubtitleStyle template.CSS
	FormStyle     template.CSS
	ButtonStyle   template.CSS
	FocusCSS      template.CSS
	HoverCSS      template.CSS
}

type Item struct {
	Key   string
	Label string
}

type Input struct {
	Name        string
	Placeholder string
	Type        string
	Value       string
	Min         string
	Style       template.CSS
}

// NewPage arma la página para una vista a partir de su estado.
func NewPage(viewURL string, s State) Page {
	items := make([]Item, 0, len(s.Cats))
	for _, c := range s.Cats {
		items = append(items, Item{Key: c.ID.String(), Label: cats.Label(c)})
	}

	inputs := make([]Input, 0, len(cats.Fields))
	for _, f := range cats.Fields {
		spec := f.Spec()
		inputs = append(inputs, Input{
			Name:        string(f),
			Placeholder: spec.Placeholder,
			Type:        spec.InputType,
			Value:       s.Draft.Get(f),
			Min:         spec.Min,
			Style:       inputStyle(s.Focused == f).CSS(),
		})
	}

	return Page{
		Title:       textTitle,
		Subtitle:    textSubtitle,
		ButtonLabel: textButton,

		SubmitURL: viewURL + "/submit",
		EventsURL: viewURL + "/events",

		Items:  items,
		Inputs: inputs,

		AppStyle:      styleApp.CSS(),
		TitleStyle:    styleTitle.CSS(),
		ListStyle:     styleList.CSS(),
		ItemStyle:     styleListItem.CSS(),
		SubtitleStyle: styleSubtitle.CSS(),
		FormStyle:     styleForm.CSS(),
		ButtonStyle:   buttonStyle(s.ButtonHovered).CSS(),
		FocusCSS:      styleInputFocus.CSS(),
		HoverCSS:      styleButtonHover.CSS(),
	}
}

type Renderer struct {
	tmpl   *template.Template
	pretty bool
}

func NewRenderer(pretty bool) (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, pretty: pretty}, nil
}

func (r *Renderer) Render(w io.Writer, p Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", p); err != nil {
		return fmt.Errorf("view: render: %w", err)
	}

	out := buf.Bytes()
	if r.pretty {
		out = gohtml.FormatBytes(out)
	}
	_, err := w.Write(out)
	return err
}
