package view

import (
	"html/template"
	"strings"
)

// Decl es una declaración CSS ya en kebab-case.
type Decl struct {
	Prop  string
	Value string
}

// Style mantiene el orden de las declaraciones.
type Style []Decl

// Merge aplica over encima de s como un spread de objetos: la última
// declaración gana y conserva la posición de la primera aparición.
func (s Style) Merge(over ...Style) Style {
	out := append(Style(nil), s...)
	for _, o := range over {
		for _, d := range o {
			replaced := false
			for i := range out {
				if out[i].Prop == d.Prop {
					out[i].Value = d.Value
					replaced = true
					break
				}
			}
			if !replaced {
				out = append(out, d)
			}
		}
	}
	return out
}

func (s Style) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Prop+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// CSS marca el estilo como seguro; solo se usa con las constantes de abajo.
func (s Style) CSS() template.CSS {
	return template.CSS(s.String())
}

var (
	styleApp = Style{
		{"background-color", "#121212"},
		{"color", "#E0E0E0"},
		{"min-height", "100vh"},
		{"padding", "2rem"},
		{"font-family", "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif"},
		{"display", "flex"},
		{"flex-direction", "column"},
		{"align-items", "center"},
	}
	styleTitle = Style{
		{"font-weight", "300"},
		{"font-size", "2.5rem"},
		{"margin-bottom", "1rem"},
		{"letter-spacing", "0.1em"},
	}
	styleList = Style{
		{"list-style", "none"},
		{"padding", "0"},
		{"width", "100%"},
		{"max-width", "600px"},
		{"margin-bottom", "2rem"},
	}
	styleListItem = Style{
		{"background-color", "#1E1E1E"},
		{"margin-bottom", "0.5rem"},
		{"padding", "0.75rem 1rem"},
		{"border-radius", "8px"},
		{"box-shadow", "0 2px 8px rgba(0,0,0,0.4)"},
		{"font-weight", "400"},
		{"font-size", "1.1rem"},
	}
	styleSubtitle = Style{
		{"font-weight", "300"},
		{"font-size", "1.8rem"},
		{"margin-bottom", "1rem"},
		{"letter-spacing", "0.07em"},
	}
	styleForm = Style{
		{"display", "flex"},
		{"flex-direction", "column"},
		{"width", "100%"},
		{"max-width", "600px"},
	}
	styleInput = Style{
		{"background-color", "#1E1E1E"},
		{"border", "1px solid #333"},
		{"border-radius", "6px"},
		{"color", "#E0E0E0"},
		{"padding", "0.75rem 1rem"},
		{"margin-bottom", "1rem"},
		{"font-size", "1rem"},
		{"outline", "none"},
		{"transition", "border-color 0.3s"},
	}
	styleInputFocus = Style{
		{"border-color", "#A67C00"},
	}
	styleButton = Style{
		{"background-color", "#A67C00"},
		{"color", "#121212"},
		{"border", "none"},
		{"padding", "0.85rem 1.5rem"},
		{"font-size", "1.1rem"},
		{"font-weight", "600"},
		{"border-radius", "8px"},
		{"cursor", "pointer"},
		{"transition", "background-color 0.3s"},
	}
	styleButtonHover = Style{
		{"background-color", "#855f00"},
	}
)

func inputStyle(focused bool) Style {
	if focused {
		return styleInput.Merge(styleInputFocus)
	}
	return styleInput
}

func buttonStyle(hovered bool) Style {
	if hovered {
		return styleButton.Merge(styleButtonHover)
	}
	return styleButton
}
