package cats

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidAge = errors.New("age is not an integer")
)

type Field string

const (
	FieldName  Field = "name"
	FieldBreed Field = "breed"
	FieldAge   Field = "age"
)

// Fields es el orden en el que se pintan los inputs del formulario.
var Fields = []Field{FieldName, FieldBreed, FieldAge}

func ParseField(s string) (Field, bool) {
	switch Field(s) {
	case FieldName, FieldBreed, FieldAge:
		return Field(s), true
	default:
		return "", false
	}
}

// FieldSpec describe cómo se pinta un input.
type FieldSpec struct {
	Field       Field
	Placeholder string
	InputType   string
	Min         string // vacío = sin atributo min
}

func (f Field) Spec() FieldSpec {
	switch f {
	case FieldName:
		return FieldSpec{Field: f, Placeholder: "Имя", InputType: "text"}
	case FieldBreed:
		return FieldSpec{Field: f, Placeholder: "Порода", InputType: "text"}
	default:
		return FieldSpec{Field: f, Placeholder: "Возраст", InputType: "number", Min: "0"}
	}
}

// Draft guarda los valores del formulario como texto mientras se edita.
type Draft struct {
	Name  string
	Breed string
	Age   string
}

func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldBreed:
		return d.Breed
	case FieldAge:
		return d.Age
	default:
		return ""
	}
}

// Set cambia un solo campo. Devuelve false si el campo no existe.
func (d *Draft) Set(f Field, v string) bool {
	switch f {
	case FieldName:
		d.Name = v
	case FieldBreed:
		d.Breed = v
	case FieldAge:
		d.Age = v
	default:
		return false
	}
	return true
}

// CreateInput convierte el borrador al body de creación.
// La edad vacía vale 0; cualquier cosa que no sea un entero es ErrInvalidAge.
func (d Draft) CreateInput() (CreateInput, error) {
	age, err := parseAge(d.Age)
	if err != nil {
		return CreateInput{}, err
	}
	return CreateInput{
		Name:  d.Name,
		Breed: d.Breed,
		Age:   age,
	}, nil
}

func parseAge(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAge
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, ErrInvalidAge
	}
	return int(f), nil
}
