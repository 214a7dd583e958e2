package cats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ID es el identificador que asigna el servidor. Para el cliente es opaco:
// se acepta número o string y se vuelve a serializar tal como llegó.
type ID struct {
	value   string
	numeric bool
}

func NumericID(n int64) ID {
	return ID{value: fmt.Sprintf("%d", n), numeric: true}
}

func StringID(s string) ID {
	return ID{value: s}
}

func (id ID) String() string { return id.value }

func (id ID) IsZero() bool { return id.value == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.value == "" {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*id = ID{}
		return nil
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID{value: s}
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return errors.New("cat id must be a number or a string")
		}
		*id = ID{value: n.String(), numeric: true}
		return nil
	}
}

// Cat es el registro tal como lo devuelve la API.
type Cat struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   int    `json:"age"`
}

// CreateInput es el body de POST /cats. El orden de los campos define el JSON.
type CreateInput struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   int    `json:"age"`
}
