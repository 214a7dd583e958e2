package cats

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDraft_SetLeavesOtherFields(t *testing.T) {
	d := Draft{Name: "Kit", Breed: "Tabby", Age: "3"}

	if !d.Set(FieldBreed, "Persian") {
		t.Fatalf("expected breed to be settable")
	}
	if d.Name != "Kit" || d.Age != "3" || d.Breed != "Persian" {
		t.Fatalf("unexpected draft %+v", d)
	}

	if d.Set(Field("color"), "black") {
		t.Fatalf("unknown field must be rejected")
	}
	if d != (Draft{Name: "Kit", Breed: "Persian", Age: "3"}) {
		t.Fatalf("unknown field changed the draft: %+v", d)
	}
}

func TestDraft_CreateInputBody(t *testing.T) {
	in, err := Draft{Name: "Kit", Breed: "Tabby", Age: "3"}.CreateInput()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	b, _ := json.Marshal(in)
	if string(b) != `{"name":"Kit","breed":"Tabby","age":3}` {
		t.Fatalf("unexpected body %s", string(b))
	}
}

func TestDraft_CreateInputAge(t *testing.T) {
	cases := []struct {
		age     string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{" 7 ", 7, false},
		{"0", 0, false},
		{"4.0", 4, false},
		{"3.5", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
	}
	for _, c := range cases {
		in, err := Draft{Age: c.age}.CreateInput()
		if c.wantErr {
			if !errors.Is(err, ErrInvalidAge) {
				t.Fatalf("age %q: expected ErrInvalidAge, got %v", c.age, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("age %q: unexpected err %v", c.age, err)
		}
		if in.Age != c.want {
			t.Fatalf("age %q: got %d want %d", c.age, in.Age, c.want)
		}
	}
}

func TestFieldSpecs(t *testing.T) {
	if len(Fields) != 3 || Fields[0] != FieldName || Fields[1] != FieldBreed || Fields[2] != FieldAge {
		t.Fatalf("unexpected field order %v", Fields)
	}

	age := FieldAge.Spec()
	if age.InputType != "number" || age.Min != "0" || age.Placeholder != "Возраст" {
		t.Fatalf("unexpected age spec %+v", age)
	}
	name := FieldName.Spec()
	if name.InputType != "text" || name.Min != "" || name.Placeholder != "Имя" {
		t.Fatalf("unexpected name spec %+v", name)
	}
	if FieldBreed.Spec().Placeholder != "Порода" {
		t.Fatalf("unexpected breed placeholder")
	}
}
