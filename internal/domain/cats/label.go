package cats

import "strconv"

// YearWord solo distingue 1 del resto.
func YearWord(age int) string {
	if age == 1 {
		return "год"
	}
	return "лет"
}

// Label es el texto de cada elemento de la lista.
func Label(c Cat) string {
	return c.Name + " — " + c.Breed + ", " + strconv.Itoa(c.Age) + " " + YearWord(c.Age)
}
