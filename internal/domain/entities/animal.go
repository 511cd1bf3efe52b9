// Package entities contains domain entities used across the application.
package entities

// Animal is a single catalog entry of the quiz.
// ImageRef is an opaque asset reference; delivery layers resolve it to a file.
type Animal struct {
	Label    string `json:"label"` // name shown as an answer option, unique within a catalog
	ImageRef string `json:"image"` // asset reference of the animal picture
}

// Option returns the answer option that represents the animal.
func (a Animal) Option() Option {
	return Option{Label: a.Label, Value: a.Label}
}
