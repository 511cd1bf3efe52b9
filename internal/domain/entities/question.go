package entities

// Option is one selectable answer of a question.
type Option struct {
	Label string
	Value string
}

// Question asks to recognize the animal on the image.
type Question struct {
	ImageRef      string
	Options       []Option // multiple choice, order randomized
	CorrectAnswer string
}

// HasOption reports whether value is one of the question's option values.
func (q Question) HasOption(value string) bool {
	return q.OptionIndex(value) >= 0
}

// OptionIndex returns the position of value among the options or -1.
func (q Question) OptionIndex(value string) int {
	for i, opt := range q.Options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
