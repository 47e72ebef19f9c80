package gift

// TrueFalseAnswer renders "T" or "F"
type TrueFalseAnswer struct {
	base
	answer bool
}

// trueFalseValues lists the accepted spellings. Lookup is case-sensitive.
var trueFalseValues = map[any]bool{
	"T":     true,
	"TRUE":  true,
	true:    true,
	"F":     false,
	"FALSE": false,
	false:   false,
}

// NewTrueFalseAnswer accepts "T", "TRUE", true, "F", "FALSE" or false.
func NewTrueFalseAnswer(answer any, feedback string) (TrueFalseAnswer, error) {
	value, ok := lookupComparable(trueFalseValues, answer)
	if !ok {
		return TrueFalseAnswer{}, newAnswerValueError(ErrorKindTrueFalse, "This answer must be True or False")
	}
	return TrueFalseAnswer{
		base:   newBase(feedback),
		answer: value,
	}, nil
}

// lookupComparable looks raw up in a map keyed by strings and booleans.
// Only those two types can match, so uncomparable raw values never reach the map.
func lookupComparable[V any](values map[any]V, raw any) (V, bool) {
	switch raw.(type) {
	case string, bool:
		value, ok := values[raw]
		return value, ok
	}
	var zero V
	return zero, false
}

func (a TrueFalseAnswer) Answer() bool {
	return a.answer
}

func (a TrueFalseAnswer) Render() string {
	if a.answer {
		return a.compose("T")
	}
	return a.compose("F")
}

func (a TrueFalseAnswer) String() string {
	return a.Render()
}
