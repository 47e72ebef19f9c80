package gift

// MatchingAnswer pairs a key with a value, e.g. "cat -> animal".
// Matching answers carry no feedback and no percentage.
type MatchingAnswer struct {
	key   string
	value string
}

// NewMatchingAnswer builds a pair. Neither key nor value may be empty.
func NewMatchingAnswer(key string, value string) (MatchingAnswer, error) {
	if len(key) == 0 {
		return MatchingAnswer{}, newAnswerValueError(ErrorKindMatching, "This answer has not key")
	}
	if len(value) == 0 {
		return MatchingAnswer{}, newAnswerValueError(ErrorKindMatching, "This answer has not value")
	}
	return MatchingAnswer{
		key:   Escape(key),
		value: Escape(value),
	}, nil
}

func (a MatchingAnswer) Key() string {
	return a.key
}

func (a MatchingAnswer) Value() string {
	return a.value
}

func (a MatchingAnswer) Render() string {
	return a.key + " -> " + a.value
}

func (a MatchingAnswer) String() string {
	return a.Render()
}
