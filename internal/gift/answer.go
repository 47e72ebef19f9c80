// Package gift builds answer clauses and questions in the GIFT quiz format.
package gift

import "reflect"

//go:generate mockgen -source=answer.go -destination=../mocks/gift/mock_answer.go -package=mock_gift Answer

// Answer is one entry of a GIFT answer clause.
// The variants in this package are MathAnswer, MathRangeAnswer, TrueFalseAnswer,
// ChoiceAnswer and MatchingAnswer.
type Answer interface {
	Render() string
}

// Escape returns text unchanged.
// The GIFT reserved characters ~ = # { } are not escaped yet.
func Escape(text string) string {
	return text
}

// base holds the feedback shared by answers that support it
type base struct {
	feedback string
}

func newBase(feedback string) base {
	return base{feedback: Escape(feedback)}
}

func (b base) Feedback() string {
	return b.feedback
}

// compose appends "#feedback" to the core answer when there is feedback
func (b base) compose(core string) string {
	if b.feedback == "" {
		return core
	}
	return core + "#" + b.feedback
}

// isTruthy reports whether a raw optional value counts as supplied.
// nil, empty strings, false, numeric zero and empty collections do not.
func isTruthy(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	}
	if n, ok := numberFromValue(raw); ok {
		return !n.IsZero()
	}
	switch rv := reflect.ValueOf(raw); rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	}
	return true
}
