package gift

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	choiceCorrect   = "="
	choiceIncorrect = "~"

	minPercentage = -100
	maxPercentage = 100
)

var choiceCorrectValues = map[any]string{
	choiceCorrect:   choiceCorrect,
	true:            choiceCorrect,
	choiceIncorrect: choiceIncorrect,
	false:           choiceIncorrect,
}

// ChoiceAnswer is one option of a multiple choice or short answer question,
// e.g. "=%50%Paris" or "~London".
type ChoiceAnswer struct {
	base
	correct       string
	text          string
	percentage    int
	hasPercentage bool
	tolerance     Number
}

// NewChoiceAnswer builds a choice.
// correct accepts "=", "~", true or false. percentage and tolerance are optional and
// treated as absent when nil, empty or zero.
func NewChoiceAnswer(correct any, text string, percentage any, tolerance any, feedback string) (ChoiceAnswer, error) {
	correctMark, ok := lookupComparable(choiceCorrectValues, correct)
	if !ok {
		return ChoiceAnswer{}, newAnswerValueError(ErrorKindChoice, "This answer must be = or ~")
	}

	if len(text) == 0 {
		return ChoiceAnswer{}, newAnswerValueError(ErrorKindChoice, "This answer has not text")
	}

	answer := ChoiceAnswer{
		base:      newBase(feedback),
		correct:   correctMark,
		text:      Escape(text),
		tolerance: FloatNumber(0),
	}

	if isTruthy(percentage) {
		value, err := parsePercentage(percentage)
		if err != nil {
			return ChoiceAnswer{}, err
		}
		answer.percentage = value
		answer.hasPercentage = true
	}

	if isTruthy(tolerance) {
		value, ok := CoerceNumeric(tolerance)
		if !ok {
			return ChoiceAnswer{}, newAnswerValueError(ErrorKindChoice, "Tolerance value must be numeric")
		}
		answer.tolerance = value.AsFloat()
	}

	return answer, nil
}

func parsePercentage(raw any) (int, error) {
	var (
		n  Number
		ok bool
	)
	if v, isString := raw.(string); isString {
		var token string
		token, ok = stripDigitSeparators(strings.TrimSpace(v))
		if ok {
			n, ok = parseInteger(token)
		}
	} else {
		n, ok = numberFromValue(raw)
	}
	if !ok {
		return 0, newAnswerValueError(ErrorKindChoice, "Percentage must be integer")
	}

	if n.IsFloat() {
		f := n.Float64()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, newAnswerValueError(ErrorKindChoice, "Percentage must be integer")
		}
		if f < minPercentage || f > maxPercentage {
			return 0, newPercentageRangeError()
		}
	}
	if n.large != nil {
		return 0, newPercentageRangeError()
	}

	value := n.Int64()
	if value < minPercentage || value > maxPercentage {
		return 0, newPercentageRangeError()
	}
	return int(value), nil
}

func newPercentageRangeError() *AnswerValueError {
	return newAnswerValueError(ErrorKindChoice,
		fmt.Sprintf("Percentage must be between %d and %d", minPercentage, maxPercentage))
}

func (a ChoiceAnswer) Correct() bool {
	return a.correct == choiceCorrect
}

func (a ChoiceAnswer) Text() string {
	return a.text
}

// Percentage returns the weight and whether one was supplied
func (a ChoiceAnswer) Percentage() (int, bool) {
	return a.percentage, a.hasPercentage
}

func (a ChoiceAnswer) Tolerance() Number {
	return a.tolerance
}

// Render omits the percentage and tolerance when they are zero, so a weight of 0
// renders the same as no weight at all.
func (a ChoiceAnswer) Render() string {
	var sb strings.Builder
	sb.WriteString(a.correct)
	if a.percentage != 0 {
		sb.WriteString("%" + strconv.Itoa(a.percentage) + "%")
	}
	sb.WriteString(a.text)
	if !a.tolerance.IsZero() {
		sb.WriteString(":" + a.tolerance.String())
	}
	return a.compose(sb.String())
}

func (a ChoiceAnswer) String() string {
	return a.Render()
}
