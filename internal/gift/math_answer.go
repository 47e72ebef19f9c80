package gift

// MathAnswer is a numeric answer with an optional tolerance, e.g. "#5:0.5"
type MathAnswer struct {
	base
	answer    Number
	tolerance Number
}

// NewMathAnswer builds a numeric answer. tolerance is optional and defaults to 0.0.
func NewMathAnswer(answer any, tolerance any, feedback string) (MathAnswer, error) {
	value, ok := CoerceNumeric(answer)
	if !ok {
		return MathAnswer{}, newAnswerValueError(ErrorKindMath, "Answer value must be numeric")
	}

	toleranceValue := FloatNumber(0)
	if isTruthy(tolerance) {
		toleranceValue, ok = CoerceNumeric(tolerance)
		if !ok {
			return MathAnswer{}, newAnswerValueError(ErrorKindMath, "Tolerance value must be numeric")
		}
	}

	return MathAnswer{
		base:      newBase(feedback),
		answer:    value,
		tolerance: toleranceValue,
	}, nil
}

func (a MathAnswer) Answer() Number {
	return a.answer
}

func (a MathAnswer) Tolerance() Number {
	return a.tolerance
}

func (a MathAnswer) Render() string {
	core := a.answer.String()
	if !a.tolerance.IsZero() {
		core += ":" + a.tolerance.String()
	}
	return "#" + a.compose(core)
}

func (a MathAnswer) String() string {
	return a.Render()
}

// MathRangeAnswer accepts any number in [initial, final], e.g. "#1..10"
type MathRangeAnswer struct {
	base
	initial Number
	final   Number
}

// NewMathRangeAnswer builds a range answer. initial must not be greater than final.
func NewMathRangeAnswer(initial any, final any, feedback string) (MathRangeAnswer, error) {
	initialValue, initialOK := CoerceNumeric(initial)
	finalValue, finalOK := CoerceNumeric(final)
	if !initialOK || !finalOK {
		return MathRangeAnswer{}, newAnswerValueError(ErrorKindMath, "Initial or final value is not numeric")
	}
	if initialValue.greaterThan(finalValue) {
		return MathRangeAnswer{}, newAnswerValueError(ErrorKindMath, "Initial value must be less than final value")
	}

	return MathRangeAnswer{
		base:    newBase(feedback),
		initial: initialValue,
		final:   finalValue,
	}, nil
}

func (a MathRangeAnswer) Initial() Number {
	return a.initial
}

func (a MathRangeAnswer) Final() Number {
	return a.final
}

func (a MathRangeAnswer) Render() string {
	return "#" + a.compose(a.initial.String()+".."+a.final.String())
}

func (a MathRangeAnswer) String() string {
	return a.Render()
}
