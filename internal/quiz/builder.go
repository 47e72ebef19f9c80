package quiz

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/gift/internal/config"
	"github.com/at-ishikawa/gift/internal/gift"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// InvalidAnswerPolicy decides what happens to a question when one of its answers
// cannot be built.
type InvalidAnswerPolicy string

const (
	// InvalidAnswerPolicyReject fails the whole question
	InvalidAnswerPolicyReject InvalidAnswerPolicy = "reject"
	// InvalidAnswerPolicySkip drops the malformed answer and keeps the rest
	InvalidAnswerPolicySkip InvalidAnswerPolicy = "skip"
)

type Builder struct {
	policy     InvalidAnswerPolicy
	validator  *validator.Validate
	translator ut.Translator
}

func NewBuilder(policy InvalidAnswerPolicy) (*Builder, error) {
	switch policy {
	case InvalidAnswerPolicyReject, InvalidAnswerPolicySkip:
	default:
		return nil, fmt.Errorf("unknown invalid answer policy %q", policy)
	}

	validate, trans, err := config.NewValidator("yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}
	return &Builder{
		policy:     policy,
		validator:  validate,
		translator: trans,
	}, nil
}

// Build validates the definition and constructs its question
func (b *Builder) Build(definition Definition) (*gift.Question, error) {
	if err := b.validator.Struct(definition); err != nil {
		return nil, translateValidationError(err, b.translator)
	}

	answers := make([]gift.Answer, 0, len(definition.Answers))
	for i, answerDefinition := range definition.Answers {
		answer, err := buildAnswer(answerDefinition)
		if err != nil {
			if b.policy == InvalidAnswerPolicySkip {
				slog.Default().Warn("skipped an invalid answer",
					slog.String("question", definition.Text),
					slog.Int("index", i),
					slog.Any("error", err),
				)
				continue
			}
			return nil, fmt.Errorf("answers[%d] > %w", i, err)
		}
		answers = append(answers, answer)
	}

	return &gift.Question{
		Title:   definition.Title,
		Text:    definition.Text,
		Answers: answers,
	}, nil
}

func buildAnswer(definition AnswerDefinition) (gift.Answer, error) {
	var (
		answer gift.Answer
		err    error
	)
	switch definition.Type {
	case AnswerTypeMath:
		answer, err = gift.NewMathAnswer(definition.Answer, definition.Tolerance, definition.Feedback)
	case AnswerTypeMathRange:
		answer, err = gift.NewMathRangeAnswer(definition.Initial, definition.Final, definition.Feedback)
	case AnswerTypeTrueFalse:
		answer, err = gift.NewTrueFalseAnswer(definition.Answer, definition.Feedback)
	case AnswerTypeChoice:
		answer, err = gift.NewChoiceAnswer(definition.Correct, definition.Text, definition.Percentage, definition.Tolerance, definition.Feedback)
	case AnswerTypeMatching:
		if definition.Feedback != "" {
			slog.Default().Debug("matching answers do not support feedback",
				slog.String("key", definition.Key),
				slog.String("feedback", definition.Feedback),
			)
		}
		answer, err = gift.NewMatchingAnswer(definition.Key, definition.Value)
	default:
		return nil, fmt.Errorf("unknown answer type %q", definition.Type)
	}
	if err != nil {
		return nil, err
	}
	return answer, nil
}

// ReadQuestion decodes and builds one question using the decoding and answer
// settings of cfg.
func ReadQuestion(r io.Reader, cfg *config.Config) (*gift.Question, error) {
	definition, err := Decode(r, cfg.Decoding.Strict)
	if err != nil {
		return nil, fmt.Errorf("Decode() > %w", err)
	}

	builder, err := NewBuilder(InvalidAnswerPolicy(cfg.Answers.OnInvalid))
	if err != nil {
		return nil, fmt.Errorf("NewBuilder() > %w", err)
	}
	return builder.Build(definition)
}
