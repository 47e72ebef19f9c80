// Package quiz turns YAML question definitions into GIFT questions.
package quiz

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type AnswerType string

const (
	AnswerTypeMath      AnswerType = "math"
	AnswerTypeMathRange AnswerType = "math_range"
	AnswerTypeTrueFalse AnswerType = "true_false"
	AnswerTypeChoice    AnswerType = "choice"
	AnswerTypeMatching  AnswerType = "matching"
)

// Definition describes one question
type Definition struct {
	Title   string             `yaml:"title,omitempty"`
	Text    string             `yaml:"text" validate:"required"`
	Answers []AnswerDefinition `yaml:"answers,omitempty" validate:"dive"`
}

// AnswerDefinition describes one answer.
// Which fields are read depends on Type:
//
//	math:       answer, tolerance, feedback
//	math_range: initial, final, feedback
//	true_false: answer, feedback
//	choice:     correct, text, percentage, tolerance, feedback
//	matching:   key, value
//
// Raw values are kept as decoded so that strings, numbers and booleans reach the
// answer constructors unchanged.
type AnswerDefinition struct {
	Type AnswerType `yaml:"type" validate:"required,oneof=math math_range true_false choice matching"`

	Answer     any `yaml:"answer,omitempty"`
	Tolerance  any `yaml:"tolerance,omitempty"`
	Initial    any `yaml:"initial,omitempty"`
	Final      any `yaml:"final,omitempty"`
	Correct    any `yaml:"correct,omitempty"`
	Percentage any `yaml:"percentage,omitempty"`

	Text     string `yaml:"text,omitempty"`
	Key      string `yaml:"key,omitempty"`
	Value    string `yaml:"value,omitempty"`
	Feedback string `yaml:"feedback,omitempty"`
}

// Decode reads a single question definition.
// In strict mode fields that are not part of the definition are rejected.
func Decode(r io.Reader, strict bool) (Definition, error) {
	var document yaml.Node
	if err := yaml.NewDecoder(r).Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, fmt.Errorf("empty question definition: %w", err)
		}
		return Definition{}, fmt.Errorf("decoder.Decode() > %w", err)
	}
	keepLargeIntegers(&document)

	content, err := yaml.Marshal(&document)
	if err != nil {
		return Definition{}, fmt.Errorf("yaml.Marshal() > %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(strict)

	var definition Definition
	if err := decoder.Decode(&definition); err != nil {
		return Definition{}, fmt.Errorf("decoder.Decode() > %w", err)
	}
	return definition, nil
}

var integerToken = regexp.MustCompile(`^[-+]?[0-9]+$`)

// keepLargeIntegers retags plain integer scalars that do not fit in int64 as strings.
// Decoded into any they would otherwise lose their digits as float64.
func keepLargeIntegers(node *yaml.Node) {
	if node.Kind == yaml.ScalarNode && node.Style == 0 {
		value := strings.ReplaceAll(node.Value, "_", "")
		if integerToken.MatchString(value) {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				node.Tag = "!!str"
			}
		}
	}
	for _, child := range node.Content {
		keepLargeIntegers(child)
	}
}
