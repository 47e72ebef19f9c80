package quiz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name              string
		content           string
		strict            bool
		want              Definition
		wantErr           bool
		wantErrorContains string
	}{
		{
			name: "scalars keep their YAML types",
			content: `title: Capital
text: What is the capital of France?
answers:
  - type: choice
    correct: true
    text: Paris
    percentage: 50
  - type: choice
    correct: "~"
    text: London
    tolerance: 0.5
  - type: true_false
    answer: T
`,
			want: Definition{
				Title: "Capital",
				Text:  "What is the capital of France?",
				Answers: []AnswerDefinition{
					{Type: AnswerTypeChoice, Correct: true, Text: "Paris", Percentage: 50},
					{Type: AnswerTypeChoice, Correct: "~", Text: "London", Tolerance: 0.5},
					{Type: AnswerTypeTrueFalse, Answer: "T"},
				},
			},
		},
		{
			name: "integers beyond int64 keep their digits",
			content: `text: Big
answers:
  - type: math
    answer: 99999999999999999999
    tolerance: 5
  - type: math_range
    initial: -99_999_999_999_999_999_999
    final: 1.5
`,
			want: Definition{
				Text: "Big",
				Answers: []AnswerDefinition{
					{Type: AnswerTypeMath, Answer: "99999999999999999999", Tolerance: 5},
					{Type: AnswerTypeMathRange, Initial: "-99_999_999_999_999_999_999", Final: 1.5},
				},
			},
		},
		{
			name: "unknown fields are ignored by default",
			content: `text: 2 + 2
hint: four
`,
			want: Definition{Text: "2 + 2"},
		},
		{
			name: "unknown fields are rejected in strict mode",
			content: `text: 2 + 2
hint: four
`,
			strict:            true,
			wantErr:           true,
			wantErrorContains: "field hint not found",
		},
		{
			name:              "empty document",
			content:           "",
			wantErr:           true,
			wantErrorContains: "empty question definition",
		},
		{
			name:    "broken YAML",
			content: "text: [unterminated",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.content), tt.strict)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrorContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
