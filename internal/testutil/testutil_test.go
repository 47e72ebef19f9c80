package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []ConfigOption
		want string
	}{
		{
			name: "defaults",
			want: "answers:\n  on_invalid: reject\ndecoding:\n  strict: false\n",
		},
		{
			name: "skip with strict decoding",
			opts: []ConfigOption{WithOnInvalid("skip"), WithStrictDecoding()},
			want: "answers:\n  on_invalid: skip\ndecoding:\n  strict: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			got := SetupTestConfig(t, tmpDir, tt.opts...)
			assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

			content, err := os.ReadFile(got)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))
		})
	}
}

func TestCreateQuestionDefinition(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "questions")
	got := CreateQuestionDefinition(t, dir, "capital", "text: What is the capital of France?\n")
	assert.Equal(t, filepath.Join(dir, "capital.yml"), got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "text: What is the capital of France?\n", string(content))
}
