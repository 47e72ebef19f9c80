// Package testutil provides shared test helpers for creating config files and question fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOption configures optional fields when creating a config file fixture.
type ConfigOption func(*testConfig)

type testConfig struct {
	onInvalid string
	strict    bool
}

// WithOnInvalid sets answers.on_invalid.
func WithOnInvalid(policy string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.onInvalid = policy
	}
}

// WithStrictDecoding enables decoding.strict.
func WithStrictDecoding() ConfigOption {
	return func(cfg *testConfig) {
		cfg.strict = true
	}
}

// SetupTestConfig creates a config file in tmpDir and returns its path.
// By default invalid answers are rejected and decoding is not strict.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		onInvalid: "reject",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`answers:
  on_invalid: %s
decoding:
  strict: %t
`,
		cfg.onInvalid,
		cfg.strict,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// CreateQuestionDefinition writes a question definition YAML file into dir and returns its path.
func CreateQuestionDefinition(t *testing.T, dir, name, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, name+".yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
