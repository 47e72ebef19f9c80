package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator(t *testing.T) {
	type target struct {
		Mode    string `mapstructure:"mode_name" yaml:"mode" validate:"required"`
		Ignored string `mapstructure:"-" yaml:"-"`
	}

	tests := []struct {
		name    string
		tagName string
		want    string
	}{
		{
			name:    "mapstructure tag",
			tagName: "mapstructure",
			want:    "mode_name is a required field",
		},
		{
			name:    "yaml tag",
			tagName: "yaml",
			want:    "mode is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate, trans, err := NewValidator(tt.tagName)
			require.NoError(t, err)

			err = validate.Struct(target{})
			require.Error(t, err)

			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			require.Len(t, validationErrors, 1)
			assert.Equal(t, tt.want, validationErrors[0].Translate(trans))
		})
	}
}
