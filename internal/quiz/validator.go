package quiz

import (
	"errors"
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

func translateValidationError(err error, trans ut.Translator) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errorMsgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errorMsgs = append(errorMsgs, fmt.Sprintf("%s: %s", strings.TrimPrefix(e.Namespace(), "Definition."), e.Translate(trans)))
	}
	return fmt.Errorf("invalid question definition: %s", strings.Join(errorMsgs, ", "))
}
