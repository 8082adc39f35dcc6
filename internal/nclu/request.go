package nclu

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Request describes one transaction. It is built once by the caller and not
// modified afterwards.
type Request struct {
	Commands    []string          `flag:"commands"`
	Template    string            `flag:"template" validate:"excluded_with=Commands"`
	Vars        map[string]string `flag:"var"`
	Commit      bool              `flag:"commit"`
	Atomic      bool              `flag:"atomic" validate:"excluded_with=Commit"`
	Abort       bool              `flag:"abort"`
	Description string            `flag:"description"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})
}

// Validate enforces the mutually exclusive options: commands or a template,
// and commit or atomic.
func (r Request) Validate() error {
	if len(r.Commands) == 0 {
		r.Commands = nil
	}

	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, validationMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "excluded_with":
		return fmt.Sprintf("%s and %s are mutually exclusive", strings.ToLower(fe.Param()), fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// commands resolves the request into the ordered list of net commands.
func (r Request) commands() ([]string, error) {
	if len(r.Commands) > 0 {
		return r.Commands, nil
	}
	rendered, err := RenderTemplate(r.Template, r.Vars)
	if err != nil {
		return nil, err
	}
	return CommandList(nil, rendered), nil
}
