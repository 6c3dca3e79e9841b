package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/neomorfeo/tenantadmin/internal/domain"
)

// Compile-time check: Validator implements domain.Validator.
var _ domain.Validator = (*Validator)(nil)

// canonicalUUIDLen is the length of the hyphenated 8-4-4-4-12 form.
const canonicalUUIDLen = 36

// Validator implements domain.Validator with struct tags checked by
// go-playground/validator and identifiers parsed as UUIDs.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the "notblank" rule registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		// Only fails for an empty tag or nil func.
		panic(err)
	}
	return &Validator{validate: v}
}

// IsWellFormedID reports whether value is a UUID in canonical form.
func (v *Validator) IsWellFormedID(value string) bool {
	if len(value) != canonicalUUIDLen {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// IsStructurallyValid reports whether obj is a non-nil struct (or pointer to
// one) whose validate tags all pass.
func (v *Validator) IsStructurallyValid(obj any) bool {
	if obj == nil {
		return false
	}
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return false
	}
	return v.validate.Struct(obj) == nil
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}
