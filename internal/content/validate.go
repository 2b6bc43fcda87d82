package content

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Rohancherukuri/portfolio/internal/icons"
	"github.com/Rohancherukuri/portfolio/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if o, ok := field.Interface().(OptionalURL); ok {
				return o.String()
			}
			return nil
		}, OptionalURL{})

		_ = v.RegisterValidation("href", func(fl validator.FieldLevel) bool {
			return validHref(fl.Field().String())
		})

		_ = v.RegisterValidation("icon", func(fl validator.FieldLevel) bool {
			return icons.Known(fl.Field().String())
		})

		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			role := theme.Role(fl.Field().String())
			for _, known := range theme.Roles() {
				if role == known {
					return true
				}
			}
			return false
		})

		_ = v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
			return theme.IsHexColor(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validHref(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	default:
		return false
	}
}

// Validate checks that p can be rendered: required text is present, links
// are http(s) or mailto, icons resolve and palette overrides name real roles.
func Validate(p *Profile) error {
	if p == nil {
		return &ValidationError{Field: "profile", Message: "profile is nil"}
	}
	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return &ValidationError{Field: field, Message: msg, Err: err}
	}
	return &ValidationError{Field: "profile", Message: err.Error(), Err: err}
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

// PaletteOverrides converts the profile's palette section to theme roles.
func (p Profile) PaletteOverrides() map[theme.Role]string {
	if len(p.Palette) == 0 {
		return nil
	}
	out := make(map[theme.Role]string, len(p.Palette))
	for k, v := range p.Palette {
		out[theme.Role(k)] = v
	}
	return out
}

// Theme applies the profile's palette overrides to base.
func (p Profile) Theme(base theme.Theme) (theme.Theme, error) {
	overrides := p.PaletteOverrides()
	if overrides == nil {
		return base, nil
	}
	palette, err := base.Palette.With(overrides)
	if err != nil {
		return theme.Theme{}, &ValidationError{Field: "palette", Message: err.Error(), Err: err}
	}
	return base.WithPalette(palette), nil
}
