package operation

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/phrazzld/creatortune-gateway/internal/generation"
)

// enumeration is implemented by the fixed-set input types (tones, personas,
// formats) so a single validator tag covers all of them.
type enumeration interface {
	Valid() bool
}

var youtubeHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
	"youtu.be":        true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "known", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumeration)
		return ok && e.Valid()
	})
	mustRegister(v, "youtube_url", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return IsYouTubeURL(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsYouTubeURL reports whether raw is an absolute http(s) URL on one of the
// YouTube hosts.
func IsYouTubeURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return youtubeHosts[strings.ToLower(u.Hostname())]
}

// tagMessage overrides the fallback message when a specific tag fails.
type tagMessage struct {
	tag     string
	message string
}

// check validates v against its struct tags. The first failing field decides
// the message: a matching override if one exists, fallback otherwise.
func check(v interface{}, fallback string, overrides ...tagMessage) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		for _, o := range overrides {
			if fieldErrs[0].Tag() == o.tag {
				return generation.NewInputError(o.message, err)
			}
		}
	}
	return generation.NewInputError(fallback, err)
}

// nonBlank drops blank entries and trims the rest.
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
