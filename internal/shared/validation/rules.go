package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError is the rejection produced by the field rules below. Handlers use
// it to tell a malformed field (client error) apart from a store failure.
type FieldError struct {
	msg string
}

func (e *FieldError) Error() string {
	return e.msg
}

// IsFieldError reports whether err originated from a field rule.
func IsFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

func reject(value, kind string) error {
	return &FieldError{msg: fmt.Sprintf("'%s' is not a valid %s.", value, kind)}
}

// NotBlankMax builds a rule rejecting values that are empty or whitespace-only
// after trimming, or longer than max characters. Length is counted in Unicode
// code points, not bytes: a value of exactly max characters passes.
func NotBlankMax(kind string, max int) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) > max {
			return reject(s, kind)
		}
		return nil
	}
}

// NotBlankMaxMatch is NotBlankMax plus an anchored pattern match.
func NotBlankMaxMatch(kind string, max int, re *regexp.Regexp) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" || utf8.RuneCountInString(s) > max || !re.MatchString(s) {
			return reject(s, kind)
		}
		return nil
	}
}

// First returns the first non-nil error. Request DTOs use it to compose their
// field checks fail-fast, so only the first offending field is reported.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
