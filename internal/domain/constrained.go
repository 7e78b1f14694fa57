package domain

import (
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Smart-constructor primitives shared by every constrained domain value.
// Construction is the only place an invariant is checked; once a value is
// returned it is valid for the remainder of its lifetime and is never
// re-validated downstream. All functions here are total and side-effect-free.

// CreateString returns raw unchanged when it is non-empty and at most maxLen
// characters long. The bound counts characters, not bytes.
func CreateString(field string, maxLen int, raw string) (string, error) {
	if raw == "" {
		return "", newConstraintError(field, ViolationEmpty, "must not be empty")
	}
	if utf8.RuneCountInString(raw) > maxLen {
		return "", newConstraintError(field, ViolationTooLong, "must not be more than %d characters", maxLen)
	}
	return raw, nil
}

// CreateStringOption is CreateString for optional inputs: an empty raw is an
// explicit absence, not an error. The second result reports presence.
func CreateStringOption(field string, maxLen int, raw string) (string, bool, error) {
	if raw == "" {
		return "", false, nil
	}
	if utf8.RuneCountInString(raw) > maxLen {
		return "", false, newConstraintError(field, ViolationTooLong, "must not be more than %d characters", maxLen)
	}
	return raw, true, nil
}

// CreateInt returns raw unchanged when min <= raw <= max.
func CreateInt(field string, min, max, raw int) (int, error) {
	if raw < min {
		return 0, newConstraintError(field, ViolationTooSmall, "must not be less than %d", min)
	}
	if raw > max {
		return 0, newConstraintError(field, ViolationTooBig, "must not be greater than %d", max)
	}
	return raw, nil
}

// CreateDecimal returns raw unchanged when min <= raw <= max.
func CreateDecimal(field string, min, max, raw decimal.Decimal) (decimal.Decimal, error) {
	if raw.LessThan(min) {
		return decimal.Decimal{}, newConstraintError(field, ViolationTooSmall, "must not be less than %s", min.String())
	}
	if raw.GreaterThan(max) {
		return decimal.Decimal{}, newConstraintError(field, ViolationTooBig, "must not be greater than %s", max.String())
	}
	return raw, nil
}

// CreateLike returns raw unchanged when it matches pattern. The name argument
// describes the expected shape for the error message, e.g. "an email address".
func CreateLike(field, name string, pattern *regexp.Regexp, raw string) (string, error) {
	if raw == "" {
		return "", newConstraintError(field, ViolationEmpty, "must not be empty")
	}
	if !pattern.MatchString(raw) {
		return "", newConstraintError(field, ViolationPatternMismatch, "must look like %s", name)
	}
	return raw, nil
}
