package schema

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// EmailPattern is a permissive syntactic email check
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// PhonePattern allows an optional leading '+' followed by digits,
	// spaces, hyphens and parentheses
	PhonePattern = `^[+]?[0-9\s\-()]+$`

	// TimeOfDayPattern matches a 24-hour clock reading; a single-digit
	// hour is accepted and zero-padded during normalization
	TimeOfDayPattern = `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`
)

// compiledPatterns caches compiled regex patterns
var compiledPatterns = struct {
	Email     *regexp.Regexp
	Phone     *regexp.Regexp
	TimeOfDay *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	Phone:     regexp.MustCompile(PhonePattern),
	TimeOfDay: regexp.MustCompile(TimeOfDayPattern),
}

// DateLayout is the wire format for date fields on form submissions
const DateLayout = "2006-01-02"

// Checker accumulates field errors across one validation pass.
// Check methods never short-circuit: every field of a record is checked
// and all failures are reported together.
type Checker struct {
	errs Errors
}

// Add records a failure against a field path.
func (c *Checker) Add(path, message string, kind ErrorKind) {
	c.errs = append(c.errs, FieldError{Path: path, Message: message, Kind: kind})
}

// Errs returns all collected errors, nil when everything passed.
func (c *Checker) Errs() Errors {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

// Required checks a raw non-empty string. No trimming is applied.
func (c *Checker) Required(path, value, message string) bool {
	if value == "" {
		c.Add(path, message, KindRequired)
		return false
	}
	return true
}

// Email checks a syntactically valid address. Empty values are reported
// as required, not as malformed.
func (c *Checker) Email(path, value string) bool {
	if value == "" {
		c.Add(path, "Email is required", KindRequired)
		return false
	}
	if !compiledPatterns.Email.MatchString(value) {
		c.Add(path, "Invalid email address", KindInvalidFormat)
		return false
	}
	return true
}

// Phone checks the permissive phone pattern.
func (c *Checker) Phone(path, value string) bool {
	if value == "" {
		c.Add(path, "Phone number is required", KindRequired)
		return false
	}
	if !compiledPatterns.Phone.MatchString(value) {
		c.Add(path, "Invalid phone number", KindInvalidFormat)
		return false
	}
	return true
}

// OptionalPhone checks the phone pattern only when a value is present.
func (c *Checker) OptionalPhone(path string, value *string) bool {
	if value == nil || *value == "" {
		return true
	}
	if !compiledPatterns.Phone.MatchString(*value) {
		c.Add(path, "Invalid phone number", KindInvalidFormat)
		return false
	}
	return true
}

// TimeOfDay checks a 24-hour HH:MM reading and returns it zero-padded so
// lexicographic comparison matches chronological order.
func (c *Checker) TimeOfDay(path, value string) (string, bool) {
	if value == "" {
		c.Add(path, "Time is required", KindRequired)
		return "", false
	}
	if !compiledPatterns.TimeOfDay.MatchString(value) {
		c.Add(path, "Invalid time format", KindInvalidFormat)
		return "", false
	}
	return NormalizeTimeOfDay(value), true
}

// MinLen checks a minimum rune length.
func (c *Checker) MinLen(path, value string, min int, message string) bool {
	if utf8.RuneCountInString(value) < min {
		if value == "" {
			c.Add(path, message, KindRequired)
		} else {
			c.Add(path, message, KindTooShort)
		}
		return false
	}
	return true
}

// Date parses a required date field. Form submissions carry dates as
// strings; the parsed value is normalized to UTC midnight.
func (c *Checker) Date(path, value, requiredMessage string) (time.Time, bool) {
	if value == "" {
		c.Add(path, requiredMessage, KindRequired)
		return time.Time{}, false
	}
	t, err := ParseDate(value)
	if err != nil {
		c.Add(path, "Invalid date", KindInvalidFormat)
		return time.Time{}, false
	}
	return t, true
}

// Positive checks n > 0 when the value is present.
func (c *Checker) Positive(path string, n *float64, label string) bool {
	if n == nil {
		return true
	}
	if *n <= 0 {
		c.Add(path, fmt.Sprintf("%s must be greater than 0", label), KindOutOfRange)
		return false
	}
	return true
}

// PositiveInt checks n > 0 when the value is present.
func (c *Checker) PositiveInt(path string, n *int, label string) bool {
	if n == nil {
		return true
	}
	if *n <= 0 {
		c.Add(path, fmt.Sprintf("%s must be greater than 0", label), KindOutOfRange)
		return false
	}
	return true
}

// NonNegative checks n >= 0 when the value is present.
func (c *Checker) NonNegative(path string, n *float64, label string) bool {
	if n == nil {
		return true
	}
	if *n < 0 {
		c.Add(path, fmt.Sprintf("%s must not be negative", label), KindOutOfRange)
		return false
	}
	return true
}

// Enum checks membership in a closed set and converts to the enum type.
// The error message names the offending value and the allowed set.
func Enum[T ~string](c *Checker, path, value string, allowed []T, label string) (T, bool) {
	if value == "" {
		c.Add(path, fmt.Sprintf("%s is required", label), KindRequired)
		return "", false
	}
	for _, a := range allowed {
		if value == string(a) {
			return a, true
		}
	}
	c.Add(path, fmt.Sprintf("%q is not a valid %s (allowed: %s)", value, label, joinEnum(allowed)), KindInvalidEnum)
	return "", false
}

// OptionalEnum checks membership only when a value is present.
func OptionalEnum[T ~string](c *Checker, path, value string, allowed []T, label string) (*T, bool) {
	if value == "" {
		return nil, true
	}
	v, ok := Enum(c, path, value, allowed, label)
	if !ok {
		return nil, false
	}
	return &v, true
}

func joinEnum[T ~string](allowed []T) string {
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}
