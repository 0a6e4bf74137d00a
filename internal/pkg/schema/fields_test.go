package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmuriuki/campusreg/internal/app/models"
)

func TestCheckerRequired(t *testing.T) {
	var c Checker
	assert.False(t, c.Required("name", "", "Name is required"))
	assert.True(t, c.Required("other", "x", "Other is required"))

	errs := c.Errs()
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Path)
	assert.Equal(t, KindRequired, errs[0].Kind)
	assert.Equal(t, "Name is required", errs[0].Message)
}

func TestCheckerEmail(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"student@example.com", true},
		{"first.last+tag@sub.example.co.ke", true},
		{"Upper.Case@Example.COM", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var c Checker
			assert.Equal(t, tt.ok, c.Email("email", tt.value))
			if !tt.ok {
				assert.Equal(t, KindInvalidFormat, c.Errs()[0].Kind)
			}
		})
	}

	var c Checker
	c.Email("email", "")
	require.Len(t, c.Errs(), 1)
	assert.Equal(t, KindRequired, c.Errs()[0].Kind)
}

func TestCheckerPhone(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"+254712345678", true},
		{"0712 345 678", true},
		{"(020) 123-4567", true},
		{"abc123", false},
		{"0712x345", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var c Checker
			assert.Equal(t, tt.ok, c.Phone("phoneNumber", tt.value))
			if !tt.ok {
				err := c.Errs().First("phoneNumber")
				require.NotNil(t, err)
				assert.Equal(t, KindInvalidFormat, err.Kind)
			}
		})
	}
}

func TestCheckerOptionalPhone(t *testing.T) {
	var c Checker
	assert.True(t, c.OptionalPhone("emergencyContactPhone", nil))
	empty := ""
	assert.True(t, c.OptionalPhone("emergencyContactPhone", &empty))
	bad := "not-a-phone!"
	assert.False(t, c.OptionalPhone("emergencyContactPhone", &bad))
	require.Len(t, c.Errs(), 1)
}

func TestCheckerTimeOfDay(t *testing.T) {
	tests := []struct {
		value string
		norm  string
		ok    bool
	}{
		{"09:00", "09:00", true},
		{"9:30", "09:30", true},
		{"23:59", "23:59", true},
		{"00:00", "00:00", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"noon", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var c Checker
			norm, ok := c.TimeOfDay("startTime", tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.norm, norm)
		})
	}
}

func TestCheckerNumericBounds(t *testing.T) {
	var c Checker
	zero := 0
	neg := -5.0
	fee := 0.0
	seats := 40

	assert.False(t, c.PositiveInt("maxCapacity", &zero, "Max capacity"))
	assert.True(t, c.PositiveInt("maxCapacity", &seats, "Max capacity"))
	assert.True(t, c.PositiveInt("maxCapacity", nil, "Max capacity"))
	assert.False(t, c.NonNegative("registrationFee", &neg, "Registration fee"))
	assert.True(t, c.NonNegative("registrationFee", &fee, "Registration fee"))

	errs := c.Errs()
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.Equal(t, KindOutOfRange, e.Kind)
	}
}

func TestEnum(t *testing.T) {
	var c Checker
	v, ok := Enum(&c, "gender", "Male", models.GenderValues(), "gender")
	assert.True(t, ok)
	assert.Equal(t, models.GenderMale, v)

	_, ok = Enum(&c, "gender", "Unknown", models.GenderValues(), "gender")
	assert.False(t, ok)
	err := c.Errs().First("gender")
	require.NotNil(t, err)
	assert.Equal(t, KindInvalidEnum, err.Kind)
	// message names the offending value and the allowed set
	assert.Contains(t, err.Message, "Unknown")
	assert.Contains(t, err.Message, "Male")
	assert.Contains(t, err.Message, "Female")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-06-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/06/2025")
	assert.Error(t, err)
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// calendar-year subtraction: month and day are ignored, so a student
	// whose birthday falls later in the year already counts the new age
	assert.Equal(t, 25, AgeAt(time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, 25, AgeAt(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestErrorsAccessors(t *testing.T) {
	errs := Errors{
		{Path: "a", Message: "first", Kind: KindRequired},
		{Path: "b", Message: "second", Kind: KindTooShort},
	}
	assert.True(t, errs.Has("a"))
	assert.False(t, errs.Has("c"))
	assert.Equal(t, "second", errs.First("b").Message)
	assert.Nil(t, errs.First("c"))
	assert.Equal(t, "a: first; b: second", errs.Error())
}
