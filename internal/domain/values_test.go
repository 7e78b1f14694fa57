package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewString50(t *testing.T) {
	t.Run("Valid name", func(t *testing.T) {
		s, err := NewString50("firstName", "Ada")
		require.NoError(t, err)
		assert.Equal(t, "Ada", s.Value())
	})

	t.Run("Over 50 characters", func(t *testing.T) {
		_, err := NewString50("firstName", strings.Repeat("a", 51))
		assert.True(t, IsViolation(err, ViolationTooLong))
	})

	t.Run("Accented name of 50 characters fits", func(t *testing.T) {
		s, err := NewString50("lastName", strings.Repeat("ü", 50))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("ü", 50), s.Value())
	})
}

func TestNewString50Option(t *testing.T) {
	t.Run("Absent value", func(t *testing.T) {
		_, ok, err := NewString50Option("addressLine2", "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Present value", func(t *testing.T) {
		s, ok, err := NewString50Option("addressLine2", "Suite 12")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Suite 12", s.Value())
	})
}

func TestNewEmailAddress(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		expectViolation Violation
	}{
		{name: "Plain address", raw: "ada@example.com"},
		{name: "Minimal shape", raw: "a@b"},
		{name: "Empty", raw: "", expectViolation: ViolationEmpty},
		{name: "Missing at-sign", raw: "not-an-email", expectViolation: ViolationPatternMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEmailAddress("emailAddress", tt.raw)

			if tt.expectViolation != "" {
				require.Error(t, err)
				assert.True(t, IsViolation(err, tt.expectViolation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, e.Value())
		})
	}
}

func TestNewZipCode(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		expectViolation Violation
	}{
		{name: "Five digits", raw: "94105"},
		{name: "Empty", raw: "", expectViolation: ViolationEmpty},
		{name: "Four digits", raw: "9410", expectViolation: ViolationPatternMismatch},
		{name: "Letters", raw: "9410x", expectViolation: ViolationPatternMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := NewZipCode("zipCode", tt.raw)

			if tt.expectViolation != "" {
				require.Error(t, err)
				assert.True(t, IsViolation(err, tt.expectViolation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, z.Value())
		})
	}
}

func TestNewOrderID(t *testing.T) {
	t.Run("Valid id", func(t *testing.T) {
		id, err := NewOrderID("orderId", "order-123")
		require.NoError(t, err)
		assert.Equal(t, "order-123", id.Value())
	})

	t.Run("Empty id", func(t *testing.T) {
		_, err := NewOrderID("orderId", "")
		assert.True(t, IsViolation(err, ViolationEmpty))
	})
}
