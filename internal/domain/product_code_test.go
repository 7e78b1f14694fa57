package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductCode(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		expectKind      string
		expectViolation Violation
	}{
		{name: "Widget code", raw: "W1234", expectKind: "widget"},
		{name: "Gizmo code", raw: "G123", expectKind: "gizmo"},
		{name: "Empty input", raw: "", expectViolation: ViolationEmpty},
		{name: "Unrecognized sigil", raw: "X1", expectViolation: ViolationUnknownFormat},
		{name: "Widget sigil with too few digits", raw: "W12", expectViolation: ViolationPatternMismatch},
		{name: "Widget sigil with too many digits", raw: "W12345", expectViolation: ViolationPatternMismatch},
		{name: "Gizmo sigil with widget digit count", raw: "G1234", expectViolation: ViolationPatternMismatch},
		{name: "Lowercase sigil is not recognized", raw: "w1234", expectViolation: ViolationUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := NewProductCode("productCode", tt.raw)

			if tt.expectViolation != "" {
				require.Error(t, err)
				assert.True(t, IsViolation(err, tt.expectViolation))
				assert.Nil(t, code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.raw, code.Value())

			switch tt.expectKind {
			case "widget":
				assert.IsType(t, WidgetCode{}, code)
			case "gizmo":
				assert.IsType(t, GizmoCode{}, code)
			}
		})
	}
}

func TestNewWidgetCode(t *testing.T) {
	t.Run("Valid code", func(t *testing.T) {
		code, err := NewWidgetCode("productCode", "W0001")
		require.NoError(t, err)
		assert.Equal(t, "W0001", code.Value())
		assert.Equal(t, "W0001", code.String())
	})

	t.Run("Gizmo-shaped input is rejected", func(t *testing.T) {
		_, err := NewWidgetCode("productCode", "G123")
		assert.True(t, IsViolation(err, ViolationPatternMismatch))
	})
}

func TestNewGizmoCode(t *testing.T) {
	t.Run("Valid code", func(t *testing.T) {
		code, err := NewGizmoCode("productCode", "G999")
		require.NoError(t, err)
		assert.Equal(t, "G999", code.Value())
	})

	t.Run("Trailing characters are rejected", func(t *testing.T) {
		_, err := NewGizmoCode("productCode", "G123x")
		assert.True(t, IsViolation(err, ViolationPatternMismatch))
	})
}
