package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitQuantity(t *testing.T) {
	tests := []struct {
		name            string
		raw             int
		expectViolation Violation
	}{
		{name: "Typical count", raw: 500},
		{name: "Lower bound", raw: 1},
		{name: "Upper bound", raw: 1000},
		{name: "Zero", raw: 0, expectViolation: ViolationTooSmall},
		{name: "Above upper bound", raw: 1500, expectViolation: ViolationTooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewUnitQuantity("quantity", tt.raw)

			if tt.expectViolation != "" {
				require.Error(t, err)
				assert.True(t, IsViolation(err, tt.expectViolation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, q.Units())
			assert.True(t, q.Value().Equal(decimal.NewFromInt(int64(tt.raw))))
		})
	}
}

func TestNewKilogramQuantity(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		expectViolation Violation
	}{
		{name: "Typical weight", raw: "2.5"},
		{name: "Lower bound", raw: "0.05"},
		{name: "Upper bound", raw: "100.00"},
		{name: "Below lower bound", raw: "0.01", expectViolation: ViolationTooSmall},
		{name: "Above upper bound", raw: "100.01", expectViolation: ViolationTooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decimal.RequireFromString(tt.raw)
			q, err := NewKilogramQuantity("quantity", raw)

			if tt.expectViolation != "" {
				require.Error(t, err)
				assert.True(t, IsViolation(err, tt.expectViolation))
				return
			}
			require.NoError(t, err)
			assert.True(t, q.Kilograms().Equal(raw))
		})
	}
}

func TestNewOrderQuantity(t *testing.T) {
	widget, err := NewWidgetCode("productCode", "W1234")
	require.NoError(t, err)
	gizmo, err := NewGizmoCode("productCode", "G123")
	require.NoError(t, err)

	tests := []struct {
		name            string
		code            ProductCode
		raw             float64
		expectType      interface{}
		expectViolation Violation
	}{
		{name: "Widget takes whole units", code: widget, raw: 500, expectType: UnitQuantity{}},
		{name: "Widget rejects fractional units", code: widget, raw: 2.5, expectViolation: ViolationNotInteger},
		{name: "Widget count above bound", code: widget, raw: 1500, expectViolation: ViolationTooBig},
		{name: "Gizmo takes fractional kilograms", code: gizmo, raw: 2.5, expectType: KilogramQuantity{}},
		{name: "Gizmo accepts whole-number weight", code: gizmo, raw: 3, expectType: KilogramQuantity{}},
		{name: "Gizmo weight below bound", code: gizmo, raw: 0.01, expectViolation: ViolationTooSmall},
		{name: "NaN is not a decimal", code: gizmo, raw: math.NaN(), expectViolation: ViolationNotDecimal},
		{name: "Infinity is not a decimal", code: widget, raw: math.Inf(1), expectViolation: ViolationNotDecimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewOrderQuantity("quantity", tt.code, tt.raw)

			if tt.expectViolation != "" {
				require.Error(t, err)
				assert.True(t, IsViolation(err, tt.expectViolation))
				assert.Nil(t, q)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expectType, q)
			assert.True(t, q.Value().Equal(decimal.NewFromFloat(tt.raw)))
		})
	}
}
