package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalExpression(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"42", 42},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 4 - 3", 3},
		{"10 / 4", 2.5},
		{"-4 + 10", 6},
		{"--2", 2},
		{"2 * (3 + 4) / 7", 2},
		{"0.1+0.2*10", 2.1},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := evalExpression(tt.expr)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvalExpressionErrors(t *testing.T) {
	exprs := []string{
		"",
		"   ",
		"1 +",
		"* 2",
		"(1 + 2",
		"()",
		"1 2",
		"1 / 0",
		"4 / (2 - 2)",
		"a + b",
		"1..2",
		"total + 1",
	}
	for _, expr := range exprs {
		t.Run(expr, func(t *testing.T) {
			_, err := evalExpression(expr)
			assert.Error(t, err)
		})
	}
}
