package calculation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertDecimal compares numerically so "580.8" matches "580.800".
func assertDecimal(t *testing.T, want string, got decimal.Decimal, context ...string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s %s", want, got.String(), strings.Join(context, " "))
}
