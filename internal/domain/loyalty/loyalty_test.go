//go:build unit

package loyalty_test

import (
	"testing"

	"reddog/internal/domain/loyalty"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPointsForTotal(t *testing.T) {
	cases := []struct {
		total  string
		points int
	}{
		{"12.345", 123},  // 123.45 rounds down
		{"12.355", 124},  // 123.55 rounds up
		{"12.305", 123},  // 123.05 rounds down
		{"12.35", 124},   // exactly half rounds away from zero
		{"10.00", 100},
		{"0", 0},
	}

	for _, c := range cases {
		t.Run(c.total, func(t *testing.T) {
			got := loyalty.PointsForTotal(decimal.RequireFromString(c.total))
			assert.Equal(t, c.points, got)
		})
	}
}
