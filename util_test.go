package graze

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, cmp.Comparer(func(a, b *big.Rat) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}))
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// rat parses s as a rational and panics on failure.
func rat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad rational " + s)
	}
	return r
}

func sector(radius, sweep string) Sector {
	return Sector{Radius: rat(radius), SweepAngle: rat(sweep)}
}
