package graze

import (
	"fmt"
	"math/big"
)

// Sector is the region swept by a taut rope of length Radius through
// SweepAngle degrees while pivoting about a fixed vertex.
//
// Sectors produced by this package own their values; they must not be
// modified.
type Sector struct {
	Radius     *big.Rat
	SweepAngle *big.Rat
}

// NewSector returns a sector with copies of radius and sweep.
func NewSector(radius, sweep *big.Rat) Sector {
	return Sector{
		Radius:     new(big.Rat).Set(radius),
		SweepAngle: new(big.Rat).Set(sweep),
	}
}

// Area returns the sector's area as a multiple of π, that is
// Radius² × SweepAngle / 360.
func (s Sector) Area() *big.Rat {
	a := new(big.Rat).Mul(s.Radius, s.Radius)
	a.Mul(a, s.SweepAngle)
	return a.Quo(a, big.NewRat(360, 1))
}

// Term renders the sector's area as (S/360)(R)².
func (s Sector) Term() string {
	return fmt.Sprintf("(%s/360)(%s)²", s.SweepAngle.RatString(), s.Radius.RatString())
}

func (s Sector) String() string {
	return fmt.Sprintf("Sector{r=%s, θ=%s°}", s.Radius.RatString(), s.SweepAngle.RatString())
}

// Equal reports whether s and o have the same radius and sweep angle.
func (s Sector) Equal(o Sector) bool {
	return s.Radius.Cmp(o.Radius) == 0 && s.SweepAngle.Cmp(o.SweepAngle) == 0
}
