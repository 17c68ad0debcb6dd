package graze

import (
	"math"
	"math/big"
)

// Result is the reachable region for one polygon and anchor.
//
// Sectors holds the anchor's own sector, followed by the LeftCount sectors
// of the left direction and the RightCount sectors of the right direction.
type Result struct {
	Sides    int
	Position *big.Rat
	Anchor   Anchor

	Sectors    []Sector
	LeftCount  int
	RightCount int

	// Area is the total area as a multiple of π.
	Area *big.Rat
	// Formula renders Area as a sum of sector terms; see [Formula].
	Formula string
}

// Compute returns the area reachable by an animal tethered with a rope of
// unit length to a regular polygon with the given number of sides, at
// fractional position along one of its edges.
//
// Compute fails with [ErrInvalidPolygon] if sides < 3 and with
// [ErrInvalidPosition] if position is nil or outside [0, 1]. It does not
// retain position.
func Compute(sides int, position *big.Rat) (Result, error) {
	a, err := Classify(sides, position)
	if err != nil {
		return Result{}, err
	}

	leftOffset, rightOffset := a.Offsets(position)
	left := WrapSequence(leftOffset, a.SideLength, a.OutsideAngle)
	right := WrapSequence(rightOffset, a.SideLength, a.OutsideAngle)

	sectors := make([]Sector, 0, 1+len(left)+len(right))
	sectors = append(sectors, NewSector(ratOne, a.InitialSweep))
	sectors = append(sectors, left...)
	sectors = append(sectors, right...)

	return Result{
		Sides:      sides,
		Position:   new(big.Rat).Set(position),
		Anchor:     a,
		Sectors:    sectors,
		LeftCount:  len(left),
		RightCount: len(right),
		Area:       TotalArea(sectors),
		Formula:    Formula(sectors),
	}, nil
}

// Circles returns the number of sectors making up the region.
func (r Result) Circles() int { return len(r.Sectors) }

// AnchorSector returns the sector swept around the anchor itself.
func (r Result) AnchorSector() Sector { return r.Sectors[0] }

// Left returns the sectors of the left direction. Appending to the returned
// slice does not affect r.
func (r Result) Left() []Sector {
	end := 1 + r.LeftCount
	return r.Sectors[1:end:end]
}

// Right returns the sectors of the right direction. Appending to the
// returned slice does not affect r.
func (r Result) Right() []Sector {
	n := len(r.Sectors)
	return r.Sectors[1+r.LeftCount : n : n]
}

// Decimal renders the area, as a multiple of π, with prec fractional digits.
func (r Result) Decimal(prec int) string { return Decimal(r.Area, prec) }

// Float64 returns an approximation of the area in square units, π included.
// It is meant for display only.
func (r Result) Float64() float64 {
	f, _ := r.Area.Float64()
	return f * math.Pi
}
