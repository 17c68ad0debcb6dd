package graze

import (
	"iter"
	"math/big"
	"slices"
)

// Wraps returns the sectors formed as the rope wraps around successive
// vertices in one direction. offset is the fraction of the first wrapped edge
// that lies between the anchor and the first vertex.
//
// The first sector has radius 1 − offset × sideLength and is always produced.
// Every following sector is one side length shorter, and the sequence ends
// as soon as the radius is no longer positive. All sectors sweep
// outsideAngle degrees.
//
// The sequence is restartable and does not retain its arguments' values
// between iterations.
func Wraps(offset, sideLength, outsideAngle *big.Rat) iter.Seq[Sector] {
	step := new(big.Rat).Set(sideLength)
	sweep := new(big.Rat).Set(outsideAngle)
	start := new(big.Rat).Mul(offset, sideLength)
	start.Sub(ratOne, start)

	return func(yield func(Sector) bool) {
		radius := new(big.Rat).Set(start)
		// The first sector is unconditional, even if the offset has already
		// exhausted the rope.
		if !yield(NewSector(radius, sweep)) {
			return
		}
		for {
			radius.Sub(radius, step)
			if radius.Sign() <= 0 {
				return
			}
			if !yield(NewSector(radius, sweep)) {
				return
			}
		}
	}
}

// WrapSequence is like [Wraps] but returns a slice.
func WrapSequence(offset, sideLength, outsideAngle *big.Rat) []Sector {
	return slices.Collect(Wraps(offset, sideLength, outsideAngle))
}
