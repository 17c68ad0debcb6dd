package graze

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidPolygon indicates a polygon with fewer than three sides.
	ErrInvalidPolygon = errors.New("polygon must have at least 3 sides")
	// ErrInvalidPosition indicates an anchor position outside [0, 1].
	ErrInvalidPosition = errors.New("anchor position must be in [0, 1]")
)

// MinSides is the smallest number of sides a polygon can have.
const MinSides = 3

// Anchor describes the geometry around the point the rope is tied to.
//
// All values are owned by the Anchor and must not be modified.
type Anchor struct {
	// OnVertex reports whether the anchor coincides with a vertex.
	OnVertex bool
	// OutsideAngle is the exterior angle of the polygon, in degrees.
	OutsideAngle *big.Rat
	// InsideAngle is the interior angle of the polygon, in degrees.
	InsideAngle *big.Rat
	// InitialSweep is the angle swept by the full rope around the anchor
	// before it wraps for the first time in either direction.
	InitialSweep *big.Rat
	// SideLength is the length of one side relative to the rope.
	SideLength *big.Rat
}

// Classify derives the polygon's angles and the anchor's classification for
// a regular polygon with the given number of sides and an anchor at
// fractional position along one of its edges.
//
// Classify fails with [ErrInvalidPolygon] if sides < 3 and with
// [ErrInvalidPosition] if position is nil or outside [0, 1].
func Classify(sides int, position *big.Rat) (Anchor, error) {
	if err := validate(sides, position); err != nil {
		return Anchor{}, err
	}

	n := big.NewRat(int64(sides), 1)
	outside := new(big.Rat).Quo(big.NewRat(360, 1), n)
	inside := new(big.Rat).Sub(big.NewRat(180, 1), outside)
	onVertex := position.Sign() == 0 || position.Cmp(ratOne) == 0

	var sweep *big.Rat
	if onVertex {
		sweep = new(big.Rat).Sub(big.NewRat(360, 1), inside)
	} else {
		sweep = big.NewRat(180, 1)
	}

	return Anchor{
		OnVertex:     onVertex,
		OutsideAngle: outside,
		InsideAngle:  inside,
		InitialSweep: sweep,
		SideLength:   new(big.Rat).Quo(big.NewRat(2, 1), n),
	}, nil
}

// Offsets returns the fractional offsets into the first wrapped edge for the
// left and right directions.
func (a Anchor) Offsets(position *big.Rat) (left, right *big.Rat) {
	if a.OnVertex {
		return big.NewRat(1, 1), big.NewRat(1, 1)
	}
	return new(big.Rat).Set(position), new(big.Rat).Sub(ratOne, position)
}

func validate(sides int, position *big.Rat) error {
	if sides < MinSides {
		return fmt.Errorf("%w: got %d", ErrInvalidPolygon, sides)
	}
	if position == nil {
		return fmt.Errorf("%w: got nil", ErrInvalidPosition)
	}
	if position.Sign() < 0 || position.Cmp(ratOne) > 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidPosition, position.RatString())
	}
	return nil
}

// ParsePosition parses an anchor position such as "1/2", "0.5" or "5e-1".
// It does not check that the position lies in [0, 1]; [Compute] does that.
func ParsePosition(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse %q", ErrInvalidPosition, s)
	}
	return r, nil
}

// ratOne is read-only.
var ratOne = big.NewRat(1, 1)
