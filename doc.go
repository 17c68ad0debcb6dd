// Package graze computes the area an animal can reach when it is tethered to
// the outside of a regular polygonal fence.
//
// The rope is tied at an anchor on the boundary of the polygon. As the animal
// walks around the fence, the rope wraps around successive vertices, and the
// free length shrinks by one side at every wrap. The reachable region is
// therefore a union of circular sectors: one sector around the anchor itself,
// followed by a sequence of ever smaller sectors in each direction around the
// polygon.
//
// # Exact arithmetic
//
// All quantities are exact rationals ([big.Rat]). Areas are expressed as
// multiples of π, so π never enters the computation; an approximation is only
// produced when explicitly asked for (see [Decimal] and [Result.Float64]).
// Because the representation is unbounded, the repeated subtraction performed
// while wrapping is free of rounding and overflow, and results are
// reproducible bit for bit.
//
// # Model
//
// A polygon with n sides has an exterior angle of 360/n degrees. Side lengths
// use the convention 2/n for a rope of unit length. This is not the chord
// length of a polygon inscribed in the unit circle, but it is the model used
// consistently throughout the package.
//
// The anchor's position is a fraction along one edge, in [0, 1]. Both ends of
// that interval denote a vertex, where the two adjacent edges are treated
// symmetrically.
//
// # Sequences
//
// [Wraps] returns an iter.Seq[Sector] describing one direction around the
// polygon. [WrapSequence] collects it into a slice. Sequences are finite and
// restartable; iterating twice yields identical sectors.
//
// # Formulas
//
// [Formula] renders a list of sectors as a sum of terms of the form
// (S/360)(R)². [EvalFormula] evaluates such a string exactly, which makes it
// possible to check that a displayed formula agrees with [TotalArea].
package graze
