package graze

import (
	"errors"
	"math"
	"testing"
)

func TestComputeSquareVertex(t *testing.T) {
	res, err := Compute(4, rat("0"))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Anchor.OnVertex {
		t.Error("anchor should be on a vertex")
	}
	diff(t, []Sector{
		sector("1", "270"),
		sector("1/2", "90"),
		sector("1/2", "90"),
	}, res.Sectors)
	if res.LeftCount != 1 || res.RightCount != 1 {
		t.Errorf("got counts %d/%d, want 1/1", res.LeftCount, res.RightCount)
	}
	diff(t, rat("7/8"), res.Area)
	if got, want := res.Decimal(5), "0.87500"; got != want {
		t.Errorf("got decimal %q, want %q", got, want)
	}
}

func TestComputeTriangleMidpoint(t *testing.T) {
	res, err := Compute(3, rat("1/2"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Anchor.OnVertex {
		t.Error("anchor should not be on a vertex")
	}
	diff(t, []Sector{
		sector("1", "180"),
		sector("2/3", "120"),
		sector("2/3", "120"),
	}, res.Sectors)
	diff(t, rat("43/54"), res.Area)
	if got, want := res.Decimal(5), "0.79630"; got != want {
		t.Errorf("got decimal %q, want %q", got, want)
	}
}

func TestComputeAsymmetric(t *testing.T) {
	res, err := Compute(4, rat("1/4"))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Sector{sector("7/8", "90"), sector("3/8", "90")}, res.Left())
	diff(t, []Sector{sector("5/8", "90"), sector("1/8", "90")}, res.Right())
	diff(t, sector("1", "180"), res.AnchorSector())
	diff(t, rat("53/64"), res.Area)
}

func TestResultSlicesDoNotAlias(t *testing.T) {
	res, err := Compute(4, rat("1/4"))
	if err != nil {
		t.Fatal(err)
	}
	_ = append(res.Left(), sector("99", "1"))
	_ = append(res.Right(), sector("99", "1"))
	diff(t, []Sector{sector("5/8", "90"), sector("1/8", "90")}, res.Right())
	diff(t, []Sector{
		sector("1", "180"),
		sector("7/8", "90"),
		sector("3/8", "90"),
		sector("5/8", "90"),
		sector("1/8", "90"),
	}, res.Sectors)
}

func TestComputeHexagon(t *testing.T) {
	res, err := Compute(6, rat("1"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Circles() != 5 {
		t.Errorf("got %d circles, want 5", res.Circles())
	}
	diff(t, rat("23/27"), res.Area)
}

func TestComputeInvalid(t *testing.T) {
	for _, sides := range []int{0, 2} {
		for _, pos := range []string{"0", "1/2", "1"} {
			if _, err := Compute(sides, rat(pos)); !errors.Is(err, ErrInvalidPolygon) {
				t.Errorf("Compute(%d, %s): got error %v, want ErrInvalidPolygon", sides, pos, err)
			}
		}
	}
	for sides := 3; sides <= 12; sides++ {
		for _, pos := range []string{"-0.1", "1.1"} {
			if _, err := Compute(sides, rat(pos)); !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("Compute(%d, %s): got error %v, want ErrInvalidPosition", sides, pos, err)
			}
		}
	}
}

var propertyPositions = []string{"0", "1", "1/2", "1/3", "3/10", "99/100", "1/7", "0.001"}

func TestComputeProperties(t *testing.T) {
	for sides := 3; sides <= 40; sides++ {
		for _, pos := range propertyPositions {
			res, err := Compute(sides, rat(pos))
			if err != nil {
				t.Fatalf("Compute(%d, %s): %v", sides, pos, err)
			}
			if got, want := len(res.Sectors), 1+res.LeftCount+res.RightCount; got != want {
				t.Errorf("Compute(%d, %s): got %d sectors, want %d", sides, pos, got, want)
			}
			for i, s := range res.Sectors {
				if s.Radius.Sign() <= 0 {
					t.Errorf("Compute(%d, %s): sector %d has radius %s", sides, pos, i, s.Radius.RatString())
				}
			}
			v, err := EvalFormula(res.Formula)
			if err != nil {
				t.Fatalf("Compute(%d, %s): cannot evaluate formula: %v", sides, pos, err)
			}
			if v.Cmp(res.Area) != 0 {
				t.Errorf("Compute(%d, %s): formula evaluates to %s, area is %s",
					sides, pos, v.RatString(), res.Area.RatString())
			}
		}
	}
}

func TestComputeVertexSymmetry(t *testing.T) {
	for sides := 3; sides <= 40; sides++ {
		zero, err := Compute(sides, rat("0"))
		if err != nil {
			t.Fatal(err)
		}
		one, err := Compute(sides, rat("1"))
		if err != nil {
			t.Fatal(err)
		}
		for _, res := range []Result{zero, one} {
			if res.LeftCount != res.RightCount {
				t.Errorf("sides=%d: got counts %d/%d", sides, res.LeftCount, res.RightCount)
			}
			diff(t, res.Left(), res.Right())
		}
		diff(t, zero.Sectors, one.Sectors)
	}
}

func TestComputeDeterministic(t *testing.T) {
	a, err := Compute(9, rat("2/7"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compute(9, rat("2/7"))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, a.Sectors, b.Sectors)
	diff(t, a.Area, b.Area)
	if a.Formula != b.Formula {
		t.Errorf("formulas differ: %q and %q", a.Formula, b.Formula)
	}
}

func TestComputeDoesNotRetainPosition(t *testing.T) {
	pos := rat("1/3")
	res, err := Compute(5, pos)
	if err != nil {
		t.Fatal(err)
	}
	pos.SetInt64(1)
	diff(t, rat("1/3"), res.Position)
}

func TestResultFloat64(t *testing.T) {
	res, err := Compute(4, rat("0"))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := res.Float64(), 0.875*math.Pi; math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, want %v", got, want)
	}
}
