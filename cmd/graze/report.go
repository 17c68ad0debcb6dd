package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"honnef.co/go/graze"
	"honnef.co/go/graze/internal/config"
)

// Report is the serialized form of a graze.Result. Exact values are kept as
// rational strings.
type Report struct {
	Sides    int    `json:"sides" yaml:"sides"`
	Position string `json:"position" yaml:"position"`
	OnVertex bool   `json:"on_vertex" yaml:"on_vertex"`

	Circles int `json:"circles" yaml:"circles"`
	Left    int `json:"left" yaml:"left"`
	Right   int `json:"right" yaml:"right"`

	Area    string  `json:"area" yaml:"area"`
	Decimal string  `json:"decimal" yaml:"decimal"`
	Approx  float64 `json:"approx" yaml:"approx"`
	Formula string  `json:"formula" yaml:"formula"`

	Sectors []SectorReport `json:"sectors,omitempty" yaml:"sectors,omitempty"`
}

// SectorReport is one sector of a Report, in region order.
type SectorReport struct {
	Side   string `json:"side" yaml:"side"`
	Radius string `json:"radius" yaml:"radius"`
	Sweep  string `json:"sweep" yaml:"sweep"`
	Area   string `json:"area" yaml:"area"`
}

func newReport(res graze.Result, prec int, withSectors bool) Report {
	r := Report{
		Sides:    res.Sides,
		Position: res.Position.RatString(),
		OnVertex: res.Anchor.OnVertex,
		Circles:  res.Circles(),
		Left:     res.LeftCount,
		Right:    res.RightCount,
		Area:     res.Area.RatString(),
		Decimal:  res.Decimal(prec),
		Approx:   res.Float64(),
		Formula:  res.Formula,
	}
	if withSectors {
		for i, s := range res.Sectors {
			r.Sectors = append(r.Sectors, SectorReport{
				Side:   sideOf(res, i),
				Radius: s.Radius.RatString(),
				Sweep:  s.SweepAngle.RatString(),
				Area:   s.Area().RatString(),
			})
		}
	}
	return r
}

// sideOf names the part of the region the i-th sector belongs to.
func sideOf(res graze.Result, i int) string {
	switch {
	case i == 0:
		return "anchor"
	case i <= res.LeftCount:
		return "left"
	default:
		return "right"
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, r Report, prec int) error {
	_, err := fmt.Fprintf(w, `Sides:    %d
Position: %s
Circles:  %d (left %d, right %d)
Area:     %s π
Decimal:  %s π
Approx:   %s
Formula:  %s
`,
		r.Sides, r.Position,
		r.Circles, r.Left, r.Right,
		r.Area, r.Decimal,
		strconv.FormatFloat(r.Approx, 'f', prec, 64),
		r.Formula)
	return err
}
