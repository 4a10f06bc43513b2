// Package scenario loads line-design cases from HCL files, so a batch of
// spans can be described declaratively and run through the engine in one
// command.
//
// A scenario file holds one or more labeled line blocks:
//
//	line "river-crossing" {
//	  voltage_kv = 115
//	  exposure   = "C"
//
//	  conductor {
//	    catalog = "drake"
//	  }
//
//	  span {
//	    length    = 300
//	    wind_span = 300
//	    height    = 70
//	  }
//
//	  environment {
//	    ice_thickness = 0.25
//	    wind_speed    = 30
//	  }
//	}
//
// The conductor block either names a catalog code word or spells out
// diameter, weight, and rbs inline.
package scenario

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/gridclear/sagcalc/internal/catalog"
	"github.com/gridclear/sagcalc/internal/engine"
)

// Case is one fully resolved line case, ready for the engine.
type Case struct {
	Name  string
	Input engine.Input
}

type fileHCL struct {
	Lines []lineHCL `hcl:"line,block"`
}

type lineHCL struct {
	Name        string       `hcl:"name,label"`
	VoltageKV   float64      `hcl:"voltage_kv"`
	Exposure    *string      `hcl:"exposure,optional"`
	Conductor   conductorHCL `hcl:"conductor,block"`
	Span        spanHCL      `hcl:"span,block"`
	Environment *envHCL      `hcl:"environment,block"`
}

type conductorHCL struct {
	Catalog  *string  `hcl:"catalog,optional"`
	Name     *string  `hcl:"name,optional"`
	Diameter *float64 `hcl:"diameter,optional"`
	Weight   *float64 `hcl:"weight,optional"`
	RBS      *float64 `hcl:"rbs,optional"`
}

type spanHCL struct {
	Length   float64  `hcl:"length"`
	WindSpan *float64 `hcl:"wind_span,optional"`
	Height   float64  `hcl:"height"`
}

type envHCL struct {
	IceThickness *float64 `hcl:"ice_thickness,optional"`
	WindSpeed    *float64 `hcl:"wind_speed,optional"`
}

// Load parses a scenario file from disk and resolves every case in file
// order.
func Load(path string) ([]Case, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", path, diags)
	}
	return decode(file)
}

// Parse resolves scenario source held in memory; filename only labels
// diagnostics.
func Parse(filename string, src []byte) ([]Case, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %w", filename, diags)
	}
	return decode(file)
}

func decode(file *hcl.File) ([]Case, error) {
	var parsed fileHCL
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("decode scenario: %w", diags)
	}
	if len(parsed.Lines) == 0 {
		return nil, fmt.Errorf("scenario holds no line blocks")
	}

	seen := make(map[string]bool, len(parsed.Lines))
	cases := make([]Case, 0, len(parsed.Lines))
	for _, line := range parsed.Lines {
		if seen[line.Name] {
			return nil, fmt.Errorf("duplicate line block %q", line.Name)
		}
		seen[line.Name] = true

		c, err := resolveLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line.Name, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func resolveLine(line lineHCL) (Case, error) {
	spec, err := resolveConductor(line.Conductor)
	if err != nil {
		return Case{}, err
	}

	in := engine.Input{
		Conductor: spec,
		Span: engine.SpanGeometry{
			Length:    line.Span.Length,
			WindSpan:  line.Span.Length,
			AvgHeight: line.Span.Height,
		},
		VoltageClassKV: line.VoltageKV,
	}
	if line.Span.WindSpan != nil {
		in.Span.WindSpan = *line.Span.WindSpan
	}
	if line.Environment != nil {
		if line.Environment.IceThickness != nil {
			in.Environment.IceThickness = *line.Environment.IceThickness
		}
		if line.Environment.WindSpeed != nil {
			in.Environment.WindSpeed = *line.Environment.WindSpeed
		}
	}
	if line.Exposure != nil {
		exposure, err := engine.Exposure(*line.Exposure)
		if err != nil {
			return Case{}, err
		}
		in.Exposure = &exposure
	}

	if err := engine.Validate(in); err != nil {
		return Case{}, err
	}
	return Case{Name: line.Name, Input: in}, nil
}

func resolveConductor(c conductorHCL) (engine.ConductorSpec, error) {
	if c.Catalog != nil {
		if c.Diameter != nil || c.Weight != nil || c.RBS != nil {
			return engine.ConductorSpec{}, fmt.Errorf("conductor block mixes catalog = %q with inline properties", *c.Catalog)
		}
		entry, err := catalog.Lookup(*c.Catalog)
		if err != nil {
			return engine.ConductorSpec{}, err
		}
		return entry.Spec, nil
	}

	if c.Diameter == nil || c.Weight == nil || c.RBS == nil {
		return engine.ConductorSpec{}, fmt.Errorf("conductor block needs either catalog or all of diameter, weight, rbs")
	}
	spec := engine.ConductorSpec{
		Diameter: *c.Diameter,
		Weight:   *c.Weight,
		RBS:      *c.RBS,
	}
	if c.Name != nil {
		spec.Name = *c.Name
	}
	return spec, nil
}
