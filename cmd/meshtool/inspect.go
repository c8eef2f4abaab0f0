package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/symbionic/ornaments/internal/geometry"
)

type inspectReport struct {
	Kind            geometry.Kind `yaml:"kind"`
	SourceVertices  int           `yaml:"source_vertices"`
	Triangles       int           `yaml:"triangles"`
	Vertices        int           `yaml:"vertices"`
	Min             [3]float32    `yaml:"min"`
	Max             [3]float32    `yaml:"max"`
	Size            [3]float32    `yaml:"size"`
	DegenerateNorms int           `yaml:"degenerate_normals"`
}

func newInspectCmd() *cobra.Command {
	var (
		shape  string
		output string
	)
	cmd := &cobra.Command{
		Use:   "inspect <kind>",
		Short: "Build a shape and print its counts and bounds",
		Long: `Builds a shape with its default parameters, optionally overridden by
--shape, a YAML mapping such as "{radius: 2, radial_segments: 6}".`,
		Example: `  meshtool inspect torus --shape "{radius: 2, tube: 0.5, radial_segments: 6, tubular_segments: 16}"
  meshtool inspect extrude -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := geometry.ParseKind(args[0])
			if err != nil {
				return err
			}
			params := geometry.DefaultParams(kind)
			if shape != "" {
				if err := yaml.Unmarshal([]byte(shape), &params); err != nil {
					return fmt.Errorf("--shape: %w", err)
				}
			}
			rep, err := inspect(kind, params)
			if err != nil {
				return err
			}
			switch output {
			case "text":
				return printReport(cmd, rep, false)
			case "yaml":
				return printReport(cmd, rep, true)
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "", "YAML shape parameters merged over the defaults")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, yaml)")
	return cmd
}

func inspect(kind geometry.Kind, params geometry.Params) (inspectReport, error) {
	idx, err := geometry.BuildIndexed(kind, params)
	if err != nil {
		return inspectReport{}, err
	}
	geo := idx.ToNonIndexed()
	b := geo.Bounds()

	degenerate := 0
	for i := 0; i+2 < len(geo.Normals); i += 3 {
		n := geo.Normals[i]*geo.Normals[i] + geo.Normals[i+1]*geo.Normals[i+1] + geo.Normals[i+2]*geo.Normals[i+2]
		if n < 0.5 {
			degenerate++
		}
	}

	return inspectReport{
		Kind:            kind,
		SourceVertices:  idx.VertexCount(),
		Triangles:       geo.TriangleCount(),
		Vertices:        geo.VertexCount,
		Min:             b.Min,
		Max:             b.Max,
		Size:            b.Size(),
		DegenerateNorms: degenerate,
	}, nil
}

func printReport(cmd *cobra.Command, rep inspectReport, asYAML bool) error {
	out := cmd.OutOrStdout()
	if asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Fprintf(out, "Kind:            %s\n", rep.Kind)
	fmt.Fprintf(out, "Source vertices: %d\n", rep.SourceVertices)
	fmt.Fprintf(out, "Triangles:       %d\n", rep.Triangles)
	fmt.Fprintf(out, "Vertices:        %d\n", rep.Vertices)
	fmt.Fprintf(out, "Bounds:          [%.3f %.3f %.3f] .. [%.3f %.3f %.3f]\n",
		rep.Min[0], rep.Min[1], rep.Min[2], rep.Max[0], rep.Max[1], rep.Max[2])
	fmt.Fprintf(out, "Size:            %.3f x %.3f x %.3f\n", rep.Size[0], rep.Size[1], rep.Size[2])
	if rep.DegenerateNorms > 0 {
		fmt.Fprintf(out, "Degenerate normals: %d\n", rep.DegenerateNorms)
	}
	return nil
}
