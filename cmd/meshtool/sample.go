package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/symbionic/ornaments/internal/ornament"
	"github.com/symbionic/ornaments/internal/palette"
)

type stats struct {
	Min, Max, Mean float64
}

func (s *stats) add(v float64, n int) {
	if n == 0 || v < s.Min {
		s.Min = v
	}
	if n == 0 || v > s.Max {
		s.Max = v
	}
	s.Mean += (v - s.Mean) / float64(n+1)
}

type sampleReport struct {
	Preset       string
	At           time.Duration
	Time         float64
	Vertices     int
	Displacement stats
	Alpha        stats
	Rotation     [3]float32
	Offset       [3]float32
}

func newSampleCmd() *cobra.Command {
	var (
		at    time.Duration
		color string
		scale float32
	)
	cmd := &cobra.Command{
		Use:   "sample <preset>",
		Short: "Run one animation frame of a preset and print statistics",
		Example: `  meshtool sample exploding-torus --at 628ms
  meshtool sample heart --color "#ff0000" --scale 0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ornament.Options{Scale: scale}
			if color != "" {
				c, err := palette.Parse(color)
				if err != nil {
					return err
				}
				opts.Color = &c
			}
			rep, err := sample(args[0], at, opts)
			if err != nil {
				return err
			}
			printSample(cmd, rep)
			return nil
		},
	}
	cmd.Flags().DurationVar(&at, "at", 0, "elapsed time of the sampled frame")
	cmd.Flags().StringVar(&color, "color", "", "instance colour override")
	cmd.Flags().Float32Var(&scale, "scale", 0, "instance scale (0 keeps the preset size)")
	return cmd
}

func sample(name string, at time.Duration, opts ornament.Options) (sampleReport, error) {
	p, err := ornament.Lookup(name)
	if err != nil {
		return sampleReport{}, err
	}
	mesh, _, err := p.Build(opts)
	if err != nil {
		return sampleReport{}, err
	}
	defer mesh.Dispose()

	mesh.Update(at)

	orig, normals := mesh.Original(), mesh.Normals()
	rep := sampleReport{
		Preset:   p.Name,
		At:       at,
		Time:     mesh.Time(at),
		Vertices: mesh.VertexCount(),
	}
	for i := 0; i < mesh.VertexCount(); i++ {
		var d float64
		for k := 0; k < 3; k++ {
			o := i*3 + k
			d += float64(mesh.Positions[o]-orig[o]) * float64(normals[o])
		}
		rep.Displacement.add(d, i)
		rep.Alpha.add(float64(mesh.Colors[i*4+3]), i)
	}
	tr := mesh.Transform()
	rep.Rotation = [3]float32(tr.Rotation)
	rep.Offset = [3]float32(tr.Offset)
	return rep, nil
}

func printSample(cmd *cobra.Command, rep sampleReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Preset:       %s\n", rep.Preset)
	fmt.Fprintf(out, "Elapsed:      %s (t = %g)\n", rep.At, rep.Time)
	fmt.Fprintf(out, "Vertices:     %d\n", rep.Vertices)
	fmt.Fprintf(out, "Displacement: min %.4f  max %.4f  mean %.4f\n",
		rep.Displacement.Min, rep.Displacement.Max, rep.Displacement.Mean)
	fmt.Fprintf(out, "Alpha:        min %.4f  max %.4f  mean %.4f\n",
		rep.Alpha.Min, rep.Alpha.Max, rep.Alpha.Mean)
	fmt.Fprintf(out, "Rotation:     [%.4f %.4f %.4f]\n", rep.Rotation[0], rep.Rotation[1], rep.Rotation[2])
	if rep.Offset != ([3]float32{}) {
		fmt.Fprintf(out, "Offset:       [%.4f %.4f %.4f]\n", rep.Offset[0], rep.Offset[1], rep.Offset[2])
	}
}
