package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/symbionic/ornaments/internal/scene"
)

func newSceneCmd() *cobra.Command {
	var (
		width      int
		breakpoint int
	)
	cmd := &cobra.Command{
		Use:   "scene <file|builtin>",
		Short: "Validate a scene description and list its ornaments",
		Long: `Parses a scene YAML file, or one of the builtin scenes when no such file
exists, and builds every ornament that would mount at --width.`,
		Example: `  meshtool scene partner --width 500
  meshtool scene ./my-scene.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := openScene(args[0])
			if err != nil {
				return err
			}
			return describeScene(cmd, desc, width, breakpoint)
		},
	}
	cmd.Flags().IntVar(&width, "width", 1280, "viewport width used for the responsive set")
	cmd.Flags().IntVar(&breakpoint, "breakpoint", 768, "width below which desktop-only ornaments are skipped")
	return cmd
}

func openScene(arg string) (*scene.Description, error) {
	if _, err := os.Stat(arg); err == nil {
		return scene.LoadFile(arg)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return scene.Builtin(arg)
}

func describeScene(cmd *cobra.Command, desc *scene.Description, width, breakpoint int) error {
	out := cmd.OutOrStdout()
	c := desc.Camera
	fmt.Fprintf(out, "Scene:  %s\n", desc.Name)
	fmt.Fprintf(out, "Camera: [%g %g %g] fov %g\n", c.Position[0], c.Position[1], c.Position[2], c.FOV)
	fmt.Fprintf(out, "Lights: ambient %g, %d directional, %d point\n",
		desc.Lights.Ambient, len(desc.Lights.Directional), len(desc.Lights.Point))

	visible := desc.Visible(width, breakpoint)
	fmt.Fprintf(out, "Ornaments at %dpx: %d of %d\n", width, len(visible), len(desc.Ornaments))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	var errs []error
	for i, in := range visible {
		p, opts, err := in.Resolve()
		if err != nil {
			errs = append(errs, fmt.Errorf("ornament %d: %w", i, err))
			continue
		}
		mesh, mat, err := p.Build(opts)
		if err != nil {
			errs = append(errs, fmt.Errorf("ornament %d: %w", i, err))
			continue
		}
		blend := "opaque"
		if mat.Transparent {
			blend = "transparent"
		}
		fmt.Fprintf(tw, "  %s\t[%g %g %g]\t%d vertices\t%s\n",
			p.Name, in.Position[0], in.Position[1], in.Position[2], mesh.VertexCount(), blend)
		mesh.Dispose()
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	return errors.Join(errs...)
}
