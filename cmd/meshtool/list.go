package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/symbionic/ornaments/internal/geometry"
	"github.com/symbionic/ornaments/internal/ornament"
	"github.com/symbionic/ornaments/internal/scene"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List shape kinds, presets and builtin scenes",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Kinds:")
	for _, k := range geometry.Kinds() {
		fmt.Fprintf(out, "  %s\n", k)
	}

	fmt.Fprintln(out, "\nPresets:")
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range ornament.Names() {
		p, err := ornament.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.Name, p.Kind, p.BaseColor.Hex())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nScenes:")
	for _, name := range scene.BuiltinNames() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
