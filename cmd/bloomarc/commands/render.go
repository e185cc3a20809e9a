package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bloomarc/internal/density"
	"bloomarc/internal/render"
	"bloomarc/internal/report"
)

func renderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render [envelope.json]",
		Short: "Write the density field as a PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvelope(args)
			if err != nil {
				return err
			}

			_, trajectory := report.Build(env, wire.Options())
			grid, xEdges, yEdges := density.Histogram(trajectory, wire.Config.Bins, nil)

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := render.Encode(f, render.Field(grid, xEdges, yEdges)); err != nil {
				return err
			}
			fmt.Printf("Density field written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "bloom_field.png", "output PNG path")
	return cmd
}
