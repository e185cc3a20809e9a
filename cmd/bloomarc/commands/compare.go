package commands

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"bloomarc/internal/density"
	"bloomarc/internal/envelope"
	"bloomarc/internal/render"
	"bloomarc/internal/report"
)

func compareCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "compare <envelope.json> <envelope.json>...",
		Short: "Render several envelopes side by side",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			imgs := make([]image.Image, 0, len(args))
			for _, path := range args {
				env, err := envelope.Load(path)
				if err != nil {
					return err
				}
				_, trajectory := report.Build(env, wire.Options())
				grid, xEdges, yEdges := density.Histogram(trajectory, wire.Config.Bins, nil)
				imgs = append(imgs, render.Field(grid, xEdges, yEdges))
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := render.Encode(f, render.Tile(imgs...)); err != nil {
				return err
			}
			fmt.Printf("Comparison written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "bloom_compare.png", "output PNG path")
	return cmd
}
