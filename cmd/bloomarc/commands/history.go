package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bloomarc/internal/store"
	"bloomarc/internal/verify"
)

func historyCmd() *cobra.Command {
	var (
		limit  int
		digest string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded verification runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := wire.OpenHistory()
			if err != nil {
				return err
			}
			defer h.Close()

			var recs []store.Record
			if digest != "" {
				recs, err = h.ByDigest(digest)
			} else {
				recs, err = h.List(limit)
			}
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("No recorded runs.")
				return nil
			}
			for _, r := range recs {
				fmt.Printf("%s  %-4s  %s  coils_bad=%d  steps=%d  seed=%.9f  %s\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Result,
					verify.Truncate(r.Digest),
					r.BadCoils,
					r.Steps,
					r.SeedUsed,
					r.Source,
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "max runs to list")
	cmd.Flags().StringVarP(&digest, "digest", "d", "", "filter by recomputed core digest")
	return cmd
}
