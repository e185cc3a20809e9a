package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bloomarc/internal/report"
	"bloomarc/internal/store"
	"bloomarc/internal/verify"
)

func arcCmd() *cobra.Command {
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "arc [envelope.json]",
		Short: "Verify and run the seeded trajectory simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvelope(args)
			if err != nil {
				return err
			}

			rep, _ := report.Build(env, wire.Options())
			blob, err := report.Render(rep)
			if err != nil {
				return err
			}
			fmt.Println(string(blob))

			if !noRecord {
				source := "stdin"
				if len(args) > 0 {
					source = args[0]
				}
				recordHistory(source, verify.Digest(env.Core).Recomputed, rep)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "skip the history entry")
	return cmd
}

// recordHistory appends the run to the local history, best effort: a locked
// or broken database must not fail the verification output.
func recordHistory(source, digest string, rep report.Report) {
	h, err := wire.OpenHistory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return
	}
	defer h.Close()

	rec := store.Record{
		Source:    source,
		Digest:    digest,
		Result:    rep.Result,
		BadCoils:  len(rep.Chain.BadCoils),
		BlendMode: rep.Arc.BlendMode,
		Steps:     rep.Arc.TrajectorySteps,
		SeedUsed:  rep.Arc.SeedUsed,
	}
	if _, err := h.Put(rec); err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
	}
}
