package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bloomarc/internal/report"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [envelope.json]",
		Short: "Run the integrity checks and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvelope(args)
			if err != nil {
				return err
			}
			blob, err := report.Render(report.Verify(env))
			if err != nil {
				return err
			}
			fmt.Println(string(blob))
			return nil
		},
	}
}
