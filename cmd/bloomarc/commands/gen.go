package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bloomarc/internal/domain"
	"bloomarc/internal/envelope"
)

func genCmd() *cobra.Command {
	var (
		coils   int
		genesis string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Emit a valid sample envelope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := envelope.Generate(coils, genesis)
			if err != nil {
				return err
			}
			blob, err := envelope.Marshal(env)
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Println(string(blob))
				return nil
			}
			if err := os.WriteFile(out, append(blob, '\n'), 0o644); err != nil {
				return err
			}
			fmt.Printf("Envelope written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().IntVarP(&coils, "coils", "c", 13, "number of chain coils")
	cmd.Flags().StringVarP(&genesis, "genesis", "g", domain.DefaultGenesis, "genesis timestamp salt")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default stdout)")
	return cmd
}
