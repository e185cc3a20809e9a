package commands

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bloomarc/internal/app"
	"bloomarc/internal/domain"
	"bloomarc/internal/envelope"
)

var (
	home      string
	steps     int
	burnIn    int
	bins      int
	blendMode string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "bloomarc",
		Short:         "Envelope integrity verifier with guardian-arc corroboration",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load(".env")

			cfg, err := app.ConfigFromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("home") {
				cfg.Home = home
			}
			if cmd.Flags().Changed("steps") {
				cfg.Steps = steps
			}
			if cmd.Flags().Changed("burn-in") {
				cfg.BurnIn = burnIn
			}
			if cmd.Flags().Changed("bins") {
				cfg.Bins = bins
			}
			if cmd.Flags().Changed("blend-mode") {
				cfg.BlendMode = blendMode
			}

			wire, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.bloomarc)")
	root.PersistentFlags().IntVarP(&steps, "steps", "s", 2_000_000, "trajectory steps")
	root.PersistentFlags().IntVar(&burnIn, "burn-in", 1_000, "transient steps to discard")
	root.PersistentFlags().IntVarP(&bins, "bins", "b", 512, "density grid resolution")
	root.PersistentFlags().StringVarP(&blendMode, "blend-mode", "m", "composite", "seed blend mode (composite|first)")

	root.AddCommand(verifyCmd(), arcCmd(), renderCmd(), compareCmd(), genCmd(), historyCmd())
	return root.Execute()
}

// loadEnvelope reads the document from the path argument, or from stdin when
// no argument is given and input is piped.
func loadEnvelope(args []string) (domain.Envelope, error) {
	if len(args) > 0 {
		return envelope.Load(args[0])
	}
	info, err := os.Stdin.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice == 0 {
		return envelope.Decode(os.Stdin)
	}
	return domain.Envelope{}, errors.New("no envelope: pass a file path or pipe JSON on stdin")
}
