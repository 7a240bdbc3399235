package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bitseq/internal/app"
	"bitseq/internal/domain"
	"bitseq/internal/logging"
	"bitseq/internal/services/sequence"
)

// options carries flag values and the logger for one command tree.
type options struct {
	bare    bool
	seed    string
	source  string
	verbose bool

	entropy io.Reader // nil means crypto/rand
	log     *logrus.Logger
}

func Execute() error {
	return newRootCmd(&options{}, os.Stdout, os.Stderr).Execute()
}

func newRootCmd(o *options, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "bitseq",
		Short:        "Print a pseudo-random 128-bit binary sequence",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			o.log = logging.New(cmd.ErrOrStderr(), o.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := domain.FormatLabelled
			if o.bare {
				format = domain.FormatBare
			}
			w, err := app.NewWire(app.Config{
				Source:  o.source,
				Seed:    o.seed,
				Format:  format,
				Entropy: o.entropy,
				Log:     o.log,
			})
			if err != nil {
				return err
			}
			seq, err := w.Generator.Generate()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sequence.Render(seq, w.Format))
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().BoolVar(&o.bare, "bare", false, "print the bits without the \"Random sequence: \" label")
	root.Flags().StringVar(&o.seed, "seed", "", "derive the keystream from this string for a reproducible sequence")
	root.Flags().StringVar(&o.source, "source", app.SourceKeystream, "bit source: keystream or system")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(analyzeCmd(o))
	return root
}
