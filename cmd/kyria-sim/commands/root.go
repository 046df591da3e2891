package commands

import (
	"kyria-go/internal/printer"
	"kyria-go/kyria"

	"github.com/spf13/cobra"
)

var (
	noOLED    bool
	noEncoder bool
)

// NewRootCmd builds the command tree; tests build a fresh one per case.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kyria-sim",
		Short: "Run the Kyria knothc keymap on the host",
		Long: `kyria-sim drives the keymap callbacks the way the firmware does:
layer tables, the tri-layer rule, word-delete macros, the OLED status
screen and encoder bindings, without a keyboard attached.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&noOLED, "no-oled", false, "build the keymap without the OLED component")
	root.PersistentFlags().BoolVar(&noEncoder, "no-encoder", false, "build the keymap without encoder support")

	root.AddCommand(newLayersCmd(), newOLEDCmd(), newMacroCmd(), newEncoderCmd(), newReplCmd())
	return root
}

func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printer.New(root.ErrOrStderr()).Error(err.Error(), "")
	}
	return err
}

func features() kyria.Features {
	return kyria.Features{OLED: !noOLED, Encoder: !noEncoder}
}

func out(cmd *cobra.Command) *printer.Printer { return printer.New(cmd.OutOrStdout()) }
