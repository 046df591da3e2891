package commands

import (
	"strings"

	"kyria-go/errcode"
	"kyria-go/keycode"
	"kyria-go/keymap"
	"kyria-go/kyria"
	"kyria-go/macro"

	"github.com/spf13/cobra"
)

var macroNames = map[string]keycode.Keycode{
	"fwd":          kyria.FwdDelWord,
	"fwd_del_word": kyria.FwdDelWord,
	"bck":          kyria.BckDelWord,
	"bck_del_word": kyria.BckDelWord,
}

func newMacroCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "macro <fwd|bck>",
		Short:     "Show the key steps a word-delete macro sends",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"fwd", "bck"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kc, ok := macroNames[strings.ToLower(args[0])]
			if !ok {
				return &errcode.E{C: errcode.InvalidParams, Op: "macro", Msg: args[0]}
			}
			if _, ok := kyria.MacroFor(kc); !ok {
				return &errcode.E{C: errcode.Unsupported, Op: "macro", Msg: kc.String()}
			}
			km := kyria.New(features())
			var rec macro.Recorder
			p := out(cmd)
			if km.ProcessRecord(kc, keymap.Record{Pressed: true}, &rec) {
				p.Warning("%s left to default handling", kc)
				return nil
			}
			p.Success("%s", rec.Steps)
			return nil
		},
	}
}
