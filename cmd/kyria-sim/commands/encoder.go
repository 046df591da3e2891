package commands

import (
	"strconv"

	"kyria-go/errcode"
	"kyria-go/internal/sim"
	"kyria-go/kyria"
	"kyria-go/macro"

	"github.com/spf13/cobra"
)

func newEncoderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "encoder <index> <cw|ccw>",
		Short:   "Show what one encoder detent sends",
		Example: "  kyria-sim encoder 0 cw\n  kyria-sim encoder 1 ccw",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				return &errcode.E{C: errcode.InvalidParams, Op: "encoder", Msg: args[0]}
			}
			cw, err := sim.ParseDirection(args[1])
			if err != nil {
				return err
			}
			km := kyria.New(features())
			p := out(cmd)
			if !km.Features().Encoder {
				p.Warning("encoder support is disabled")
				return nil
			}
			var rec macro.Recorder
			km.EncoderUpdate(uint8(idx), cw, &rec)
			if len(rec.Steps) == 0 {
				p.Info("encoder %d has no binding", idx)
				return nil
			}
			p.Success("%s", rec.Steps)
			return nil
		},
	}
}
