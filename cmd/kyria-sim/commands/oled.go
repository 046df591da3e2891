package commands

import (
	"kyria-go/internal/sim"

	"github.com/spf13/cobra"
)

func newOLEDCmd() *cobra.Command {
	var (
		side   string
		layers []string
		locks  []string
	)
	cmd := &cobra.Command{
		Use:   "oled",
		Short: "Render one OLED frame",
		Example: `  kyria-sim oled --layer lower,raise --locks caps
  kyria-sim oled --side right`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sim.ParseLayers(layers)
			if err != nil {
				return err
			}
			leds, err := sim.ParseLEDs(locks)
			if err != nil {
				return err
			}
			s, err := sim.Start(side, features())
			if err != nil {
				return err
			}
			defer s.Close()

			s.Layers(st)
			s.LEDs(leds)
			f, err := s.Render()
			if err != nil {
				return err
			}
			p := out(cmd)
			p.Step("%s half, rotation 180", side)
			p.Box(f.Text())
			return nil
		},
	}
	cmd.Flags().StringVar(&side, "side", "left", "left (status) or right (logo)")
	cmd.Flags().StringSliceVar(&layers, "layer", nil, "active layers (names or numbers)")
	cmd.Flags().StringSliceVar(&locks, "locks", nil, "host lock LEDs: num, caps, scroll")
	return cmd
}
