package commands

import (
	"kyria-go/internal/sim"
	"kyria-go/keymap"
	"kyria-go/kyria"
	"kyria-go/layer"
	"kyria-go/x/strx"

	"github.com/spf13/cobra"
)

// Keys per visual row of one half, thumb cluster last.
var halfRows = []int{6, 6, 8, 5}

func newLayersCmd() *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Print the layer tables in physical layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := out(cmd)
			tbl := kyria.Table()
			if err := tbl.Validate(); err != nil {
				return err
			}
			want, err := selectLayers(only, tbl.Len())
			if err != nil {
				return err
			}
			for _, id := range want {
				p.Step("%d %s", id, kyria.LayerName(id))
				for _, r := range visualRows(tbl, id) {
					p.Row(r.cells, func(i int) bool { return r.trns[i] })
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&only, "layer", nil, "layers to print (names or numbers)")
	return cmd
}

func selectLayers(names []string, n int) ([]layer.ID, error) {
	var ids []layer.ID
	if len(names) == 0 {
		for i := 0; i < n; i++ {
			ids = append(ids, layer.ID(i))
		}
		return ids, nil
	}
	st, err := sim.ParseLayers(names)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if st.Has(layer.ID(i)) {
			ids = append(ids, layer.ID(i))
		}
	}
	return ids, nil
}

type row struct {
	cells []string
	trns  []bool
}

// visualRows lays a layer out as on the keycaps: each left-half row
// followed by its right-half row, padded to the widest label.
func visualRows(tbl *keymap.Table, id layer.ID) []row {
	keys := kyria.Layout.Keys
	width := 0
	labels := make([]keymap.Action, len(keys))
	for i, p := range keys {
		a, _ := tbl.At(id, p)
		labels[i] = a
		if n := len(a.String()); n > width {
			width = n
		}
	}

	var rows []row
	i := 0
	for _, n := range halfRows {
		var r row
		for side := 0; side < 2; side++ {
			if side == 1 {
				r.cells = append(r.cells, " ")
				r.trns = append(r.trns, false)
			}
			for k := 0; k < n; k++ {
				a := labels[i]
				r.cells = append(r.cells, strx.PadRight(a.String(), width))
				r.trns = append(r.trns, a.Kind == keymap.KindTransparent)
				i++
			}
		}
		rows = append(rows, r)
	}
	return rows
}
