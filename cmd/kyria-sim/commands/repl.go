package commands

import (
	"bufio"
	"io"
	"strings"

	"kyria-go/errcode"
	"kyria-go/internal/printer"
	"kyria-go/internal/sim"
	"kyria-go/keycode"
	"kyria-go/layer"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

const replHelp = `press R C | release R C | tap R C   matrix key event
key NAME                            press and release a keycode or macro
layer [NAME...]                     set requested layers (none clears)
leds [num|caps|scroll...]           set host lock LEDs
turn INDEX cw|ccw                   one encoder detent
oled                                render the screen
lookup R C                          resolve a position
state                               show layer state
quit`

func newReplCmd() *cobra.Command {
	var side string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Drive a simulated half interactively",
		Long:  "Reads commands from stdin, one per line.\n\n" + replHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sim.Start(side, features())
			if err != nil {
				return err
			}
			defer s.Close()
			return repl(s, cmd.InOrStdin(), out(cmd))
		},
	}
	cmd.Flags().StringVar(&side, "side", "left", "left or right half")
	return cmd
}

func repl(s *sim.Session, in io.Reader, p *printer.Printer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		args, err := shlex.Split(sc.Text())
		if err != nil {
			p.Warning("%v", err)
			continue
		}
		if len(args) == 0 || strings.HasPrefix(args[0], "#") {
			continue
		}
		verb := strings.ToLower(args[0])
		if verb == "quit" || verb == "exit" {
			return nil
		}
		if err := dispatch(s, verb, args[1:], p); err != nil {
			p.Warning("%s: %v", verb, err)
			continue
		}
		report(s, p)
	}
	return sc.Err()
}

func dispatch(s *sim.Session, verb string, args []string, p *printer.Printer) error {
	switch verb {
	case "press", "release", "tap":
		if len(args) != 2 {
			return errcode.InvalidParams
		}
		row, col, err := sim.ParsePos(args[0], args[1])
		if err != nil {
			return err
		}
		if verb != "release" {
			s.Key(row, col, true)
		}
		if verb != "press" {
			s.Key(row, col, false)
		}
	case "key":
		if len(args) != 1 {
			return errcode.InvalidParams
		}
		kc, ok := macroNames[strings.ToLower(args[0])]
		if !ok {
			kc, ok = keycode.Parse(strings.ToUpper(args[0]))
		}
		if !ok {
			return errcode.InvalidParams
		}
		s.Code(kc, true)
		s.Code(kc, false)
	case "layer":
		st, err := sim.ParseLayers(args)
		if err != nil {
			return err
		}
		s.Layers(st)
		return showState(s, p)
	case "leds":
		l, err := sim.ParseLEDs(args)
		if err != nil {
			return err
		}
		s.LEDs(l)
	case "turn":
		if len(args) != 2 {
			return errcode.InvalidParams
		}
		idx, _, err := sim.ParsePos(args[0], "0")
		if err != nil {
			return errcode.InvalidParams
		}
		cw, err := sim.ParseDirection(args[1])
		if err != nil {
			return err
		}
		s.Turn(idx, cw)
	case "oled":
		f, err := s.Render()
		if err != nil {
			return err
		}
		p.Box(f.Text())
	case "lookup":
		if len(args) != 2 {
			return errcode.InvalidParams
		}
		row, col, err := sim.ParsePos(args[0], args[1])
		if err != nil {
			return err
		}
		r, err := s.Lookup(row, col)
		if err != nil {
			return err
		}
		p.Info("%s (layer %d)", r.Action, r.Layer)
	case "state":
		return showState(s, p)
	case "help":
		p.Info("%s", replHelp)
	default:
		return errcode.Unsupported
	}
	return nil
}

func showState(s *sim.Session, p *printer.Printer) error {
	ls, err := s.LayerState()
	if err != nil {
		return err
	}
	p.Info("layers requested=%v effective=%v highest=%s",
		layerList(ls.Requested), layerList(ls.Effective), ls.Name)
	return nil
}

func layerList(bits uint32) []layer.ID {
	var ids []layer.ID
	for i := 0; i < layer.MaxLayers; i++ {
		if layer.State(bits).Has(layer.ID(i)) {
			ids = append(ids, layer.ID(i))
		}
	}
	return ids
}

// report prints what the keymap emitted for the last command.
func report(s *sim.Session, p *printer.Printer) {
	steps, defaults := s.Drain()
	if len(steps) > 0 {
		var b strings.Builder
		for _, st := range steps {
			b.WriteString(stepText(st.Op, keycode.Keycode(st.Code)))
		}
		p.Success("sent %s", b.String())
	}
	for _, ev := range defaults {
		state := "up"
		if ev.Pressed {
			state = "down"
		}
		p.Step("default %s %s", keycode.Keycode(ev.Code), state)
	}
}

func stepText(op string, kc keycode.Keycode) string {
	switch op {
	case "down":
		return "{+" + kc.String() + "}"
	case "up":
		return "{-" + kc.String() + "}"
	}
	return "{" + kc.String() + "}"
}
