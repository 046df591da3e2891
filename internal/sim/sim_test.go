package sim

import (
	"strings"
	"testing"

	"kyria-go/errcode"
	"kyria-go/keycode"
	"kyria-go/kyria"
	"kyria-go/layer"

	"github.com/stretchr/testify/require"
)

func TestParseLayers(t *testing.T) {
	st, err := ParseLayers([]string{"lower,Raise", "2"})
	require.NoError(t, err)
	require.Equal(t, layer.Of(kyria.Lower, kyria.Raise, kyria.Nav), st)

	_, err = ParseLayers([]string{"hyper"})
	require.Equal(t, errcode.UnknownLayer, errcode.Of(err))
}

func TestParseLEDsAndDirection(t *testing.T) {
	l, err := ParseLEDs([]string{"num,scroll"})
	require.NoError(t, err)
	require.Equal(t, keycode.LEDNumLock|keycode.LEDScrollLock, l)

	_, err = ParseLEDs([]string{"kana"})
	require.Error(t, err)

	cw, err := ParseDirection("CW")
	require.NoError(t, err)
	require.True(t, cw)
	_, err = ParseDirection("up")
	require.Error(t, err)
}

func TestSession_TriLayerAndOLED(t *testing.T) {
	s, err := Start("left", kyria.Features{OLED: true, Encoder: true})
	require.NoError(t, err)
	defer s.Close()

	s.Layers(layer.Of(kyria.Lower, kyria.Raise))
	ls, err := s.LayerState()
	require.NoError(t, err)
	require.Equal(t, "Adjust", ls.Name)

	s.LEDs(keycode.LEDCapsLock)
	f, err := s.Render()
	require.NoError(t, err)
	require.False(t, f.Raw)
	require.True(t, strings.HasPrefix(f.Lines[5], "Layer: Adjust"))
	require.Equal(t, "       CAPLCK        ", f.Lines[6])
}

func TestSession_MacroAndEncoder(t *testing.T) {
	s, err := Start("left", kyria.Features{OLED: true, Encoder: true})
	require.NoError(t, err)
	defer s.Close()

	s.Code(kyria.FwdDelWord, true)
	steps, defaults := s.Drain()
	require.Len(t, steps, 6)
	require.Empty(t, defaults)
	require.Equal(t, uint16(keycode.Right), steps[2].Code)

	s.Turn(0, false)
	steps, _ = s.Drain()
	require.Len(t, steps, 1)
	require.Equal(t, uint16(keycode.VolDown), steps[0].Code)

	s.Key(0, 6, true)
	_, defaults = s.Drain()
	require.Len(t, defaults, 1)
	require.Equal(t, uint16(keycode.Q), defaults[0].Code)
}

func TestSession_SecondaryShowsLogo(t *testing.T) {
	s, err := Start("right", kyria.Features{OLED: true})
	require.NoError(t, err)
	defer s.Close()

	f, err := s.Render()
	require.NoError(t, err)
	require.True(t, f.Raw)
	require.NotEmpty(t, strings.TrimSpace(f.Pixels()))
}

func TestLookup_InvalidPosition(t *testing.T) {
	s, err := Start("left", kyria.Features{})
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Lookup(8, 0)
	require.Equal(t, errcode.InvalidPosition, errcode.Of(err))

	lr, err := s.Lookup(0, 7)
	require.NoError(t, err)
	require.Equal(t, "LT(3,ESC)", lr.Action)
}
