package tree

import (
	"errors"
	"image/color"
	"math/rand"
	"testing"
)

func TestNewState(t *testing.T) {
	state := newTestState(t, Options{Season: Summer}, 10, 1)

	if state.Position.X != 800 || state.Position.Y != 900 {
		t.Errorf("got start %v, want {800 900}", state.Position)
	}
	if state.Angle != 0 {
		t.Errorf("got angle %v, want 0", state.Angle)
	}
	if state.Depth != 0 {
		t.Errorf("got depth %d, want 0", state.Depth)
	}
	if state.FallColor != nil {
		t.Errorf("summer tree has fall colour %v", *state.FallColor)
	}
}

func TestNewState_InvalidParams(t *testing.T) {
	for _, depth := range []int{-1, 0, MaxSupportedDepth + 1} {
		params := DefaultParams()
		params.MaxDepth = depth

		_, err := NewState(Options{}, params, rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrInvalidDepth) {
			t.Errorf("depth %d: got error %v, want %v", depth, err, ErrInvalidDepth)
		}
	}
}

func TestNewState_UnknownSeason(t *testing.T) {
	_, err := NewState(Options{Season: Season(42)}, DefaultParams(), nil)
	if !errors.Is(err, ErrUnknownSeason) {
		t.Errorf("got error %v, want %v", err, ErrUnknownSeason)
	}
}

func TestNewState_RandomSeason(t *testing.T) {
	seen := make(map[Season]bool)

	for seed := int64(0); seed < 200; seed++ {
		state := newTestState(t, Options{Season: SeasonRandom}, 10, seed)
		if state.Season == SeasonRandom {
			t.Fatalf("seed %d: season was not chosen", seed)
		}
		seen[state.Season] = true
	}

	for _, s := range Seasons {
		if !seen[s] {
			t.Errorf("%v was never chosen", s)
		}
	}
}

func TestNewState_FallColor(t *testing.T) {
	fixed := newTestState(t, Options{Season: Fall}, 10, 3)
	if fixed.FallColor == nil {
		t.Fatal("fall tree has no fall colour")
	}

	found := false
	for _, c := range fixed.Palette.Fall {
		if c == *fixed.FallColor {
			found = true
		}
	}
	if !found {
		t.Errorf("fall colour %v is not in the fall palette", *fixed.FallColor)
	}

	mixed := newTestState(t, Options{Season: Fall, MixedFall: true}, 10, 3)
	if mixed.FallColor != nil {
		t.Errorf("mixed fall tree has fixed colour %v", *mixed.FallColor)
	}
}

func TestState_Background(t *testing.T) {
	p := DefaultPalette()

	tcs := []struct {
		name string
		opts Options
		want color.RGBA
	}{
		{name: "colour", opts: Options{Colors: true}, want: p.Sky},
		{name: "colour ignores inversion", opts: Options{Colors: true, Inverted: true}, want: p.Sky},
		{name: "monochrome", opts: Options{}, want: p.Paper},
		{name: "inverted", opts: Options{Inverted: true}, want: p.Night},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			state := newTestState(t, tc.opts, 3, 1)
			if got := state.Background(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
