package tree

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/willbeason/treegen/pkg/geometry"
)

// Options are the per-render choices. They don't change once a State exists.
type Options struct {
	// Season picks the leaf colour. SeasonRandom chooses one in NewState.
	Season Season

	// Colors draws with the full palette; otherwise the tree is monochrome.
	Colors bool

	// Inverted draws a monochrome tree white on black instead of black on white.
	Inverted bool

	// AngleJitter randomizes how far each side branch turns.
	AngleJitter bool

	// LengthJitter randomly shortens each branch.
	LengthJitter bool

	// ExtraBranching adds wide side branches near the canopy. Winter trees
	// never get them.
	ExtraBranching bool

	// MixedFall draws a new fall colour for every leaf instead of one per tree.
	MixedFall bool
}

// A State is the draw cursor for a single tree along with everything fixed for
// the render.
//
// Only the Recursor moves the cursor, and it always puts Position, Angle and
// Depth back before returning.
type State struct {
	// Position is where the next branch starts.
	Position geometry.XY

	// Angle is the current heading in radians measured from straight up,
	// positive turning left.
	Angle float64

	// Depth is the level of the next branch. The trunk is at depth 0.
	Depth int

	Options
	Params  Params
	Palette Palette

	// FallColor is the leaf colour of a fall tree that isn't mixed, and nil
	// otherwise.
	FallColor *color.RGBA

	rng *rand.Rand
}

// NewState validates params and returns a State with the cursor at the bottom
// centre of the canvas, pointing straight up.
//
// r is the only source of randomness for the tree. If nil, a time-seeded
// source is used.
func NewState(opts Options, params Params, r *rand.Rand) (*State, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if _, ok := seasonNames[opts.Season]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSeason, opts.Season)
	}

	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := &State{
		Position: params.Start(),
		Options:  opts,
		Params:   params,
		Palette:  DefaultPalette(),
		rng:      r,
	}

	if state.Season == SeasonRandom {
		state.Season = randomSeason(r)
	}

	if state.Season == Fall && !state.MixedFall {
		c := state.Palette.Fall[r.Intn(len(state.Palette.Fall))]
		state.FallColor = &c
	}

	return state, nil
}

// Background is the colour the canvas should be filled with before drawing.
func (s *State) Background() color.RGBA {
	return s.Palette.Background(s.Options)
}
