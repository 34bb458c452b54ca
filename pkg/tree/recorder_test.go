package tree

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/willbeason/treegen/pkg/geometry"
)

type segment struct {
	from, to geometry.XY
	c        color.Color
	width    int
	depth    int
}

// heading is the angle the segment was drawn at.
func (s segment) heading() float64 {
	return math.Atan2(-(s.to.X - s.from.X), -(s.to.Y - s.from.Y))
}

func (s segment) length() float64 {
	return math.Hypot(s.to.X-s.from.X, s.to.Y-s.from.Y)
}

// recorder is a Surface that remembers every line along with the depth the
// State was at when it was drawn.
type recorder struct {
	state    *State
	segments []segment
}

func (r *recorder) DrawLine(from, to geometry.XY, c color.Color, width int) {
	r.segments = append(r.segments, segment{
		from:  from,
		to:    to,
		c:     c,
		width: width,
		depth: r.state.Depth,
	})
}

func newTestState(t *testing.T, opts Options, maxDepth int, seed int64) *State {
	t.Helper()

	params := DefaultParams()
	params.MaxDepth = maxDepth

	state, err := NewState(opts, params, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	return state
}

func render(t *testing.T, state *State) ([]segment, Stats) {
	t.Helper()

	rec := &recorder{state: state}
	stats := Draw(state, rec, nil)

	return rec.segments, stats
}
