package tree

import (
	"image/color"
	"math"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/willbeason/treegen/pkg/geometry"
)

// A Surface is anything branches can be drawn onto.
type Surface interface {
	// DrawLine strokes a straight line. A width below 1 is a hairline.
	DrawLine(from, to geometry.XY, c color.Color, width int)
}

// Stats counts what a render drew.
type Stats struct {
	Segments      int
	Leaves        int
	ExtraBranches int
	// Deepest is the largest depth at which a segment was drawn.
	Deepest int
}

// A Recursor walks a State depth first, drawing each branch onto a Surface.
type Recursor struct {
	state   *State
	surface Surface
	log     *zap.Logger

	stats Stats
}

// NewRecursor returns a Recursor drawing state onto surface. log may be nil.
func NewRecursor(state *State, surface Surface, log *zap.Logger) *Recursor {
	if log == nil {
		log = zap.NewNop()
	}

	return &Recursor{
		state:   state,
		surface: surface,
		log:     log,
	}
}

// Draw renders the whole tree described by state onto surface.
func Draw(state *State, surface Surface, log *zap.Logger) Stats {
	r := NewRecursor(state, surface, log)
	r.DrawBranch()
	return r.Stats()
}

// Stats returns the totals for every DrawBranch call so far.
func (r *Recursor) Stats() Stats {
	return r.stats
}

// DrawBranch draws the branch at the cursor and, recursively, all of its
// children. The cursor is the same when it returns as when it was called.
func (r *Recursor) DrawBranch() {
	s := r.state
	depth := s.Depth
	if depth >= s.Params.MaxDepth {
		return
	}

	fill := r.fill(depth)
	length := r.length(depth)
	width := s.Params.WidthAt(depth)

	start := s.Position
	end := start.Project(length, s.Angle)

	if ce := r.log.Check(zapcore.DebugLevel, "branch"); ce != nil {
		ce.Write(
			zap.Int("depth", depth),
			zap.Float64("length", length),
			zap.Int("width", width),
			zap.Float64("angle", s.Angle),
		)
	}

	r.surface.DrawLine(start, end, fill, width)
	r.count(depth)

	// Children pivot on the end of this branch.
	s.Position = end
	s.Depth = depth + 1

	leftAngle := r.sideAngle()
	r.branch(-leftAngle, width, 1)

	if r.extraBranch(depth) {
		r.branch(-3*leftAngle, width, 1)
	}

	r.DrawBranch()

	rightAngle := r.sideAngle()
	r.branch(rightAngle, width, -1)

	if r.extraBranch(depth) {
		r.branch(3*rightAngle, width, -1)
	}

	s.Depth = depth
	s.Position = start
}

// branch turns the cursor, draws the child branch and turns back.
//
// Thick parents leave a visible notch where an angled child meets them, so the
// child's start is nudged sideways by a quarter of the parent's width.
// hSign is 1 for children on the left and -1 for those on the right.
func (r *Recursor) branch(turn float64, width int, hSign float64) {
	s := r.state
	oldAngle, oldPosition := s.Angle, s.Position

	s.Angle += turn
	if width > 1 {
		shift := float64((width - width/2) / 2)
		s.Position.X += hSign * math.Cos(s.Angle) * shift
		s.Position.Y += math.Sin(s.Angle) * shift
	}

	r.DrawBranch()

	s.Angle, s.Position = oldAngle, oldPosition
}

func (r *Recursor) fill(depth int) color.RGBA {
	s := r.state
	p := s.Palette

	if !s.Colors {
		if s.Inverted {
			return p.InvertedInk
		}
		return p.Ink
	}

	if depth != s.Params.MaxDepth-1 {
		if ce := r.log.Check(zapcore.DebugLevel, "branches"); ce != nil {
			ce.Write(zap.Int("depth", depth))
		}
		return p.Trunk
	}

	if ce := r.log.Check(zapcore.DebugLevel, "leaves"); ce != nil {
		ce.Write(zap.Stringer("season", s.Season))
	}
	switch s.Season {
	case Summer:
		return p.Summer
	case Spring:
		return p.Spring
	case Fall:
		if s.MixedFall || s.FallColor == nil {
			return p.Fall[s.rng.Intn(len(p.Fall))]
		}
		return *s.FallColor
	default:
		return p.WinterBud
	}
}

func (r *Recursor) length(depth int) float64 {
	s := r.state
	length := s.Params.LengthAt(depth)

	if s.LengthJitter {
		lo, hi := s.Params.MinLengthTenths, s.Params.MaxLengthTenths
		tenths := lo + s.rng.Intn(hi-lo+1)
		length *= float64(tenths) / 10.0
	}

	return length
}

// sideAngle is how far, in radians, a side branch turns from its parent.
func (r *Recursor) sideAngle() float64 {
	s := r.state
	degrees := s.Params.BaseAngle

	if s.AngleJitter {
		j := s.Params.AngleJitter
		degrees += float64(s.rng.Intn(2*j+1) - j)
	}

	return geometry.Radians(degrees)
}

// extraBranch decides whether a branch at depth gets another, wider child on
// one side. Each side decides independently.
func (r *Recursor) extraBranch(depth int) bool {
	s := r.state
	if !s.ExtraBranching || s.Season == Winter {
		return false
	}

	floor := s.Params.ExtraBranchFloor
	if s.Params.MaxDepth <= floor {
		return false
	}

	threshold := floor + s.rng.Intn(s.Params.MaxDepth-floor)
	if threshold > depth {
		return false
	}

	r.stats.ExtraBranches++
	return true
}

func (r *Recursor) count(depth int) {
	r.stats.Segments++
	if depth == r.state.Params.MaxDepth-1 {
		r.stats.Leaves++
	}
	if depth > r.stats.Deepest {
		r.stats.Deepest = depth
	}
}
