package tree

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/treegen/pkg/geometry"
)

// MaxSupportedDepth bounds MaxDepth. Each level can multiply the number of
// branches by five.
const MaxSupportedDepth = 12

var (
	ErrInvalidDepth  = errors.New("invalid depth")
	ErrInvalidCanvas = errors.New("invalid canvas size")
	ErrInvalidSize   = errors.New("invalid trunk size")
	ErrInvalidWidth  = errors.New("invalid base width")
	ErrInvalidJitter = errors.New("invalid angle jitter")
	ErrUnknownSeason = errors.New("unknown season")
)

// Params are the fixed numbers that shape every tree.
type Params struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int

	// MaxDepth is the number of branch levels, counting the trunk.
	MaxDepth int

	// Size is the length of the trunk in pixels.
	Size float64

	// BaseWidth is the width of the trunk in pixels.
	BaseWidth int

	// BaseAngle is how far, in degrees, side branches turn away from their parent.
	BaseAngle float64

	// AngleJitter is the largest number of whole degrees added to or removed
	// from BaseAngle when angle jitter is enabled.
	AngleJitter int

	// LengthDecay and WidthDecay scale length and width once per level.
	LengthDecay float64
	WidthDecay  float64

	// MinLengthTenths and MaxLengthTenths bound the length jitter factor, in
	// tenths, inclusive.
	MinLengthTenths, MaxLengthTenths int

	// ExtraBranchFloor is the smallest depth threshold drawn when deciding
	// whether to add an extra branch.
	ExtraBranchFloor int
}

// DefaultParams returns the parameters for a 1600x900 tree ten levels deep.
func DefaultParams() Params {
	const width, height = 1600, 900

	return Params{
		Width:            width,
		Height:           height,
		MaxDepth:         10,
		Size:             height / 3,
		BaseWidth:        20,
		BaseAngle:        30,
		AngleJitter:      20,
		LengthDecay:      2.0 / 3.0,
		WidthDecay:       0.69,
		MinLengthTenths:  4,
		MaxLengthTenths:  10,
		ExtraBranchFloor: 4,
	}
}

// Validate reports the first parameter that can't produce a tree.
func (p Params) Validate() error {
	switch {
	case p.MaxDepth < 1 || p.MaxDepth > MaxSupportedDepth:
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidDepth, p.MaxDepth, MaxSupportedDepth)
	case p.Width < 1 || p.Height < 1:
		return fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, p.Width, p.Height)
	case p.Size < 1:
		return fmt.Errorf("%w: %v", ErrInvalidSize, p.Size)
	case p.BaseWidth < 1:
		return fmt.Errorf("%w: %d", ErrInvalidWidth, p.BaseWidth)
	case p.LengthDecay <= 0:
		return fmt.Errorf("%w: length decay %v", ErrInvalidSize, p.LengthDecay)
	case p.WidthDecay <= 0 || p.WidthDecay > 1:
		return fmt.Errorf("%w: width decay %v not in (0, 1]", ErrInvalidWidth, p.WidthDecay)
	case p.AngleJitter < 0:
		return fmt.Errorf("%w: %d", ErrInvalidJitter, p.AngleJitter)
	case p.MinLengthTenths < 0 || p.MinLengthTenths > p.MaxLengthTenths:
		return fmt.Errorf("%w: length factor range [%d, %d]", ErrInvalidSize, p.MinLengthTenths, p.MaxLengthTenths)
	}
	return nil
}

// Start is where the trunk begins, centred on the bottom edge.
func (p Params) Start() geometry.XY {
	return geometry.XY{X: float64(p.Width / 2), Y: float64(p.Height)}
}

// LengthAt is the unjittered length of a branch at depth.
func (p Params) LengthAt(depth int) float64 {
	return p.Size * math.Pow(p.LengthDecay, float64(depth))
}

// WidthAt is the line width of a branch at depth. It never increases with depth
// and reaches zero, drawn as a hairline, before the canopy.
func (p Params) WidthAt(depth int) int {
	return int(math.Floor(float64(p.BaseWidth) * math.Pow(p.WidthDecay, float64(depth))))
}
