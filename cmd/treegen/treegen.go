package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/willbeason/treegen/pkg/canvas"
	"github.com/willbeason/treegen/pkg/tree"
)

// pipeName is the output path that writes the image to stdout.
const pipeName = "-"

var ErrTerminalOutput = errors.New("refusing to write an image to a terminal")

type renderFlags struct {
	tree.Options

	seed          int64
	depth         int
	width, height int
	background    string
	out           string
	format        string
	verbose       bool
}

func mainCmd() *cobra.Command {
	f := &renderFlags{}
	defaults := tree.DefaultParams()

	cmd := &cobra.Command{
		Use:   "treegen",
		Short: "Draw a tree by recursively splitting branches",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.Var(&f.Season, "season", "leaf season: winter, fall, summer, spring or random")
	flags.BoolVar(&f.Colors, "colors", true, "draw in colour rather than monochrome")
	flags.BoolVar(&f.Inverted, "inverted", false, "draw a monochrome tree white on black")
	flags.BoolVar(&f.AngleJitter, "angle-jitter", true, "randomize how far side branches turn")
	flags.BoolVar(&f.LengthJitter, "length-jitter", true, "randomize branch lengths")
	flags.BoolVar(&f.ExtraBranching, "extra-branching", true, "add wide branches near the canopy")
	flags.BoolVar(&f.MixedFall, "mixed-fall", false, "give every fall leaf its own colour")

	flags.Int64Var(&f.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flags.IntVar(&f.depth, "depth", defaults.MaxDepth, "number of branch levels")
	flags.IntVar(&f.width, "width", defaults.Width, "image width in pixels")
	flags.IntVar(&f.height, "height", defaults.Height, "image height in pixels")
	flags.StringVar(&f.background, "background", "", "background colour as #rrggbb, overriding the palette")

	flags.StringVarP(&f.out, "out", "o", "", "output image path, or - for stdout (default out/tree-<timestamp>.png)")
	flags.StringVar(&f.format, "format", "png", "image format when writing to stdout")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "verbose logging")

	return cmd
}

func runCmd(cmd *cobra.Command, f *renderFlags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	log, err := newLogger(f.verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	params := tree.DefaultParams()
	params.MaxDepth = f.depth
	params.Width = f.width
	params.Height = f.height
	params.Size = float64(f.height / 3)

	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state, err := tree.NewState(f.Options, params, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	var background color.Color = state.Background()
	if f.background != "" {
		background, err = parseHex(f.background)
		if err != nil {
			return err
		}
	}

	out := f.out
	if out == "" {
		out = filepath.Join("out", fmt.Sprintf("tree-%s.png", time.Now().Format("20060102150405")))
	}

	// Find problems with the destination before spending time on the render.
	var format imaging.Format
	if out == pipeName {
		format, err = imaging.FormatFromExtension(f.format)
		if err != nil {
			return fmt.Errorf("format %q: %w", f.format, err)
		}
		if isTerminal(cmd.OutOrStdout()) {
			return ErrTerminalOutput
		}
	} else if _, err = imaging.FormatFromFilename(out); err != nil {
		return fmt.Errorf("output %q: %w", out, err)
	}

	c, err := canvas.New(params.Width, params.Height, background)
	if err != nil {
		return err
	}

	start := time.Now()
	stats := tree.Draw(state, c, log)

	if out == pipeName {
		err = c.Encode(cmd.OutOrStdout(), format)
	} else {
		err = c.Save(out)
	}
	if err != nil {
		return err
	}

	log.Info("drew tree",
		zap.Stringer("season", state.Season),
		zap.Int64("seed", seed),
		zap.Int("segments", stats.Segments),
		zap.Int("leaves", stats.Leaves),
		zap.Int("extraBranches", stats.ExtraBranches),
		zap.Duration("elapsed", time.Since(start)),
		zap.String("path", out))

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	var l *zap.Logger
	var err error
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return l, nil
}

func parseHex(s string) (color.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", s, err)
	}
	return c, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
