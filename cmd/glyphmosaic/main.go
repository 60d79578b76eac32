package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lmittmann/tint"

	"github.com/kripi-png/glyphmosaic/internal/imaging"
	"github.com/kripi-png/glyphmosaic/internal/mosaic"
	"github.com/kripi-png/glyphmosaic/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	Size       int    `short:"s" long:"size" default:"0" description:"Size of the square area covered by each letter, in px; 0 picks a size that divides the image evenly"`
	Color      string `short:"c" long:"color" default:"#262626" description:"Background color; hex or CSS color name"`
	FontSize   int    `long:"fontsize" default:"24" description:"Letters' font-size, in px"`
	Output     string `short:"o" long:"out" default:"output.html" description:"Path of the generated document"`
	Charset    string `long:"charset" default:"X" description:"Pool of letters to draw from in color mode"`
	Monochrome bool   `long:"use-monochrome" description:"Generate a black and white picture"`
	Common     bool   `long:"use-common" description:"Use the most common color in an area instead of the calculated average"`
	Dominant   bool   `long:"use-dominant" description:"Use the dominant color in an area instead of the calculated average"`
	ASCII      bool   `long:"ascii" description:"Encode brightness in letter shape instead of color"`
	Foreground string `long:"foreground" default:"#ffffff" description:"Letter color in ascii mode; hex"`
	Verbose    bool   `short:"V" long:"verbose" description:"Print debug information"`
	Version    bool   `long:"version" description:"Print version information"`

	Args struct {
		Filename string `positional-arg-name:"filename" description:"Path to the image file to convert"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("glyphmosaic %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))

	if err := run(opts, logger); err != nil {
		logger.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	if opts.Args.Filename == "" {
		return errors.New("missing input image argument")
	}
	if opts.Common && opts.Dominant {
		return errors.New("--use-common and --use-dominant are mutually exclusive")
	}

	strategy := mosaic.StrategyAverage
	if opts.Common {
		strategy = mosaic.StrategyMostCommon
	}
	if opts.Dominant {
		strategy = mosaic.StrategyDominant
	}

	// ASCII output encodes brightness, so it always wants the
	// single-channel decode that --use-monochrome asks for.
	monochrome := opts.Monochrome || opts.ASCII
	mode := imaging.ModeRGB
	if monochrome {
		mode = imaging.ModeLuminance
	}

	glyphMode := mosaic.GlyphRandom
	if opts.ASCII {
		glyphMode = mosaic.GlyphDarkness
	}

	src, err := imaging.Load(opts.Args.Filename, mode)
	if err != nil {
		return err
	}
	logger.Debug("image loaded",
		"path", opts.Args.Filename,
		"width", src.Width(), "height", src.Height(),
		"mode", src.Mode())

	result, err := mosaic.Convert(src, mosaic.Options{
		TileSize:   opts.Size,
		Strategy:   strategy,
		Monochrome: monochrome,
		GlyphMode:  glyphMode,
		Charset:    opts.Charset,
		Foreground: opts.Foreground,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	logger.Debug("image converted",
		"cells", len(result.Cells),
		"columns", result.Columns,
		"tile_size", result.TileSize,
		"strategy", strategy)

	style := render.Style{Background: opts.Color, FontSize: opts.FontSize}
	if err := render.WriteFile(opts.Output, result, style); err != nil {
		return err
	}

	logger.Info("document written", "path", opts.Output)
	return nil
}
