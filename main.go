// Command canvasCheckcode draws a check code image and prints the code.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"canvasCheckcode/render"
	"canvasCheckcode/widget"
)

type config struct {
	width, height string
	opts          render.CanvasOptions
	length        int
	seed          uint64
	seeded        bool
	fontFile      string
	output        string
	trace         bool
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	def := render.DefaultCanvasOptions()
	cfg := &config{opts: def}
	fs := flag.NewFlagSet("canvasCheckcode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.width, "width", "", "canvas width, e.g. 150px")
	fs.StringVar(&cfg.height, "height", "", "canvas height, e.g. 50px")
	fs.Float64Var(&cfg.opts.StarSize, "star-size", def.StarSize, "outer star radius")
	fs.IntVar(&cfg.opts.StarCount, "star-count", def.StarCount, "maximum number of stars")
	fs.Float64Var(&cfg.opts.FontSize, "font-size", def.FontSize, "font size in px")
	fs.IntVar(&cfg.length, "length", render.DefaultCodeLength, "check code length")
	fs.Uint64Var(&cfg.seed, "seed", 0, "seed for a reproducible image (default: system randomness)")
	fs.StringVar(&cfg.fontFile, "font", "", "TrueType font file, needed for CJK glyphs")
	fs.StringVar(&cfg.output, "o", "checkcode.png", "output PNG file")
	fs.BoolVar(&cfg.trace, "trace", false, "print draw commands instead of writing a PNG")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seeded = true
		}
	})

	var err error
	if cfg.opts.Width, err = render.ParseDimension(cfg.width, def.Width); err != nil {
		return nil, err
	}
	if cfg.opts.Height, err = render.ParseDimension(cfg.height, def.Height); err != nil {
		return nil, err
	}
	if cfg.opts.Width <= 0 || cfg.opts.Height <= 0 {
		return nil, fmt.Errorf("canvas must be positive, got %gx%g", cfg.opts.Width, cfg.opts.Height)
	}
	return cfg, nil
}

func run(cfg *config, stdout io.Writer) error {
	opts := []widget.Option{
		widget.WithCanvasOptions(cfg.opts),
		widget.WithCodeLength(cfg.length),
	}
	if cfg.seeded {
		opts = append(opts, widget.WithRandom(render.NewSeededRandom(cfg.seed)))
	}
	if cfg.fontFile != "" {
		opts = append(opts, widget.WithFontFile(cfg.fontFile))
	}
	var rec *render.Recorder
	if cfg.trace {
		rec = render.NewRecorder()
		opts = append(opts, widget.WithSurface(rec))
	}

	w, err := widget.New(opts...)
	if err != nil {
		return err
	}
	defer w.Close()

	code, err := w.Render()
	if err != nil {
		return err
	}
	if rec != nil {
		_, err = io.WriteString(stdout, rec.String())
		return err
	}

	data, err := w.PNG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.output, data, 0o644); err != nil {
		return err
	}
	slog.Info("check code written", "file", cfg.output, "stars", len(w.Frame().Stars))
	_, err = fmt.Fprintln(stdout, code)
	return err
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	render.SetLogger(logger)

	if err := run(cfg, os.Stdout); err != nil {
		slog.Error("check code failed", "err", err)
		os.Exit(1)
	}
}
