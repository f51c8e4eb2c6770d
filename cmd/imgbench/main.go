// Package main provides the CLI entry point for imgbench.
package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/imgbench/pkg/adapters/filesink"
	"github.com/user/imgbench/pkg/adapters/fswatcher"
	"github.com/user/imgbench/pkg/adapters/ggrenderer"
	"github.com/user/imgbench/pkg/adapters/logger"
	"github.com/user/imgbench/pkg/adapters/nullsink"
	"github.com/user/imgbench/pkg/adapters/osfilesystem"
	"github.com/user/imgbench/pkg/bench"
	"github.com/user/imgbench/pkg/config"
	"github.com/user/imgbench/pkg/convert"
	"github.com/user/imgbench/pkg/pixbuf"
	"github.com/user/imgbench/pkg/ports"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "imgbench",
		Usage:   l10n.T("Draw points and polylines over an image"),
		Version: version,
		// Point and line values contain commas themselves.
		DisableSliceFlagSeparator: true,
		Commands: []*cli.Command{
			renderCommand(),
			convertCommand(),
			versionCommand(),
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Value:    "info",
			Usage:    l10n.T("Log level (debug, info, warn, error)"),
			Category: l10n.T("Logging"),
		},
		&cli.BoolFlag{
			Name:     "quiet",
			Aliases:  []string{"Q"},
			Usage:    l10n.T("Suppress all log output"),
			Category: l10n.T("Logging"),
		},
	}
}

func renderCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("Configuration file (.yaml or .toml)"), Category: l10n.T("Input")},
		&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Usage: l10n.T("Image file to draw under the points"), Category: l10n.T("Input")},
		&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: l10n.T("Re-render when the config or image file changes"), Category: l10n.T("Input")},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output image path (.png or .jpg)"), Category: l10n.T("Output")},
		&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)"), Category: l10n.T("Output")},
		&cli.IntFlag{Name: "width", Aliases: []string{"W"}, Usage: l10n.T("Surface width (default: image width)"), Category: l10n.T("Surface")},
		&cli.IntFlag{Name: "height", Aliases: []string{"H"}, Usage: l10n.T("Surface height (default: image height)"), Category: l10n.T("Surface")},
		&cli.StringFlag{Name: "color", Usage: l10n.T("Stroke color (hex, e.g., #64aafaaa)"), Category: l10n.T("Drawing")},
		&cli.StringSliceFlag{Name: "point", Aliases: []string{"p"}, Usage: l10n.T("Marker position x,y (repeatable)"), Category: l10n.T("Drawing")},
		&cli.StringSliceFlag{Name: "line", Usage: l10n.T("Polyline x1,y1;x2,y2;... (repeatable)"), Category: l10n.T("Drawing")},
		&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
		&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
	}

	return &cli.Command{
		Name:   "render",
		Usage:  l10n.T("Render an image with markers and polylines to a file"),
		Flags:  append(flags, loggingFlags()...),
		Action: runRender,
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     l10n.T("Show the canonical and surface shapes of an image file"),
		ArgsUsage: "<image>",
		Action:    runConvert,
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("imgbench version %s", version))
			return nil
		},
	}
}

func newLogger(c *cli.Context, level string) ports.Logger {
	if c.Bool("quiet") {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// buildConfig merges the optional config file with command-line overrides.
// It returns the directory that relative paths in the file refer to.
func buildConfig(c *cli.Context) (config.Config, string, error) {
	cfg := config.Defaults()
	root := ""

	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.LoadFromFile(path)
		if err != nil {
			return cfg, "", fmt.Errorf("load config: %w", err)
		}
		root = filepath.Dir(path)
	}

	// Paths given on the command line are relative to the working directory.
	if c.IsSet("image") {
		p, err := filepath.Abs(c.String("image"))
		if err != nil {
			return cfg, "", err
		}
		cfg.Image = p
	}
	if c.IsSet("output") {
		p, err := filepath.Abs(c.String("output"))
		if err != nil {
			return cfg, "", err
		}
		cfg.Output = p
	}
	if c.IsSet("debug-dir") {
		p, err := filepath.Abs(c.String("debug-dir"))
		if err != nil {
			return cfg, "", err
		}
		cfg.DebugDir = p
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("color") {
		cfg.Color = c.String("color")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	for _, s := range c.StringSlice("point") {
		p, err := config.ParsePoint(s)
		if err != nil {
			return cfg, "", err
		}
		cfg.Items = append(cfg.Items, p)
	}
	for _, s := range c.StringSlice("line") {
		line, err := config.ParsePolyline(s)
		if err != nil {
			return cfg, "", err
		}
		cfg.Items = append(cfg.Items, line)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	if cfg.Output == "" {
		return cfg, "", fmt.Errorf("%w: output path is required", config.ErrInvalid)
	}
	return cfg, root, nil
}

func runRender(c *cli.Context) error {
	cfg, root, err := buildConfig(c)
	if err != nil {
		return err
	}

	log := newLogger(c, cfg.LogLevel)
	if path := c.String("config"); path != "" {
		log.Info("Loaded config from %s", path)
	}

	fs := osfilesystem.NewRooted(root)
	renderer := ggrenderer.New()
	conv := convert.New(fs, renderer, log)

	sess, err := newSession(cfg, fs, renderer, conv, log)
	if err == nil {
		err = sess.write()
	}
	if err != nil {
		log.Error("Failed to render: %s", err)
		return err
	}
	log.Info("Output saved to %s", cfg.Output)

	if !c.Bool("watch") {
		return nil
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	load := func() (config.Config, error) {
		cfg, _, err := buildConfig(c)
		return cfg, err
	}
	return watch(ctx, fswatcher.New(0, log), sess, load, watchPaths(c.String("config"), root, cfg))
}

// session is a bench bound to the output of one render configuration.
type session struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	conv     *convert.Converter
	log      ports.Logger

	cfg   config.Config
	bench *bench.Bench
}

// newSession draws the first bench frame for cfg.
func newSession(cfg config.Config, fs ports.FileSystem, renderer ports.Renderer, conv *convert.Converter, log ports.Logger) (*session, error) {
	var img *pixbuf.Array
	if cfg.Image != "" {
		var err error
		img, err = conv.Normalize(cfg.Image)
		if err != nil {
			return nil, err
		}
	}

	width, height := surfaceSize(cfg, img)

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return nil, fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	stroke, err := cfg.StrokeColor()
	if err != nil {
		return nil, err
	}

	log.Info("Rendering %dx%d surface", width, height)
	surface := renderer.CreateSurface(width, height, color.Black)

	opts := []bench.Option{
		bench.WithColor(stroke),
		bench.WithItems(cfg.Items.DrawList()),
	}
	if img != nil {
		opts = append(opts, bench.WithImage(img))
	}
	b, err := bench.New(conv, sink, log, surface, opts...)
	if err != nil {
		return nil, err
	}

	return &session{
		fs:       fs,
		renderer: renderer,
		conv:     conv,
		log:      log,
		cfg:      cfg,
		bench:    b,
	}, nil
}

// reload redraws the bench from cfg. The image is re-read from disk, a
// config without items clears the list, and a new surface is created when
// the size changes. On error nothing is written and the stroke color is
// left as it was.
func (s *session) reload(cfg config.Config) error {
	stroke, err := cfg.StrokeColor()
	if err != nil {
		return err
	}

	img := s.bench.Image()
	if cfg.Image != "" {
		img, err = s.conv.Normalize(cfg.Image)
		if err != nil {
			return err
		}
	}

	items := cfg.Items.DrawList()
	if items == nil {
		items = bench.DrawList{}
	}

	var target ports.Surface
	width, height := surfaceSize(cfg, img)
	if w, h := s.bench.Target().Size(); w != width || h != height {
		s.log.Info("Rendering %dx%d surface", width, height)
		target = s.renderer.CreateSurface(width, height, color.Black)
	}

	var src any
	if img != nil {
		src = img
	}
	prev := s.bench.Color()
	s.bench.UpdateColor(stroke.R, stroke.G, stroke.B, stroke.A)
	if err := s.bench.Refresh(src, items, target); err != nil {
		s.bench.UpdateColor(prev.R, prev.G, prev.B, prev.A)
		return err
	}

	s.cfg = cfg
	return s.write()
}

// write encodes the current target by the output extension.
func (s *session) write() error {
	data, err := s.renderer.EncodeImage(s.bench.Target().ToImage(), outputFormat(s.cfg.Output), s.cfg.Quality)
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(s.cfg.Output, data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// watch re-renders sess whenever one of paths changes, until ctx is done.
// Failed reloads are logged and the previous output is kept.
func watch(ctx context.Context, w ports.Watcher, sess *session, load func() (config.Config, error), paths []string) error {
	sess.log.Info("Watching %d files for changes", len(paths))
	return w.Watch(ctx, paths, func(changed []string) {
		sess.log.Info("Change detected: %s", strings.Join(changed, ", "))
		cfg, err := load()
		if err == nil {
			err = sess.reload(cfg)
		}
		if err != nil {
			sess.log.Error("Failed to render: %s", err)
			return
		}
		sess.log.Info("Output saved to %s", cfg.Output)
	})
}

// watchPaths lists the config file and the image it draws.
func watchPaths(configPath, root string, cfg config.Config) []string {
	var paths []string
	if configPath != "" {
		paths = append(paths, configPath)
	}
	if cfg.Image != "" {
		img := cfg.Image
		if !filepath.IsAbs(img) {
			img = filepath.Join(root, img)
		}
		paths = append(paths, img)
	}
	return paths
}

func surfaceSize(cfg config.Config, img *pixbuf.Array) (int, int) {
	width, height := cfg.Width, cfg.Height
	if img != nil {
		shape := img.Shape()
		if width == 0 {
			width = shape[1]
		}
		if height == 0 {
			height = shape[0]
		}
	}
	if width == 0 {
		width = config.FallbackWidth
	}
	if height == 0 {
		height = config.FallbackHeight
	}
	return width, height
}

func outputFormat(path string) ports.ImageFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return ports.FormatJPEG
	default:
		return ports.FormatPNG
	}
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New(l10n.T("Exactly one image argument is required"))
	}

	arr, err := convert.Normalize(c.Args().First())
	if err != nil {
		return err
	}
	surface, err := convert.ToRenderSurface(arr)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, l10n.F("Canonical shape: %v", arr.Shape()))
	fmt.Fprintln(c.App.Writer, l10n.F("Surface shape: %v", surface.Shape()))
	return nil
}
