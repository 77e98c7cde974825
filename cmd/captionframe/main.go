// Package main provides the CLI entry point for captionframe.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/captionframe/pkg/adapters/filesink"
	"github.com/user/captionframe/pkg/adapters/fontresolver"
	"github.com/user/captionframe/pkg/adapters/ggrenderer"
	"github.com/user/captionframe/pkg/adapters/logger"
	"github.com/user/captionframe/pkg/adapters/nullsink"
	"github.com/user/captionframe/pkg/adapters/osfilesystem"
	"github.com/user/captionframe/pkg/config"
	"github.com/user/captionframe/pkg/orchestrator"
	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/ports"
	"github.com/user/captionframe/pkg/stages/compose"
	"github.com/user/captionframe/pkg/summarizer"
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
		Name:    "captionframe",
		Usage:   l10n.T("Overlay fitted captions on photos for social media"),
		Version: version,
		Commands: []*cli.Command{
			renderCommand(),
			presetsCommand(),
			fontsCommand(),
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     l10n.T("Render a caption over a photo and save it as PNG"),
		ArgsUsage: "IMAGE",
		Flags: []cli.Flag{
			// Input/Output
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Input and Output")},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output PNG path (default: ig_<preset>.png)"), Category: l10n.T("Input and Output")},
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: l10n.T("Caption text; \\n starts a new line"), Category: l10n.T("Input and Output")},
			&cli.StringFlag{Name: "text-file", Usage: l10n.T("Read the caption from a file"), Category: l10n.T("Input and Output")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Write a Markdown render summary to this path"), Category: l10n.T("Input and Output")},

			// Frame
			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Usage: l10n.T("Frame preset (portrait, square, story)"), Category: l10n.T("Frame")},
			&cli.StringFlag{Name: "pan", Usage: l10n.T("Drag the photo by dx,dy pixels"), Category: l10n.T("Frame")},

			// Font
			&cli.StringFlag{Name: "font-dir", Usage: l10n.T("Directory containing font files"), Category: l10n.T("Font")},
			&cli.StringFlag{Name: "font-family", Aliases: []string{"f"}, Usage: l10n.T("Font family (Montserrat, Inter, Poppins, Roboto)"), Category: l10n.T("Font")},
			&cli.IntFlag{Name: "font-weight", Aliases: []string{"w"}, Usage: l10n.T("Font weight (300-900)"), Category: l10n.T("Font")},

			// Layout
			&cli.Float64Flag{Name: "line-height", Usage: l10n.T("Line height multiplier (1.0-1.6)"), Category: l10n.T("Layout")},
			&cli.IntFlag{Name: "margin", Aliases: []string{"m"}, Usage: l10n.T("Margin in pixels (16-120)"), Category: l10n.T("Layout")},
			&cli.Float64Flag{Name: "vertical", Usage: l10n.T("Vertical position, 0 = top, 1 = bottom"), Category: l10n.T("Layout")},
			&cli.Float64Flag{Name: "max-text-area", Usage: l10n.T("Text zone height as a fraction of the frame (0.3-0.6)"), Category: l10n.T("Layout")},
			&cli.IntFlag{Name: "max-font", Usage: l10n.T("Largest font size in pixels (40-280)"), Category: l10n.T("Layout")},

			// Color
			&cli.BoolFlag{Name: "auto-contrast", Usage: l10n.T("Pick black or white text from the photo (use --auto-contrast=false to disable)"), Category: l10n.T("Color")},
			&cli.StringFlag{Name: "text-color", Usage: l10n.T("Text color when auto contrast is off (hex, e.g., #ffffff)"), Category: l10n.T("Color")},
			&cli.BoolFlag{Name: "stroke", Usage: l10n.T("Outline the text (use --stroke=false to disable)"), Category: l10n.T("Color")},

			// Debug
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Enable debug output"), Category: l10n.T("Debug")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},

			// Logging
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		},
		Action: runRender,
	}
}

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: l10n.T("List the frame presets"),
		Action: func(c *cli.Context) error {
			for _, f := range pipeline.FramePresets() {
				fmt.Fprintf(c.App.Writer, "%-9s %4dx%-4d  %s  %s\n",
					f.Key, f.Width, f.Height, orchestrator.OutputName(f), f.Label)
			}
			return nil
		},
	}
}

func fontsCommand() *cli.Command {
	return &cli.Command{
		Name:  "fonts",
		Usage: l10n.T("List the font families and whether their files were found"),
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "font-dir", Usage: l10n.T("Directory containing font files")},
		},
		Action: func(c *cli.Context) error {
			fonts := fontresolver.New(c.String("font-dir"), osfilesystem.New(), logger.NewNoop())
			found := make(map[string]bool)
			for _, family := range fonts.Families() {
				found[family] = true
			}
			for _, family := range fontresolver.Families {
				status := l10n.T("fallback")
				if found[family] {
					status = l10n.T("found")
				}
				fmt.Fprintf(c.App.Writer, "%-11s %s\n", family, status)
			}
			return nil
		},
	}
}

// runRender executes the render command.
func runRender(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}
	cfg = cfg.Normalize(log)

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn(l10n.T("Interrupted, shutting down..."))
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	fonts := fontresolver.New(cfg.FontDir, fs, log)
	renderer := ggrenderer.New(fonts)

	if cfg.TextFile != "" {
		data, err := fs.ReadFile(cfg.TextFile)
		if err != nil {
			return fmt.Errorf("read text file: %w", err)
		}
		cfg.Text = strings.TrimRight(string(data), "\r\n")
	}

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	composeStage := compose.NewStage(renderer, sink, log)
	orch := orchestrator.New(composeStage, renderer, fs, log)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return err
	}

	if cfg.Summary != "" {
		formatter := summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
			summarizer.WithVersion(version),
		)
		if err := summarizer.NewWriter(formatter, fs).Write(cfg.Summary, result.Summary()); err != nil {
			return err
		}
		log.Info(l10n.F("Summary saved to %s", cfg.Summary))
	}

	return nil
}

// buildConfig layers defaults, the config file, the image argument and the
// flags that were set explicitly.
func buildConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.NArg() > 1 {
		return cfg, fmt.Errorf("expected one image, got %d", c.NArg())
	}
	if c.NArg() == 1 {
		cfg.Image = c.Args().First()
	}
	if cfg.Image == "" {
		return cfg, orchestrator.ErrNoImage
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("text") {
		cfg.Text = strings.ReplaceAll(c.String("text"), `\n`, "\n")
	}
	if c.IsSet("text-file") {
		cfg.TextFile = c.String("text-file")
	}
	if c.IsSet("summary") {
		cfg.Summary = c.String("summary")
	}
	if c.IsSet("preset") {
		cfg.Preset = c.String("preset")
	}
	if c.IsSet("pan") {
		pan, err := config.ParsePan(c.String("pan"))
		if err != nil {
			return cfg, err
		}
		cfg.Pan = pan
	}
	if c.IsSet("font-dir") {
		cfg.FontDir = c.String("font-dir")
	}
	if c.IsSet("font-family") {
		cfg.FontFamily = c.String("font-family")
	}
	if c.IsSet("font-weight") {
		cfg.FontWeight = c.Int("font-weight")
	}
	if c.IsSet("line-height") {
		cfg.LineHeight = c.Float64("line-height")
	}
	if c.IsSet("margin") {
		cfg.Margin = c.Int("margin")
	}
	if c.IsSet("vertical") {
		cfg.Vertical = c.Float64("vertical")
	}
	if c.IsSet("max-text-area") {
		cfg.MaxTextArea = c.Float64("max-text-area")
	}
	if c.IsSet("max-font") {
		cfg.MaxFontPx = c.Int("max-font")
	}
	if c.IsSet("auto-contrast") {
		cfg.AutoContrast = c.Bool("auto-contrast")
	}
	if c.IsSet("text-color") {
		cfg.TextColor = c.String("text-color")
		// An explicit color implies it should be used.
		if !c.IsSet("auto-contrast") {
			cfg.AutoContrast = false
		}
	}
	if c.IsSet("stroke") {
		cfg.Stroke = c.Bool("stroke")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, nil
}
