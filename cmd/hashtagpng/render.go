package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	hv "github.com/riverfjs/hashtagview-go"
	"github.com/riverfjs/hashtagview-go/internal/layout"
	"github.com/riverfjs/hashtagview-go/internal/raster"
)

var (
	renderText       string
	renderWidth      int
	renderHeight     int
	renderConfigPath string
	renderOut        string
	renderTap        string
	renderMarkdown   bool
	renderDebug      bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Lay out text and write its hashtag highlights as PNG",
	Long: `Lay out text in a fixed box, draw a rounded background behind every
hashtag, draw the glyphs on top and write the image as PNG.

Examples:
  # Render a line of text
  hashtagpng render --text "release notes for #rocket.chat" --out notes.png

  # Skip hashtags inside Markdown code and report what a tap hits
  hashtagpng render --markdown --text "see #docs, not ` + "`#code`" + `" --tap 40,10`,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderText, "text", "t", "", "text to render (default: read stdin)")
	f.IntVarP(&renderWidth, "width", "W", 320, "view width in pixels")
	f.IntVarP(&renderHeight, "height", "H", 120, "view height in pixels")
	f.StringVarP(&renderConfigPath, "config", "c", "", "YAML config file")
	f.StringVarP(&renderOut, "out", "o", "hashtags.png", "output PNG path")
	f.StringVar(&renderTap, "tap", "", "report the hashtag at x,y (view coordinates)")
	f.BoolVar(&renderMarkdown, "markdown", false, "skip hashtags inside code spans and blocks")
	f.BoolVar(&renderDebug, "debug", false, "log hashtags that could not be placed")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderWidth <= 0 || renderHeight <= 0 {
		return fmt.Errorf("invalid size %dx%d", renderWidth, renderHeight)
	}
	cfg, err := loadConfig(renderConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("markdown") {
		cfg.View.Markdown = renderMarkdown
	}
	cfg.View.Debug = renderDebug

	text := renderText
	if !cmd.Flags().Changed("text") {
		data, err := readAll(cmd)
		if err != nil {
			return err
		}
		text = data
	}

	face, err := loadFace(cfg.FontSize)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "falling back to basic font: %v\n", err)
		face = basicfont.Face7x13
	}
	engine := layout.NewFaceEngine(face)

	box := hv.Size{Width: float64(renderWidth), Height: float64(renderHeight)}
	snap := hv.LayoutPass(text, box, hv.WithConfig(&cfg.View), hv.WithEngine(engine))

	canvas := raster.NewCanvas(renderWidth, renderHeight)
	canvas.StrokeWidth = cfg.StrokeWidth
	canvas.Clear(cfg.Background)
	drawn := snap.Draw(canvas)
	drawGlyphs(canvas.Image, face, snap, cfg)

	if err := writePNG(renderOut, canvas.Image); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d lines, %d highlights\n", renderOut, len(snap.Lines), drawn)

	if renderTap != "" {
		p, err := parsePoint(renderTap)
		if err != nil {
			return err
		}
		if tok, ok := snap.Resolve(p); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "tap %s: %s\n", renderTap, tok.Text)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "tap %s: no hashtag\n", renderTap)
		}
	}
	return nil
}

func readAll(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func loadFace(size float64) (font.Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return face, nil
}

// drawGlyphs draws every line's text at its baseline, converted from text
// space into image space.
func drawGlyphs(dst *image.RGBA, face font.Face, snap *hv.Snapshot, cfg renderConfig) {
	runes := []rune(snap.Text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(cfg.Text),
		Face: face,
	}
	for _, line := range snap.Lines {
		if line.Range.Length == 0 {
			continue
		}
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(line.Origin.X * 64),
			Y: fixed.Int26_6((snap.Bounds.Height - line.Origin.Y) * 64),
		}
		d.DrawString(string(runes[line.Range.Start:line.Range.End()]))
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func parsePoint(s string) (hv.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return hv.Point{}, fmt.Errorf("tap %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return hv.Point{}, fmt.Errorf("tap x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return hv.Point{}, fmt.Errorf("tap y: %w", err)
	}
	return hv.Point{X: x, Y: y}, nil
}
