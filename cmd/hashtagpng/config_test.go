package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hv "github.com/riverfjs/hashtagview-go"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, *hv.DefaultConfig(), cfg.View)
	assert.Equal(t, 14.0, cfg.FontSize)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
highlight: "#ff8000"
background: "#000000"
padding:
  left: 1
  vertical: -2
  horizontal: 3
corner_radius: 0
stroke_width: 2
font_size: 18
markdown: true
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{R: 0xff, G: 0x80, A: 0xff}, cfg.View.HighlightColor)
	assert.Equal(t, color.RGBA{A: 0xff}, cfg.Background)
	assert.Equal(t, hv.Padding{Left: 1, Vertical: -2, Horizontal: 3}, cfg.View.Padding)
	assert.Equal(t, 0.0, cfg.View.CornerRadius)
	assert.Equal(t, 2.0, cfg.StrokeWidth)
	assert.Equal(t, 18.0, cfg.FontSize)
	assert.True(t, cfg.View.Markdown)
	assert.Equal(t, hv.DefaultHighlightColor, hv.DefaultConfig().HighlightColor)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad colour", `highlight: "orange"`, "highlight colour"},
		{"negative radius", `corner_radius: -1`, "corner_radius"},
		{"bad yaml", "padding: [1, 2", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("12.5, 40")
	require.NoError(t, err)
	assert.Equal(t, hv.Point{X: 12.5, Y: 40}, p)

	for _, bad := range []string{"12", "a,1", "1,b"} {
		_, err := parsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"render", "--text", "ship #it", "--out", out, "--tap", "300,110"})

	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, out)
	assert.Contains(t, stdout.String(), "1 highlights")
	assert.Contains(t, stdout.String(), "no hashtag")
}
