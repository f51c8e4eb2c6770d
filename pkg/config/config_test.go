package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/user/imgbench/pkg/bench"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	return writeConfigAs(t, "bench.yaml", body)
}

func writeConfigAs(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	c, err := cfg.StrokeColor()
	if err != nil {
		t.Fatalf("StrokeColor failed: %v", err)
	}
	if c != bench.DefaultColor {
		t.Errorf("expected default color %v, got %v", bench.DefaultColor, c)
	}
	if cfg.Items != nil {
		t.Error("expected no default items")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
width: 200
height: 150
image: photo.png
output: out.png
color: "#ff0000"
items:
  - [30, 30]
  - [[30, 30], [60, 60], [90, 70]]
  - [60, 60]
  - [90, 70]
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Width != 200 || cfg.Height != 150 {
		t.Errorf("expected 200x150, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Image != "photo.png" || cfg.Output != "out.png" {
		t.Errorf("unexpected paths %q %q", cfg.Image, cfg.Output)
	}
	if cfg.Quality != 90 {
		t.Errorf("expected default quality to survive, got %d", cfg.Quality)
	}

	want := bench.DrawList{
		bench.Pt(30, 30),
		bench.Polyline{bench.Pt(30, 30), bench.Pt(60, 60), bench.Pt(90, 70)},
		bench.Pt(60, 60),
		bench.Pt(90, 70),
	}
	if got := cfg.Items.DrawList(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	c, err := cfg.StrokeColor()
	if err != nil {
		t.Fatalf("StrokeColor failed: %v", err)
	}
	if c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("expected opaque red, got %v", c)
	}
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeConfigAs(t, "bench.toml", `
width = 120
image = "photo.png"
output = "out.jpg"
quality = 75
debug_dir = "dbg"
items = [
  [30, 30],
  [[30, 30], [60, 60], [90, 70]],
]
`)

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.Width != 120 || cfg.Height != 0 {
		t.Errorf("expected 120x0, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Quality != 75 || cfg.DebugDir != "dbg" {
		t.Errorf("unexpected quality %d / debug dir %q", cfg.Quality, cfg.DebugDir)
	}
	if cfg.Color != "#64aafaaa" {
		t.Errorf("expected default color to survive, got %q", cfg.Color)
	}

	want := bench.DrawList{
		bench.Pt(30, 30),
		bench.Polyline{bench.Pt(30, 30), bench.Pt(60, 60), bench.Pt(90, 70)},
	}
	if got := cfg.Items.DrawList(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoadFromFile_TOMLInvalidItems(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not an array", `items = 5`},
		{"three coordinates", `items = [[1, 2, 3]]`},
		{"float coordinate", `items = [[1.5, 2]]`},
		{"bad polyline point", `items = [[[1, 2], [3]]]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigAs(t, "bench.toml", tt.body)
			if _, err := LoadFromFile(path); err == nil {
				t.Errorf("expected error for %q", tt.body)
			}
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestItems_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not a sequence", "items: 5"},
		{"scalar item", "items: [7]"},
		{"three coordinates", "items: [[1, 2, 3]]"},
		{"non-numeric", "items: [[a, b]]"},
		{"bad polyline point", "items: [[[1, 2], [3]]]"},
		{"empty item", "items: [[]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			if err := yaml.Unmarshal([]byte(tt.body), &cfg); err == nil {
				t.Errorf("expected error for %q", tt.body)
			}
		})
	}
}

func TestItems_EmptyList(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal([]byte("items: []"), &cfg); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	list := cfg.Items.DrawList()
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", list)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#64aafaaa", color.NRGBA{R: 100, G: 170, B: 250, A: 170}, false},
		{"64aafa", color.NRGBA{R: 100, G: 170, B: 250, A: 255}, false},
		{"#FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalid) {
			t.Errorf("ParseColor(%q) expected ErrInvalid, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"quality zero", func(c *Config) { c.Quality = 0 }},
		{"quality too high", func(c *Config) { c.Quality = 101 }},
		{"bad color", func(c *Config) { c.Color = "blue" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint(" 12, -3")
	if err != nil {
		t.Fatalf("ParsePoint failed: %v", err)
	}
	if p != bench.Pt(12, -3) {
		t.Errorf("expected (12,-3), got %v", p)
	}

	for _, bad := range []string{"", "1", "1,2,3", "x,1"} {
		if _, err := ParsePoint(bad); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParsePoint(%q): expected ErrInvalid, got %v", bad, err)
		}
	}
}

func TestParsePolyline(t *testing.T) {
	line, err := ParsePolyline("30,30;60,60;90,70")
	if err != nil {
		t.Fatalf("ParsePolyline failed: %v", err)
	}
	want := bench.Polyline{bench.Pt(30, 30), bench.Pt(60, 60), bench.Pt(90, 70)}
	if !reflect.DeepEqual(line, want) {
		t.Errorf("expected %v, got %v", want, line)
	}

	for _, bad := range []string{"1,1", "1,1;x", ""} {
		if _, err := ParsePolyline(bad); !errors.Is(err, ErrInvalid) {
			t.Errorf("ParsePolyline(%q): expected ErrInvalid, got %v", bad, err)
		}
	}
}
