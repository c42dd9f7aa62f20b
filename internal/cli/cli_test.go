package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/format"
)

func writeFont(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { glyphatlas.SetLogger(nil) })

	var out bytes.Buffer
	root := New(io.Discard, log.InfoLevel).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBake(t *testing.T) {
	font := writeFont(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "ascii.bin")

	out, err := execute(t, "bake", font, "16", "-o", output, "--runes", "32-126", "--png", "--sidecar", "-j", "2")
	if err != nil {
		t.Fatalf("bake error = %v", err)
	}
	for _, name := range []string{"ascii.bin", "ascii.png", "ascii.toml"} {
		if !strings.Contains(out, name) {
			t.Errorf("output does not list %s:\n%s", name, out)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	atlas, err := format.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(atlas.Glyphs) != 95 {
		t.Errorf("got %d glyphs, want 95", len(atlas.Glyphs))
	}

	sf, err := os.Open(filepath.Join(dir, "ascii.toml"))
	if err != nil {
		t.Fatal(err)
	}
	defer sf.Close()
	s, err := format.ReadSidecar(sf)
	if err != nil {
		t.Fatalf("ReadSidecar() error = %v", err)
	}
	if s.Image != "ascii.png" || len(s.Glyphs) != 95 {
		t.Errorf("sidecar image = %q, glyphs = %d", s.Image, len(s.Glyphs))
	}
}

func TestBakeConfig(t *testing.T) {
	font := writeFont(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "digits.bin")
	cfgPath := filepath.Join(dir, "atlas.toml")
	cfg := "runes = \"0x30-0x39\"\nstrategy = \"shelf\"\nrasterizer = \"outline\"\noutput = \"unused.bin\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "bake", font, "20", "--config", cfgPath, "--output", output); err != nil {
		t.Fatalf("bake error = %v", err)
	}
	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("flag should override config output: %v", err)
	}
	defer f.Close()
	atlas, err := format.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(atlas.Glyphs) != 10 {
		t.Errorf("got %d glyphs, want 10", len(atlas.Glyphs))
	}
}

func TestBakeMissingGlyphs(t *testing.T) {
	font := writeFont(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "tiny.bin")
	cfgPath := filepath.Join(dir, "tiny.toml")
	cfg := "canvas_width = 32\ncanvas_height = 32\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "bake", font, "24", "-c", cfgPath, "-o", output, "--runes", "65-90", "--no-grow")
	if err != nil {
		t.Fatalf("partial bake should succeed, got %v", err)
	}
	if !strings.Contains(out, "did not fit") {
		t.Errorf("expected a warning, got:\n%s", out)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("partial atlas not written: %v", err)
	}
}

func TestBakeArgs(t *testing.T) {
	font := writeFont(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no font", []string{"bake"}, "font path"},
		{"no size", []string{"bake", font}, "font size"},
		{"extra", []string{"bake", font, "12", "x"}, "too many"},
		{"zero size", []string{"bake", font, "0"}, "positive integer"},
		{"text size", []string{"bake", font, "big"}, "positive integer"},
		{"bad runes", []string{"bake", font, "12", "--runes", "9-1"}, "Runes"},
		{"bad strategy", []string{"bake", font, "12", "--strategy", "skyline"}, "Strategy"},
		{"missing font", []string{"bake", font + ".nope", "12"}, "read font"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append(tt.args, "-o", filepath.Join(t.TempDir(), "a.bin"))...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	if n, err := parseSize("12"); err != nil || n != 12 {
		t.Errorf("parseSize(12) = %d, %v", n, err)
	}
	for _, s := range []string{"", "-4", "0", "1.5"} {
		if _, err := parseSize(s); !errors.Is(err, errInvalidSize) {
			t.Errorf("parseSize(%q) = %v, want errInvalidSize", s, err)
		}
	}
}

func TestDump(t *testing.T) {
	font := writeFont(t)

	out, err := execute(t, "dump", font, "12", "--runes", "0x41")
	if err != nil {
		t.Fatalf("dump error = %v", err)
	}
	if !strings.HasPrefix(out, "U+0041 LATIN CAPITAL LETTER A\ns: ") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "#") {
		t.Errorf("expected solid pixels:\n%s", out)
	}
}

func TestInspect(t *testing.T) {
	font := writeFont(t)
	output := filepath.Join(t.TempDir(), "abc.bin")
	if _, err := execute(t, "bake", font, "14", "-o", output, "--runes", "0x61-0x63"); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "inspect", output, "--bitmaps")
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{"U+0061", "U+0063", "LATIN SMALL LETTER B", "glyphs"} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q:\n%s", want, out)
		}
	}

	bad := filepath.Join(t.TempDir(), "bad.bin")
	if err := os.WriteFile(bad, []byte("nope nope nope nope nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "inspect", bad); !errors.Is(err, format.ErrBadMagic) {
		t.Errorf("expected ErrBadMagic, got %v", err)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug should be filtered at info level")
	}
	logger.Info("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("info missing from %q", buf.String())
	}
}

func TestLibraryLogging(t *testing.T) {
	t.Cleanup(func() { glyphatlas.SetLogger(nil) })

	var buf bytes.Buffer
	c := New(&buf, log.InfoLevel)
	glyphatlas.Logger().Debug("pack attempt")
	if buf.Len() != 0 {
		t.Error("library debug logs should be filtered at info level")
	}

	c.SetLogLevel(log.DebugLevel)
	glyphatlas.Logger().Debug("pack attempt")
	if !strings.Contains(buf.String(), "pack attempt") {
		t.Errorf("library logs should reach the CLI logger, got %q", buf.String())
	}
}
