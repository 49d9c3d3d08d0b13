package avatar

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/folio/pkg/terminal"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFitKeepsAspect(t *testing.T) {
	out := Fit(solid(400, 200, color.NRGBA{R: 255, A: 255}), 40, 40, 0)
	if b := out.Bounds(); b.Dx() != 40 || b.Dy() != 20 {
		t.Errorf("Fit = %dx%d, want 40x20", b.Dx(), b.Dy())
	}
}

func TestFitNoUpscale(t *testing.T) {
	out := Fit(solid(10, 10, color.NRGBA{A: 255}), 100, 100, 0.5)
	if b := out.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Errorf("Fit upscaled to %dx%d", b.Dx(), b.Dy())
	}
}

func TestHalfblocks(t *testing.T) {
	out := Halfblocks(solid(4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, l := range lines {
		if l != "▀▀▀▀" {
			t.Errorf("line = %q, want four upper halves", l)
		}
	}
	if !strings.Contains(out, "38;2;10;20;30;48;2;10;20;30") {
		t.Error("expected true colour foreground and background")
	}
}

func TestHalfblocksOddHeightAndTransparency(t *testing.T) {
	img := solid(2, 3, color.NRGBA{G: 200, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{})
	img.SetNRGBA(1, 1, color.NRGBA{})
	lines := strings.Split(ansi.Strip(Halfblocks(img)), "\n")
	if len(lines) != 2 || lines[0] != "▀ " || lines[1] != "▀▀" {
		t.Errorf("lines = %q", lines)
	}
}

func TestRenderHalfblocksCached(t *testing.T) {
	r := New(solid(64, 64, color.NRGBA{B: 255, A: 255}), terminal.ProtocolHalfblocks, quiet())
	a, err := r.Render(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(strings.Split(ansi.Strip(a), "\n")); got != 4 {
		t.Errorf("rows = %d, want 4", got)
	}
	b, _ := r.Render(8, 4)
	if a != b {
		t.Error("second render differs from cached frame")
	}
	if len(r.cache) != 1 {
		t.Errorf("cache entries = %d, want 1", len(r.cache))
	}
}

func TestRenderErrors(t *testing.T) {
	if _, err := New(solid(2, 2, color.NRGBA{A: 255}), terminal.ProtocolNone, quiet()).Render(4, 4); err != ErrDisabled {
		t.Errorf("protocol none err = %v, want ErrDisabled", err)
	}
	if _, err := New(nil, terminal.ProtocolHalfblocks, quiet()).Render(4, 4); err == nil {
		t.Error("nil image should error")
	}
	if _, err := New(solid(2, 2, color.NRGBA{A: 255}), terminal.ProtocolHalfblocks, quiet()).Render(0, 4); err == nil {
		t.Error("zero size should error")
	}
}

func TestRenderCmd(t *testing.T) {
	if RenderCmd(nil, 4, 4) != nil {
		t.Error("nil renderer should give nil cmd")
	}
	r := New(solid(8, 8, color.NRGBA{R: 1, A: 255}), terminal.ProtocolHalfblocks, quiet())
	msg, ok := RenderCmd(r, 4, 2)().(RenderedMsg)
	if !ok || msg.Err != nil || msg.Frame == "" || msg.Cols != 4 {
		t.Errorf("RenderCmd msg = %+v", msg)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "me.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(5, 7, color.NRGBA{A: 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 7 {
		t.Errorf("Load bounds = %v", b)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file should error")
	}
}
