// Package avatar draws the hero portrait inside the terminal, using a
// graphics protocol when the terminal has one and coloured half blocks
// otherwise.
package avatar

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"sync"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"gitlab.com/tinyland/lab/folio/pkg/terminal"
)

// Default cell size in pixels when the terminal does not report one.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// ErrDisabled is returned by Render when the protocol is none.
var ErrDisabled = errors.New("avatar: image rendering disabled")

// Renderer turns a decoded portrait into terminal output sized in cells.
// Rendered frames are memoised per size.
type Renderer struct {
	img      image.Image
	protocol terminal.Protocol
	cellW    int
	cellH    int
	log      *slog.Logger

	mu    sync.Mutex
	cache map[frameKey]string
}

type frameKey struct {
	cols, rows int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCellSize sets the pixel size of one terminal cell.
func WithCellSize(w, h int) Option {
	return func(r *Renderer) {
		if w > 0 && h > 0 {
			r.cellW, r.cellH = w, h
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.log = l }
}

// New returns a Renderer for img.
func New(img image.Image, p terminal.Protocol, opts ...Option) *Renderer {
	r := &Renderer{
		img:      img,
		protocol: p,
		cellW:    DefaultCellW,
		cellH:    DefaultCellH,
		log:      slog.Default(),
		cache:    make(map[frameKey]string),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Load decodes the image at path. JPEG, PNG, GIF and WebP are accepted;
// EXIF orientation is honoured.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("avatar: open: %w", err)
	}
	defer f.Close()
	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("avatar: decode %s: %w", path, err)
	}
	return img, nil
}

// Protocol returns the output protocol.
func (r *Renderer) Protocol() terminal.Protocol { return r.protocol }

// Render draws the portrait into at most cols x rows cells.
func (r *Renderer) Render(cols, rows int) (string, error) {
	if r.protocol == terminal.ProtocolNone {
		return "", ErrDisabled
	}
	if r.img == nil {
		return "", errors.New("avatar: no image")
	}
	if cols <= 0 || rows <= 0 {
		return "", fmt.Errorf("avatar: invalid size %dx%d", cols, rows)
	}

	key := frameKey{cols, rows}
	r.mu.Lock()
	if s, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return s, nil
	}
	r.mu.Unlock()

	out, err := r.render(cols, rows)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.cache[key] = out
	r.mu.Unlock()
	r.log.Debug("avatar rendered", "protocol", r.protocol, "cols", cols, "rows", rows)
	return out, nil
}

func (r *Renderer) render(cols, rows int) (string, error) {
	var proto termimg.Protocol
	switch r.protocol {
	case terminal.ProtocolKitty:
		proto = termimg.Kitty
	case terminal.ProtocolITerm2:
		proto = termimg.ITerm2
	case terminal.ProtocolSixel:
		proto = termimg.Sixel
	default:
		// Two pixel rows per cell.
		return Halfblocks(Fit(r.img, cols, rows*2, 0.8)), nil
	}

	fitted := Fit(r.img, cols*r.cellW, rows*r.cellH, 0.5)
	ti := termimg.New(fitted)
	if ti == nil {
		return "", errors.New("avatar: termimg rejected image")
	}
	out, err := ti.Protocol(proto).Size(cols, rows).Scale(termimg.ScaleFit).Render()
	if err != nil {
		return "", fmt.Errorf("avatar: %s render: %w", r.protocol, err)
	}
	return out, nil
}

// Fit scales img to fit within w x h pixels, keeping its aspect ratio,
// then applies a light sharpen of sigma to restore edges. Images that
// already fit are not enlarged.
func Fit(img image.Image, w, h int, sigma float64) *image.NRGBA {
	b := img.Bounds()
	var out *image.NRGBA
	if b.Dx() <= w && b.Dy() <= h {
		out = imaging.Clone(img)
	} else {
		out = imaging.Fit(img, w, h, imaging.Lanczos)
	}
	if sigma > 0 && out.Bounds().Dx() >= 3 && out.Bounds().Dy() >= 3 {
		out = imaging.Sharpen(out, sigma)
	}
	return out
}
