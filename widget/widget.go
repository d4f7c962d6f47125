// Package widget is the host-facing check code component: it owns a surface,
// draws a fresh code on demand and tells the host about it.
package widget

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/google/uuid"

	"canvasCheckcode/challenge"
	"canvasCheckcode/render"
)

var (
	// ErrBusy is returned by Render while another pass on the same widget is running.
	ErrBusy = errors.New("widget: redraw already in progress")

	// ErrNoImage is returned by PNG and Snapshot when no complete code is on the canvas.
	ErrNoImage = errors.New("widget: no image drawn")

	// ErrNoSymbols is returned by New when the font draws none of the alphabet.
	ErrNoSymbols = errors.New("widget: font covers no check code symbol")
)

type Option func(*Widget) error

// WithCanvasOptions overrides the default canvas geometry.
func WithCanvasOptions(o render.CanvasOptions) Option {
	return func(w *Widget) error {
		w.opts = o
		return nil
	}
}

// WithCodeLength sets the number of characters per code.
func WithCodeLength(n int) Option {
	return func(w *Widget) error {
		if n < 0 {
			return fmt.Errorf("widget: negative code length %d", n)
		}
		w.length = n
		return nil
	}
}

// WithRandom replaces the system CSPRNG, e.g. with render.NewSeededRandom in tests.
func WithRandom(r *rand.Rand) Option {
	return func(w *Widget) error {
		w.rnd = r
		return nil
	}
}

// WithSurface draws on s instead of an owned raster canvas. PNG is unavailable then.
func WithSurface(s render.Surface) Option {
	return func(w *Widget) error {
		w.surface = s
		return nil
	}
}

// WithFontFile loads a TrueType font for the owned canvas, for glyphs the
// embedded Go fonts do not cover.
func WithFontFile(path string) Option {
	return func(w *Widget) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("widget: read font: %w", err)
		}
		w.fontData = data
		return nil
	}
}

// OnChange registers the callback receiving every new code.
func OnChange(fn func(Event)) Option {
	return func(w *Widget) error {
		w.onChange = fn
		return nil
	}
}

// Widget draws check codes onto one surface. Passes on a widget never overlap.
type Widget struct {
	id       string
	opts     render.CanvasOptions
	length   int
	rnd      *rand.Rand
	fontData []byte
	onChange func(Event)

	surface render.Surface
	canvas  *render.Canvas // set when the widget owns its surface
	symbols []rune

	mu      sync.Mutex // 整个绘制过程持有
	stateMu sync.Mutex
	drawn   bool
	code    string
	frame   *render.Frame
}

// New creates a widget with a unique id. Nothing is drawn until Render.
func New(opts ...Option) (*Widget, error) {
	w := &Widget{
		id:     uuid.NewString(),
		opts:   render.DefaultCanvasOptions(),
		length: render.DefaultCodeLength,
	}
	for _, o := range opts {
		if err := o(w); err != nil {
			return nil, err
		}
	}
	if w.rnd == nil {
		w.rnd = render.NewRandom()
	}
	if w.surface == nil {
		var copts []render.CanvasOption
		if w.fontData != nil {
			copts = append(copts, render.WithFontData(w.fontData))
		}
		c, err := render.NewCanvas(w.opts.Width, w.opts.Height, copts...)
		if err != nil {
			return nil, err
		}
		w.canvas, w.surface = c, c
		// 只用字体画得出的字符，默认 Go 字体没有中文
		w.symbols = challenge.Drawable(c.Covers)
		if len(w.symbols) == 0 {
			c.Close()
			return nil, ErrNoSymbols
		}
		if n := len(challenge.Alphabet) - len(w.symbols); n > 0 {
			render.Logger().Info("font lacks check code symbols", "widget", w.id, "dropped", n)
		}
	} else {
		w.symbols = challenge.Alphabet
	}
	return w, nil
}

func (w *Widget) ID() string { return w.id }

// Render draws a new code. The first successful call emits Initialize, later ones Update.
// A failed pass emits nothing and drops the previous code: the surface may hold
// a partial image, so no answer is accepted until the next successful Render.
func (w *Widget) Render() (string, error) {
	if !w.mu.TryLock() {
		return "", ErrBusy
	}
	defer w.mu.Unlock()

	code := challenge.GenerateFrom(w.rnd, w.length, w.symbols)
	frame, err := render.Redraw(w.surface, w.opts, code, w.rnd)
	if err != nil {
		w.stateMu.Lock()
		w.code, w.frame = "", nil
		w.stateMu.Unlock()
		render.Logger().Warn("check code redraw failed", "widget", w.id, "err", err)
		return "", fmt.Errorf("widget %s: %w", w.id, err)
	}

	w.stateMu.Lock()
	kind := Update
	if !w.drawn {
		kind = Initialize
	}
	w.drawn = true
	w.code = code
	w.frame = frame
	w.stateMu.Unlock()

	render.Logger().Debug("check code drawn", "widget", w.id, "kind", kind, "stars", len(frame.Stars))
	if w.onChange != nil {
		w.onChange(Event{Kind: kind, Code: code})
	}
	return code, nil
}

// Code returns the code currently on the surface, empty before the first Render.
func (w *Widget) Code() string {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	return w.code
}

// Frame returns what the last pass drew.
func (w *Widget) Frame() *render.Frame {
	w.stateMu.Lock()
	defer w.stateMu.Unlock()
	return w.frame
}

// Verify checks an entered answer against the current code. Like a submitted
// form, every check consumes the code: a new one is drawn whatever the outcome.
func (w *Widget) Verify(answer string) (bool, error) {
	ok := challenge.Match(w.Code(), answer)
	if _, err := w.Render(); err != nil {
		return ok, err
	}
	return ok, nil
}

// PNG encodes the owned canvas. It fails before the first Render and after a failed one.
func (w *Widget) PNG() ([]byte, error) {
	if w.canvas == nil {
		return nil, errors.New("widget: no raster canvas")
	}
	if w.Frame() == nil {
		return nil, ErrNoImage
	}
	return w.canvas.PNG()
}

// Snapshot returns the current image as a data URI.
func (w *Widget) Snapshot() (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	data, err := w.PNG()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		ID:    w.id,
		Image: "data:image/png;base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}

// Close releases the owned canvas.
func (w *Widget) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.canvas != nil {
		return w.canvas.Close()
	}
	return nil
}
