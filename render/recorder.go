package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Command is one recorded surface call.
type Command struct {
	Op   string
	Args []string
}

func (c Command) String() string {
	return c.Op + "(" + strings.Join(c.Args, ", ") + ")"
}

// Recorder is a Surface that draws nothing and logs every call.
// It is used to inspect and replay passes without a raster backend.
type Recorder struct {
	Commands []Command

	// Measure returns the width of s for the current font.
	// Nil measures each rune as 0.6 of the font size.
	Measure func(s string, f Font) float64

	font  *Font
	saved []*Font
	fail  map[string]error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Fail makes every later call to op return err.
func (r *Recorder) Fail(op string, err error) {
	if r.fail == nil {
		r.fail = make(map[string]error)
	}
	r.fail[op] = err
}

// Depth is the number of unmatched Save calls.
func (r *Recorder) Depth() int { return len(r.saved) }

// Count returns how many times op was recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset drops the recorded commands and drawing state.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.font = nil
	r.saved = nil
}

func (r *Recorder) String() string {
	var b strings.Builder
	for _, c := range r.Commands {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Recorder) record(op string, args ...string) error {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
	return r.fail[op]
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (r *Recorder) ClearRect(x, y, w, h float64) error {
	return r.record("clearRect", ftoa(x), ftoa(y), ftoa(w), ftoa(h))
}

func (r *Recorder) FillRect(x, y, w, h float64) error {
	return r.record("fillRect", ftoa(x), ftoa(y), ftoa(w), ftoa(h))
}

func (r *Recorder) BeginPath()          { r.record("beginPath") }
func (r *Recorder) MoveTo(x, y float64) { r.record("moveTo", ftoa(x), ftoa(y)) }
func (r *Recorder) LineTo(x, y float64) { r.record("lineTo", ftoa(x), ftoa(y)) }
func (r *Recorder) ClosePath()          { r.record("closePath") }
func (r *Recorder) Fill() error         { return r.record("fill") }

func (r *Recorder) SetFillStyle(color string) error {
	if err := r.record("fillStyle", color); err != nil {
		return err
	}
	if _, err := ParseColor(color); err != nil {
		return err
	}
	return nil
}

func (r *Recorder) Save() {
	r.saved = append(r.saved, r.font)
	r.record("save")
}

// 栈空时只记录，不报错
func (r *Recorder) Restore() {
	if n := len(r.saved); n > 0 {
		r.font = r.saved[n-1]
		r.saved = r.saved[:n-1]
	}
	r.record("restore")
}

func (r *Recorder) Translate(x, y float64) error {
	return r.record("translate", ftoa(x), ftoa(y))
}

func (r *Recorder) Rotate(angle float64) error {
	return r.record("rotate", ftoa(angle))
}

func (r *Recorder) SetFont(f Font) error {
	if err := r.record("font", string(f.Style), ftoa(f.Size)); err != nil {
		return err
	}
	r.font = &f
	return nil
}

func (r *Recorder) MeasureText(s string) (float64, error) {
	if err := r.record("measureText", s); err != nil {
		return 0, err
	}
	if r.font == nil {
		return 0, ErrNoFont
	}
	if r.Measure != nil {
		return r.Measure(s, *r.font), nil
	}
	return float64(utf8.RuneCountInString(s)) * r.font.Size * 0.6, nil
}

func (r *Recorder) FillText(s string, x, y float64) error {
	if err := r.record("fillText", s, ftoa(x), ftoa(y)); err != nil {
		return err
	}
	if r.font == nil {
		return fmt.Errorf("fill %q: %w", s, ErrNoFont)
	}
	return nil
}
