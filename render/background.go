package render

import "math/rand/v2"

// BackgroundColors is the near-white palette a background is picked from.
var BackgroundColors = [3]string{
	"rgba(232, 232, 232, 1)",
	"rgba(242, 242, 242, 1)",
	"rgba(252, 252, 252, 1)",
}

// PaintBackground fills the whole canvas with one palette color and returns it.
func PaintBackground(s Surface, opts CanvasOptions, r *rand.Rand) (string, error) {
	bg := BackgroundColors[r.IntN(len(BackgroundColors))]
	s.Save()
	defer s.Restore()
	if err := s.SetFillStyle(bg); err != nil {
		return "", err
	}
	if err := s.FillRect(0, 0, opts.Width, opts.Height); err != nil {
		return "", err
	}
	return bg, nil
}
