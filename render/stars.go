package render

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

const (
	// maxPlacementAttempts bounds the rejection sampling for one star center.
	// When it runs out the star field is considered full.
	maxPlacementAttempts = 600

	innerRadiusRatio = 2.5
	minCorners       = 3
	maxCorners       = 7
	minOpacity       = 0.4
	opacitySpan      = 0.31
)

// Point is a star center in canvas coordinates.
type Point struct {
	X, Y float64
}

// Distance is the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Star is one drawn star.
type Star struct {
	Center   Point
	Rotation float64 // degrees
	Color    string
	Corners  int
}

// PaintStars places up to opts.StarCount non-overlapping stars and draws them.
// Fewer stars are returned when the viewport fills up; that is not an error.
// background seeds the set of colors no star may share.
func PaintStars(s Surface, opts CanvasOptions, background string, r *rand.Rand) ([]Star, error) {
	if !opts.placeable() {
		return nil, nil
	}
	var (
		points  []Point
		degrees []float64
		colors  = []string{background}
		stars   []Star
	)
	threshold := opts.SpaceThreshold()
	for i := 0; i < opts.StarCount; i++ {
		p, ok := nextPoint(r, points, threshold, opts)
		if !ok {
			// 空间已满，后续尝试没有意义
			Logger().Debug("star field exhausted", "placed", len(stars), "wanted", opts.StarCount)
			break
		}
		star := Star{
			Center:   p,
			Rotation: nextRotation(r, degrees),
			Color:    nextColor(r, colors),
			Corners:  minCorners + r.IntN(maxCorners-minCorners+1),
		}
		if err := drawStar(s, opts.StarSize, star); err != nil {
			return stars, fmt.Errorf("star %d: %w", i, err)
		}
		points = append(points, star.Center)
		degrees = append(degrees, star.Rotation)
		colors = append(colors, star.Color)
		stars = append(stars, star)
	}
	return stars, nil
}

// nextPoint samples a center at least threshold away from every placed point.
func nextPoint(r *rand.Rand, placed []Point, threshold float64, opts CanvasOptions) (Point, bool) {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		p := Point{
			X: uniform(r, opts.StarSize, opts.StarSize+opts.ViewportWidth()),
			Y: uniform(r, opts.StarSize, opts.StarSize+opts.ViewportHeight()),
		}
		if minDistance(p, placed) >= threshold {
			return p, true
		}
	}
	return Point{}, false
}

// 还没有星星时为 +Inf
func minDistance(p Point, placed []Point) float64 {
	nearest := math.Inf(1)
	for _, q := range placed {
		if d := p.Distance(q); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// nextRotation draws an angle in [0, 360) not already in used.
func nextRotation(r *rand.Rand, used []float64) float64 {
	for {
		deg := uniform(r, 0, 360)
		if !slices.Contains(used, deg) {
			return deg
		}
	}
}

// nextColor draws a translucent color whose R,G,B differs from every used token.
// Opacity is fixed before the channel draws and is ignored by the comparison.
func nextColor(r *rand.Rand, used []string) string {
	opacity := fmt.Sprintf("%.2f", minOpacity+uniform(r, 0, opacitySpan))
	for {
		c := formatRGBA(r.IntN(256), r.IntN(256), r.IntN(256), opacity)
		if !slices.ContainsFunc(used, func(u string) bool { return sameColor(c, u) }) {
			return c
		}
	}
}

// starVertices returns the alternating outer/inner vertices of a star in its local frame.
func starVertices(radius float64, corners int) []Point {
	inner := radius / innerRadiusRatio
	step := 360 / float64(corners)
	outerOff := 90 / float64(corners)
	innerOff := 270 / float64(corners)
	pts := make([]Point, 0, corners*2)
	for i := 0; i < corners; i++ {
		a := radians(outerOff + float64(i)*step)
		b := radians(innerOff + float64(i)*step)
		pts = append(pts,
			Point{X: math.Cos(a) * radius, Y: math.Sin(a) * radius},
			Point{X: math.Cos(b) * inner, Y: math.Sin(b) * inner},
		)
	}
	return pts
}

// drawStar 外圈/内圈顶点交替，闭合后填充
func drawStar(s Surface, radius float64, star Star) error {
	s.Save()
	defer s.Restore()
	if err := s.Translate(star.Center.X, star.Center.Y); err != nil {
		return err
	}
	if err := s.Rotate(radians(star.Rotation)); err != nil {
		return err
	}
	if err := s.SetFillStyle(star.Color); err != nil {
		return err
	}
	s.BeginPath()
	for _, v := range starVertices(radius, star.Corners) {
		s.LineTo(v.X, v.Y)
	}
	s.ClosePath()
	return s.Fill()
}
