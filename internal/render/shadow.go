// Package render holds the effects used to draw window chrome around the
// canvas.
package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow cast by the canvas.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions is a soft shadow that reads on both light and dark
// themes.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(3, 4),
		Opacity: 0.35,
	}
}

// Shadow renders the blurred shadow of an opaque rectangle of the given size.
// The returned point is where the rectangle's top-left corner lies inside the
// shadow image, so callers draw the shadow at origin.Sub(at). A nil image
// means there is nothing to draw.
func Shadow(size image.Point, opts ShadowOptions) (*image.RGBA, image.Point) {
	if size.X <= 0 || size.Y <= 0 || opts.Opacity <= 0 {
		return nil, image.Point{}
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	subject := image.Rect(0, 0, size.X, size.Y)
	padded := subject.Inset(-radius)
	cast := padded.Add(opts.Offset)
	composite := subject.Union(cast)

	mask := image.NewGray(padded.Sub(padded.Min))
	draw.Draw(mask, subject.Sub(padded.Min), image.White, image.Point{}, draw.Src)
	blurred := blurGray(mask, radius)

	dst := image.NewRGBA(composite.Sub(composite.Min))
	alpha := uint8(opacity*255 + 0.5)
	draw.DrawMask(dst, blurred.Bounds().Add(cast.Min.Sub(composite.Min)),
		image.NewUniform(color.RGBA{A: alpha}), image.Point{},
		blurred, image.Point{}, draw.Over)
	return dst, subject.Min.Sub(composite.Min)
}

// blurGray applies a separable box blur using running sums.
func blurGray(src *image.Gray, radius int) *image.Gray {
	out := image.NewGray(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())
	for y := 0; y < h; y++ {
		boxPass(src.Pix[y*src.Stride:], tmp.Pix[y*tmp.Stride:], w, 1, radius)
	}
	for x := 0; x < w; x++ {
		boxPass(tmp.Pix[x:], out.Pix[x:], h, tmp.Stride, radius)
	}
	return out
}

// boxPass averages n samples spaced stride apart over a window of
// 2*radius+1, clamping the window at both ends.
func boxPass(src, dst []uint8, n, stride, radius int) {
	prefix := make([]int, n+1)
	for i := 0; i < n; i++ {
		prefix[i+1] = prefix[i] + int(src[i*stride])
	}
	for i := 0; i < n; i++ {
		lo := max(i-radius, 0)
		hi := min(i+radius, n-1)
		dst[i*stride] = uint8((prefix[hi+1] - prefix[lo]) / (hi - lo + 1))
	}
}
