// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/aiks"
)

var (
	joinModes = [...]rasterx.JoinMode{
		aiks.JoinMiter: rasterx.Miter,
		aiks.JoinRound: rasterx.Round,
		aiks.JoinBevel: rasterx.Bevel,
	}

	capFuncs = [...]rasterx.CapFunc{
		aiks.CapButt:   rasterx.ButtCap,
		aiks.CapRound:  rasterx.RoundCap,
		aiks.CapSquare: rasterx.SquareCap,
	}
)

// coverage rasterizes a device-space path into an alpha mask the size of
// bounds. Strokes use the paint's join, cap and miter limit; the width is
// scaled by the transform's largest basis length.
func coverage(bounds image.Rectangle, path aiks.Path, paint aiks.Paint, m aiks.Matrix) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if path.IsEmpty() {
		return mask
	}
	w, h := bounds.Dx(), bounds.Dy()
	scanner := rasterx.NewScannerGV(w, h, mask, bounds)

	if paint.Style == aiks.StyleStroke {
		width := paint.StrokeWidth * m.MaxBasisLength()
		if width <= 0 {
			width = 1 // hairline
		}
		gap := rasterx.FlatGap
		if paint.StrokeJoin == aiks.JoinRound {
			gap = rasterx.RoundGap
		}
		capFn := capFuncs[aiks.CapButt]
		if int(paint.StrokeCap) < len(capFuncs) {
			capFn = capFuncs[paint.StrokeCap]
		}
		join := rasterx.Miter
		if int(paint.StrokeJoin) < len(joinModes) {
			join = joinModes[paint.StrokeJoin]
		}
		dasher := rasterx.NewDasher(w, h, scanner)
		dasher.SetStroke(toFixed(width), toFixed(paint.StrokeMiter), capFn, capFn, gap, join, nil, 0)
		dasher.Scanner.SetColor(color.Opaque)
		addPath(dasher, path)
		dasher.Draw()
		return mask
	}

	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetWinding(path.FillType() == aiks.FillNonZero)
	filler.Scanner.SetColor(color.Opaque)
	addPath(filler, path)
	filler.Draw()
	return mask
}

// addPath feeds path to a rasterx adder. An open subpath is ended before
// every MoveTo.
func addPath(a rasterx.Adder, path aiks.Path) {
	open := false
	path.Walk(func(elem aiks.PathElement) {
		switch e := elem.(type) {
		case aiks.MoveTo:
			if open {
				a.Stop(false)
			}
			a.Start(toFixedPoint(e.Point))
			open = true
		case aiks.LineTo:
			a.Line(toFixedPoint(e.Point))
		case aiks.QuadTo:
			a.QuadBezier(toFixedPoint(e.Control), toFixedPoint(e.Point))
		case aiks.CubicTo:
			a.CubeBezier(toFixedPoint(e.Control1), toFixedPoint(e.Control2), toFixedPoint(e.Point))
		case aiks.Close:
			a.Stop(true)
			open = false
		}
	})
	if open {
		a.Stop(false)
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func toFixedPoint(p aiks.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// fullMask returns a mask that covers all of bounds.
func fullMask(bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	for i := range mask.Pix {
		mask.Pix[i] = 0xff
	}
	return mask
}

// clipMask evaluates a clip set in order, starting from the whole
// surface: an intersect clip keeps the area inside its path, a
// difference clip removes it.
func clipMask(bounds image.Rectangle, clips []aiks.Clip) *image.Alpha {
	mask := fullMask(bounds)
	fill := aiks.NewPaint()
	for _, c := range clips {
		cov := coverage(bounds, c.Path, fill, aiks.Identity())
		switch c.Op {
		case aiks.ClipIntersect:
			multiplyMask(mask, cov, false)
		case aiks.ClipDifference:
			multiplyMask(mask, cov, true)
		}
	}
	return mask
}

// multiplyMask scales dst by src, or by the complement of src when
// invert is set. Both masks must share bounds.
func multiplyMask(dst, src *image.Alpha, invert bool) {
	for i, s := range src.Pix {
		if invert {
			s = 0xff - s
		}
		dst.Pix[i] = mul8(dst.Pix[i], s)
	}
}

func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

// maskExtent returns the smallest rectangle holding every non-zero value
// of mask.
func maskExtent(mask *image.Alpha) image.Rectangle {
	b := mask.Bounds()
	var ext image.Rectangle
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(b.Min.X, y):mask.PixOffset(b.Max.X, y)]
		first := -1
		last := -1
		for x, v := range row {
			if v == 0 {
				continue
			}
			if first < 0 {
				first = x
			}
			last = x
		}
		if first < 0 {
			continue
		}
		ext = ext.Union(image.Rect(b.Min.X+first, y, b.Min.X+last+1, y+1))
	}
	return ext
}

// bildRadius converts a Gaussian sigma to the radius parameter of
// blur.Gaussian, whose kernel is exp(-x²/4r).
func bildRadius(sigma float64) float64 {
	return math.Max(1, sigma*sigma/2)
}

// blurMask applies a mask blur of the given device-space sigma. The
// blur is computed over the mask extent padded by three sigmas.
func blurMask(mask *image.Alpha, style aiks.BlurStyle, sigma float64) *image.Alpha {
	bounds := mask.Bounds()
	ext := maskExtent(mask)
	if ext.Empty() || sigma <= 0 {
		return mask
	}
	pad := int(math.Ceil(3 * sigma))
	region := ext.Inset(-pad).Intersect(bounds)

	src := image.NewAlpha(image.Rect(0, 0, region.Dx(), region.Dy()))
	draw.Draw(src, src.Bounds(), mask, region.Min, draw.Src)
	blurred := blur.Gaussian(src, bildRadius(sigma))

	out := image.NewAlpha(bounds)
	for y := 0; y < region.Dy(); y++ {
		for x := 0; x < region.Dx(); x++ {
			b := blurred.Pix[blurred.PixOffset(x, y)+3]
			o := src.Pix[src.PixOffset(x, y)]
			var v uint8
			switch style {
			case aiks.BlurSolid:
				v = max(o, b)
			case aiks.BlurOuter:
				v = mul8(b, 0xff-o)
			case aiks.BlurInner:
				v = mul8(b, o)
			default:
				v = b
			}
			out.Pix[out.PixOffset(region.Min.X+x, region.Min.Y+y)] = v
		}
	}
	return out
}
