package stokes3d

import (
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// SweepAnalyzer rotates an ideal linear analyzer through [0,π) behind the
// beam and records the transmitted intensity at each step (a Malus curve).
func SweepAnalyzer(out Stokes, steps int) []Real {
	vals := make([]Real, steps)
	for i := range vals {
		theta := math.Pi * Real(i) / Real(steps)
		vals[i] = RotatedElement(theta, LinearPolarizer(1)).MulStokes(out).S0
	}
	return vals
}

// RenderSweep rasterizes an analyzer sweep as a filled intensity curve.
// Drawing happens at supersample× resolution and is scaled down with
// CatmullRom filtering.
func RenderSweep(vals []Real, width, height, supersample int, gamma Real) *image.NRGBA {
	W, H := width*supersample, height*supersample
	img := image.NewNRGBA(image.Rect(0, 0, W, H))

	maxv := 0.0
	for _, v := range vals {
		if v > maxv {
			maxv = v
		}
	}
	if maxv == 0 {
		maxv = 1 // avoid div-by-zero; curve stays flat at the bottom
	}

	// scalar → 0..255 with gamma
	toByte := func(n Real) uint8 {
		n = clamp01(n)
		if gamma != 1 {
			n = math.Pow(n, 1.0/gamma)
		}
		return uint8(math.Round(n * 255))
	}

	for x := 0; x < W; x++ {
		// nearest sample per column; supersampling smooths the steps
		idx := x * len(vals) / W
		n := clamp01(vals[idx] / maxv)
		yCut := H - 1 - int(n*Real(H-1))
		grid := W >= 4 && x > 0 && x%(W/4) == 0 // vertical marker each π/4

		for y := 0; y < H; y++ {
			p := img.PixOffset(x, y)
			var r, g, b uint8 = 14, 16, 22
			switch {
			case y == yCut:
				r, g, b = 255, 214, 64
			case y > yCut:
				v := toByte(n)
				r, g, b = v, v>>1, v>>2
			case grid:
				r, g, b = 32, 34, 40
			}
			img.Pix[p+0] = r
			img.Pix[p+1] = g
			img.Pix[p+2] = b
			img.Pix[p+3] = 255
		}
	}
	return downsample(img, width, height)
}

func downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SaveSweepPNG writes the sweep image as a lossless PNG.
func SaveSweepPNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// SaveSweepWebP writes the sweep image as a lossless WebP.
func SaveSweepWebP(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return nativewebp.Encode(f, img, nil)
}
