package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

/* =======================================================================
   WebP options (ENV-driven) + per-call overrides
======================================================================= */

type WebPOptions struct {
	MaxW        int     // width bound (resize keep-aspect)
	MaxH        int     // height bound
	TargetKB    int     // target size; 0 = off (use Quality only)
	Quality     float32 // quality when TargetKB=0, initial guess otherwise
	MinQ        float32 // min quality for binary search
	MaxQ        float32 // max quality for binary search
	ToleranceKB int     // allowed overshoot above target
	MinW        int     // width floor during iterative downscale
	MinH        int     // height floor
	ScaleStep   float32 // shrink factor per iteration (0<step<1)
}

func DefaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:        envInt("IMAGE_WEBP_MAX_W", 1600),
		MaxH:        envInt("IMAGE_WEBP_MAX_H", 1600),
		TargetKB:    envInt("IMAGE_WEBP_TARGET_KB", 0),
		Quality:     envFloat("IMAGE_WEBP_QUALITY", 80),
		MinQ:        envFloat("IMAGE_WEBP_MIN_Q", 45),
		MaxQ:        envFloat("IMAGE_WEBP_MAX_Q", 85),
		ToleranceKB: envInt("IMAGE_WEBP_TOLERANCE_KB", 8),
		MinW:        envInt("IMAGE_WEBP_MIN_W", 480),
		MinH:        envInt("IMAGE_WEBP_MIN_H", 480),
		ScaleStep:   envFloat("IMAGE_WEBP_SCALE_STEP", 0.85),
	}
}

var ErrUnsupportedImage = fmt.Errorf("unsupported image format")

/* =======================================================================
   Decode (jpeg/png/webp) from []byte with MIME sniff
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)

	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, ErrUnsupportedImage
		}
	}
	return img, err
}

/* =======================================================================
   Resize (keep aspect, CatmullRom)
======================================================================= */

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW > 0 && w > maxW) || (maxH > 0 && h > maxH) {
		scale := 1.0
		if maxW > 0 {
			scale = math.Min(scale, float64(maxW)/float64(w))
		}
		if maxH > 0 {
			scale = math.Min(scale, float64(maxH)/float64(h))
		}
		nw := int(math.Round(float64(w) * scale))
		nh := int(math.Round(float64(h) * scale))
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		return dst
	}
	return src
}

/* =======================================================================
   Encode WebP
   - TargetKB > 0 → binary search quality until <= target+tol
   - TargetKB = 0 → single encode with Quality
======================================================================= */

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	encodeQ := func(im image.Image, q float32) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, im, &webp.Options{Lossless: false, Quality: q}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(img, q)
	}

	target := opt.TargetKB * 1024
	tol := opt.ToleranceKB * 1024
	if tol <= 0 {
		tol = 8 * 1024
	}
	minQ := opt.MinQ
	maxQ := opt.MaxQ
	if minQ <= 0 {
		minQ = 45
	}
	if maxQ <= 0 {
		maxQ = 85
	}
	if minQ > maxQ {
		minQ, maxQ = maxQ, minQ
	}

	minW := opt.MinW
	minH := opt.MinH
	if minW <= 0 {
		minW = 480
	}
	if minH <= 0 {
		minH = 480
	}
	step := opt.ScaleStep
	if step <= 0 || step >= 1 {
		step = 0.85
	}

	cur := img
	last := []byte(nil)

	for attempt := 0; attempt < 6; attempt++ {
		// binary search quality at the current dimensions
		low, high := minQ, maxQ
		best := []byte(nil)

		for i := 0; i < 8; i++ {
			q := (low + high) / 2
			data, err := encodeQ(cur, q)
			if err != nil {
				return nil, err
			}
			if len(data) <= target+tol {
				best = data
				high = q
			} else {
				low = q
			}
		}
		if best == nil {
			var err error
			best, err = encodeQ(cur, low)
			if err != nil {
				return nil, err
			}
		}
		last = best

		if len(best) <= target+tol {
			return best, nil
		}

		// still too big → iterative downscale
		b := cur.Bounds()
		cw, ch := b.Dx(), b.Dy()
		if cw <= minW && ch <= minH {
			return best, nil
		}

		ratio := float64(target+tol) / float64(len(best))
		scale := math.Sqrt(ratio) * 0.95
		if scale >= 1.0 {
			scale = float64(step)
		}
		if scale > float64(step) {
			scale = float64(step)
		} else if scale < 0.5 {
			scale = 0.5
		}

		nw := int(math.Round(float64(cw) * scale))
		nh := int(math.Round(float64(ch) * scale))
		if nw < minW {
			nw = minW
		}
		if nh < minH {
			nh = minH
		}
		if nw >= cw && nh >= ch {
			nw = int(float64(cw) * float64(step))
			nh = int(float64(ch) * float64(step))
			if nw < minW {
				nw = minW
			}
			if nh < minH {
				nh = minH
			}
		}

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), cur, b, draw.Over, nil)
		cur = dst
	}

	return last, nil
}

/* =======================================================================
   Main re-encode API
======================================================================= */

// ConvertToWebP re-encodes an uploaded photo as WebP using ENV options.
// Returns the encoded bytes plus final width/height.
func ConvertToWebP(all []byte, filename string) ([]byte, int, int, error) {
	return ConvertToWebPWithOptions(all, filename, DefaultWebPOptionsFromEnv())
}

func ConvertToWebPWithOptions(all []byte, filename string, opts WebPOptions) ([]byte, int, int, error) {
	if len(all) == 0 {
		return nil, 0, 0, fmt.Errorf("empty file")
	}

	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, 0, 0, err
	}

	img = downscaleIfNeeded(img, opts.MaxW, opts.MaxH)
	out, err := encodeToWebP(img, opts)
	if err != nil {
		return nil, 0, 0, err
	}

	// encodeToWebP may shrink the image further chasing TargetKB; report
	// the bounds of the bytes that actually get stored
	if w, h, _, infoErr := webp.GetInfo(out); infoErr == nil {
		return out, w, h, nil
	}
	b := img.Bounds()
	return out, b.Dx(), b.Dy(), nil
}

// Thumbnail produces a small WebP preview (fit inside w×h).
func Thumbnail(all []byte, filename string, w, h int) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	thumb := imaging.Fit(img, w, h, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, thumb, &webp.Options{Lossless: false, Quality: 70}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
