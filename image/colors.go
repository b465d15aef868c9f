package image

import (
	"image"
	"image/draw"
	"runtime"
	"sort"
	"sync"

	"github.com/esimov/colorquant"

	"github.com/aswenson/schemer/palette"
)

const defaultWorkerCap = 8

// SampleOptions are the sampling tunables. Zero values fall back to
// defaults.
type SampleOptions struct {
	// Stride samples every Stride-th pixel along each axis. 1 visits
	// every pixel.
	Stride int
	// QuantBits buckets each channel to this many significant bits before
	// counting, bounding the number of distinct colors on large images.
	// 8 keeps exact channel values.
	QuantBits int
	// Workers splits the pixel count across this many goroutines. Partial
	// counts are merged by summing, so the result does not depend on the
	// worker count.
	Workers int
	// MaxColors, when positive, quantizes the whole image down to at most
	// this many colors before sampling.
	MaxColors int
}

func (o SampleOptions) normalized() SampleOptions {
	if o.Stride <= 0 {
		o.Stride = 1
	}
	if o.QuantBits <= 0 || o.QuantBits > 8 {
		o.QuantBits = 8
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
		if o.Workers > defaultWorkerCap {
			o.Workers = defaultWorkerCap
		}
	}
	if o.MaxColors < 0 {
		o.MaxColors = 0
	}
	return o
}

type byWeight []palette.WeightedColor

func (cs byWeight) Len() int { return len(cs) }
func (cs byWeight) Less(i, j int) bool {
	if cs[i].Weight != cs[j].Weight {
		return cs[i].Weight > cs[j].Weight
	}
	if cs[i].R != cs[j].R {
		return cs[i].R < cs[j].R
	}
	if cs[i].G != cs[j].G {
		return cs[i].G < cs[j].G
	}
	return cs[i].B < cs[j].B
}
func (cs byWeight) Swap(i, j int) { cs[i], cs[j] = cs[j], cs[i] }

// Sample counts the distinct colors of img and returns them with their
// pixel counts as weights, most prevalent first. Fully transparent pixels
// are skipped. The transform is pure: identical input always yields the
// identical weighted set.
func Sample(img image.Image, opts SampleOptions) []palette.WeightedColor {
	opts = opts.normalized()
	if opts.MaxColors > 0 {
		img = prequantize(img, opts.MaxColors)
	}

	src := toNRGBA(img)
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	if width == 0 || height == 0 {
		return nil
	}

	workers := opts.Workers
	if workers > height {
		workers = height
	}
	locals := make([]map[palette.Color]float64, workers)

	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		startY, endY := splitRange(height, workers, worker)
		wg.Add(1)
		go func(workerIndex, start, end int) {
			defer wg.Done()
			local := make(map[palette.Color]float64)

			firstSampleY := start
			if remainder := firstSampleY % opts.Stride; remainder != 0 {
				firstSampleY += opts.Stride - remainder
			}

			for y := firstSampleY; y < end; y += opts.Stride {
				rowOffset := y * src.Stride
				for x := 0; x < width; x += opts.Stride {
					offset := rowOffset + x*4
					if src.Pix[offset+3] == 0 {
						continue
					}
					local[palette.Color{
						R: bucketChannel(src.Pix[offset], opts.QuantBits),
						G: bucketChannel(src.Pix[offset+1], opts.QuantBits),
						B: bucketChannel(src.Pix[offset+2], opts.QuantBits),
					}]++
				}
			}

			locals[workerIndex] = local
		}(worker, startY, endY)
	}
	wg.Wait()

	merged := make(map[palette.Color]float64)
	for _, local := range locals {
		for c, count := range local {
			merged[c] += count
		}
	}

	weighted := make([]palette.WeightedColor, 0, len(merged))
	for c, count := range merged {
		weighted = append(weighted, palette.WeightedColor{Color: c, Weight: count})
	}
	sort.Sort(byWeight(weighted))
	return weighted
}

// prequantize reduces the image to at most n colors so that sampling very
// busy images stays bounded.
func prequantize(img image.Image, n int) image.Image {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, dst, n, false, true)
	return dst
}

// bucketChannel maps a channel value to the center of its bucket when
// fewer than 8 bits are kept.
func bucketChannel(v uint8, bits int) uint8 {
	if bits >= 8 {
		return v
	}
	bucketSize := 256 >> bits
	center := (int(v)>>(8-bits))*bucketSize + bucketSize/2
	if center > 255 {
		center = 255
	}
	return uint8(center)
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

func splitRange(length, workers, workerIndex int) (int, int) {
	chunkSize := length / workers
	remainder := length % workers
	start := workerIndex*chunkSize + min(workerIndex, remainder)
	end := start + chunkSize
	if workerIndex < remainder {
		end++
	}
	return start, end
}
