package imaging

import (
	"math"

	"github.com/anthonynsimon/bild/histogram"
)

// Histogram summarizes the distribution of samples in an edge image.
type Histogram struct {
	// Bins[v] is the number of pixels whose sample equals v.
	Bins []int `json:"bins"`

	// Total is the number of pixels counted (Width*Height).
	Total int `json:"total"`

	// Mean is the average sample value, rounded to two decimals.
	Mean float64 `json:"mean"`

	// MaxValue is the largest sample value present in the image.
	MaxValue int `json:"max_value"`
}

// ComputeHistogram counts the samples of img into 256 bins.
//
// For an edge image, Bins[0] includes the border, and MaxValue is the
// strongest gradient found (255 when any magnitude was clamped).
func ComputeHistogram(img *Image) *Histogram {
	h := histogram.NewRGBAHistogram(img.Gray())

	// Gray expands to equal R, G and B, so any one channel is the gray count.
	bins := make([]int, 256)
	copy(bins, h.R.Bins)

	var total, sum, maxValue int
	for v, n := range bins {
		total += n
		sum += v * n
		if n > 0 {
			maxValue = v
		}
	}

	var mean float64
	if total > 0 {
		mean = math.Round(float64(sum)/float64(total)*100) / 100
	}

	return &Histogram{
		Bins:     bins,
		Total:    total,
		Mean:     mean,
		MaxValue: maxValue,
	}
}
