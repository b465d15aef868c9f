package palette

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// ErrInsufficientColors is returned when the candidate set holds fewer
// distinct, sufficiently separated colors than the requested palette size,
// even after maximal threshold relaxation. Duplicating a color across
// slots would make the scheme invalid, so the shortfall is surfaced
// instead.
var ErrInsufficientColors = errors.New("not enough distinct colors")

// Method selects the reduction strategy.
type Method int

const (
	// MethodGreedy is weighted greedy selection with an exclusion radius.
	// It is deterministic and the default.
	MethodGreedy Method = iota
	// MethodKMeans clusters the candidates first and runs the greedy
	// selection over the cluster centers. Cluster seeding is randomized,
	// so repeated runs may differ.
	MethodKMeans
)

// ReduceOptions are the reduction tunables. Zero values fall back to
// defaults.
type ReduceOptions struct {
	Method Method
	// MinSeparation is the initial exclusion radius in channel space: a
	// candidate closer than this to an already selected color is absorbed
	// by it.
	MinSeparation float64
	// MaxRelaxations bounds how many times the separation threshold is
	// halved when the candidate set runs dry, so reduction always
	// terminates.
	MaxRelaxations int
}

const (
	defaultMinSeparation  = 32.0
	defaultMaxRelaxations = 6
)

func (o ReduceOptions) normalized() ReduceOptions {
	if o.MinSeparation <= 0 {
		o.MinSeparation = defaultMinSeparation
	}
	if o.MaxRelaxations <= 0 {
		o.MaxRelaxations = defaultMaxRelaxations
	}
	return o
}

// midGray anchors the weight tie-break: between equally prevalent colors
// the one nearer the center of the cube wins, keeping selection
// deterministic.
var midGray = Color{128, 128, 128}

type byPriority []WeightedColor

func (cs byPriority) Len() int { return len(cs) }
func (cs byPriority) Less(i, j int) bool {
	if cs[i].Weight != cs[j].Weight {
		return cs[i].Weight > cs[j].Weight
	}
	di, dj := Distance(cs[i].Color, midGray), Distance(cs[j].Color, midGray)
	if di != dj {
		return di < dj
	}
	return cs[i].Color.less(cs[j].Color)
}
func (cs byPriority) Swap(i, j int) { cs[i], cs[j] = cs[j], cs[i] }

// Reduce selects exactly n representative colors from the weighted set,
// preferring high-weight, mutually distinct colors. Entries with a
// non-positive weight are dropped, duplicates are merged by summing
// weights. When even a fully relaxed separation threshold cannot yield n
// colors the error wraps ErrInsufficientColors.
func Reduce(colors []WeightedColor, n int, opts ReduceOptions) ([]Color, error) {
	opts = opts.normalized()

	candidates := mergeCandidates(colors)
	if opts.Method == MethodKMeans && len(candidates) > n {
		candidates = kmeansCandidates(candidates, n)
	}
	sort.Sort(byPriority(candidates))

	threshold := opts.MinSeparation
	for round := 0; round <= opts.MaxRelaxations; round++ {
		selected := selectSeparated(candidates, n, threshold)
		if len(selected) == n {
			return selected, nil
		}
		threshold /= 2
	}

	return nil, fmt.Errorf("%w: %d candidates for %d slots", ErrInsufficientColors, len(candidates), n)
}

// selectSeparated greedily picks up to n colors in priority order,
// skipping any candidate within the threshold of a previous pick.
func selectSeparated(candidates []WeightedColor, n int, threshold float64) []Color {
	selected := make([]Color, 0, n)
	for _, candidate := range candidates {
		if len(selected) == n {
			break
		}
		absorbed := false
		for _, s := range selected {
			if Distance(candidate.Color, s) <= threshold {
				absorbed = true
				break
			}
		}
		if !absorbed {
			selected = append(selected, candidate.Color)
		}
	}
	return selected
}

func mergeCandidates(colors []WeightedColor) []WeightedColor {
	byColor := make(map[Color]float64, len(colors))
	for _, wc := range colors {
		if wc.Weight > 0 {
			byColor[wc.Color] += wc.Weight
		}
	}

	merged := make([]WeightedColor, 0, len(byColor))
	for c, w := range byColor {
		merged = append(merged, WeightedColor{Color: c, Weight: w})
	}
	return merged
}

// kmeansCandidates over-clusters the candidate set and replaces it with
// the cluster centers, weighted by cluster population. The greedy
// selector still makes the final cut, so the exclusion radius and its
// relaxation behave the same for both methods.
func kmeansCandidates(candidates []WeightedColor, n int) []WeightedColor {
	observations := make(clusters.Observations, 0, len(candidates))
	for _, wc := range candidates {
		observations = append(observations, clusters.Coordinates{
			float64(wc.R) / 255,
			float64(wc.G) / 255,
			float64(wc.B) / 255,
		})
	}

	workK := n * 3
	if workK > len(observations) {
		workK = len(observations)
	}

	km := kmeans.New()
	cc, err := km.Partition(observations, workK)
	if err != nil || len(cc) == 0 {
		// Fall back to the raw candidates rather than failing the whole
		// reduction.
		return candidates
	}

	centers := make([]WeightedColor, 0, len(cc))
	for _, cluster := range cc {
		if len(cluster.Center) < 3 || len(cluster.Observations) == 0 {
			continue
		}
		centers = append(centers, WeightedColor{
			Color: Color{
				roundChannel(cluster.Center[0]),
				roundChannel(cluster.Center[1]),
				roundChannel(cluster.Center[2]),
			},
			Weight: float64(len(cluster.Observations)),
		})
	}
	if len(centers) == 0 {
		return candidates
	}
	return mergeCandidates(centers)
}

func roundChannel(v float64) uint8 {
	return clampChannel(int(math.Round(v * 255)))
}
