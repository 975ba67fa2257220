package hcluster

import (
	"fmt"
	"strings"
)

// Method selects the inter-cluster distance used after a merge.
type Method int

const (
	// Complete uses the maximum pairwise distance (farthest neighbour).
	Complete Method = iota
	// Single uses the minimum pairwise distance (nearest neighbour).
	Single
	// Average uses the size-weighted mean pairwise distance (UPGMA).
	Average
	// Ward minimises the increase of within-cluster variance.
	Ward
)

// String returns the lower-case linkage name.
func (m Method) String() string {
	switch m {
	case Complete:
		return "complete"
	case Single:
		return "single"
	case Average:
		return "average"
	case Ward:
		return "ward"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, ErrUnknownMethod
	}

	return []byte(m.String()), nil
}

func (m Method) valid() bool {
	return m >= Complete && m <= Ward
}

// ParseMethod maps a case-insensitive linkage name to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete":
		return Complete, nil
	case "single":
		return Single, nil
	case "average":
		return Average, nil
	case "ward":
		return Ward, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Merge is one agglomeration step. Left < Right always holds.
type Merge struct {
	Left     int     `json:"left" yaml:"left"`
	Right    int     `json:"right" yaml:"right"`
	Distance float64 `json:"distance" yaml:"distance"`
	Size     int     `json:"size" yaml:"size"`
}

// Dendrogram is the full merge history over N leaves (len(Merges) == N-1).
type Dendrogram struct {
	N      int     `json:"n" yaml:"n"`
	Method Method  `json:"method" yaml:"method"`
	Merges []Merge `json:"merges" yaml:"merges"`
}

// Labels assigns a cluster label in [1, k] to each item, indexed by item.
type Labels []int

// Groups returns label → item indices, each list in ascending item order.
func (l Labels) Groups() map[int][]int {
	out := make(map[int][]int)
	for i, lab := range l {
		out[lab] = append(out[lab], i)
	}

	return out
}

// K returns the number of distinct labels.
func (l Labels) K() int {
	k := 0
	for _, lab := range l {
		if lab > k {
			k = lab
		}
	}

	return k
}
