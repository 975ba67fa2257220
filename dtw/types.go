// Package dtw defines options and modes for Dynamic Time Warping.
package dtw

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows: only keep two rows (current and previous).
//     Reduces memory to O(m), but cannot recover the path.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep only two rows, no path recovery, uses O(M) memory.
	TwoRows
)

// String returns the mode name.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "FullMatrix"
	case TwoRows:
		return "TwoRows"
	default:
		return "MemoryMode(?)"
	}
}

// Unlimited disables the Sakoe–Chiba band.
const Unlimited = -1

// Coord is one cell (I in a, J in b) of a warping path.
type Coord struct {
	I, J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     Unlimited (-1) disables the band, 0 allows the diagonal only.
//   - SlopePenalty: extra cost for insertion/deletion steps (>= 0).
//   - ReturnPath: if true, DTW backtracks and returns the optimal warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode: FullMatrix or TwoRows storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the plain DTW contract: no band, no penalty,
// no path, full matrix.
func DefaultOptions() Options {
	return Options{
		Window:       Unlimited,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}
