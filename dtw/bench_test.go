package dtw_test

import (
	"testing"

	"github.com/katalvlaran/trendclust/dtw"
)

// benchmarkDTW is a helper that runs DTW on sequences of lengths n and m using opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkDTW(b *testing.B, n, m int, opts dtw.Options) {
	a := make([]float64, n)
	bSeq := make([]float64, m)
	for i := 0; i < n; i++ {
		a[i] = float64(i % 7)
	}
	for j := 0; j < m; j++ {
		bSeq[j] = float64(j % 5)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(a, bSeq, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_Changepoints mirrors the typical daily workload: tens of changepoints.
func BenchmarkDTW_Changepoints(b *testing.B) {
	benchmarkDTW(b, 24, 30, dtw.DefaultOptions())
}

// BenchmarkDTW_FullMatrixMedium benchmarks FullMatrix mode on 500×500 sequences.
func BenchmarkDTW_FullMatrixMedium(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.DefaultOptions())
}

// BenchmarkDTW_TwoRowsMedium benchmarks TwoRows mode on 500×500 sequences.
func BenchmarkDTW_TwoRowsMedium(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows
	benchmarkDTW(b, 500, 500, opts)
}

// BenchmarkDTW_WindowConstraint benchmarks a narrow band on mismatched lengths.
func BenchmarkDTW_WindowConstraint(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 10
	benchmarkDTW(b, 500, 501, opts)
}
