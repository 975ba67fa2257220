package series

// DefaultSampleLength is one trading day of half-hourly observations.
const DefaultSampleLength = 48

// Slice partitions s into consecutive, non-overlapping samples of exactly
// length points. A trailing partial sample is dropped. An empty series yields
// no samples and no error.
//
// Complexity: O(len(s)) time and memory.
func Slice(s Series, length int) ([]Sample, error) {
	if length < 2 {
		return nil, ErrBadLength
	}
	count := len(s) / length
	samples := make([]Sample, 0, count)
	for i := 0; i < count; i++ {
		samples = append(samples, NewSample(i, s[i*length:(i+1)*length]))
	}

	return samples, nil
}
