package series

import (
	"fmt"

	"github.com/katalvlaran/trendclust"
)

var (
	// ErrBadLength indicates a sample length L < 2.
	ErrBadLength = fmt.Errorf("series: sample length must be >= 2: %w", trendclust.ErrInvalidInput)

	// ErrNotIncreasing indicates timestamps that are not strictly increasing.
	ErrNotIncreasing = fmt.Errorf("series: timestamps must be strictly increasing: %w", trendclust.ErrInvalidInput)

	// ErrMissingColumn indicates that a requested column header is absent.
	ErrMissingColumn = fmt.Errorf("series: column not found: %w", trendclust.ErrInvalidInput)

	// ErrBadValue indicates a cell that cannot be parsed as a number.
	ErrBadValue = fmt.Errorf("series: malformed value: %w", trendclust.ErrInvalidInput)

	// ErrBadTime indicates a cell that cannot be parsed as a timestamp.
	ErrBadTime = fmt.Errorf("series: malformed timestamp: %w", trendclust.ErrInvalidInput)

	// ErrUnsupportedFormat indicates an input file extension with no loader.
	ErrUnsupportedFormat = fmt.Errorf("series: unsupported file format: %w", trendclust.ErrInvalidInput)
)

// rowErrorf attaches a 1-based data row number (header excluded) to err.
func rowErrorf(row int, err error) error {
	return fmt.Errorf("row %d: %w", row, err)
}
