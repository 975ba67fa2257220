package pipeline

import (
	"fmt"

	"github.com/katalvlaran/trendclust"
)

// ErrBadConfig indicates an out-of-range configuration value.
var ErrBadConfig = fmt.Errorf("pipeline: invalid configuration: %w", trendclust.ErrInvalidInput)

// stageErrorf attaches the stage name to err.
func stageErrorf(stage string, err error) error {
	return fmt.Errorf("pipeline: %s: %w", stage, err)
}
