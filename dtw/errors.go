package dtw

import (
	"fmt"

	"github.com/katalvlaran/trendclust"
)

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = fmt.Errorf("dtw: input sequences must be non-empty: %w", trendclust.ErrInvalidInput)

	// ErrBadInput indicates contradictory or out-of-range options
	// (Window < -1, negative or non-finite SlopePenalty, unknown MemoryMode).
	ErrBadInput = fmt.Errorf("dtw: invalid options: %w", trendclust.ErrInvalidInput)

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = fmt.Errorf("dtw: ReturnPath requires MemoryMode=FullMatrix: %w", trendclust.ErrInvalidInput)
)
