package synth_test

import (
	"fmt"

	"github.com/katalvlaran/trendclust/synth"
)

func ExampleZigZag() {
	values, _ := synth.ZigZag(7, synth.WithStart(1), synth.WithAmplitude(2), synth.WithPeriod(4))
	fmt.Println(values)
	// Output: [1 2 3 2 1 2 3]
}
