// Package volatility computes realized volatility, the sum of squared
// log-returns, over the segments delimited by a sample's changepoints.
//
//	rv, err := volatility.Realized([]float64{100, 101, 99.5})
//	seq, err := volatility.Sequence(values, cp.Positions) // len(cp)-1 entries
//
// Logarithms need strictly positive inputs; ErrNonPositive wraps
// trendclust.ErrDomain.
package volatility
