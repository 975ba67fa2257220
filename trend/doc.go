// Package trend finds the changepoints of a numeric sample: the positions
// where the short-horizon trend reverses from up to down or back.
//
// 🚀 How does the scan work?
//
//	The scan looks ahead h steps at a time. A seed phase finds the first
//	non-zero average slope; an extension phase then keeps moving forward
//	while the h-step slope keeps the current sign. When the sign flips, the
//	extremum of the next h-window (a maximum in an up-trend, a minimum in a
//	down-trend) becomes a changepoint, the trend direction flips and the scan
//	resumes from there.
//
// ✨ Guarantees:
//   - Positions[0] == 0 and Positions are strictly increasing.
//   - len(Positions) == len(Values) >= 1.
//   - A constant sample yields the initial point only.
//   - The scan always terminates: the cursor never moves backwards and
//     every round either advances it or reaches the last index.
//
// ⚙️ Usage:
//
//	cp, err := trend.Segment(values, 5)
//	fmt.Println(cp.Positions, cp.Values)
package trend
