// Package series holds the raw (timestamp, value) data the pipeline consumes:
// points, series, fixed-length samples and the loaders that read them from
// CSV or XLSX files.
//
// A Series must have strictly increasing timestamps; the loaders enforce it
// and the clustering core assumes it (no re-sorting happens downstream).
//
//	s, err := series.LoadFile("prices.csv", series.DefaultColumns(), "")
//	samples, err := series.Slice(s, 48) // one sample per trading day
package series
