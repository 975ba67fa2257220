// Package report turns a pipeline.Result into a serialisable Document and
// writes it as JSON or YAML.
//
// Sample names are RFC3339 timestamps. With WithDendrograms the document
// also carries every stage's merge history and leaf order, which is enough
// for an external tool to draw the dendrograms.
package report
