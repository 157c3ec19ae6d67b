// Package engagement turns social media engagement data into charts.
//
// It builds on gonum.org/v1/plot for tick generation and drawing.
//
// Pipeline
//
// Records are grouped (GroupBy), summarized (package stat, box plots only)
// and mapped to pixels by scales which are built once per chart from the
// full data domain. A Builder (package geom) emits an immutable list of
// Primitives; painting them is left to a sink (package render).
//
// Scales
//
// Package engagement knows about the following scales:
//   - Band    A categorical scale dividing its range in equal slots.
//   - Linear  A continuous scale, optionally extended to nice round numbers.
//   - Time    A Linear scale over Unix seconds with date tick labels.
//
// All pixel coordinates have their origin in the top left corner of the
// chart with y growing downwards.
package engagement
