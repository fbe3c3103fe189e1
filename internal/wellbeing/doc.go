// Package wellbeing derives mood and sleep statistics, trend
// classifications, activity correlations and natural-language insights from
// a user's raw entries.
//
// Every function is pure: inputs are never mutated, "now" is passed in by the
// caller and an empty window produces a zero snapshot rather than an error.
// Values are not rounded; rounding is left to presentation.
package wellbeing
