// Package sample evaluates interpolation curves described in YAML at regularly
// spaced weights and exports the results as CSV.
package sample
