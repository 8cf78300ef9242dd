// Package registry holds the solvers available to the runner, keyed by day.
package registry
