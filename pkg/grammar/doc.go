// Package grammar groups the line and document grammars built on
// package parse. Each subpackage decodes one input format into typed
// records and carries the small amount of logic that belongs with the
// format (tree assembly, condition evaluation, scoring).
package grammar
