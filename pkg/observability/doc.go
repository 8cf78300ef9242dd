/*
Package observability provides metrics for solver runs.

Metrics live on their own prometheus.Registry so that several engines (or
tests) never collide on the default registerer. Hooks returns lifecycle
callbacks that feed them, and WriteText dumps the current values in the
Prometheus text exposition format.
*/
package observability
