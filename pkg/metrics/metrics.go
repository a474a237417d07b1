// Package metrics holds shared instrument settings for the service's meters.
package metrics

// DefaultBuckets are the histogram boundaries, in seconds, used for request
// latency instruments such as the API request duration histogram.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
