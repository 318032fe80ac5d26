// Package metrics holds the Prometheus counters kept while running gluster
// commands and parsing their replies.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "glustertopo"

var (
	// Commands counts gluster invocations by subcommand and result
	Commands = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "gluster CLI invocations by command and result.",
	}, []string{"command", "result"})

	// ParseFailures counts replies that could not be interpreted, by error kind
	ParseFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "parse_failures_total",
		Help:      "gluster replies rejected by the parsers, by failure kind.",
	}, []string{"listing", "kind"})

	// RowsSkipped counts text rows ignored by the line extractors
	RowsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_skipped_total",
		Help:      "Rows of line-oriented output skipped as not matching the expected shape.",
	}, []string{"extractor"})

	// Registry holds every collector of this package
	Registry = prometheus.NewRegistry()
)

func init() {
	Registry.MustRegister(Commands, ParseFailures, RowsSkipped)
}

// WriteTextfile writes the current counter values to path in the text
// exposition format read by node_exporter's textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
