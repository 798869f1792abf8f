package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/numfield/internal/numfmt"
)

// Collector owns the prometheus registry for format/parse traffic. The
// registry is private so concurrent Collectors (one per test, say) never
// collide on global metric names.
type Collector struct {
	registry *prometheus.Registry

	formats prometheus.Counter
	parses  *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		formats: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "numfield",
			Name:      "format_total",
			Help:      "Number of values rendered to display text.",
		}),
		parses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numfield",
			Name:      "parse_total",
			Help:      "Number of parse attempts by outcome.",
		}, []string{"status"}),
	}
	c.registry.MustRegister(c.formats, c.parses)
	return c
}

// ObserveFormat records one Format call.
func (c *Collector) ObserveFormat() {
	c.formats.Inc()
}

// ObserveParse records one Parse call with its outcome.
func (c *Collector) ObserveParse(status numfmt.ParseStatus) {
	c.parses.WithLabelValues(status.String()).Inc()
}

// WriteText dumps the gathered metrics in the prometheus text exposition
// format. Used by the -show-metrics flag; there is no listening endpoint.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return err
		}
	}
	return nil
}
