package pointcloud

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for accumulation.
// One instance may be shared by several accumulators: values are summed over them.
type Metrics struct {
	// Frames counts processed frames
	Frames prometheus.Counter
	// Observations counts observations of processed frames
	Observations prometheus.Counter
	// NewPoints counts points returned as new
	NewPoints prometheus.Counter
	// SeenIdentifiers is number of distinct identifiers held by accumulators
	SeenIdentifiers prometheus.Gauge
}

// NewMetrics creates collectors and registers them in reg. When reg is nil collectors are left unregistered
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pointcloud_frames_total",
			Help: "Total number of frames passed to accumulators",
		}),
		Observations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pointcloud_observations_total",
			Help: "Total number of feature observations in accumulated frames",
		}),
		NewPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pointcloud_new_points_total",
			Help: "Total number of points reported as newly observed",
		}),
		SeenIdentifiers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pointcloud_seen_identifiers",
			Help: "Current number of distinct feature identifiers held in memory",
		}),
	}
	if reg == nil {
		return metrics, nil
	}
	for _, collector := range []prometheus.Collector{metrics.Frames, metrics.Observations, metrics.NewPoints, metrics.SeenIdentifiers} {
		if err := reg.Register(collector); err != nil {
			return nil, errors.Wrap(err, "Can't register pointcloud metrics")
		}
	}
	return metrics, nil
}

func (metrics *Metrics) observe(observations, newPoints, newIdentifiers int) {
	if metrics == nil {
		return
	}
	metrics.Frames.Inc()
	metrics.Observations.Add(float64(observations))
	metrics.NewPoints.Add(float64(newPoints))
	metrics.SeenIdentifiers.Add(float64(newIdentifiers))
}
