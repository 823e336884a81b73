package metrics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/snappy"
	"github.com/prometheus/prometheus/prompb"
)

// DefaultTimeout is the default timeout for remote write requests.
const DefaultTimeout = 30 * time.Second

// Metric represents a single metric point pushed to the remote write endpoint.
type Metric struct {
	Name   string
	Value  float64
	Labels map[string]string
}

// PushConfig configures a Pusher.
type PushConfig struct {
	// URL is the base URL of the remote write endpoint (e.g., "http://localhost:9090").
	URL string
	// Prefix is the metric name prefix. All metric names will be prefixed with
	// this value followed by an underscore.
	Prefix string
	// Job is the job label for all metrics.
	Job string
	// Instance is the instance label for all metrics.
	Instance string
	// Timeout is the HTTP client timeout. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Pusher sends metrics to a VictoriaMetrics/Prometheus remote write endpoint.
type Pusher struct {
	url        string
	httpClient *http.Client
	prefix     string
	job        string
	instance   string
}

// NewPusher creates a Pusher for the given remote write endpoint.
func NewPusher(cfg PushConfig) *Pusher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Pusher{
		url:        cfg.URL + "/api/v1/write",
		httpClient: &http.Client{Timeout: timeout},
		prefix:     cfg.Prefix,
		job:        cfg.Job,
		instance:   cfg.Instance,
	}
}

// Push sends the given metrics to the remote write endpoint in a single request.
func (p *Pusher) Push(ctx context.Context, metrics ...Metric) error {
	if len(metrics) == 0 {
		return nil
	}

	timeseries := make([]prompb.TimeSeries, 0, len(metrics))
	for _, m := range metrics {
		timeseries = append(timeseries, p.metricToTimeSeries(m))
	}

	req := &prompb.WriteRequest{
		Timeseries: timeseries,
	}

	data, err := proto.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling write request: %w", err)
	}

	compressed := snappy.Encode(nil, data)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(compressed))
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Encoding", "snappy")
	httpReq.Header.Set("Content-Type", "application/x-protobuf")
	httpReq.Header.Set("X-Prometheus-Remote-Write-Version", "0.1.0")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// metricToTimeSeries converts a Metric to Prometheus TimeSeries format.
func (p *Pusher) metricToTimeSeries(m Metric) prompb.TimeSeries {
	labels := make([]prompb.Label, 0, len(m.Labels)+3)

	name := m.Name
	if p.prefix != "" {
		name = p.prefix + "_" + name
	}
	labels = append(labels, prompb.Label{
		Name:  "__name__",
		Value: name,
	})

	if p.job != "" {
		labels = append(labels, prompb.Label{
			Name:  "job",
			Value: p.job,
		})
	}
	if p.instance != "" {
		labels = append(labels, prompb.Label{
			Name:  "instance",
			Value: p.instance,
		})
	}

	for k, v := range m.Labels {
		labels = append(labels, prompb.Label{
			Name:  k,
			Value: v,
		})
	}

	sample := prompb.Sample{
		Value:     m.Value,
		Timestamp: time.Now().UnixMilli(),
	}

	return prompb.TimeSeries{
		Labels:  labels,
		Samples: []prompb.Sample{sample},
	}
}
