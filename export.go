package main

import (
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// Exporter writes loop-mode latency samples to InfluxDB.
type Exporter struct {
	client      influxdb2.Client
	writeAPI    api.WriteAPI
	measurement string
	source      string
}

// NewExporter sets up the InfluxDB client, or returns nil when no host
// is configured.
func NewExporter(config *Config) *Exporter {
	if config.InfluxDB.Host == "" {
		return nil
	}

	options := influxdb2.DefaultOptions()
	options.SetBatchSize(20)
	options.SetRetryInterval(5000)
	options.SetMaxRetries(5)

	influxURL := fmt.Sprintf("https://%s:%d", config.InfluxDB.Host, config.InfluxDB.Port)
	client := influxdb2.NewClientWithOptions(influxURL, config.InfluxDB.Token, options)

	return &Exporter{
		client:      client,
		writeAPI:    client.WriteAPI(config.InfluxDB.Org, config.InfluxDB.Bucket),
		measurement: config.InfluxDB.Measurement,
		source:      config.Checker.SourceHost,
	}
}

// Record writes one latency sample as a point.
func (e *Exporter) Record(target string, latency float64, statusCode, bodySize int) {
	point := influxdb2.NewPoint(
		e.measurement,
		map[string]string{
			"source": e.source,
			"target": target,
		},
		map[string]interface{}{
			"latency_s":   latency,
			"status_code": statusCode,
			"body_size":   bodySize,
		},
		time.Now(),
	)

	e.writeAPI.WritePoint(point)
}

// Close flushes any remaining writes.
func (e *Exporter) Close() {
	e.writeAPI.Flush()
	e.client.Close()
}
