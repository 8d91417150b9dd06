package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

type poolStatter interface {
	Stat() *pgxpool.Stat
}

// PoolCollector exports pgxpool statistics as Prometheus gauges and counters.
type PoolCollector struct {
	pool poolStatter

	total        *prometheus.Desc
	idle         *prometheus.Desc
	acquired     *prometheus.Desc
	max          *prometheus.Desc
	acquireCount *prometheus.Desc
	emptyWait    *prometheus.Desc
}

// NewPoolCollector describes the stats of pool. Register it once per process.
func NewPoolCollector(pool poolStatter) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc("easi_db_pool_"+name, help, nil, nil)
	}
	return &PoolCollector{
		pool:         pool,
		total:        desc("connections", "Connections currently open."),
		idle:         desc("idle_connections", "Idle connections."),
		acquired:     desc("acquired_connections", "Connections checked out by queries."),
		max:          desc("max_connections", "Configured pool size."),
		acquireCount: desc("acquires_total", "Successful connection acquires."),
		emptyWait:    desc("empty_acquires_total", "Acquires that had to wait for a connection."),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.idle
	ch <- c.acquired
	ch <- c.max
	ch <- c.acquireCount
	ch <- c.emptyWait
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.acquireCount, prometheus.CounterValue, float64(s.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.emptyWait, prometheus.CounterValue, float64(s.EmptyAcquireCount()))
}
