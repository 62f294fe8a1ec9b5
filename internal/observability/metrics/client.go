// Package metrics records outbound agent API calls and renders them in the
// Prometheus text exposition format.
package metrics

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type requestKey struct {
	operation string
	method    string
	code      string
}

type errorKey struct {
	operation string
	method    string
}

type latencyKey struct {
	operation string
	method    string
}

type histogram struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type collector struct {
	mu       sync.Mutex
	requests map[requestKey]uint64
	errors   map[errorKey]uint64
	latency  map[latencyKey]*histogram
}

func newCollector() *collector {
	return &collector{
		requests: make(map[requestKey]uint64),
		errors:   make(map[errorKey]uint64),
		latency:  make(map[latencyKey]*histogram),
	}
}

var clientCollector = newCollector()

// ObserveRequest records one outbound request. status is 0 when no response
// was received.
func ObserveRequest(operation, method string, status int, duration time.Duration) {
	clientCollector.observe(operation, method, status, duration)
}

func (c *collector) observe(operation, method string, status int, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests[requestKey{operation: operation, method: method, code: strconv.Itoa(status)}]++
	if status == 0 || status >= 400 {
		c.errors[errorKey{operation: operation, method: method}]++
	}

	latKey := latencyKey{operation: operation, method: method}
	hist := c.latency[latKey]
	if hist == nil {
		hist = newHistogram()
		c.latency[latKey] = hist
	}
	hist.observe(duration.Seconds())
}

func newHistogram() *histogram {
	buckets := []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// observe increments every bucket whose bound is >= value; values above the
// last bound only land in +Inf through count.
func (h *histogram) observe(value float64) {
	h.count++
	h.sum += value
	for idx, bound := range h.buckets {
		if value <= bound {
			for i := idx; i < len(h.counts); i++ {
				h.counts[i]++
			}
			return
		}
	}
}

// Handler exposes the client metrics in Prometheus text exposition format.
func Handler() http.Handler {
	return handlerFor(clientCollector)
}

func handlerFor(c *collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		_, _ = fmt.Fprint(w, c.render())
	})
}

func (c *collector) render() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	type requestMetric struct {
		requestKey
		value uint64
	}
	type errorMetric struct {
		errorKey
		value uint64
	}
	type latencyMetric struct {
		latencyKey
		buckets []float64
		counts  []uint64
		sum     float64
		count   uint64
	}

	reqs := make([]requestMetric, 0, len(c.requests))
	for key, value := range c.requests {
		reqs = append(reqs, requestMetric{requestKey: key, value: value})
	}
	errs := make([]errorMetric, 0, len(c.errors))
	for key, value := range c.errors {
		errs = append(errs, errorMetric{errorKey: key, value: value})
	}
	lats := make([]latencyMetric, 0, len(c.latency))
	for key, hist := range c.latency {
		lats = append(lats, latencyMetric{
			latencyKey: key,
			buckets:    append([]float64(nil), hist.buckets...),
			counts:     append([]uint64(nil), hist.counts...),
			sum:        hist.sum,
			count:      hist.count,
		})
	}

	sort.Slice(reqs, func(i, j int) bool {
		if reqs[i].operation == reqs[j].operation {
			if reqs[i].method == reqs[j].method {
				return reqs[i].code < reqs[j].code
			}
			return reqs[i].method < reqs[j].method
		}
		return reqs[i].operation < reqs[j].operation
	})
	sort.Slice(errs, func(i, j int) bool {
		if errs[i].operation == errs[j].operation {
			return errs[i].method < errs[j].method
		}
		return errs[i].operation < errs[j].operation
	})
	sort.Slice(lats, func(i, j int) bool {
		if lats[i].operation == lats[j].operation {
			return lats[i].method < lats[j].method
		}
		return lats[i].operation < lats[j].operation
	})

	var builder strings.Builder
	builder.Grow(1024)

	builder.WriteString("# HELP acapy_client_requests_total Total number of requests sent to the agent.\n")
	builder.WriteString("# TYPE acapy_client_requests_total counter\n")
	for _, metric := range reqs {
		builder.WriteString(fmt.Sprintf("acapy_client_requests_total{operation=\"%s\",method=\"%s\",code=\"%s\"} %d\n",
			escape(metric.operation), escape(metric.method), escape(metric.code), metric.value))
	}

	builder.WriteString("# HELP acapy_client_request_errors_total Total number of requests that failed or got a non-2xx answer.\n")
	builder.WriteString("# TYPE acapy_client_request_errors_total counter\n")
	for _, metric := range errs {
		builder.WriteString(fmt.Sprintf("acapy_client_request_errors_total{operation=\"%s\",method=\"%s\"} %d\n",
			escape(metric.operation), escape(metric.method), metric.value))
	}

	builder.WriteString("# HELP acapy_client_request_duration_seconds Agent request duration in seconds.\n")
	builder.WriteString("# TYPE acapy_client_request_duration_seconds histogram\n")
	for _, metric := range lats {
		for idx, bound := range metric.buckets {
			builder.WriteString(fmt.Sprintf("acapy_client_request_duration_seconds_bucket{operation=\"%s\",method=\"%s\",le=\"%s\"} %d\n",
				escape(metric.operation), escape(metric.method), formatFloat(bound), metric.counts[idx]))
		}
		builder.WriteString(fmt.Sprintf("acapy_client_request_duration_seconds_bucket{operation=\"%s\",method=\"%s\",le=\"+Inf\"} %d\n",
			escape(metric.operation), escape(metric.method), metric.count))
		builder.WriteString(fmt.Sprintf("acapy_client_request_duration_seconds_sum{operation=\"%s\",method=\"%s\"} %s\n",
			escape(metric.operation), escape(metric.method), formatFloat(metric.sum)))
		builder.WriteString(fmt.Sprintf("acapy_client_request_duration_seconds_count{operation=\"%s\",method=\"%s\"} %d\n",
			escape(metric.operation), escape(metric.method), metric.count))
	}

	return builder.String()
}

func escape(value string) string {
	value = strings.ReplaceAll(value, "\\", "\\\\")
	value = strings.ReplaceAll(value, "\"", "\\\"")
	value = strings.ReplaceAll(value, "\n", "")
	return value
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
