// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
// ディレクトリサービスのMetricsRecorderおよび
// ミドルウェアのHTTPMetricsRecorderを実装する。
type Collector struct {
	signupTotal        *prometheus.CounterVec
	signupRejected     *prometheus.CounterVec
	unregisterTotal    *prometheus.CounterVec
	unregisterRejected *prometheus.CounterVec
	httpStatus         *prometheus.CounterVec
	requestLatency     prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signupTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_signup_total",
			Help: "活動別の申込成功の合計数",
		}, []string{"activity"}),
		signupRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_signup_rejected_total",
			Help: "理由別の申込拒否の合計数",
		}, []string{"reason"}),
		unregisterTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_unregister_total",
			Help: "活動別の取消成功の合計数",
		}, []string{"activity"}),
		unregisterRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_unregister_rejected_total",
			Help: "理由別の取消拒否の合計数",
		}, []string{"reason"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "activities_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "activities_request_latency_seconds",
			Help:    "HTTPリクエストのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.signupTotal,
		c.signupRejected,
		c.unregisterTotal,
		c.unregisterRejected,
		c.httpStatus,
		c.requestLatency,
	)

	return c
}

// RecordSignup は申込成功を記録する。
func (c *Collector) RecordSignup(activityName string) {
	c.signupTotal.WithLabelValues(activityName).Inc()
}

// RecordSignupRejected は申込拒否を理由別に記録する。
func (c *Collector) RecordSignupRejected(reason string) {
	c.signupRejected.WithLabelValues(reason).Inc()
}

// RecordUnregister は取消成功を記録する。
func (c *Collector) RecordUnregister(activityName string) {
	c.unregisterTotal.WithLabelValues(activityName).Inc()
}

// RecordUnregisterRejected は取消拒否を理由別に記録する。
func (c *Collector) RecordUnregisterRejected(reason string) {
	c.unregisterRejected.WithLabelValues(reason).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency はHTTPリクエストのレイテンシを記録する。
func (c *Collector) RecordRequestLatency(duration time.Duration) {
	c.requestLatency.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
