// Package telemetry declares the Prometheus metrics exported on /metrics.
package telemetry

import (
	"errors"

	"github.com/dmitrijs2005/gophwallet/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// gRPC metrics
	GRPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_grpc_requests_total",
			Help: "Total number of gRPC requests",
		},
		[]string{"method", "code"},
	)

	GRPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wallet_grpc_request_duration_seconds",
			Help:    "gRPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Transfer metrics
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_transfers_total",
			Help: "Total number of transfer attempts",
		},
		[]string{"status"},
	)

	TransferAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wallet_transfer_amount",
			Help:    "Committed transfer amounts (in minor units)",
			Buckets: []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		},
	)

	TransferProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wallet_transfer_processing_duration_seconds",
			Help:    "Time to process a transfer, retries included",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	TransferRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_transfer_retries_total",
			Help: "Transfer transactions re-run after a write conflict",
		},
	)

	// User metrics
	SignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wallet_signups_total",
			Help: "Total number of registered users",
		},
	)

	// NATS metrics
	NATSMessagesPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_nats_messages_published_total",
			Help: "Total number of NATS messages published",
		},
		[]string{"subject"},
	)

	NATSPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_nats_publish_failures_total",
			Help: "Total number of NATS messages that could not be published",
		},
		[]string{"subject"},
	)
)

// Transfer status labels.
const (
	StatusSuccess           = "success"
	StatusInvalidAmount     = "invalid_amount"
	StatusSelfTransfer      = "self_transfer"
	StatusAccountNotFound   = "account_not_found"
	StatusRecipientNotFound = "recipient_not_found"
	StatusInsufficientFunds = "insufficient_funds"
	StatusTimeout           = "timeout"
	StatusAborted           = "aborted"
	StatusFailed            = "failed"
)

// TransferStatus maps the outcome of a transfer to its status label.
func TransferStatus(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, common.ErrInvalidAmount):
		return StatusInvalidAmount
	case errors.Is(err, common.ErrSelfTransfer):
		return StatusSelfTransfer
	case errors.Is(err, common.ErrAccountNotFound):
		return StatusAccountNotFound
	case errors.Is(err, common.ErrRecipientNotFound):
		return StatusRecipientNotFound
	case errors.Is(err, common.ErrInsufficientFunds):
		return StatusInsufficientFunds
	case errors.Is(err, common.ErrTransferTimeout):
		return StatusTimeout
	case errors.Is(err, common.ErrTxAborted):
		return StatusAborted
	default:
		return StatusFailed
	}
}
