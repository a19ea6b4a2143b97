package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metacrowd/exchange-contract/rpc/exchange"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const cfgListen = "listen"

// Labels of the released tokens.
const (
	releasedSeller     = "seller"
	releasedCommission = "commission"
	releasedReward     = "reward"
	releasedRefund     = "refund"
)

// exchangeMetrics is a set of metrics collected from contract notifications.
type exchangeMetrics struct {
	events       *prometheus.CounterVec
	escrowed     prometheus.Counter
	released     *prometheus.CounterVec
	openDisputes prometheus.Gauge
}

var defaultMetrics = newExchangeMetrics()

func init() {
	defaultMetrics.mustRegister(prometheus.DefaultRegisterer)
}

func newExchangeMetrics() *exchangeMetrics {
	return &exchangeMetrics{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "exchange",
				Name:      "events_total",
				Help:      "Total number of exchange contract notifications.",
			},
			[]string{"event"},
		),
		escrowed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "exchange",
				Name:      "escrowed_tokens_total",
				Help:      "Total amount of tokens locked in request and task escrows.",
			},
		),
		released: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "exchange",
				Name:      "released_tokens_total",
				Help:      "Total amount of tokens paid out of escrows.",
			},
			[]string{"recipient"},
		),
		openDisputes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "exchange",
				Name:      "open_disputes",
				Help:      "Number of disputes filed since start and not resolved yet.",
			},
		),
	}
}

func (m *exchangeMetrics) mustRegister(r prometheus.Registerer) {
	r.MustRegister(m.events, m.escrowed, m.released, m.openDisputes)
}

// observe updates metrics with the notification. Notifications which can't
// be parsed are counted and logged.
func (m *exchangeMetrics) observe(log *zap.Logger, ev *state.NotificationEvent) {
	m.events.WithLabelValues(ev.Name).Inc()

	var err error
	switch ev.Name {
	case "RequestCreated":
		e := new(exchange.RequestCreatedEvent)
		if err = e.FromStackItem(ev.Item); err == nil {
			m.escrowed.Add(amount(e.Amount))
		}
	case "TaskCreated":
		e := new(exchange.TaskCreatedEvent)
		if err = e.FromStackItem(ev.Item); err == nil {
			m.escrowed.Add(amount(e.Deposit))
		}
	case "PaymentReleased":
		e := new(exchange.PaymentReleasedEvent)
		if err = e.FromStackItem(ev.Item); err == nil {
			m.released.WithLabelValues(releasedSeller).Add(amount(e.Payout))
			m.released.WithLabelValues(releasedCommission).Add(amount(e.Commission))
		}
	case "RequestRefunded":
		e := new(exchange.RequestRefundedEvent)
		if err = e.FromStackItem(ev.Item); err == nil {
			m.released.WithLabelValues(releasedRefund).Add(amount(e.Amount))
		}
	case "SubmissionSettled":
		e := new(exchange.SubmissionSettledEvent)
		if err = e.FromStackItem(ev.Item); err == nil {
			recipient := releasedRefund
			if e.Rewarded {
				recipient = releasedReward
			}
			m.released.WithLabelValues(recipient).Add(amount(e.Amount))
		}
	case "TaskEvaluated":
		e := new(exchange.TaskEvaluatedEvent)
		if err = e.FromStackItem(ev.Item); err == nil {
			m.released.WithLabelValues(releasedRefund).Add(amount(e.Refund))
		}
	case "DepositUnlocked":
		e := new(exchange.DepositUnlockedEvent)
		if err = e.FromStackItem(ev.Item); err == nil {
			m.released.WithLabelValues(releasedRefund).Add(amount(e.Refund))
		}
	case "DisputeFiled":
		m.openDisputes.Inc()
	case "DisputeResolved":
		m.openDisputes.Dec()
	}

	if err != nil {
		log.Warn("invalid notification", zap.String("event", ev.Name), zap.Error(err))
		return
	}

	log.Debug("notification", zap.String("event", ev.Name))
}

func amount(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

func newMetricsRouter(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}

func (a *app) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Export metrics of the exchange contract notifications",
		Long: `Subscribe to the exchange contract notifications and export metrics
collected from them in Prometheus format at /metrics. The RPC endpoint must
be a WebSocket one, e.g. ws://localhost:30333/ws.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.watch(cmd.Context())
		},
	}

	cmd.Flags().String(cfgListen, ":9100", "Address of the metrics HTTP server")

	return a.bindFlags(cmd)
}

func (a *app) watch(ctx context.Context) error {
	h, err := a.contractHash()
	if err != nil {
		return err
	}

	timeout := a.v.GetDuration(cfgTimeout)
	c, err := rpcclient.NewWS(ctx, a.v.GetString(cfgRPC), rpcclient.WSOptions{
		Options: rpcclient.Options{
			DialTimeout:    timeout,
			RequestTimeout: timeout,
		},
	})
	if err != nil {
		return fmt.Errorf("WS client dial: %w", err)
	}
	defer c.Close()

	if err = c.Init(); err != nil {
		return fmt.Errorf("init WS client: %w", err)
	}

	ch := make(chan *state.ContainedNotificationEvent)
	_, err = c.ReceiveExecutionNotifications(&neorpc.NotificationFilter{Contract: &h}, ch)
	if err != nil {
		return fmt.Errorf("subscribe to notifications: %w", err)
	}

	srv := &http.Server{
		Addr:              a.v.GetString(cfgListen),
		Handler:           newMetricsRouter(prometheus.DefaultGatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe()
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.log.Info("watching exchange contract",
		zap.Stringer("contract", h), zap.String("metrics", srv.Addr))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-srvErr:
			return fmt.Errorf("metrics server: %w", err)
		case ev, ok := <-ch:
			if !ok {
				return errors.New("notification channel is closed, connection lost")
			}
			defaultMetrics.observe(a.log, &ev.NotificationEvent)
		}
	}
}
