package main

import (
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func notification(name string, items ...stackitem.Item) *state.NotificationEvent {
	return &state.NotificationEvent{
		ScriptHash: util.Uint160{1},
		Name:       name,
		Item:       stackitem.NewArray(items),
	}
}

func TestObserve(t *testing.T) {
	m := newExchangeMetrics()
	m.mustRegister(prometheus.NewRegistry())
	log := zaptest.NewLogger(t)

	acc := stackitem.NewByteArray(util.Uint160{2}.BytesBE())
	num := func(v int64) stackitem.Item { return stackitem.NewBigInteger(big.NewInt(v)) }

	m.observe(log, notification("RequestCreated", num(1), acc, num(100)))
	m.observe(log, notification("TaskCreated", num(2), acc, num(50), num(1_700_000_000_000)))
	m.observe(log, notification("PaymentReleased", num(1), acc, num(85), num(15)))
	m.observe(log, notification("SubmissionSettled", num(2), num(0), acc, num(10), stackitem.NewBool(true)))
	m.observe(log, notification("SubmissionSettled", num(2), num(1), acc, num(10), stackitem.NewBool(false)))
	m.observe(log, notification("TaskEvaluated", num(2), num(3), num(20)))
	m.observe(log, notification("RequestCancelled", num(3), acc, num(40)))
	m.observe(log, notification("RequestRefunded", num(3), acc, num(40)))
	m.observe(log, notification("DisputeFiled", num(1), num(-1), acc))
	m.observe(log, notification("DisputeFiled", num(2), num(0), acc))
	m.observe(log, notification("DisputeResolved", num(1), num(-1), stackitem.NewBool(true)))

	// Broken notification is counted only.
	m.observe(log, notification("RequestRefunded", num(1)))

	require.EqualValues(t, 150, testutil.ToFloat64(m.escrowed))
	require.EqualValues(t, 85, testutil.ToFloat64(m.released.WithLabelValues(releasedSeller)))
	require.EqualValues(t, 15, testutil.ToFloat64(m.released.WithLabelValues(releasedCommission)))
	require.EqualValues(t, 10, testutil.ToFloat64(m.released.WithLabelValues(releasedReward)))
	require.EqualValues(t, 70, testutil.ToFloat64(m.released.WithLabelValues(releasedRefund)))
	require.EqualValues(t, 1, testutil.ToFloat64(m.openDisputes))
	require.EqualValues(t, 2, testutil.ToFloat64(m.events.WithLabelValues("DisputeFiled")))
	require.EqualValues(t, 2, testutil.ToFloat64(m.events.WithLabelValues("RequestRefunded")))
	require.EqualValues(t, 1, testutil.ToFloat64(m.events.WithLabelValues("RequestCancelled")))
}

func TestMetricsRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := newExchangeMetrics()
	m.mustRegister(reg)
	m.events.WithLabelValues("ListingCreated").Inc()

	srv := httptest.NewServer(newMetricsRouter(reg))
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `exchange_events_total{event="ListingCreated"} 1`)

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/unknown")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
