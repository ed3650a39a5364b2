package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestStoreMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewStoreMetrics(reg)

	m.IncCartAdd()
	m.IncCartAdd()
	m.IncCartRemove()
	m.IncCartUndo()
	m.IncRegistration()
	m.IncVerification()
	m.IncOrderPlaced()

	if got := testutil.ToFloat64(m.cartAdds); got != 2 {
		t.Fatalf("expected 2 cart adds, got %v", got)
	}
	if got := testutil.ToFloat64(m.cartRemoves); got != 1 {
		t.Fatalf("expected 1 cart removal, got %v", got)
	}
	if got := testutil.ToFloat64(m.cartUndos); got != 1 {
		t.Fatalf("expected 1 undo, got %v", got)
	}
}

func TestStoreMetricsNilSafe(t *testing.T) {
	var m *StoreMetrics
	m.IncCartAdd()
	m.IncCartRemove()
	m.IncCartUndo()
	m.IncRegistration()
	m.IncVerification()
	m.IncOrderPlaced()

	empty := NewStoreMetrics(nil)
	empty.IncCartAdd()
}
