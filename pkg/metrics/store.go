package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records marketplace store mutations.
type StoreMetrics struct {
	cartAdds      prometheus.Counter
	cartRemoves   prometheus.Counter
	cartUndos     prometheus.Counter
	registrations prometheus.Counter
	verifications prometheus.Counter
	ordersPlaced  prometheus.Counter
}

// NewStoreMetrics registers the marketplace counters on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	cartAdds := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_added_total",
		Help: "Products added to carts.",
	})
	cartRemoves := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_items_removed_total",
		Help: "Cart rows removed.",
	})
	cartUndos := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_removals_undone_total",
		Help: "Cart removals restored through undo.",
	})
	registrations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "seller_registrations_total",
		Help: "New seller registrations.",
	})
	verifications := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "seller_verifications_total",
		Help: "Sellers verified by an admin.",
	})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Checkout orders placed.",
	})
	reg.MustRegister(cartAdds, cartRemoves, cartUndos, registrations, verifications, ordersPlaced)
	return &StoreMetrics{
		cartAdds:      cartAdds,
		cartRemoves:   cartRemoves,
		cartUndos:     cartUndos,
		registrations: registrations,
		verifications: verifications,
		ordersPlaced:  ordersPlaced,
	}
}

// IncCartAdd increments the cart add counter.
func (m *StoreMetrics) IncCartAdd() {
	if m == nil || m.cartAdds == nil {
		return
	}
	m.cartAdds.Inc()
}

// IncCartRemove increments the cart removal counter.
func (m *StoreMetrics) IncCartRemove() {
	if m == nil || m.cartRemoves == nil {
		return
	}
	m.cartRemoves.Inc()
}

// IncCartUndo increments the undo counter.
func (m *StoreMetrics) IncCartUndo() {
	if m == nil || m.cartUndos == nil {
		return
	}
	m.cartUndos.Inc()
}

// IncRegistration increments the seller registration counter.
func (m *StoreMetrics) IncRegistration() {
	if m == nil || m.registrations == nil {
		return
	}
	m.registrations.Inc()
}

// IncVerification increments the seller verification counter.
func (m *StoreMetrics) IncVerification() {
	if m == nil || m.verifications == nil {
		return
	}
	m.verifications.Inc()
}

// IncOrderPlaced increments the placed order counter.
func (m *StoreMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}
