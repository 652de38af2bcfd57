package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/raasdandiya/checkout/internal/core/domain"
	"github.com/raasdandiya/checkout/internal/core/pricing"
)

type Config struct {
	KeyID     string
	ScriptURL string
	EventName string
	// Timeout bounds the checkout script fetch. Zero means no limit.
	Timeout time.Duration
}

// WidgetOptions is the configuration handed to the payment widget: the
// backend-supplied order data plus prefilled contact fields.
type WidgetOptions struct {
	Key         string  `json:"key"`
	Amount      int     `json:"amount"`
	Currency    string  `json:"currency"`
	OrderID     string  `json:"orderId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Prefill     Prefill `json:"prefill"`
}

type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// Bridge relays between the wizard and the external payment widget. It loads
// the widget's checkout script at most once, opens a checkout per backend
// order, and turns the widget's success callback into a blocking result:
// Open parks on a channel until Resolve delivers the signed payload. The
// bridge never verifies anything; the signature travels through untouched.
type Bridge struct {
	cfg   Config
	httpc *http.Client

	loadMu sync.Mutex
	loaded bool

	mu      sync.Mutex
	pending map[string]*pendingCheckout
}

type pendingCheckout struct {
	opts WidgetOptions
	done chan domain.GatewayResult
}

func New(cfg Config) *Bridge {
	return &Bridge{
		cfg:     cfg,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		pending: make(map[string]*pendingCheckout),
	}
}

// Open blocks until the widget reports success (through Resolve) or the
// context ends. The widget options stay retrievable via Pending for the
// lifetime of the checkout.
func (b *Bridge) Open(ctx context.Context, order domain.PaymentOrder, sel domain.TicketSelection, contact domain.ContactInfo) (domain.GatewayResult, error) {
	if err := b.ensureLoaded(ctx); err != nil {
		return domain.GatewayResult{}, err
	}

	pc := &pendingCheckout{
		opts: b.widgetOptions(order, sel, contact),
		done: make(chan domain.GatewayResult, 1),
	}

	b.mu.Lock()
	b.pending[order.ID] = pc
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, order.ID)
		b.mu.Unlock()
	}()

	select {
	case result := <-pc.done:
		return result, nil
	case <-ctx.Done():
		return domain.GatewayResult{}, ctx.Err()
	}
}

// Resolve delivers the widget's signed success payload to the blocked Open
// call. An unknown order id is an error so a stray callback never vanishes
// silently.
func (b *Bridge) Resolve(orderID string, result domain.GatewayResult) error {
	b.mu.Lock()
	pc, ok := b.pending[orderID]
	b.mu.Unlock()

	if !ok {
		return fmt.Errorf("no pending checkout for order %s", orderID)
	}

	pc.done <- result

	return nil
}

// Pending returns the widget options for an order awaiting payment.
func (b *Bridge) Pending(orderID string) (WidgetOptions, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pc, ok := b.pending[orderID]
	if !ok {
		return WidgetOptions{}, false
	}

	return pc.opts, true
}

// ensureLoaded fetches the checkout script at most once. Concurrent callers
// serialize on the mutex and share the outcome; a failed attempt may be
// retried by a later call.
func (b *Bridge) ensureLoaded(ctx context.Context) error {
	b.loadMu.Lock()
	defer b.loadMu.Unlock()

	if b.loaded {
		return nil
	}

	// A caller may have spent its whole deadline queued behind a slow load.
	if err := ctx.Err(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.cfg.ScriptURL, nil)
	if err != nil {
		return &domain.GatewayLoadError{Err: err}
	}

	resp, err := b.httpc.Do(req)
	if err != nil {
		return &domain.GatewayLoadError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.GatewayLoadError{Err: fmt.Errorf("checkout script returned %s", resp.Status)}
	}

	b.loaded = true

	return nil
}

func (b *Bridge) widgetOptions(order domain.PaymentOrder, sel domain.TicketSelection, contact domain.ContactInfo) WidgetOptions {
	return WidgetOptions{
		Key:         b.cfg.KeyID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		OrderID:     order.ID,
		Name:        b.cfg.EventName,
		Description: fmt.Sprintf("Booking for %d x %s", sel.Quantity, pricing.Label(sel.Duration, sel.Tier)),
		Prefill: Prefill{
			Name:    contact.FullName,
			Email:   contact.Email,
			Contact: contact.Phone,
		},
	}
}
