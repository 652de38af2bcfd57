package ports

import (
	"context"
	"time"

	"github.com/raasdandiya/checkout/internal/core/domain"
)

// BookingAPI is the external booking backend. It owns the booking record,
// the payment order and all verification; the wizard only drives it.
type BookingAPI interface {
	CreateBooking(ctx context.Context, sel domain.TicketSelection) (string, error)
	AddContact(ctx context.Context, bookingID string, contact domain.ContactInfo) error
	CreatePaymentOrder(ctx context.Context, bookingID string, contact domain.ContactInfo) (domain.PaymentOrder, bool, error)
	ConfirmPayment(ctx context.Context, bookingID string, result domain.GatewayResult) error
}

// PaymentGateway opens the payment widget for an order and resolves with the
// gateway's signed result once its success callback fires.
type PaymentGateway interface {
	Open(ctx context.Context, order domain.PaymentOrder, sel domain.TicketSelection, contact domain.ContactInfo) (domain.GatewayResult, error)
}

// SessionStore keeps in-flight wizard sessions. Sessions are ephemeral;
// implementations may expire them after inactivity.
type SessionStore interface {
	Get(ctx context.Context, id string) (domain.WizardSession, error)
	Save(ctx context.Context, session domain.WizardSession) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, olderThan time.Time) (int, error)
}
