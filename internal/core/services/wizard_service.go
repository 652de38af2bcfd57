package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/raasdandiya/checkout/internal/core/domain"
	"github.com/raasdandiya/checkout/internal/core/ports"
	"github.com/raasdandiya/checkout/internal/core/pricing"
	"github.com/raasdandiya/checkout/internal/core/validate"
)

// WizardService drives one checkout attempt through
// SELECTING -> CONTACT -> REVIEW -> CONFIRMED. Each forward transition must
// pass its validation gate and exactly one backend call; only a successful
// response advances the step.
type WizardService struct {
	store      ports.SessionStore
	backend    ports.BookingAPI
	gateway    ports.PaymentGateway
	gate       *validate.Gate
	sessionTTL time.Duration

	locks sync.Map // session id -> *sync.Mutex
}

func NewWizardService(store ports.SessionStore, backend ports.BookingAPI, gateway ports.PaymentGateway, gate *validate.Gate, sessionTTL time.Duration) *WizardService {
	return &WizardService{
		store:      store,
		backend:    backend,
		gateway:    gateway,
		gate:       gate,
		sessionTTL: sessionTTL,
	}
}

func (s *WizardService) StartSession(ctx context.Context) (domain.WizardSession, error) {
	sess := domain.NewWizardSession(uuid.New().String())

	if err := s.store.Save(ctx, sess); err != nil {
		return domain.WizardSession{}, err
	}

	return sess, nil
}

func (s *WizardService) Session(ctx context.Context, sessionID string) (domain.WizardSession, error) {
	return s.store.Get(ctx, sessionID)
}

// sessionLock returns the mutex serializing state changes for one session.
// It is never held across an outbound call: once IsSubmitting is persisted
// the flag itself keeps every other writer out.
func (s *WizardService) sessionLock(id string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// SubmitSelection performs SELECTING -> CONTACT: gate the selection, create
// the booking in the backend, keep its id. Duplicate calls for one session
// serialize on its lock until the busy flag is persisted, so rapid repeated
// clicks result in exactly one backend request.
func (s *WizardService) SubmitSelection(ctx context.Context, sessionID string, sel domain.TicketSelection) (domain.WizardSession, error) {
	sess, ready, err := s.prepareSelection(ctx, sessionID, sel)
	if !ready {
		return sess, err
	}

	bookingID, err := s.backend.CreateBooking(ctx, sel)
	if err != nil {
		return s.endSubmit(ctx, sess, err)
	}

	sess.BookingID = bookingID
	sess.Step = domain.StepContact

	return s.endSubmit(ctx, sess, nil)
}

// prepareSelection runs the guarded part of SubmitSelection under the
// session lock: read, busy check, gates, and marking the session busy.
func (s *WizardService) prepareSelection(ctx context.Context, sessionID string, sel domain.TicketSelection) (domain.WizardSession, bool, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.WizardSession{}, false, err
	}

	if sess.IsSubmitting {
		return sess, false, nil
	}

	if sess.Step != domain.StepSelecting {
		return sess, false, &domain.StateError{Msg: "ticket selection is only accepted in step SELECTING"}
	}

	if errs := s.gate.SelectionStep(sel); len(errs) > 0 {
		sess.Selection = sel
		sess, err := s.saveValidationFailure(ctx, sess, errs)
		return sess, false, err
	}

	if _, err := pricing.Quote(sel.Duration, sel.Tier, sel.Quantity); err != nil {
		sess.Selection = sel
		sess, err := s.saveValidationFailure(ctx, sess, map[string]string{"tier": err.Error()})
		return sess, false, err
	}

	sess.Selection = sel
	sess.LastValidationErrors = nil

	sess, err = s.beginSubmit(ctx, sess)
	if err != nil {
		return sess, false, err
	}

	return sess, true, nil
}

// SubmitContact performs CONTACT -> REVIEW. It fails closed when no booking
// id is present rather than issuing a malformed backend request.
func (s *WizardService) SubmitContact(ctx context.Context, sessionID string, contact domain.ContactInfo) (domain.WizardSession, error) {
	sess, ready, err := s.prepareContact(ctx, sessionID, &contact)
	if !ready {
		return sess, err
	}

	if err := s.backend.AddContact(ctx, sess.BookingID, contact); err != nil {
		return s.endSubmit(ctx, sess, err)
	}

	sess.Step = domain.StepReview

	return s.endSubmit(ctx, sess, nil)
}

func (s *WizardService) prepareContact(ctx context.Context, sessionID string, contact *domain.ContactInfo) (domain.WizardSession, bool, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.WizardSession{}, false, err
	}

	if sess.IsSubmitting {
		return sess, false, nil
	}

	if sess.Step != domain.StepContact {
		return sess, false, &domain.StateError{Msg: "contact details are only accepted in step CONTACT"}
	}

	if sess.BookingID == "" {
		return sess, false, &domain.StateError{Msg: "no booking exists for this session"}
	}

	normalized, errs := s.gate.ContactStep(*contact)
	if len(errs) > 0 {
		sess.Contact = normalized
		sess, err := s.saveValidationFailure(ctx, sess, errs)
		return sess, false, err
	}

	*contact = normalized
	sess.Contact = normalized
	sess.LastValidationErrors = nil

	sess, err = s.beginSubmit(ctx, sess)
	if err != nil {
		return sess, false, err
	}

	return sess, true, nil
}

// Pay performs REVIEW -> CONFIRMED. The backend may report that the
// confirmation email already went out (an explicit flag on the payment-order
// response, e.g. zero-amount bookings); then the gateway is never opened.
// Otherwise Pay blocks until the gateway's success callback resolves, relays
// the signed result, and advances only on a confirmed backend response. A
// captured payment the backend refuses to confirm surfaces as
// PaymentNotConfirmedError, never as a silent advance.
func (s *WizardService) Pay(ctx context.Context, sessionID string) (domain.WizardSession, error) {
	sess, ready, err := s.preparePay(ctx, sessionID)
	if !ready {
		return sess, err
	}

	order, emailSent, err := s.backend.CreatePaymentOrder(ctx, sess.BookingID, sess.Contact)
	if err != nil {
		return s.endSubmit(ctx, sess, err)
	}

	if emailSent {
		sess.Step = domain.StepConfirmed
		return s.endSubmit(ctx, sess, nil)
	}

	result, err := s.gateway.Open(ctx, order, sess.Selection, sess.Contact)
	if err != nil {
		return s.endSubmit(ctx, sess, err)
	}

	if err := s.backend.ConfirmPayment(ctx, sess.BookingID, result); err != nil {
		return s.endSubmit(ctx, sess, &domain.PaymentNotConfirmedError{BookingID: sess.BookingID, Err: err})
	}

	sess.Step = domain.StepConfirmed

	return s.endSubmit(ctx, sess, nil)
}

func (s *WizardService) preparePay(ctx context.Context, sessionID string) (domain.WizardSession, bool, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.WizardSession{}, false, err
	}

	if sess.IsSubmitting {
		return sess, false, nil
	}

	if sess.Step != domain.StepReview {
		return sess, false, &domain.StateError{Msg: "payment is only accepted in step REVIEW"}
	}

	if sess.BookingID == "" {
		return sess, false, &domain.StateError{Msg: "no booking exists for this session"}
	}

	sess, err = s.beginSubmit(ctx, sess)
	if err != nil {
		return sess, false, err
	}

	return sess, true, nil
}

func (s *WizardService) GoBack(ctx context.Context, sessionID string) (domain.WizardSession, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.WizardSession{}, err
	}

	if sess.IsSubmitting {
		return sess, nil
	}

	sess, err = sess.Back()
	if err != nil {
		return sess, err
	}

	if err := s.store.Save(ctx, sess); err != nil {
		return sess, err
	}

	return sess, nil
}

func (s *WizardService) Reset(ctx context.Context, sessionID string) (domain.WizardSession, error) {
	mu := s.sessionLock(sessionID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return domain.WizardSession{}, err
	}

	if sess.IsSubmitting {
		return sess, nil
	}

	sess = sess.Reset()

	if err := s.store.Save(ctx, sess); err != nil {
		return sess, err
	}

	return sess, nil
}

// beginSubmit marks the session busy and persists the flag. Callers hold the
// session lock, so the check in prepare* and this mark are one atomic step.
func (s *WizardService) beginSubmit(ctx context.Context, sess domain.WizardSession) (domain.WizardSession, error) {
	sess.IsSubmitting = true
	sess = sess.Touch()

	if err := s.store.Save(ctx, sess); err != nil {
		sess.IsSubmitting = false
		return sess, err
	}

	return sess, nil
}

// endSubmit clears the busy flag on every exit path, persists the session,
// and propagates the transition's outcome. It runs without the session lock:
// while the persisted flag is set, every other writer no-ops. The save must
// land even when the request context was cancelled mid-payment, or the
// session stays busy until it expires.
func (s *WizardService) endSubmit(ctx context.Context, sess domain.WizardSession, cause error) (domain.WizardSession, error) {
	sess.IsSubmitting = false
	sess = sess.Touch()

	if err := s.store.Save(context.WithoutCancel(ctx), sess); err != nil {
		if cause != nil {
			log.Printf("Failed to save session %s after error: %v", sess.ID, err)
			return sess, cause
		}

		return sess, err
	}

	return sess, cause
}

func (s *WizardService) saveValidationFailure(ctx context.Context, sess domain.WizardSession, errs map[string]string) (domain.WizardSession, error) {
	sess.LastValidationErrors = errs
	sess = sess.Touch()

	if err := s.store.Save(ctx, sess); err != nil {
		return sess, err
	}

	return sess, &domain.ValidationError{Fields: errs}
}

// RunSessionSweeper expires checkout sessions idle longer than the
// configured TTL. Abandoned sessions hold no booking state the backend
// depends on, so dropping them is safe.
func (s *WizardService) RunSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	log.Println("Session sweeper started: expiring idle checkout sessions every 1 minute...")

	for {
		select {
		case <-ctx.Done():
			log.Println("Session sweeper stopped.")
			return
		case <-ticker.C:
			s.sweepIdleSessions(ctx)
		}
	}
}

func (s *WizardService) sweepIdleSessions(ctx context.Context) {
	removed, err := s.store.DeleteExpired(ctx, time.Now().Add(-s.sessionTTL))
	if err != nil {
		log.Printf("Error expiring idle sessions: %v", err)
		return
	}

	if removed > 0 {
		log.Printf("Expired %d idle checkout session(s).", removed)
	}
}
