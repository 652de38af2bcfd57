package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/raasdandiya/checkout/internal/adapter/gateway"
	"github.com/raasdandiya/checkout/internal/core/domain"
	"github.com/raasdandiya/checkout/internal/core/pricing"
	"github.com/raasdandiya/checkout/internal/core/services"
)

// WizardHandler exposes one route per wizard transition plus the gateway's
// success-callback webhook.
type WizardHandler struct {
	svc    *services.WizardService
	bridge *gateway.Bridge
}

func NewWizardHandler(svc *services.WizardService, bridge *gateway.Bridge) *WizardHandler {
	return &WizardHandler{svc: svc, bridge: bridge}
}

type selectionRequest struct {
	EventDate     string `json:"eventDate"`
	DurationClass string `json:"durationClass"`
	TierCode      string `json:"tierCode"`
	Quantity      int    `json:"quantity"`
}

type contactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type callbackRequest struct {
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	GatewaySignature string `json:"gatewaySignature"`
}

type quotePayload struct {
	UnitPrice           int  `json:"unitPrice"`
	TotalAmount         int  `json:"totalAmount"`
	BulkDiscountApplied bool `json:"bulkDiscountApplied"`
	Savings             int  `json:"savings"`
	OriginalUnitPrice   int  `json:"originalUnitPrice,omitempty"`
}

type sessionResponse struct {
	SessionID    string            `json:"sessionId"`
	Step         int               `json:"step"`
	StepName     string            `json:"stepName"`
	EventDate    string            `json:"eventDate"`
	Duration     string            `json:"durationClass"`
	Tier         string            `json:"tierCode"`
	Quantity     int               `json:"quantity"`
	Name         string            `json:"name,omitempty"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	BookingID    string            `json:"bookingId,omitempty"`
	Quote        *quotePayload     `json:"quote,omitempty"`
	TierLabel    string            `json:"tierLabel,omitempty"`
	DiscountHint string            `json:"discountHint,omitempty"`
	Errors       map[string]string `json:"errors,omitempty"`
}

func (h *WizardHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.StartSession(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeSession(w, http.StatusCreated, sess)
}

func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

func (h *WizardHandler) SubmitSelection(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json body"})
		return
	}

	sel := domain.TicketSelection{
		EventDate: req.EventDate,
		Duration:  domain.DurationClass(strings.ToUpper(req.DurationClass)),
		Tier:      domain.TierCode(strings.ToUpper(req.TierCode)),
		Quantity:  req.Quantity,
	}

	sess, err := h.svc.SubmitSelection(r.Context(), r.PathValue("id"), sel)
	h.writeOutcome(w, sess, err)
}

func (h *WizardHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json body"})
		return
	}

	contact := domain.ContactInfo{FullName: req.Name, Email: req.Email, Phone: req.Phone}

	sess, err := h.svc.SubmitContact(r.Context(), r.PathValue("id"), contact)
	h.writeOutcome(w, sess, err)
}

// Pay blocks until the gateway callback resolves the pending checkout, the
// backend short-circuits with emailSent, or the request context ends.
func (h *WizardHandler) Pay(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Pay(r.Context(), r.PathValue("id"))
	h.writeOutcome(w, sess, err)
}

func (h *WizardHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.GoBack(r.Context(), r.PathValue("id"))
	h.writeOutcome(w, sess, err)
}

func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Reset(r.Context(), r.PathValue("id"))
	h.writeOutcome(w, sess, err)
}

// GatewayCallback is the webhook the payment widget invokes on success. It
// relays the signed result into the bridge; verification stays with the
// backend.
func (h *WizardHandler) GatewayCallback(w http.ResponseWriter, r *http.Request) {
	var req callbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid json body"})
		return
	}

	if req.GatewayOrderID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "gatewayOrderId is required"})
		return
	}

	result := domain.GatewayResult{
		OrderID:   req.GatewayOrderID,
		PaymentID: req.GatewayPaymentID,
		Signature: req.GatewaySignature,
	}

	if err := h.bridge.Resolve(req.GatewayOrderID, result); err != nil {
		h.writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Widget returns the widget options of a checkout awaiting payment, so the
// client can render the payment widget while Pay blocks.
func (h *WizardHandler) Widget(w http.ResponseWriter, r *http.Request) {
	opts, ok := h.bridge.Pending(r.PathValue("orderId"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, map[string]any{"error": "no pending checkout for this order"})
		return
	}

	h.writeJSON(w, http.StatusOK, opts)
}

func (h *WizardHandler) writeOutcome(w http.ResponseWriter, sess domain.WizardSession, err error) {
	var valErr *domain.ValidationError
	if errors.As(err, &valErr) {
		h.writeSession(w, http.StatusUnprocessableEntity, sess)
		return
	}

	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeSession(w, http.StatusOK, sess)
}

func (h *WizardHandler) writeSession(w http.ResponseWriter, status int, sess domain.WizardSession) {
	resp := sessionResponse{
		SessionID: sess.ID,
		Step:      int(sess.Step),
		StepName:  sess.Step.String(),
		EventDate: sess.Selection.EventDate,
		Duration:  string(sess.Selection.Duration),
		Tier:      string(sess.Selection.Tier),
		Quantity:  sess.Selection.Quantity,
		Name:      sess.Contact.FullName,
		Email:     sess.Contact.Email,
		Phone:     sess.Contact.Phone,
		BookingID: sess.BookingID,
		Errors:    sess.LastValidationErrors,
	}

	if quote, err := pricing.Quote(sess.Selection.Duration, sess.Selection.Tier, sess.Selection.Quantity); err == nil {
		resp.Quote = &quotePayload{
			UnitPrice:           quote.UnitPrice,
			TotalAmount:         quote.TotalAmount,
			BulkDiscountApplied: quote.BulkDiscountApplied,
			Savings:             quote.Savings,
			OriginalUnitPrice:   quote.OriginalUnitPrice,
		}
		resp.TierLabel = pricing.Label(sess.Selection.Duration, sess.Selection.Tier)
	}

	if hint, ok := pricing.DiscountHint(sess.Selection.Duration, sess.Selection.Quantity); ok {
		resp.DiscountHint = hint
	}

	h.writeJSON(w, status, resp)
}

func (h *WizardHandler) writeError(w http.ResponseWriter, err error) {
	var (
		stateErr     *domain.StateError
		rejected     *domain.BackendRejectedError
		unavailable  *domain.BackendUnavailableError
		loadErr      *domain.GatewayLoadError
		notConfirmed *domain.PaymentNotConfirmedError
	)

	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]any{"error": "session not found"})
	case errors.As(err, &stateErr):
		h.writeJSON(w, http.StatusConflict, map[string]any{"error": stateErr.Msg})
	case errors.As(err, &notConfirmed):
		h.writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":           err.Error(),
			"paymentCaptured": true,
		})
	case errors.As(err, &rejected):
		h.writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": rejected.Message,
			"code":  rejected.Code,
		})
	case errors.As(err, &unavailable):
		h.writeJSON(w, http.StatusBadGateway, map[string]any{
			"error":     "booking backend unavailable, please retry",
			"retryable": true,
		})
	case errors.As(err, &loadErr):
		h.writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		h.writeJSON(w, http.StatusGatewayTimeout, map[string]any{"error": "request aborted before payment completed"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
	}
}

func (h *WizardHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
