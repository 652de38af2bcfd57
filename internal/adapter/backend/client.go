package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/raasdandiya/checkout/internal/core/domain"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a thin JSON wrapper over the external booking backend. It maps
// transport failures to BackendUnavailableError and structured rejections to
// BackendRejectedError, carrying the backend's message verbatim.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
	}
}

type createBookingRequest struct {
	BookingDate string `json:"bookingDate"`
	NumTickets  int    `json:"numTickets"`
	PassType    string `json:"passType"`
	TicketType  string `json:"ticketType"`
}

type createBookingResponse struct {
	Success bool `json:"success"`
	Booking struct {
		ID string `json:"id"`
	} `json:"booking"`
}

type addContactRequest struct {
	BookingID string `json:"bookingId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type createPaymentRequest struct {
	BookingID string `json:"bookingId"`
	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
}

type createPaymentResponse struct {
	Order struct {
		ID       string `json:"id"`
		Amount   int    `json:"amount"`
		Currency string `json:"currency"`
	} `json:"order"`
	EmailSent bool `json:"emailSent"`
}

type confirmPaymentRequest struct {
	BookingID        string `json:"bookingId"`
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	GatewaySignature string `json:"gatewaySignature"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (c *Client) CreateBooking(ctx context.Context, sel domain.TicketSelection) (string, error) {
	req := createBookingRequest{
		BookingDate: sel.EventDate,
		NumTickets:  sel.Quantity,
		PassType:    passTypeValue(sel.Tier),
		TicketType:  ticketTypeValue(sel.Duration),
	}

	var resp createBookingResponse
	if err := c.post(ctx, "/api/bookings/create", req, &resp); err != nil {
		return "", err
	}

	if !resp.Success || resp.Booking.ID == "" {
		return "", &domain.BackendRejectedError{Op: "create booking", Message: "Failed to create booking"}
	}

	return resp.Booking.ID, nil
}

func (c *Client) AddContact(ctx context.Context, bookingID string, contact domain.ContactInfo) error {
	req := addContactRequest{
		BookingID: bookingID,
		Name:      contact.FullName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}

	var resp successResponse
	if err := c.post(ctx, "/api/bookings/add-users", req, &resp); err != nil {
		return err
	}

	if !resp.Success {
		return &domain.BackendRejectedError{Op: "add contact", Message: "Failed to add user details"}
	}

	return nil
}

func (c *Client) CreatePaymentOrder(ctx context.Context, bookingID string, contact domain.ContactInfo) (domain.PaymentOrder, bool, error) {
	req := createPaymentRequest{
		BookingID: bookingID,
		UserEmail: contact.Email,
		UserName:  contact.FullName,
	}

	var resp createPaymentResponse
	if err := c.post(ctx, "/api/bookings/create-payment", req, &resp); err != nil {
		return domain.PaymentOrder{}, false, err
	}

	order := domain.PaymentOrder{
		ID:       resp.Order.ID,
		Amount:   resp.Order.Amount,
		Currency: resp.Order.Currency,
	}

	if resp.EmailSent {
		return order, true, nil
	}

	if order.ID == "" {
		return domain.PaymentOrder{}, false, &domain.BackendRejectedError{Op: "create payment order", Message: "Failed to create payment order"}
	}

	return order, false, nil
}

func (c *Client) ConfirmPayment(ctx context.Context, bookingID string, result domain.GatewayResult) error {
	req := confirmPaymentRequest{
		BookingID:        bookingID,
		GatewayOrderID:   result.OrderID,
		GatewayPaymentID: result.PaymentID,
		GatewaySignature: result.Signature,
	}

	var resp successResponse
	if err := c.post(ctx, "/api/bookings/confirm-payment", req, &resp); err != nil {
		return err
	}

	if !resp.Success {
		return &domain.BackendRejectedError{Op: "confirm payment", Message: "Payment confirmed but failed at backend"}
	}

	return nil
}

// Health probes the backend. Used for startup logging only; the wizard never
// gates on it.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &domain.BackendUnavailableError{Op: "health check", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.BackendRejectedError{Op: "health check", Message: resp.Status}
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &domain.BackendUnavailableError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.rejection(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.BackendUnavailableError{Op: path, Err: fmt.Errorf("malformed response: %w", err)}
	}

	return nil
}

func (c *Client) rejection(path string, resp *http.Response) error {
	var payload errorResponse
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = resp.Status
	}

	return &domain.BackendRejectedError{Op: path, Code: payload.Code, Message: msg}
}

func passTypeValue(t domain.TierCode) string {
	return strings.ToLower(string(t))
}

func ticketTypeValue(d domain.DurationClass) string {
	if d == domain.SeasonPass {
		return "season"
	}

	return "single"
}
