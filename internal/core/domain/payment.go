package domain

// PaymentOrder is the gateway order created by the backend. Amount is in the
// gateway's minor units; the wizard never computes it locally.
type PaymentOrder struct {
	ID       string
	Amount   int
	Currency string
}

// GatewayResult is the signed payment result delivered by the gateway's
// success callback. The wizard relays it to the backend unverified;
// signature verification is exclusively a backend responsibility.
type GatewayResult struct {
	OrderID   string
	PaymentID string
	Signature string
}
