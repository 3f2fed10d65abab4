package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/cart"
)

// State tracks where a checkout attempt is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// DefaultAckTTL is how long the success acknowledgment stays visible before
// the view falls back to browsing.
const DefaultAckTTL = 3 * time.Second

// GuestDetails is the identity block collected from the checkout form.
type GuestDetails struct {
	Name    string
	Phone   string
	Address string
}

type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the order-creation payload. TotalAmount is computed here
// from the cart at submit time and the service stores it as sent; see
// DESIGN.md on the price-trust gap.
type OrderRequest struct {
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	Items           []OrderLine `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
}

// OrderCreator is the order-service boundary the submitter talks to.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req OrderRequest) (orderRef string, err error)
}

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingGuestDetails = errors.New("name, phone and address are required")
	ErrSubmitInFlight      = errors.New("an order submission is already in flight")
	ErrOrderCreation       = errors.New("order creation failed")
)

// Submitter converts the cart into an order-creation request, one attempt per
// submit, never retrying on its own. At most one submission is in flight for
// a cart session: re-entrant submits are rejected while Submitting.
type Submitter struct {
	svc   OrderCreator
	cart  *cart.Store
	ack   cart.Notifier
	state State
}

func NewSubmitter(svc OrderCreator, store *cart.Store, ack cart.Notifier) *Submitter {
	return &Submitter{svc: svc, cart: store, ack: ack}
}

func (s *Submitter) State() State {
	return s.state
}

// Submit validates locally, sends the order, and on success clears both the
// cart and the guest form. On failure the cart and guest fields are left
// exactly as they were so the shopper can resubmit.
func (s *Submitter) Submit(ctx context.Context, guest *GuestDetails) (string, error) {
	if s.state == StateSubmitting {
		return "", ErrSubmitInFlight
	}
	if s.cart.IsEmpty() {
		return "", ErrEmptyCart
	}
	if guest.Name == "" || guest.Phone == "" || guest.Address == "" {
		return "", ErrMissingGuestDetails
	}

	lines := s.cart.Lines()
	req := OrderRequest{
		CustomerName:    guest.Name,
		CustomerPhone:   guest.Phone,
		ShippingAddress: guest.Address,
		Items:           make([]OrderLine, 0, len(lines)),
		TotalAmount:     s.cart.Total(),
	}
	for _, l := range lines {
		req.Items = append(req.Items, OrderLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	s.state = StateSubmitting
	ref, err := s.svc.CreateOrder(ctx, req)
	if err != nil {
		s.state = StateFailed
		return "", fmt.Errorf("%w: %v", ErrOrderCreation, err)
	}

	s.state = StateSuccess
	s.cart.Clear()
	*guest = GuestDetails{}
	if s.ack != nil {
		s.ack.Notify("Order placed successfully")
	}
	return ref, nil
}

// Reset returns the machine to Idle once the success acknowledgment has been
// dismissed. Resubmission is already allowed from Failed.
func (s *Submitter) Reset() {
	s.state = StateIdle
}
