package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JeevanevasRK/Fashion-By-Nira-sub000/cart"
)

type memStorage struct {
	data map[string][]byte
}

func (m *memStorage) Load(key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memStorage) Save(key string, data []byte) error {
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

type fakeCreator struct {
	ref      string
	err      error
	calls    int
	lastReq  OrderRequest
	onCreate func()
}

func (f *fakeCreator) CreateOrder(ctx context.Context, req OrderRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.onCreate != nil {
		f.onCreate()
	}
	return f.ref, f.err
}

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.messages = append(n.messages, message)
}

func filledCart(t *testing.T) *cart.Store {
	t.Helper()
	s := cart.NewStore(&memStorage{})
	s.AddOrIncrement(cart.Product{ID: "p1", Title: "Silk Saree", Price: 500})
	s.AddOrIncrement(cart.Product{ID: "p1", Title: "Silk Saree", Price: 500})
	s.AddOrIncrement(cart.Product{ID: "p2", Title: "Cotton Kurti", Price: 300})
	return s
}

func guest() GuestDetails {
	return GuestDetails{Name: "Asha", Phone: "9876543210", Address: "12 Beach Rd, Chennai"}
}

func TestSubmitEmptyCartRejectedLocally(t *testing.T) {
	creator := &fakeCreator{ref: "ref-1"}
	s := NewSubmitter(creator, cart.NewStore(&memStorage{}), nil)
	g := guest()

	_, err := s.Submit(context.Background(), &g)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, creator.calls, "empty cart must never issue a network call")
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmitMissingGuestFields(t *testing.T) {
	tests := []struct {
		name  string
		guest GuestDetails
	}{
		{"no name", GuestDetails{Phone: "9876543210", Address: "addr"}},
		{"no phone", GuestDetails{Name: "Asha", Address: "addr"}},
		{"no address", GuestDetails{Name: "Asha", Phone: "9876543210"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &fakeCreator{}
			s := NewSubmitter(creator, filledCart(t), nil)
			g := tt.guest

			_, err := s.Submit(context.Background(), &g)

			assert.ErrorIs(t, err, ErrMissingGuestDetails)
			assert.Zero(t, creator.calls)
		})
	}
}

func TestSubmitPayload(t *testing.T) {
	creator := &fakeCreator{ref: "ref-1"}
	s := NewSubmitter(creator, filledCart(t), nil)
	g := guest()

	ref, err := s.Submit(context.Background(), &g)

	require.NoError(t, err)
	assert.Equal(t, "ref-1", ref)
	assert.InDelta(t, 1300, creator.lastReq.TotalAmount, 0.001)
	require.Len(t, creator.lastReq.Items, 2)
	assert.Equal(t, OrderLine{ProductID: "p1", Quantity: 2}, creator.lastReq.Items[0])
	assert.Equal(t, OrderLine{ProductID: "p2", Quantity: 1}, creator.lastReq.Items[1])
	assert.Equal(t, "Asha", creator.lastReq.CustomerName)
	assert.Equal(t, "9876543210", creator.lastReq.CustomerPhone)
}

func TestSubmitSuccessClearsCartAndGuest(t *testing.T) {
	creator := &fakeCreator{ref: "ref-1"}
	store := filledCart(t)
	ack := &recordingNotifier{}
	s := NewSubmitter(creator, store, ack)
	g := guest()

	_, err := s.Submit(context.Background(), &g)

	require.NoError(t, err)
	assert.Equal(t, StateSuccess, s.State())
	assert.True(t, store.IsEmpty())
	assert.Equal(t, GuestDetails{}, g, "guest fields reset to empty strings")
	assert.Equal(t, []string{"Order placed successfully"}, ack.messages)

	s.Reset()
	assert.Equal(t, StateIdle, s.State())
}

func TestSubmitFailurePreservesEverything(t *testing.T) {
	creator := &fakeCreator{err: errors.New("boom")}
	store := filledCart(t)
	before := store.Lines()
	s := NewSubmitter(creator, store, nil)
	g := guest()

	_, err := s.Submit(context.Background(), &g)

	assert.ErrorIs(t, err, ErrOrderCreation)
	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, before, store.Lines(), "cart must be untouched on failure")
	assert.Equal(t, guest(), g, "guest fields must be untouched on failure")

	// Resubmission is allowed from Failed; no automatic retry happened.
	assert.Equal(t, 1, creator.calls)
	creator.err = nil
	creator.ref = "ref-2"
	ref, err := s.Submit(context.Background(), &g)
	require.NoError(t, err)
	assert.Equal(t, "ref-2", ref)
}

func TestReentrantSubmitRejected(t *testing.T) {
	store := filledCart(t)
	creator := &fakeCreator{ref: "ref-1"}
	s := NewSubmitter(creator, store, nil)
	g := guest()

	var nested error
	creator.onCreate = func() {
		g2 := guest()
		_, nested = s.Submit(context.Background(), &g2)
	}

	_, err := s.Submit(context.Background(), &g)

	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrSubmitInFlight)
	assert.Equal(t, 1, creator.calls, "the nested submit must not reach the service")
}
