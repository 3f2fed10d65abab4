package cart

import (
	"encoding/json"
	"log"
	"strconv"
)

// Product is the catalog view the cart needs when a shopper adds an item.
type Product struct {
	ID    string
	Title string
	Price float64
	// Stock is nil when the product has no purchase ceiling.
	Stock *int
}

// Line is one product's quantity entry within the cart. A line's quantity is
// never below 1 while the line exists; reaching zero removes the line.
type Line struct {
	ProductID  string  `json:"product_id"`
	Title      string  `json:"title"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	StockLimit *int    `json:"stock_limit,omitempty"`
}

// Confirmer asks the shopper a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(question string) bool
}

// Notifier surfaces a transient message to the shopper.
type Notifier interface {
	Notify(message string)
}

// Store holds the session's pending order lines, unique per product ID and in
// insertion order. Every mutation writes the full snapshot back to durable
// storage before returning. All mutations run inside a single UI event at a
// time, so the store is not safe for concurrent use and does not lock.
type Store struct {
	storage Storage
	lines   []Line
	pending string // product ID awaiting removal confirmation, "" if none
}

// NewStore loads the last snapshot from storage. A missing or corrupt
// snapshot starts an empty cart; loading never fails hard.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	data, err := storage.Load(SnapshotKey)
	if err != nil {
		log.Printf("cart: failed to load snapshot: %v", err)
		return s
	}
	if len(data) == 0 {
		return s
	}
	if err := json.Unmarshal(data, &s.lines); err != nil {
		log.Printf("cart: discarding corrupt snapshot: %v", err)
		s.lines = nil
	}
	return s
}

// Lines returns a copy of the cart in display order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

// Line returns the line for the product, if present.
func (s *Store) Line(productID string) (Line, bool) {
	if i := s.index(productID); i >= 0 {
		return s.lines[i], true
	}
	return Line{}, false
}

// Total is the sum of price times quantity over all lines.
func (s *Store) Total() float64 {
	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// AddOrIncrement bumps the product's line by one, appending a fresh line with
// quantity 1 when none exists. Stock enforcement is the caller's concern; use
// Add when the stock ceiling should be honored.
func (s *Store) AddOrIncrement(p Product) {
	if i := s.index(p.ID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, Line{
			ProductID:  p.ID,
			Title:      p.Title,
			Price:      p.Price,
			Quantity:   1,
			StockLimit: p.Stock,
		})
	}
	s.persist()
}

// Add is the stock-aware entry point: the line is bumped only when the stock
// ceiling allows it, otherwise a transient notice is posted and the cart is
// left unchanged.
func (s *Store) Add(p Product, n Notifier) bool {
	if i := s.index(p.ID); i >= 0 && !CanIncrement(s.lines[i]) {
		n.Notify("Only " + strconv.Itoa(*s.lines[i].StockLimit) + " in stock")
		return false
	}
	s.AddOrIncrement(p)
	return true
}

// Increment bumps an existing line by one. No stock check is applied here.
func (s *Store) Increment(productID string) bool {
	i := s.index(productID)
	if i < 0 {
		return false
	}
	s.lines[i].Quantity++
	s.persist()
	return true
}

// Decrement lowers the line by one. A line already at quantity 1 is never
// mutated directly: the shopper is asked to confirm removal, and declining
// leaves the line at 1. Returns whether the line was removed and whether the
// cart is now empty.
func (s *Store) Decrement(productID string, c Confirmer) (removed, emptied bool) {
	i := s.index(productID)
	if i < 0 {
		return false, false
	}
	if s.lines[i].Quantity > 1 {
		s.lines[i].Quantity--
		s.persist()
		return false, false
	}
	return s.confirmRemoval(productID, c)
}

// RequestRemoval is the explicit delete affordance: the shopper confirms
// before the line goes away.
func (s *Store) RequestRemoval(productID string, c Confirmer) (removed, emptied bool) {
	if s.index(productID) < 0 {
		return false, false
	}
	return s.confirmRemoval(productID, c)
}

func (s *Store) confirmRemoval(productID string, c Confirmer) (removed, emptied bool) {
	line, _ := s.Line(productID)
	s.pending = productID
	ok := c.Confirm("Remove " + line.Title + " from cart?")
	s.pending = ""
	if !ok {
		return false, false
	}
	return true, s.Remove(productID)
}

// PendingRemoval reports the product awaiting confirmation, "" if none.
// At most one removal is ever outstanding.
func (s *Store) PendingRemoval() string {
	return s.pending
}

// SetQuantityDelta applies a relative quantity change, clamped so the line
// never drops below 1 through this path. Only the removal path may take a
// line to zero.
func (s *Store) SetQuantityDelta(productID string, delta int) bool {
	i := s.index(productID)
	if i < 0 {
		return false
	}
	q := s.lines[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	s.lines[i].Quantity = q
	s.persist()
	return true
}

// Remove deletes the line unconditionally. The returned flag tells the
// presentation layer to fall back to the browsing view once the cart empties.
func (s *Store) Remove(productID string) (emptied bool) {
	i := s.index(productID)
	if i < 0 {
		return len(s.lines) == 0
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persist()
	return len(s.lines) == 0
}

// Clear drops every line, e.g. after a successful checkout.
func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

func (s *Store) index(productID string) int {
	for i, l := range s.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) persist() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("cart: failed to encode snapshot: %v", err)
		return
	}
	if err := s.storage.Save(SnapshotKey, data); err != nil {
		log.Printf("cart: failed to save snapshot: %v", err)
	}
}
