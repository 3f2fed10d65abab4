package cart

// CanIncrement reports whether one more unit of the line's product may be
// added to the cart. A nil stock limit means the product has no purchase
// ceiling. Decrement and removal are never stock-checked.
func CanIncrement(l Line) bool {
	return l.StockLimit == nil || l.Quantity < *l.StockLimit
}
