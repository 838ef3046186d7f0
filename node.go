package dlist

// Order selects which end of the list an operation works on.
type Order int

const (
	// Head adds or removes at the head of the list.
	Head Order = iota
	// Tail adds or removes at the tail of the list.
	Tail
	// InOrder inserts by comparator order (inserts only).
	InOrder
)

type node[E any] struct {
	prev    *node[E]
	next    *node[E]
	element E
}

func (n *node[E]) unlink() {
	n.prev = nil
	n.next = nil
}
