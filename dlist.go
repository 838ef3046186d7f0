// Package dlist implements a doubly linked list whose lifecycle is driven
// by caller-supplied callbacks: a mandatory deallocator that releases
// elements when the list is destroyed, and an optional three-way
// comparator that enables ordered insertion.
package dlist

import "errors"

var (
	ErrNilDeallocator = errors.New("dlist: nil deallocator")
	ErrNilList        = errors.New("dlist: add on nil list")
	ErrNoComparator   = errors.New("dlist: ordered insert without comparator")
	ErrInvalidOrder   = errors.New("dlist: invalid order")
)

// List is a doubly linked list of E. Create lists with New; the zero value
// has no deallocator and must not be used. A List is not safe for
// concurrent use without external synchronization.
type List[E any] struct {
	head, tail *node[E]
	cmp        func(a, b E) int
	free       func(E)
	len        int
}

// New returns an empty list. free is invoked once per element when the
// list is destroyed and must not be nil. cmp returns less than, equal to,
// or greater than zero if the first argument is considered to be less
// than, equal to, or greater than the second; it may be nil, which
// disables InOrder insertion.
func New[E any](free func(E), cmp func(a, b E) int) (*List[E], error) {
	if free == nil {
		return nil, ErrNilDeallocator
	}
	return &List[E]{free: free, cmp: cmp}, nil
}

// Destroy hands every element to the deallocator, head to tail, and
// unlinks all nodes. Destroying a nil list is a no-op. The list must not
// be used again after Destroy.
func (l *List[E]) Destroy() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		l.free(n.element)
		n.unlink()
		n = next
	}
	l.head = nil
	l.tail = nil
	l.cmp = nil
	l.free = nil
	l.len = 0
}

// IsEmpty reports whether the list holds no elements. A nil list is empty.
func (l *List[E]) IsEmpty() bool {
	return l == nil || l.head == nil
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// Add inserts element at the position selected by order. The first element
// of an empty list becomes both head and tail whatever the order requested.
// InOrder requires a comparator and keeps equal elements in insertion
// order. On failure the list is left unchanged; the caller keeps ownership
// of the element either way.
func (l *List[E]) Add(element E, order Order) error {
	if l == nil {
		return ErrNilList
	}

	n := &node[E]{element: element}

	if l.head == nil {
		l.head = n
		l.tail = n
		l.len++
		return nil
	}

	switch order {
	case Head:
		l.insertAtHead(n)
	case Tail:
		l.insertAtTail(n)
	case InOrder:
		if l.cmp == nil {
			return ErrNoComparator
		}
		l.insertInOrder(n)
	default:
		return ErrInvalidOrder
	}

	l.len++
	return nil
}

// Remove detaches the element at the selected end and returns it;
// ownership of the element reverts to the caller, the deallocator is not
// involved. It reports false, without mutating the list, when the list is
// nil or empty or when order is not Head or Tail.
func (l *List[E]) Remove(order Order) (E, bool) {
	var zero E

	if l == nil || l.head == nil {
		return zero, false
	}
	if order != Head && order != Tail {
		return zero, false
	}

	var n *node[E]
	switch {
	case l.head.next == nil:
		// Last remaining node, head and tail coincide.
		n = l.head
		l.head = nil
		l.tail = nil
	case order == Head:
		n = l.head
		l.head = n.next
		l.head.prev = nil
	default:
		n = l.tail
		l.tail = n.prev
		l.tail.next = nil
	}

	element := n.element
	n.element = zero
	n.unlink()
	l.len--

	return element, true
}

func (l *List[E]) insertAtHead(n *node[E]) {
	n.next = l.head
	l.head.prev = n
	l.head = n
}

func (l *List[E]) insertAtTail(n *node[E]) {
	n.prev = l.tail
	l.tail.next = n
	l.tail = n
}

// insertInOrder splices n in before the first node whose element compares
// strictly greater, so equal elements stay in arrival order. Falls back to
// a tail insert when no such node exists.
func (l *List[E]) insertInOrder(n *node[E]) {
	at := l.head
	for at != nil && l.cmp(n.element, at.element) >= 0 {
		at = at.next
	}

	switch at {
	case l.head:
		l.insertAtHead(n)
	case nil:
		l.insertAtTail(n)
	default:
		n.next = at
		n.prev = at.prev
		at.prev.next = n
		at.prev = n
	}
}
