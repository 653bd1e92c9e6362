// list.go: lazy iteration over cons chains.
package slip

// ListIter walks a Pair chain one element at a time:
//
//	it := NewListIter(v)
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil { ... }
//
// A Pair yields its Car and advances to the Cdr. Nil ends the iteration
// cleanly. Any other tail produces exactly one TypeError through Err and the
// iteration ends; the iterator never tries to continue past a malformed
// tail. Iterators are single-use and not restartable.
type ListIter struct {
	cur  Value
	val  Value
	err  error
	done bool
}

// NewListIter returns an iterator over the chain starting at v.
func NewListIter(v Value) *ListIter {
	return &ListIter{cur: v}
}

// Next advances to the next element, reporting whether one is available.
func (it *ListIter) Next() bool {
	if it.done {
		return false
	}
	switch it.cur.Kind {
	case KindPair:
		p := it.cur.Pair()
		it.val = p.Car
		it.cur = p.Cdr
		return true
	case KindNil:
		it.done = true
		return false
	default:
		it.err = &TypeError{Message: "Expected a cell or nil"}
		it.done = true
		return false
	}
}

// Value returns the element produced by the last successful Next.
func (it *ListIter) Value() Value { return it.val }

// Err returns the malformed-tail error, if the chain had one.
func (it *ListIter) Err() error { return it.err }
