// list_test.go
package slip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_ListIter_Proper_List(t *testing.T) {
	it := NewListIter(List(Int(1), Int(2), Int(3)))
	var got []Value
	for it.Next() {
		got = append(got, it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Value{Int(1), Int(2), Int(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
}

func Test_ListIter_Nil_Is_Empty(t *testing.T) {
	it := NewListIter(Nil)
	if it.Next() {
		t.Fatalf("nil yielded element %s", it.Value())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func Test_ListIter_Malformed_Tail(t *testing.T) {
	// (1 2 . 3): two elements, then the chain ends in a non-cell
	it := NewListIter(Cons(Int(1), Cons(Int(2), Int(3))))
	var got []Value
	for it.Next() {
		got = append(got, it.Value())
	}
	want := []Value{Int(1), Int(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("elements mismatch (-want +got):\n%s", diff)
	}
	err := it.Err()
	if err == nil {
		t.Fatal("want error for malformed tail")
	}
	if got, want := err.Error(), "Type error: Expected a cell or nil"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	// the iterator stays done and the error stays put
	if it.Next() {
		t.Fatal("iterator advanced past a malformed tail")
	}
	if it.Err() != err {
		t.Fatalf("error changed: %v then %v", err, it.Err())
	}
}

func Test_ListIter_Non_List_Value(t *testing.T) {
	it := NewListIter(Int(5))
	if it.Next() {
		t.Fatal("non-list yielded an element")
	}
	if it.Err() == nil {
		t.Fatal("want error for non-list value")
	}
}
