package chains

import (
	"errors"
	"testing"

	"github.com/npillmayer/chains/chain"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListPushAndPop(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := NewList[int]()
	l.Push(1)
	l.Push(2)
	l.Push(3)
	if got := l.Slice(); len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got)
	}
	if v, ok := l.PopFront(); !ok || v != 1 {
		t.Errorf("expected PopFront to yield 1, got %d", v)
	}
	if v, ok := l.Pop(); !ok || v != 3 {
		t.Errorf("expected Pop to yield 3, got %d", v)
	}
	if got := l.Slice(); len(got) != 1 || got[0] != 2 {
		t.Errorf("expected remainder [2], got %v", got)
	}
}

func TestListOf(t *testing.T) {
	l := ListOf("a", "b", "c")
	if l.Len() != 3 {
		t.Errorf("expected length 3, is %d", l.Len())
	}
	if first, _ := l.First(); first != "a" {
		t.Errorf("expected first 'a', is %q", first)
	}
	if last, _ := l.Last(); last != "c" {
		t.Errorf("expected last 'c', is %q", last)
	}
}

func TestListInsertRemove(t *testing.T) {
	l := ListOf(0, 1, 2)
	if err := l.InsertAt(1, 99); err != nil {
		t.Fatal(err.Error())
	}
	if got := l.Slice(); got[1] != 99 || len(got) != 4 {
		t.Errorf("expected [0 99 1 2], got %v", got)
	}
	v, err := l.RemoveAt(1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if v != 99 {
		t.Errorf("expected removed value 99, got %d", v)
	}
	if got := l.Slice(); len(got) != 3 || got[1] != 1 {
		t.Errorf("expected [0 1 2], got %v", got)
	}
}

func TestListBounds(t *testing.T) {
	l := ListOf(1, 2, 3)
	_, err := l.At(5)
	if !errors.Is(err, chain.ErrIndexOutOfBounds) {
		t.Errorf("expected index error, got %v", err)
	}
	var be chain.BoundsError
	if !errors.As(err, &be) || be.Index != 5 || be.Len != 3 {
		t.Errorf("expected BoundsError{5,3}, got %v", err)
	}
}

func TestListSort(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := ListOf(5, 4, 3, 2, 1)
	Sort(l)
	if got := l.Slice(); got[0] != 1 || got[4] != 5 {
		t.Errorf("expected [1 2 3 4 5], got %v", got)
	}
	empty := NewList[int]()
	Sort(empty)
	if !empty.IsEmpty() {
		t.Errorf("sorting the empty list should be a no-op")
	}
	single := ListOf(42)
	Sort(single)
	if got := single.Slice(); len(got) != 1 || got[0] != 42 {
		t.Errorf("expected [42], got %v", got)
	}
}

func TestListIndex(t *testing.T) {
	l := ListOf("x", "y", "z")
	if i := Index(l, "y"); i != 1 {
		t.Errorf("expected index 1, got %d", i)
	}
	if i := Index(l, "q"); i != -1 {
		t.Errorf("expected -1, got %d", i)
	}
	if i := l.IndexFunc(func(s string) bool { return s > "y" }); i != 2 {
		t.Errorf("expected index 2, got %d", i)
	}
}

func TestListIterationFlavors(t *testing.T) {
	l := ListOf(1, 2, 3)
	sum := 0
	for v := range l.Values() {
		sum += v
	}
	if sum != 6 {
		t.Errorf("expected sum 6, got %d", sum)
	}
	for ref := range l.Refs() {
		*ref++
	}
	if got := l.Slice(); got[0] != 2 || got[2] != 4 {
		t.Errorf("expected [2 3 4], got %v", got)
	}
	var drained []int
	for v := range l.Drain() {
		drained = append(drained, v)
	}
	if len(drained) != 3 || !l.IsEmpty() {
		t.Errorf("expected fully drained list, got %v, len=%d", drained, l.Len())
	}
}

func TestListRefAt(t *testing.T) {
	l := ListOf(7, 8)
	ref, err := l.RefAt(0)
	if err != nil {
		t.Fatal(err.Error())
	}
	*ref = 70
	if v, _ := l.At(0); v != 70 {
		t.Errorf("expected in-place update to 70, got %d", v)
	}
	if err := l.SetAt(1, 80); err != nil {
		t.Fatal(err.Error())
	}
	if v, _ := l.At(1); v != 80 {
		t.Errorf("expected 80, got %d", v)
	}
}
