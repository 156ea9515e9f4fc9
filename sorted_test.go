package chains

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSortedListStaysSortedAfterEveryPush(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := NewSortedList[int]()
	for _, v := range []int{5, 1, 3, 2, 4} {
		l.Push(v)
		prev := -1
		for x := range l.Values() {
			if x < prev {
				t.Fatalf("list out of order after pushing %d: %v", v, l.Slice())
			}
			prev = x
		}
	}
	if got := l.Slice(); len(got) != 5 || got[0] != 1 || got[4] != 5 {
		t.Errorf("expected [1 2 3 4 5], got %v", got)
	}
}

func TestSortedListOf(t *testing.T) {
	l := SortedListOf(2, 1, 5, 4, 3)
	got := l.Slice()
	for i, want := range []int{1, 2, 3, 4, 5} {
		if got[i] != want {
			t.Errorf("expected %v at %d, got %v", want, i, got)
		}
	}
}

func TestSortedListFind(t *testing.T) {
	l := SortedListOf(10, 20, 30, 40)
	if i := l.Find(30); i != 2 {
		t.Errorf("expected index 2, got %d", i)
	}
	if i := l.Find(5); i != -1 {
		t.Errorf("expected -1 for value below minimum, got %d", i)
	}
	if i := l.Find(25); i != -1 {
		t.Errorf("expected -1 for absent middle value, got %d", i)
	}
	if i := l.Find(99); i != -1 {
		t.Errorf("expected -1 for value above maximum, got %d", i)
	}
}

func TestSortedListFuncOrdering(t *testing.T) {
	// descending order via a custom comparison
	l := NewSortedListFunc(func(a, b int) bool { return a > b })
	for _, v := range []int{1, 3, 2} {
		l.Push(v)
	}
	if got := l.Slice(); got[0] != 3 || got[2] != 1 {
		t.Errorf("expected [3 2 1], got %v", got)
	}
	if i := l.Find(2); i != 1 {
		t.Errorf("Find must follow the list's own order, got %d", i)
	}
}

func TestSortedListTiesKeepInsertionOrder(t *testing.T) {
	type task struct {
		prio int
		name string
	}
	l := NewSortedListFunc(func(a, b task) bool { return a.prio < b.prio })
	l.Push(task{1, "first"})
	l.Push(task{2, "second"})
	l.Push(task{1, "third"})
	got := l.Slice()
	if got[0].name != "first" || got[1].name != "third" || got[2].name != "second" {
		t.Errorf("equal priorities must keep insertion order, got %v", got)
	}
}

func TestSortedListRemove(t *testing.T) {
	l := SortedListOf(3, 1, 2)
	v, err := l.RemoveAt(1)
	if err != nil {
		t.Fatal(err.Error())
	}
	if v != 2 {
		t.Errorf("expected removed value 2, got %d", v)
	}
	if v, ok := l.PopFront(); !ok || v != 1 {
		t.Errorf("expected smallest element 1, got %d", v)
	}
	if v, ok := l.Pop(); !ok || v != 3 {
		t.Errorf("expected largest element 3, got %d", v)
	}
	if !l.IsEmpty() {
		t.Errorf("list should be empty, len=%d", l.Len())
	}
}
