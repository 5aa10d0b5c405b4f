package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/alloc"
	"github.com/joshuapare/veckit/internal/testutil"
	"github.com/joshuapare/veckit/pkg/types"
)

func newArray[T any](t *testing.T, capacity int, c *testutil.Counter[T]) Array[T] {
	t.Helper()
	var dtor func(*T)
	if c != nil {
		dtor = c.Slot
	}
	return New(capacity, dtor, types.Options[T]{})
}

func live[T any](a *Array[T]) []T {
	return append([]T(nil), a.Live()...)
}

func TestArray_NewAllocatesCapacity(t *testing.T) {
	a := newArray[int](t, 3, nil)
	assert.Equal(t, 3, a.Cap())
	assert.Zero(t, a.Len())
	assert.False(t, a.HasDestructor())
	require.Len(t, a.slots, 3)

	empty := newArray[int](t, 0, nil)
	assert.Nil(t, empty.slots, "zero capacity has no storage")
}

func TestArray_PushGrowthSequence(t *testing.T) {
	a := newArray[int](t, 0, nil)
	var caps []int
	for i := range 9 {
		a.Push(i)
		caps = append(caps, a.Cap())
	}
	assert.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
	assert.Equal(t, 9, a.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, live(&a))
}

func TestArray_PushFromNonZeroCapacity(t *testing.T) {
	a := newArray[int](t, 3, nil)
	for i := range 3 {
		a.Push(i)
	}
	assert.Equal(t, 3, a.Cap(), "no growth while it fits")
	a.Push(3)
	assert.Equal(t, 6, a.Cap())
}

func TestArray_SetDestroysPrevious(t *testing.T) {
	var c testutil.Counter[int]
	a := newArray(t, 5, &c)
	a.Push(1)
	a.Push(2)

	a.Set(1, 3)
	assert.Equal(t, []int{2}, c.Seen)
	a.Set(1, 4)
	a.Set(0, 4)
	assert.Equal(t, []int{2, 3, 1}, c.Seen)
	assert.Equal(t, []int{4, 4}, live(&a))
}

func TestArray_PopBack(t *testing.T) {
	var c testutil.Counter[int]
	a := newArray(t, 5, &c)
	assert.False(t, a.Pop(), "empty pop reports nothing removed")
	assert.Zero(t, c.Calls)

	a.Push(1)
	a.Push(2)
	require.True(t, a.Pop())
	assert.Equal(t, []int{2}, c.Seen)
	require.True(t, a.Pop())
	assert.False(t, a.Pop())
	assert.Equal(t, []int{2, 1}, c.Seen)
	assert.Equal(t, 5, a.Cap(), "pop never changes capacity")
}

func TestArray_PopZeroesVacatedSlot(t *testing.T) {
	a := newArray[*int](t, 2, nil)
	x := 1
	a.Push(&x)
	a.Pop()
	assert.Nil(t, a.slots[0])
}

func TestArray_Insert(t *testing.T) {
	tests := []struct {
		name    string
		cap     int
		start   []int
		index   int
		value   int
		want    []int
		wantCap int
	}{
		{"middle", 5, []int{1, 2, 4}, 2, 3, []int{1, 2, 3, 4}, 5},
		{"front", 5, []int{2, 3}, 0, 1, []int{1, 2, 3}, 5},
		{"end", 5, []int{1, 2}, 2, 3, []int{1, 2, 3}, 5},
		{"grow on full", 2, []int{1, 3}, 1, 2, []int{1, 2, 3}, 4},
		{"into empty zero capacity", 0, nil, 0, 7, []int{7}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArray[int](t, tt.cap, nil)
			for _, v := range tt.start {
				a.Push(v)
			}
			a.Insert(tt.index, tt.value)
			assert.Equal(t, tt.want, live(&a))
			assert.Equal(t, tt.wantCap, a.Cap())
		})
	}
}

func TestArray_InsertFrontTwice(t *testing.T) {
	a := newArray[string](t, 1, nil)
	a.Insert(0, "A")
	a.Insert(0, "B")
	assert.Equal(t, []string{"B", "A"}, live(&a))
	assert.Equal(t, 2, a.Cap())
}

func TestArray_InsertAtLenMatchesPush(t *testing.T) {
	for _, start := range []int{0, 1, 3} {
		pushed := newArray[int](t, start, nil)
		inserted := newArray[int](t, start, nil)
		for i := range 11 {
			pushed.Push(i)
			inserted.Insert(inserted.Len(), i)
			require.Equal(t, pushed.Cap(), inserted.Cap())
		}
		assert.Equal(t, live(&pushed), live(&inserted))
	}
}

func TestArray_Erase(t *testing.T) {
	var c testutil.Counter[string]
	a := newArray(t, 3, &c)
	a.Push("A")
	a.Push("B")
	a.Push("C")

	a.Erase(0)
	assert.Equal(t, []string{"B", "C"}, live(&a))
	assert.Equal(t, 3, a.Cap())
	assert.Equal(t, []string{"A"}, c.Seen)
	assert.Empty(t, a.slots[2], "vacated tail slot is zeroed")

	a.Erase(1)
	assert.Equal(t, []string{"B"}, live(&a))
	assert.Equal(t, []string{"A", "C"}, c.Seen)
}

func TestArray_Resize(t *testing.T) {
	var c testutil.Counter[int]
	a := newArray(t, 3, &c)
	a.Push(1)
	a.Push(2)

	a.Resize(2)
	assert.Equal(t, 3, a.Cap(), "n == len is a no-op")
	a.Resize(0)
	a.Resize(-4)
	assert.Equal(t, 3, a.Cap(), "n < len is a no-op")

	a.Resize(6)
	assert.Equal(t, 6, a.Cap())
	assert.Equal(t, []int{1, 2}, live(&a))

	a.Resize(4)
	assert.Equal(t, 4, a.Cap(), "len < n < cap reallocates to n")
	assert.Equal(t, []int{1, 2}, live(&a))
	assert.Zero(t, c.Calls, "resize never destructs")
}

func TestArray_ClearIsIdempotent(t *testing.T) {
	var c testutil.Counter[int]
	a := newArray(t, 4, &c)
	for i := range 3 {
		a.Push(i + 1)
	}
	a.Clear()
	assert.Equal(t, []int{1, 2, 3}, c.Seen, "clear destroys in index order")
	assert.Zero(t, a.Len())
	assert.Equal(t, 4, a.Cap())

	a.Clear()
	assert.Equal(t, 3, c.Calls, "second clear destroys nothing")
}

func TestArray_DestroyResets(t *testing.T) {
	var c testutil.Counter[int]
	heap := alloc.NewHeap[int]()
	a := New(2, c.Slot, types.Options[int]{Allocator: heap})
	a.Push(1)
	a.Push(2)
	a.Push(3)

	a.Destroy()
	assert.Equal(t, []int{1, 2, 3}, c.Seen)
	assert.Zero(t, a.Len())
	assert.Zero(t, a.Cap())
	assert.Nil(t, a.slots)
	assert.False(t, a.HasDestructor())
	assert.Zero(t, heap.Stats().LiveSlots, "storage returned to the allocator")

	a.Destroy()
	assert.Equal(t, 3, c.Calls)
}

func TestArray_ZeroValueUsable(t *testing.T) {
	var a Array[int]
	assert.False(t, a.Pop())
	a.Push(5)
	assert.Equal(t, 1, a.Cap())
	assert.Equal(t, 5, *a.Slot("get", 0))
	a.Destroy()
}

func TestArray_DestructorCountMatchesRemovals(t *testing.T) {
	var c testutil.Counter[int]
	a := newArray(t, 0, &c)
	removed := 0
	for i := range 20 {
		a.Push(i)
	}
	a.Set(3, 100)
	removed++
	a.Erase(0)
	removed++
	a.Insert(5, 42)
	for range 4 {
		a.Pop()
		removed++
	}
	a.Resize(64)
	remaining := a.Len()
	a.Clear()
	removed += remaining
	a.Clear()
	a.Destroy()
	assert.Equal(t, removed, c.Calls)
}

func TestArray_Violations(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(a *Array[int])
		kind  types.ErrKind
		op    string
		index int
		bound int
	}{
		{"get past len", func(a *Array[int]) { a.Slot("get", 5) }, types.ErrKindIndex, "get", 5, 1},
		{"get negative", func(a *Array[int]) { a.Slot("get", -1) }, types.ErrKindIndex, "get", -1, 1},
		{"set at len", func(a *Array[int]) { a.Set(1, 9) }, types.ErrKindIndex, "set", 1, 1},
		{"erase at len", func(a *Array[int]) { a.Erase(1) }, types.ErrKindIndex, "erase", 1, 1},
		{"insert past len", func(a *Array[int]) { a.Insert(2, 9) }, types.ErrKindInsertIndex, "insert", 2, 1},
		{"insert negative", func(a *Array[int]) { a.Insert(-1, 9) }, types.ErrKindInsertIndex, "insert", -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c testutil.Counter[int]
			a := newArray(t, 3, &c)
			a.Push(1)

			verr := testutil.RecoverViolation(t, func() { tt.fn(&a) })
			require.NotNil(t, verr)
			assert.Equal(t, tt.kind, verr.Kind)
			assert.Equal(t, tt.op, verr.Op)
			assert.Equal(t, tt.index, verr.Index)
			assert.Equal(t, tt.bound, verr.Bound)

			assert.Equal(t, []int{1}, live(&a), "violation leaves contents untouched")
			assert.Equal(t, 3, a.Cap())
			assert.Zero(t, c.Calls)
		})
	}
}

func TestArray_ViolationCarriesName(t *testing.T) {
	a := New(2, nil, types.Options[int]{Name: "numbers"})
	a.Push(1)

	verr := testutil.RecoverViolation(t, func() { a.Slot("get", 4) })
	require.NotNil(t, verr)
	assert.Equal(t, "numbers", verr.Name)
	assert.Equal(t, "numbers: get: index 4 out of range [0, 1)", verr.Error())

	b := alloc.NewBudget[int](alloc.NewHeap[int](), 2)
	bounded := New(2, nil, types.Options[int]{Allocator: b, Name: "bounded"})
	bounded.Push(1)
	bounded.Push(2)
	verr = testutil.RecoverViolation(t, func() { bounded.Push(3) })
	require.NotNil(t, verr)
	assert.Equal(t, "bounded", verr.Name)
	assert.ErrorIs(t, verr, types.ErrAlloc)
}

func TestArray_AllocationFailureIsFatal(t *testing.T) {
	t.Run("resize too large", func(t *testing.T) {
		a := newArray[uint64](t, 1, nil)
		verr := testutil.RecoverViolation(t, func() { a.Resize(int(^uint(0) >> 1)) })
		require.NotNil(t, verr)
		assert.Equal(t, types.ErrKindAlloc, verr.Kind)
		assert.Equal(t, "resize", verr.Op)
		assert.ErrorIs(t, verr, alloc.ErrTooLarge)
		assert.Equal(t, 1, a.Cap())
	})

	t.Run("push over budget", func(t *testing.T) {
		b := alloc.NewBudget[int](alloc.NewHeap[int](), 2)
		a := New(2, nil, types.Options[int]{Allocator: b})
		a.Push(1)
		a.Push(2)
		verr := testutil.RecoverViolation(t, func() { a.Push(3) })
		require.NotNil(t, verr)
		assert.Equal(t, types.ErrKindAlloc, verr.Kind)
		assert.Equal(t, "push", verr.Op)
		assert.Equal(t, 4, verr.Index)
		assert.Equal(t, 2, verr.Bound)
		assert.Empty(t, verr.Name)
		assert.ErrorIs(t, verr, alloc.ErrBudget)
		assert.Equal(t, []int{1, 2}, live(&a))
	})

	t.Run("new over budget", func(t *testing.T) {
		b := alloc.NewBudget[int](alloc.NewHeap[int](), 2)
		verr := testutil.RecoverViolation(t, func() {
			New(3, nil, types.Options[int]{Allocator: b})
		})
		require.NotNil(t, verr)
		assert.Equal(t, "new", verr.Op)
		assert.ErrorIs(t, verr, types.ErrAlloc)
	})
}

func TestArray_LogsGrowth(t *testing.T) {
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := New(0, nil, types.Options[int]{Logger: log, Name: "numbers"})
	a.Push(1)
	a.Push(2)
	a.Destroy()

	text := out.String()
	assert.Contains(t, text, "msg=grow name=numbers op=push from=0 to=1")
	assert.Contains(t, text, "msg=grow name=numbers op=push from=1 to=2")
	assert.Contains(t, text, "msg=destroy name=numbers destructed=2")
}

func TestArray_LiveIsClipped(t *testing.T) {
	a := newArray[int](t, 4, nil)
	a.Push(1)
	view := a.Live()
	assert.Equal(t, 1, cap(view))
	_ = append(view, 99)
	assert.Zero(t, a.slots[1], "appending to the view must not write spare slots")
}
