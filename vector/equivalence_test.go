package vector_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/veckit/internal/testutil"
	"github.com/joshuapare/veckit/vec"
	"github.com/joshuapare/veckit/vector"
)

// Both containers run the same algorithm, so any sequence of valid operations
// must leave them with the same contents, capacity and destructor history.
func TestEquivalence_RandomOperations(t *testing.T) {
	seeds := []uint64{1, 2, 3, 42, 1337}
	steps := 2000
	if testing.Short() {
		steps = 200
	}

	for _, seed := range seeds {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		initial := rng.IntN(4)

		var hc, ic testutil.Counter[int]
		h := vec.New[int](initial, hc.Value)
		in := vector.New[int](initial, ic.Slot)

		for step := range steps {
			n := h.Len()
			x := rng.IntN(1000)
			switch op := rng.IntN(8); {
			case op == 0 || op == 1:
				h.PushBack(x)
				in.Push(x)
			case op == 2:
				require.Equal(t, h.PopBack(), in.Pop(), "seed %d step %d pop", seed, step)
			case op == 3:
				i := rng.IntN(n + 1)
				h.Insert(i, x)
				in.Insert(i, x)
			case op == 4 && n > 0:
				i := rng.IntN(n)
				h.Erase(i)
				in.Erase(i)
			case op == 5 && n > 0:
				i := rng.IntN(n)
				h.Set(i, x)
				in.Set(i, x)
			case op == 6:
				size := rng.IntN(2*n + 2)
				h.Resize(size)
				in.Resize(size)
			case op == 7 && rng.IntN(20) == 0:
				h.Clear()
				in.Clear()
			}

			require.Equal(t, h.Len(), in.Len(), "seed %d step %d len", seed, step)
			require.Equal(t, h.Capacity(), in.Capacity(), "seed %d step %d cap", seed, step)
			require.Equal(t, hc.Seen, ic.Seen, "seed %d step %d destructed", seed, step)
		}

		for i, got := range in.Slice() {
			require.Equal(t, h.Get(i), got, "seed %d index %d", seed, i)
		}

		h.Destroy()
		in.Free()
		require.Equal(t, hc.Seen, ic.Seen, "seed %d final destructed", seed)
	}
}
