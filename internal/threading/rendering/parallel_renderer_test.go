package rendering

import "testing"

func TestCastColumnsFillsEverySlot(t *testing.T) {
	pr := NewParallelRenderer(3)
	defer pr.Stop()

	for _, n := range []int{0, 5, 8, 9, 512} {
		out := make([]int, n)
		pr.CastColumns(n, func(col int) { out[col] = col * col })
		for i, v := range out {
			if v != i*i {
				t.Fatalf("n=%d: slot %d = %d", n, i, v)
			}
		}
	}
}
