package embedder

import (
	"math"
	"testing"
)

func TestMeanPoolSingleSequence(t *testing.T) {
	// batch=1, seq=3, dim=2; third position is padding.
	hidden := []float32{
		1, 2,
		3, 4,
		100, 100,
	}
	mask := []int64{1, 1, 0}

	out := meanPool(hidden, mask, 1, 3, 2)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if out[0] != 2 || out[1] != 3 {
		t.Errorf("out = %v, want [2 3]", out)
	}
}

func TestMeanPoolBatch(t *testing.T) {
	// batch=2, seq=2, dim=1.
	hidden := []float32{
		2, 4,
		6, 999,
	}
	mask := []int64{1, 1, 1, 0}

	out := meanPool(hidden, mask, 2, 2, 1)

	if out[0] != 3 {
		t.Errorf("out[0] = %v, want 3", out[0])
	}
	if out[1] != 6 {
		t.Errorf("out[1] = %v, want 6", out[1])
	}
}

func TestMeanPoolAllPaddingYieldsZero(t *testing.T) {
	hidden := []float32{5, 5, 5, 5}
	mask := []int64{0, 0}

	out := meanPool(hidden, mask, 1, 2, 2)

	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
		if math.IsNaN(float64(v)) {
			t.Errorf("out[%d] is NaN", i)
		}
	}
}
