//go:build clutdebug

package grid

import "testing"

func TestAssertCoordPanics(t *testing.T) {
	g, err := New([]int{2, 2, 2}, 3, make([]float32, 24))
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range coordinate")
		}
	}()
	g.Fetch([]int{0, 2, 0})
}
