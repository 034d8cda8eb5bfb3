package core

import (
	"testing"
	"time"
)

func TestLayoutIndexCoversEveryCellOnce(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {7, 3}, {5, 5}} {
		l := NewLayout(dims[0], dims[1])
		seen := make([]bool, l.Len())
		for i := 0; i < l.Cols; i++ {
			for j := 0; j < l.Rows; j++ {
				idx := l.Index(i, j)
				if idx < 0 || idx >= l.Len() {
					t.Fatalf("%dx%d: index(%d,%d)=%d out of range", l.Cols, l.Rows, i, j, idx)
				}
				if seen[idx] {
					t.Fatalf("%dx%d: index(%d,%d)=%d aliases another cell", l.Cols, l.Rows, i, j, idx)
				}
				seen[idx] = true
				if ci, cj := l.Coords(idx); ci != i || cj != j {
					t.Fatalf("coords(%d)=(%d,%d), want (%d,%d)", idx, ci, cj, i, j)
				}
			}
		}
	}
}

func TestLayoutSquareMatchesColsStride(t *testing.T) {
	l := NewLayout(4, 4)
	if got := l.Index(2, 3); got != 3+2*4 {
		t.Fatalf("index(2,3)=%d, want %d", got, 3+2*4)
	}
}

func TestLayoutClamp(t *testing.T) {
	l := NewLayout(3, 2)
	cases := []struct{ i, j, wi, wj int }{
		{-1, -1, 0, 0},
		{3, 2, 2, 1},
		{1, 1, 1, 1},
		{-5, 9, 0, 1},
	}
	for _, c := range cases {
		i, j := l.Clamp(c.i, c.j)
		if i != c.wi || j != c.wj {
			t.Fatalf("clamp(%d,%d)=(%d,%d), want (%d,%d)", c.i, c.j, i, j, c.wi, c.wj)
		}
		if !l.Contains(i, j) {
			t.Fatalf("clamped (%d,%d) not contained", i, j)
		}
	}
}

func TestNewLayoutRejectsEmpty(t *testing.T) {
	if l := NewLayout(0, 5); l.Len() != 0 || l.Contains(0, 0) {
		t.Fatalf("expected empty layout, got %+v", l)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7).Source()
	b := NewRNG(7).Source()
	for k := 0; k < 32; k++ {
		va, vb := a(), b()
		if va != vb {
			t.Fatalf("draw %d differs: %f vs %f", k, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of [0,1): %f", k, va)
		}
	}
}

func TestRNGSourceFollowsReseed(t *testing.T) {
	r := NewRNG(1)
	src := r.Source()
	first := src()
	r.Reseed(1)
	if got := src(); got != first {
		t.Fatalf("expected reseed to replay %f, got %f", first, got)
	}
}

func TestSequenceRepeatsLast(t *testing.T) {
	src := Sequence(0.1, 0.9)
	want := []float64{0.1, 0.9, 0.9, 0.9}
	for k, w := range want {
		if got := src(); got != w {
			t.Fatalf("draw %d=%f, want %f", k, got, w)
		}
	}
	if got := Sequence()(); got != 0 {
		t.Fatalf("empty sequence yielded %f", got)
	}
}

func TestFixedStepPacesTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half an interval should not step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("full interval elapsed, expected step")
	}
	clock = clock.Add(5 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps > 2 {
		t.Fatalf("expected backlog to be capped, got %d steps", steps)
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return nil, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("invalid registrations should be ignored")
	}
}
