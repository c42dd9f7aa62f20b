package pack

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"testing"
)

func TestGuillotine_FirstSplitArea(t *testing.T) {
	g := NewGuillotine(10, 10, FitStrict)

	x, y, ok := g.Allocate(5, 5)
	if !ok {
		t.Fatal("failed to allocate 5x5 in 10x10")
	}
	if x != 0 || y != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", x, y)
	}

	want := []Region{
		{X: 5, Y: 0, W: 5, H: 10}, // larger, right of the rect
		{X: 0, Y: 5, W: 5, H: 5},  // smaller, below the rect
	}
	if got := g.FreeRegions(); !reflect.DeepEqual(got, want) {
		t.Errorf("FreeRegions() = %v, want %v", got, want)
	}
	if got := g.FreeArea(); got != 75 {
		t.Errorf("FreeArea() = %d, want 75", got)
	}
	if got := g.UsedArea(); got != 25 {
		t.Errorf("UsedArea() = %d, want 25", got)
	}
}

func TestGuillotine_SplitBelowWhenTaller(t *testing.T) {
	g := NewGuillotine(10, 10, FitStrict)

	if _, _, ok := g.Allocate(8, 2); !ok {
		t.Fatal("failed to allocate 8x2")
	}

	want := []Region{
		{X: 0, Y: 2, W: 10, H: 8}, // larger spans the full width
		{X: 8, Y: 0, W: 2, H: 2},
	}
	if got := g.FreeRegions(); !reflect.DeepEqual(got, want) {
		t.Errorf("FreeRegions() = %v, want %v", got, want)
	}
}

func TestGuillotine_LastRegionWins(t *testing.T) {
	g := NewGuillotine(10, 10, FitStrict)
	g.Allocate(2, 2)

	// Both free regions can hold 1x1; the one appended last is used.
	x, y, ok := g.Allocate(1, 1)
	if !ok {
		t.Fatal("failed to allocate 1x1")
	}
	if x != 0 || y != 2 {
		t.Errorf("expected (0,2), got (%d,%d)", x, y)
	}
}

func TestGuillotine_SwapRemove(t *testing.T) {
	g := NewGuillotine(10, 10, FitStrict)
	g.Allocate(2, 2) // free: [{2,0,8,10} {0,2,2,8}]

	x, y, ok := g.Allocate(3, 3)
	if !ok {
		t.Fatal("failed to allocate 3x3")
	}
	if x != 2 || y != 0 {
		t.Errorf("expected (2,0), got (%d,%d)", x, y)
	}

	want := []Region{
		{X: 0, Y: 2, W: 2, H: 8}, // moved into the removed slot
		{X: 2, Y: 3, W: 8, H: 7},
		{X: 5, Y: 0, W: 5, H: 3},
	}
	if got := g.FreeRegions(); !reflect.DeepEqual(got, want) {
		t.Errorf("FreeRegions() = %v, want %v", got, want)
	}
}

func TestGuillotine_FailLeavesFreeList(t *testing.T) {
	g := NewGuillotine(10, 10, FitStrict)
	g.Allocate(5, 5)
	before := g.FreeRegions()

	if _, _, ok := g.Allocate(6, 6); ok {
		t.Fatal("6x6 should not fit after 5x5")
	}
	if got := g.FreeRegions(); !reflect.DeepEqual(got, before) {
		t.Errorf("free list changed on failure: %v -> %v", before, got)
	}
}

func TestGuillotine_ZeroArea(t *testing.T) {
	g := NewGuillotine(4, 4, FitStrict)

	for _, size := range [][2]int{{0, 0}, {0, 3}, {3, 0}} {
		x, y, ok := g.Allocate(size[0], size[1])
		if !ok || x != 0 || y != 0 {
			t.Errorf("Allocate(%d,%d) = (%d,%d,%v), want (0,0,true)", size[0], size[1], x, y, ok)
		}
	}
	if len(g.FreeRegions()) != 1 {
		t.Errorf("zero-area allocations must not split, got %v", g.FreeRegions())
	}
}

func TestGuillotine_Reset(t *testing.T) {
	g := NewGuillotine(10, 10, FitStrict)
	g.Allocate(3, 3)
	g.Allocate(2, 2)

	g.Reset()

	want := []Region{{W: 10, H: 10}}
	if got := g.FreeRegions(); !reflect.DeepEqual(got, want) {
		t.Errorf("FreeRegions() after Reset = %v, want %v", got, want)
	}
	if g.Utilization() != 0 {
		t.Errorf("expected 0 utilization after reset, got %f", g.Utilization())
	}
}

func TestGuillotine_CanFit(t *testing.T) {
	g := NewGuillotine(10, 10, FitStrict)
	if !g.CanFit(9, 9) {
		t.Error("9x9 should fit in empty 10x10")
	}
	if g.CanFit(10, 10) {
		t.Error("10x10 should not fit in 10x10 with strict fit")
	}

	g = NewGuillotine(10, 10, FitInclusive)
	if !g.CanFit(10, 10) {
		t.Error("10x10 should fit in 10x10 with inclusive fit")
	}
}

func TestPack_Scenario100(t *testing.T) {
	reqs := []Request{
		{ID: 'A', Width: 50, Height: 50},
		{ID: 'B', Width: 50, Height: 50},
		{ID: 'C', Width: 60, Height: 60},
	}

	tests := []struct {
		name string
		fit  Fit
		want []Result
	}{
		{
			name: "strict",
			fit:  FitStrict,
			want: []Result{
				{ID: 'A', X: 0, Y: 0, Placed: true},
				{ID: 'B'}, // both remaining regions are exactly 50 wide
				{ID: 'C'},
			},
		},
		{
			name: "inclusive",
			fit:  FitInclusive,
			want: []Result{
				{ID: 'A', X: 0, Y: 0, Placed: true},
				{ID: 'B', X: 0, Y: 50, Placed: true},
				{ID: 'C'},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pack(100, 100, reqs, WithFit(tt.fit))
			if err != nil {
				t.Fatalf("Pack() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Pack() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPack_ExactCanvasFails(t *testing.T) {
	got, err := Pack(16, 16, []Request{{ID: 1, Width: 16, Height: 16}})
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if got[0].Placed {
		t.Error("rect equal to canvas must fail under strict fit")
	}

	got, err = Pack(16, 16, []Request{{ID: 1, Width: 16, Height: 16}}, WithFit(FitInclusive))
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if !got[0].Placed {
		t.Error("rect equal to canvas must be placed under inclusive fit")
	}
}

func TestPack_Exhaustion(t *testing.T) {
	const w, h = 32, 24
	reqs := make([]Request, 5)
	for i := range reqs {
		reqs[i] = Request{ID: i, Width: w - 1, Height: h - 1}
	}

	got, err := Pack(w, h, reqs)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if !got[0].Placed || got[0].X != 0 || got[0].Y != 0 {
		t.Errorf("first result = %+v, want placed at (0,0)", got[0])
	}
	for i, r := range got[1:] {
		if r.Placed {
			t.Errorf("result %d placed at (%d,%d), want failed", i+1, r.X, r.Y)
		}
	}
	if n := Placed(got); n != 1 {
		t.Errorf("Placed() = %d, want 1", n)
	}
}

func TestPack_Errors(t *testing.T) {
	t.Run("negative width", func(t *testing.T) {
		_, err := Pack(10, 10, []Request{{ID: 7, Width: 1, Height: 1}, {ID: 9, Width: -1, Height: 2}})
		var reqErr *InvalidRequestError
		if !errors.As(err, &reqErr) {
			t.Fatalf("expected InvalidRequestError, got %v", err)
		}
		if reqErr.Index != 1 || reqErr.ID != 9 {
			t.Errorf("error points at index %d id %d, want 1 / 9", reqErr.Index, reqErr.ID)
		}
		if !errors.Is(err, ErrInvalidRequest) {
			t.Error("expected errors.Is(err, ErrInvalidRequest)")
		}
	})

	t.Run("empty canvas", func(t *testing.T) {
		for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
			_, err := Pack(size[0], size[1], nil)
			if !errors.Is(err, ErrInvalidCanvas) {
				t.Errorf("Pack(%d,%d) error = %v, want ErrInvalidCanvas", size[0], size[1], err)
			}
		}
	})

	t.Run("no requests", func(t *testing.T) {
		got, err := Pack(10, 10, nil)
		if err != nil {
			t.Fatalf("Pack() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no results, got %d", len(got))
		}
	})
}

func randomRequests(rng *rand.Rand, n, maxSide int) []Request {
	reqs := make([]Request, n)
	for i := range reqs {
		reqs[i] = Request{
			ID:     i,
			Width:  rng.IntN(maxSide + 1),
			Height: rng.IntN(maxSide + 1),
		}
	}
	return reqs
}

func checkLayout(t *testing.T, width, height int, reqs []Request, results []Result) {
	t.Helper()

	if len(results) != len(reqs) {
		t.Fatalf("got %d results for %d requests", len(results), len(reqs))
	}

	for i, r := range results {
		if r.ID != reqs[i].ID {
			t.Errorf("result %d has id %d, want %d", i, r.ID, reqs[i].ID)
		}
		if !r.Placed {
			continue
		}
		w, h := reqs[i].Width, reqs[i].Height
		if r.X < 0 || r.Y < 0 || r.X+w > width || r.Y+h > height {
			t.Errorf("result %d (%d,%d %dx%d) is outside %dx%d", i, r.X, r.Y, w, h, width, height)
		}
	}

	for i := range results {
		a := results[i]
		aw, ah := reqs[i].Width, reqs[i].Height
		if !a.Placed || aw == 0 || ah == 0 {
			continue
		}
		for j := i + 1; j < len(results); j++ {
			b := results[j]
			bw, bh := reqs[j].Width, reqs[j].Height
			if !b.Placed || bw == 0 || bh == 0 {
				continue
			}
			if a.X < b.X+bw && b.X < a.X+aw && a.Y < b.Y+bh && b.Y < a.Y+ah {
				t.Errorf("results %d and %d overlap: (%d,%d %dx%d) vs (%d,%d %dx%d)",
					i, j, a.X, a.Y, aw, ah, b.X, b.Y, bw, bh)
			}
		}
	}
}

func TestPack_Invariants(t *testing.T) {
	strategies := []struct {
		name string
		opts []Option
	}{
		{"guillotine/strict", []Option{WithFit(FitStrict)}},
		{"guillotine/inclusive", []Option{WithFit(FitInclusive)}},
		{"shelf", []Option{WithStrategy(StrategyShelf)}},
	}

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			rng := rand.New(rand.NewPCG(1, 2))
			for round := 0; round < 50; round++ {
				width := 16 + rng.IntN(240)
				height := 16 + rng.IntN(240)
				reqs := randomRequests(rng, 1+rng.IntN(200), 40)

				results, err := Pack(width, height, reqs, s.opts...)
				if err != nil {
					t.Fatalf("round %d: Pack() error = %v", round, err)
				}
				checkLayout(t, width, height, reqs, results)
			}
		})
	}
}

func TestPack_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	reqs := randomRequests(rng, 300, 24)

	first, err := Pack(256, 256, reqs)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Pack(256, 256, reqs)
		if err != nil {
			t.Fatalf("Pack() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatal("repeated Pack() produced a different layout")
		}
	}
}

func TestPack_Concurrent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	reqs := randomRequests(rng, 200, 20)
	want, err := Pack(200, 200, reqs)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	done := make(chan []Result, 8)
	for range 8 {
		go func() {
			got, _ := Pack(200, 200, reqs)
			done <- got
		}()
	}
	for range 8 {
		if got := <-done; !reflect.DeepEqual(got, want) {
			t.Error("concurrent Pack() differs from sequential result")
		}
	}
}

func TestNewAllocator(t *testing.T) {
	if _, ok := NewAllocator(10, 10).(*Guillotine); !ok {
		t.Error("default allocator should be *Guillotine")
	}
	if _, ok := NewAllocator(10, 10, WithStrategy(StrategyShelf)).(*Shelf); !ok {
		t.Error("StrategyShelf should yield *Shelf")
	}
}
