package rng

import (
	"errors"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJumpsSize(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 13} {
		g := newUnit()
		s, err := Jumps(g, n)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.EstimateSize(); got != n {
			t.Errorf("EstimateSize() = %d, want %d", got, n)
		}
		out, err := s.Collect()
		if err != nil {
			t.Fatal(err)
		}
		if int64(len(out)) != n {
			t.Fatalf("Jumps(%d) produced %d elements", n, len(out))
		}
		// Element i starts i jumps (steps, for this engine) into the sequence.
		for i, c := range out {
			sameOutputs(t, advanced(i), c)
		}
		sameOutputs(t, advanced(int(n)), g)
	}

	if _, err := Jumps(newUnit(), -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Jumps(-1): got %v", err)
	}
	if _, err := LongJumps(newUnit(), -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("LongJumps(-1): got %v", err)
	}
	if _, err := JumpsDistance(newUnit(), -1, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("JumpsDistance(-1): got %v", err)
	}
}

func TestLongJumpsAndDistance(t *testing.T) {
	g := newUnit()
	s, err := LongJumps(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	i := 0
	for c := range s.All() {
		sameOutputs(t, advanced(2*i), c)
		i++
	}
	if i != 3 {
		t.Fatalf("LongJumps(3) produced %d elements", i)
	}

	g = newUnit()
	ds, err := JumpsDistance(g, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ds.Collect()
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range out {
		sameOutputs(t, advanced(10*i), c)
	}
}

func TestJumpsAreSequential(t *testing.T) {
	s := UnboundedJumps(newUnit())
	if got := s.EstimateSize(); got != math.MaxInt64 {
		t.Errorf("EstimateSize() = %d, want MaxInt64", got)
	}
	if s.Characteristics().Has(Concurrent) {
		t.Error("jump stream reports Concurrent")
	}
	if !s.Characteristics().Has(Immutable) {
		t.Error("jump stream is not Immutable")
	}
	if s.TrySplit() != nil {
		t.Error("jump stream split")
	}
	for range 5 {
		if _, ok := s.Next(); !ok {
			t.Fatal("unbounded stream ended")
		}
	}
}

func TestJumpsDistanceErrors(t *testing.T) {
	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := JumpsDistance(newUnit(), 3, d); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("JumpsDistance(%v): got %v", d, err)
		}
		if _, err := UnboundedJumpsDistance(newUnit(), d); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("UnboundedJumpsDistance(%v): got %v", d, err)
		}
	}

	// Beyond the period: the first element reports the error.
	s, err := JumpsDistance(newUnit(), 3, 0x1p200)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Next(); ok {
		t.Error("stream produced an element past the period")
	}
	if !errors.Is(s.Err(), ErrInvalidArgument) {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestCreateSeed(t *testing.T) {
	g := newWeyl64(2024)
	for range 1000 {
		seed := createSeed(g)
		if seed&1 == 0 {
			t.Fatalf("seed %#x is even", seed)
		}
		unique := seed & 0xf
		for i := 4; i < 64; i += 4 {
			if seed>>uint(i)&0xf == unique {
				t.Fatalf("seed %#x repeats its lowest character", seed)
			}
		}
	}
}

func TestGenerateWithSeedDistinct(t *testing.T) {
	source := newWeyl64(7)
	identity := func(seed uint64, _ Generator) uint64 { return seed }

	s, err := GenerateWithSeed[uint64](2000, source, identity)
	if err != nil {
		t.Fatal(err)
	}
	var parts []*Stream[uint64]
	parts = append(parts, s)
	for range 3 {
		if c := s.TrySplit(); c != nil {
			parts = append(parts, c)
		}
	}

	var total int64
	for _, p := range parts {
		total += p.EstimateSize()
	}
	if total != 2000 {
		t.Fatalf("split sizes sum to %d", total)
	}

	seen := map[uint64]bool{}
	for _, p := range parts {
		for seed := range p.All() {
			if seen[seed] {
				t.Fatalf("seed %#x repeated", seed)
			}
			seen[seed] = true
		}
	}
	if len(seen) != 2000 {
		t.Errorf("got %d seeds, want 2000", len(seen))
	}
}

func TestGenerateWithSeedErrors(t *testing.T) {
	f := func(seed uint64, _ Generator) uint64 { return seed }
	if _, err := GenerateWithSeed[uint64](-1, newWeyl64(1), f); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative size: got %v", err)
	}
	if _, err := GenerateWithSeed[uint64](1, nil, f); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source: got %v", err)
	}
	if _, err := GenerateWithSeed[uint64](1, newWeyl64(1), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil factory: got %v", err)
	}
}

func TestSplits(t *testing.T) {
	for _, n := range []int64{0, 1, 7, 13} {
		s, err := Splits(newWeyl64(1), n, newWeyl64(2))
		if err != nil {
			t.Fatal(err)
		}
		if c := s.Characteristics(); !c.Has(Sized | Subsized | Immutable) {
			t.Errorf("characteristics %b", c)
		}
		var got int64
		if c := s.TrySplit(); c != nil {
			got += int64(len(mustCollect(t, c)))
		}
		got += int64(len(mustCollect(t, s)))
		if got != n {
			t.Errorf("Splits(%d) produced %d elements", n, got)
		}
	}

	if _, err := Splits(newWeyl64(1), -1, newWeyl64(2)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Splits(-1): got %v", err)
	}
	if _, err := Splits(newWeyl64(1), 1, nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source: got %v", err)
	}

	u, err := UnboundedSplits(newWeyl64(1), newWeyl64(2))
	if err != nil {
		t.Fatal(err)
	}
	if got := u.EstimateSize(); got != math.MaxInt64 {
		t.Errorf("EstimateSize() = %d", got)
	}
}

func mustCollect[T any](t *testing.T, s *Stream[T]) []T {
	t.Helper()
	out, err := s.Collect()
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestLockedSharesOneSequence(t *testing.T) {
	const workers, draws = 8, 500
	l := NewLocked(newWeyl64(99))

	var mu sync.Mutex
	var got []uint64
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, draws)
			for range draws {
				local = append(local, l.Uint64())
			}
			mu.Lock()
			got = append(got, local...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	ref := newWeyl64(99)
	want := make([]uint64, workers*draws)
	for i := range want {
		want[i] = ref.Uint64()
	}
	slices.Sort(got)
	slices.Sort(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("locked draws differ from the sequential sequence:\n%s", diff)
	}
}
