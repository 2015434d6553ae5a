package sampling

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nozzle/rng"
	"github.com/nozzle/rng/source32"
	"github.com/nozzle/rng/source64"
)

const samples = 100000

func newGenerator() rng.Generator {
	return source64.NewXoShiRo256PlusPlus(0x1234, 0x5678, 0x9abc, 0xdef0)
}

// chiSquareP returns the p-value of the observed counts against the
// expected ones.
func chiSquareP(obs, exp []float64) float64 {
	return distuv.ChiSquared{K: float64(len(obs) - 1)}.Survival(stat.ChiSquare(obs, exp))
}

// checkMean fails when the sample mean is more than 5 standard errors from mean.
func checkMean(t *testing.T, x []float64, mean, sd float64) {
	t.Helper()
	got := stat.Mean(x, nil)
	if tol := 5 * sd / math.Sqrt(float64(len(x))); math.Abs(got-mean) > tol {
		t.Errorf("mean %v, want %v ± %v", got, mean, tol)
	}
}

func binned(x []float64, edges []float64) []float64 {
	obs := make([]float64, len(edges)+1)
	for _, v := range x {
		i, _ := slices.BinarySearch(edges, v)
		obs[i]++
	}
	return obs
}

func expectedBins(n int, edges []float64, cdf func(float64) float64) []float64 {
	exp := make([]float64, len(edges)+1)
	prev := 0.0
	for i, e := range edges {
		c := cdf(e)
		exp[i] = float64(n) * (c - prev)
		prev = c
	}
	exp[len(edges)] = float64(n) * (1 - prev)
	return exp
}

func TestContinuousUniform(t *testing.T) {
	for _, tc := range [][2]float64{{-3, 5}, {5, -3}, {0, 1e-300}} {
		s, err := NewContinuousUniform(newGenerator(), tc[0], tc[1])
		if err != nil {
			t.Fatal(err)
		}
		lo, hi := min(tc[0], tc[1]), max(tc[0], tc[1])
		x := make([]float64, samples)
		for i := range x {
			x[i] = s.Sample()
			if x[i] < lo || x[i] > hi {
				t.Fatalf("sample %v outside [%v, %v]", x[i], lo, hi)
			}
		}
		checkMean(t, x, (lo+hi)/2, (hi-lo)/math.Sqrt(12))
	}

	for _, tc := range [][2]float64{{math.NaN(), 1}, {0, math.Inf(1)}} {
		if _, err := NewContinuousUniform(newGenerator(), tc[0], tc[1]); !errors.Is(err, rng.ErrInvalidArgument) {
			t.Errorf("bounds %v: got %v", tc, err)
		}
	}
}

func TestDiscreteUniform(t *testing.T) {
	s, err := NewDiscreteUniform(newGenerator(), -3, 3)
	if err != nil {
		t.Fatal(err)
	}
	obs := make([]float64, 7)
	for range samples {
		v := s.Sample()
		if v < -3 || v > 3 {
			t.Fatalf("sample %d outside [-3, 3]", v)
		}
		obs[v+3]++
	}
	exp := slices.Repeat([]float64{samples / 7.0}, 7)
	if p := chiSquareP(obs, exp); p < 1e-4 {
		t.Errorf("counts %v not uniform, p = %v", obs, p)
	}

	single, err := NewDiscreteUniform(newGenerator(), 9, 9)
	if err != nil {
		t.Fatal(err)
	}
	if got := single.Sample(); got != 9 {
		t.Errorf("single value range gave %d", got)
	}

	// Ranges with more than MaxInt64 values fall back to rejection.
	for _, r := range [][2]int64{{-1, math.MaxInt64}, {math.MinInt64, math.MaxInt64}, {math.MinInt64, 0}} {
		s, err := NewDiscreteUniform(newGenerator(), r[0], r[1])
		if err != nil {
			t.Fatal(err)
		}
		for range 1000 {
			if v := s.Sample(); v < r[0] || v > r[1] {
				t.Fatalf("sample %d outside %v", v, r)
			}
		}
	}

	if _, err := NewDiscreteUniform(newGenerator(), 2, 1); !errors.Is(err, rng.ErrInvalidArgument) {
		t.Errorf("reversed bounds: got %v", err)
	}
}

func TestBoxMullerCachesSpare(t *testing.T) {
	g := newGenerator()
	s := NewBoxMuller(g)
	first, second := s.Sample(), s.Sample()

	ref := newGenerator()
	x, y := ref.Float64(), 1-ref.Float64()
	r := math.Sqrt(-2 * math.Log(y))
	if want := r * math.Cos(2*math.Pi*x); math.Abs(first-want) > 1e-12 {
		t.Errorf("first deviate %v, want %v", first, want)
	}
	if want := r * math.Sin(2*math.Pi*x); math.Abs(second-want) > 1e-12 {
		t.Errorf("second deviate %v, want %v", second, want)
	}
	// The pair used exactly two draws.
	if got, want := g.Uint64(), ref.Uint64(); got != want {
		t.Errorf("generator advanced differently: %#x, want %#x", got, want)
	}
}

func TestGaussian(t *testing.T) {
	const mean, sd = 10, 2
	s, err := NewGaussian(newGenerator(), mean, sd)
	if err != nil {
		t.Fatal(err)
	}
	x := make([]float64, samples)
	for i := range x {
		x[i] = s.Sample()
	}
	checkMean(t, x, mean, sd)
	if got := stat.StdDev(x, nil); math.Abs(got-sd) > 0.05 {
		t.Errorf("standard deviation %v, want %v", got, sd)
	}

	edges := []float64{4, 6, 8, 9, 10, 11, 12, 14, 16}
	norm := distuv.Normal{Mu: mean, Sigma: sd}
	if p := chiSquareP(binned(x, edges), expectedBins(samples, edges, norm.CDF)); p < 1e-4 {
		t.Errorf("gaussian histogram rejected, p = %v", p)
	}

	for _, sd := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := NewGaussian(newGenerator(), 0, sd); !errors.Is(err, rng.ErrInvalidArgument) {
			t.Errorf("sd %v: got %v", sd, err)
		}
	}
	if _, err := NewGaussian(newGenerator(), math.Inf(-1), 1); !errors.Is(err, rng.ErrInvalidArgument) {
		t.Errorf("infinite mean: got %v", err)
	}
}

func TestExponential(t *testing.T) {
	const mean = 3.5
	s, err := NewExponential(source32.NewXoShiRo128PlusPlus(1, 2, 3, 4), mean)
	if err != nil {
		t.Fatal(err)
	}
	x := make([]float64, samples)
	for i := range x {
		x[i] = s.Sample()
		if x[i] < 0 {
			t.Fatalf("negative sample %v", x[i])
		}
	}
	checkMean(t, x, mean, mean)

	edges := []float64{0.5, 1, 2, 3, 4, 6, 8, 12}
	exp := distuv.Exponential{Rate: 1 / mean}
	if p := chiSquareP(binned(x, edges), expectedBins(samples, edges, exp.CDF)); p < 1e-4 {
		t.Errorf("exponential histogram rejected, p = %v", p)
	}

	for _, m := range []float64{0, -2, math.NaN(), math.Inf(1)} {
		if _, err := NewExponential(newGenerator(), m); !errors.Is(err, rng.ErrInvalidArgument) {
			t.Errorf("mean %v: got %v", m, err)
		}
	}
}

func TestSmallMeanPoisson(t *testing.T) {
	const mean, maxK = 4, 11
	s, err := NewSmallMeanPoisson(newGenerator(), mean)
	if err != nil {
		t.Fatal(err)
	}
	obs := make([]float64, maxK+2)
	x := make([]float64, samples)
	for i := range x {
		k := s.Sample()
		x[i] = float64(k)
		obs[min(k, maxK+1)]++
	}
	checkMean(t, x, mean, math.Sqrt(mean))

	dist := distuv.Poisson{Lambda: mean}
	exp := make([]float64, maxK+2)
	for k := range maxK + 1 {
		exp[k] = samples * dist.Prob(float64(k))
	}
	exp[maxK+1] = samples * (1 - dist.CDF(maxK))
	if p := chiSquareP(obs, exp); p < 1e-4 {
		t.Errorf("poisson counts %v rejected, p = %v", obs, p)
	}

	for _, m := range []float64{0, -1, math.NaN(), math.Inf(1), 701} {
		if _, err := NewSmallMeanPoisson(newGenerator(), m); !errors.Is(err, rng.ErrInvalidArgument) {
			t.Errorf("mean %v: got %v", m, err)
		}
	}
}

func TestPermutation(t *testing.T) {
	const n, k = 5, 3
	s, err := NewPermutation(newGenerator(), n, k)
	if err != nil {
		t.Fatal(err)
	}
	first := make([]float64, n)
	for range samples / 10 {
		p := s.Sample()
		if len(p) != k {
			t.Fatalf("sample %v has %d elements", p, len(p))
		}
		seen := map[int]bool{}
		for _, v := range p {
			if v < 0 || v >= n || seen[v] {
				t.Fatalf("invalid sample %v", p)
			}
			seen[v] = true
		}
		first[p[0]]++
	}
	exp := slices.Repeat([]float64{samples / 10 / n}, n)
	if p := chiSquareP(first, exp); p < 1e-4 {
		t.Errorf("first element counts %v rejected, p = %v", first, p)
	}

	full, err := NewPermutation(newGenerator(), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	p := full.Sample()
	slices.Sort(p)
	if diff := cmp.Diff(Natural(8), p); diff != "" {
		t.Errorf("full permutation is not a permutation:\n%s", diff)
	}

	for _, tc := range [][2]int{{0, 0}, {-1, 1}, {3, 0}, {3, 4}} {
		if _, err := NewPermutation(newGenerator(), tc[0], tc[1]); !errors.Is(err, rng.ErrInvalidArgument) {
			t.Errorf("n=%d k=%d: got %v", tc[0], tc[1], err)
		}
	}
}

func TestShuffle(t *testing.T) {
	g := newGenerator()
	s := []string{"a", "b", "c", "d", "e"}
	Shuffle(g, s)
	sorted := slices.Sorted(slices.Values(s))
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, sorted); diff != "" {
		t.Errorf("shuffle lost elements:\n%s", diff)
	}

	const n = 4
	pos := make([]float64, n)
	for range samples / 10 {
		v := Natural(n)
		Shuffle(g, v)
		pos[slices.Index(v, 0)]++
	}
	exp := slices.Repeat([]float64{samples / 10 / n}, n)
	if p := chiSquareP(pos, exp); p < 1e-4 {
		t.Errorf("position counts %v rejected, p = %v", pos, p)
	}

	Shuffle(g, []int{})
	Shuffle(g, []int{1})
}

func TestWithGenerator(t *testing.T) {
	gauss, _ := NewGaussian(newGenerator(), 1, 2)
	expo, _ := NewExponential(newGenerator(), 2)
	pois, _ := NewSmallMeanPoisson(newGenerator(), 3)
	uni, _ := NewDiscreteUniform(newGenerator(), 0, 100)

	draw := func(gs *Gaussian, es *Exponential, ps *SmallMeanPoisson, us *DiscreteUniform) []float64 {
		var out []float64
		for range 10 {
			out = append(out, gs.Sample(), es.Sample(), float64(ps.Sample()), float64(us.Sample()))
		}
		return out
	}

	// Copies bound to generators of the same seed repeat the sequence.
	a := draw(gauss.WithGenerator(newGenerator()), expo.WithGenerator(newGenerator()),
		pois.WithGenerator(newGenerator()), uni.WithGenerator(newGenerator()))
	b := draw(gauss, expo, pois, uni)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("copies differ from the originals:\n%s", diff)
	}
}

func TestWithJumpedGenerators(t *testing.T) {
	g := source64.NewXoShiRo256StarStar(1, 2, 3, 4)
	s, err := NewGaussian(g, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	jumps, err := rng.Jumps(g, 4)
	if err != nil {
		t.Fatal(err)
	}
	var means []float64
	for c := range jumps.All() {
		w := s.WithGenerator(c)
		x := make([]float64, 10000)
		for i := range x {
			x[i] = w.Sample()
		}
		checkMean(t, x, 0, 1)
		means = append(means, stat.Mean(x, nil))
	}
	if len(means) != 4 {
		t.Fatalf("got %d streams", len(means))
	}
	for i := 1; i < len(means); i++ {
		if means[i] == means[0] {
			t.Errorf("stream %d repeats stream 0", i)
		}
	}
}

func TestGeneratorAsGonumSource(t *testing.T) {
	// Generators satisfy math/rand/v2 Source and can drive gonum
	// distributions directly.
	d := distuv.Normal{Mu: 3, Sigma: 0.5, Src: newGenerator()}
	x := make([]float64, samples)
	for i := range x {
		x[i] = d.Rand()
	}
	checkMean(t, x, 3, 0.5)
}
