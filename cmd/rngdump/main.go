// Command rngdump prints the output of a named generator, optionally after
// jumps, a split or a restored state.
package main

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/nozzle/rng"
	"github.com/nozzle/rng/internal/parallel"
	"github.com/nozzle/rng/randomsource"
	"github.com/nozzle/rng/source64"
)

type options struct {
	algorithm string
	seed      string
	n         int
	format    string
	jumps     int
	longJumps int
	distance  float64
	splitSeed string
	workers   int
	list      bool
	stateIn   string
	stateOut  string
	verbose   bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if xerrors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("rngdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.algorithm, "algorithm", randomsource.DefaultConfig().Algorithm, "Generator name (see -list)")
	fs.StringVar(&o.seed, "seed", "", "Seed as hex bytes, little-endian words (default: random)")
	fs.IntVar(&o.n, "n", 10, "Number of values to print")
	fs.StringVar(&o.format, "format", "hex", "Output format: hex, uint, float or bytes")
	fs.IntVar(&o.jumps, "jumps", 0, "Jumps to apply before output")
	fs.IntVar(&o.longJumps, "long-jumps", 0, "Long jumps to apply before output")
	fs.Float64Var(&o.distance, "distance", 0, "Arbitrary jump distance to apply before output")
	fs.StringVar(&o.splitSeed, "split-seed", "", "Replace the generator by a split child, drawing from SplitMix64 with this seed")
	fs.IntVar(&o.workers, "workers", 1, "Produce the output in this many jumped or split chunks; 0 uses one per CPU")
	fs.BoolVar(&o.list, "list", false, "List the available generators")
	fs.StringVar(&o.stateIn, "state-in", "", "Restore the generator from a state file")
	fs.StringVar(&o.stateOut, "state-out", "", "Save the generator state to a file after output")
	fs.BoolVar(&o.verbose, "verbose", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	if o.n < 0 {
		return o, xerrors.Errorf("-n must not be negative: %d", o.n)
	}
	if o.jumps < 0 || o.longJumps < 0 {
		return o, xerrors.New("jump counts must not be negative")
	}
	if o.workers < 0 {
		return o, xerrors.Errorf("-workers must not be negative: %d", o.workers)
	}
	if o.workers == 0 {
		o.workers = parallel.NumWorkers()
	}
	switch o.format {
	case "hex", "uint", "float", "bytes":
	default:
		return o, xerrors.Errorf("unknown format %q", o.format)
	}
	return o, nil
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.TimeFormat = "15:04:05.000"
	})).Level(level).With().Timestamp().Logger()
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(stderr, o.verbose)

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if o.list {
		return list(out)
	}

	g, err := open(o, log)
	if err != nil {
		return err
	}
	if g, err = position(g, o, log); err != nil {
		return err
	}

	values, err := generate(g, o, log)
	if err != nil {
		return err
	}
	if err := write(out, values, o.format, wordBits(g)); err != nil {
		return err
	}

	if o.stateOut != "" {
		if err := saveState(g, o.stateOut); err != nil {
			return err
		}
		log.Debug().Str("file", o.stateOut).Msg("saved state")
	}
	return nil
}

func list(w io.Writer) error {
	for _, name := range randomsource.Names() {
		d, _ := randomsource.Get(name)
		_, err := fmt.Fprintf(w, "%-22s %2d-bit  seed %s[%d]  %s\n",
			d.Name, d.WordBits, d.Seed, d.SeedSize, capabilities(d.Capabilities))
		if err != nil {
			return err
		}
	}
	return nil
}

func capabilities(c randomsource.Capability) string {
	var names []string
	for _, f := range []struct {
		c    randomsource.Capability
		name string
	}{
		{randomsource.Restorable, "restore"},
		{randomsource.Jumpable, "jump"},
		{randomsource.LongJumpable, "long-jump"},
		{randomsource.ArbitrarilyJumpable, "jump-distance"},
		{randomsource.Splittable, "split"},
	} {
		if c.Has(f.c) {
			names = append(names, f.name)
		}
	}
	return strings.Join(names, ",")
}

// open creates the generator from a state file or from the algorithm and seed.
func open(o options, log zerolog.Logger) (rng.Generator, error) {
	if o.stateIn != "" {
		b, err := os.ReadFile(o.stateIn)
		if err != nil {
			return nil, xerrors.Errorf("read state: %w", err)
		}
		var s rng.State
		if err := s.UnmarshalBinary(b); err != nil {
			return nil, xerrors.Errorf("decode %s: %w", o.stateIn, err)
		}
		log.Debug().Str("algorithm", s.Algorithm).Str("file", o.stateIn).Msg("restoring state")
		return randomsource.Restore(s)
	}

	var seed []byte
	if o.seed != "" {
		var err error
		if seed, err = hex.DecodeString(o.seed); err != nil {
			return nil, xerrors.Errorf("invalid -seed: %w", err)
		}
	} else {
		var err error
		if seed, err = randomsource.CreateSeed(o.algorithm); err != nil {
			return nil, err
		}
		// Logged so the run can be repeated.
		log.Info().Str("seed", hex.EncodeToString(seed)).Msg("self-seeded")
	}
	return randomsource.New(randomsource.Config{Algorithm: o.algorithm, Seed: seed})
}

// position applies the requested jumps and split to g.
func position(g rng.Generator, o options, log zerolog.Logger) (rng.Generator, error) {
	if o.longJumps > 0 {
		lj, ok := g.(rng.LongJumpable)
		if !ok {
			return nil, xerrors.Errorf("%s does not support long jumps: %w", name(g), rng.ErrInvalidArgument)
		}
		for range o.longJumps {
			lj.LongJump()
		}
		log.Debug().Int("count", o.longJumps).Msg("long jumped")
	}
	if o.jumps > 0 {
		j, ok := g.(rng.Jumpable)
		if !ok {
			return nil, xerrors.Errorf("%s does not support jumps: %w", name(g), rng.ErrInvalidArgument)
		}
		for range o.jumps {
			j.Jump()
		}
		log.Debug().Int("count", o.jumps).Msg("jumped")
	}
	if o.distance != 0 {
		aj, ok := g.(rng.ArbitrarilyJumpable)
		if !ok {
			return nil, xerrors.Errorf("%s does not support jump distances: %w", name(g), rng.ErrInvalidArgument)
		}
		if _, err := aj.JumpDistance(o.distance); err != nil {
			return nil, err
		}
		log.Debug().Float64("distance", o.distance).Msg("jumped")
	}
	if o.splitSeed != "" {
		source, err := splitSource(o.splitSeed)
		if err != nil {
			return nil, err
		}
		sg, ok := g.(rng.Splittable)
		if !ok {
			return nil, xerrors.Errorf("%s does not support split: %w", name(g), rng.ErrInvalidArgument)
		}
		if g, err = sg.Split(source); err != nil {
			return nil, err
		}
		log.Debug().Str("split-seed", o.splitSeed).Msg("split")
	}
	return g, nil
}

func splitSource(seed string) (*source64.SplitMix64, error) {
	v, err := strconv.ParseUint(seed, 0, 64)
	if err != nil {
		return nil, xerrors.Errorf("invalid -split-seed: %w", err)
	}
	return source64.NewSplitMix64(v), nil
}

// generate draws n words. With several workers the range is cut into
// chunks, each produced by its own jumped (or split) copy of g.
func generate(g rng.Generator, o options, log zerolog.Logger) ([]uint64, error) {
	values := make([]uint64, o.n)
	bits := wordBits(g)
	fill := func(c rng.Generator, s, e int) {
		for i := s; i < e; i++ {
			if bits == 32 {
				values[i] = uint64(c.Uint32())
			} else {
				values[i] = c.Uint64()
			}
		}
	}

	if o.workers == 1 {
		fill(g, 0, o.n)
		return values, nil
	}
	log.Debug().Int("workers", o.workers).Msg("parallel output")
	switch pg := g.(type) {
	case rng.Jumpable:
		parallel.ForJumped(pg, 0, o.n, o.workers, fill)
	case rng.Splittable:
		seed := o.splitSeed
		if seed == "" {
			seed = "0"
		}
		source, err := splitSource(seed)
		if err != nil {
			return nil, err
		}
		if err := parallel.ForSplit(pg, source, 0, o.n, o.workers, fill); err != nil {
			return nil, err
		}
	default:
		return nil, xerrors.Errorf("%s cannot produce parallel streams: %w", name(g), rng.ErrInvalidArgument)
	}
	return values, nil
}

func write(w io.Writer, values []uint64, format string, bits int) error {
	if format == "bytes" {
		var buf [8]byte
		for _, v := range values {
			binary.LittleEndian.PutUint64(buf[:], v)
			if _, err := w.Write(buf[:bits/8]); err != nil {
				return err
			}
		}
		return nil
	}

	for _, v := range values {
		var s string
		switch format {
		case "hex":
			s = fmt.Sprintf("%0*x", bits/4, v)
		case "uint":
			s = strconv.FormatUint(v, 10)
		case "float":
			s = strconv.FormatFloat(toFloat(v, bits), 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// toFloat maps a word to [0, 1) using its high bits.
func toFloat(v uint64, bits int) float64 {
	if bits == 32 {
		return float64(v>>8) * 0x1p-24
	}
	return float64(v>>11) * 0x1p-53
}

func saveState(g rng.Generator, file string) error {
	r, ok := g.(rng.Restorable)
	if !ok {
		return xerrors.Errorf("%s cannot save state: %w", name(g), rng.ErrInvalidArgument)
	}
	b, err := r.SaveState().MarshalBinary()
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0o644)
}

func name(g rng.Generator) string {
	if r, ok := g.(rng.Restorable); ok {
		return r.SaveState().Algorithm
	}
	return fmt.Sprintf("%T", g)
}

func wordBits(g rng.Generator) int {
	if d, ok := randomsource.Get(name(g)); ok {
		return d.WordBits
	}
	return 64
}
