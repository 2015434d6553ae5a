package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nozzle/rng"
	"github.com/nozzle/rng/internal/parallel"
	"github.com/nozzle/rng/randomsource"
	"github.com/nozzle/rng/source64"
)

func runLines(t *testing.T, args ...string) []string {
	t.Helper()
	var out bytes.Buffer
	if err := run(args, &out, io.Discard); err != nil {
		t.Fatalf("run(%v): %v", args, err)
	}
	return strings.Fields(out.String())
}

func TestSeededOutput(t *testing.T) {
	got := runLines(t, "-algorithm", "SPLIT_MIX_64", "-seed", "2a", "-n", "3", "-format", "uint")
	ref := source64.NewSplitMix64(42)
	var want []string
	for range 3 {
		want = append(want, fmt.Sprint(ref.Uint64()))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	hex := runLines(t, "-algorithm", "MT", "-seed", "01000000", "-n", "2")
	for _, h := range hex {
		if len(h) != 8 {
			t.Errorf("32-bit hex value %q is not 8 digits", h)
		}
	}
}

func TestBytesFormat(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-algorithm", "MT", "-seed", "05", "-n", "3", "-format", "bytes"}, &out, io.Discard); err != nil {
		t.Fatal(err)
	}
	if got := out.Len(); got != 12 {
		t.Errorf("%d bytes, want 12", got)
	}
}

func TestList(t *testing.T) {
	text := strings.Join(runLines(t, "-list"), " ")
	for _, name := range randomsource.Names() {
		if !strings.Contains(text, name) {
			t.Errorf("-list is missing %s", name)
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state")
	base := []string{"-algorithm", "L128_X256_MIX", "-seed", "0102030405"}

	all := runLines(t, append(base, "-n", "10")...)
	head := runLines(t, append(base, "-n", "4", "-state-out", file)...)
	tail := runLines(t, "-state-in", file, "-n", "6")

	if diff := cmp.Diff(all, append(head, tail...)); diff != "" {
		t.Errorf("restored output differs (-want +got):\n%s", diff)
	}
}

func TestJumpedWorkers(t *testing.T) {
	seed := []byte{9, 8, 7}
	got := runLines(t, "-algorithm", "XO_SHI_RO_256_PP", "-seed", "090807", "-n", "8", "-workers", "4", "-jumps", "1")

	g, err := randomsource.Create("XO_SHI_RO_256_PP", seed)
	if err != nil {
		t.Fatal(err)
	}
	j := g.(rng.Jumpable)
	j.Jump()
	var want []string
	for range 4 {
		c := j.Jump()
		want = append(want, fmt.Sprintf("%016x", c.Uint64()), fmt.Sprintf("%016x", c.Uint64()))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWorkersPerCPU(t *testing.T) {
	base := []string{"-algorithm", "XO_SHI_RO_128_SS", "-seed", "0102", "-n", "64"}
	perCPU := runLines(t, append(base, "-workers", "0")...)
	explicit := runLines(t, append(base, "-workers", strconv.Itoa(parallel.NumWorkers()))...)
	if diff := cmp.Diff(explicit, perCPU); diff != "" {
		t.Errorf("-workers 0 differs from one worker per CPU:\n%s", diff)
	}
}

func TestSplitOutput(t *testing.T) {
	args := []string{"-algorithm", "L64_X128_MIX", "-seed", "11", "-split-seed", "7", "-n", "4"}
	a, b := runLines(t, args...), runLines(t, args...)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("split output not reproducible:\n%s", diff)
	}
	plain := runLines(t, "-algorithm", "L64_X128_MIX", "-seed", "11", "-n", "4")
	if cmp.Equal(a, plain) {
		t.Error("split child repeats its parent")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown algorithm", []string{"-algorithm", "NOPE", "-seed", "01"}, randomsource.ErrUnknownAlgorithm},
		{"jump unsupported", []string{"-algorithm", "SPLIT_MIX_64", "-seed", "01", "-jumps", "1"}, rng.ErrInvalidArgument},
		{"split unsupported", []string{"-algorithm", "XO_SHI_RO_128_PP", "-seed", "01", "-split-seed", "1"}, rng.ErrInvalidArgument},
		{"distance beyond period", []string{"-algorithm", "XO_RO_SHI_RO_64_S", "-seed", "01", "-distance", "1e30"}, rng.ErrInvalidArgument},
		{"parallel unsupported", []string{"-algorithm", "SFC_64", "-seed", "01", "-workers", "2"}, rng.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, io.Discard, io.Discard)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	for _, args := range [][]string{
		{"-format", "octal"},
		{"-n", "-1"},
		{"-workers", "-1"},
		{"-seed", "xyz"},
		{"-split-seed", "abc", "-algorithm", "L64_X128_MIX", "-seed", "01"},
	} {
		if err := run(args, io.Discard, io.Discard); err == nil {
			t.Errorf("run(%v) succeeded", args)
		}
	}
}
