package source64

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPcgAndSFCReferenceOutputs(t *testing.T) {
	pcg := NewPcgRxsMXs64(0x012de1babb3c4104, 0xc8161b4202294965)
	if diff := cmp.Diff([]uint64{0xc147f2291fa40ccf, 0x8edbcbf8a5f49877, 0x61e05a1d5213f0b4}, outputs(pcg, 3)); diff != "" {
		t.Errorf("PcgRxsMXs64 (-want +got):\n%s", diff)
	}

	sfc := NewSFC64(0x012de1babb3c4104, 0xc8161b4202294965, 0xb5ad4eceda1ce2a9)
	if diff := cmp.Diff([]uint64{0x383be11f844db7f4, 0x563e7e24056ad886, 0x959e56afde1c3f72}, outputs(sfc, 3)); diff != "" {
		t.Errorf("SFC64 (-want +got):\n%s", diff)
	}
}

func TestPcgAndSFCRestore(t *testing.T) {
	pcg := NewPcgRxsMXs64(5)
	pcg.Bool()
	s := pcg.SaveState()
	want := outputs(pcg, 4)
	other := NewPcgRxsMXs64(6)
	if err := other.RestoreState(s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, outputs(other, 4)); diff != "" {
		t.Errorf("PcgRxsMXs64 restore (-want +got):\n%s", diff)
	}

	sfc := NewSFC64(5)
	s = sfc.SaveState()
	want = outputs(sfc, 4)
	sfc2 := NewSFC64(6)
	if err := sfc2.RestoreState(s); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, outputs(sfc2, 4)); diff != "" {
		t.Errorf("SFC64 restore (-want +got):\n%s", diff)
	}

	if err := sfc2.RestoreState(pcg.SaveState()); err == nil {
		t.Error("SFC64 accepted a PCG state")
	}
}
