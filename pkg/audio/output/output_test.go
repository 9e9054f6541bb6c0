// ABOUTME: Audio output backend tests
// ABOUTME: Verifies Backend implementations, lookup and the oto pull reader
package output

import (
	"testing"

	"github.com/tinyaudio/tinyaudio-go/pkg/audio"
)

func TestBackendsImplementInterface(t *testing.T) {
	var _ Backend = (*Malgo)(nil)
	var _ Backend = (*Oto)(nil)
	var _ Backend = (*PortAudio)(nil)
}

func TestDefaultIsMalgo(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default returned nil")
	}
	if b.Name() != "malgo" {
		t.Errorf("Default().Name() = %q, want %q", b.Name(), "malgo")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "malgo", false},
		{"malgo", "malgo", false},
		{"oto", "oto", false},
		{"portaudio", "portaudio", false},
		{"pulse", "", true},
	}

	for _, tt := range tests {
		b, err := Lookup(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Lookup(%q) succeeded, want error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", tt.name, err)
			continue
		}
		if b.Name() != tt.want {
			t.Errorf("Lookup(%q).Name() = %q, want %q", tt.name, b.Name(), tt.want)
		}
	}
}

func TestRenderReaderServesWholePeriods(t *testing.T) {
	// Render successive integer-ish sample values so byte continuity across
	// differently sized reads is checkable.
	next := float32(0)
	r := &renderReader{
		channels: 2,
		frames:   4,
		render: func(out []float32) {
			for i := range out {
				out[i] = next
				next += 1.0 / 128
			}
		},
	}

	// One period is 4 frames * 2 channels * 2 bytes = 16 bytes. Read it
	// through mismatched chunk sizes.
	var got []byte
	for _, size := range []int{5, 3, 16, 8} {
		p := make([]byte, size)
		n, err := r.Read(p)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		got = append(got, p[:n]...)
	}

	rendered := make([]float32, len(got)/2)
	for i := range rendered {
		rendered[i] = float32(i) / 128
	}
	want := make([]byte, len(got))
	audio.WriteInt16LE(want, rendered)

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#02x, want %#02x", i, got[i], want[i])
		}
	}
}

func TestRenderReaderShortReadsDoNotSkipSamples(t *testing.T) {
	calls := 0
	r := &renderReader{
		channels: 1,
		frames:   2,
		render: func(out []float32) {
			calls++
			for i := range out {
				out[i] = 1.0
			}
		},
	}

	// Period is 4 bytes; two 2-byte reads must consume one render call.
	for i := 0; i < 2; i++ {
		p := make([]byte, 2)
		if _, err := r.Read(p); err != nil {
			t.Fatalf("Read failed: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("render called %d times, want 1", calls)
	}
}
