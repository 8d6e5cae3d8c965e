// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindRandom, "random"},
		{KindRepeat, "repeat"},
		{KindLorem, "lorem"},
		{Kind(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"random", "repeat", "lorem"} {
		t.Run(name, func(t *testing.T) {
			kind, err := ParseKind(name)
			if err != nil {
				t.Fatalf("ParseKind(%q) failed: %v", name, err)
			}
			if kind.String() != name {
				t.Errorf("roundtrip: ParseKind(%q).String() = %q", name, kind.String())
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, err := ParseKind("fibonacci"); err == nil {
			t.Error("ParseKind(\"fibonacci\") should fail")
		}
	})
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"random ok", Spec{Kind: KindRandom, Size: 512}, false},
		{"random zero size", Spec{Kind: KindRandom, Size: 0}, true},
		{"random negative size", Spec{Kind: KindRandom, Size: -1}, true},
		{"repeat ok", Spec{Kind: KindRepeat, BlockSize: 8, Repeat: 64}, false},
		{"repeat zero block", Spec{Kind: KindRepeat, BlockSize: 0, Repeat: 64}, true},
		{"repeat zero count", Spec{Kind: KindRepeat, BlockSize: 8, Repeat: 0}, true},
		{"lorem ok", Spec{Kind: KindLorem, Size: 1024}, false},
		{"lorem zero size", Spec{Kind: KindLorem, Size: 0}, true},
		{"unknown kind", Spec{Kind: Kind(7), Size: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate(%+v) should fail", tt.spec)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(%+v) failed: %v", tt.spec, err)
			}
		})
	}
}

func TestRandomPayloadSize(t *testing.T) {
	spec := Spec{Kind: KindRandom, Size: 512}

	data, err := spec.Bytes(NewSource())
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(data) != 512 {
		t.Errorf("payload length = %d, want 512", len(data))
	}

	// Two independent draws from the OS source must differ. 512
	// random bytes colliding is not a realistic outcome.
	other, err := spec.Bytes(NewSource())
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if bytes.Equal(data, other) {
		t.Error("two random payloads are identical")
	}
}

func TestRepeatPayloadStructure(t *testing.T) {
	spec := Spec{Kind: KindRepeat, BlockSize: 8, Repeat: 64}

	data, err := spec.Bytes(NewSource())
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if len(data) != 512 {
		t.Fatalf("payload length = %d, want 512", len(data))
	}

	block := data[:8]
	for i := 1; i < 64; i++ {
		repetition := data[i*8 : (i+1)*8]
		if !bytes.Equal(repetition, block) {
			t.Fatalf("repetition %d = %x, want %x", i, repetition, block)
		}
	}
}

func TestLoremTruncatesToWholeRepetitions(t *testing.T) {
	spec := Spec{Kind: KindLorem, Size: 1024}

	data, err := spec.Bytes(NewSource())
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	sampleLength := len(loremSample)
	wantLength := (1024 / sampleLength) * sampleLength
	if len(data) != wantLength {
		t.Errorf("payload length = %d, want %d (whole repetitions of %d)", len(data), wantLength, sampleLength)
	}
	if len(data) == 0 || len(data) > 1024 {
		t.Errorf("payload length %d outside (0, 1024]", len(data))
	}
	if !bytes.Equal(data[:sampleLength], loremSample) {
		t.Error("payload does not start with the lorem sample")
	}
	if !bytes.Equal(data[len(data)-sampleLength:], loremSample) {
		t.Error("payload does not end on a whole sample repetition")
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	spec := Spec{Kind: KindRepeat, BlockSize: 16, Repeat: 31}

	first, err := spec.Bytes(NewSeededSource(42))
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	second, err := spec.Bytes(NewSeededSource(42))
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same seed produced different payloads")
	}

	other, err := spec.Bytes(NewSeededSource(43))
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}
	if bytes.Equal(first, other) {
		t.Error("different seeds produced identical payloads")
	}
}

func TestGenerateCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "payload")
	spec := Spec{Kind: KindRandom, Size: 64}

	if err := spec.Generate(path, NewSource()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated payload: %v", err)
	}
	if len(data) != 64 {
		t.Errorf("payload length = %d, want 64", len(data))
	}
}

func TestGenerateOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload")
	if err := os.WriteFile(path, bytes.Repeat([]byte{0xAA}, 4096), 0o644); err != nil {
		t.Fatalf("seeding existing file: %v", err)
	}

	spec := Spec{Kind: KindRandom, Size: 32}
	if err := spec.Generate(path, NewSource()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated payload: %v", err)
	}
	if len(data) != 32 {
		t.Errorf("payload length = %d after overwrite, want 32", len(data))
	}
}
