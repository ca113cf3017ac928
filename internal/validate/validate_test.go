package validate

import (
	"errors"
	"testing"

	terrors "github.com/a137x/timelock/internal/errors"
)

func TestText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain text", "Hello drand", false},
		{"leading and trailing spaces kept", "  padded  ", false},
		{"single character", "x", false},
		{"unicode text", "こんにちは", false},
		{"empty string", "", true},
		{"spaces only", "   ", true},
		{"tabs and newlines only", "\t\n ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Text(tt.input)
			if tt.wantErr {
				if !errors.Is(err, terrors.ErrEmptyText) {
					t.Errorf("Text(%q) error = %v, want ErrEmptyText", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Text(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.input {
				t.Errorf("Text(%q) = %q, input must be returned untouched", tt.input, got)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{"smallest valid round", "1", 1, false},
		{"typical round", "1000000", 1000000, false},
		{"max uint64", "18446744073709551615", 18446744073709551615, false},
		{"surrounding whitespace accepted", " 42 ", 42, false},
		{"zero rejected", "0", 0, true},
		{"negative rejected", "-1", 0, true},
		{"explicit plus sign rejected", "+5", 0, true},
		{"fractional rejected", "10.5", 0, true},
		{"scientific notation rejected", "1e6", 0, true},
		{"hex rejected", "0x10", 0, true},
		{"overflow rejected", "18446744073709551616", 0, true},
		{"empty rejected", "", 0, true},
		{"text rejected", "soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Round(tt.input)
			if tt.wantErr {
				if !errors.Is(err, terrors.ErrInvalidRound) {
					t.Errorf("Round(%q) error = %v, want ErrInvalidRound", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Round(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Round(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
