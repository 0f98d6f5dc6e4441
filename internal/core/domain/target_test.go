package domain_test

import (
	"errors"
	"testing"

	"go.trai.ch/retro/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseTarget_BytecodeVersions(t *testing.T) {
	tests := []struct {
		target string
		want   int
	}{
		{"1.5", 49},
		{"1.6", 50},
		{"1.7", 51},
		{"1.8", 52},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			target, err := domain.ParseTarget(tt.target)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := target.BytecodeVersion(); got != tt.want {
				t.Errorf("BytecodeVersion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseTarget_Unrecognized(t *testing.T) {
	for _, raw := range []string{"1.4", "1.9", "8", "", "1.8 "} {
		t.Run(raw, func(t *testing.T) {
			_, err := domain.ParseTarget(raw)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			zErr, ok := err.(*zerr.Error)
			if !ok {
				t.Fatalf("expected *zerr.Error, got %T", err)
			}
			want := "Unrecognized target '" + raw + "'. Possible values are 1.5, 1.6, 1.7, 1.8"
			if zErr.Message() != want {
				t.Errorf("Message() = %q, want %q", zErr.Message(), want)
			}
			if got, _ := zErr.Metadata()["target"].(string); got != raw {
				t.Errorf("expected metadata target=%q, got %v", raw, zErr.Metadata()["target"])
			}
			if !errors.Is(err, domain.ErrUnrecognizedTarget) {
				t.Errorf("expected %v to match ErrUnrecognizedTarget", err)
			}
		})
	}
}

func TestTargets_Sorted(t *testing.T) {
	got := domain.Targets()
	want := []domain.Target{"1.5", "1.6", "1.7", "1.8"}
	if len(got) != len(want) {
		t.Fatalf("Targets() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Targets()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
