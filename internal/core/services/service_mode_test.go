package services_test

import (
	"errors"
	"testing"

	"github.com/highcard-dev/companion/internal/core/services"
)

func TestResolveServiceMode_Explicit(t *testing.T) {
	restore := services.SetParentProcessName(func() (string, error) { return "systemd", nil })
	defer restore()

	tests := []struct {
		setting string
		want    bool
	}{
		{"true", true},
		{"TRUE", true},
		{" false ", false},
		{"false", false},
	}

	for _, tt := range tests {
		got, err := services.ResolveServiceMode(tt.setting)
		if err != nil {
			t.Fatalf("ResolveServiceMode(%q) unexpected error: %v", tt.setting, err)
		}
		if got != tt.want {
			t.Errorf("ResolveServiceMode(%q) = %v, want %v", tt.setting, got, tt.want)
		}
	}

	if _, err := services.ResolveServiceMode("sometimes"); err == nil {
		t.Error("Expected error for invalid service mode")
	}
}

func TestDetectServiceMode(t *testing.T) {
	tests := []struct {
		name         string
		invocationID string
		xpcService   string
		parent       string
		parentErr    error
		want         bool
	}{
		{"systemd invocation id", "abc123", "", "bash", nil, true},
		{"launchd service", "", "com.example.companion", "bash", nil, true},
		{"launchd placeholder", "", "0", "bash", nil, false},
		{"supervisor parent", "", "", "supervisord", nil, true},
		{"interactive shell", "", "", "zsh", nil, false},
		{"parent lookup fails", "", "", "", errors.New("no such process"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("INVOCATION_ID", tt.invocationID)
			t.Setenv("XPC_SERVICE_NAME", tt.xpcService)
			restore := services.SetParentProcessName(func() (string, error) { return tt.parent, tt.parentErr })
			defer restore()

			if got := services.DetectServiceMode(); got != tt.want {
				t.Errorf("DetectServiceMode() = %v, want %v", got, tt.want)
			}

			auto, err := services.ResolveServiceMode("auto")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if auto != tt.want {
				t.Errorf("ResolveServiceMode(auto) = %v, want %v", auto, tt.want)
			}
		})
	}
}
