package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func resetFlags() {
	verbose = false
	configPath = ""
	rulerWidth = 800
	rulerHeight = 40
	rulerRate = -1
	rulerSamples = 0
	rulerZoom = 0
	rulerScroll = 0
	rulerTrigger = ""
	rulerCursors = nil
	rulerDo = nil
	rulerTheme = ""
	rulerMinorLabels = false
	rulerNoTiming = false
	rulerAllTicks = false
	rulerOps = false
}

// TestRulerE2E runs the ruler command end-to-end
func TestRulerE2E(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
	}{
		{
			name: "microsecond ruler",
			args: []string{"ruler", "--rate", "1000000", "--samples", "100000", "--trigger", "250us"},
			wantContain: []string{
				"increments: major 100, minor 50, tick 10",
				"major trigger",
				"250.0",
				"0µs",
				"-200µs",
				"500µs",
			},
		},
		{
			name: "close cursors",
			args: []string{"ruler", "--rate", "1000000", "--samples", "100000", "--trigger", "250us",
				"--cursor", "A=100us", "--cursor", "B=105us"},
			wantContain: []string{
				"A: 100µs",
				"B: 105µs",
				"label+time (mirrored)",
				"(1 placement steps)",
			},
		},
		{
			name: "uncalibrated fit",
			args: []string{"ruler", "--no-timing", "--samples", "5000", "--trigger", "1000",
				"--do", "zoom-fit", "--cursor", "1500"},
			wantContain: []string{
				"unit 10,",
				"2,000",
				"3,000",
				"1: 1,500",
			},
		},
		{
			name: "all ticks and ops",
			args: []string{"ruler", "--rate", "1000000", "--samples", "100000", "--trigger", "250us",
				"--all-ticks", "--ops", "--minor-labels"},
			wantContain: []string{
				"minor",
				"plain",
				"50µs",
				"Primitives",
				"line",
			},
		},
		{
			name:    "bad trigger",
			args:    []string{"ruler", "--trigger", "12 parsecs"},
			wantErr: true,
		},
		{
			name:    "bad cursor",
			args:    []string{"ruler", "--cursor", "A=soon"},
			wantErr: true,
		},
		{
			name:    "unknown action",
			args:    []string{"ruler", "--do", "defragment"},
			wantErr: true,
		},
		{
			name:    "unbound action",
			args:    []string{"ruler", "--do", "capture"},
			wantErr: true,
		},
		{
			name:    "unknown theme",
			args:    []string{"ruler", "--theme", "Sepia"},
			wantErr: true,
		},
		{
			name: "actions",
			args: []string{"actions"},
			wantContain: []string{
				"zoom-in",
				"goto-trigger",
				"toggle-minor-labels",
				"unbound",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			var out, errOut bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&errOut)

			args := append(tt.args, "--config", filepath.Join(t.TempDir(), "config.toml"))
			rootCmd.SetArgs(args)
			err := rootCmd.Execute()

			output := out.String()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none\nOutput: %s", output)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v\nOutput: %s", err, output)
				return
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("Output missing expected string: %q\nGot:\n%s", want, output)
				}
			}
		})
	}
}

func TestParseCursor(t *testing.T) {
	tests := []struct {
		spec      string
		wantLabel string
		wantTime  float64
		wantErr   bool
	}{
		{"SCK=10us", "SCK", 10e-6, false},
		{" MOSI =2ms", "MOSI", 2e-3, false},
		{"-3.5ns", "", -3.5e-9, false},
		{"1500", "", 1500, false},
		{"A=", "", 0, true},
		{"A=later", "", 0, true},
	}
	for _, tt := range tests {
		label, got, err := parseCursor(tt.spec)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCursor(%q) succeeded", tt.spec)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCursor(%q): %v", tt.spec, err)
			continue
		}
		if label != tt.wantLabel || !approxEqual(got, tt.wantTime) {
			t.Errorf("parseCursor(%q) = %q, %v; want %q, %v", tt.spec, label, got, tt.wantLabel, tt.wantTime)
		}
	}
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	scale := b
	if scale < 0 {
		scale = -scale
	}
	return d <= 1e-12*scale+1e-18
}
