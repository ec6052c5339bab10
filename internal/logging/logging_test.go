package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	var tests = []struct {
		value string
		want  slog.Level
	}{
		{"trace", LevelTrace},
		{"T", LevelTrace},
		{"deb", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"e", slog.LevelError},
		{"fatal", LevelFatal},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseLevel(tt.value)
			if err != nil {
				t.Fatalf("got %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	for _, value := range []string{"", "verbose", "debugging"} {
		if _, err := ParseLevel(value); err == nil {
			t.Errorf("ParseLevel(%q): got nil, want an error", value)
		}
	}
}
