package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "trace", want: TraceLevel},
		{in: "debug", want: DebugLevel},
		{in: "info", want: InfoLevel},
		{in: "", want: InfoLevel},
		{in: "WARN", want: WarnLevel},
		{in: "warning", want: WarnLevel},
		{in: " error ", want: ErrorLevel},
		{in: "fatal", want: FatalLevel},
		{in: "panic", want: PanicLevel},
		{in: "verbose", want: InfoLevel, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetLevel(WarnLevel)
	defer SetLevel(InfoLevel)

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warn %d", 1)
	Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("below-threshold messages leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] visible warn 1") {
		t.Fatalf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR] visible error") {
		t.Fatalf("error message missing: %q", out)
	}
}
