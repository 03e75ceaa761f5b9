package core

import (
	"bytes"
	"log"
	"runtime"
	"strings"
	"testing"
)

func TestApplyComputeOptions(t *testing.T) {
	cfg := ApplyComputeOptions()
	if cfg.Workers != 1 {
		t.Fatalf("default Workers = %d, want 1", cfg.Workers)
	}
	if _, ok := cfg.Logger.(NopLogger); !ok {
		t.Fatalf("default Logger = %T, want NopLogger", cfg.Logger)
	}

	cfg = ApplyComputeOptions(WithWorkers(0), WithLogger(nil), nil)
	if cfg.Workers != runtime.GOMAXPROCS(0) {
		t.Fatalf("Workers = %d, want GOMAXPROCS", cfg.Workers)
	}
	if cfg.Logger == nil {
		t.Fatal("nil logger must be ignored")
	}
}

func TestDefaultLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger("optix", false, log.New(&buf, "", 0))

	l.Debugf("hidden %d", 1)
	l.Infof("hello %s", "world")
	l.Warnf("careful")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written while disabled: %q", out)
	}
	if !strings.Contains(out, "[optix] INFO: hello world") || !strings.Contains(out, "[optix] WARN: careful") {
		t.Fatalf("unexpected output %q", out)
	}

	l.SetDebug(true)
	l.Debugf("shown")
	if !strings.Contains(buf.String(), "DEBUG: shown") {
		t.Fatalf("debug line missing: %q", buf.String())
	}
}
