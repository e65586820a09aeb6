package common

import (
	"os"
	"strings"
	"testing"
)

func TestNewLoggerFromEnv(t *testing.T) {
	if err := os.Setenv(LogLevelEnv, "debug"); err != nil {
		t.Fatal(err)
	}
	defer os.Unsetenv(LogLevelEnv)

	l := NewLoggerFromEnv("test")
	if l.lvl != LevelDebug {
		t.Errorf("logger level = %d, want %d", l.lvl, LevelDebug)
	}

	l.Errorf("error")
	l.Warnf("warn")
	l.Infof("info")
	l.Debugf("debug")
}

func TestLevelLoggerFiltering(t *testing.T) {
	var lines []string
	l := NewLogger("test", LevelInfo, func(v ...interface{}) {
		b := &strings.Builder{}
		for _, s := range v {
			b.WriteString(s.(string))
		}
		lines = append(lines, b.String())
	})

	l.Debugf("dropped")
	l.Infof("kept")
	l.Errorf("kept too")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "INFO") {
		t.Errorf("first line = %q, want INFO", lines[0])
	}
	if !strings.Contains(lines[1], "ERROR") {
		t.Errorf("second line = %q, want ERROR", lines[1])
	}
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	l.Errorf("must not panic")
	l.Debugf("must not panic")
}
