package settlement

import (
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--host=127.0.0.1",
		"--port=50051",
		"--workerId=abc",
		"--functions-grpc-max-message-length=134217728",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Host = %q, want %q", cfg.Host, "127.0.0.1")
	}
	if cfg.Port != 50051 {
		t.Errorf("Port = %d, want %d", cfg.Port, 50051)
	}
	if cfg.MaxMessageLength != 134217728 {
		t.Errorf("MaxMessageLength = %d, want %d", cfg.MaxMessageLength, 134217728)
	}
	if cfg.Addr() != "127.0.0.1:50051" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "127.0.0.1:50051")
	}
}

func TestParseArgsSpaceSeparated(t *testing.T) {
	cfg, err := ParseArgs([]string{
		"--host", "localhost",
		"--port", "7071",
		"--functions-grpc-max-message-length", "1048576",
	})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "localhost" || cfg.Port != 7071 || cfg.MaxMessageLength != 1048576 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestParseArgsMissing(t *testing.T) {
	_, err := ParseArgs([]string{"--port=50051"})
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"'host'", "'functions-grpc-max-message-length'"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	if strings.Contains(err.Error(), "'port'") {
		t.Errorf("error %q mentions port, which was given", err)
	}
}

func TestParseArgsInvalidPort(t *testing.T) {
	_, err := ParseArgs([]string{
		"--host=localhost",
		"--port=nope",
		"--functions-grpc-max-message-length=1024",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
