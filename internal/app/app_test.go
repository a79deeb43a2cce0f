package app

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-registry/internal/config"
	"github.com/riskibarqy/football-registry/internal/platform/logging"
)

func memoryConfig(seed bool) config.Config {
	return config.Config{
		AppEnv:           config.EnvDev,
		ServiceName:      "football-registry",
		Location:         time.UTC,
		OutputFormat:     config.OutputFormatTable,
		OperationTimeout: time.Second,
		StorageDriver:    config.StorageDriverMemory,
		SeedDemoData:     seed,
	}
}

func TestNew_MemoryWithSeed(t *testing.T) {
	var out bytes.Buffer
	a, err := New(t.Context(), memoryConfig(true), strings.NewReader("1\n2\n7\n4\n"), &out, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Fatalf("close app: %v", err)
		}
	})

	if err := a.Session.Run(t.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}
	for _, want := range []string{"Real Madrid", "Зенит", "Schalke 04"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in team listing, got:\n%s", want, out.String())
		}
	}
}

func TestNew_MemoryWithoutSeed(t *testing.T) {
	var out bytes.Buffer
	a, err := New(t.Context(), memoryConfig(false), strings.NewReader("1\n2\n7\n4\n"), &out, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	if err := a.Session.Run(t.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}
	if !strings.Contains(out.String(), "No data available.") {
		t.Fatalf("expected empty listing, got:\n%s", out.String())
	}
}

func TestNew_JSONOutput(t *testing.T) {
	cfg := memoryConfig(true)
	cfg.OutputFormat = config.OutputFormatJSON

	var out bytes.Buffer
	a, err := New(t.Context(), cfg, strings.NewReader("1\n3\n1\n7\n4\n"), &out, logging.NewNop())
	if err != nil {
		t.Fatalf("build app: %v", err)
	}
	defer a.Close()

	if err := a.Session.Run(t.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}
	if !strings.Contains(out.String(), `"name":"Real Madrid"`) {
		t.Fatalf("expected JSON record, got:\n%s", out.String())
	}
}
