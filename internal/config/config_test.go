package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `x-other=1, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_SERVICE_NAME", "APP_LOG_LEVEL", "APP_TIMEZONE", "APP_OUTPUT_FORMAT",
		"OPERATION_TIMEOUT", "STORAGE_DRIVER", "DB_URL", "DB_DISABLE_PREPARED_BINARY_RESULT",
		"DB_MAX_OPEN_CONNS", "DB_CONN_MAX_LIFETIME", "SEED_DEMO_DATA", "UPTRACE_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.ServiceName != "football-registry" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
	if cfg.Location != time.Local {
		t.Fatalf("expected local time zone by default, got %s", cfg.Location)
	}
	if cfg.OutputFormat != OutputFormatTable {
		t.Fatalf("unexpected OutputFormat: %q", cfg.OutputFormat)
	}
	if cfg.OperationTimeout != 10*time.Second {
		t.Fatalf("unexpected OperationTimeout: %s", cfg.OperationTimeout)
	}
	if cfg.StorageDriver != StorageDriverPostgres {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.DBURL == "" {
		t.Fatalf("expected default DB_URL")
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=true by default")
	}
	if cfg.DBMaxOpenConns != 4 {
		t.Fatalf("unexpected DBMaxOpenConns: %d", cfg.DBMaxOpenConns)
	}
	if cfg.DBConnMaxLifetime != 30*time.Minute {
		t.Fatalf("unexpected DBConnMaxLifetime: %s", cfg.DBConnMaxLifetime)
	}
	if cfg.SeedDemoData {
		t.Fatalf("expected SeedDemoData=false for postgres by default")
	}
}

func TestLoad_MemoryDriverSeedsByDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("STORAGE_DRIVER", " Memory ")
	t.Setenv("SEED_DEMO_DATA", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageDriverMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if !cfg.SeedDemoData {
		t.Fatalf("expected SeedDemoData=true for memory by default")
	}

	t.Run("explicit opt out", func(t *testing.T) {
		t.Setenv("SEED_DEMO_DATA", "false")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SeedDemoData {
			t.Fatalf("expected SeedDemoData=false")
		}
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cases := []struct {
		key   string
		value string
	}{
		{"STORAGE_DRIVER", "mysql"},
		{"APP_OUTPUT_FORMAT", "xml"},
		{"APP_TIMEZONE", "Mars/Olympus"},
		{"OPERATION_TIMEOUT", "soon"},
		{"OPERATION_TIMEOUT", "-1s"},
		{"DB_MAX_OPEN_CONNS", "0"},
		{"DB_MAX_OPEN_CONNS", "many"},
		{"DB_CONN_MAX_LIFETIME", "bad"},
		{"DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool"},
		{"SEED_DEMO_DATA", "maybe"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_TimezoneAndOutputFormat(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("APP_OUTPUT_FORMAT", "JSON")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Location.String() != "UTC" {
		t.Fatalf("unexpected Location: %s", cfg.Location)
	}
	if cfg.OutputFormat != OutputFormatJSON {
		t.Fatalf("unexpected OutputFormat: %q", cfg.OutputFormat)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		" INFO ":  "info",
		"error":   "error",
		"warn":    "warn",
		"verbose": "warn",
	}
	for in, want := range cases {
		if got := parseLogLevel(in).String(); got != want {
			t.Fatalf("parseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
