package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/bylines/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want \"text\"", cfg.Output.Format)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want \"json\"", cfg.Output.Format)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// Not overridden by local.yaml.
	if cfg.Telemetry.ServiceName != "bylines" {
		t.Errorf("Telemetry.ServiceName = %q, want \"bylines\" (from base)", cfg.Telemetry.ServiceName)
	}
	if cfg.Telemetry.Exporter != "stdout" {
		t.Errorf("Telemetry.Exporter = %q, want \"stdout\" (from base)", cfg.Telemetry.Exporter)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "base.yaml"), "log:\n  level: warn\n")
	writeFile(t, filepath.Join(dir, "ci.yaml"), "telemetry:\n  enabled: false\n")

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\" (from base)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\" (default)", cfg.Log.Format)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want \"text\" (default)", cfg.Output.Format)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LOG_LEVEL", "error")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want \"error\" (env override)", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrideOutputFormat(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_OUTPUT_FORMAT", "json")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want \"json\" (env override)", cfg.Output.Format)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_TELEMETRY_SERVICE_NAME", "bylines-batch")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Telemetry.ServiceName != "bylines-batch" {
		t.Errorf("Telemetry.ServiceName = %q, want \"bylines-batch\" (env override)", cfg.Telemetry.ServiceName)
	}
}

func TestLoad_InvalidEnvFailsValidation(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_OUTPUT_FORMAT", "xml")

	if _, err := config.Load("local"); err == nil {
		t.Fatal("Load returned nil error, want validation error for output.format=xml")
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "x/y"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestProfileFromEnv(t *testing.T) {
	t.Setenv(config.ProfileEnv, "")
	if got := config.ProfileFromEnv(); got != "local" {
		t.Errorf("ProfileFromEnv() = %q, want \"local\" when unset", got)
	}

	t.Setenv(config.ProfileEnv, "prod")
	if got := config.ProfileFromEnv(); got != "prod" {
		t.Errorf("ProfileFromEnv() = %q, want \"prod\"", got)
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_InvalidOutputFormat(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Output.Format = "yaml"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid output format")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_DisabledTelemetrySkipsChecks(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Exporter = "zipkin"
	cfg.Telemetry.ServiceName = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil when telemetry is disabled", err)
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Format = "xml"
	cfg.Output.Format = "csv"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() returned nil, want aggregated error")
	}
	for _, want := range []string{"log.format", "output.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, want it to mention %s", err.Error(), want)
		}
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

func validBaseConfig() *config.Config {
	return &config.Config{
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: config.TelemetryConfig{
			Enabled:     false,
			Exporter:    "stdout",
			ServiceName: "bylines",
		},
		Output: config.OutputConfig{
			Format: "text",
		},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
