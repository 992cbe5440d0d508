package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfigProfiles(t *testing.T) {
	rt := defaultConfig(ProfileRuntime)
	if rt.Level != zerolog.InfoLevel || !rt.Timestamp {
		t.Fatalf("runtime profile: got %+v", rt)
	}
	test := defaultConfig(ProfileTest)
	if test.Level != zerolog.DebugLevel || test.Timestamp {
		t.Fatalf("test profile: got %+v", test)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogTimestamp, "true")
	t.Setenv(EnvLogNoColor, "true")
	t.Setenv(EnvLogBypass, "false")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	if cfg.Level != zerolog.WarnLevel {
		t.Fatalf("expected warn level override, got %v", cfg.Level)
	}
	if !cfg.Timestamp || !cfg.NoColor || cfg.Bypass {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvLogLevel, "not-a-level")
	t.Setenv(EnvLogTimestamp, "not-a-bool")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	if cfg.Level != zerolog.InfoLevel || !cfg.Timestamp {
		t.Fatalf("garbage overrides should be ignored, got %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		if !ok || got != want {
			t.Fatalf("parseLevel(%q) = %v,%v want %v", raw, got, ok, want)
		}
	}
	if _, ok := parseLevel(""); ok {
		t.Fatalf("empty string should not match")
	}
	if _, ok := parseLevel("bogus"); ok {
		t.Fatalf("bogus string should not match")
	}
}

func TestConfigureDoesNotPanic(t *testing.T) {
	t.Setenv(EnvLogBypass, "true")
	Configure(ProfileTest)
	// second call is a no-op under the sync.Once gate; just confirm it
	// doesn't panic or block.
	Configure(ProfileRuntime)
}
