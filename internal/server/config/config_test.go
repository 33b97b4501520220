package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"authkeeper-server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddrGRPC != ":50051" {
		t.Fatalf("unexpected default address: %s", cfg.EndpointAddrGRPC)
	}
	if cfg.TokenValidityDuration != time.Minute {
		t.Fatalf("unexpected default token validity: %v", cfg.TokenValidityDuration)
	}
	if cfg.BcryptCost != 10 {
		t.Fatalf("unexpected default bcrypt cost: %d", cfg.BcryptCost)
	}
}

func TestParseFlags_OverridesDefaults(t *testing.T) {
	setArgs(t, "-a", ":6001", "-s", "flag-secret", "-t", "90", "-w", "12")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	if cfg.EndpointAddrGRPC != ":6001" {
		t.Fatalf("address not overridden: %s", cfg.EndpointAddrGRPC)
	}
	if cfg.SecretKey != "flag-secret" {
		t.Fatalf("secret not overridden: %s", cfg.SecretKey)
	}
	if cfg.TokenValidityDuration != 90*time.Second {
		t.Fatalf("token validity not overridden: %v", cfg.TokenValidityDuration)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("bcrypt cost not overridden: %d", cfg.BcryptCost)
	}
}

func TestParseJSON_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"endpoint_addr_grpc": ":7001",
		"secret_key": "json-secret",
		"token_validity_duration": "2m",
		"bcrypt_cost": 11
	}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	setArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)

	if cfg.EndpointAddrGRPC != ":7001" {
		t.Fatalf("address not overlaid: %s", cfg.EndpointAddrGRPC)
	}
	if cfg.SecretKey != "json-secret" {
		t.Fatalf("secret not overlaid: %s", cfg.SecretKey)
	}
	if cfg.TokenValidityDuration != 2*time.Minute {
		t.Fatalf("token validity not overlaid: %v", cfg.TokenValidityDuration)
	}
	if cfg.BcryptCost != 11 {
		t.Fatalf("bcrypt cost not overlaid: %d", cfg.BcryptCost)
	}
	// DSN untouched by a file that does not mention it.
	if cfg.DatabaseDSN == "" {
		t.Fatal("DSN default lost during overlay")
	}
}

func TestParseJSON_NoFileIsNoop(t *testing.T) {
	setArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	before := *cfg
	parseJSON(cfg)

	if *cfg != before {
		t.Fatalf("config changed without a file: %+v", cfg)
	}
}
