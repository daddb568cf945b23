package config

import (
	"testing"
	"time"

	"checkin-tracker/internal/domain/scanner"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.LocationFixWait != 0 {
		t.Errorf("LocationFixWait = %s, want 0", cfg.LocationFixWait)
	}
	if cfg.StrictEmptyName {
		t.Error("StrictEmptyName should default to false")
	}
	if cfg.ScanTimeout != 60*time.Second {
		t.Errorf("ScanTimeout = %s, want 60s", cfg.ScanTimeout)
	}
	if cfg.MsgUnconfigured != scanner.DefaultMessages.Unconfigured {
		t.Errorf("MsgUnconfigured = %q, want default", cfg.MsgUnconfigured)
	}
	if cfg.KafkaTopic != "checkins" {
		t.Errorf("KafkaTopic = %q, want checkins", cfg.KafkaTopic)
	}
	if cfg.KafkaBrokersList() != nil {
		t.Errorf("KafkaBrokersList = %v, want nil", cfg.KafkaBrokersList())
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOCATION_FIX_WAIT", "750ms")
	t.Setenv("STRICT_EMPTY_NAME", "true")
	t.Setenv("MSG_UNCONFIGURED", "has not been configured")
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want :9090", cfg.HTTPAddr)
	}
	if cfg.LocationFixWait != 750*time.Millisecond {
		t.Errorf("LocationFixWait = %s, want 750ms", cfg.LocationFixWait)
	}
	if !cfg.StrictEmptyName {
		t.Error("StrictEmptyName should be true")
	}

	brokers := cfg.KafkaBrokersList()
	if len(brokers) != 2 || brokers[0] != "k1:9092" || brokers[1] != "k2:9092" {
		t.Errorf("KafkaBrokersList = %v", brokers)
	}

	sc := cfg.ScanConfig()
	if sc.Messages.Unconfigured != "has not been configured" {
		t.Errorf("scan Unconfigured message = %q", sc.Messages.Unconfigured)
	}
	if sc.Messages.Timeout != scanner.DefaultMessages.Timeout {
		t.Errorf("scan Timeout message should keep default, got %q", sc.Messages.Timeout)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"negative fix wait", map[string]string{"LOCATION_FIX_WAIT": "-1s"}},
		{"negative scan timeout", map[string]string{"SCAN_TIMEOUT": "-5s"}},
		{"brokers without topic", map[string]string{"KAFKA_BROKERS": "k1:9092", "KAFKA_TOPIC": " "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if err == nil {
				t.Fatal("Load should return error")
			}
			if cfg != nil {
				t.Error("Load should return nil config on error")
			}
		})
	}
}
