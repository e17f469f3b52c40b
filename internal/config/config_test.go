package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.NBAStats.BaseURL != defaultStatsBaseURL {
		t.Fatalf("expected default stats base url %s, got %s", defaultStatsBaseURL, cfg.NBAStats.BaseURL)
	}
	if cfg.NBAStats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultStatsTimeout, cfg.NBAStats.Timeout)
	}
	if cfg.Search.ShotSeasonLimit != 5 || cfg.Search.ShotSeasonBudget != 8 {
		t.Fatalf("unexpected season caps %+v", cfg.Search)
	}
	if cfg.Search.SessionCapacity != defaultSessionCapacity || cfg.Search.RosterRetryInterval != defaultRosterRetryInterval {
		t.Fatalf("unexpected session and roster defaults %+v", cfg.Search)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "nbastats")
	t.Setenv(envStatsBaseURL, "http://example.com/stats")
	t.Setenv(envStatsTimeout, "3s")
	t.Setenv(envStatsRate, "0.5")
	t.Setenv(envStatsBurst, "1")
	t.Setenv(envRosterSeason, "2023-24")
	t.Setenv(envShotSeasonLimit, "3")
	t.Setenv(envShotFetchWorkers, "2")
	t.Setenv(envSessionCapacity, "50")
	t.Setenv(envRosterRetryInterval, "2s")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "nbastats" {
		t.Fatalf("expected provider nbastats, got %s", cfg.Provider)
	}
	if cfg.NBAStats.BaseURL != "http://example.com/stats" {
		t.Fatalf("expected base url override, got %s", cfg.NBAStats.BaseURL)
	}
	if cfg.NBAStats.Timeout != 3*time.Second {
		t.Fatalf("expected timeout override, got %s", cfg.NBAStats.Timeout)
	}
	if cfg.NBAStats.RatePerSec != 0.5 || cfg.NBAStats.Burst != 1 {
		t.Fatalf("expected rate overrides, got %+v", cfg.NBAStats)
	}
	if cfg.NBAStats.RosterSeason != "2023-24" {
		t.Fatalf("expected roster season override, got %s", cfg.NBAStats.RosterSeason)
	}
	if cfg.Search.ShotSeasonLimit != 3 || cfg.Search.ShotFetchWorkers != 2 {
		t.Fatalf("expected search overrides, got %+v", cfg.Search)
	}
	if cfg.Search.SessionCapacity != 50 || cfg.Search.RosterRetryInterval != 2*time.Second {
		t.Fatalf("expected session and retry overrides, got %+v", cfg.Search)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv(envStatsTimeout, "not-a-duration")
	t.Setenv(envStatsRate, "-1")
	t.Setenv(envShotSeasonLimit, "zero")

	cfg := Load()

	if cfg.NBAStats.Timeout != defaultStatsTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.NBAStats.Timeout)
	}
	if cfg.NBAStats.RatePerSec != defaultStatsRate {
		t.Fatalf("expected default rate on negative value, got %v", cfg.NBAStats.RatePerSec)
	}
	if cfg.Search.ShotSeasonLimit != defaultShotSeasonLimit {
		t.Fatalf("expected default limit on invalid value, got %d", cfg.Search.ShotSeasonLimit)
	}
}

func TestLoadDotEnvSeedsUnsetVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("DOTENV_ONLY_KEY=from-file\nDOTENV_SET_KEY=from-file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("DOTENV_SET_KEY", "from-env")
	t.Setenv("DOTENV_ONLY_KEY", "")
	os.Unsetenv("DOTENV_ONLY_KEY")

	if !loadDotEnv(path) {
		t.Fatalf("expected env file to load")
	}
	if got := os.Getenv("DOTENV_ONLY_KEY"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("DOTENV_SET_KEY"); got != "from-env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if loadDotEnv(filepath.Join(t.TempDir(), "missing.env")) {
		t.Fatalf("expected missing file to report false")
	}
}
