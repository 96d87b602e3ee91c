package bootstrap

import (
	"context"
	"log/slog"
	"testing"

	"assetverse/internal/platform/config"
)

func TestOpenStoreMemory(t *testing.T) {
	store, err := OpenStore(context.Background(), config.Config{StoreDriver: config.StoreMemory}, nil)
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	if err := store.Repo.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("memory migrate should be a no-op: %v", err)
	}
	packages, err := store.Repo.ListPackages(context.Background())
	if err != nil || len(packages) == 0 {
		t.Fatalf("expected default package catalog, got %d %v", len(packages), err)
	}
	if err := store.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenStoreRejectsIncompleteConfig(t *testing.T) {
	if _, err := OpenStore(context.Background(), config.Config{StoreDriver: config.StorePostgres}, nil); err == nil {
		t.Fatalf("expected missing dsn error")
	}
	if _, err := OpenStore(context.Background(), config.Config{StoreDriver: "sqlite"}, nil); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestBuildWorkerRequiresPersistentStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", config.StoreMemory)
	t.Setenv(config.ConfigFileEnv, "")
	if _, err := BuildWorker(context.Background()); err == nil {
		t.Fatalf("expected worker to refuse the memory store")
	}
}

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for input, want := range cases {
		if got := normalizeAddr(input); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if parseLevel("DEBUG") != slog.LevelDebug || parseLevel("warning") != slog.LevelWarn || parseLevel("nope") != slog.LevelInfo {
		t.Fatalf("unexpected level parsing")
	}
}
