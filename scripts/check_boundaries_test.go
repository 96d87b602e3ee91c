package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGoFile(t *testing.T, root string, rel string, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestCollectViolationsFlagsLayerLeaks(t *testing.T) {
	root := t.TempDir()
	writeGoFile(t, root, "asset-management/asset-service/application/commands/ok.go",
		"package commands\nimport (\n\"context\"\n_ \"assetverse/contexts/asset-management/asset-service/ports\"\n_ \"assetverse/contracts/gen/events/v1\"\n)\nvar _ context.Context\n")
	writeGoFile(t, root, "asset-management/asset-service/application/commands/bad.go",
		"package commands\nimport _ \"assetverse/contexts/asset-management/asset-service/adapters/memory\"\n")
	writeGoFile(t, root, "asset-management/asset-service/domain/entities/bad.go",
		"package entities\nimport _ \"gorm.io/gorm\"\n")
	writeGoFile(t, root, "asset-management/asset-service/ports/bad.go",
		"package ports\nimport _ \"assetverse/internal/platform/db\"\n")
	writeGoFile(t, root, "asset-management/asset-service/transport/http/bad.go",
		"package httptransport\nimport _ \"github.com/gin-gonic/gin\"\n")

	violations := collectViolations(root)
	files := map[string]int{}
	for _, v := range violations {
		files[v.File]++
	}
	if files["contexts/asset-management/asset-service/application/commands/ok.go"] != 0 {
		t.Fatalf("expected allowed imports to pass, got %+v", violations)
	}
	for _, rel := range []string{
		"contexts/asset-management/asset-service/application/commands/bad.go",
		"contexts/asset-management/asset-service/domain/entities/bad.go",
		"contexts/asset-management/asset-service/ports/bad.go",
		"contexts/asset-management/asset-service/transport/http/bad.go",
	} {
		if files[rel] == 0 {
			t.Fatalf("expected violation for %s, got %+v", rel, violations)
		}
	}
}

func TestIsStdlib(t *testing.T) {
	if !isStdlib("net/http") || isStdlib("github.com/gin-gonic/gin") || isStdlib("assetverse/internal/platform/db") {
		t.Fatalf("unexpected stdlib classification")
	}
}
