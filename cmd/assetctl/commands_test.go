package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPackages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.yaml")
	body := "packages:\n  - id: gold\n    name: Gold\n    employee_limit: 50\n    price: 30\n    features: [\"SSO\"]\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	packages, err := loadPackages(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(packages) != 1 || packages[0].PackageID != "gold" || packages[0].EmployeeLimit != 50 {
		t.Fatalf("unexpected packages %+v", packages)
	}
}

func TestLoadPackagesRejectsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.yaml")
	if err := os.WriteFile(path, []byte("packages:\n  - id: broken\n    employee_limit: 0\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := loadPackages(path); err == nil {
		t.Fatalf("expected invalid package error")
	}
}

func TestSeedPackagesIntoMemoryStore(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ASSETVERSE_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"seed-packages"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("seed-packages: %v", err)
	}
	if !strings.Contains(out.String(), "upserted 3 packages into memory store") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestConfigMasksSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("ASSETVERSE_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config: %v", err)
	}
	if strings.Contains(out.String(), "super-secret") || !strings.Contains(out.String(), "********") {
		t.Fatalf("expected masked secret, got %q", out.String())
	}
}
