package services

import (
	"errors"
	"testing"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

func TestEnsureCapacityRejectsFullAccount(t *testing.T) {
	hr := entities.User{Email: "hr@acme.io", Role: entities.RoleHR, PackageLimit: 5, CurrentEmployees: 5}
	if err := EnsureCapacity(hr); !errors.Is(err, domainerrors.ErrCapacityExceeded) {
		t.Fatalf("expected capacity exceeded, got %v", err)
	}

	hr.CurrentEmployees = 4
	if err := EnsureCapacity(hr); err != nil {
		t.Fatalf("expected free slot, got %v", err)
	}
}

func TestEnsureCapacityUsesDefaultLimit(t *testing.T) {
	hr := entities.User{Email: "hr@acme.io", Role: entities.RoleHR, CurrentEmployees: entities.DefaultPackageLimit}
	if err := EnsureCapacity(hr); !errors.Is(err, domainerrors.ErrCapacityExceeded) {
		t.Fatalf("expected default limit to apply, got %v", err)
	}
}

func TestEnsureCapacityRejectsEmployees(t *testing.T) {
	employee := entities.User{Email: "e@acme.io", Role: entities.RoleEmployee}
	if err := EnsureCapacity(employee); !errors.Is(err, domainerrors.ErrNotHRManager) {
		t.Fatalf("expected not hr manager, got %v", err)
	}
}

func TestUpgradedPackageLimit(t *testing.T) {
	limit, err := UpgradedPackageLimit(entities.User{Role: entities.RoleHR, PackageLimit: 5}, 10)
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if limit != 15 {
		t.Fatalf("expected 15, got %d", limit)
	}
	if _, err := UpgradedPackageLimit(entities.User{Role: entities.RoleHR}, 0); !errors.Is(err, domainerrors.ErrInvalidSlotCount) {
		t.Fatalf("expected invalid slot count, got %v", err)
	}
}

func TestReleasedEmployeeCountNeverNegative(t *testing.T) {
	if got := ReleasedEmployeeCount(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ReleasedEmployeeCount(3); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
