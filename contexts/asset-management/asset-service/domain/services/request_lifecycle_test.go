package services

import (
	"errors"
	"math"
	"testing"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from entities.RequestStatus
		to   entities.RequestStatus
		want bool
	}{
		{entities.RequestStatusPending, entities.RequestStatusApproved, true},
		{entities.RequestStatusPending, entities.RequestStatusRejected, true},
		{entities.RequestStatusPending, entities.RequestStatusReturned, false},
		{entities.RequestStatusApproved, entities.RequestStatusReturned, true},
		{entities.RequestStatusApproved, entities.RequestStatusRejected, false},
		{entities.RequestStatusRejected, entities.RequestStatusApproved, false},
		{entities.RequestStatusReturned, entities.RequestStatusApproved, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestEnsureCanReturn(t *testing.T) {
	request := entities.AssetRequest{
		RequesterEmail: "emp@acme.io",
		HREmail:        "hr@acme.io",
		Status:         entities.RequestStatusApproved,
	}
	laptop := entities.Asset{ProductType: entities.ProductTypeReturnable, ProductQuantity: 3, AvailableQuantity: 1}

	if err := EnsureCanReturn(request, laptop, "EMP@acme.io"); err != nil {
		t.Fatalf("requester should be able to return: %v", err)
	}
	if err := EnsureCanReturn(request, laptop, "hr@acme.io"); err != nil {
		t.Fatalf("owning hr should be able to return: %v", err)
	}
	if err := EnsureCanReturn(request, laptop, "stranger@acme.io"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	pen := entities.Asset{ProductType: entities.ProductTypeNonReturnable}
	if err := EnsureCanReturn(request, pen, "emp@acme.io"); !errors.Is(err, domainerrors.ErrAssetNotReturnable) {
		t.Fatalf("expected not returnable, got %v", err)
	}

	request.Status = entities.RequestStatusPending
	if err := EnsureCanReturn(request, laptop, "emp@acme.io"); !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestRestockedQuantityCapsAtProductQuantity(t *testing.T) {
	if got := RestockedQuantity(entities.Asset{ProductQuantity: 2, AvailableQuantity: 1}); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := RestockedQuantity(entities.Asset{ProductQuantity: 2, AvailableQuantity: 2}); got != 2 {
		t.Fatalf("expected cap at 2, got %d", got)
	}
}

func TestNormalizePageAndTotalPages(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	if page != 1 || limit != DefaultPageSize {
		t.Fatalf("unexpected defaults: page=%d limit=%d", page, limit)
	}
	if _, limit := NormalizePage(2, 1000); limit != MaxPageSize {
		t.Fatalf("expected limit clamp, got %d", limit)
	}
	page, limit = NormalizePage(math.MaxInt, 10)
	if offset := (page - 1) * limit; offset < 0 {
		t.Fatalf("expected non-negative offset for huge page, got %d", offset)
	}
	if got := TotalPages(21, 10); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	if got := TotalPages(0, 10); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
}
