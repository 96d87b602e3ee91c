package services

import (
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

// EnsureCapacity rejects any new affiliation once the HR account filled its
// package limit. It must run before the first write of a workflow.
func EnsureCapacity(hr entities.User) error {
	if !hr.IsHR() {
		return domainerrors.ErrNotHRManager
	}
	if hr.CurrentEmployees >= hr.EffectivePackageLimit() {
		return domainerrors.ErrCapacityExceeded
	}
	return nil
}

// UpgradedPackageLimit returns the limit after a confirmed purchase of addedSlots.
func UpgradedPackageLimit(hr entities.User, addedSlots int) (int, error) {
	if addedSlots <= 0 {
		return 0, domainerrors.ErrInvalidSlotCount
	}
	return hr.EffectivePackageLimit() + addedSlots, nil
}

// ReleasedEmployeeCount is the counter value after one affiliation is removed.
func ReleasedEmployeeCount(current int) int {
	if current <= 0 {
		return 0
	}
	return current - 1
}
