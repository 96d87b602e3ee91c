package services

import (
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

// CanTransition encodes the request state machine:
// pending -> approved | rejected, approved -> returned.
func CanTransition(from entities.RequestStatus, to entities.RequestStatus) bool {
	switch from {
	case entities.RequestStatusPending:
		return to == entities.RequestStatusApproved || to == entities.RequestStatusRejected
	case entities.RequestStatusApproved:
		return to == entities.RequestStatusReturned
	default:
		return false
	}
}

func EnsureTransition(request entities.AssetRequest, to entities.RequestStatus) error {
	if !CanTransition(request.Status, to) {
		return domainerrors.ErrInvalidStateTransition
	}
	return nil
}

// EnsureOwnedByHR guards HR decisions against requests of another company.
func EnsureOwnedByHR(request entities.AssetRequest, hrEmail string) error {
	if request.HREmail != entities.NormalizeEmail(hrEmail) {
		return domainerrors.ErrForbidden
	}
	return nil
}

// CanCancel reports whether callerEmail may withdraw the request.
func CanCancel(request entities.AssetRequest, callerEmail string) bool {
	return request.Status == entities.RequestStatusPending &&
		request.RequesterEmail == entities.NormalizeEmail(callerEmail)
}

// EnsureCanReturn allows only the requester or the owning HR to return an
// approved, returnable asset.
func EnsureCanReturn(request entities.AssetRequest, asset entities.Asset, callerEmail string) error {
	caller := entities.NormalizeEmail(callerEmail)
	if caller != request.RequesterEmail && caller != request.HREmail {
		return domainerrors.ErrForbidden
	}
	if err := EnsureTransition(request, entities.RequestStatusReturned); err != nil {
		return err
	}
	if !asset.IsReturnable() {
		return domainerrors.ErrAssetNotReturnable
	}
	return nil
}

// RestockedQuantity is the available quantity after one unit comes back.
func RestockedQuantity(asset entities.Asset) int {
	if asset.AvailableQuantity >= asset.ProductQuantity {
		return asset.ProductQuantity
	}
	return asset.AvailableQuantity + 1
}
