package entities

import (
	"strings"
	"time"

	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
	RequestStatusReturned RequestStatus = "returned"
)

func ParseRequestStatus(value string) (RequestStatus, bool) {
	switch RequestStatus(strings.ToLower(strings.TrimSpace(value))) {
	case RequestStatusPending:
		return RequestStatusPending, true
	case RequestStatusApproved:
		return RequestStatusApproved, true
	case RequestStatusRejected:
		return RequestStatusRejected, true
	case RequestStatusReturned:
		return RequestStatusReturned, true
	default:
		return "", false
	}
}

type AssetRequest struct {
	RequestID      string
	AssetID        string
	AssetName      string
	AssetType      ProductType
	AssetImage     string
	RequesterEmail string
	RequesterName  string
	HREmail        string
	CompanyName    string
	Note           string
	Status         RequestStatus
	RequestDate    time.Time
	ApprovalDate   *time.Time
	ReturnDate     *time.Time
}

// NewAssetRequest snapshots the asset's descriptive fields so later asset
// edits never rewrite request history.
func NewAssetRequest(
	requestID string,
	asset Asset,
	requesterEmail string,
	requesterName string,
	note string,
	now time.Time,
) (AssetRequest, error) {
	if strings.TrimSpace(requestID) == "" ||
		strings.TrimSpace(asset.AssetID) == "" ||
		NormalizeEmail(requesterEmail) == "" {
		return AssetRequest{}, domainerrors.ErrInvalidRequest
	}

	return AssetRequest{
		RequestID:      requestID,
		AssetID:        asset.AssetID,
		AssetName:      asset.ProductName,
		AssetType:      asset.ProductType,
		AssetImage:     asset.ProductImage,
		RequesterEmail: NormalizeEmail(requesterEmail),
		RequesterName:  strings.TrimSpace(requesterName),
		HREmail:        asset.HREmail,
		CompanyName:    asset.CompanyName,
		Note:           strings.TrimSpace(note),
		Status:         RequestStatusPending,
		RequestDate:    now.UTC(),
	}, nil
}
