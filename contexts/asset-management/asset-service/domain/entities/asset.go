package entities

import (
	"strings"
	"time"

	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

type ProductType string

const (
	ProductTypeReturnable    ProductType = "Returnable"
	ProductTypeNonReturnable ProductType = "Non-returnable"
)

func ParseProductType(value string) (ProductType, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "returnable":
		return ProductTypeReturnable, true
	case "non-returnable", "non_returnable", "nonreturnable":
		return ProductTypeNonReturnable, true
	default:
		return "", false
	}
}

type Asset struct {
	AssetID           string
	ProductName       string
	ProductImage      string
	ProductType       ProductType
	ProductQuantity   int
	AvailableQuantity int
	HREmail           string
	CompanyName       string
	DateAdded         time.Time
}

func NewAsset(
	assetID string,
	productName string,
	productImage string,
	productType ProductType,
	productQuantity int,
	hrEmail string,
	companyName string,
	now time.Time,
) (Asset, error) {
	if strings.TrimSpace(productName) == "" || productQuantity <= 0 {
		return Asset{}, domainerrors.ErrMissingAssetFields
	}
	if productType != ProductTypeReturnable && productType != ProductTypeNonReturnable {
		return Asset{}, domainerrors.ErrMissingAssetFields
	}
	if strings.TrimSpace(assetID) == "" || strings.TrimSpace(hrEmail) == "" {
		return Asset{}, domainerrors.ErrInvalidRequest
	}

	return Asset{
		AssetID:           assetID,
		ProductName:       strings.TrimSpace(productName),
		ProductImage:      strings.TrimSpace(productImage),
		ProductType:       productType,
		ProductQuantity:   productQuantity,
		AvailableQuantity: productQuantity,
		HREmail:           NormalizeEmail(hrEmail),
		CompanyName:       companyName,
		DateAdded:         now.UTC(),
	}, nil
}

func (a Asset) InStock() bool {
	return a.AvailableQuantity > 0
}

func (a Asset) IsReturnable() bool {
	return a.ProductType == ProductTypeReturnable
}
