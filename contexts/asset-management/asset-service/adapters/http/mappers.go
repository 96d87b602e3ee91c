package httpadapter

import (
	"time"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	httptransport "assetverse/contexts/asset-management/asset-service/transport/http"
)

func mapUser(user entities.User) httptransport.UserDTO {
	dto := httptransport.UserDTO{
		Email:            user.Email,
		Name:             user.Name,
		Photo:            user.Photo,
		Role:             string(user.Role),
		CompanyName:      user.CompanyName,
		CompanyLogo:      user.CompanyLogo,
		DateOfBirth:      user.DateOfBirth,
		CurrentEmployees: user.CurrentEmployees,
		LastUpgrade:      formatTimePtr(user.LastUpgrade),
		CreatedAt:        formatTime(user.CreatedAt),
	}
	if user.IsHR() {
		dto.PackageLimit = user.EffectivePackageLimit()
	}
	return dto
}

func mapUsers(users []entities.User) []httptransport.UserDTO {
	items := make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, mapUser(user))
	}
	return items
}

func mapAsset(asset entities.Asset) httptransport.AssetDTO {
	return httptransport.AssetDTO{
		ID:                asset.AssetID,
		ProductName:       asset.ProductName,
		ProductImage:      asset.ProductImage,
		ProductType:       string(asset.ProductType),
		ProductQuantity:   asset.ProductQuantity,
		AvailableQuantity: asset.AvailableQuantity,
		HREmail:           asset.HREmail,
		CompanyName:       asset.CompanyName,
		DateAdded:         formatTime(asset.DateAdded),
	}
}

func mapAssets(assets []entities.Asset) []httptransport.AssetDTO {
	items := make([]httptransport.AssetDTO, 0, len(assets))
	for _, asset := range assets {
		items = append(items, mapAsset(asset))
	}
	return items
}

func mapRequest(request entities.AssetRequest) httptransport.RequestDTO {
	return httptransport.RequestDTO{
		ID:             request.RequestID,
		AssetID:        request.AssetID,
		AssetName:      request.AssetName,
		AssetType:      string(request.AssetType),
		AssetImage:     request.AssetImage,
		RequesterEmail: request.RequesterEmail,
		RequesterName:  request.RequesterName,
		HREmail:        request.HREmail,
		CompanyName:    request.CompanyName,
		Note:           request.Note,
		RequestStatus:  string(request.Status),
		RequestDate:    formatTime(request.RequestDate),
		ApprovalDate:   formatTimePtr(request.ApprovalDate),
		ReturnDate:     formatTimePtr(request.ReturnDate),
	}
}

func mapRequests(requests []entities.AssetRequest) []httptransport.RequestDTO {
	items := make([]httptransport.RequestDTO, 0, len(requests))
	for _, request := range requests {
		items = append(items, mapRequest(request))
	}
	return items
}

func mapAffiliation(affiliation entities.Affiliation) httptransport.AffiliationDTO {
	return httptransport.AffiliationDTO{
		ID:              affiliation.AffiliationID,
		EmployeeEmail:   affiliation.EmployeeEmail,
		EmployeeName:    affiliation.EmployeeName,
		HREmail:         affiliation.HREmail,
		CompanyName:     affiliation.CompanyName,
		CompanyLogo:     affiliation.CompanyLogo,
		Status:          string(affiliation.Status),
		AffiliationDate: formatTime(affiliation.AffiliationDate),
	}
}

func mapAffiliations(affiliations []entities.Affiliation) []httptransport.AffiliationDTO {
	items := make([]httptransport.AffiliationDTO, 0, len(affiliations))
	for _, affiliation := range affiliations {
		items = append(items, mapAffiliation(affiliation))
	}
	return items
}

func mapPayments(payments []entities.Payment) []httptransport.PaymentDTO {
	items := make([]httptransport.PaymentDTO, 0, len(payments))
	for _, payment := range payments {
		items = append(items, httptransport.PaymentDTO{
			ID:            payment.PaymentID,
			HREmail:       payment.HREmail,
			TransactionID: payment.TransactionID,
			SessionID:     payment.SessionID,
			Amount:        payment.Amount,
			AddedSlots:    payment.AddedSlots,
			Date:          formatTime(payment.Date),
		})
	}
	return items
}

func mapPackages(packages []entities.Package) []httptransport.PackageDTO {
	items := make([]httptransport.PackageDTO, 0, len(packages))
	for _, item := range packages {
		features := item.Features
		if features == nil {
			features = []string{}
		}
		items = append(items, httptransport.PackageDTO{
			ID:            item.PackageID,
			Name:          item.Name,
			EmployeeLimit: item.EmployeeLimit,
			Price:         item.Price,
			Features:      features,
		})
	}
	return items
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}

func formatTimePtr(value *time.Time) string {
	if value == nil {
		return ""
	}
	return formatTime(*value)
}
