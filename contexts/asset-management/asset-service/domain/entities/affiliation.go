package entities

import (
	"strings"
	"time"

	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
)

type AffiliationStatus string

const (
	AffiliationStatusActive   AffiliationStatus = "active"
	AffiliationStatusInactive AffiliationStatus = "inactive"
)

// DefaultCompanyName is used when an HR account never set its company name.
const DefaultCompanyName = "Your Company"

type Affiliation struct {
	AffiliationID   string
	EmployeeEmail   string
	EmployeeName    string
	HREmail         string
	CompanyName     string
	CompanyLogo     string
	Status          AffiliationStatus
	AffiliationDate time.Time
}

func NewAffiliation(
	affiliationID string,
	employeeEmail string,
	employeeName string,
	hr User,
	now time.Time,
) (Affiliation, error) {
	if strings.TrimSpace(affiliationID) == "" ||
		NormalizeEmail(employeeEmail) == "" ||
		NormalizeEmail(hr.Email) == "" {
		return Affiliation{}, domainerrors.ErrInvalidRequest
	}

	companyName := strings.TrimSpace(hr.CompanyName)
	if companyName == "" {
		companyName = DefaultCompanyName
	}
	return Affiliation{
		AffiliationID:   affiliationID,
		EmployeeEmail:   NormalizeEmail(employeeEmail),
		EmployeeName:    strings.TrimSpace(employeeName),
		HREmail:         NormalizeEmail(hr.Email),
		CompanyName:     companyName,
		CompanyLogo:     hr.CompanyLogo,
		Status:          AffiliationStatusActive,
		AffiliationDate: now.UTC(),
	}, nil
}

func (a Affiliation) IsActive() bool {
	return a.Status == AffiliationStatusActive
}
