package mongoadapter

import (
	"time"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	"assetverse/contexts/asset-management/asset-service/ports"
)

const (
	collectionUsers        = "users"
	collectionAssets       = "assets"
	collectionRequests     = "requests"
	collectionAffiliations = "affiliations"
	collectionPayments     = "payments"
	collectionPackages     = "packages"
	collectionOutbox       = "outbox"
)

type userDocument struct {
	Email            string     `bson:"_id"`
	Name             string     `bson:"name"`
	Photo            string     `bson:"photo,omitempty"`
	Role             string     `bson:"role"`
	CompanyName      string     `bson:"companyName,omitempty"`
	CompanyLogo      string     `bson:"companyLogo,omitempty"`
	DateOfBirth      string     `bson:"dateOfBirth,omitempty"`
	PackageLimit     int        `bson:"packageLimit"`
	CurrentEmployees int        `bson:"currentEmployees"`
	LastUpgrade      *time.Time `bson:"lastUpgrade,omitempty"`
	CreatedAt        time.Time  `bson:"createdAt"`
}

func userDocumentFromEntity(user entities.User) userDocument {
	return userDocument{
		Email:            user.Email,
		Name:             user.Name,
		Photo:            user.Photo,
		Role:             string(user.Role),
		CompanyName:      user.CompanyName,
		CompanyLogo:      user.CompanyLogo,
		DateOfBirth:      user.DateOfBirth,
		PackageLimit:     user.PackageLimit,
		CurrentEmployees: user.CurrentEmployees,
		LastUpgrade:      utcPtr(user.LastUpgrade),
		CreatedAt:        user.CreatedAt.UTC(),
	}
}

func (d userDocument) toEntity() entities.User {
	return entities.User{
		Email:            d.Email,
		Name:             d.Name,
		Photo:            d.Photo,
		Role:             entities.Role(d.Role),
		CompanyName:      d.CompanyName,
		CompanyLogo:      d.CompanyLogo,
		DateOfBirth:      d.DateOfBirth,
		PackageLimit:     d.PackageLimit,
		CurrentEmployees: d.CurrentEmployees,
		LastUpgrade:      utcPtr(d.LastUpgrade),
		CreatedAt:        d.CreatedAt.UTC(),
	}
}

type assetDocument struct {
	AssetID           string    `bson:"_id"`
	ProductName       string    `bson:"productName"`
	ProductImage      string    `bson:"productImage,omitempty"`
	ProductType       string    `bson:"productType"`
	ProductQuantity   int       `bson:"productQuantity"`
	AvailableQuantity int       `bson:"availableQuantity"`
	HREmail           string    `bson:"hrEmail"`
	CompanyName       string    `bson:"companyName"`
	DateAdded         time.Time `bson:"dateAdded"`
}

func assetDocumentFromEntity(asset entities.Asset) assetDocument {
	return assetDocument{
		AssetID:           asset.AssetID,
		ProductName:       asset.ProductName,
		ProductImage:      asset.ProductImage,
		ProductType:       string(asset.ProductType),
		ProductQuantity:   asset.ProductQuantity,
		AvailableQuantity: asset.AvailableQuantity,
		HREmail:           asset.HREmail,
		CompanyName:       asset.CompanyName,
		DateAdded:         asset.DateAdded.UTC(),
	}
}

func (d assetDocument) toEntity() entities.Asset {
	return entities.Asset{
		AssetID:           d.AssetID,
		ProductName:       d.ProductName,
		ProductImage:      d.ProductImage,
		ProductType:       entities.ProductType(d.ProductType),
		ProductQuantity:   d.ProductQuantity,
		AvailableQuantity: d.AvailableQuantity,
		HREmail:           d.HREmail,
		CompanyName:       d.CompanyName,
		DateAdded:         d.DateAdded.UTC(),
	}
}

type requestDocument struct {
	RequestID      string     `bson:"_id"`
	AssetID        string     `bson:"assetId"`
	AssetName      string     `bson:"assetName"`
	AssetType      string     `bson:"assetType"`
	AssetImage     string     `bson:"assetImage,omitempty"`
	RequesterEmail string     `bson:"requesterEmail"`
	RequesterName  string     `bson:"requesterName"`
	HREmail        string     `bson:"hrEmail"`
	CompanyName    string     `bson:"companyName"`
	Note           string     `bson:"note,omitempty"`
	RequestStatus  string     `bson:"requestStatus"`
	RequestDate    time.Time  `bson:"requestDate"`
	ApprovalDate   *time.Time `bson:"approvalDate,omitempty"`
	ReturnDate     *time.Time `bson:"returnDate,omitempty"`
}

func requestDocumentFromEntity(request entities.AssetRequest) requestDocument {
	return requestDocument{
		RequestID:      request.RequestID,
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
		RequestDate:    request.RequestDate.UTC(),
		ApprovalDate:   utcPtr(request.ApprovalDate),
		ReturnDate:     utcPtr(request.ReturnDate),
	}
}

func (d requestDocument) toEntity() entities.AssetRequest {
	return entities.AssetRequest{
		RequestID:      d.RequestID,
		AssetID:        d.AssetID,
		AssetName:      d.AssetName,
		AssetType:      entities.ProductType(d.AssetType),
		AssetImage:     d.AssetImage,
		RequesterEmail: d.RequesterEmail,
		RequesterName:  d.RequesterName,
		HREmail:        d.HREmail,
		CompanyName:    d.CompanyName,
		Note:           d.Note,
		Status:         entities.RequestStatus(d.RequestStatus),
		RequestDate:    d.RequestDate.UTC(),
		ApprovalDate:   utcPtr(d.ApprovalDate),
		ReturnDate:     utcPtr(d.ReturnDate),
	}
}

type affiliationDocument struct {
	AffiliationID   string    `bson:"_id"`
	EmployeeEmail   string    `bson:"employeeEmail"`
	EmployeeName    string    `bson:"employeeName"`
	HREmail         string    `bson:"hrEmail"`
	CompanyName     string    `bson:"companyName"`
	CompanyLogo     string    `bson:"companyLogo,omitempty"`
	Status          string    `bson:"status"`
	AffiliationDate time.Time `bson:"affiliationDate"`
}

func affiliationDocumentFromEntity(affiliation entities.Affiliation) affiliationDocument {
	return affiliationDocument{
		AffiliationID:   affiliation.AffiliationID,
		EmployeeEmail:   affiliation.EmployeeEmail,
		EmployeeName:    affiliation.EmployeeName,
		HREmail:         affiliation.HREmail,
		CompanyName:     affiliation.CompanyName,
		CompanyLogo:     affiliation.CompanyLogo,
		Status:          string(affiliation.Status),
		AffiliationDate: affiliation.AffiliationDate.UTC(),
	}
}

func (d affiliationDocument) toEntity() entities.Affiliation {
	return entities.Affiliation{
		AffiliationID:   d.AffiliationID,
		EmployeeEmail:   d.EmployeeEmail,
		EmployeeName:    d.EmployeeName,
		HREmail:         d.HREmail,
		CompanyName:     d.CompanyName,
		CompanyLogo:     d.CompanyLogo,
		Status:          entities.AffiliationStatus(d.Status),
		AffiliationDate: d.AffiliationDate.UTC(),
	}
}

type paymentDocument struct {
	PaymentID     string    `bson:"_id"`
	HREmail       string    `bson:"hrEmail"`
	TransactionID string    `bson:"transactionId"`
	SessionID     string    `bson:"sessionId"`
	Amount        float64   `bson:"amount"`
	AddedSlots    int       `bson:"addedSlots"`
	Date          time.Time `bson:"date"`
}

func paymentDocumentFromEntity(payment entities.Payment) paymentDocument {
	return paymentDocument{
		PaymentID:     payment.PaymentID,
		HREmail:       payment.HREmail,
		TransactionID: payment.TransactionID,
		SessionID:     payment.SessionID,
		Amount:        payment.Amount,
		AddedSlots:    payment.AddedSlots,
		Date:          payment.Date.UTC(),
	}
}

func (d paymentDocument) toEntity() entities.Payment {
	return entities.Payment{
		PaymentID:     d.PaymentID,
		HREmail:       d.HREmail,
		TransactionID: d.TransactionID,
		SessionID:     d.SessionID,
		Amount:        d.Amount,
		AddedSlots:    d.AddedSlots,
		Date:          d.Date.UTC(),
	}
}

type packageDocument struct {
	PackageID     string   `bson:"_id"`
	Name          string   `bson:"name"`
	EmployeeLimit int      `bson:"employeeLimit"`
	Price         float64  `bson:"price"`
	Features      []string `bson:"features"`
}

func (d packageDocument) toEntity() entities.Package {
	return entities.Package{
		PackageID:     d.PackageID,
		Name:          d.Name,
		EmployeeLimit: d.EmployeeLimit,
		Price:         d.Price,
		Features:      append([]string(nil), d.Features...),
	}
}

type outboxDocument struct {
	OutboxID     string     `bson:"_id"`
	EventType    string     `bson:"eventType"`
	PartitionKey string     `bson:"partitionKey"`
	Payload      []byte     `bson:"payload"`
	Status       string     `bson:"status"`
	CreatedAt    time.Time  `bson:"createdAt"`
	SentAt       *time.Time `bson:"sentAt,omitempty"`
}

func outboxDocumentFromPort(message ports.OutboxMessage) outboxDocument {
	return outboxDocument{
		OutboxID:     message.OutboxID,
		EventType:    message.EventType,
		PartitionKey: message.PartitionKey,
		Payload:      message.Payload,
		Status:       outboxStatusPending,
		CreatedAt:    message.CreatedAt.UTC(),
	}
}

func (d outboxDocument) toPort() ports.OutboxMessage {
	return ports.OutboxMessage{
		OutboxID:     d.OutboxID,
		EventType:    d.EventType,
		PartitionKey: d.PartitionKey,
		Payload:      append([]byte(nil), d.Payload...),
		CreatedAt:    d.CreatedAt.UTC(),
	}
}

func utcPtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
