package postgresadapter

import (
	"time"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	"assetverse/contexts/asset-management/asset-service/ports"

	"github.com/lib/pq"
)

type userModel struct {
	Email            string     `gorm:"column:email;primaryKey"`
	Name             string     `gorm:"column:name"`
	Photo            string     `gorm:"column:photo"`
	Role             string     `gorm:"column:role;index"`
	CompanyName      string     `gorm:"column:company_name"`
	CompanyLogo      string     `gorm:"column:company_logo"`
	DateOfBirth      string     `gorm:"column:date_of_birth"`
	PackageLimit     int        `gorm:"column:package_limit"`
	CurrentEmployees int        `gorm:"column:current_employees"`
	LastUpgrade      *time.Time `gorm:"column:last_upgrade"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
}

func (userModel) TableName() string {
	return "users"
}

func userModelFromEntity(user entities.User) userModel {
	return userModel{
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

func (m userModel) toEntity() entities.User {
	return entities.User{
		Email:            m.Email,
		Name:             m.Name,
		Photo:            m.Photo,
		Role:             entities.Role(m.Role),
		CompanyName:      m.CompanyName,
		CompanyLogo:      m.CompanyLogo,
		DateOfBirth:      m.DateOfBirth,
		PackageLimit:     m.PackageLimit,
		CurrentEmployees: m.CurrentEmployees,
		LastUpgrade:      utcPtr(m.LastUpgrade),
		CreatedAt:        m.CreatedAt.UTC(),
	}
}

type assetModel struct {
	AssetID           string    `gorm:"column:asset_id;primaryKey"`
	ProductName       string    `gorm:"column:product_name"`
	ProductImage      string    `gorm:"column:product_image"`
	ProductType       string    `gorm:"column:product_type"`
	ProductQuantity   int       `gorm:"column:product_quantity"`
	AvailableQuantity int       `gorm:"column:available_quantity;check:available_quantity >= 0"`
	HREmail           string    `gorm:"column:hr_email;index"`
	CompanyName       string    `gorm:"column:company_name"`
	DateAdded         time.Time `gorm:"column:date_added"`
}

func (assetModel) TableName() string {
	return "assets"
}

func assetModelFromEntity(asset entities.Asset) assetModel {
	return assetModel{
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

func (m assetModel) toEntity() entities.Asset {
	return entities.Asset{
		AssetID:           m.AssetID,
		ProductName:       m.ProductName,
		ProductImage:      m.ProductImage,
		ProductType:       entities.ProductType(m.ProductType),
		ProductQuantity:   m.ProductQuantity,
		AvailableQuantity: m.AvailableQuantity,
		HREmail:           m.HREmail,
		CompanyName:       m.CompanyName,
		DateAdded:         m.DateAdded.UTC(),
	}
}

type requestModel struct {
	RequestID      string     `gorm:"column:request_id;primaryKey"`
	AssetID        string     `gorm:"column:asset_id;index"`
	AssetName      string     `gorm:"column:asset_name"`
	AssetType      string     `gorm:"column:asset_type"`
	AssetImage     string     `gorm:"column:asset_image"`
	RequesterEmail string     `gorm:"column:requester_email;index"`
	RequesterName  string     `gorm:"column:requester_name"`
	HREmail        string     `gorm:"column:hr_email;index"`
	CompanyName    string     `gorm:"column:company_name"`
	Note           string     `gorm:"column:note"`
	RequestStatus  string     `gorm:"column:request_status"`
	RequestDate    time.Time  `gorm:"column:request_date"`
	ApprovalDate   *time.Time `gorm:"column:approval_date"`
	ReturnDate     *time.Time `gorm:"column:return_date"`
}

func (requestModel) TableName() string {
	return "asset_requests"
}

func requestModelFromEntity(request entities.AssetRequest) requestModel {
	return requestModel{
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

func (m requestModel) toEntity() entities.AssetRequest {
	return entities.AssetRequest{
		RequestID:      m.RequestID,
		AssetID:        m.AssetID,
		AssetName:      m.AssetName,
		AssetType:      entities.ProductType(m.AssetType),
		AssetImage:     m.AssetImage,
		RequesterEmail: m.RequesterEmail,
		RequesterName:  m.RequesterName,
		HREmail:        m.HREmail,
		CompanyName:    m.CompanyName,
		Note:           m.Note,
		Status:         entities.RequestStatus(m.RequestStatus),
		RequestDate:    m.RequestDate.UTC(),
		ApprovalDate:   utcPtr(m.ApprovalDate),
		ReturnDate:     utcPtr(m.ReturnDate),
	}
}

type affiliationModel struct {
	AffiliationID   string    `gorm:"column:affiliation_id;primaryKey"`
	EmployeeEmail   string    `gorm:"column:employee_email;index"`
	EmployeeName    string    `gorm:"column:employee_name"`
	HREmail         string    `gorm:"column:hr_email;index"`
	CompanyName     string    `gorm:"column:company_name"`
	CompanyLogo     string    `gorm:"column:company_logo"`
	Status          string    `gorm:"column:status"`
	AffiliationDate time.Time `gorm:"column:affiliation_date"`
}

func (affiliationModel) TableName() string {
	return "affiliations"
}

func affiliationModelFromEntity(affiliation entities.Affiliation) affiliationModel {
	return affiliationModel{
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

func (m affiliationModel) toEntity() entities.Affiliation {
	return entities.Affiliation{
		AffiliationID:   m.AffiliationID,
		EmployeeEmail:   m.EmployeeEmail,
		EmployeeName:    m.EmployeeName,
		HREmail:         m.HREmail,
		CompanyName:     m.CompanyName,
		CompanyLogo:     m.CompanyLogo,
		Status:          entities.AffiliationStatus(m.Status),
		AffiliationDate: m.AffiliationDate.UTC(),
	}
}

type paymentModel struct {
	PaymentID     string    `gorm:"column:payment_id;primaryKey"`
	HREmail       string    `gorm:"column:hr_email;index"`
	TransactionID string    `gorm:"column:transaction_id;uniqueIndex:payments_unique_transaction"`
	SessionID     string    `gorm:"column:session_id"`
	Amount        float64   `gorm:"column:amount"`
	AddedSlots    int       `gorm:"column:added_slots"`
	Date          time.Time `gorm:"column:date"`
}

func (paymentModel) TableName() string {
	return "payments"
}

func paymentModelFromEntity(payment entities.Payment) paymentModel {
	return paymentModel{
		PaymentID:     payment.PaymentID,
		HREmail:       payment.HREmail,
		TransactionID: payment.TransactionID,
		SessionID:     payment.SessionID,
		Amount:        payment.Amount,
		AddedSlots:    payment.AddedSlots,
		Date:          payment.Date.UTC(),
	}
}

func (m paymentModel) toEntity() entities.Payment {
	return entities.Payment{
		PaymentID:     m.PaymentID,
		HREmail:       m.HREmail,
		TransactionID: m.TransactionID,
		SessionID:     m.SessionID,
		Amount:        m.Amount,
		AddedSlots:    m.AddedSlots,
		Date:          m.Date.UTC(),
	}
}

type packageModel struct {
	PackageID     string         `gorm:"column:package_id;primaryKey"`
	Name          string         `gorm:"column:name"`
	EmployeeLimit int            `gorm:"column:employee_limit"`
	Price         float64        `gorm:"column:price"`
	Features      pq.StringArray `gorm:"column:features;type:text[]"`
}

func (packageModel) TableName() string {
	return "packages"
}

func (m packageModel) toEntity() entities.Package {
	return entities.Package{
		PackageID:     m.PackageID,
		Name:          m.Name,
		EmployeeLimit: m.EmployeeLimit,
		Price:         m.Price,
		Features:      append([]string(nil), m.Features...),
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string {
	return "asset_outbox"
}

func outboxModelFromPort(message ports.OutboxMessage) outboxModel {
	return outboxModel{
		OutboxID:     message.OutboxID,
		EventType:    message.EventType,
		PartitionKey: message.PartitionKey,
		Payload:      message.Payload,
		Status:       outboxStatusPending,
		CreatedAt:    message.CreatedAt.UTC(),
	}
}

func (m outboxModel) toPort() ports.OutboxMessage {
	return ports.OutboxMessage{
		OutboxID:     m.OutboxID,
		EventType:    m.EventType,
		PartitionKey: m.PartitionKey,
		Payload:      append([]byte(nil), m.Payload...),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func utcPtr(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}
