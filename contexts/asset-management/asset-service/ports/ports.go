package ports

import (
	"context"
	"time"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	contractsv1 "assetverse/contracts/gen/events/v1"
)

// UserRepository owns user profiles, including the HR capacity counters.
type UserRepository interface {
	// CreateUserIfAbsent inserts the user unless the email exists and reports
	// whether a row was written.
	CreateUserIfAbsent(ctx context.Context, user entities.User) (entities.User, bool, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	ListUsersByEmails(ctx context.Context, emails []string) ([]entities.User, error)
	// ListUnaffiliatedEmployees returns employees absent from every affiliation record.
	ListUnaffiliatedEmployees(ctx context.Context) ([]entities.User, error)
}

// AssetListFilter defines read-side filtering/pagination for the asset list.
type AssetListFilter struct {
	HREmail     string
	Search      string
	Type        entities.ProductType
	OnlyInStock bool
	SortField   string
	SortDesc    bool
	Offset      int
	Limit       int
}

// AssetRepository encapsulates asset inventory persistence.
type AssetRepository interface {
	CreateAsset(ctx context.Context, asset entities.Asset) error
	GetAsset(ctx context.Context, assetID string) (entities.Asset, error)
	// ListAssets returns one page plus the total count matching the filter.
	ListAssets(ctx context.Context, filter AssetListFilter) ([]entities.Asset, int, error)
	CountAssetsByType(ctx context.Context, hrEmail string) (map[entities.ProductType]int, error)
}

// RequestListFilter narrows request reads. Zero values do not filter.
type RequestListFilter struct {
	RequesterEmail  string
	HREmail         string
	RequesterSearch string
	AssetSearch     string
	Status          entities.RequestStatus
	RequestedFrom   time.Time
	RequestedBefore time.Time
	Limit           int
}

type ApproveRequestInput struct {
	RequestID     string
	HREmail       string
	AffiliationID string
	ApprovedAt    time.Time
	Event         OutboxMessage
}

type ApproveRequestResult struct {
	Request            entities.AssetRequest
	Affiliation        entities.Affiliation
	AffiliationCreated bool
}

type RejectRequestInput struct {
	RequestID  string
	HREmail    string
	RejectedAt time.Time
	Event      OutboxMessage
}

type ReturnRequestInput struct {
	RequestID   string
	CallerEmail string
	ReturnedAt  time.Time
	Event       OutboxMessage
}

// RequestRepository owns request persistence and the transaction boundaries
// of the request workflow.
type RequestRepository interface {
	CreateRequest(ctx context.Context, request entities.AssetRequest) error
	GetRequest(ctx context.Context, requestID string) (entities.AssetRequest, error)
	ListRequests(ctx context.Context, filter RequestListFilter) ([]entities.AssetRequest, error)
	CountRequests(ctx context.Context, filter RequestListFilter) (int, error)
	// ApproveRequest must atomically check capacity, approve the request,
	// decrement stock, affiliate the requester and append the outbox event.
	ApproveRequest(ctx context.Context, input ApproveRequestInput) (ApproveRequestResult, error)
	RejectRequest(ctx context.Context, input RejectRequestInput) (entities.AssetRequest, error)
	// CancelRequest deletes a pending request owned by requesterEmail and
	// reports whether anything was deleted.
	CancelRequest(ctx context.Context, requestID string, requesterEmail string) (bool, error)
	// ReturnRequest must atomically mark the request returned and restock the asset.
	ReturnRequest(ctx context.Context, input ReturnRequestInput) (entities.AssetRequest, error)
}

type AddAffiliationInput struct {
	AffiliationID string
	HREmail       string
	EmployeeEmail string
	EmployeeName  string
	AffiliatedAt  time.Time
	Event         OutboxMessage
}

type RemoveAffiliationInput struct {
	HREmail       string
	EmployeeEmail string
	Event         OutboxMessage
}

// AffiliationRepository keeps affiliations and the HR employee counter in step.
type AffiliationRepository interface {
	AddAffiliation(ctx context.Context, input AddAffiliationInput) (entities.Affiliation, error)
	// RemoveAffiliation returns the HR user with the decremented counter.
	RemoveAffiliation(ctx context.Context, input RemoveAffiliationInput) (entities.User, error)
	ListActiveAffiliations(ctx context.Context, hrEmail string) ([]entities.Affiliation, error)
	// FindAffiliation prefers the employee's active affiliation over inactive ones.
	FindAffiliation(ctx context.Context, employeeEmail string) (entities.Affiliation, bool, error)
}

type ApplyUpgradeInput struct {
	Payment entities.Payment
	Event   OutboxMessage
}

// PaymentRepository owns the payment ledger. TransactionID is unique.
type PaymentRepository interface {
	GetPaymentByTransactionID(ctx context.Context, transactionID string) (entities.Payment, bool, error)
	// ApplyPackageUpgrade inserts the payment and raises the HR limit in one
	// transaction. A duplicate transaction id yields ErrDuplicatePayment.
	ApplyPackageUpgrade(ctx context.Context, input ApplyUpgradeInput) (entities.User, error)
	ListPaymentsByHR(ctx context.Context, hrEmail string) ([]entities.Payment, error)
}

// PackageRepository serves the read-only slot catalog.
type PackageRepository interface {
	ListPackages(ctx context.Context) ([]entities.Package, error)
	UpsertPackages(ctx context.Context, packages []entities.Package) (int, error)
}

// CheckoutSessionInput describes one hosted checkout for extra employee slots.
type CheckoutSessionInput struct {
	HREmail         string
	Slots           int
	UnitAmountCents int64
	ProductName     string
	SuccessURL      string
	CancelURL       string
	Metadata        map[string]string
}

// CheckoutSession is the processor view of a checkout.
type CheckoutSession struct {
	SessionID        string
	URL              string
	Paid             bool
	PaymentIntentID  string
	AmountTotalCents int64
	Metadata         map[string]string
}

// PaymentProcessor abstracts the hosted checkout provider.
type PaymentProcessor interface {
	CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}

// VerifiedIdentity is the caller identity extracted from a bearer credential.
type VerifiedIdentity struct {
	Email     string
	Subject   string
	ExpiresAt time.Time
}

// IdentityVerifier validates bearer credentials.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (VerifiedIdentity, error)
}

// Clock allows deterministic testing of date-based rules.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts entity/event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// OutboxMessage is a row written with the state change it describes.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
