package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/domain/services"
	"assetverse/contexts/asset-management/asset-service/ports"
)

// Seed is the initial state of a Store.
type Seed struct {
	Users    []entities.User
	Assets   []entities.Asset
	Packages []entities.Package
}

// Store is an in-memory adapter implementing the asset-service ports for
// local runtime and tests. It is not intended as production persistence.
type Store struct {
	mu           sync.RWMutex
	users        map[string]entities.User
	assets       map[string]entities.Asset
	requests     map[string]entities.AssetRequest
	affiliations map[string]entities.Affiliation
	payments     map[string]entities.Payment
	paymentsByTx map[string]string
	packages     []entities.Package
	outbox       map[string]ports.OutboxMessage
	outboxOrder  []string
	outboxSent   map[string]time.Time
	sequence     uint64
	logger       *slog.Logger
}

// NewStore seeds users, assets and the package catalog. An empty catalog
// falls back to entities.DefaultPackages.
func NewStore(seed Seed, logger *slog.Logger) *Store {
	s := &Store{
		users:        make(map[string]entities.User, len(seed.Users)),
		assets:       make(map[string]entities.Asset, len(seed.Assets)),
		requests:     make(map[string]entities.AssetRequest),
		affiliations: make(map[string]entities.Affiliation),
		payments:     make(map[string]entities.Payment),
		paymentsByTx: make(map[string]string),
		outbox:       make(map[string]ports.OutboxMessage),
		outboxOrder:  make([]string, 0),
		outboxSent:   make(map[string]time.Time),
		logger:       application.ResolveLogger(logger),
	}
	for _, user := range seed.Users {
		user.Email = entities.NormalizeEmail(user.Email)
		s.users[user.Email] = user
	}
	for _, asset := range seed.Assets {
		s.assets[asset.AssetID] = asset
	}
	s.packages = append(s.packages, seed.Packages...)
	if len(s.packages) == 0 {
		s.packages = entities.DefaultPackages()
	}
	return s
}

func (s *Store) CreateUserIfAbsent(_ context.Context, user entities.User) (entities.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[user.Email]; ok {
		return existing, false, nil
	}
	s.users[user.Email] = user
	return user, true, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[entities.NormalizeEmail(email)]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ListUsersByEmails(_ context.Context, emails []string) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(emails))
	users := make([]entities.User, 0, len(emails))
	for _, email := range emails {
		email = entities.NormalizeEmail(email)
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		if user, ok := s.users[email]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (s *Store) ListUnaffiliatedEmployees(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	affiliated := make(map[string]struct{}, len(s.affiliations))
	for _, affiliation := range s.affiliations {
		affiliated[affiliation.EmployeeEmail] = struct{}{}
	}
	users := make([]entities.User, 0)
	for _, user := range s.users {
		if user.Role != entities.RoleEmployee {
			continue
		}
		if _, ok := affiliated[user.Email]; ok {
			continue
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (s *Store) CreateAsset(_ context.Context, asset entities.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[asset.AssetID]; exists {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.assets[asset.AssetID] = asset
	return nil
}

func (s *Store) GetAsset(_ context.Context, assetID string) (entities.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	asset, ok := s.assets[assetID]
	if !ok {
		return entities.Asset{}, domainerrors.ErrAssetNotFound
	}
	return asset, nil
}

func (s *Store) ListAssets(_ context.Context, filter ports.AssetListFilter) ([]entities.Asset, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	filtered := make([]entities.Asset, 0, len(s.assets))
	for _, asset := range s.assets {
		if filter.HREmail != "" && asset.HREmail != filter.HREmail {
			continue
		}
		if filter.Type != "" && asset.ProductType != filter.Type {
			continue
		}
		if filter.OnlyInStock && !asset.InStock() {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(asset.ProductName), search) {
			continue
		}
		filtered = append(filtered, asset)
	}

	sort.Slice(filtered, func(i, j int) bool {
		less, equal := compareAssets(filtered[i], filtered[j], filter.SortField)
		if equal {
			return filtered[i].AssetID < filtered[j].AssetID
		}
		if filter.SortDesc {
			return !less
		}
		return less
	})

	total := len(filtered)
	start := filter.Offset
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && filter.Limit < total-start {
		end = start + filter.Limit
	}
	return append([]entities.Asset(nil), filtered[start:end]...), total, nil
}

func (s *Store) CountAssetsByType(_ context.Context, hrEmail string) (map[entities.ProductType]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[entities.ProductType]int, 2)
	for _, asset := range s.assets {
		if asset.HREmail == hrEmail {
			counts[asset.ProductType]++
		}
	}
	return counts, nil
}

func (s *Store) CreateRequest(_ context.Context, request entities.AssetRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.requests[request.RequestID]; exists {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.requests[request.RequestID] = request
	return nil
}

func (s *Store) GetRequest(_ context.Context, requestID string) (entities.AssetRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[requestID]
	if !ok {
		return entities.AssetRequest{}, domainerrors.ErrRequestNotFound
	}
	return request, nil
}

func (s *Store) ListRequests(_ context.Context, filter ports.RequestListFilter) ([]entities.AssetRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.filterRequests(filter)
	sort.Slice(items, func(i, j int) bool {
		if items[i].RequestDate.Equal(items[j].RequestDate) {
			return items[i].RequestID > items[j].RequestID
		}
		return items[i].RequestDate.After(items[j].RequestDate)
	})
	if filter.Limit > 0 && len(items) > filter.Limit {
		items = items[:filter.Limit]
	}
	return items, nil
}

func (s *Store) CountRequests(_ context.Context, filter ports.RequestListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.filterRequests(filter)), nil
}

// ApproveRequest holds the write lock for the whole workflow so the capacity
// check and every write succeed or fail together.
func (s *Store) ApproveRequest(_ context.Context, input ports.ApproveRequestInput) (ports.ApproveRequestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hr, ok := s.users[input.HREmail]
	if !ok {
		return ports.ApproveRequestResult{}, domainerrors.ErrHRNotFound
	}
	request, ok := s.requests[input.RequestID]
	if !ok {
		return ports.ApproveRequestResult{}, domainerrors.ErrRequestNotFound
	}
	if err := services.EnsureOwnedByHR(request, hr.Email); err != nil {
		return ports.ApproveRequestResult{}, err
	}
	if err := services.EnsureCapacity(hr); err != nil {
		return ports.ApproveRequestResult{}, err
	}
	if err := services.EnsureTransition(request, entities.RequestStatusApproved); err != nil {
		return ports.ApproveRequestResult{}, err
	}
	asset, ok := s.assets[request.AssetID]
	if !ok {
		return ports.ApproveRequestResult{}, domainerrors.ErrAssetNotFound
	}
	if !asset.InStock() {
		return ports.ApproveRequestResult{}, domainerrors.ErrAssetOutOfStock
	}

	result := ports.ApproveRequestResult{}
	existing, hasActive := s.activeAffiliationLocked(request.RequesterEmail)
	if hasActive && existing.HREmail != hr.Email {
		return ports.ApproveRequestResult{}, domainerrors.ErrAlreadyAffiliated
	}
	if hasActive {
		result.Affiliation = existing
	} else {
		affiliation, err := entities.NewAffiliation(
			input.AffiliationID,
			request.RequesterEmail,
			request.RequesterName,
			hr,
			input.ApprovedAt,
		)
		if err != nil {
			return ports.ApproveRequestResult{}, err
		}
		result.Affiliation = affiliation
		result.AffiliationCreated = true
	}
	if err := s.checkOutboxLocked(input.Event); err != nil {
		return ports.ApproveRequestResult{}, err
	}

	approvedAt := input.ApprovedAt.UTC()
	request.Status = entities.RequestStatusApproved
	request.ApprovalDate = &approvedAt
	s.requests[request.RequestID] = request

	asset.AvailableQuantity--
	s.assets[asset.AssetID] = asset

	if result.AffiliationCreated {
		s.affiliations[result.Affiliation.AffiliationID] = result.Affiliation
		hr.CurrentEmployees++
		s.users[hr.Email] = hr
	}
	s.appendOutboxLocked(input.Event)

	s.logger.Info("request approved in memory store",
		"event", "memory_approve_request",
		"module", application.ModuleName,
		"layer", "adapter",
		"request_id", request.RequestID,
		"affiliation_created", result.AffiliationCreated,
	)
	result.Request = request
	return result, nil
}

func (s *Store) RejectRequest(_ context.Context, input ports.RejectRequestInput) (entities.AssetRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[input.RequestID]
	if !ok {
		return entities.AssetRequest{}, domainerrors.ErrRequestNotFound
	}
	if err := services.EnsureOwnedByHR(request, input.HREmail); err != nil {
		return entities.AssetRequest{}, err
	}
	if err := services.EnsureTransition(request, entities.RequestStatusRejected); err != nil {
		return entities.AssetRequest{}, err
	}
	if err := s.checkOutboxLocked(input.Event); err != nil {
		return entities.AssetRequest{}, err
	}

	request.Status = entities.RequestStatusRejected
	s.requests[request.RequestID] = request
	s.appendOutboxLocked(input.Event)
	return request, nil
}

func (s *Store) CancelRequest(_ context.Context, requestID string, requesterEmail string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[requestID]
	if !ok || !services.CanCancel(request, requesterEmail) {
		return false, nil
	}
	delete(s.requests, requestID)
	return true, nil
}

func (s *Store) ReturnRequest(_ context.Context, input ports.ReturnRequestInput) (entities.AssetRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	request, ok := s.requests[input.RequestID]
	if !ok {
		return entities.AssetRequest{}, domainerrors.ErrRequestNotFound
	}
	asset, ok := s.assets[request.AssetID]
	if !ok {
		return entities.AssetRequest{}, domainerrors.ErrAssetNotFound
	}
	if err := services.EnsureCanReturn(request, asset, input.CallerEmail); err != nil {
		return entities.AssetRequest{}, err
	}
	if err := s.checkOutboxLocked(input.Event); err != nil {
		return entities.AssetRequest{}, err
	}

	returnedAt := input.ReturnedAt.UTC()
	request.Status = entities.RequestStatusReturned
	request.ReturnDate = &returnedAt
	s.requests[request.RequestID] = request

	asset.AvailableQuantity = services.RestockedQuantity(asset)
	s.assets[asset.AssetID] = asset
	s.appendOutboxLocked(input.Event)
	return request, nil
}

func (s *Store) AddAffiliation(_ context.Context, input ports.AddAffiliationInput) (entities.Affiliation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hr, ok := s.users[input.HREmail]
	if !ok {
		return entities.Affiliation{}, domainerrors.ErrHRNotFound
	}
	if err := services.EnsureCapacity(hr); err != nil {
		return entities.Affiliation{}, err
	}
	if _, active := s.activeAffiliationLocked(input.EmployeeEmail); active {
		return entities.Affiliation{}, domainerrors.ErrAlreadyAffiliated
	}
	affiliation, err := entities.NewAffiliation(
		input.AffiliationID,
		input.EmployeeEmail,
		input.EmployeeName,
		hr,
		input.AffiliatedAt,
	)
	if err != nil {
		return entities.Affiliation{}, err
	}
	if err := s.checkOutboxLocked(input.Event); err != nil {
		return entities.Affiliation{}, err
	}

	s.affiliations[affiliation.AffiliationID] = affiliation
	hr.CurrentEmployees++
	s.users[hr.Email] = hr
	s.appendOutboxLocked(input.Event)
	return affiliation, nil
}

func (s *Store) RemoveAffiliation(_ context.Context, input ports.RemoveAffiliationInput) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hr, ok := s.users[input.HREmail]
	if !ok {
		return entities.User{}, domainerrors.ErrHRNotFound
	}
	removed := make([]string, 0, 1)
	for id, affiliation := range s.affiliations {
		if affiliation.HREmail == input.HREmail && affiliation.EmployeeEmail == input.EmployeeEmail {
			removed = append(removed, id)
		}
	}
	if len(removed) == 0 {
		return entities.User{}, domainerrors.ErrAffiliationNotFound
	}
	if err := s.checkOutboxLocked(input.Event); err != nil {
		return entities.User{}, err
	}

	for _, id := range removed {
		delete(s.affiliations, id)
	}
	hr.CurrentEmployees = services.ReleasedEmployeeCount(hr.CurrentEmployees)
	s.users[hr.Email] = hr
	s.appendOutboxLocked(input.Event)
	return hr, nil
}

func (s *Store) ListActiveAffiliations(_ context.Context, hrEmail string) ([]entities.Affiliation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Affiliation, 0)
	for _, affiliation := range s.affiliations {
		if affiliation.HREmail == hrEmail && affiliation.IsActive() {
			items = append(items, affiliation)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].AffiliationDate.Equal(items[j].AffiliationDate) {
			return items[i].AffiliationID < items[j].AffiliationID
		}
		return items[i].AffiliationDate.Before(items[j].AffiliationDate)
	})
	return items, nil
}

func (s *Store) FindAffiliation(_ context.Context, employeeEmail string) (entities.Affiliation, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if active, ok := s.activeAffiliationLocked(employeeEmail); ok {
		return active, true, nil
	}
	for _, affiliation := range s.affiliations {
		if affiliation.EmployeeEmail == employeeEmail {
			return affiliation, true, nil
		}
	}
	return entities.Affiliation{}, false, nil
}

func (s *Store) GetPaymentByTransactionID(_ context.Context, transactionID string) (entities.Payment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paymentID, ok := s.paymentsByTx[transactionID]
	if !ok {
		return entities.Payment{}, false, nil
	}
	payment, ok := s.payments[paymentID]
	if !ok {
		return entities.Payment{}, false, domainerrors.ErrRepositoryInvariantBroke
	}
	return payment, true, nil
}

func (s *Store) ApplyPackageUpgrade(_ context.Context, input ports.ApplyUpgradeInput) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment := input.Payment
	if _, exists := s.paymentsByTx[payment.TransactionID]; exists {
		return entities.User{}, domainerrors.ErrDuplicatePayment
	}
	hr, ok := s.users[payment.HREmail]
	if !ok {
		return entities.User{}, domainerrors.ErrHRNotFound
	}
	newLimit, err := services.UpgradedPackageLimit(hr, payment.AddedSlots)
	if err != nil {
		return entities.User{}, err
	}
	if err := s.checkOutboxLocked(input.Event); err != nil {
		return entities.User{}, err
	}

	upgradedAt := payment.Date.UTC()
	hr.PackageLimit = newLimit
	hr.LastUpgrade = &upgradedAt
	s.users[hr.Email] = hr
	s.payments[payment.PaymentID] = payment
	s.paymentsByTx[payment.TransactionID] = payment.PaymentID
	s.appendOutboxLocked(input.Event)
	return hr, nil
}

func (s *Store) ListPaymentsByHR(_ context.Context, hrEmail string) ([]entities.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Payment, 0)
	for _, payment := range s.payments {
		if payment.HREmail == hrEmail {
			items = append(items, payment)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func (s *Store) ListPackages(_ context.Context) ([]entities.Package, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := append([]entities.Package(nil), s.packages...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].EmployeeLimit < items[j].EmployeeLimit })
	return items, nil
}

func (s *Store) UpsertPackages(_ context.Context, packages []entities.Package) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int, len(s.packages))
	for i, item := range s.packages {
		index[item.PackageID] = i
	}
	for _, item := range packages {
		if i, ok := index[item.PackageID]; ok {
			s.packages[i] = item
			continue
		}
		index[item.PackageID] = len(s.packages)
		s.packages = append(s.packages, item)
	}
	return len(packages), nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	messages := make([]ports.OutboxMessage, 0, limit)
	for _, id := range s.outboxOrder {
		if _, sent := s.outboxSent[id]; sent {
			continue
		}
		if msg, ok := s.outbox[id]; ok {
			messages = append(messages, msg)
		}
		if len(messages) >= limit {
			break
		}
	}
	return messages, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

// Ping satisfies the health check contract of the database-backed stores.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("mem-%d", value), nil
}

// OutboxEvents returns every outbox row in write order, for tests.
func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, id := range s.outboxOrder {
		if evt, ok := s.outbox[id]; ok {
			events = append(events, evt)
		}
	}
	return events
}

// ActiveAffiliationCount counts active affiliations of one HR, for tests.
func (s *Store) ActiveAffiliationCount(hrEmail string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, affiliation := range s.affiliations {
		if affiliation.HREmail == hrEmail && affiliation.IsActive() {
			count++
		}
	}
	return count
}

func (s *Store) filterRequests(filter ports.RequestListFilter) []entities.AssetRequest {
	requesterSearch := strings.ToLower(filter.RequesterSearch)
	assetSearch := strings.ToLower(filter.AssetSearch)

	items := make([]entities.AssetRequest, 0)
	for _, request := range s.requests {
		if filter.RequesterEmail != "" && request.RequesterEmail != filter.RequesterEmail {
			continue
		}
		if filter.HREmail != "" && request.HREmail != filter.HREmail {
			continue
		}
		if filter.Status != "" && request.Status != filter.Status {
			continue
		}
		if !filter.RequestedFrom.IsZero() && request.RequestDate.Before(filter.RequestedFrom) {
			continue
		}
		if !filter.RequestedBefore.IsZero() && !request.RequestDate.Before(filter.RequestedBefore) {
			continue
		}
		if requesterSearch != "" &&
			!strings.Contains(strings.ToLower(request.RequesterName), requesterSearch) &&
			!strings.Contains(strings.ToLower(request.RequesterEmail), requesterSearch) {
			continue
		}
		if assetSearch != "" && !strings.Contains(strings.ToLower(request.AssetName), assetSearch) {
			continue
		}
		items = append(items, request)
	}
	return items
}

func (s *Store) activeAffiliationLocked(employeeEmail string) (entities.Affiliation, bool) {
	for _, affiliation := range s.affiliations {
		if affiliation.EmployeeEmail == employeeEmail && affiliation.IsActive() {
			return affiliation, true
		}
	}
	return entities.Affiliation{}, false
}

func (s *Store) checkOutboxLocked(event ports.OutboxMessage) error {
	if event.OutboxID == "" {
		return nil
	}
	if _, exists := s.outbox[event.OutboxID]; exists {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	return nil
}

func (s *Store) appendOutboxLocked(event ports.OutboxMessage) {
	if event.OutboxID == "" {
		return
	}
	s.outbox[event.OutboxID] = event
	s.outboxOrder = append(s.outboxOrder, event.OutboxID)
}

// compareAssets reports whether a sorts before b in ascending order and
// whether both share the same sort key.
func compareAssets(a entities.Asset, b entities.Asset, field string) (bool, bool) {
	switch field {
	case "productName":
		x, y := strings.ToLower(a.ProductName), strings.ToLower(b.ProductName)
		return x < y, x == y
	case "productQuantity":
		return a.ProductQuantity < b.ProductQuantity, a.ProductQuantity == b.ProductQuantity
	case "availableQuantity":
		return a.AvailableQuantity < b.AvailableQuantity, a.AvailableQuantity == b.AvailableQuantity
	case "productType":
		return a.ProductType < b.ProductType, a.ProductType == b.ProductType
	default:
		return a.DateAdded.Before(b.DateAdded), a.DateAdded.Equal(b.DateAdded)
	}
}
