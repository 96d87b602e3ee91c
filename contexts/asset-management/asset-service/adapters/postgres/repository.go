package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/domain/services"
	"assetverse/contexts/asset-management/asset-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"

	constraintActiveAffiliation = "affiliations_unique_active_employee"
	constraintPaymentTx         = "payments_unique_transaction"
)

var assetSortColumns = map[string]string{
	"dateAdded":         "date_added",
	"productName":       "product_name",
	"productQuantity":   "product_quantity",
	"availableQuantity": "available_quantity",
	"productType":       "product_type",
}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: application.ResolveLogger(logger),
	}
}

// Migrate creates or updates every asset-service table and index.
func (r *Repository) Migrate(ctx context.Context) error {
	tx := r.db.WithContext(ctx)
	if err := tx.AutoMigrate(
		&userModel{},
		&assetModel{},
		&requestModel{},
		&affiliationModel{},
		&paymentModel{},
		&packageModel{},
		&outboxModel{},
	); err != nil {
		return err
	}
	// At most one active affiliation per employee.
	return tx.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS " + constraintActiveAffiliation +
			" ON affiliations (employee_email) WHERE status = 'active'",
	).Error
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) CreateUserIfAbsent(ctx context.Context, user entities.User) (entities.User, bool, error) {
	row := userModelFromEntity(user)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(&row)
	if result.Error != nil {
		return entities.User{}, false, result.Error
	}
	if result.RowsAffected > 0 {
		return user, true, nil
	}

	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return entities.User{}, false, err
	}
	return existing, false, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", entities.NormalizeEmail(email)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListUsersByEmails(ctx context.Context, emails []string) ([]entities.User, error) {
	if len(emails) == 0 {
		return []entities.User{}, nil
	}
	normalized := make([]string, 0, len(emails))
	for _, email := range emails {
		normalized = append(normalized, entities.NormalizeEmail(email))
	}

	var rows []userModel
	if err := r.db.WithContext(ctx).
		Where("email IN ?", normalized).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	// Preserve the caller's ordering.
	byEmail := make(map[string]entities.User, len(rows))
	for _, row := range rows {
		byEmail[row.Email] = row.toEntity()
	}
	users := make([]entities.User, 0, len(rows))
	for _, email := range normalized {
		if user, ok := byEmail[email]; ok {
			users = append(users, user)
			delete(byEmail, email)
		}
	}
	return users, nil
}

func (r *Repository) ListUnaffiliatedEmployees(ctx context.Context) ([]entities.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Where("role = ?", string(entities.RoleEmployee)).
		Where("NOT EXISTS (SELECT 1 FROM affiliations a WHERE a.employee_email = users.email)").
		Order("email ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toEntity())
	}
	return users, nil
}

func (r *Repository) CreateAsset(ctx context.Context, asset entities.Asset) error {
	row := assetModelFromEntity(asset)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) GetAsset(ctx context.Context, assetID string) (entities.Asset, error) {
	var row assetModel
	err := r.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Asset{}, domainerrors.ErrAssetNotFound
		}
		return entities.Asset{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListAssets(ctx context.Context, filter ports.AssetListFilter) ([]entities.Asset, int, error) {
	var total int64
	if err := applyAssetFilter(r.db.WithContext(ctx).Model(&assetModel{}), filter).
		Count(&total).
		Error; err != nil {
		return nil, 0, err
	}

	column, ok := assetSortColumns[filter.SortField]
	if !ok {
		column = "date_added"
	}
	tx := applyAssetFilter(r.db.WithContext(ctx).Model(&assetModel{}), filter).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: filter.SortDesc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "asset_id"}, Desc: false})
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []assetModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	items := make([]entities.Asset, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *Repository) CountAssetsByType(ctx context.Context, hrEmail string) (map[entities.ProductType]int, error) {
	var rows []struct {
		ProductType string
		Total       int
	}
	if err := r.db.WithContext(ctx).
		Model(&assetModel{}).
		Select("product_type, COUNT(*) AS total").
		Where("hr_email = ?", hrEmail).
		Group("product_type").
		Scan(&rows).
		Error; err != nil {
		return nil, err
	}
	counts := make(map[entities.ProductType]int, len(rows))
	for _, row := range rows {
		counts[entities.ProductType(row.ProductType)] = row.Total
	}
	return counts, nil
}

func (r *Repository) CreateRequest(ctx context.Context, request entities.AssetRequest) error {
	row := requestModelFromEntity(request)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) GetRequest(ctx context.Context, requestID string) (entities.AssetRequest, error) {
	var row requestModel
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AssetRequest{}, domainerrors.ErrRequestNotFound
		}
		return entities.AssetRequest{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListRequests(ctx context.Context, filter ports.RequestListFilter) ([]entities.AssetRequest, error) {
	tx := applyRequestFilter(r.db.WithContext(ctx).Model(&requestModel{}), filter).
		Order("request_date DESC").
		Order("request_id DESC")
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var rows []requestModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.AssetRequest, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CountRequests(ctx context.Context, filter ports.RequestListFilter) (int, error) {
	var total int64
	if err := applyRequestFilter(r.db.WithContext(ctx).Model(&requestModel{}), filter).
		Count(&total).
		Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *Repository) ApproveRequest(ctx context.Context, input ports.ApproveRequestInput) (ports.ApproveRequestResult, error) {
	var result ports.ApproveRequestResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hr, err := lockUser(tx, input.HREmail)
		if err != nil {
			return err
		}

		var requestRow requestModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("request_id = ?", input.RequestID).
			First(&requestRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrRequestNotFound
			}
			return err
		}
		request := requestRow.toEntity()
		if err := services.EnsureOwnedByHR(request, hr.Email); err != nil {
			return err
		}
		// Capacity is checked under the HR row lock before the first write.
		if err := services.EnsureCapacity(hr); err != nil {
			return err
		}
		if err := services.EnsureTransition(request, entities.RequestStatusApproved); err != nil {
			return err
		}

		stock := tx.Model(&assetModel{}).
			Where("asset_id = ? AND available_quantity > 0", request.AssetID).
			UpdateColumn("available_quantity", gorm.Expr("available_quantity - 1"))
		if stock.Error != nil {
			return stock.Error
		}
		if stock.RowsAffected == 0 {
			return missingOrOutOfStock(tx, request.AssetID)
		}

		existing, hasActive, err := findActiveAffiliation(tx, request.RequesterEmail)
		if err != nil {
			return err
		}
		if hasActive && existing.HREmail != hr.Email {
			return domainerrors.ErrAlreadyAffiliated
		}

		approvedAt := input.ApprovedAt.UTC()
		update := tx.Model(&requestModel{}).
			Where("request_id = ? AND request_status = ?", request.RequestID, string(entities.RequestStatusPending)).
			Updates(map[string]any{
				"request_status": string(entities.RequestStatusApproved),
				"approval_date":  approvedAt,
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return domainerrors.ErrInvalidStateTransition
		}
		request.Status = entities.RequestStatusApproved
		request.ApprovalDate = &approvedAt
		result.Request = request

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
				return err
			}
			if err := insertAffiliation(tx, affiliation, hr.Email); err != nil {
				return err
			}
			result.Affiliation = affiliation
			result.AffiliationCreated = true
		}

		return insertOutbox(tx, input.Event)
	})
	if err != nil {
		return ports.ApproveRequestResult{}, err
	}

	r.logger.Info("request approved in postgres",
		"event", "postgres_approve_request",
		"module", application.ModuleName,
		"layer", "adapter",
		"request_id", result.Request.RequestID,
		"affiliation_created", result.AffiliationCreated,
	)
	return result, nil
}

func (r *Repository) RejectRequest(ctx context.Context, input ports.RejectRequestInput) (entities.AssetRequest, error) {
	var rejected entities.AssetRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&requestModel{}).
			Where("request_id = ? AND hr_email = ? AND request_status = ?",
				input.RequestID, input.HREmail, string(entities.RequestStatusPending)).
			Update("request_status", string(entities.RequestStatusRejected))
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return domainerrors.ErrInvalidStateTransition
		}

		var row requestModel
		if err := tx.Where("request_id = ?", input.RequestID).First(&row).Error; err != nil {
			return err
		}
		rejected = row.toEntity()
		return insertOutbox(tx, input.Event)
	})
	if err != nil {
		return entities.AssetRequest{}, err
	}
	return rejected, nil
}

func (r *Repository) CancelRequest(ctx context.Context, requestID string, requesterEmail string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("request_id = ? AND requester_email = ? AND request_status = ?",
			requestID, requesterEmail, string(entities.RequestStatusPending)).
		Delete(&requestModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *Repository) ReturnRequest(ctx context.Context, input ports.ReturnRequestInput) (entities.AssetRequest, error) {
	var returned entities.AssetRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var requestRow requestModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("request_id = ?", input.RequestID).
			First(&requestRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrRequestNotFound
			}
			return err
		}
		var assetRow assetModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("asset_id = ?", requestRow.AssetID).
			First(&assetRow).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrAssetNotFound
			}
			return err
		}

		request := requestRow.toEntity()
		asset := assetRow.toEntity()
		if err := services.EnsureCanReturn(request, asset, input.CallerEmail); err != nil {
			return err
		}

		returnedAt := input.ReturnedAt.UTC()
		if err := tx.Model(&requestModel{}).
			Where("request_id = ?", request.RequestID).
			Updates(map[string]any{
				"request_status": string(entities.RequestStatusReturned),
				"return_date":    returnedAt,
			}).
			Error; err != nil {
			return err
		}
		if err := tx.Model(&assetModel{}).
			Where("asset_id = ?", asset.AssetID).
			UpdateColumn("available_quantity", services.RestockedQuantity(asset)).
			Error; err != nil {
			return err
		}

		request.Status = entities.RequestStatusReturned
		request.ReturnDate = &returnedAt
		returned = request
		return insertOutbox(tx, input.Event)
	})
	if err != nil {
		return entities.AssetRequest{}, err
	}
	return returned, nil
}

func (r *Repository) AddAffiliation(ctx context.Context, input ports.AddAffiliationInput) (entities.Affiliation, error) {
	var created entities.Affiliation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hr, err := lockUser(tx, input.HREmail)
		if err != nil {
			return err
		}
		if err := services.EnsureCapacity(hr); err != nil {
			return err
		}
		if _, active, err := findActiveAffiliation(tx, input.EmployeeEmail); err != nil {
			return err
		} else if active {
			return domainerrors.ErrAlreadyAffiliated
		}

		affiliation, err := entities.NewAffiliation(
			input.AffiliationID,
			input.EmployeeEmail,
			input.EmployeeName,
			hr,
			input.AffiliatedAt,
		)
		if err != nil {
			return err
		}
		if err := insertAffiliation(tx, affiliation, hr.Email); err != nil {
			return err
		}
		created = affiliation
		return insertOutbox(tx, input.Event)
	})
	if err != nil {
		return entities.Affiliation{}, err
	}
	return created, nil
}

func (r *Repository) RemoveAffiliation(ctx context.Context, input ports.RemoveAffiliationInput) (entities.User, error) {
	var updated entities.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockUser(tx, input.HREmail); err != nil {
			return err
		}

		deleted := tx.Where("hr_email = ? AND employee_email = ?", input.HREmail, input.EmployeeEmail).
			Delete(&affiliationModel{})
		if deleted.Error != nil {
			return deleted.Error
		}
		if deleted.RowsAffected == 0 {
			return domainerrors.ErrAffiliationNotFound
		}

		if err := tx.Model(&userModel{}).
			Where("email = ?", input.HREmail).
			UpdateColumn("current_employees", gorm.Expr("GREATEST(current_employees - 1, 0)")).
			Error; err != nil {
			return err
		}

		var row userModel
		if err := tx.Where("email = ?", input.HREmail).First(&row).Error; err != nil {
			return err
		}
		updated = row.toEntity()
		return insertOutbox(tx, input.Event)
	})
	if err != nil {
		return entities.User{}, err
	}
	return updated, nil
}

func (r *Repository) ListActiveAffiliations(ctx context.Context, hrEmail string) ([]entities.Affiliation, error) {
	var rows []affiliationModel
	if err := r.db.WithContext(ctx).
		Where("hr_email = ? AND status = ?", hrEmail, string(entities.AffiliationStatusActive)).
		Order("affiliation_date ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Affiliation, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) FindAffiliation(ctx context.Context, employeeEmail string) (entities.Affiliation, bool, error) {
	var row affiliationModel
	err := r.db.WithContext(ctx).
		Where("employee_email = ?", employeeEmail).
		Order(clause.Expr{SQL: "CASE WHEN status = ? THEN 0 ELSE 1 END", Vars: []any{string(entities.AffiliationStatusActive)}}).
		Order("affiliation_date DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Affiliation{}, false, nil
		}
		return entities.Affiliation{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetPaymentByTransactionID(ctx context.Context, transactionID string) (entities.Payment, bool, error) {
	var row paymentModel
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Payment{}, false, nil
		}
		return entities.Payment{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ApplyPackageUpgrade(ctx context.Context, input ports.ApplyUpgradeInput) (entities.User, error) {
	var upgraded entities.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hr, err := lockUser(tx, input.Payment.HREmail)
		if err != nil {
			return err
		}
		newLimit, err := services.UpgradedPackageLimit(hr, input.Payment.AddedSlots)
		if err != nil {
			return err
		}

		row := paymentModelFromEntity(input.Payment)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) && constraintName(err) == constraintPaymentTx {
				return domainerrors.ErrDuplicatePayment
			}
			return err
		}

		upgradedAt := input.Payment.Date.UTC()
		if err := tx.Model(&userModel{}).
			Where("email = ?", hr.Email).
			Updates(map[string]any{
				"package_limit": newLimit,
				"last_upgrade":  upgradedAt,
			}).
			Error; err != nil {
			return err
		}
		hr.PackageLimit = newLimit
		hr.LastUpgrade = &upgradedAt
		upgraded = hr
		return insertOutbox(tx, input.Event)
	})
	if err != nil {
		return entities.User{}, err
	}
	return upgraded, nil
}

func (r *Repository) ListPaymentsByHR(ctx context.Context, hrEmail string) ([]entities.Payment, error) {
	var rows []paymentModel
	if err := r.db.WithContext(ctx).
		Where("hr_email = ?", hrEmail).
		Order("date DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) ListPackages(ctx context.Context) ([]entities.Package, error) {
	var rows []packageModel
	if err := r.db.WithContext(ctx).
		Order("employee_limit ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Package, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpsertPackages(ctx context.Context, packages []entities.Package) (int, error) {
	if len(packages) == 0 {
		return 0, nil
	}
	rows := make([]packageModel, 0, len(packages))
	for _, item := range packages {
		rows = append(rows, packageModel{
			PackageID:     item.PackageID,
			Name:          item.Name,
			EmployeeLimit: item.EmployeeLimit,
			Price:         item.Price,
			Features:      append([]string(nil), item.Features...),
		})
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "package_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "employee_limit", "price", "features"}),
		}).
		Create(&rows)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPort())
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":  outboxStatusSent,
			"sent_at": sentAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	return nil
}

func lockUser(tx *gorm.DB, email string) (entities.User, error) {
	var row userModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("email = ?", email).
		First(&row).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, domainerrors.ErrHRNotFound
		}
		return entities.User{}, err
	}
	return row.toEntity(), nil
}

func findActiveAffiliation(tx *gorm.DB, employeeEmail string) (entities.Affiliation, bool, error) {
	var row affiliationModel
	err := tx.Where("employee_email = ? AND status = ?", employeeEmail, string(entities.AffiliationStatusActive)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Affiliation{}, false, nil
		}
		return entities.Affiliation{}, false, err
	}
	return row.toEntity(), true, nil
}

// insertAffiliation writes the affiliation and takes one slot from the HR account.
func insertAffiliation(tx *gorm.DB, affiliation entities.Affiliation, hrEmail string) error {
	row := affiliationModelFromEntity(affiliation)
	if err := tx.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			if constraintName(err) == constraintActiveAffiliation {
				return domainerrors.ErrAlreadyAffiliated
			}
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return tx.Model(&userModel{}).
		Where("email = ?", hrEmail).
		UpdateColumn("current_employees", gorm.Expr("current_employees + 1")).
		Error
}

func insertOutbox(tx *gorm.DB, message ports.OutboxMessage) error {
	if message.OutboxID == "" {
		return nil
	}
	row := outboxModelFromPort(message)
	if err := tx.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func applyAssetFilter(tx *gorm.DB, filter ports.AssetListFilter) *gorm.DB {
	if filter.HREmail != "" {
		tx = tx.Where("hr_email = ?", filter.HREmail)
	}
	if filter.Type != "" {
		tx = tx.Where("product_type = ?", string(filter.Type))
	}
	if filter.OnlyInStock {
		tx = tx.Where("available_quantity > 0")
	}
	if filter.Search != "" {
		tx = tx.Where("product_name ILIKE ?", likePattern(filter.Search))
	}
	return tx
}

func applyRequestFilter(tx *gorm.DB, filter ports.RequestListFilter) *gorm.DB {
	if filter.RequesterEmail != "" {
		tx = tx.Where("requester_email = ?", filter.RequesterEmail)
	}
	if filter.HREmail != "" {
		tx = tx.Where("hr_email = ?", filter.HREmail)
	}
	if filter.Status != "" {
		tx = tx.Where("request_status = ?", string(filter.Status))
	}
	if !filter.RequestedFrom.IsZero() {
		tx = tx.Where("request_date >= ?", filter.RequestedFrom.UTC())
	}
	if !filter.RequestedBefore.IsZero() {
		tx = tx.Where("request_date < ?", filter.RequestedBefore.UTC())
	}
	if filter.RequesterSearch != "" {
		pattern := likePattern(filter.RequesterSearch)
		tx = tx.Where("(requester_name ILIKE ? OR requester_email ILIKE ?)", pattern, pattern)
	}
	if filter.AssetSearch != "" {
		tx = tx.Where("asset_name ILIKE ?", likePattern(filter.AssetSearch))
	}
	return tx
}

func likePattern(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
	return "%" + escaped + "%"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// missingOrOutOfStock explains a conditional stock update that matched no row.
func missingOrOutOfStock(tx *gorm.DB, assetID string) error {
	var count int64
	if err := tx.Model(&assetModel{}).Where("asset_id = ?", assetID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return domainerrors.ErrAssetOutOfStock
}
