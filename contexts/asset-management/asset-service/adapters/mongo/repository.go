package mongoadapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/domain/services"
	"assetverse/contexts/asset-management/asset-service/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"

	indexActiveAffiliation = "affiliations_unique_active_employee"
	indexPaymentTx         = "payments_unique_transaction"
)

var assetSortFields = map[string]string{
	"dateAdded":         "dateAdded",
	"productName":       "productName",
	"productQuantity":   "productQuantity",
	"availableQuantity": "availableQuantity",
	"productType":       "productType",
}

// Repository implements the asset-service ports on MongoDB. Multi-document
// workflows need a replica set because they run inside session transactions.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

func NewRepository(client *mongo.Client, database string, logger *slog.Logger) *Repository {
	return &Repository{
		client: client,
		db:     client.Database(database),
		logger: application.ResolveLogger(logger),
	}
}

// EnsureIndexes creates the uniqueness guarantees the workflows rely on.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collectionAffiliations: {
			{
				Keys: bson.D{{Key: "employeeEmail", Value: 1}},
				Options: options.Index().
					SetName(indexActiveAffiliation).
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"status": string(entities.AffiliationStatusActive)}),
			},
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "status", Value: 1}}},
		},
		collectionPayments: {
			{
				Keys:    bson.D{{Key: "transactionId", Value: 1}},
				Options: options.Index().SetName(indexPaymentTx).SetUnique(true),
			},
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "date", Value: -1}}},
		},
		collectionAssets: {
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "dateAdded", Value: -1}}},
		},
		collectionRequests: {
			{Keys: bson.D{{Key: "hrEmail", Value: 1}, {Key: "requestDate", Value: -1}}},
			{Keys: bson.D{{Key: "requesterEmail", Value: 1}, {Key: "requestDate", Value: -1}}},
		},
		collectionOutbox: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
	}
	for name, models := range indexes {
		if _, err := r.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *Repository) CreateUserIfAbsent(ctx context.Context, user entities.User) (entities.User, bool, error) {
	doc := userDocumentFromEntity(user)
	result, err := r.db.Collection(collectionUsers).UpdateOne(
		ctx,
		bson.M{"_id": doc.Email},
		bson.M{"$setOnInsert": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return entities.User{}, false, err
	}
	if result.UpsertedCount > 0 {
		return user, true, nil
	}

	existing, err := r.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return entities.User{}, false, err
	}
	return existing, false, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var doc userDocument
	err := r.db.Collection(collectionUsers).
		FindOne(ctx, bson.M{"_id": entities.NormalizeEmail(email)}).
		Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.User{}, domainerrors.ErrUserNotFound
		}
		return entities.User{}, err
	}
	return doc.toEntity(), nil
}

func (r *Repository) ListUsersByEmails(ctx context.Context, emails []string) ([]entities.User, error) {
	if len(emails) == 0 {
		return []entities.User{}, nil
	}
	normalized := make([]string, 0, len(emails))
	for _, email := range emails {
		normalized = append(normalized, entities.NormalizeEmail(email))
	}

	var docs []userDocument
	if err := r.findAll(ctx, collectionUsers, bson.M{"_id": bson.M{"$in": normalized}}, nil, &docs); err != nil {
		return nil, err
	}
	byEmail := make(map[string]entities.User, len(docs))
	for _, doc := range docs {
		byEmail[doc.Email] = doc.toEntity()
	}
	users := make([]entities.User, 0, len(docs))
	for _, email := range normalized {
		if user, ok := byEmail[email]; ok {
			users = append(users, user)
			delete(byEmail, email)
		}
	}
	return users, nil
}

func (r *Repository) ListUnaffiliatedEmployees(ctx context.Context) ([]entities.User, error) {
	affiliated, err := r.db.Collection(collectionAffiliations).Distinct(ctx, "employeeEmail", bson.M{})
	if err != nil {
		return nil, err
	}

	filter := bson.M{"role": string(entities.RoleEmployee)}
	if len(affiliated) > 0 {
		filter["_id"] = bson.M{"$nin": affiliated}
	}
	var docs []userDocument
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if err := r.findAll(ctx, collectionUsers, filter, opts, &docs); err != nil {
		return nil, err
	}
	users := make([]entities.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toEntity())
	}
	return users, nil
}

func (r *Repository) CreateAsset(ctx context.Context, asset entities.Asset) error {
	if _, err := r.db.Collection(collectionAssets).InsertOne(ctx, assetDocumentFromEntity(asset)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) GetAsset(ctx context.Context, assetID string) (entities.Asset, error) {
	var doc assetDocument
	err := r.db.Collection(collectionAssets).FindOne(ctx, bson.M{"_id": assetID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Asset{}, domainerrors.ErrAssetNotFound
		}
		return entities.Asset{}, err
	}
	return doc.toEntity(), nil
}

func (r *Repository) ListAssets(ctx context.Context, filter ports.AssetListFilter) ([]entities.Asset, int, error) {
	query := assetQuery(filter)
	total, err := r.db.Collection(collectionAssets).CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	field, ok := assetSortFields[filter.SortField]
	if !ok {
		field = "dateAdded"
	}
	direction := 1
	if filter.SortDesc {
		direction = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: field, Value: direction}, {Key: "_id", Value: 1}})
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	var docs []assetDocument
	if err := r.findAll(ctx, collectionAssets, query, opts, &docs); err != nil {
		return nil, 0, err
	}
	items := make([]entities.Asset, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toEntity())
	}
	return items, int(total), nil
}

func (r *Repository) CountAssetsByType(ctx context.Context, hrEmail string) (map[entities.ProductType]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"hrEmail": hrEmail}}},
		{{Key: "$group", Value: bson.M{"_id": "$productType", "total": bson.M{"$sum": 1}}}},
	}
	cursor, err := r.db.Collection(collectionAssets).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ProductType string `bson:"_id"`
		Total       int    `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	counts := make(map[entities.ProductType]int, len(rows))
	for _, row := range rows {
		counts[entities.ProductType(row.ProductType)] = row.Total
	}
	return counts, nil
}

func (r *Repository) CreateRequest(ctx context.Context, request entities.AssetRequest) error {
	if _, err := r.db.Collection(collectionRequests).InsertOne(ctx, requestDocumentFromEntity(request)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) GetRequest(ctx context.Context, requestID string) (entities.AssetRequest, error) {
	return r.getRequest(ctx, requestID)
}

func (r *Repository) ListRequests(ctx context.Context, filter ports.RequestListFilter) ([]entities.AssetRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "requestDate", Value: -1}, {Key: "_id", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	var docs []requestDocument
	if err := r.findAll(ctx, collectionRequests, requestQuery(filter), opts, &docs); err != nil {
		return nil, err
	}
	items := make([]entities.AssetRequest, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toEntity())
	}
	return items, nil
}

func (r *Repository) CountRequests(ctx context.Context, filter ports.RequestListFilter) (int, error) {
	total, err := r.db.Collection(collectionRequests).CountDocuments(ctx, requestQuery(filter))
	if err != nil {
		return 0, err
	}
	return int(total), nil
}

func (r *Repository) ApproveRequest(ctx context.Context, input ports.ApproveRequestInput) (ports.ApproveRequestResult, error) {
	var result ports.ApproveRequestResult
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		result = ports.ApproveRequestResult{}
		hr, err := r.getHR(sc, input.HREmail)
		if err != nil {
			return err
		}
		request, err := r.getRequest(sc, input.RequestID)
		if err != nil {
			return err
		}
		if err := services.EnsureOwnedByHR(request, hr.Email); err != nil {
			return err
		}
		if err := services.EnsureCapacity(hr); err != nil {
			return err
		}
		if err := services.EnsureTransition(request, entities.RequestStatusApproved); err != nil {
			return err
		}

		stock, err := r.db.Collection(collectionAssets).UpdateOne(sc,
			bson.M{"_id": request.AssetID, "availableQuantity": bson.M{"$gt": 0}},
			bson.M{"$inc": bson.M{"availableQuantity": -1}},
		)
		if err != nil {
			return err
		}
		if stock.MatchedCount == 0 {
			return r.missingOrOutOfStock(sc, request.AssetID)
		}

		existing, hasActive, err := r.findActiveAffiliation(sc, request.RequesterEmail)
		if err != nil {
			return err
		}
		if hasActive && existing.HREmail != hr.Email {
			return domainerrors.ErrAlreadyAffiliated
		}

		approvedAt := input.ApprovedAt.UTC()
		update, err := r.db.Collection(collectionRequests).UpdateOne(sc,
			bson.M{"_id": request.RequestID, "requestStatus": string(entities.RequestStatusPending)},
			bson.M{"$set": bson.M{
				"requestStatus": string(entities.RequestStatusApproved),
				"approvalDate":  approvedAt,
			}},
		)
		if err != nil {
			return err
		}
		if update.ModifiedCount == 0 {
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
			if err := r.insertAffiliation(sc, affiliation); err != nil {
				return err
			}
			result.Affiliation = affiliation
			result.AffiliationCreated = true
		}
		return r.insertOutbox(sc, input.Event)
	})
	if err != nil {
		return ports.ApproveRequestResult{}, err
	}

	r.logger.Info("request approved in mongo",
		"event", "mongo_approve_request",
		"module", application.ModuleName,
		"layer", "adapter",
		"request_id", result.Request.RequestID,
		"affiliation_created", result.AffiliationCreated,
	)
	return result, nil
}

func (r *Repository) RejectRequest(ctx context.Context, input ports.RejectRequestInput) (entities.AssetRequest, error) {
	var rejected entities.AssetRequest
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		var doc requestDocument
		err := r.db.Collection(collectionRequests).FindOneAndUpdate(sc,
			bson.M{
				"_id":           input.RequestID,
				"hrEmail":       input.HREmail,
				"requestStatus": string(entities.RequestStatusPending),
			},
			bson.M{"$set": bson.M{"requestStatus": string(entities.RequestStatusRejected)}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return domainerrors.ErrInvalidStateTransition
			}
			return err
		}
		rejected = doc.toEntity()
		return r.insertOutbox(sc, input.Event)
	})
	if err != nil {
		return entities.AssetRequest{}, err
	}
	return rejected, nil
}

func (r *Repository) CancelRequest(ctx context.Context, requestID string, requesterEmail string) (bool, error) {
	result, err := r.db.Collection(collectionRequests).DeleteOne(ctx, bson.M{
		"_id":            requestID,
		"requesterEmail": requesterEmail,
		"requestStatus":  string(entities.RequestStatusPending),
	})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *Repository) ReturnRequest(ctx context.Context, input ports.ReturnRequestInput) (entities.AssetRequest, error) {
	var returned entities.AssetRequest
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		request, err := r.getRequest(sc, input.RequestID)
		if err != nil {
			return err
		}
		asset, err := r.GetAsset(sc, request.AssetID)
		if err != nil {
			return err
		}
		if err := services.EnsureCanReturn(request, asset, input.CallerEmail); err != nil {
			return err
		}

		returnedAt := input.ReturnedAt.UTC()
		update, err := r.db.Collection(collectionRequests).UpdateOne(sc,
			bson.M{"_id": request.RequestID, "requestStatus": string(entities.RequestStatusApproved)},
			bson.M{"$set": bson.M{
				"requestStatus": string(entities.RequestStatusReturned),
				"returnDate":    returnedAt,
			}},
		)
		if err != nil {
			return err
		}
		if update.ModifiedCount == 0 {
			return domainerrors.ErrInvalidStateTransition
		}
		if _, err := r.db.Collection(collectionAssets).UpdateOne(sc,
			bson.M{"_id": asset.AssetID},
			bson.M{"$set": bson.M{"availableQuantity": services.RestockedQuantity(asset)}},
		); err != nil {
			return err
		}

		request.Status = entities.RequestStatusReturned
		request.ReturnDate = &returnedAt
		returned = request
		return r.insertOutbox(sc, input.Event)
	})
	if err != nil {
		return entities.AssetRequest{}, err
	}
	return returned, nil
}

func (r *Repository) AddAffiliation(ctx context.Context, input ports.AddAffiliationInput) (entities.Affiliation, error) {
	var created entities.Affiliation
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		hr, err := r.getHR(sc, input.HREmail)
		if err != nil {
			return err
		}
		if err := services.EnsureCapacity(hr); err != nil {
			return err
		}
		if _, active, err := r.findActiveAffiliation(sc, input.EmployeeEmail); err != nil {
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
		if err := r.insertAffiliation(sc, affiliation); err != nil {
			return err
		}
		created = affiliation
		return r.insertOutbox(sc, input.Event)
	})
	if err != nil {
		return entities.Affiliation{}, err
	}
	return created, nil
}

func (r *Repository) RemoveAffiliation(ctx context.Context, input ports.RemoveAffiliationInput) (entities.User, error) {
	var updated entities.User
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		deleted, err := r.db.Collection(collectionAffiliations).DeleteOne(sc, bson.M{
			"hrEmail":       input.HREmail,
			"employeeEmail": input.EmployeeEmail,
		})
		if err != nil {
			return err
		}
		if deleted.DeletedCount == 0 {
			return domainerrors.ErrAffiliationNotFound
		}

		// Pipeline update floors the counter at zero.
		release := mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"currentEmployees": bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{"$currentEmployees", 1}}}},
			}}},
		}
		var doc userDocument
		err = r.db.Collection(collectionUsers).FindOneAndUpdate(sc,
			bson.M{"_id": input.HREmail},
			release,
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return domainerrors.ErrHRNotFound
			}
			return err
		}
		updated = doc.toEntity()
		return r.insertOutbox(sc, input.Event)
	})
	if err != nil {
		return entities.User{}, err
	}
	return updated, nil
}

func (r *Repository) ListActiveAffiliations(ctx context.Context, hrEmail string) ([]entities.Affiliation, error) {
	var docs []affiliationDocument
	opts := options.Find().SetSort(bson.D{{Key: "affiliationDate", Value: 1}})
	filter := bson.M{"hrEmail": hrEmail, "status": string(entities.AffiliationStatusActive)}
	if err := r.findAll(ctx, collectionAffiliations, filter, opts, &docs); err != nil {
		return nil, err
	}
	items := make([]entities.Affiliation, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toEntity())
	}
	return items, nil
}

func (r *Repository) FindAffiliation(ctx context.Context, employeeEmail string) (entities.Affiliation, bool, error) {
	affiliation, found, err := r.findActiveAffiliation(ctx, employeeEmail)
	if err != nil || found {
		return affiliation, found, err
	}

	var doc affiliationDocument
	err = r.db.Collection(collectionAffiliations).FindOne(ctx,
		bson.M{"employeeEmail": employeeEmail},
		options.FindOne().SetSort(bson.D{{Key: "affiliationDate", Value: -1}}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Affiliation{}, false, nil
		}
		return entities.Affiliation{}, false, err
	}
	return doc.toEntity(), true, nil
}

func (r *Repository) GetPaymentByTransactionID(ctx context.Context, transactionID string) (entities.Payment, bool, error) {
	var doc paymentDocument
	err := r.db.Collection(collectionPayments).FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Payment{}, false, nil
		}
		return entities.Payment{}, false, err
	}
	return doc.toEntity(), true, nil
}

func (r *Repository) ApplyPackageUpgrade(ctx context.Context, input ports.ApplyUpgradeInput) (entities.User, error) {
	var upgraded entities.User
	err := r.withTransaction(ctx, func(sc mongo.SessionContext) error {
		hr, err := r.getHR(sc, input.Payment.HREmail)
		if err != nil {
			return err
		}
		newLimit, err := services.UpgradedPackageLimit(hr, input.Payment.AddedSlots)
		if err != nil {
			return err
		}

		if _, err := r.db.Collection(collectionPayments).InsertOne(sc, paymentDocumentFromEntity(input.Payment)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return domainerrors.ErrDuplicatePayment
			}
			return err
		}

		upgradedAt := input.Payment.Date.UTC()
		if _, err := r.db.Collection(collectionUsers).UpdateOne(sc,
			bson.M{"_id": hr.Email},
			bson.M{"$set": bson.M{"packageLimit": newLimit, "lastUpgrade": upgradedAt}},
		); err != nil {
			return err
		}
		hr.PackageLimit = newLimit
		hr.LastUpgrade = &upgradedAt
		upgraded = hr
		return r.insertOutbox(sc, input.Event)
	})
	if err != nil {
		return entities.User{}, err
	}
	return upgraded, nil
}

func (r *Repository) ListPaymentsByHR(ctx context.Context, hrEmail string) ([]entities.Payment, error) {
	var docs []paymentDocument
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if err := r.findAll(ctx, collectionPayments, bson.M{"hrEmail": hrEmail}, opts, &docs); err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toEntity())
	}
	return items, nil
}

func (r *Repository) ListPackages(ctx context.Context) ([]entities.Package, error) {
	var docs []packageDocument
	opts := options.Find().SetSort(bson.D{{Key: "employeeLimit", Value: 1}})
	if err := r.findAll(ctx, collectionPackages, bson.M{}, opts, &docs); err != nil {
		return nil, err
	}
	items := make([]entities.Package, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toEntity())
	}
	return items, nil
}

func (r *Repository) UpsertPackages(ctx context.Context, packages []entities.Package) (int, error) {
	if len(packages) == 0 {
		return 0, nil
	}
	models := make([]mongo.WriteModel, 0, len(packages))
	for _, item := range packages {
		doc := packageDocument{
			PackageID:     item.PackageID,
			Name:          item.Name,
			EmployeeLimit: item.EmployeeLimit,
			Price:         item.Price,
			Features:      append([]string(nil), item.Features...),
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": doc.PackageID}).
			SetReplacement(doc).
			SetUpsert(true))
	}
	result, err := r.db.Collection(collectionPackages).BulkWrite(ctx, models)
	if err != nil {
		return 0, err
	}
	return int(result.UpsertedCount + result.ModifiedCount), nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var docs []outboxDocument
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	if err := r.findAll(ctx, collectionOutbox, bson.M{"status": outboxStatusPending}, opts, &docs); err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toPort())
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result, err := r.db.Collection(collectionOutbox).UpdateOne(ctx,
		bson.M{"_id": outboxID},
		bson.M{"$set": bson.M{"status": outboxStatusSent, "sentAt": sentAt.UTC()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domainerrors.ErrRepositoryInvariantBroke
	}
	return nil
}

func (r *Repository) withTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func (r *Repository) findAll(ctx context.Context, collection string, filter any, opts *options.FindOptions, out any) error {
	if opts == nil {
		opts = options.Find()
	}
	cursor, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (r *Repository) getHR(ctx context.Context, email string) (entities.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return entities.User{}, domainerrors.ErrHRNotFound
	}
	return user, err
}

func (r *Repository) getRequest(ctx context.Context, requestID string) (entities.AssetRequest, error) {
	var doc requestDocument
	err := r.db.Collection(collectionRequests).FindOne(ctx, bson.M{"_id": requestID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.AssetRequest{}, domainerrors.ErrRequestNotFound
		}
		return entities.AssetRequest{}, err
	}
	return doc.toEntity(), nil
}

func (r *Repository) findActiveAffiliation(ctx context.Context, employeeEmail string) (entities.Affiliation, bool, error) {
	var doc affiliationDocument
	err := r.db.Collection(collectionAffiliations).FindOne(ctx, bson.M{
		"employeeEmail": employeeEmail,
		"status":        string(entities.AffiliationStatusActive),
	}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entities.Affiliation{}, false, nil
		}
		return entities.Affiliation{}, false, err
	}
	return doc.toEntity(), true, nil
}

// insertAffiliation writes the affiliation and takes one slot from the HR
// account. Touching the HR document makes concurrent transactions conflict.
func (r *Repository) insertAffiliation(sc mongo.SessionContext, affiliation entities.Affiliation) error {
	if _, err := r.db.Collection(collectionAffiliations).InsertOne(sc, affiliationDocumentFromEntity(affiliation)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrAlreadyAffiliated
		}
		return err
	}
	_, err := r.db.Collection(collectionUsers).UpdateOne(sc,
		bson.M{"_id": affiliation.HREmail},
		bson.M{"$inc": bson.M{"currentEmployees": 1}},
	)
	return err
}

func (r *Repository) insertOutbox(sc mongo.SessionContext, message ports.OutboxMessage) error {
	if message.OutboxID == "" {
		return nil
	}
	if _, err := r.db.Collection(collectionOutbox).InsertOne(sc, outboxDocumentFromPort(message)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func assetQuery(filter ports.AssetListFilter) bson.M {
	query := bson.M{}
	if filter.HREmail != "" {
		query["hrEmail"] = filter.HREmail
	}
	if filter.Type != "" {
		query["productType"] = string(filter.Type)
	}
	if filter.OnlyInStock {
		query["availableQuantity"] = bson.M{"$gt": 0}
	}
	if filter.Search != "" {
		query["productName"] = containsPattern(filter.Search)
	}
	return query
}

func requestQuery(filter ports.RequestListFilter) bson.M {
	query := bson.M{}
	if filter.RequesterEmail != "" {
		query["requesterEmail"] = filter.RequesterEmail
	}
	if filter.HREmail != "" {
		query["hrEmail"] = filter.HREmail
	}
	if filter.Status != "" {
		query["requestStatus"] = string(filter.Status)
	}
	dateRange := bson.M{}
	if !filter.RequestedFrom.IsZero() {
		dateRange["$gte"] = filter.RequestedFrom.UTC()
	}
	if !filter.RequestedBefore.IsZero() {
		dateRange["$lt"] = filter.RequestedBefore.UTC()
	}
	if len(dateRange) > 0 {
		query["requestDate"] = dateRange
	}
	if filter.RequesterSearch != "" {
		pattern := containsPattern(filter.RequesterSearch)
		query["$or"] = bson.A{
			bson.M{"requesterName": pattern},
			bson.M{"requesterEmail": pattern},
		}
	}
	if filter.AssetSearch != "" {
		query["assetName"] = containsPattern(filter.AssetSearch)
	}
	return query
}

func containsPattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

// missingOrOutOfStock explains a conditional stock update that matched no document.
func (r *Repository) missingOrOutOfStock(ctx context.Context, assetID string) error {
	count, err := r.db.Collection(collectionAssets).CountDocuments(ctx, bson.M{"_id": assetID})
	if err != nil {
		return err
	}
	if count == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return domainerrors.ErrAssetOutOfStock
}
