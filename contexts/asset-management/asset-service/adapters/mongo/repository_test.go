package mongoadapter

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The URI must point at a replica set; approvals run in a transaction.
const testURIEnv = "ASSETVERSE_TEST_MONGO_URI"

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	uri := os.Getenv(testURIEnv)
	if uri == "" {
		t.Skipf("%s not set", testURIEnv)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("connect mongo: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	repo := NewRepository(client, "assetverse_test", nil)
	if err := repo.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return repo
}

func TestApproveReportsMissingAndEmptyAssets(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	suffix := uuid.NewString()
	hrEmail := "hr-" + suffix + "@acme.io"
	now := time.Now().UTC()

	if _, _, err := repo.CreateUserIfAbsent(ctx, entities.User{
		Email: hrEmail, Name: "Hana", Role: entities.RoleHR, CompanyName: "Acme", PackageLimit: 5, CreatedAt: now,
	}); err != nil {
		t.Fatalf("create hr: %v", err)
	}
	empty := entities.Asset{
		AssetID: "asset-" + suffix, ProductName: "Laptop", ProductType: entities.ProductTypeReturnable,
		ProductQuantity: 1, AvailableQuantity: 0, HREmail: hrEmail, CompanyName: "Acme", DateAdded: now,
	}
	if err := repo.CreateAsset(ctx, empty); err != nil {
		t.Fatalf("create asset: %v", err)
	}

	cases := map[string]error{
		empty.AssetID:       domainerrors.ErrAssetOutOfStock,
		"missing-" + suffix: domainerrors.ErrAssetNotFound,
	}
	for assetID, want := range cases {
		request := entities.AssetRequest{
			RequestID: uuid.NewString(), AssetID: assetID, AssetName: "Laptop", AssetType: entities.ProductTypeReturnable,
			RequesterEmail: "alice-" + suffix + "@acme.io", RequesterName: "Alice", HREmail: hrEmail,
			CompanyName: "Acme", Status: entities.RequestStatusPending, RequestDate: now,
		}
		if err := repo.CreateRequest(ctx, request); err != nil {
			t.Fatalf("create request: %v", err)
		}
		_, err := repo.ApproveRequest(ctx, ports.ApproveRequestInput{
			RequestID: request.RequestID, HREmail: hrEmail, AffiliationID: uuid.NewString(), ApprovedAt: now,
		})
		if !errors.Is(err, want) {
			t.Fatalf("asset %s: expected %v, got %v", assetID, want, err)
		}
	}
}
