package assetservice_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	assetservice "assetverse/contexts/asset-management/asset-service"
	"assetverse/contexts/asset-management/asset-service/adapters/memory"
	"assetverse/contexts/asset-management/asset-service/application/commands"
	"assetverse/contexts/asset-management/asset-service/application/guard"
	"assetverse/contexts/asset-management/asset-service/domain/entities"
	domainerrors "assetverse/contexts/asset-management/asset-service/domain/errors"
	"assetverse/contexts/asset-management/asset-service/ports"
	httptransport "assetverse/contexts/asset-management/asset-service/transport/http"
)

const (
	hrEmail      = "hr@acme.io"
	otherHREmail = "hr@globex.io"
	aliceEmail   = "alice@acme.io"
	bobEmail     = "bob@acme.io"
)

type fakeProcessor struct {
	sessions map[string]ports.CheckoutSession
	created  []ports.CheckoutSessionInput
	err      error
}

func (f *fakeProcessor) CreateCheckoutSession(_ context.Context, input ports.CheckoutSessionInput) (ports.CheckoutSession, error) {
	if f.err != nil {
		return ports.CheckoutSession{}, f.err
	}
	f.created = append(f.created, input)
	return ports.CheckoutSession{SessionID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
}

func (f *fakeProcessor) GetCheckoutSession(_ context.Context, sessionID string) (ports.CheckoutSession, error) {
	if f.err != nil {
		return ports.CheckoutSession{}, f.err
	}
	session, ok := f.sessions[sessionID]
	if !ok {
		return ports.CheckoutSession{}, domainerrors.ErrPaymentProcessor
	}
	return session, nil
}

func seedUsers() []entities.User {
	created := time.Now().Add(-24 * time.Hour).UTC()
	return []entities.User{
		{Email: hrEmail, Name: "Hana", Role: entities.RoleHR, CompanyName: "Acme", PackageLimit: 5, CreatedAt: created},
		{Email: otherHREmail, Name: "Gus", Role: entities.RoleHR, CompanyName: "Globex", PackageLimit: 5, CreatedAt: created},
		{Email: aliceEmail, Name: "Alice", Role: entities.RoleEmployee, CreatedAt: created},
		{Email: bobEmail, Name: "Bob", Role: entities.RoleEmployee, CreatedAt: created},
	}
}

func seedAsset(id string, productType entities.ProductType, quantity int, owner string) entities.Asset {
	return entities.Asset{
		AssetID:           id,
		ProductName:       "Laptop " + id,
		ProductType:       productType,
		ProductQuantity:   quantity,
		AvailableQuantity: quantity,
		HREmail:           owner,
		CompanyName:       "Acme",
		DateAdded:         time.Now().Add(-time.Hour).UTC(),
	}
}

func newTestModule(t *testing.T, users []entities.User, assets []entities.Asset, processor *fakeProcessor) assetservice.Module {
	t.Helper()
	if processor == nil {
		processor = &fakeProcessor{}
	}
	return assetservice.NewInMemoryModule(memory.Seed{Users: users, Assets: assets}, assetservice.External{
		Processor:  processor,
		SiteDomain: "https://assetverse.test",
	}, nil)
}

func authorizeHR(t *testing.T, module assetservice.Module, email string) guard.HRContext {
	t.Helper()
	hr, err := module.Handler.AuthorizeHR(context.Background(), email)
	if err != nil {
		t.Fatalf("authorize hr %s: %v", email, err)
	}
	return hr
}

func submit(t *testing.T, module assetservice.Module, requester string, assetID string) string {
	t.Helper()
	resp, err := module.Handler.SubmitRequestHandler(context.Background(), requester, httptransport.SubmitRequestRequest{
		AssetID:       assetID,
		RequesterName: requester,
	})
	if err != nil {
		t.Fatalf("submit request: %v", err)
	}
	return resp.InsertedID
}

func TestApproveRejectsFullAccountBeforeAnyWrite(t *testing.T) {
	users := seedUsers()
	users[0].CurrentEmployees = 5
	module := newTestModule(t, users, []entities.Asset{seedAsset("a1", entities.ProductTypeReturnable, 3, hrEmail)}, nil)
	ctx := context.Background()
	requestID := submit(t, module, aliceEmail, "a1")

	_, err := module.Handler.ApproveRequestHandler(ctx, authorizeHR(t, module, hrEmail), requestID)
	if !errors.Is(err, domainerrors.ErrCapacityExceeded) {
		t.Fatalf("expected capacity exceeded, got %v", err)
	}

	request, err := module.Store.GetRequest(ctx, requestID)
	if err != nil {
		t.Fatalf("get request: %v", err)
	}
	if request.Status != entities.RequestStatusPending {
		t.Fatalf("expected request to stay pending, got %s", request.Status)
	}
	asset, _ := module.Store.GetAsset(ctx, "a1")
	if asset.AvailableQuantity != 3 {
		t.Fatalf("expected stock untouched, got %d", asset.AvailableQuantity)
	}
	if module.Store.ActiveAffiliationCount(hrEmail) != 0 {
		t.Fatalf("expected no affiliation to be created")
	}
	if len(module.Store.OutboxEvents()) != 0 {
		t.Fatalf("expected no outbox event")
	}
}

func TestApproveAffiliatesRequesterOnce(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{
		seedAsset("a1", entities.ProductTypeReturnable, 3, hrEmail),
		seedAsset("a2", entities.ProductTypeNonReturnable, 3, hrEmail),
	}, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)

	first, err := module.Handler.ApproveRequestHandler(ctx, hr, submit(t, module, aliceEmail, "a1"))
	if err != nil {
		t.Fatalf("first approve: %v", err)
	}
	if !first.Success || first.Message != "Approved and Affiliated" || !first.Affiliated {
		t.Fatalf("unexpected first approval response: %+v", first)
	}
	second, err := module.Handler.ApproveRequestHandler(ctx, hr, submit(t, module, aliceEmail, "a2"))
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if second.Affiliated {
		t.Fatalf("expected existing affiliation to be reused")
	}

	user, _ := module.Store.GetUserByEmail(ctx, hrEmail)
	if user.CurrentEmployees != 1 || module.Store.ActiveAffiliationCount(hrEmail) != 1 {
		t.Fatalf("expected one counted affiliation, counter=%d active=%d",
			user.CurrentEmployees, module.Store.ActiveAffiliationCount(hrEmail))
	}
	asset, _ := module.Store.GetAsset(ctx, "a1")
	if asset.AvailableQuantity != 2 {
		t.Fatalf("expected stock 2, got %d", asset.AvailableQuantity)
	}

	events := module.Store.OutboxEvents()
	if len(events) != 2 || events[0].EventType != commands.EventRequestApproved {
		t.Fatalf("expected two approval events, got %+v", events)
	}
}

func TestApproveRejectsEmployeeOfAnotherCompany(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{
		seedAsset("a1", entities.ProductTypeReturnable, 3, hrEmail),
		seedAsset("g1", entities.ProductTypeReturnable, 3, otherHREmail),
	}, nil)
	ctx := context.Background()

	if _, err := module.Handler.ApproveRequestHandler(ctx, authorizeHR(t, module, otherHREmail), submit(t, module, aliceEmail, "g1")); err != nil {
		t.Fatalf("approve at globex: %v", err)
	}
	_, err := module.Handler.ApproveRequestHandler(ctx, authorizeHR(t, module, hrEmail), submit(t, module, aliceEmail, "a1"))
	if !errors.Is(err, domainerrors.ErrAlreadyAffiliated) {
		t.Fatalf("expected already affiliated, got %v", err)
	}
	asset, _ := module.Store.GetAsset(ctx, "a1")
	if asset.AvailableQuantity != 3 {
		t.Fatalf("expected stock untouched, got %d", asset.AvailableQuantity)
	}
}

func TestApproveForeignRequestIsForbidden(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{seedAsset("a1", entities.ProductTypeReturnable, 3, hrEmail)}, nil)
	requestID := submit(t, module, aliceEmail, "a1")

	_, err := module.Handler.ApproveRequestHandler(context.Background(), authorizeHR(t, module, otherHREmail), requestID)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := module.Handler.RejectRequestHandler(context.Background(), authorizeHR(t, module, otherHREmail), requestID); err == nil {
		t.Fatalf("expected reject by another company to fail")
	}
}

func TestApproveNeverDrivesStockNegative(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{seedAsset("a1", entities.ProductTypeReturnable, 1, hrEmail)}, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)
	first := submit(t, module, aliceEmail, "a1")
	second := submit(t, module, bobEmail, "a1")

	if _, err := module.Handler.ApproveRequestHandler(ctx, hr, first); err != nil {
		t.Fatalf("approve first: %v", err)
	}
	if _, err := module.Handler.ApproveRequestHandler(ctx, hr, second); !errors.Is(err, domainerrors.ErrAssetOutOfStock) {
		t.Fatalf("expected out of stock, got %v", err)
	}
	asset, _ := module.Store.GetAsset(ctx, "a1")
	if asset.AvailableQuantity != 0 {
		t.Fatalf("expected stock 0, got %d", asset.AvailableQuantity)
	}
	user, _ := module.Store.GetUserByEmail(ctx, hrEmail)
	if user.CurrentEmployees != 1 {
		t.Fatalf("expected failed approval to leave counter at 1, got %d", user.CurrentEmployees)
	}
}

func TestRejectOnlyFromPending(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{seedAsset("a1", entities.ProductTypeReturnable, 3, hrEmail)}, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)
	requestID := submit(t, module, aliceEmail, "a1")

	resp, err := module.Handler.RejectRequestHandler(ctx, hr, requestID)
	if err != nil || !resp.Success {
		t.Fatalf("reject: %+v %v", resp, err)
	}
	if _, err := module.Handler.ApproveRequestHandler(ctx, hr, requestID); !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected invalid transition after reject, got %v", err)
	}
}

func TestCancelOnlyWhilePending(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{seedAsset("a1", entities.ProductTypeReturnable, 3, hrEmail)}, nil)
	ctx := context.Background()
	pending := submit(t, module, aliceEmail, "a1")
	approved := submit(t, module, aliceEmail, "a1")
	if _, err := module.Handler.ApproveRequestHandler(ctx, authorizeHR(t, module, hrEmail), approved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	resp, err := module.Handler.CancelRequestHandler(ctx, bobEmail, pending)
	if err != nil || resp.DeletedCount != 0 {
		t.Fatalf("expected no-op for another caller, got %+v %v", resp, err)
	}
	resp, err = module.Handler.CancelRequestHandler(ctx, aliceEmail, approved)
	if err != nil || resp.DeletedCount != 0 {
		t.Fatalf("expected no-op for approved request, got %+v %v", resp, err)
	}
	if request, err := module.Store.GetRequest(ctx, approved); err != nil || request.Status != entities.RequestStatusApproved {
		t.Fatalf("expected approved request to remain, got %+v %v", request, err)
	}

	resp, err = module.Handler.CancelRequestHandler(ctx, aliceEmail, pending)
	if err != nil || resp.DeletedCount != 1 {
		t.Fatalf("expected pending request deleted, got %+v %v", resp, err)
	}
	if _, err := module.Store.GetRequest(ctx, pending); !errors.Is(err, domainerrors.ErrRequestNotFound) {
		t.Fatalf("expected request to be gone, got %v", err)
	}
}

func TestReturnRestocksExactlyOne(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{
		seedAsset("a1", entities.ProductTypeReturnable, 2, hrEmail),
		seedAsset("a2", entities.ProductTypeNonReturnable, 2, hrEmail),
	}, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)
	returnable := submit(t, module, aliceEmail, "a1")
	consumable := submit(t, module, aliceEmail, "a2")
	for _, id := range []string{returnable, consumable} {
		if _, err := module.Handler.ApproveRequestHandler(ctx, hr, id); err != nil {
			t.Fatalf("approve %s: %v", id, err)
		}
	}

	if _, err := module.Handler.ReturnRequestHandler(ctx, bobEmail, returnable); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected unrelated caller to be forbidden, got %v", err)
	}
	if _, err := module.Handler.ReturnRequestHandler(ctx, aliceEmail, consumable); !errors.Is(err, domainerrors.ErrAssetNotReturnable) {
		t.Fatalf("expected non-returnable, got %v", err)
	}

	resp, err := module.Handler.ReturnRequestHandler(ctx, aliceEmail, returnable)
	if err != nil || !resp.Success {
		t.Fatalf("return: %+v %v", resp, err)
	}
	asset, _ := module.Store.GetAsset(ctx, "a1")
	if asset.AvailableQuantity != 2 {
		t.Fatalf("expected stock back to 2, got %d", asset.AvailableQuantity)
	}
	request, _ := module.Store.GetRequest(ctx, returnable)
	if request.Status != entities.RequestStatusReturned || request.ReturnDate == nil {
		t.Fatalf("expected returned request with date, got %+v", request)
	}
	if _, err := module.Handler.ReturnRequestHandler(ctx, aliceEmail, returnable); !errors.Is(err, domainerrors.ErrInvalidStateTransition) {
		t.Fatalf("expected second return to fail, got %v", err)
	}
}

func TestConfirmPaymentAppliesUpgradeOnce(t *testing.T) {
	processor := &fakeProcessor{sessions: map[string]ports.CheckoutSession{
		"cs_1": {
			SessionID:        "cs_1",
			Paid:             true,
			PaymentIntentID:  "pi_123",
			AmountTotalCents: 800,
			Metadata: map[string]string{
				commands.MetadataHREmail:        hrEmail,
				commands.MetadataRequestedSlots: "10",
			},
		},
	}}
	module := newTestModule(t, seedUsers(), nil, processor)
	ctx := context.Background()

	first, err := module.Handler.ConfirmPaymentHandler(ctx, httptransport.ConfirmPaymentRequest{SessionID: "cs_1"})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if first.Message != "Limit upgraded successfully" || first.NewLimit != 15 {
		t.Fatalf("unexpected first confirmation: %+v", first)
	}

	second, err := module.Handler.ConfirmPaymentHandler(ctx, httptransport.ConfirmPaymentRequest{SessionID: "cs_1"})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !second.Success || second.Message != "Already processed" {
		t.Fatalf("expected already processed, got %+v", second)
	}

	user, _ := module.Store.GetUserByEmail(ctx, hrEmail)
	if user.PackageLimit != 15 || user.LastUpgrade == nil {
		t.Fatalf("expected limit 15 with upgrade date, got %+v", user)
	}
	payments, _ := module.Handler.PaymentHistoryHandler(ctx, authorizeHR(t, module, hrEmail))
	if len(payments) != 1 || payments[0].TransactionID != "pi_123" || payments[0].Amount != 8 {
		t.Fatalf("expected a single ledger entry, got %+v", payments)
	}
}

func TestConfirmPaymentValidation(t *testing.T) {
	processor := &fakeProcessor{sessions: map[string]ports.CheckoutSession{
		"cs_unpaid": {SessionID: "cs_unpaid", PaymentIntentID: "pi_1"},
		"cs_slots": {
			SessionID:       "cs_slots",
			Paid:            true,
			PaymentIntentID: "pi_2",
			Metadata:        map[string]string{commands.MetadataHREmail: hrEmail, commands.MetadataRequestedSlots: "0"},
		},
		"cs_ghost": {
			SessionID:       "cs_ghost",
			Paid:            true,
			PaymentIntentID: "pi_3",
			Metadata:        map[string]string{commands.MetadataHREmail: "ghost@acme.io", commands.MetadataRequestedSlots: "5"},
		},
	}}
	module := newTestModule(t, seedUsers(), nil, processor)
	ctx := context.Background()

	cases := map[string]error{
		"":          domainerrors.ErrSessionIDMissing,
		"cs_unpaid": domainerrors.ErrPaymentNotCompleted,
		"cs_slots":  domainerrors.ErrInvalidSlotCount,
		"cs_ghost":  domainerrors.ErrHRNotFound,
	}
	for sessionID, want := range cases {
		_, err := module.Handler.ConfirmPaymentHandler(ctx, httptransport.ConfirmPaymentRequest{SessionID: sessionID})
		if !errors.Is(err, want) {
			t.Fatalf("session %q: expected %v, got %v", sessionID, want, err)
		}
	}
}

func TestStartCheckoutBuildsHostedSession(t *testing.T) {
	processor := &fakeProcessor{}
	module := newTestModule(t, seedUsers(), nil, processor)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)

	resp, err := module.Handler.StartCheckoutHandler(ctx, hr, httptransport.CheckoutRequest{Price: 8, Members: 10})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if resp.URL == "" || len(processor.created) != 1 {
		t.Fatalf("expected one session with url, got %+v", resp)
	}
	input := processor.created[0]
	if input.UnitAmountCents != 800 || input.ProductName != "Upgrade: 10 Slots" {
		t.Fatalf("unexpected line item: %+v", input)
	}
	if input.Metadata[commands.MetadataRequestedSlots] != "10" || input.Metadata[commands.MetadataHREmail] != hrEmail {
		t.Fatalf("unexpected metadata: %+v", input.Metadata)
	}
	if input.CancelURL != "https://assetverse.test/dashboard/upgrade" {
		t.Fatalf("unexpected cancel url %q", input.CancelURL)
	}

	if _, err := module.Handler.StartCheckoutHandler(ctx, hr, httptransport.CheckoutRequest{Price: 0, Members: 10}); !errors.Is(err, domainerrors.ErrInvalidCheckout) {
		t.Fatalf("expected invalid checkout, got %v", err)
	}
}

func TestEmployeeCounterTracksActiveAffiliations(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{seedAsset("a1", entities.ProductTypeReturnable, 5, hrEmail)}, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)

	assertInvariant := func(step string) {
		t.Helper()
		user, err := module.Store.GetUserByEmail(ctx, hrEmail)
		if err != nil {
			t.Fatalf("%s: get hr: %v", step, err)
		}
		if active := module.Store.ActiveAffiliationCount(hrEmail); user.CurrentEmployees != active {
			t.Fatalf("%s: counter %d != active affiliations %d", step, user.CurrentEmployees, active)
		}
	}

	if _, err := module.Handler.AddToTeamHandler(ctx, hr, httptransport.AddToTeamRequest{EmployeeEmail: bobEmail}); err != nil {
		t.Fatalf("add bob: %v", err)
	}
	assertInvariant("add")
	if _, err := module.Handler.AddToTeamHandler(ctx, hr, httptransport.AddToTeamRequest{EmployeeEmail: bobEmail}); !errors.Is(err, domainerrors.ErrAlreadyAffiliated) {
		t.Fatalf("expected already affiliated, got %v", err)
	}
	assertInvariant("duplicate add")
	if _, err := module.Handler.ApproveRequestHandler(ctx, hr, submit(t, module, aliceEmail, "a1")); err != nil {
		t.Fatalf("approve alice: %v", err)
	}
	assertInvariant("approve")
	if _, err := module.Handler.RemoveEmployeeHandler(ctx, hr, bobEmail); err != nil {
		t.Fatalf("remove bob: %v", err)
	}
	assertInvariant("remove")
	if _, err := module.Handler.RemoveEmployeeHandler(ctx, hr, bobEmail); !errors.Is(err, domainerrors.ErrAffiliationNotFound) {
		t.Fatalf("expected second removal to be not found, got %v", err)
	}
	assertInvariant("double remove")

	status, err := module.Handler.PackageStatusHandler(ctx, hrEmail)
	if err != nil || status.CurrentEmployees != 1 || status.PackageLimit != 5 {
		t.Fatalf("unexpected package status %+v %v", status, err)
	}
}

func TestAddToTeamRespectsCapacityAndUserExistence(t *testing.T) {
	users := seedUsers()
	users[0].PackageLimit = 1
	module := newTestModule(t, users, nil, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)

	if _, err := module.Handler.AddToTeamHandler(ctx, hr, httptransport.AddToTeamRequest{EmployeeEmail: "nobody@acme.io"}); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
	resp, err := module.Handler.AddToTeamHandler(ctx, hr, httptransport.AddToTeamRequest{EmployeeEmail: aliceEmail})
	if err != nil || !resp.Success {
		t.Fatalf("add alice: %+v %v", resp, err)
	}
	if resp.Affiliation.CompanyName != "Acme" || resp.Affiliation.EmployeeName != "Alice" {
		t.Fatalf("unexpected affiliation %+v", resp.Affiliation)
	}
	if _, err := module.Handler.AddToTeamHandler(ctx, hr, httptransport.AddToTeamRequest{EmployeeEmail: bobEmail}); !errors.Is(err, domainerrors.ErrCapacityExceeded) {
		t.Fatalf("expected capacity exceeded, got %v", err)
	}
}

func TestTeamViews(t *testing.T) {
	module := newTestModule(t, seedUsers(), nil, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)
	if _, err := module.Handler.AddToTeamHandler(ctx, hr, httptransport.AddToTeamRequest{EmployeeEmail: aliceEmail}); err != nil {
		t.Fatalf("add alice: %v", err)
	}

	team, err := module.Handler.MyTeamHandler(ctx, aliceEmail)
	if err != nil {
		t.Fatalf("my team: %v", err)
	}
	if len(team) != 2 || team[0].Email != hrEmail || team[1].Email != aliceEmail {
		t.Fatalf("expected hr first then alice, got %+v", team)
	}
	if team, err := module.Handler.MyTeamHandler(ctx, bobEmail); err != nil || len(team) != 0 {
		t.Fatalf("expected empty team for unaffiliated employee, got %+v %v", team, err)
	}

	available, err := module.Handler.AvailableEmployeesHandler(ctx)
	if err != nil || len(available) != 1 || available[0].Email != bobEmail {
		t.Fatalf("expected only bob available, got %+v %v", available, err)
	}
	employees, err := module.Handler.MyEmployeesHandler(ctx, hr)
	if err != nil || len(employees.Employees) != 1 || employees.CurrentEmployees != 1 {
		t.Fatalf("unexpected my employees %+v %v", employees, err)
	}
}

func TestRegisterUserAndRole(t *testing.T) {
	module := newTestModule(t, seedUsers(), nil, nil)
	ctx := context.Background()

	resp, err := module.Handler.RegisterUserHandler(ctx, httptransport.RegisterUserRequest{
		Email: "New@Acme.io",
		Name:  "Newton",
		Role:  "hr",
	})
	if err != nil || !resp.Inserted {
		t.Fatalf("register: %+v %v", resp, err)
	}
	resp, err = module.Handler.RegisterUserHandler(ctx, httptransport.RegisterUserRequest{Email: "new@acme.io", Role: "employee"})
	if err != nil || resp.Inserted || resp.Message != "User already exists" {
		t.Fatalf("expected existing user response, got %+v %v", resp, err)
	}
	if _, err := module.Handler.RegisterUserHandler(ctx, httptransport.RegisterUserRequest{Email: "x@acme.io", Role: "admin"}); !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}

	role, err := module.Handler.GetUserRoleHandler(ctx, "new@acme.io")
	if err != nil || role.Role == nil || *role.Role != "hr" {
		t.Fatalf("expected hr role, got %+v %v", role, err)
	}
	role, err = module.Handler.GetUserRoleHandler(ctx, "ghost@acme.io")
	if err != nil || role.Role != nil {
		t.Fatalf("expected null role, got %+v %v", role, err)
	}
	status, err := module.Handler.PackageStatusHandler(ctx, "new@acme.io")
	if err != nil || status.PackageLimit != entities.DefaultPackageLimit || status.CurrentEmployees != 0 {
		t.Fatalf("unexpected new hr status %+v %v", status, err)
	}
}

func TestHRGuardRejectsEmployees(t *testing.T) {
	module := newTestModule(t, seedUsers(), nil, nil)
	if _, err := module.Handler.AuthorizeHR(context.Background(), aliceEmail); !errors.Is(err, domainerrors.ErrNotHRManager) {
		t.Fatalf("expected not hr manager, got %v", err)
	}
	if _, err := module.Handler.AuthorizeHR(context.Background(), "ghost@acme.io"); !errors.Is(err, domainerrors.ErrNotHRManager) {
		t.Fatalf("expected not hr manager for unknown user, got %v", err)
	}
}

func TestListAssetsPagesAndFilters(t *testing.T) {
	assets := make([]entities.Asset, 0, 12)
	for i := 0; i < 12; i++ {
		productType := entities.ProductTypeReturnable
		if i%3 == 0 {
			productType = entities.ProductTypeNonReturnable
		}
		asset := seedAsset(string(rune('a'+i)), productType, 1+i, hrEmail)
		asset.DateAdded = time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC)
		assets = append(assets, asset)
	}
	assets = append(assets, seedAsset("foreign", entities.ProductTypeReturnable, 4, otherHREmail))
	module := newTestModule(t, seedUsers(), assets, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)

	page, err := module.Handler.ListAssetsHandler(ctx, hr, httptransport.ListAssetsRequest{Page: "2", Limit: "5"})
	if err != nil {
		t.Fatalf("list assets: %v", err)
	}
	if page.TotalAssets != 12 || page.TotalPages != 3 || page.CurrentPage != 2 || len(page.Assets) != 5 {
		t.Fatalf("unexpected page: total=%d pages=%d current=%d len=%d",
			page.TotalAssets, page.TotalPages, page.CurrentPage, len(page.Assets))
	}
	if page.Assets[0].ID != "g" {
		t.Fatalf("expected newest-first ordering, got %s first", page.Assets[0].ID)
	}

	filtered, err := module.Handler.ListAssetsHandler(ctx, hr, httptransport.ListAssetsRequest{Type: "Non-returnable", Sort: "productQuantity", Order: "asc"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if filtered.TotalAssets != 4 || filtered.Assets[0].ProductQuantity != 1 {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}

	if _, err := module.Handler.ListAssetsHandler(ctx, hr, httptransport.ListAssetsRequest{Type: "Perishable"}); !errors.Is(err, domainerrors.ErrInvalidListFilter) {
		t.Fatalf("expected invalid filter, got %v", err)
	}

	beyond, err := module.Handler.ListAssetsHandler(ctx, hr, httptransport.ListAssetsRequest{Page: "9223372036854775807"})
	if err != nil {
		t.Fatalf("huge page: %v", err)
	}
	if len(beyond.Assets) != 0 || beyond.TotalAssets == 0 {
		t.Fatalf("expected an empty page past the end, got %+v", beyond)
	}
}

func TestHRStatsSummarizesInventory(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{
		seedAsset("a1", entities.ProductTypeReturnable, 3, hrEmail),
		seedAsset("a2", entities.ProductTypeReturnable, 3, hrEmail),
		seedAsset("a3", entities.ProductTypeNonReturnable, 3, hrEmail),
	}, nil)
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		submit(t, module, aliceEmail, "a1")
	}

	stats, err := module.Handler.HRStatsHandler(ctx, authorizeHR(t, module, hrEmail))
	if err != nil {
		t.Fatalf("hr stats: %v", err)
	}
	if len(stats.PieData) != 2 || stats.PieData[0].Name != "Returnable" || stats.PieData[0].Value != 2 || stats.PieData[1].Value != 1 {
		t.Fatalf("unexpected pie data %+v", stats.PieData)
	}
	if len(stats.PendingRequests) != 5 || stats.TotalRequests != 6 {
		t.Fatalf("expected 5 pending of 6 total, got %d of %d", len(stats.PendingRequests), stats.TotalRequests)
	}

	employee, err := module.Handler.EmployeeStatsHandler(ctx, aliceEmail)
	if err != nil {
		t.Fatalf("employee stats: %v", err)
	}
	if len(employee.PendingRequests) != 6 || len(employee.MonthlyRequests) != 6 || employee.Affiliation != nil {
		t.Fatalf("unexpected employee stats %+v", employee)
	}
}

func TestCreateAssetAndRequestListings(t *testing.T) {
	module := newTestModule(t, seedUsers(), []entities.Asset{seedAsset("empty", entities.ProductTypeReturnable, 0, otherHREmail)}, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)

	if _, err := module.Handler.CreateAssetHandler(ctx, hr, httptransport.CreateAssetRequest{ProductName: "Chair"}); !errors.Is(err, domainerrors.ErrMissingAssetFields) {
		t.Fatalf("expected missing fields, got %v", err)
	}
	created, err := module.Handler.CreateAssetHandler(ctx, hr, httptransport.CreateAssetRequest{
		ProductName:     "Monitor",
		ProductType:     string(entities.ProductTypeReturnable),
		ProductQuantity: 4,
	})
	if err != nil {
		t.Fatalf("create asset: %v", err)
	}
	if created.Asset.AvailableQuantity != 4 || created.Asset.HREmail != hrEmail || created.Asset.CompanyName != "Acme" {
		t.Fatalf("unexpected created asset %+v", created.Asset)
	}

	available, err := module.Handler.ListAvailableAssetsHandler(ctx, httptransport.AvailableAssetsRequest{})
	if err != nil {
		t.Fatalf("available assets: %v", err)
	}
	if len(available) != 1 || available[0].ID != created.InsertedID {
		t.Fatalf("expected only the stocked asset, got %+v", available)
	}

	submit(t, module, aliceEmail, created.InsertedID)
	bobRequest := submit(t, module, bobEmail, created.InsertedID)
	if _, err := module.Handler.RejectRequestHandler(ctx, hr, bobRequest); err != nil {
		t.Fatalf("reject: %v", err)
	}

	all, err := module.Handler.ListCompanyRequestsHandler(ctx, hr, httptransport.ListRequestsRequest{})
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 company requests, got %d %v", len(all), err)
	}
	searched, err := module.Handler.ListCompanyRequestsHandler(ctx, hr, httptransport.ListRequestsRequest{Search: "ALICE"})
	if err != nil || len(searched) != 1 || searched[0].RequesterEmail != aliceEmail {
		t.Fatalf("expected search to match alice only, got %+v %v", searched, err)
	}
	rejected, err := module.Handler.ListCompanyRequestsHandler(ctx, hr, httptransport.ListRequestsRequest{Status: string(entities.RequestStatusRejected)})
	if err != nil || len(rejected) != 1 {
		t.Fatalf("expected one rejected request, got %+v %v", rejected, err)
	}

	mine, err := module.Handler.ListMyRequestsHandler(ctx, aliceEmail, httptransport.ListRequestsRequest{Search: "monitor"})
	if err != nil || len(mine) != 1 || mine[0].RequestStatus != string(entities.RequestStatusPending) {
		t.Fatalf("unexpected own requests %+v %v", mine, err)
	}
	other, _ := module.Handler.ListCompanyRequestsHandler(ctx, authorizeHR(t, module, otherHREmail), httptransport.ListRequestsRequest{})
	if len(other) != 0 {
		t.Fatalf("expected requests to stay scoped to their company, got %d", len(other))
	}
}

func TestPackagesSortedByEmployeeLimit(t *testing.T) {
	module := newTestModule(t, seedUsers(), nil, nil)
	packages, err := module.Handler.ListPackagesHandler(context.Background())
	if err != nil {
		t.Fatalf("list packages: %v", err)
	}
	if len(packages) == 0 {
		t.Fatalf("expected default catalog")
	}
	for i := 1; i < len(packages); i++ {
		if packages[i-1].EmployeeLimit > packages[i].EmployeeLimit {
			t.Fatalf("packages not sorted: %+v", packages)
		}
	}
}

// staleLedger never finds a prior payment, so every confirmation reaches the
// storage-level uniqueness check.
type staleLedger struct {
	ports.PaymentRepository
}

func (staleLedger) GetPaymentByTransactionID(context.Context, string) (entities.Payment, bool, error) {
	return entities.Payment{}, false, nil
}

func paidSession() *fakeProcessor {
	return &fakeProcessor{sessions: map[string]ports.CheckoutSession{
		"cs_1": {
			SessionID:        "cs_1",
			Paid:             true,
			PaymentIntentID:  "pi_123",
			AmountTotalCents: 800,
			Metadata: map[string]string{
				commands.MetadataHREmail:        hrEmail,
				commands.MetadataRequestedSlots: "10",
			},
		},
	}}
}

func TestConfirmPaymentDuplicateInsertIsAlreadyProcessed(t *testing.T) {
	module := newTestModule(t, seedUsers(), nil, nil)
	ctx := context.Background()
	confirm := commands.ConfirmPaymentUseCase{
		Processor:   paidSession(),
		Payments:    staleLedger{PaymentRepository: module.Store},
		Users:       module.Store,
		Clock:       module.Store,
		IDGenerator: module.Store,
	}

	first, err := confirm.Execute(ctx, commands.ConfirmPaymentCommand{SessionID: "cs_1"})
	if err != nil || first.AlreadyProcessed || first.NewLimit != 15 {
		t.Fatalf("unexpected first confirmation %+v %v", first, err)
	}
	second, err := confirm.Execute(ctx, commands.ConfirmPaymentCommand{SessionID: "cs_1"})
	if err != nil {
		t.Fatalf("duplicate insert should not fail: %v", err)
	}
	if !second.AlreadyProcessed {
		t.Fatalf("expected duplicate insert to count as already processed, got %+v", second)
	}

	user, _ := module.Store.GetUserByEmail(ctx, hrEmail)
	if user.PackageLimit != 15 {
		t.Fatalf("expected limit applied once, got %d", user.PackageLimit)
	}
}

func TestConcurrentConfirmationsApplyUpgradeOnce(t *testing.T) {
	module := newTestModule(t, seedUsers(), nil, paidSession())
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := module.Handler.ConfirmPaymentHandler(ctx, httptransport.ConfirmPaymentRequest{SessionID: "cs_1"}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent confirm: %v", err)
	}

	user, _ := module.Store.GetUserByEmail(ctx, hrEmail)
	if user.PackageLimit != 15 {
		t.Fatalf("expected limit 15, got %d", user.PackageLimit)
	}
	payments, _ := module.Handler.PaymentHistoryHandler(ctx, authorizeHR(t, module, hrEmail))
	if len(payments) != 1 {
		t.Fatalf("expected one ledger row, got %d", len(payments))
	}
}

func TestConcurrentApprovalsRespectCapacity(t *testing.T) {
	users := seedUsers()
	users[0].PackageLimit = 1
	module := newTestModule(t, users, []entities.Asset{seedAsset("a1", entities.ProductTypeReturnable, 5, hrEmail)}, nil)
	ctx := context.Background()
	hr := authorizeHR(t, module, hrEmail)
	requests := []string{submit(t, module, aliceEmail, "a1"), submit(t, module, bobEmail, "a1")}

	var wg sync.WaitGroup
	results := make(chan error, len(requests))
	for _, requestID := range requests {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := module.Handler.ApproveRequestHandler(ctx, hr, id)
			results <- err
		}(requestID)
	}
	wg.Wait()
	close(results)

	approved, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			approved++
		case errors.Is(err, domainerrors.ErrCapacityExceeded):
			rejected++
		default:
			t.Fatalf("unexpected approval error: %v", err)
		}
	}
	if approved != 1 || rejected != 1 {
		t.Fatalf("expected one approval and one capacity rejection, got %d/%d", approved, rejected)
	}

	user, _ := module.Store.GetUserByEmail(ctx, hrEmail)
	if user.CurrentEmployees != 1 || module.Store.ActiveAffiliationCount(hrEmail) != 1 {
		t.Fatalf("expected one affiliation, counter=%d active=%d",
			user.CurrentEmployees, module.Store.ActiveAffiliationCount(hrEmail))
	}
	asset, _ := module.Store.GetAsset(ctx, "a1")
	if asset.AvailableQuantity != 4 {
		t.Fatalf("expected one unit taken, got %d", asset.AvailableQuantity)
	}
}
