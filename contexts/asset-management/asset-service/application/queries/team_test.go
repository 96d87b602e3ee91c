package queries

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"assetverse/contexts/asset-management/asset-service/domain/entities"
	"assetverse/contexts/asset-management/asset-service/ports"
)

var errStoreDown = errors.New("store down")

type failingUsers struct {
	ports.UserRepository
	user entities.User
}

func (f failingUsers) GetUserByEmail(context.Context, string) (entities.User, error) {
	return f.user, nil
}

func (failingUsers) ListUsersByEmails(context.Context, []string) ([]entities.User, error) {
	return nil, errStoreDown
}

func (failingUsers) ListUnaffiliatedEmployees(context.Context) ([]entities.User, error) {
	return nil, errStoreDown
}

type failingAffiliations struct {
	ports.AffiliationRepository
}

func (failingAffiliations) ListActiveAffiliations(context.Context, string) ([]entities.Affiliation, error) {
	return nil, errStoreDown
}

type emptyAffiliations struct {
	ports.AffiliationRepository
}

func (emptyAffiliations) ListActiveAffiliations(context.Context, string) ([]entities.Affiliation, error) {
	return nil, nil
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestTeamQueriesLogStoreFailures(t *testing.T) {
	hr := entities.User{Email: "hr@acme.io", Role: entities.RoleHR, PackageLimit: 5}
	ctx := context.Background()

	logger, buf := captureLogger()
	_, err := ListMyEmployeesUseCase{Users: failingUsers{user: hr}, Affiliations: failingAffiliations{}, Logger: logger}.Execute(ctx, hr.Email)
	if !errors.Is(err, errStoreDown) || !strings.Contains(buf.String(), "team_list_employees_failed") {
		t.Fatalf("expected logged failure, err=%v log=%s", err, buf.String())
	}

	logger, buf = captureLogger()
	_, err = ListAvailableEmployeesUseCase{Users: failingUsers{}, Logger: logger}.Execute(ctx)
	if !errors.Is(err, errStoreDown) || !strings.Contains(buf.String(), "team_list_available_failed") {
		t.Fatalf("expected logged failure, err=%v log=%s", err, buf.String())
	}

	logger, buf = captureLogger()
	_, err = MyTeamUseCase{Users: failingUsers{user: hr}, Affiliations: failingAffiliations{}, Logger: logger}.Execute(ctx, hr.Email)
	if !errors.Is(err, errStoreDown) || !strings.Contains(buf.String(), "team_affiliations_failed") {
		t.Fatalf("expected logged failure, err=%v log=%s", err, buf.String())
	}

	logger, buf = captureLogger()
	_, err = MyTeamUseCase{Users: failingUsers{user: hr}, Affiliations: emptyAffiliations{}, Logger: logger}.Execute(ctx, hr.Email)
	if !errors.Is(err, errStoreDown) || !strings.Contains(buf.String(), "team_resolve_failed") {
		t.Fatalf("expected logged failure, err=%v log=%s", err, buf.String())
	}
}
