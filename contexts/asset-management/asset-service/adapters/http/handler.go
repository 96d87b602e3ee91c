package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	application "assetverse/contexts/asset-management/asset-service/application"
	"assetverse/contexts/asset-management/asset-service/application/commands"
	"assetverse/contexts/asset-management/asset-service/application/guard"
	"assetverse/contexts/asset-management/asset-service/application/queries"
	httptransport "assetverse/contexts/asset-management/asset-service/transport/http"
)

const (
	messageUserExists       = "User already exists"
	messageApproved         = "Approved and Affiliated"
	messageRejected         = "Request rejected"
	messageReturned         = "Asset returned"
	messageEmployeeRemoved  = "Employee removed from team"
	messageLimitUpgraded    = "Limit upgraded successfully"
	messageAlreadyProcessed = "Already processed"
)

// Handler is the transport-facing facade over the asset-service use cases.
// Callers pass an already verified email or HR context.
type Handler struct {
	Authenticator guard.Authenticator
	HRGuard       guard.HRGuard

	RegisterUser   commands.RegisterUserUseCase
	CreateAsset    commands.CreateAssetUseCase
	SubmitRequest  commands.SubmitRequestUseCase
	ApproveRequest commands.ApproveRequestUseCase
	RejectRequest  commands.RejectRequestUseCase
	CancelRequest  commands.CancelRequestUseCase
	ReturnRequest  commands.ReturnRequestUseCase
	AddToTeam      commands.AddToTeamUseCase
	RemoveEmployee commands.RemoveEmployeeUseCase
	StartCheckout  commands.StartCheckoutUseCase
	ConfirmPayment commands.ConfirmPaymentUseCase

	GetUserRole        queries.GetUserRoleUseCase
	PackageStatus      queries.PackageStatusUseCase
	ListPackages       queries.ListPackagesUseCase
	ListAssets         queries.ListAssetsUseCase
	ListAvailable      queries.ListAvailableAssetsUseCase
	CompanyRequests    queries.ListCompanyRequestsUseCase
	MyRequests         queries.ListMyRequestsUseCase
	EmployeeStats      queries.EmployeeStatsUseCase
	HRStats            queries.HRStatsUseCase
	MyEmployees        queries.ListMyEmployeesUseCase
	AvailableEmployees queries.ListAvailableEmployeesUseCase
	MyTeam             queries.MyTeamUseCase
	PaymentHistory     queries.PaymentHistoryUseCase

	Logger *slog.Logger
}

// Authenticate verifies a bearer token and returns the caller email.
func (h Handler) Authenticate(ctx context.Context, token string) (string, error) {
	identity, err := h.Authenticator.Authenticate(ctx, token)
	if err != nil {
		return "", err
	}
	return identity.Email, nil
}

// AuthorizeHR resolves the HR context for an authenticated caller.
func (h Handler) AuthorizeHR(ctx context.Context, callerEmail string) (guard.HRContext, error) {
	return h.HRGuard.Authorize(ctx, callerEmail)
}

// RegisterUserHandler godoc
// @Summary Register user on first sign-in
// @Description Inserts the user unless the email already exists.
// @Tags users
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterUserRequest true "User profile"
// @Success 200 {object} httptransport.RegisterUserResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /users [post]
func (h Handler) RegisterUserHandler(
	ctx context.Context,
	req httptransport.RegisterUserRequest,
) (httptransport.RegisterUserResponse, error) {
	result, err := h.RegisterUser.Execute(ctx, commands.RegisterUserCommand{
		Email:       req.Email,
		Name:        req.Name,
		Photo:       req.Photo,
		Role:        req.Role,
		CompanyName: req.CompanyName,
		CompanyLogo: req.CompanyLogo,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return httptransport.RegisterUserResponse{}, err
	}
	if !result.Inserted {
		return httptransport.RegisterUserResponse{Message: messageUserExists, Inserted: false}, nil
	}
	return httptransport.RegisterUserResponse{Inserted: true, InsertedID: result.User.Email}, nil
}

// GetUserRoleHandler godoc
// @Summary Get user role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} httptransport.UserRoleResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /users/{email}/role [get]
func (h Handler) GetUserRoleHandler(ctx context.Context, email string) (httptransport.UserRoleResponse, error) {
	role, found, err := h.GetUserRole.Execute(ctx, email)
	if err != nil {
		return httptransport.UserRoleResponse{}, err
	}
	if !found {
		return httptransport.UserRoleResponse{}, nil
	}
	value := string(role)
	return httptransport.UserRoleResponse{Role: &value}, nil
}

// ListPackagesHandler godoc
// @Summary List slot packages
// @Tags payments
// @Produce json
// @Success 200 {array} httptransport.PackageDTO
// @Router /packages [get]
func (h Handler) ListPackagesHandler(ctx context.Context) ([]httptransport.PackageDTO, error) {
	items, err := h.ListPackages.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return mapPackages(items), nil
}

// CreateAssetHandler godoc
// @Summary Create asset
// @Description Adds an asset to the HR company's inventory.
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CreateAssetRequest true "Asset payload"
// @Success 201 {object} httptransport.CreateAssetResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /assets [post]
func (h Handler) CreateAssetHandler(
	ctx context.Context,
	hr guard.HRContext,
	req httptransport.CreateAssetRequest,
) (httptransport.CreateAssetResponse, error) {
	asset, err := h.CreateAsset.Execute(ctx, commands.CreateAssetCommand{
		HREmail:         hr.HREmail,
		CompanyName:     hr.CompanyName,
		ProductName:     req.ProductName,
		ProductImage:    req.ProductImage,
		ProductType:     req.ProductType,
		ProductQuantity: req.ProductQuantity,
	})
	if err != nil {
		return httptransport.CreateAssetResponse{}, err
	}
	return httptransport.CreateAssetResponse{
		InsertedID: asset.AssetID,
		Asset:      mapAsset(asset),
	}, nil
}

// ListAssetsHandler godoc
// @Summary List HR assets
// @Description Paginated inventory of the caller's company.
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Param search query string false "Product name substring"
// @Param type query string false "Returnable or Non-returnable"
// @Param sort query string false "dateAdded, productName, productQuantity, availableQuantity, productType"
// @Param order query string false "asc or desc"
// @Success 200 {object} httptransport.ListAssetsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /assets [get]
func (h Handler) ListAssetsHandler(
	ctx context.Context,
	hr guard.HRContext,
	req httptransport.ListAssetsRequest,
) (httptransport.ListAssetsResponse, error) {
	query := queries.ListAssetsQuery{
		HREmail: hr.HREmail,
		Search:  strings.TrimSpace(req.Search),
		Type:    strings.TrimSpace(req.Type),
		Sort:    strings.TrimSpace(req.Sort),
		Order:   strings.TrimSpace(req.Order),
	}
	if parsed, err := strconv.Atoi(strings.TrimSpace(req.Page)); err == nil {
		query.Page = parsed
	}
	if parsed, err := strconv.Atoi(strings.TrimSpace(req.Limit)); err == nil {
		query.Limit = parsed
	}

	result, err := h.ListAssets.Execute(ctx, query)
	if err != nil {
		return httptransport.ListAssetsResponse{}, err
	}
	return httptransport.ListAssetsResponse{
		Assets:      mapAssets(result.Items),
		TotalAssets: result.TotalCount,
		TotalPages:  result.TotalPages,
		CurrentPage: result.CurrentPage,
	}, nil
}

// ListAvailableAssetsHandler godoc
// @Summary List requestable assets
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param search query string false "Product name substring"
// @Param type query string false "Returnable or Non-returnable"
// @Success 200 {array} httptransport.AssetDTO
// @Router /available-assets [get]
func (h Handler) ListAvailableAssetsHandler(
	ctx context.Context,
	req httptransport.AvailableAssetsRequest,
) ([]httptransport.AssetDTO, error) {
	items, err := h.ListAvailable.Execute(ctx, queries.AvailableAssetsQuery{
		Search: strings.TrimSpace(req.Search),
		Type:   strings.TrimSpace(req.Type),
	})
	if err != nil {
		return nil, err
	}
	return mapAssets(items), nil
}

// SubmitRequestHandler godoc
// @Summary Request an asset
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.SubmitRequestRequest true "Request payload"
// @Success 200 {object} httptransport.SubmitRequestResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /asset-requests [post]
func (h Handler) SubmitRequestHandler(
	ctx context.Context,
	callerEmail string,
	req httptransport.SubmitRequestRequest,
) (httptransport.SubmitRequestResponse, error) {
	request, err := h.SubmitRequest.Execute(ctx, commands.SubmitRequestCommand{
		AssetID:        strings.TrimSpace(req.AssetID),
		RequesterEmail: callerEmail,
		RequesterName:  req.RequesterName,
		Note:           req.Note,
	})
	if err != nil {
		return httptransport.SubmitRequestResponse{}, err
	}
	return httptransport.SubmitRequestResponse{
		InsertedID: request.RequestID,
		Request:    mapRequest(request),
	}, nil
}

// ListCompanyRequestsHandler godoc
// @Summary List company requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param search query string false "Requester name or email substring"
// @Param status query string false "pending, approved, rejected or returned"
// @Success 200 {array} httptransport.RequestDTO
// @Router /all-requests [get]
func (h Handler) ListCompanyRequestsHandler(
	ctx context.Context,
	hr guard.HRContext,
	req httptransport.ListRequestsRequest,
) ([]httptransport.RequestDTO, error) {
	items, err := h.CompanyRequests.Execute(ctx, queries.CompanyRequestsQuery{
		HREmail: hr.HREmail,
		Search:  strings.TrimSpace(req.Search),
		Status:  strings.TrimSpace(req.Status),
	})
	if err != nil {
		return nil, err
	}
	return mapRequests(items), nil
}

// ListMyRequestsHandler godoc
// @Summary List own requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param search query string false "Asset name substring"
// @Param status query string false "pending, approved, rejected or returned"
// @Success 200 {array} httptransport.RequestDTO
// @Router /my-requests [get]
func (h Handler) ListMyRequestsHandler(
	ctx context.Context,
	callerEmail string,
	req httptransport.ListRequestsRequest,
) ([]httptransport.RequestDTO, error) {
	items, err := h.MyRequests.Execute(ctx, queries.MyRequestsQuery{
		RequesterEmail: callerEmail,
		Search:         strings.TrimSpace(req.Search),
		Status:         strings.TrimSpace(req.Status),
	})
	if err != nil {
		return nil, err
	}
	return mapRequests(items), nil
}

// ApproveRequestHandler godoc
// @Summary Approve request
// @Description Approves a pending request, takes one unit of stock and affiliates the requester.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} httptransport.ApproveRequestResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /requests/approve/{id} [patch]
func (h Handler) ApproveRequestHandler(
	ctx context.Context,
	hr guard.HRContext,
	requestID string,
) (httptransport.ApproveRequestResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	result, err := h.ApproveRequest.Execute(ctx, commands.ApproveRequestCommand{
		RequestID: strings.TrimSpace(requestID),
		HREmail:   hr.HREmail,
	})
	if err != nil {
		logger.Warn("approve request failed",
			"event", "http_approve_request_failed",
			"module", application.ModuleName,
			"layer", "transport",
			"request_id", requestID,
			"error", err.Error(),
		)
		return httptransport.ApproveRequestResponse{}, err
	}
	return httptransport.ApproveRequestResponse{
		Success:    true,
		Message:    messageApproved,
		Affiliated: result.AffiliationCreated,
	}, nil
}

// RejectRequestHandler godoc
// @Summary Reject request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /requests/reject/{id} [patch]
func (h Handler) RejectRequestHandler(
	ctx context.Context,
	hr guard.HRContext,
	requestID string,
) (httptransport.MessageResponse, error) {
	if _, err := h.RejectRequest.Execute(ctx, commands.RejectRequestCommand{
		RequestID: strings.TrimSpace(requestID),
		HREmail:   hr.HREmail,
	}); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Success: true, Message: messageRejected}, nil
}

// CancelRequestHandler godoc
// @Summary Cancel own pending request
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} httptransport.CancelRequestResponse
// @Router /requests/cancel/{id} [delete]
func (h Handler) CancelRequestHandler(
	ctx context.Context,
	callerEmail string,
	requestID string,
) (httptransport.CancelRequestResponse, error) {
	result, err := h.CancelRequest.Execute(ctx, commands.CancelRequestCommand{
		RequestID:      strings.TrimSpace(requestID),
		RequesterEmail: callerEmail,
	})
	if err != nil {
		return httptransport.CancelRequestResponse{}, err
	}
	return httptransport.CancelRequestResponse{DeletedCount: result.DeletedCount}, nil
}

// ReturnRequestHandler godoc
// @Summary Return an approved asset
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request id"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /requests/return/{id} [patch]
func (h Handler) ReturnRequestHandler(
	ctx context.Context,
	callerEmail string,
	requestID string,
) (httptransport.MessageResponse, error) {
	if _, err := h.ReturnRequest.Execute(ctx, commands.ReturnRequestCommand{
		RequestID:   strings.TrimSpace(requestID),
		CallerEmail: callerEmail,
	}); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Success: true, Message: messageReturned}, nil
}

// EmployeeStatsHandler godoc
// @Summary Employee dashboard summary
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.EmployeeStatsResponse
// @Router /employee-stats [get]
func (h Handler) EmployeeStatsHandler(ctx context.Context, callerEmail string) (httptransport.EmployeeStatsResponse, error) {
	stats, err := h.EmployeeStats.Execute(ctx, callerEmail)
	if err != nil {
		return httptransport.EmployeeStatsResponse{}, err
	}
	resp := httptransport.EmployeeStatsResponse{
		PendingRequests: mapRequests(stats.PendingRequests),
		MonthlyRequests: mapRequests(stats.MonthlyRequests),
	}
	if stats.Affiliation != nil {
		affiliation := mapAffiliation(*stats.Affiliation)
		resp.Affiliation = &affiliation
	}
	return resp, nil
}

// HRStatsHandler godoc
// @Summary HR dashboard summary
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.HRStatsResponse
// @Router /hr-stats [get]
func (h Handler) HRStatsHandler(ctx context.Context, hr guard.HRContext) (httptransport.HRStatsResponse, error) {
	stats, err := h.HRStats.Execute(ctx, hr.HREmail)
	if err != nil {
		return httptransport.HRStatsResponse{}, err
	}
	resp := httptransport.HRStatsResponse{
		PieData:         make([]httptransport.PieSliceDTO, 0, len(stats.PieData)),
		PendingRequests: mapRequests(stats.PendingRequests),
		TotalRequests:   stats.TotalRequests,
	}
	for _, slice := range stats.PieData {
		resp.PieData = append(resp.PieData, httptransport.PieSliceDTO{Name: slice.Name, Value: slice.Value})
	}
	return resp, nil
}

// MyEmployeesHandler godoc
// @Summary List affiliated employees
// @Tags team
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.MyEmployeesResponse
// @Router /my-employees [get]
func (h Handler) MyEmployeesHandler(ctx context.Context, hr guard.HRContext) (httptransport.MyEmployeesResponse, error) {
	result, err := h.MyEmployees.Execute(ctx, hr.HREmail)
	if err != nil {
		return httptransport.MyEmployeesResponse{}, err
	}
	return httptransport.MyEmployeesResponse{
		Employees:        mapAffiliations(result.Employees),
		CurrentEmployees: result.CurrentEmployees,
		PackageLimit:     result.PackageLimit,
	}, nil
}

// AvailableEmployeesHandler godoc
// @Summary List employees without any affiliation
// @Tags team
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.UserDTO
// @Router /available-employees [get]
func (h Handler) AvailableEmployeesHandler(ctx context.Context) ([]httptransport.UserDTO, error) {
	users, err := h.AvailableEmployees.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return mapUsers(users), nil
}

// MyTeamHandler godoc
// @Summary List caller's team
// @Description Returns the HR account first, followed by its affiliated employees.
// @Tags team
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.UserDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /my-team [get]
func (h Handler) MyTeamHandler(ctx context.Context, callerEmail string) ([]httptransport.UserDTO, error) {
	users, err := h.MyTeam.Execute(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	return mapUsers(users), nil
}

// PackageStatusHandler godoc
// @Summary Caller capacity
// @Tags team
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httptransport.PackageStatusResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /hr-package-status [get]
func (h Handler) PackageStatusHandler(ctx context.Context, callerEmail string) (httptransport.PackageStatusResponse, error) {
	status, err := h.PackageStatus.Execute(ctx, callerEmail)
	if err != nil {
		return httptransport.PackageStatusResponse{}, err
	}
	return httptransport.PackageStatusResponse{
		CurrentEmployees: status.CurrentEmployees,
		PackageLimit:     status.PackageLimit,
	}, nil
}

// AddToTeamHandler godoc
// @Summary Affiliate an employee directly
// @Tags team
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.AddToTeamRequest true "Employee"
// @Success 200 {object} httptransport.AddToTeamResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Router /add-to-team [post]
func (h Handler) AddToTeamHandler(
	ctx context.Context,
	hr guard.HRContext,
	req httptransport.AddToTeamRequest,
) (httptransport.AddToTeamResponse, error) {
	affiliation, err := h.AddToTeam.Execute(ctx, commands.AddToTeamCommand{
		HREmail:       hr.HREmail,
		EmployeeEmail: req.EmployeeEmail,
		EmployeeName:  req.EmployeeName,
	})
	if err != nil {
		return httptransport.AddToTeamResponse{}, err
	}
	return httptransport.AddToTeamResponse{Success: true, Affiliation: mapAffiliation(affiliation)}, nil
}

// RemoveEmployeeHandler godoc
// @Summary Remove an employee from the team
// @Tags team
// @Produce json
// @Security BearerAuth
// @Param email path string true "Employee email"
// @Success 200 {object} httptransport.MessageResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /remove-employee/{email} [patch]
func (h Handler) RemoveEmployeeHandler(
	ctx context.Context,
	hr guard.HRContext,
	employeeEmail string,
) (httptransport.MessageResponse, error) {
	if _, err := h.RemoveEmployee.Execute(ctx, commands.RemoveEmployeeCommand{
		HREmail:       hr.HREmail,
		EmployeeEmail: employeeEmail,
	}); err != nil {
		return httptransport.MessageResponse{}, err
	}
	return httptransport.MessageResponse{Success: true, Message: messageEmployeeRemoved}, nil
}

// StartCheckoutHandler godoc
// @Summary Start slot checkout
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body httptransport.CheckoutRequest true "Price and member count"
// @Success 200 {object} httptransport.CheckoutResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payment-checkout-session [post]
func (h Handler) StartCheckoutHandler(
	ctx context.Context,
	hr guard.HRContext,
	req httptransport.CheckoutRequest,
) (httptransport.CheckoutResponse, error) {
	result, err := h.StartCheckout.Execute(ctx, commands.StartCheckoutCommand{
		HREmail: hr.HREmail,
		Price:   req.Price,
		Members: req.Members,
	})
	if err != nil {
		return httptransport.CheckoutResponse{}, err
	}
	return httptransport.CheckoutResponse{URL: result.URL}, nil
}

// ConfirmPaymentHandler godoc
// @Summary Confirm a paid checkout
// @Description Raises the package limit once per payment intent.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param session_id query string true "Checkout session id"
// @Success 200 {object} httptransport.ConfirmPaymentResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /payment-success [patch]
func (h Handler) ConfirmPaymentHandler(
	ctx context.Context,
	req httptransport.ConfirmPaymentRequest,
) (httptransport.ConfirmPaymentResponse, error) {
	result, err := h.ConfirmPayment.Execute(ctx, commands.ConfirmPaymentCommand{SessionID: req.SessionID})
	if err != nil {
		return httptransport.ConfirmPaymentResponse{}, err
	}
	if result.AlreadyProcessed {
		return httptransport.ConfirmPaymentResponse{Success: true, Message: messageAlreadyProcessed}, nil
	}
	return httptransport.ConfirmPaymentResponse{
		Success:  true,
		Message:  messageLimitUpgraded,
		NewLimit: result.NewLimit,
	}, nil
}

// PaymentHistoryHandler godoc
// @Summary Payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} httptransport.PaymentDTO
// @Router /payment-history [get]
func (h Handler) PaymentHistoryHandler(ctx context.Context, hr guard.HRContext) ([]httptransport.PaymentDTO, error) {
	payments, err := h.PaymentHistory.Execute(ctx, hr.HREmail)
	if err != nil {
		return nil, err
	}
	return mapPayments(payments), nil
}
