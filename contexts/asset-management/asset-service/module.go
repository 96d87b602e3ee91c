package assetservice

import (
	"log/slog"

	httpadapter "assetverse/contexts/asset-management/asset-service/adapters/http"
	"assetverse/contexts/asset-management/asset-service/adapters/memory"
	"assetverse/contexts/asset-management/asset-service/application/commands"
	"assetverse/contexts/asset-management/asset-service/application/guard"
	"assetverse/contexts/asset-management/asset-service/application/queries"
	"assetverse/contexts/asset-management/asset-service/application/workers"
	"assetverse/contexts/asset-management/asset-service/ports"
)

// Module is the composition surface of the asset service.
// Runtime wiring consumes Handler; Store is set only for in-memory wiring.
type Module struct {
	Handler httpadapter.Handler
	Outbox  ports.OutboxRepository
	Store   *memory.Store
}

type Dependencies struct {
	Users        ports.UserRepository
	Assets       ports.AssetRepository
	Requests     ports.RequestRepository
	Affiliations ports.AffiliationRepository
	Payments     ports.PaymentRepository
	Packages     ports.PackageRepository
	Outbox       ports.OutboxRepository
	Processor    ports.PaymentProcessor
	Verifier     ports.IdentityVerifier
	Clock        ports.Clock
	IDGenerator  ports.IDGenerator
	SiteDomain   string
	Logger       *slog.Logger
}

// External groups the collaborators no store can provide.
type External struct {
	Processor  ports.PaymentProcessor
	Verifier   ports.IdentityVerifier
	SiteDomain string
}

// NewModule wires the asset-service use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		Authenticator: guard.Authenticator{Verifier: deps.Verifier, Logger: deps.Logger},
		HRGuard:       guard.HRGuard{Users: deps.Users, Logger: deps.Logger},

		RegisterUser: commands.RegisterUserUseCase{
			Users:  deps.Users,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
		CreateAsset: commands.CreateAssetUseCase{
			Assets:      deps.Assets,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		SubmitRequest: commands.SubmitRequestUseCase{
			Assets:      deps.Assets,
			Requests:    deps.Requests,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		ApproveRequest: commands.ApproveRequestUseCase{
			Requests:    deps.Requests,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		RejectRequest: commands.RejectRequestUseCase{
			Requests:    deps.Requests,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		CancelRequest: commands.CancelRequestUseCase{
			Requests: deps.Requests,
			Logger:   deps.Logger,
		},
		ReturnRequest: commands.ReturnRequestUseCase{
			Requests:    deps.Requests,
			Assets:      deps.Assets,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		AddToTeam: commands.AddToTeamUseCase{
			Users:        deps.Users,
			Affiliations: deps.Affiliations,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			Logger:       deps.Logger,
		},
		RemoveEmployee: commands.RemoveEmployeeUseCase{
			Affiliations: deps.Affiliations,
			Clock:        deps.Clock,
			IDGenerator:  deps.IDGenerator,
			Logger:       deps.Logger,
		},
		StartCheckout: commands.StartCheckoutUseCase{
			Processor:  deps.Processor,
			SiteDomain: deps.SiteDomain,
			Logger:     deps.Logger,
		},
		ConfirmPayment: commands.ConfirmPaymentUseCase{
			Processor:   deps.Processor,
			Payments:    deps.Payments,
			Users:       deps.Users,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},

		GetUserRole:   queries.GetUserRoleUseCase{Users: deps.Users, Logger: deps.Logger},
		PackageStatus: queries.PackageStatusUseCase{Users: deps.Users, Logger: deps.Logger},
		ListPackages:  queries.ListPackagesUseCase{Packages: deps.Packages, Logger: deps.Logger},
		ListAssets:    queries.ListAssetsUseCase{Assets: deps.Assets, Logger: deps.Logger},
		ListAvailable: queries.ListAvailableAssetsUseCase{Assets: deps.Assets, Logger: deps.Logger},
		CompanyRequests: queries.ListCompanyRequestsUseCase{
			Requests: deps.Requests,
			Logger:   deps.Logger,
		},
		MyRequests: queries.ListMyRequestsUseCase{Requests: deps.Requests, Logger: deps.Logger},
		EmployeeStats: queries.EmployeeStatsUseCase{
			Requests:     deps.Requests,
			Affiliations: deps.Affiliations,
			Clock:        deps.Clock,
			Logger:       deps.Logger,
		},
		HRStats: queries.HRStatsUseCase{
			Assets:   deps.Assets,
			Requests: deps.Requests,
			Logger:   deps.Logger,
		},
		MyEmployees: queries.ListMyEmployeesUseCase{
			Users:        deps.Users,
			Affiliations: deps.Affiliations,
			Logger:       deps.Logger,
		},
		AvailableEmployees: queries.ListAvailableEmployeesUseCase{Users: deps.Users, Logger: deps.Logger},
		MyTeam: queries.MyTeamUseCase{
			Users:        deps.Users,
			Affiliations: deps.Affiliations,
			Logger:       deps.Logger,
		},
		PaymentHistory: queries.PaymentHistoryUseCase{Payments: deps.Payments, Logger: deps.Logger},

		Logger: deps.Logger,
	}

	return Module{Handler: handler, Outbox: deps.Outbox}
}

// NewInMemoryModule wires the use cases against the in-memory store.
func NewInMemoryModule(seed memory.Seed, external External, logger *slog.Logger) Module {
	store := memory.NewStore(seed, logger)
	module := NewModule(Dependencies{
		Users:        store,
		Assets:       store,
		Requests:     store,
		Affiliations: store,
		Payments:     store,
		Packages:     store,
		Outbox:       store,
		Processor:    external.Processor,
		Verifier:     external.Verifier,
		Clock:        store,
		IDGenerator:  store,
		SiteDomain:   external.SiteDomain,
		Logger:       logger,
	})
	module.Store = store
	return module
}

// NewOutboxRelay builds the relay that drains this module's outbox.
func (m Module) NewOutboxRelay(publisher ports.EventPublisher, clock ports.Clock, batchSize int, logger *slog.Logger) workers.OutboxRelay {
	return workers.OutboxRelay{
		Outbox:    m.Outbox,
		Publisher: publisher,
		Clock:     clock,
		Topic:     workers.DefaultTopic,
		BatchSize: batchSize,
		Logger:    logger,
	}
}
