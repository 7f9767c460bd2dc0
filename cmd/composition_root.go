package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "pod/internal/adapters/in/http"
	"pod/internal/adapters/in/http/auth"
	mongoreports "pod/internal/adapters/out/mongo/reportrepo"
	"pod/internal/adapters/out/postgres"
	pgreports "pod/internal/adapters/out/postgres/reportrepo"
	"pod/internal/adapters/out/redis"
	"pod/internal/adapters/out/s3"
	"pod/internal/core/application/eventhandlers"
	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/application/usecases/queries"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/core/domain/services"
	"pod/internal/core/ports"
	"pod/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	reports    ports.ReportRepository
	publisher  ports.EventPublisher
	proofs     ports.ProofStorage
	clock      kernel.Clock
	logger     *slog.Logger
}

// NewCompositionRoot picks an adapter per concern from the handles in infra:
// MongoDB or PostgreSQL for reports, Redis or nothing for event fan-out, S3
// or inline references for proof images.
func NewCompositionRoot(cfg Config, infra Infrastructure, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		cfg:        cfg,
		gormDB:     infra.DB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(infra.DB),
		reports:    pgreports.NewGormReportRepository(infra.DB),
		publisher:  redis.NopPublisher{},
		proofs:     s3.InlineProofStorage{},
		clock:      kernel.SystemClock{},
		logger:     logger,
	}

	if infra.Mongo != nil {
		root.reports = mongoreports.NewMongoReportRepository(infra.Mongo.Database(cfg.MongoDatabase))
	}
	if infra.Redis != nil {
		root.publisher = redis.NewEventPublisher(infra.Redis, redis.DefaultChannel)
	}
	if infra.S3 != nil {
		root.proofs = s3.NewProofStorage(infra.S3, cfg.S3.Bucket)
	}

	return root
}

// Migrate brings the PostgreSQL schema up to date and, for the MongoDB report
// store, creates its index.
func (c *CompositionRoot) Migrate(ctx context.Context) error {
	if err := postgres.Migrate(c.gormDB.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	if repo, ok := c.reports.(*mongoreports.MongoReportRepository); ok {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billUoW() commands.BillUoWFactory {
	return FuncBillUoWFactory(func() commands.BillUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryEvents() commands.DeliveryEvents {
	return commands.NewDeliveryEvents(eventhandlers.NewBillProjection(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoW())
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoW(), c.clock)
}

func (c *CompositionRoot) CreateUpdateMessengerCommandHandler() commands.UpdateMessengerCommandHandler {
	return commands.NewUpdateMessengerCommandHandler(c.userUoW(), c.clock)
}

func (c *CompositionRoot) CreateDeleteMessengerCommandHandler() commands.DeleteMessengerCommandHandler {
	return commands.NewDeleteMessengerCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateCreateBillsCommandHandler() commands.CreateBillsCommandHandler {
	return commands.NewCreateBillsCommandHandler(c.billUoW(), c.clock)
}

func (c *CompositionRoot) CreateAssignBillsCommandHandler() commands.AssignBillsCommandHandler {
	return commands.NewAssignBillsCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateVerifyDeliveryCommandHandler() commands.VerifyDeliveryCommandHandler {
	return commands.NewVerifyDeliveryCommandHandler(c.uow(), c.clock)
}

func (c *CompositionRoot) CreateReassignDeliveryCommandHandler() commands.ReassignDeliveryCommandHandler {
	return commands.NewReassignDeliveryCommandHandler(c.uow(), c.deliveryEvents(), c.clock)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	return commands.NewUpdateDeliveryStatusCommandHandler(c.uow(), c.deliveryEvents(), c.clock)
}

func (c *CompositionRoot) CreateAttachProofCommandHandler() commands.AttachProofCommandHandler {
	return commands.NewAttachProofCommandHandler(c.uow(), c.proofs, c.deliveryEvents(), c.clock)
}

func (c *CompositionRoot) CreateGenerateDailyReportCommandHandler() commands.GenerateDailyReportCommandHandler {
	return commands.NewGenerateDailyReportCommandHandler(c.uow(), c.reports, services.NewReportAggregator(), c.clock)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		Login:               c.CreateLoginCommandHandler(),
		CreateUser:          c.CreateCreateUserCommandHandler(),
		UpdateMessenger:     c.CreateUpdateMessengerCommandHandler(),
		DeleteMessenger:     c.CreateDeleteMessengerCommandHandler(),
		CreateBills:         c.CreateCreateBillsCommandHandler(),
		AssignBills:         c.CreateAssignBillsCommandHandler(),
		VerifyDelivery:      c.CreateVerifyDeliveryCommandHandler(),
		ReassignDelivery:    c.CreateReassignDeliveryCommandHandler(),
		UpdateStatus:        c.CreateUpdateDeliveryStatusCommandHandler(),
		AttachProof:         c.CreateAttachProofCommandHandler(),
		GenerateDailyReport: c.CreateGenerateDailyReportCommandHandler(),

		GetUser:         queries.NewGetUserQueryHandler(c.gormDB),
		ListMessengers:  queries.NewListMessengersQueryHandler(c.gormDB),
		ListBills:       queries.NewListBillsQueryHandler(c.gormDB),
		BillInventory:   queries.NewBillInventoryQueryHandler(c.gormDB),
		ListDeliveries:  queries.NewListDeliveriesQueryHandler(c.gormDB),
		TrackDeliveries: queries.NewTrackDeliveriesQueryHandler(c.gormDB),
		GetDelivery:     queries.NewGetDeliveryQueryHandler(c.gormDB),
		ListReports:     queries.NewListReportsQueryHandler(c.reports),
	}
}

// CreateRouter builds the echo instance serving the whole API.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	tokens := auth.NewJWTManager(c.cfg.JWTSecret, c.cfg.JWTTTL, c.clock)
	server := httpin.NewServer(c.CreateHTTPHandlers(), tokens, c.clock)

	return httpin.NewRouter(server, doc, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDailyReportJob(c.CreateGenerateDailyReportCommandHandler(), c.cfg.DSRCron, c.clock, c.logger),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncBillUoWFactory func() commands.BillUoW

func (f FuncBillUoWFactory) Create() commands.BillUoW {
	return f()
}
