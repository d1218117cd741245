package cmd

import (
	"log/slog"

	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/menurepo"
	"canteen/internal/adapters/out/postgres/notify"
	"canteen/internal/adapters/out/postgres/profilerepo"
	"canteen/internal/core/application/reconciler"
	"canteen/internal/core/application/session"
	"canteen/internal/core/application/usecases/commands"
	"canteen/internal/core/application/usecases/queries"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/ports"
	"canteen/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveMenuItemCommandHandler() commands.RemoveMenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVisibleOrdersQueryHandler() queries.GetVisibleOrdersQueryHandler {
	return queries.NewGetVisibleOrdersQueryHandler(c.gormDB)
}

// CreateMenuRepository returns a repository for reads outside a unit of work,
// such as snapshotting a dish into a cart line.
func (c *CompositionRoot) CreateMenuRepository() ports.MenuRepository {
	return menurepo.NewGormMenuRepository(c.gormDB, noopAggregateTracker{})
}

func (c *CompositionRoot) CreateSessionManager() *session.Manager {
	loader := reconciler.NewQueryLoader(
		c.CreateGetMenuQueryHandler(),
		c.CreateGetVisibleOrdersQueryHandler(),
	)
	return session.NewManager(
		profilerepo.NewGormProfileRepository(c.gormDB),
		notify.NewPqChangeStream(c.config.PostgresDSN(), c.logger),
		loader,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(sessions *session.Manager) *jobs.JobManager {
	return jobs.NewJobManager(sessions, c.config.ReconcileFallbackCron, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

// noopAggregateTracker satisfies the repository tracker outside a unit of
// work, where no transaction outcome needs the loaded aggregates.
type noopAggregateTracker struct{}

func (noopAggregateTracker) TrackAggregate(kernel.UUID, any) {}
