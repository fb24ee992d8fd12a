package cmd

import (
	"context"
	"log/slog"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/notification"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	registry   *prometheus.Registry
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.TransitionPolicy

	queue               *notification.Queue
	notificationMetrics *notification.Metrics
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	queue := notification.NewQueue(notification.DefaultQueueCapacity)
	notificationMetrics := notification.NewMetrics(registry)
	notificationMetrics.ObserveQueue(queue)

	return &CompositionRoot{
		cfg:                 cfg,
		gormDB:              gormDB,
		logger:              logger,
		registry:            registry,
		uowFactory:          postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:              services.NewTransitionPolicy(cfg.EnforceTransitionGraph),
		queue:               queue,
		notificationMetrics: notificationMetrics,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) statusUoWFactory() commands.StatusUoWFactory {
	return FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
}

// Publisher is where the workflow hands StatusEntered events.
func (c *CompositionRoot) Publisher() ports.StatusEventPublisher {
	return c.queue
}

func (c *CompositionRoot) CreateCreateStatusCommandHandler() *commands.CreateStatusCommandHandler {
	h := commands.NewCreateStatusCommandHandler(c.statusUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() *commands.UpdateStatusCommandHandler {
	h := commands.NewUpdateStatusCommandHandler(c.statusUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteStatusCommandHandler() *commands.DeleteStatusCommandHandler {
	h := commands.NewDeleteStatusCommandHandler(c.orderUoWFactory(), c.Publisher(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateTransitionCommandHandler() *commands.CreateTransitionCommandHandler {
	h := commands.NewCreateTransitionCommandHandler(c.statusUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteTransitionCommandHandler() *commands.DeleteTransitionCommandHandler {
	h := commands.NewDeleteTransitionCommandHandler(c.statusUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.Publisher(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.policy, c.Publisher(), c.logger)
	return &h
}

func (c *CompositionRoot) CreateListStatusesQueryHandler() queries.ListStatusesQueryHandler {
	return queries.NewListStatusesQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetStatusQueryHandler() queries.GetStatusQueryHandler {
	return queries.NewGetStatusQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListTransitionsQueryHandler() queries.ListTransitionsQueryHandler {
	return queries.NewListTransitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAnalyticsQueryHandler() queries.GetAnalyticsQueryHandler {
	return queries.NewGetAnalyticsQueryHandler(c.gormDB, nil)
}

func (c *CompositionRoot) CreateNotificationDispatcher() *notification.Dispatcher {
	cfg := notification.DefaultConfig()
	cfg.BaseURL = c.cfg.StorefrontBaseURL
	cfg.TemplateTTL = c.cfg.TemplateCacheTTL

	return notification.NewDispatcher(
		c.uowFactory,
		notification.NewLoggingSender(c.logger),
		c.notificationMetrics,
		cfg,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	job := jobs.NewNotificationDispatchJob(
		c.queue,
		c.CreateNotificationDispatcher(),
		c.notificationMetrics,
		jobs.NotificationDispatchJobConfig{
			Schedule:    c.cfg.NotificationSchedule,
			MaxAttempts: c.cfg.NotificationMaxAttempts,
		},
		c.logger,
	)
	return jobs.NewJobManager(job)
}

func (c *CompositionRoot) CreateServer(metrics *httpadapter.Metrics) *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateStatus:      c.CreateCreateStatusCommandHandler(),
		UpdateStatus:      c.CreateUpdateStatusCommandHandler(),
		DeleteStatus:      c.CreateDeleteStatusCommandHandler(),
		CreateTransition:  c.CreateCreateTransitionCommandHandler(),
		DeleteTransition:  c.CreateDeleteTransitionCommandHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		ListStatuses:      c.CreateListStatusesQueryHandler(),
		GetStatus:         c.CreateGetStatusQueryHandler(),
		ListTransitions:   c.CreateListTransitionsQueryHandler(),
		GetOrderHistory:   c.CreateGetOrderHistoryQueryHandler(),
		GetAnalytics:      c.CreateGetAnalyticsQueryHandler(),
	}, metrics, c.logger)
}

// CreateRouter builds the echo instance. The health check pings the database.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	metrics := httpadapter.NewMetrics(c.registry)
	server := c.CreateServer(metrics)

	var health httpadapter.Pinger
	if sqlDB, err := c.gormDB.DB(); err == nil {
		health = sqlDB
	}

	return httpadapter.NewRouter(ctx, httpadapter.RouterConfig{
		Server:   server,
		Metrics:  metrics,
		Gatherer: c.registry,
		Health:   health,
		Logger:   c.logger,
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}
