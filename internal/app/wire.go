//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	courier_get "dispatch/internal/handlers/rest/courier_get"
	courier_location_put "dispatch/internal/handlers/rest/courier_location_put"
	courier_post "dispatch/internal/handlers/rest/courier_post"
	courier_put "dispatch/internal/handlers/rest/courier_put"
	couriers_get "dispatch/internal/handlers/rest/couriers_get"
	dispatch_accept_post "dispatch/internal/handlers/rest/dispatch_accept_post"
	dispatch_assign_post "dispatch/internal/handlers/rest/dispatch_assign_post"
	dispatch_auto_assign_post "dispatch/internal/handlers/rest/dispatch_auto_assign_post"
	dispatch_broadcast_post "dispatch/internal/handlers/rest/dispatch_broadcast_post"
	dispatch_deliver_post "dispatch/internal/handlers/rest/dispatch_deliver_post"
	dispatch_pickup_post "dispatch/internal/handlers/rest/dispatch_pickup_post"
	dispatch_reject_post "dispatch/internal/handlers/rest/dispatch_reject_post"
	"dispatch/internal/handlers/tasks/offer_cleanup"
	"dispatch/internal/pkg/clock"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/earnings"
	"dispatch/internal/pkg/factory/order_handle"

	assignmentRepo "dispatch/internal/repository/assignment"
	courierRepo "dispatch/internal/repository/courier"
	earningRepo "dispatch/internal/repository/earning"
	orderRepo "dispatch/internal/repository/order"
	vendorRepo "dispatch/internal/repository/vendor"
	courierService "dispatch/internal/service/courier"
	dispatchService "dispatch/internal/service/dispatch"
	orderService "dispatch/internal/service/order"
	"dispatch/internal/service/selector"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceDispatch   ServiceDispatch
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
	courier_location_put.Service
}

type ServiceDispatch interface {
	dispatch_assign_post.Service
	dispatch_auto_assign_post.Service
	dispatch_broadcast_post.Service
	dispatch_accept_post.Service
	dispatch_reject_post.Service
	dispatch_pickup_post.Service
	dispatch_deliver_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	notifier dispatchService.NotificationGateway,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,
		provideCleanupInterval,

		provideOrderRepository,
		provideCourierRepository,
		provideAssignmentRepository,
		provideOffersRepository,
		provideEarningRepository,
		provideVendorRepository,

		provideSelector,
		provideFeeCalculator,
		provideServiceCourier,
		provideServiceDispatch,

		provideOfferCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.Clock), new(*clock.System)),

		wire.Bind(new(selector.CourierPool), new(*courierRepo.Repository)),
		wire.Bind(new(selector.VendorProvider), new(*vendorRepo.Repository)),
		wire.Bind(new(selector.Clock), new(*clock.System)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(dispatchService.OfferRepository), new(*assignmentRepo.OffersRepository)),
		wire.Bind(new(dispatchService.EarningRepository), new(*earningRepo.Repository)),
		wire.Bind(new(dispatchService.VendorRepository), new(*vendorRepo.Repository)),
		wire.Bind(new(dispatchService.CourierSelector), new(*selector.Selector)),
		wire.Bind(new(dispatchService.FeeCalculator), new(*earnings.Calculator)),
		wire.Bind(new(dispatchService.Clock), new(*clock.System)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(offer_cleanup.Offers), new(*assignmentRepo.OffersRepository)),
		wire.Bind(new(offer_cleanup.Clock), new(*clock.System)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	notifier dispatchService.NotificationGateway,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClock,

		provideOrderRepository,
		provideCourierRepository,
		provideAssignmentRepository,
		provideOffersRepository,
		provideEarningRepository,
		provideVendorRepository,

		provideSelector,
		provideFeeCalculator,
		provideServiceDispatch,

		provideStatusHandlerFabric,
		provideOrderService,

		wire.Bind(new(selector.CourierPool), new(*courierRepo.Repository)),
		wire.Bind(new(selector.VendorProvider), new(*vendorRepo.Repository)),
		wire.Bind(new(selector.Clock), new(*clock.System)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(dispatchService.AssignmentRepository), new(*assignmentRepo.Repository)),
		wire.Bind(new(dispatchService.OfferRepository), new(*assignmentRepo.OffersRepository)),
		wire.Bind(new(dispatchService.EarningRepository), new(*earningRepo.Repository)),
		wire.Bind(new(dispatchService.VendorRepository), new(*vendorRepo.Repository)),
		wire.Bind(new(dispatchService.CourierSelector), new(*selector.Selector)),
		wire.Bind(new(dispatchService.FeeCalculator), new(*earnings.Calculator)),
		wire.Bind(new(dispatchService.Clock), new(*clock.System)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClock() *clock.System {
	return clock.NewSystem()
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideOffersRepository(querier *querier.Querier) *assignmentRepo.OffersRepository {
	return assignmentRepo.NewOffers(querier)
}

func provideEarningRepository(querier *querier.Querier) *earningRepo.Repository {
	return earningRepo.New(querier)
}

func provideVendorRepository(querier *querier.Querier) *vendorRepo.Repository {
	return vendorRepo.New(querier)
}

func provideSelector(
	couriers selector.CourierPool,
	vendors selector.VendorProvider,
	clk selector.Clock,
	cfg *config.Config,
) *selector.Selector {
	return selector.New(couriers, vendors, clk, selector.Config{
		AutoAssignRadiusKm: cfg.Dispatch.AutoAssignRadiusKm,
		LocationStaleness:  cfg.Dispatch.LocationStaleness,
	})
}

func provideFeeCalculator(cfg *config.Config) *earnings.Calculator {
	eCfg := earnings.DefaultConfig()
	eCfg.BaseFee = cfg.Earnings.BaseFee
	eCfg.PerKmRate = cfg.Earnings.PerKmRate
	eCfg.EveningStartHour = cfg.Earnings.EveningStartHour
	eCfg.EveningEndHour = cfg.Earnings.EveningEndHour
	eCfg.EveningBonusRate = cfg.Earnings.EveningBonusRate

	return earnings.New(eCfg)
}

func provideServiceCourier(
	repository courierService.Repository,
	clk courierService.Clock,
) *courierService.Courier {
	return courierService.New(repository, clk)
}

func provideServiceDispatch(
	orders dispatchService.OrderRepository,
	couriers dispatchService.CourierRepository,
	assignments dispatchService.AssignmentRepository,
	offers dispatchService.OfferRepository,
	earningsRepo dispatchService.EarningRepository,
	vendors dispatchService.VendorRepository,
	courierSelector dispatchService.CourierSelector,
	fees dispatchService.FeeCalculator,
	notifier dispatchService.NotificationGateway,
	clk dispatchService.Clock,
	txManager dispatchService.TxManager,
	log logger.Logger,
	cfg *config.Config,
) *dispatchService.Dispatch {
	return dispatchService.New(
		orders,
		couriers,
		assignments,
		offers,
		earningsRepo,
		vendors,
		courierSelector,
		fees,
		notifier,
		clk,
		txManager,
		log,
		dispatchService.Config{
			BroadcastRadiusKm: cfg.Dispatch.BroadcastRadiusKm,
			OfferTTL:          cfg.Dispatch.OfferTTL,
		},
	)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.OfferCleanupInterval)
}

// provideOrderService создает orderService для обработки событий Kafka
func provideOrderService(
	orders orderService.OrderRepository,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(orders, handlerFactory)
}

func provideStatusHandlerFabric(dispatchService orderService.DispatchService) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(dispatchService)
}

func provideOfferCleanupTask(
	log logger.Logger,
	offers offer_cleanup.Offers,
	clk offer_cleanup.Clock,
	interval CleanupInterval,
) *offer_cleanup.OfferCleanup {
	return offer_cleanup.NewOfferCleanup(log, offers, clk, time.Duration(interval))
}

func provideTaskList(
	offerCleanupTask *offer_cleanup.OfferCleanup,
) []background.Task {
	return []background.Task{
		offerCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
