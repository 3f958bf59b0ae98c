package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/auth"
	"fooddelivery/internal/adapters/out/catalog"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/notify"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/s3"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const brokerBuffer = 16

type CompositionRoot struct {
	cfg        Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	clock      commands.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
	board      *services.RequestBoard
	pricing    services.Pricing
	catalog    *catalog.Catalog
	proofs     ports.ProofStore
	tokens     *auth.TokenIssuer
	broker     *notify.Broker
	kafka      *kafka.OrderEventPublisher
}

// NewCompositionRoot builds every adapter the handlers share. Kafka and S3
// are optional: without KAFKA_HOST events only reach SSE subscribers, and
// without S3_BUCKET orders paid by wallet are rejected.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &CompositionRoot{
		cfg:     cfg,
		logger:  logger,
		gormDB:  gormDB,
		clock:   func() time.Time { return time.Now().UTC() },
		pricing: services.NewPricing(cfg.DeliveryFee, services.DefaultPromoCodes()),
		broker:  notify.NewBroker(brokerBuffer, logger),
	}
	c.board = services.NewRequestBoard(cfg.OfferWindow, c.clock)

	var err error
	if cfg.CatalogPath != "" {
		c.catalog, err = catalog.Load(cfg.CatalogPath)
	} else {
		c.catalog, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("restaurant catalog: %w", err)
	}

	c.tokens, err = auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, c.clock)
	if err != nil {
		return nil, fmt.Errorf("JWT_SECRET: %w", err)
	}

	if cfg.S3Bucket != "" {
		client, err := s3.NewClient(ctx, cfg.S3Region, cfg.S3Endpoint)
		if err != nil {
			return nil, err
		}
		if c.proofs, err = s3.NewProofStore(client, cfg.S3Bucket, cfg.S3Prefix); err != nil {
			return nil, err
		}
	} else {
		logger.Warn("S3_BUCKET is not set, wallet payments are disabled")
		c.proofs = proofUploadsDisabled{}
	}

	publishers := notify.Fanout{c.broker}
	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		producer, err := kafka.NewSyncProducer(brokers)
		if err != nil {
			return nil, err
		}
		if c.kafka, err = kafka.NewOrderEventPublisher(producer, cfg.KafkaOrderChangedTopic, logger); err != nil {
			_ = producer.Close()
			return nil, err
		}
		publishers = append(publishers, c.kafka)
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, publishers, logger)
	return c, nil
}

// Close releases the Kafka producer.
func (c *CompositionRoot) Close() error {
	if c.kafka != nil {
		return c.kafka.Close()
	}
	return nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sharedUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.catalog, c.pricing, c.proofs, c.clock, c.cfg.DeliveryETA)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.board, c.clock)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.sharedUoWFactory(), c.board, c.clock)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.sharedUoWFactory(), c.board, c.clock)
}

func (c *CompositionRoot) CreateDeclineOrderCommandHandler() commands.DeclineOrderCommandHandler {
	return commands.NewDeclineOrderCommandHandler(c.board)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.sharedUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateRiderCommandHandler() commands.CreateRiderCommandHandler {
	return commands.NewCreateRiderCommandHandler(c.riderUoWFactory())
}

func (c *CompositionRoot) CreateSetRiderOnlineCommandHandler() commands.SetRiderOnlineCommandHandler {
	return commands.NewSetRiderOnlineCommandHandler(c.riderUoWFactory(), c.board)
}

func (c *CompositionRoot) CreateUpdateRiderLocationCommandHandler() commands.UpdateRiderLocationCommandHandler {
	return commands.NewUpdateRiderLocationCommandHandler(c.sharedUoWFactory())
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f, c.clock)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateLoginUserCommandHandler() commands.LoginUserCommandHandler {
	return commands.NewLoginUserCommandHandler(c.userUoWFactory(), c.tokens)
}

func (c *CompositionRoot) favoriteUoWFactory() commands.FavoriteUoWFactory {
	return FuncFavoriteUoWFactory(func() commands.FavoriteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddFavoriteCommandHandler() commands.AddFavoriteCommandHandler {
	return commands.NewAddFavoriteCommandHandler(c.favoriteUoWFactory(), c.catalog, c.clock)
}

func (c *CompositionRoot) CreateRemoveFavoriteCommandHandler() commands.RemoveFavoriteCommandHandler {
	return commands.NewRemoveFavoriteCommandHandler(c.favoriteUoWFactory())
}

func (c *CompositionRoot) CreateBroadcastOffersCommandHandler() commands.BroadcastOffersCommandHandler {
	return commands.NewBroadcastOffersCommandHandler(c.sharedUoWFactory(), c.board)
}

func (c *CompositionRoot) CreateExpireOffersCommandHandler() commands.ExpireOffersCommandHandler {
	return commands.NewExpireOffersCommandHandler(c.board)
}

func (c *CompositionRoot) Handlers() httpin.Handlers {
	return httpin.Handlers{
		PlaceOrder:          c.CreatePlaceOrderCommandHandler(),
		ConfirmOrder:        c.CreateConfirmOrderCommandHandler(),
		CancelOrder:         c.CreateCancelOrderCommandHandler(),
		AssignRider:         c.CreateAssignRiderCommandHandler(),
		AcceptOrder:         c.CreateAcceptOrderCommandHandler(),
		DeclineOrder:        c.CreateDeclineOrderCommandHandler(),
		StartDelivery:       c.CreateStartDeliveryCommandHandler(),
		CompleteDelivery:    c.CreateCompleteDeliveryCommandHandler(),
		CreateRider:         c.CreateCreateRiderCommandHandler(),
		SetRiderOnline:      c.CreateSetRiderOnlineCommandHandler(),
		UpdateRiderLocation: c.CreateUpdateRiderLocationCommandHandler(),
		SubmitRating:        c.CreateSubmitRatingCommandHandler(),
		RegisterUser:        c.CreateRegisterUserCommandHandler(),
		LoginUser:           c.CreateLoginUserCommandHandler(),
		AddFavorite:         c.CreateAddFavoriteCommandHandler(),
		RemoveFavorite:      c.CreateRemoveFavoriteCommandHandler(),

		GetOrder:            queries.NewGetOrderQueryHandler(c.uowFactory),
		ListOrders:          queries.NewListOrdersQueryHandler(c.gormDB),
		QuoteOrder:          queries.NewQuoteOrderQueryHandler(c.pricing),
		ListRiders:          queries.NewListRidersQueryHandler(c.gormDB),
		ListAvailableRiders: queries.NewListAvailableRidersQueryHandler(c.uowFactory),
		ListRiderRequests:   queries.NewListRiderRequestsQueryHandler(c.uowFactory, c.board),
		ListRestaurants:     queries.NewListRestaurantsQueryHandler(c.gormDB, c.catalog),
		GetRestaurantRating: queries.NewGetRestaurantRatingQueryHandler(c.gormDB, c.catalog),
		ListFavorites:       queries.NewListFavoritesQueryHandler(c.gormDB, c.catalog),
		GetAdminStats:       queries.NewGetAdminStatsQueryHandler(c.gormDB),
		GetRiderStats:       queries.NewGetRiderStatsQueryHandler(c.uowFactory, c.gormDB, c.catalog, c.board, c.clock),
	}
}

// NewRouter returns the echo instance with the API, docs and health check.
func (c *CompositionRoot) NewRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	server := httpin.NewServer(c.Handlers(), c.broker, c.logger)
	return httpin.NewRouter(server, c.tokens.SigningKey(), doc, c.logger)
}

func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateBroadcastOffersCommandHandler(),
		c.CreateExpireOffersCommandHandler(),
		jobs.Schedules{Broadcast: c.cfg.BroadcastSchedule, Expiry: c.cfg.ExpirySchedule},
		c.logger,
	)
}

type proofUploadsDisabled struct{}

func (proofUploadsDisabled) Save(context.Context, kernel.UUID, string, []byte) (string, error) {
	return "", errs.NewValueIsInvalidErrorWithCause("payment method", errors.New("proof uploads are not configured"))
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncFavoriteUoWFactory func() commands.FavoriteUoW

func (f FuncFavoriteUoWFactory) Create() commands.FavoriteUoW {
	return f()
}
