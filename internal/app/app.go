package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/groph-estate/internal/config"
	"github.com/fsdevblog/groph-estate/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-estate/internal/repository/repoargs"
	"github.com/fsdevblog/groph-estate/internal/service"
	"github.com/fsdevblog/groph-estate/internal/service/psswd"
	"github.com/fsdevblog/groph-estate/internal/transport/api"
	"github.com/fsdevblog/groph-estate/internal/transport/notify"
	"github.com/fsdevblog/groph-estate/internal/transport/payoutjob"
	"github.com/fsdevblog/groph-estate/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address":        a.Config.RunAddress,
		"migrations":     a.Config.MigrationsDir,
		"redis":          a.Config.RedisAddr,
		"gateway":        a.Config.NotifyGatewayURL,
		"payoutInterval": a.Config.PayoutInterval,
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	rdb := connectRedis(notifyCtx, a.Config.RedisAddr, a.Logger)
	if rdb != nil {
		defer func() {
			if closeErr := rdb.Close(); closeErr != nil {
				a.Logger.WithError(closeErr).Error("close redis")
			}
		}()
	}

	sinks := []notify.Sink{notify.NewOutboxSink(unitOfWork)}
	if rdb != nil {
		sinks = append(sinks, notify.NewRedisPublisher(rdb))
	}
	if a.Config.NotifyGatewayURL != "" {
		sinks = append(sinks, notify.NewGatewayClient(a.Config.NotifyGatewayURL))
	}
	dispatcher := notify.NewDispatcher(a.Logger, notify.DefaultQueueSize, sinks...)

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret: []byte(a.Config.JWTSecret),
		Hasher:    psswd.PasswordHash(0),
		Notifier:  dispatcher,
		Logger:    a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:                 a.Logger,
		UserService:            services.UserService,
		KYCService:             services.KYCService,
		PropertyService:        services.PropertyService,
		HoldingService:         services.HoldingService,
		InvestmentService:      services.InvestmentRequestService,
		PayoutService:          services.PayoutService,
		WithdrawalService:      services.WithdrawalService,
		TransferService:        services.TransferService,
		OfflineTransferService: services.OfflineTransferService,
		WalletService:          services.WalletService,
		NotificationService:    services.NotificationService,
		JWTSecretKey:           []byte(a.Config.JWTSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	go dispatcher.Run(notifyCtx)

	processor := payoutjob.New(services.PayoutService, a.Logger).
		SetWorkers(uint(a.Config.PayoutWorkers)). //nolint:gosec
		SetBatch(uint(a.Config.PayoutBatch)).     //nolint:gosec
		SetInterval(a.Config.PayoutInterval)
	if rdb != nil {
		processor.SetLocker(payoutjob.NewRedisLocker(rdb, payoutjob.DefaultLockKey, payoutjob.DefaultLockTTL))
	}

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := []struct {
		name    repoargs.RepositoryName
		factory uow.RepositoryFactory
	}{
		{repoargs.UserRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewUserRepository(dbtx) }},
		{repoargs.PropertyRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPropertyRepository(dbtx) }},
		{repoargs.HoldingRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewHoldingRepository(dbtx) }},
		{repoargs.PayoutRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewPayoutRepository(dbtx) }},
		{
			repoargs.TransactionRepoName,
			func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewTransactionRepository(dbtx) },
		},
		{
			repoargs.WithdrawalRepoName,
			func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewWithdrawalRepository(dbtx) },
		},
		{
			repoargs.InvestmentRequestRepoName,
			func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewInvestmentRequestRepository(dbtx) },
		},
		{repoargs.TransferRepoName, func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewTransferRepository(dbtx) }},
		{
			repoargs.OfflineTransferRepoName,
			func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewOfflineTransferRepository(dbtx) },
		},
		{
			repoargs.NotificationRepoName,
			func(dbtx uow.DBTX) uow.Repository { return pgrepo.NewNotificationRepository(dbtx) },
		},
	}

	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
