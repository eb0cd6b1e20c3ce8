package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/kiosk-printer/internal/cfg"
	v1Http "github.com/DRSN-tech/kiosk-printer/internal/delivery/v1/http"
	"github.com/DRSN-tech/kiosk-printer/internal/infrastructure"
	"github.com/DRSN-tech/kiosk-printer/internal/infrastructure/kafka"
	"github.com/DRSN-tech/kiosk-printer/internal/infrastructure/logo"
	"github.com/DRSN-tech/kiosk-printer/internal/infrastructure/netwatch"
	"github.com/DRSN-tech/kiosk-printer/internal/infrastructure/printer"
	"github.com/DRSN-tech/kiosk-printer/internal/infrastructure/sound"
	"github.com/DRSN-tech/kiosk-printer/internal/payload"
	"github.com/DRSN-tech/kiosk-printer/internal/receipt"
	s3Repo "github.com/DRSN-tech/kiosk-printer/internal/repository/minio"
	"github.com/DRSN-tech/kiosk-printer/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/kiosk-printer/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/kiosk-printer/internal/repository/redis"
	"github.com/DRSN-tech/kiosk-printer/internal/usecase"
	"github.com/DRSN-tech/kiosk-printer/pkg/clients"
	"github.com/DRSN-tech/kiosk-printer/pkg/closer"
	"github.com/DRSN-tech/kiosk-printer/pkg/e"
	"github.com/DRSN-tech/kiosk-printer/pkg/logger"
	"github.com/DRSN-tech/kiosk-printer/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

var errNetworkLost = errors.New("network lost")

// App — мост между браузером киоска и термопринтером.
type App struct {
	cfg    *config.Config
	logger logger.Logger
	closer *closer.Closer

	printUC *usecase.PrintUseCase
	soundUC *usecase.SoundUseCase
	binder  *printer.Binder
	watcher *netwatch.Watcher
	httpSrv *v1Http.Server

	networkLost chan struct{}
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:         cfg,
		logger:      log,
		closer:      closer.NewCloser(0),
		networkLost: make(chan struct{}, 1),
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	if err := a.init(ctx); err != nil {
		// Уже открытые ресурсы закрываем сразу
		if closeErr := a.closer.Close(context.Background()); closeErr != nil {
			log.Warnf("cleanup after failed init: %v", closeErr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init(ctx context.Context) error {
	db, err := initPGDB(ctx, a.logger, a.cfg)
	if err != nil {
		return err
	}
	a.closer.AddFunc("postgres", db.Close)

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", redisClient.Close)
	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return err
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka", func(context.Context) error { return producer.Close() })
	if err := producer.EnsureTopic(a.cfg.Kafka.EnsureTimeout); err != nil {
		// Без топика печать работает, события теряются до его появления
		a.logger.Warnf("Kafka topic %s is not ready: %v", a.cfg.Kafka.Topic, err)
	}

	logoSource, err := a.initLogoSource(ctx)
	if err != nil {
		return err
	}

	policy, err := receipt.NewFormatPolicy(a.cfg.Receipt.Location)
	if err != nil {
		a.logger.Errorf(err, "invalid RECEIPT_TIMEZONE")
		return err
	}

	mode, err := payload.ParseSchemaMode(a.cfg.Payload.SchemaMode)
	if err != nil {
		a.logger.Errorf(err, "invalid PAYLOAD_SCHEMA")
		return err
	}

	a.printUC = usecase.NewPrintUC(
		payload.NewParser(mode, a.logger),
		receipt.NewBuilder(policy, a.logger),
		logo.NewProvider(logoSource, a.cfg.Printer.PaperWidthPx),
		pgdb.NewPrintJobRepo(db.Pool, pgdbConv.NewPrintJobConverterImpl()),
		redis.NewJournalRepo(redisClient, a.cfg.Redis, a.logger),
		producer,
		a.logger,
	)

	player, err := sound.NewCommandPlayer(a.cfg.Sound.Command)
	if err != nil {
		a.logger.Errorf(err, "invalid SOUND_COMMAND")
		return err
	}
	a.soundUC = usecase.NewSoundUC(player, a.cfg.Sound.Timeout, a.logger)

	kioskUC := usecase.NewKioskUC(&usecase.KioskConfig{
		DashboardURL:         a.cfg.Kiosk.DashboardURL,
		ConnectivityInterval: a.cfg.Kiosk.ConnectivityInterval,
		ConnectivityFailures: a.cfg.Kiosk.ConnectivityFailures,
	}, a.cfg.Kiosk.Email, a.cfg.Kiosk.Password, a.logger)

	a.binder = printer.NewBinder(a.cfg.Printer, a.printUC, a.logger)
	a.watcher = netwatch.NewWatcher(
		a.cfg.Kiosk.DashboardURL,
		a.cfg.Kiosk.ConnectivityInterval,
		a.cfg.Kiosk.ConnectivityFailures,
		a.onNetworkLost,
		a.logger,
	)

	r := chi.NewRouter()
	v1Http.NewRouter(r, a.logger).Init(a.printUC, a.soundUC, kioskUC)
	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)

	// Закрытие в обратном порядке: принтер, затем фоновые записи, затем хранилища
	a.closer.Add("print jobs", a.printUC.WaitForBackground)
	a.closer.Add("sound", a.soundUC.Wait)
	a.closer.Add("printer", a.binder.Wait)

	return nil
}

// initLogoSource выбирает источник логотипа. Для MinIO локальный файл, если задан, загружается в бакет.
func (a *App) initLogoSource(ctx context.Context) (usecase.LogoSource, error) {
	if a.cfg.Logo.Source != config.LogoSourceMinio {
		return logo.NewFileSource(a.cfg.Logo.Path), nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return nil, err
	}

	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return nil, err
	}

	logoRepo := s3Repo.NewLogoRepo(minioClient, a.cfg.Minio, a.cfg.Logo.ObjectKey)

	if a.cfg.Logo.Path != "" {
		if err := uploadLogo(ctx, logoRepo, a.cfg.Logo.Path); err != nil {
			// Логотип в бакете мог остаться с прошлого запуска
			a.logger.Warnf("Logo upload from %s failed: %v", a.cfg.Logo.Path, err)
		} else {
			a.logger.Infof("Logo uploaded to %s/%s", a.cfg.Minio.BucketName, a.cfg.Logo.ObjectKey)
		}
	}

	return logoRepo, nil
}

func uploadLogo(ctx context.Context, repo *s3Repo.LogoRepo, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	mime, err := infrastructure.DetectImageMIME(data)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return repo.Upload(ctx, data, mime)
}

func (a *App) onNetworkLost() {
	select {
	case a.networkLost <- struct{}{}:
	default:
	}
}

// Run запускает привязку принтера, наблюдение за сетью и HTTP-сервер и блокируется до сигнала,
// фатальной ошибки сервера или потери сети.
func (a *App) Run() error {
	runCtx, stop := context.WithCancel(context.Background())
	defer stop()

	go a.binder.Run(runCtx)
	go a.watcher.Run(runCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-a.networkLost:
		appErr = errNetworkLost
		a.logger.Warnf("Network lost, shutting down")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	stop()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "resource shutdown error")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(ctx context.Context, logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(postgres.DefaultMigrationsURL, logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
