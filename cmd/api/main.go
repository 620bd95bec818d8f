package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apnacafe/backend/internal/booking"
	"github.com/apnacafe/backend/internal/cart"
	"github.com/apnacafe/backend/internal/catalog"
	"github.com/apnacafe/backend/internal/config"
	"github.com/apnacafe/backend/internal/events"
	"github.com/apnacafe/backend/internal/httpx"
	"github.com/apnacafe/backend/internal/mailer"
	"github.com/apnacafe/backend/internal/orders"
	"github.com/apnacafe/backend/internal/payment"
	"github.com/apnacafe/backend/internal/postgres"
	"github.com/apnacafe/backend/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}
		logger.Info("migrations applied")
		return
	}

	// Mail outbox
	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	outbox := mailer.NewOutbox(sender, 256, logger)
	outbox.Start(ctx)

	// Event producer (optional)
	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.ServiceName, 1024, logger)
		producer.Start(ctx)
	}

	// Handler wiring
	menu := catalog.Default()
	h := &httpx.Handler{
		Catalog: menu,
		Cart:    cart.NewStore(menu),
		Orders:  &orders.Repo{DB: db},
		Booking: &booking.Repo{DB: db},
		Payments: payment.New(payment.Config{
			BaseURL:   cfg.CashfreeBaseURL,
			AppID:     cfg.CashfreeAppID,
			Secret:    cfg.CashfreeSecret,
			ReturnURL: cfg.PaymentReturnURL,
		}, logger),
		Mail:   outbox,
		Events: producer,
		Log:    logger,
	}
	if cfg.RedisAddr != "" {
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		h.Redis = rdb
	}

	router := httpx.NewRouter(cfg.ServiceName, cfg.CORSOrigin)
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logger.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	// queued mail and events flush before exit
	outbox.Close()
	outbox.WaitClosed()
	if producer != nil {
		producer.Close()
		producer.WaitClosed()
	}
}
