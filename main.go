package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gulfstaffing/manpower-review/internal/cache"
	"github.com/gulfstaffing/manpower-review/internal/config"
	"github.com/gulfstaffing/manpower-review/internal/db"
	"github.com/gulfstaffing/manpower-review/internal/events"
	"github.com/gulfstaffing/manpower-review/internal/handler"
	"github.com/gulfstaffing/manpower-review/internal/logger"
	"github.com/gulfstaffing/manpower-review/internal/repository"
	"github.com/gulfstaffing/manpower-review/internal/router"
	"github.com/gulfstaffing/manpower-review/internal/service"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// Remote document store
	es, err := db.NewElasticsearch(cfg.ESAddresses, cfg.ESUsername, cfg.ESPassword)
	if err != nil {
		log.Fatal("store client init failed", zap.Error(err))
	}
	if err := db.Ping(es); err != nil {
		// Loads surface their own failures; an unreachable store at boot is
		// not fatal.
		log.Warn("store unreachable at startup", zap.Error(err))
	}

	// Repositories
	subRepo := repository.NewSubmissionRepo(es, cfg.SubmissionsIndex)
	payRepo := repository.NewPaymentRepo(es, cfg.PaymentsIndex)
	auditRepo := repository.NewAuditRepo(es, cfg.AuditIndex)

	// Event bus (optional)
	var bus service.Publisher
	if cfg.AMQPURL != "" {
		pub, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			log.Warn("event bus unavailable, mutations will not be published", zap.Error(err))
		} else {
			defer pub.Close()
			bus = pub
			log.Info("event bus connected", zap.String("exchange", cfg.AMQPExchange))
		}
	}

	// Dashboard cache
	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisCache.Close()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unreachable, dashboard responses will not be cached", zap.Error(err))
		}
		cancel()
	}

	// Services
	subSvc := service.NewSubmissionService(subRepo, auditRepo, bus, log)
	paySvc := service.NewPaymentService(payRepo, auditRepo, bus, log)

	// Handlers
	subH := handler.NewSubmissionHandler(subSvc)
	payH := handler.NewPaymentHandler(paySvc)
	dashH := handler.NewDashboardHandler(subSvc, paySvc, redisCache, log)
	auditH := handler.NewAuditHandler(auditRepo)

	subSvc.OnChange(dashH.Invalidate)
	paySvc.OnChange(dashH.Invalidate)

	// Initial load in the background so a slow store never delays startup;
	// the reload endpoints cover anything that fails here.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		subSvc.Load(ctx)
		paySvc.Load(ctx)
	}()

	r := router.New(cfg.JWTSecret, log, subH, payH, dashH, auditH)

	log.Info("manpower review server starting", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
