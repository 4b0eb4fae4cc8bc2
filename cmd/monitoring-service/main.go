package main

import (
	"Website_Monitoring_Service/internal/monitoring-service/api/handler"
	"Website_Monitoring_Service/internal/monitoring-service/api/routes"
	"Website_Monitoring_Service/internal/monitoring-service/config"
	"Website_Monitoring_Service/internal/monitoring-service/monitor"
	"Website_Monitoring_Service/internal/monitoring-service/repository"
	"Website_Monitoring_Service/internal/monitoring-service/service"
	"Website_Monitoring_Service/pkg/infra"
	"Website_Monitoring_Service/pkg/logger"
	"Website_Monitoring_Service/pkg/mail"
	"Website_Monitoring_Service/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/monitoring-service.log")
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "monitoring-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	//set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up kafka producer
	kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.AlertTopic)
	defer kafkaWriter.Close()

	// set up dependencies
	websiteRepo := repository.NewCachedWebsiteRepository(redisClient, repository.NewWebsiteRepository(db), appConfig.Redis.CacheTTL)
	checkResultRepo := repository.NewCheckResultRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)

	alertSink := monitor.NewKafkaAlertSink(kafkaWriter)
	prober := monitor.NewProber(appConfig.Monitor.ProbeTimeout)
	uptime := monitor.NewUptimeAggregator(checkResultRepo, appConfig.Monitor.UptimeWindow, zapLogger)
	checker := monitor.NewChecker(websiteRepo, checkResultRepo, alertRepo, alertSink, prober, uptime, monitor.CheckerConfig{
		PacingDelay:           appConfig.Monitor.PacingDelay,
		AlertOnTransitionOnly: appConfig.Monitor.AlertOnTransitionOnly,
	}, zapLogger)

	websiteService := service.NewWebsiteService(websiteRepo, checkResultRepo, mailSender, appConfig.Mail.AdminMailAddress)
	alertService := service.NewAlertService(alertRepo)

	websiteHandler := handler.NewWebsiteHandler(zapLogger, websiteService)
	handlerLogger := handler.NewLogger(zapLogger)
	monitorHandler := handler.NewMonitorHandler(handlerLogger, checker, websiteService)
	alertHandler := handler.NewAlertHandler(handlerLogger, alertService)

	m := middleware.NewAuthMiddleware()

	// set up scheduled checks and daily report
	scheduler := monitor.NewMonitoringScheduler(checker, websiteService, appConfig.Monitor.CheckSchedule, appConfig.Monitor.ReportSchedule, zapLogger)
	if err = scheduler.Start(); err != nil {
		zapLogger.Fatal("failed to start monitoring scheduler", zap.Error(err))
	}

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddWebsiteRoutes(r, websiteHandler, m)
	routes.AddMonitorRoutes(r, monitorHandler, m)
	routes.AddAlertRoutes(r, alertHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	scheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
