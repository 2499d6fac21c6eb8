package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"hr-assistant/config"
	_ "hr-assistant/docs" // Swagger docs
	hragent "hr-assistant/internal/agent"
	"hr-assistant/internal/agent/orchestrator"
	attendanceAgent "hr-assistant/internal/attendance/agent"
	attendanceRepo "hr-assistant/internal/attendance/repository/memory"
	attendanceUC "hr-assistant/internal/attendance/usecase"
	"hr-assistant/internal/conversation"
	convMemory "hr-assistant/internal/conversation/repository/memory"
	convRedis "hr-assistant/internal/conversation/repository/redis"
	"hr-assistant/internal/extractor"
	"hr-assistant/internal/flow"
	holidayAgent "hr-assistant/internal/holiday/agent"
	holidayRepo "hr-assistant/internal/holiday/repository"
	holidayCalendar "hr-assistant/internal/holiday/repository/calendar"
	holidayMemory "hr-assistant/internal/holiday/repository/memory"
	holidayUC "hr-assistant/internal/holiday/usecase"
	"hr-assistant/internal/httpserver"
	leaveAgent "hr-assistant/internal/leave/agent"
	leaveRepo "hr-assistant/internal/leave/repository/memory"
	leaveUC "hr-assistant/internal/leave/usecase"
	"hr-assistant/internal/message"
	messageHTTP "hr-assistant/internal/message/delivery/http"
	messageUC "hr-assistant/internal/message/usecase"
	"hr-assistant/internal/metrics"
	"hr-assistant/internal/middleware"
	"hr-assistant/internal/router"
	"hr-assistant/pkg/datemath"
	"hr-assistant/pkg/gcalendar"
	"hr-assistant/pkg/llmprovider"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/teams"
)

// @title       HR Assistant API
// @description Conversational HR backend: attendance, leave and holiday agents behind one message endpoint.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting HR Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared infrastructure
	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New()
	}

	dateMathParser, err := datemath.NewParser(cfg.Holiday.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Holiday.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	store, ready, err := initConversationStore(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize conversation store: ", err)
		return
	}

	flowOpts := []flow.Option{flow.WithDateResolver(dateMathParser)}
	if collector != nil {
		flowOpts = append(flowOpts, flow.WithObserver(collector))
	}
	engine := flow.New(store, extractor.New(), logger, flowOpts...)

	// 4. Text generation (optional)
	generator := initGenerator(ctx, cfg, logger, collector)
	augmenter := hragent.NewAugmenter(generator, hragent.AugmenterConfig{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Location:    dateMathParser.Location(),
	})
	intentRouter := router.New(generator, logger)

	// 5. Domain agents
	teamsClient := teams.NewClient(cfg.Teams.WebhookURL, cfg.Teams.DetailsURL)
	if cfg.Teams.WebhookURL == "" {
		logger.Info(ctx, "Teams webhook not configured, regularization notifications disabled")
	}

	attendance := attendanceAgent.New(logger,
		attendanceUC.New(logger, attendanceRepo.New(), dateMathParser, teamsClient),
		engine, augmenter)
	leave := leaveAgent.New(logger,
		leaveUC.New(logger, leaveRepo.New(), dateMathParser.Location()),
		engine, augmenter)
	holiday := holidayAgent.New(logger,
		holidayUC.New(logger, initHolidayRepo(ctx, cfg, logger, dateMathParser), dateMathParser),
		augmenter)

	registry := hragent.NewRegistry(attendance, leave, holiday)
	logger.Infof(ctx, "Agents registered: %v", registry.Names())
	orch := orchestrator.New(registry, augmenter, logger)

	// 6. Message domain
	var recorder message.IntentRecorder
	if collector != nil {
		recorder = collector
	}
	messageHandler := messageHTTP.New(logger,
		messageUC.New(logger, intentRouter, orch, store, recorder),
		cfg.Conversation.DefaultUserID)

	// 7. HTTP Server
	var httpObserver middleware.HTTPObserver
	srvCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Ready:           ready,
		MessageHandler:  messageHandler,
	}
	if collector != nil {
		httpObserver = collector
		srvCfg.MetricsPath = cfg.Metrics.Path
		srvCfg.MetricsHandler = collector.Handler()
	}
	srvCfg.Middleware = middleware.New(logger, cfg.RateLimit, httpObserver)

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// initConversationStore picks the state backend. The redis backend also
// backs the readiness check.
func initConversationStore(ctx context.Context, cfg *config.Config, logger log.Logger) (conversation.Store, httpserver.ReadyFunc, error) {
	if cfg.Conversation.Backend != "redis" {
		logger.Info(ctx, "Conversation store: memory")
		return convMemory.New(convMemory.Config{
			TTL:      cfg.Conversation.TTL,
			Capacity: cfg.Conversation.Capacity,
		}, logger), nil, nil
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping %s: %w", cfg.Redis.Addr, err)
	}
	logger.Infof(ctx, "Conversation store: redis at %s", cfg.Redis.Addr)

	store := convRedis.NewFromClient(client, convRedis.Config{
		KeyPrefix: cfg.Redis.KeyPrefix,
		TTL:       cfg.Conversation.TTL,
	}, logger)
	ready := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	return store, ready, nil
}

// initGenerator returns nil when no provider could be built; every model
// caller then falls back to its static answer.
func initGenerator(ctx context.Context, cfg *config.Config, logger log.Logger, collector *metrics.Collector) hragent.Generator {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		var partial *llmprovider.PartialInitError
		switch {
		case errors.As(err, &partial):
			logger.Warnf(ctx, "Some LLM providers failed to initialize: %v", err)
		case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
			logger.Warn(ctx, "No LLM provider configured, answers will use static data only")
			return nil
		default:
			logger.Warnf(ctx, "LLM providers unavailable, answers will use static data only: %v", err)
			return nil
		}
	}

	var opts []llmprovider.ManagerOption
	if collector != nil {
		opts = append(opts, llmprovider.WithRecorder(collector))
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(ctx, logger, "llm.retry_delay", cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(ctx, logger, "llm.max_total_timeout", cfg.LLM.MaxTotalTimeout, 30*time.Second),
	}, logger, opts...)

	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	logger.Infof(ctx, "✅ LLM providers ready: %v", names)
	return manager
}

// initHolidayRepo reads Google Calendar when a calendar id is configured,
// and the seeded list otherwise.
func initHolidayRepo(ctx context.Context, cfg *config.Config, logger log.Logger, p *datemath.Parser) holidayRepo.Repository {
	year := cfg.Holiday.Year
	if year == 0 {
		year = time.Now().In(p.Location()).Year()
	}

	gc := cfg.Holiday.GoogleCalendar
	if gc.CalendarID != "" && gc.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, gc.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available, using seeded holidays: %v", err)
		} else {
			logger.Infof(ctx, "✅ Holidays from Google Calendar %s (%d)", gc.CalendarID, year)
			return holidayCalendar.New(logger, client, holidayCalendar.Config{
				CalendarID: gc.CalendarID,
				Year:       year,
				Location:   p.Location(),
			})
		}
	}

	logger.Infof(ctx, "Holidays from seeded calendar (%d)", year)
	return holidayMemory.New(year)
}

func parseDuration(ctx context.Context, logger log.Logger, key, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warnf(ctx, "Invalid %s %q, using %s: %v", key, value, fallback, err)
		return fallback
	}
	return d
}
