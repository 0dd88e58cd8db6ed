package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"taskflow-pro/config"
	_ "taskflow-pro/docs" // Swagger docs
	"taskflow-pro/internal/httpserver"
	"taskflow-pro/pkg/database"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/gcalendar"
	"taskflow-pro/pkg/log"
	"taskflow-pro/pkg/scope"
	"taskflow-pro/pkg/telegram"
)

// @title       TaskFlow Pro API
// @description Task management with a rule-based assistant, organizations, focus timer and subscription tiers.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey Bearer
// @in          header
// @name        Authorization
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

	logger.Info(ctx, "Starting TaskFlow Pro...")
	logger.Infof(ctx, "Environment: %s, demo mode: %t", cfg.Environment.Name, cfg.App.DemoMode)

	// 3. Database
	db, err := database.Open(ctx, logger, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		SQLitePath:      cfg.Database.SQLitePath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	if err := database.Migrate(ctx, logger, db, cfg.Database.Driver); err != nil {
		logger.Error(ctx, "Failed to migrate database: ", err)
		return
	}

	// 4. Redis, outside demo mode only
	var redisClient *redis.Client
	if !cfg.App.DemoMode {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error(ctx, "Failed to connect to redis: ", err)
			return
		}
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected at %s", cfg.Redis.Addr)
	}

	// 5. Date math in the configured zone
	dateMathParser, err := datemath.NewParser(cfg.App.Timezone)
	if err != nil {
		logger.Error(ctx, "Invalid timezone: ", err)
		return
	}

	// 6. Google Calendar (optional)
	var calendar gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `taskflow calendar-auth` to generate token.json")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Telegram (optional)
	var messenger telegram.Messenger
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		messenger = bot
		registerWebhook(ctx, logger, bot, cfg.Telegram)
	} else {
		logger.Info(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             db,
		DBDriver:       cfg.Database.Driver,
		Redis:          redisClient,
		JWTManager:     scope.New(cfg.JWT.Secret, cfg.JWT.TTL),
		DateMath:       dateMathParser,
		Calendar:       calendar,
		CalendarID:     cfg.GoogleCalendar.CalendarID,
		CORSOrigins:    cfg.CORS.AllowedOrigins,
		DemoMode:       cfg.App.DemoMode,
		ChatPerMin:     cfg.RateLimit.ChatPerMin,
		LoginPerMin:    cfg.RateLimit.LoginPerMin,
		Telegram:       messenger,
		TelegramSecret: cfg.Telegram.WebhookSecret,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this service. The URL comes from config
// or, failing that, from a local tunnel agent.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.TunnelAPI != "" {
		tunnelURL, err := detectTunnelURL(ctx, cfg.TunnelAPI)
		if err != nil {
			logger.Warnf(ctx, "Could not detect tunnel URL: %v", err)
			return
		}
		webhookURL = tunnelURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected tunnel URL: %s", webhookURL)
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: telegram.webhook_url is empty")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.WebhookSecret); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
