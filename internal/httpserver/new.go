package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/gcalendar"
	"taskflow-pro/pkg/log"
	"taskflow-pro/pkg/scope"
	pkgTelegram "taskflow-pro/pkg/telegram"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db          *sql.DB
	dbDriver    string
	redis       *redis.Client
	jwtManager  scope.Manager
	dateMath    *datemath.Parser
	calendar    gcalendar.Calendar
	calendarID  string
	corsOrigins []string

	// Product
	demoMode    bool
	chatPerMin  int
	loginPerMin int

	// Telegram, optional
	telegram       pkgTelegram.Messenger
	telegramSecret string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB          *sql.DB
	DBDriver    string
	Redis       *redis.Client // nil keeps subscriptions and rate limits in process
	JWTManager  scope.Manager
	DateMath    *datemath.Parser
	Calendar    gcalendar.Calendar // nil disables event sync
	CalendarID  string
	CORSOrigins []string

	DemoMode    bool
	ChatPerMin  int
	LoginPerMin int

	Telegram       pkgTelegram.Messenger // nil skips the webhook route
	TelegramSecret string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		dbDriver:       cfg.DBDriver,
		redis:          cfg.Redis,
		jwtManager:     cfg.JWTManager,
		dateMath:       cfg.DateMath,
		calendar:       cfg.Calendar,
		calendarID:     cfg.CalendarID,
		corsOrigins:    cfg.CORSOrigins,
		demoMode:       cfg.DemoMode,
		chatPerMin:     cfg.ChatPerMin,
		loginPerMin:    cfg.LoginPerMin,
		telegram:       cfg.Telegram,
		telegramSecret: cfg.TelegramSecret,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
