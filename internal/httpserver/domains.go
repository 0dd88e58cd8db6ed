package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/auth"
	authHTTP "taskflow-pro/internal/auth/delivery/http"
	authUC "taskflow-pro/internal/auth/usecase"
	"taskflow-pro/internal/chat"
	chatHTTP "taskflow-pro/internal/chat/delivery/http"
	chatTelegram "taskflow-pro/internal/chat/delivery/telegram"
	chatMemory "taskflow-pro/internal/chat/repository/memory"
	chatUC "taskflow-pro/internal/chat/usecase"
	"taskflow-pro/internal/middleware"
	"taskflow-pro/internal/organization"
	orgHTTP "taskflow-pro/internal/organization/delivery/http"
	orgRepo "taskflow-pro/internal/organization/repository/sqldb"
	orgUC "taskflow-pro/internal/organization/usecase"
	"taskflow-pro/internal/pomodoro"
	pomodoroHTTP "taskflow-pro/internal/pomodoro/delivery/http"
	pomodoroMemory "taskflow-pro/internal/pomodoro/repository/memory"
	pomodoroUC "taskflow-pro/internal/pomodoro/usecase"
	"taskflow-pro/internal/subscription"
	subHTTP "taskflow-pro/internal/subscription/delivery/http"
	subRepo "taskflow-pro/internal/subscription/repository"
	subMemory "taskflow-pro/internal/subscription/repository/memory"
	subRedis "taskflow-pro/internal/subscription/repository/redis"
	subUC "taskflow-pro/internal/subscription/usecase"
	"taskflow-pro/internal/task"
	taskHTTP "taskflow-pro/internal/task/delivery/http"
	taskRepo "taskflow-pro/internal/task/repository/sqldb"
	taskUC "taskflow-pro/internal/task/usecase"
)

// domains holds the use cases shared between deliveries.
type domains struct {
	srv          HTTPServer
	subscription subscription.UseCase
	task         task.UseCase
	organization organization.UseCase
	pomodoro     pomodoro.UseCase
	chat         chat.UseCase
	auth         auth.UseCase
}

// setupDomains builds repositories and use cases in dependency order.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.dbDriver, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Register routes in register() with mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupDomains(ctx context.Context) domains {
	var subStore subRepo.Repository
	if srv.redis != nil {
		subStore = subRedis.New(srv.redis, srv.l)
		srv.l.Infof(ctx, "Subscription store: redis")
	} else {
		subStore = subMemory.New(0)
		srv.l.Infof(ctx, "Subscription store: in-process")
	}
	sub := subUC.New(srv.l, subStore)

	tasks := taskUC.New(srv.l, taskRepo.New(srv.db, srv.dbDriver, srv.l), sub, srv.calendar, srv.calendarID, srv.dateMath)
	orgs := orgUC.New(srv.l, orgRepo.New(srv.db, srv.dbDriver, srv.l))
	timers := pomodoroUC.New(srv.l, pomodoroMemory.New(0, 0))
	assistant := chatUC.New(srv.l, tasks, sub, chatMemory.New(chat.HistorySize, 0, 0), srv.dateMath)

	return domains{
		srv:          srv,
		subscription: sub,
		task:         tasks,
		organization: orgs,
		pomodoro:     timers,
		chat:         assistant,
		auth:         authUC.New(srv.l, srv.jwtManager, tasks, orgs, srv.demoMode),
	}
}

func (d domains) register(api *gin.RouterGroup, mw middleware.Middleware) {
	l := d.srv.l

	authHTTP.RegisterRoutes(api, authHTTP.New(l, d.auth), mw, d.srv.loginPerMin)
	subHTTP.RegisterRoutes(api, subHTTP.New(l, d.subscription), mw)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(l, d.task), mw)
	orgHTTP.RegisterRoutes(api, orgHTTP.New(l, d.organization), mw)
	pomodoroHTTP.RegisterRoutes(api, pomodoroHTTP.New(l, d.pomodoro), mw)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(l, d.chat), mw, d.srv.chatPerMin)

	l.Infof(context.Background(), "Domains registered: auth, subscription, tasks, organizations, pomodoro, chat")
}

func (srv HTTPServer) setupTelegram(ctx context.Context, d domains) {
	h := chatTelegram.New(srv.l, d.chat, srv.telegram, srv.telegramSecret)
	chatTelegram.RegisterRoutes(srv.gin, h)
	if srv.telegramSecret == "" {
		srv.l.Warnf(ctx, "telegram.webhook_secret is empty, webhook requests are not authenticated")
	}
}
