package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/orienta-pe/orienta_backend/config"
	"github.com/orienta-pe/orienta_backend/internal/api/http/handler"
	"github.com/orienta-pe/orienta_backend/internal/api/http/middleware"
	"github.com/orienta-pe/orienta_backend/internal/repo"
	"github.com/orienta-pe/orienta_backend/internal/service/academic"
	"github.com/orienta-pe/orienta_backend/internal/service/auth"
	"github.com/orienta-pe/orienta_backend/internal/service/chat"
	"github.com/orienta-pe/orienta_backend/internal/service/enrollment"
	"github.com/orienta-pe/orienta_backend/internal/service/forum"
	"github.com/orienta-pe/orienta_backend/internal/service/institution"
	"github.com/orienta-pe/orienta_backend/internal/service/inventory"
	"github.com/orienta-pe/orienta_backend/internal/service/notification"
	"github.com/orienta-pe/orienta_backend/internal/service/tutorreq"
	"github.com/orienta-pe/orienta_backend/internal/service/user"
	"github.com/orienta-pe/orienta_backend/pkg/authorize"
	pasetotoken "github.com/orienta-pe/orienta_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	AuthSvc         auth.Service
	UserSvc         user.Service
	EnrollmentSvc   enrollment.Service
	InventorySvc    inventory.Service
	AcademicSvc     academic.Service
	TutorRequestSvc tutorreq.Service
	InstitutionSvc  institution.Service
	ForumSvc        forum.Service
	ChatSvc         chat.Service
	NotificationSvc notification.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	assocCtx := middleware.AssociationContext(r.p.DB)

	// Permission helpers
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSys := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSysPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	enrollmentH := handler.NewEnrollmentHandler(r.p.EnrollmentSvc)
	inventoryH := handler.NewInventoryHandler(r.p.InventorySvc)
	academicH := handler.NewAcademicHandler(r.p.AcademicSvc)
	tutorReqH := handler.NewTutorRequestHandler(r.p.TutorRequestSvc)
	institutionH := handler.NewInstitutionHandler(r.p.InstitutionSvc)
	forumH := handler.NewForumHandler(r.p.ForumSvc)
	chatH := handler.NewChatHandler(r.p.ChatSvc)
	notificationH := handler.NewNotificationHandler(r.p.NotificationSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requireSys)
	r.registerEnrollmentRoutes(api, enrollmentH, authRequired)
	r.registerInventoryRoutes(api, inventoryH, authRequired, requireSys)
	r.registerAcademicRoutes(api, academicH, authRequired)
	r.registerTutorRequestRoutes(api, tutorReqH, authRequired, requireSys)
	r.registerInstitutionRoutes(api, institutionH, authRequired, assocCtx, requirePerm, requireSys)
	r.registerForumRoutes(api, forumH, authRequired, assocCtx, requirePerm)
	r.registerChatRoutes(api, chatH, authRequired, assocCtx, requirePerm)
	r.registerNotificationRoutes(api, notificationH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
