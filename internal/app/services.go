package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/orienta-pe/orienta_backend/config"
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
	"github.com/orienta-pe/orienta_backend/pkg/classifier"
	"github.com/orienta-pe/orienta_backend/pkg/email"
	"github.com/orienta-pe/orienta_backend/pkg/notifier"
	pasetotoken "github.com/orienta-pe/orienta_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideEnrollmentService,
		ProvideInventoryService,
		ProvideAcademicService,
		ProvideTutorRequestService,
		ProvideInstitutionService,
		ProvideForumService,
		ProvideChatService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	emailCli *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, emailCli, paseto, cfg)
}

func ProvideUserService(client *repo.Client, cfg *config.Config, authz authorize.IAuthorization) (user.Service, error) {
	return user.New(client, cfg, authz)
}

func ProvideEnrollmentService(db *repo.Client, nc *nats.Conn, authz authorize.IAuthorization) enrollment.Service {
	return enrollment.New(db, nc, authz)
}

func ProvideInventoryService(db *repo.Client, cls *classifier.Client, nc *nats.Conn) inventory.Service {
	return inventory.New(db, cls, nc)
}

func ProvideAcademicService(db *repo.Client, cls *classifier.Client) academic.Service {
	return academic.New(db, cls)
}

func ProvideTutorRequestService(db *repo.Client, ntf *notifier.Client, nc *nats.Conn, cfg *config.Config) (tutorreq.Service, error) {
	return tutorreq.New(db, ntf, nc, cfg)
}

func ProvideInstitutionService(db *repo.Client, cfg *config.Config) institution.Service {
	return institution.New(db, cfg)
}

func ProvideForumService(db *repo.Client, nc *nats.Conn) forum.Service {
	return forum.New(db, nc)
}

func ProvideChatService(db *repo.Client, nc *nats.Conn) chat.Service {
	return chat.New(db, nc)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
