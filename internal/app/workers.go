package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	entconv "github.com/orienta-pe/orienta_backend/internal/repo/conversation"
	entcomment "github.com/orienta-pe/orienta_backend/internal/repo/forumcomment"
	entpost "github.com/orienta-pe/orienta_backend/internal/repo/forumpost"
	entmsg "github.com/orienta-pe/orienta_backend/internal/repo/message"
	entreq "github.com/orienta-pe/orienta_backend/internal/repo/tutorrequest"
	"github.com/orienta-pe/orienta_backend/internal/service/notification"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.DB, p.NotifSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// subjectTail returns the last token of a dotted NATS subject.
func subjectTail(subject string) string {
	parts := strings.Split(subject, ".")
	return parts[len(parts)-1]
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, db *repo.Client, notifSvc notification.Service) {
	// New chat message notifications
	_, err := nc.Subscribe("orienta.chat.message.new.*", func(msg *nats.Msg) {
		convID, err := uuid.Parse(subjectTail(msg.Subject))
		if err != nil {
			return
		}
		msgID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		conv, err := db.Conversation.Query().
			Where(entconv.ID(convID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: conversation not found", "id", convID, "err", err)
			return
		}

		message, err := db.Message.Query().
			Where(entmsg.ID(msgID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: message not found", "id", msgID, "err", err)
			return
		}

		recipientID := conv.ParticipantA
		if conv.ParticipantA == message.SenderID {
			recipientID = conv.ParticipantB
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: recipientID,
			Type:   "chat_message",
			Title:  "Nuevo mensaje",
			Data:   map[string]any{"conversation_id": conv.ID.String()},
		})
		if err != nil {
			slog.Warn("notification_worker: create message notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe chat.message.new failed", "err", err)
	}

	// Forum comment notifications for the post author
	_, err = nc.Subscribe("orienta.forum.comment.new.*", func(msg *nats.Msg) {
		postID, err := uuid.Parse(subjectTail(msg.Subject))
		if err != nil {
			return
		}
		commentID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		post, err := db.ForumPost.Query().
			Where(entpost.ID(postID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: post not found", "id", postID, "err", err)
			return
		}

		comment, err := db.ForumComment.Query().
			Where(entcomment.ID(commentID)).
			Only(ctx)
		if err != nil {
			slog.Warn("notification_worker: comment not found", "id", commentID, "err", err)
			return
		}

		// Commenting on your own post makes no noise
		if comment.AuthorID == post.AuthorID {
			return
		}

		_, err = notifSvc.Create(ctx, notification.CreateRequest{
			UserID: post.AuthorID,
			Type:   "forum_comment",
			Title:  "Nuevo comentario en tu publicación",
			Data:   map[string]any{"post_id": post.ID.String()},
		})
		if err != nil {
			slog.Warn("notification_worker: create comment notification failed", "err", err)
		}
	})
	if err != nil {
		slog.Error("notification_worker: subscribe forum.comment.new failed", "err", err)
	}

	// Tutor request decisions
	_, err = nc.Subscribe("orienta.tutor_request.approved.*", func(msg *nats.Msg) {
		notifyTutorRequestDecision(db, notifSvc, msg, "tutor_request_approved", "Tu solicitud de tutor fue aprobada")
	})
	if err != nil {
		slog.Error("notification_worker: subscribe tutor_request.approved failed", "err", err)
	}

	_, err = nc.Subscribe("orienta.tutor_request.rejected.*", func(msg *nats.Msg) {
		notifyTutorRequestDecision(db, notifSvc, msg, "tutor_request_rejected", "Tu solicitud de tutor fue rechazada")
	})
	if err != nil {
		slog.Error("notification_worker: subscribe tutor_request.rejected failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

func notifyTutorRequestDecision(db *repo.Client, notifSvc notification.Service, msg *nats.Msg, notifType, title string) {
	reqID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	if err != nil {
		return
	}

	ctx := context.Background()

	r, err := db.TutorRequest.Query().
		Where(entreq.ID(reqID)).
		Only(ctx)
	if err != nil {
		slog.Warn("notification_worker: tutor request not found", "id", reqID, "err", err)
		return
	}

	_, err = notifSvc.Create(ctx, notification.CreateRequest{
		UserID: r.UserID,
		Type:   notifType,
		Title:  title,
		Data:   map[string]any{"request_id": r.ID.String()},
	})
	if err != nil {
		slog.Warn("notification_worker: create tutor request notification failed", "err", err)
	}
}
