package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/logger"
	"givebridge-be/internal/repository/specification"
	"givebridge-be/internal/repository/unitofwork"
)

// Pusher delivers a notification to a connected client, if any. Implemented
// by the websocket hub.
type Pusher interface {
	Push(userId uuid.UUID, payload interface{})
}

type INotificationService interface {
	Notify(ctx context.Context, userId uuid.UUID, typ, message, link string, metadata map[string]any) error
	List(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error)
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	redis      *redis.Client
	pusher     Pusher
	logger     logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	redisClient *redis.Client,
	pusher Pusher,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		redis:      redisClient,
		pusher:     pusher,
		logger:     log,
	}
}

func unreadKey(userId uuid.UUID) string {
	return fmt.Sprintf("notifications:unread:%s", userId)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:        n.Id,
		Type:      n.Type,
		Message:   n.Message,
		Link:      n.Link,
		Metadata:  n.Metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (s *notificationService) Notify(ctx context.Context, userId uuid.UUID, typ, message, link string, metadata map[string]any) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notification := &entity.Notification{
		Id:       uuid.New(),
		UserId:   userId,
		Type:     typ,
		Message:  message,
		Link:     link,
		Metadata: metadata,
	}
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	// The counter is a cache over the notifications table; a failed bump is
	// corrected on the next database fallback read.
	if s.redis != nil {
		if err := s.redis.Incr(ctx, unreadKey(userId)).Err(); err != nil {
			s.logger.Warn("notification", "failed to bump unread counter", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	if s.pusher != nil {
		s.pusher.Push(userId, toNotificationResponse(notification))
	}
	return nil
}

// List returns the user's notifications newest first and marks them read.
func (s *notificationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.NotificationRepository().MarkAllRead(ctx, userId); err != nil {
		return nil, err
	}
	if s.redis != nil {
		if err := s.redis.Del(ctx, unreadKey(userId)).Err(); err != nil {
			s.logger.Warn("notification", "failed to reset unread counter", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	result := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		result[i] = toNotificationResponse(n)
	}
	return result, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userId uuid.UUID) (int64, error) {
	if s.redis != nil {
		count, err := s.redis.Get(ctx, unreadKey(userId)).Int64()
		if err == nil {
			return count, nil
		}
		if err != redis.Nil {
			s.logger.Warn("notification", "unread counter read failed, falling back to db", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.NotificationRepository().Count(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.UnreadOnly{},
	)
	if err != nil {
		return 0, err
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, unreadKey(userId), count, 0).Err(); err != nil {
			s.logger.Warn("notification", "failed to backfill unread counter", map[string]interface{}{
				"user_id": userId.String(),
				"error":   err.Error(),
			})
		}
	}
	return count, nil
}
