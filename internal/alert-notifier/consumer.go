package alert_notifier

import (
	apperrors "Website_Monitoring_Service/internal/monitoring-service/errors"
	"Website_Monitoring_Service/internal/monitoring-service/model"
	"Website_Monitoring_Service/internal/monitoring-service/repository"
	"Website_Monitoring_Service/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// AlertConsumer delivers published alert events to the owner's Telegram chat
// and marks them sent. Malformed events and events for users without a
// connected chat are committed and dropped; delivery failures leave the
// message uncommitted so it is redelivered.
type AlertConsumer interface {
	Start()
	Stop()
}

type alertConsumer struct {
	kafkaReader infra.KafkaReader
	userRepo    repository.UserRepository
	alertRepo   repository.AlertRepository
	telegram    TelegramClient
	logger      *zap.Logger
}

func (a *alertConsumer) Start() {
	go func() {
		for {
			m, err := a.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("alertConsumer.Start: %w", err)
				a.logger.Error("failed to fetch message", zap.Error(err))
				continue
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if a.handleMessage(ctx, m) {
				if err = a.kafkaReader.CommitMessages(ctx, m); err != nil {
					err = fmt.Errorf("alertConsumer.Start: %w", err)
					a.logger.Error("failed to commit messages", zap.Error(err))
				}
			}
			cancel()
		}
	}()
}

// handleMessage reports whether the message should be committed.
func (a *alertConsumer) handleMessage(ctx context.Context, m kafka.Message) bool {
	if m.Value == nil {
		return true
	}
	var event model.AlertEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		err = fmt.Errorf("alertConsumer.handleMessage: %w", err)
		a.logger.Error("failed to unmarshal alert event", zap.Error(err))
		return true
	}
	user, err := a.userRepo.GetUserById(ctx, event.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			a.logger.Warn("alert owner not found, dropping event",
				zap.String("alert_id", event.AlertID), zap.String("user_id", event.UserID))
			return true
		}
		err = fmt.Errorf("alertConsumer.handleMessage: %w", err)
		a.logger.Error("failed to load alert owner", zap.Error(err), zap.String("alert_id", event.AlertID))
		return false
	}
	if user.TelegramChatID == "" {
		a.logger.Info("user has no telegram chat connected, skipping delivery",
			zap.String("alert_id", event.AlertID), zap.String("user_id", event.UserID))
		return true
	}
	text := fmt.Sprintf("🚨 <b>%s</b>\n\n%s", event.Title, event.Message)
	if err = a.telegram.SendMessage(ctx, user.TelegramChatID, text); err != nil {
		err = fmt.Errorf("alertConsumer.handleMessage: %w", err)
		a.logger.Error("failed to send telegram message", zap.Error(err), zap.String("alert_id", event.AlertID))
		return false
	}
	if err = a.alertRepo.MarkAlertSent(ctx, event.AlertID); err != nil {
		err = fmt.Errorf("alertConsumer.handleMessage: %w", err)
		a.logger.Error("failed to mark alert sent", zap.Error(err), zap.String("alert_id", event.AlertID))
		// Delivered but not recorded; commit anyway to avoid a duplicate message.
	}
	a.logger.Info("alert delivered",
		zap.String("alert_id", event.AlertID), zap.String("user_id", event.UserID))
	return true
}

func (a *alertConsumer) Stop() {
	a.kafkaReader.Close()
}

func NewAlertConsumer(
	reader infra.KafkaReader,
	userRepo repository.UserRepository,
	alertRepo repository.AlertRepository,
	telegram TelegramClient,
	logger *zap.Logger,
) AlertConsumer {
	return &alertConsumer{
		kafkaReader: reader,
		userRepo:    userRepo,
		alertRepo:   alertRepo,
		telegram:    telegram,
		logger:      logger,
	}
}
