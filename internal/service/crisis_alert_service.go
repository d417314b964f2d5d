package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/logger"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/mailer"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/websocket"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/events"
	pktNats "github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/nats"
)

type ICrisisAlertService interface {
	Consume(ctx context.Context) error
}

// crisisAlertService drains the in-process alert bus and fans each
// high-severity detection out to the admin email, the external event
// stream, and connected dashboards. It runs after the crisis log commit,
// so every alert it sees is already durable.
type crisisAlertService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	hub            *websocket.Hub
	adminEmail     string
	logger         logger.ILogger
}

func NewCrisisAlertService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	hub *websocket.Hub,
	adminEmail string,
	log logger.ILogger,
) ICrisisAlertService {
	return &crisisAlertService{
		pubSub:         pubSub,
		topicName:      topicName,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		hub:            hub,
		adminEmail:     adminEmail,
		logger:         log,
	}
}

func (cs *crisisAlertService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

type crisisAlertPayload struct {
	CrisisLogId string   `json:"crisis_log_id"`
	UserId      string   `json:"user_id"`
	RiskLevel   string   `json:"risk_level"`
	Keywords    []string `json:"keywords"`
	DetectedAt  string   `json:"detected_at"`
}

func (cs *crisisAlertService) processMessage(ctx context.Context, msg *message.Message) {
	var payload crisisAlertPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("crisis_alert", "failed to unmarshal alert", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("crisis_alert", "processing crisis alert", map[string]interface{}{
		"crisis_log_id": payload.CrisisLogId,
		"risk_level":    payload.RiskLevel,
	})

	// 1. Email the on-call admin
	if cs.emailService != nil && cs.adminEmail != "" {
		if err := cs.emailService.SendCrisisAlert(cs.adminEmail, payload.UserId, payload.RiskLevel, payload.Keywords); err != nil {
			cs.logger.Error("crisis_alert", "failed to send alert email", map[string]interface{}{
				"crisis_log_id": payload.CrisisLogId,
				"error":         err.Error(),
			})
		}
	}

	// 2. Publish to the external event stream
	if cs.eventPublisher != nil {
		publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		event := events.NewCrisisDetectedEvent(payload.UserId, payload.CrisisLogId, payload.RiskLevel, payload.Keywords)
		if err := cs.eventPublisher.Publish(publishCtx, event); err != nil {
			cs.logger.Error("crisis_alert", "failed to publish crisis event", map[string]interface{}{
				"crisis_log_id": payload.CrisisLogId,
				"error":         err.Error(),
			})
		}
		cancel()
	}

	// 3. Push to connected admin dashboards
	if cs.hub != nil {
		cs.hub.BroadcastAlert(websocket.Alert{
			CrisisLogId: payload.CrisisLogId,
			UserId:      payload.UserId,
			RiskLevel:   payload.RiskLevel,
			Keywords:    payload.Keywords,
			DetectedAt:  payload.DetectedAt,
		})
	}

	// Delivery is best-effort across all three channels: the crisis log
	// row already records AdminNotified, so a failed channel is logged,
	// not retried.
	msg.Ack()
}
