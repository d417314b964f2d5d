package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/constant"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/dto"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/logger"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/serverutils"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/memory"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/specification"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/unitofwork"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/history"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/prompt"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/risk"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/safety"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/topic"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm"
)

// IChatService defines the wellness chat service interface
type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationDTO, error)
	GetConversationHistory(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.GetConversationHistoryResponse, error)
	CloseConversation(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error
}

// chatService coordinates the crisis-detection pipeline around the
// completion provider. Stateless between calls; all durable state lives in
// the store.
type chatService struct {
	uowFactory      unitofwork.RepositoryFactory
	provider        llm.CompletionProvider
	providerTimeout time.Duration

	riskClassifier  *risk.Classifier
	templateEngine  *safety.TemplateEngine
	topicClassifier *topic.Classifier
	promptBuilder   *prompt.Builder

	creationLocks  *memory.CreationLockRepository
	alertPublisher message.Publisher
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.CompletionProvider,
	providerTimeout time.Duration,
	creationLocks *memory.CreationLockRepository,
	alertPublisher message.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:      uowFactory,
		provider:        provider,
		providerTimeout: providerTimeout,
		riskClassifier:  risk.NewClassifier(),
		templateEngine:  safety.NewTemplateEngine(),
		topicClassifier: topic.NewClassifier(),
		promptBuilder:   prompt.NewBuilder(),
		creationLocks:   creationLocks,
		alertPublisher:  alertPublisher,
		logger:          log,
	}
}

// SendMessage processes one inbound user message end to end: risk
// classification first, then either the crisis path or the completion path.
func (cs *chatService) SendMessage(ctx context.Context, userId uuid.UUID, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	// 1. Validate before any persistence. Length is counted in runes, the
	// same unit the DTO's max=2000 rule uses.
	if n := utf8.RuneCountInString(request.Content); n == 0 || n > 2000 {
		return nil, serverutils.NewValidationError("content must be between 1 and 2000 characters")
	}

	// Serialize auto-creation per user for the whole unit of work. The new
	// conversation row is invisible to other requests until commit, so the
	// lock must outlive the transaction or a rapid double-submit still
	// creates two conversations.
	if request.ConversationId == nil {
		release := cs.creationLocks.Acquire(userId)
		defer release()
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, serverutils.NewPersistenceError("begin transaction", err)
	}
	defer uow.Rollback()

	// 2. Resolve or create the conversation
	conversation, err := cs.resolveConversation(ctx, uow, userId, request)
	if err != nil {
		return nil, err
	}

	// 3. Persist the user message unconditionally, before classification.
	// No message is ever lost even if later processing fails.
	userMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.SenderUser,
		Content:        request.Content,
		MessageType:    entity.MessageTypeText,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, serverutils.NewPersistenceError("save user message", err)
	}

	profile, err := uow.WellnessProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, serverutils.NewPersistenceError("load wellness profile", err)
	}

	// 4. Classify risk. A hit takes the crisis path; the completion
	// provider is never invoked once risk is detected.
	if result := cs.riskClassifier.Classify(request.Content); result.Detected {
		return cs.handleCrisis(ctx, uow, userId, conversation, userMessage, profile, result)
	}

	// 5. No risk: drive the completion provider
	return cs.handleCompletion(ctx, uow, userId, conversation, userMessage, profile, request.Content)
}

func (cs *chatService) resolveConversation(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, request *dto.SendMessageRequest) (*entity.Conversation, error) {
	if request.ConversationId != nil {
		conversation, err := uow.ConversationRepository().FindOne(ctx,
			specification.ByID{ID: *request.ConversationId},
			specification.UserOwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, serverutils.NewPersistenceError("find conversation", err)
		}
		if conversation == nil {
			// Same answer whether the id is unknown or owned by someone else.
			return nil, serverutils.NewNotFoundError("conversation")
		}
		return conversation, nil
	}

	// Auto-creation runs under the caller's per-user lock, held until the
	// unit of work finishes. Reuse the most recent active conversation,
	// create only when none exists.
	existing, err := uow.ConversationRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "last_message_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("find active conversation", err)
	}
	if existing != nil {
		return existing, nil
	}

	conversation := &entity.Conversation{
		Id:            uuid.New(),
		UserId:        userId,
		Title:         autoTitle(request.Content),
		IsActive:      true,
		LastMessageAt: time.Now(),
		CreatedAt:     time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, serverutils.NewPersistenceError("create conversation", err)
	}
	return conversation, nil
}

func (cs *chatService) handleCrisis(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	conversation *entity.Conversation,
	userMessage *entity.Message,
	profile *entity.WellnessProfile,
	result risk.Result,
) (*dto.SendMessageResponse, error) {
	region := ""
	if profile != nil {
		region = profile.Region
	}
	rendered := cs.templateEngine.Render(result.Level, region)

	confidence := 1.0
	assistantMessage := &entity.Message{
		Id:              uuid.New(),
		ConversationId:  conversation.Id,
		Sender:          entity.SenderAssistant,
		Content:         rendered.Message,
		MessageType:     entity.MessageTypeCrisisResponse,
		Confidence:      &confidence,
		TriggerKeywords: result.Keywords,
		CreatedAt:       time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, serverutils.NewPersistenceError("save crisis response", err)
	}

	isHigh := result.Level == risk.LevelHigh || result.Level == risk.LevelCritical
	crisisLog := &entity.CrisisLog{
		Id:               uuid.New(),
		UserId:           userId,
		MessageId:        &userMessage.Id,
		TriggerText:      userMessage.Content,
		DetectedKeywords: result.Keywords,
		RiskLevel:        result.Level,
		ResponseText:     rendered.Message,
		ResourcesShared:  rendered.Resources,
		HotlinesShared:   rendered.Hotlines,
		FollowUpNeeded:   isHigh,
		AdminNotified:    isHigh,
		CreatedAt:        time.Now(),
	}
	if err := uow.CrisisLogRepository().Create(ctx, crisisLog); err != nil {
		return nil, serverutils.NewPersistenceError("save crisis log", err)
	}

	if err := uow.ConversationRepository().TouchLastMessageAt(ctx, conversation.Id); err != nil {
		return nil, serverutils.NewPersistenceError("touch conversation", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewPersistenceError("commit crisis path", err)
	}

	cs.logger.Warn("chat", "crisis detected", map[string]interface{}{
		"user_id":    userId,
		"risk_level": string(result.Level),
		"keywords":   result.Keywords,
	})

	// High severity fans out to the alert chain after commit so the log
	// row is durable before anyone is paged.
	if isHigh {
		cs.publishCrisisAlert(userId, crisisLog)
	}

	// Crisis path is deliberately excluded from chat analytics.
	return &dto.SendMessageResponse{
		Conversation:     toConversationDTO(conversation),
		UserMessage:      toMessageDTO(userMessage),
		AssistantMessage: toMessageDTO(assistantMessage),
		CrisisDetected:   true,
		RiskLevel:        string(result.Level),
		Metadata: dto.ResponseMetadata{
			Confidence:  confidence,
			MessageType: string(entity.MessageTypeCrisisResponse),
			Keywords:    result.Keywords,
		},
	}, nil
}

func (cs *chatService) handleCompletion(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	conversation *entity.Conversation,
	userMessage *entity.Message,
	profile *entity.WellnessProfile,
	content string,
) (*dto.SendMessageResponse, error) {
	// 1. Assemble prompt and trimmed history
	systemPrompt := cs.promptBuilder.Build(toPromptProfile(profile))
	turns, err := cs.loadHistory(ctx, uow, conversation.Id, userMessage.Id)
	if err != nil {
		return nil, err
	}

	// 2. Single provider attempt under a hard timeout; a timeout is
	// handled like any other provider failure.
	callCtx, cancel := context.WithTimeout(ctx, cs.providerTimeout)
	defer cancel()

	completion, err := cs.provider.Complete(callCtx, llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		History:      turns,
		UserMessage:  content,
	})
	if err != nil {
		cs.logger.Warn("chat", "completion provider failed, using fallback", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return cs.handleFallback(ctx, uow, conversation, userMessage)
	}

	// 3. Tag the reply for storage and UI routing
	tag := cs.topicClassifier.Classify(content, completion.Content)
	messageType := toMessageType(tag.Type)

	latency := completion.LatencyMs
	confidence := tag.Confidence
	assistantMessage := &entity.Message{
		Id:                uuid.New(),
		ConversationId:    conversation.Id,
		Sender:            entity.SenderAssistant,
		Content:           completion.Content,
		MessageType:       messageType,
		ResponseLatencyMs: &latency,
		Confidence:        &confidence,
		TriggerKeywords:   tag.Keywords,
		CreatedAt:         time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, serverutils.NewPersistenceError("save assistant message", err)
	}

	// 4. A genuine exchange counts toward the daily analytics row
	minutes := float64(latency) / 1000.0 / 60.0
	if err := uow.ChatAnalyticsRepository().UpsertDaily(ctx, userId, time.Now(), 1, minutes); err != nil {
		return nil, serverutils.NewPersistenceError("upsert analytics", err)
	}

	if err := uow.ConversationRepository().TouchLastMessageAt(ctx, conversation.Id); err != nil {
		return nil, serverutils.NewPersistenceError("touch conversation", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewPersistenceError("commit exchange", err)
	}

	return &dto.SendMessageResponse{
		Conversation:     toConversationDTO(conversation),
		UserMessage:      toMessageDTO(userMessage),
		AssistantMessage: toMessageDTO(assistantMessage),
		CrisisDetected:   false,
		Metadata: dto.ResponseMetadata{
			ResponseTimeMs: latency,
			Confidence:     confidence,
			MessageType:    string(messageType),
			Keywords:       tag.Keywords,
		},
	}, nil
}

// handleFallback substitutes the static reply when the provider fails. The
// exchange is NOT counted in analytics: a fallback is not a genuine reply.
func (cs *chatService) handleFallback(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	conversation *entity.Conversation,
	userMessage *entity.Message,
) (*dto.SendMessageResponse, error) {
	assistantMessage := &entity.Message{
		Id:             uuid.New(),
		ConversationId: conversation.Id,
		Sender:         entity.SenderAssistant,
		Content:        constant.FallbackReply,
		MessageType:    entity.MessageTypeSuggestion,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, assistantMessage); err != nil {
		return nil, serverutils.NewPersistenceError("save fallback message", err)
	}

	if err := uow.ConversationRepository().TouchLastMessageAt(ctx, conversation.Id); err != nil {
		return nil, serverutils.NewPersistenceError("touch conversation", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, serverutils.NewPersistenceError("commit fallback", err)
	}

	return &dto.SendMessageResponse{
		Conversation:     toConversationDTO(conversation),
		UserMessage:      toMessageDTO(userMessage),
		AssistantMessage: toMessageDTO(assistantMessage),
		CrisisDetected:   false,
		Metadata: dto.ResponseMetadata{
			MessageType: string(entity.MessageTypeSuggestion),
		},
	}, nil
}

// loadHistory returns the most recent prior turns in prompt order, bounded
// by the history trimmer. The just-persisted user message is excluded; it
// travels separately as the current input.
func (cs *chatService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, conversationId, currentMessageId uuid.UUID) ([]llm.Message, error) {
	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 6},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("load history", err)
	}

	// Reverse into chronological order
	turns := make([]llm.Message, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		if m.Id == currentMessageId {
			continue
		}
		role := "user"
		if m.Sender == entity.SenderAssistant {
			role = "assistant"
		}
		turns = append(turns, llm.Message{Role: role, Content: m.Content})
	}

	return history.Trim(turns), nil
}

func (cs *chatService) publishCrisisAlert(userId uuid.UUID, crisisLog *entity.CrisisLog) {
	if cs.alertPublisher == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"crisis_log_id": crisisLog.Id.String(),
		"user_id":       userId.String(),
		"risk_level":    string(crisisLog.RiskLevel),
		"keywords":      crisisLog.DetectedKeywords,
		"detected_at":   crisisLog.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		cs.logger.Error("chat", "failed to encode crisis alert", map[string]interface{}{
			"crisis_log_id": crisisLog.Id,
			"error":         err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := cs.alertPublisher.Publish(constant.CrisisAlertTopic, msg); err != nil {
		// Alerting is best-effort; the crisis log row is already durable.
		cs.logger.Error("chat", "failed to publish crisis alert", map[string]interface{}{
			"crisis_log_id": crisisLog.Id,
			"error":         err.Error(),
		})
	}
}

func (cs *chatService) GetConversations(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationDTO, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "last_message_at", Desc: true},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("list conversations", err)
	}

	response := make([]*dto.ConversationDTO, 0, len(conversations))
	for _, c := range conversations {
		d := toConversationDTO(c)
		response = append(response, &d)
	}
	return response, nil
}

func (cs *chatService) GetConversationHistory(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) (*dto.GetConversationHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("find conversation", err)
	}
	if conversation == nil {
		return nil, serverutils.NewNotFoundError("conversation")
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByConversationID{ConversationID: conversationId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, serverutils.NewPersistenceError("load messages", err)
	}

	messageDTOs := make([]dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		messageDTOs = append(messageDTOs, toMessageDTO(m))
	}

	return &dto.GetConversationHistoryResponse{
		Conversation: toConversationDTO(conversation),
		Messages:     messageDTOs,
	}, nil
}

func (cs *chatService) CloseConversation(ctx context.Context, userId uuid.UUID, conversationId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOne(ctx,
		specification.ByID{ID: conversationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return serverutils.NewPersistenceError("find conversation", err)
	}
	if conversation == nil {
		return serverutils.NewNotFoundError("conversation")
	}

	if err := uow.ConversationRepository().Close(ctx, conversationId); err != nil {
		return serverutils.NewPersistenceError("close conversation", err)
	}
	return nil
}

// Helpers

func autoTitle(content string) string {
	words := strings.Fields(content)
	if len(words) > constant.ConversationTitleWords {
		words = words[:constant.ConversationTitleWords]
		return strings.Join(words, " ") + "..."
	}
	if len(words) == 0 {
		return "New conversation"
	}
	return strings.Join(words, " ")
}

func toPromptProfile(profile *entity.WellnessProfile) *prompt.Profile {
	if profile == nil {
		return nil
	}
	return &prompt.Profile{
		Age:                 profile.Age,
		Gender:              profile.Gender,
		Region:              profile.Region,
		FitnessLevel:        profile.FitnessLevel,
		BudgetTier:          profile.BudgetTier,
		Goals:               profile.Goals,
		DietaryRestrictions: profile.DietaryRestrictions,
	}
}

// toMessageType maps the heuristic tag onto the stored message-type enum.
// Greeting and sleep have no dedicated storage type.
func toMessageType(t topic.Type) entity.MessageType {
	switch t {
	case topic.TypeExercise:
		return entity.MessageTypeExercise
	case topic.TypeRecipe:
		return entity.MessageTypeRecipe
	case topic.TypeMentalHealth:
		return entity.MessageTypeMentalHealth
	case topic.TypeGreeting:
		return entity.MessageTypeText
	default:
		return entity.MessageTypeSuggestion
	}
}

func toConversationDTO(c *entity.Conversation) dto.ConversationDTO {
	return dto.ConversationDTO{
		Id:            c.Id,
		Title:         c.Title,
		IsActive:      c.IsActive,
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
	}
}

func toMessageDTO(m *entity.Message) dto.MessageDTO {
	return dto.MessageDTO{
		Id:          m.Id,
		Sender:      string(m.Sender),
		Content:     m.Content,
		MessageType: string(m.MessageType),
		CreatedAt:   m.CreatedAt,
	}
}
