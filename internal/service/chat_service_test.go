package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	wmmessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/constant"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/dto"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/entity"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/serverutils"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/contract"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/memory"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/specification"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/repository/unitofwork"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm"
)

// In-memory fakes. The fakes interpret the same specification values the
// GORM implementations translate to SQL, via type switches on the concrete
// spec structs.

type fakeConversationRepo struct {
	conversations []*entity.Conversation
	createCalls   int
}

func (r *fakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.createCalls++
	r.conversations = append(r.conversations, c)
	return nil
}

func (r *fakeConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	return nil
}

func (r *fakeConversationRepo) TouchLastMessageAt(ctx context.Context, id uuid.UUID) error {
	for _, c := range r.conversations {
		if c.Id == id {
			c.LastMessageAt = time.Now()
		}
	}
	return nil
}

func (r *fakeConversationRepo) Close(ctx context.Context, id uuid.UUID) error {
	for _, c := range r.conversations {
		if c.Id == id {
			c.IsActive = false
		}
	}
	return nil
}

func (r *fakeConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var matches []*entity.Conversation
	for _, c := range r.conversations {
		if conversationMatches(c, specs) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (r *fakeConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, _ := r.FindAll(ctx, specs...)
	return int64(len(matches)), nil
}

func conversationMatches(c *entity.Conversation, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if c.Id != sp.ID {
				return false
			}
		case specification.UserOwnedBy:
			if c.UserId != sp.UserID {
				return false
			}
		case specification.ActiveOnly:
			if !c.IsActive {
				return false
			}
		}
	}
	return true
}

type fakeMessageRepo struct {
	messages []*entity.Message
}

func (r *fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var matches []*entity.Message
	limit := 0
	for _, s := range specs {
		if p, ok := s.(specification.Pagination); ok {
			limit = p.Limit
		}
	}
	// Insertion order is chronological; desc ordering reverses it.
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		keep := true
		for _, s := range specs {
			if sp, ok := s.(specification.ByConversationID); ok && m.ConversationId != sp.ConversationID {
				keep = false
			}
		}
		if keep {
			matches = append(matches, m)
		}
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, _ := r.FindAll(ctx, specs...)
	return int64(len(matches)), nil
}

type fakeCrisisLogRepo struct {
	logs []*entity.CrisisLog
}

func (r *fakeCrisisLogRepo) Create(ctx context.Context, log *entity.CrisisLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeCrisisLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CrisisLog, error) {
	return r.logs, nil
}

func (r *fakeCrisisLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.logs)), nil
}

type fakeWellnessRepo struct {
	profile *entity.WellnessProfile
}

func (r *fakeWellnessRepo) Upsert(ctx context.Context, p *entity.WellnessProfile) error {
	r.profile = p
	return nil
}

func (r *fakeWellnessRepo) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.WellnessProfile, error) {
	if r.profile != nil && r.profile.UserId == userId {
		return r.profile, nil
	}
	return nil, nil
}

type fakeAnalyticsRepo struct {
	upsertCalls  int
	messageCount int
}

func (r *fakeAnalyticsRepo) UpsertDaily(ctx context.Context, userId uuid.UUID, date time.Time, messages int, minutes float64) error {
	r.upsertCalls++
	r.messageCount += messages
	return nil
}

func (r *fakeAnalyticsRepo) FindByUserAndDate(ctx context.Context, userId uuid.UUID, date time.Time) (*entity.ChatAnalytics, error) {
	return nil, nil
}

type fakeUserRepo struct{}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, nil
}

type fakeUnitOfWork struct {
	conversations *fakeConversationRepo
	messages      *fakeMessageRepo
	crisisLogs    *fakeCrisisLogRepo
	profiles      *fakeWellnessRepo
	analytics     *fakeAnalyticsRepo
	users         *fakeUserRepo

	commits   int
	rollbacks int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		conversations: &fakeConversationRepo{},
		messages:      &fakeMessageRepo{},
		crisisLogs:    &fakeCrisisLogRepo{},
		profiles:      &fakeWellnessRepo{},
		analytics:     &fakeAnalyticsRepo{},
		users:         &fakeUserRepo{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.commits++; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rollbacks++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *fakeUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return u.conversations
}
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository { return u.messages }
func (u *fakeUnitOfWork) CrisisLogRepository() contract.CrisisLogRepository {
	return u.crisisLogs
}
func (u *fakeUnitOfWork) WellnessProfileRepository() contract.WellnessProfileRepository {
	return u.profiles
}
func (u *fakeUnitOfWork) ChatAnalyticsRepository() contract.ChatAnalyticsRepository {
	return u.analytics
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeProvider struct {
	calls int
	reply string
	err   error
}

func (p *fakeProvider) Complete(ctx context.Context, req llm.CompletionRequest, options ...llm.Option) (*llm.Completion, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Completion{
		Content:   p.reply,
		Model:     "test-model",
		LatencyMs: 120,
	}, nil
}

type fakeAlertPublisher struct {
	published []*wmmessage.Message
	topics    []string
}

func (p *fakeAlertPublisher) Publish(topic string, messages ...*wmmessage.Message) error {
	p.topics = append(p.topics, topic)
	p.published = append(p.published, messages...)
	return nil
}

func (p *fakeAlertPublisher) Close() error { return nil }

type noopLogger struct{}

func (l *noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *noopLogger) Info(module, message string, details map[string]interface{})  {}
func (l *noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (l *noopLogger) Error(module, message string, details map[string]interface{}) {}
func (l *noopLogger) Sync() error                                                  { return nil }

func newTestChatService(uow *fakeUnitOfWork, provider *fakeProvider, publisher *fakeAlertPublisher) IChatService {
	return NewChatService(
		&fakeFactory{uow: uow},
		provider,
		5*time.Second,
		memory.NewCreationLockRepository(),
		publisher,
		&noopLogger{},
	)
}

func TestSendMessageHighRiskTakesCrisisPath(t *testing.T) {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{reply: "should never be used"}
	publisher := &fakeAlertPublisher{}
	svc := newTestChatService(uow, provider, publisher)

	userId := uuid.New()
	resp, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
		Content: "I want to kill myself",
	})
	require.NoError(t, err)

	assert.True(t, resp.CrisisDetected)
	assert.Equal(t, "high", resp.RiskLevel)
	assert.Equal(t, "crisis_response", resp.AssistantMessage.MessageType)
	assert.Equal(t, 0, provider.calls, "completion provider must not run on a detected crisis")

	// Exactly one user message and one assistant message
	require.Len(t, uow.messages.messages, 2)
	assert.Equal(t, entity.SenderUser, uow.messages.messages[0].Sender)
	assert.Equal(t, entity.SenderAssistant, uow.messages.messages[1].Sender)

	require.Len(t, uow.crisisLogs.logs, 1)
	log := uow.crisisLogs.logs[0]
	assert.Equal(t, []string{"kill myself"}, log.DetectedKeywords)
	assert.True(t, log.FollowUpNeeded)
	assert.True(t, log.AdminNotified)
	assert.NotEmpty(t, log.HotlinesShared)
	assert.Equal(t, "I want to kill myself", log.TriggerText)

	// High severity fans out on the alert bus after commit
	require.Len(t, publisher.published, 1)
	assert.Equal(t, constant.CrisisAlertTopic, publisher.topics[0])
	assert.Equal(t, 1, uow.commits)

	// Crisis exchanges never count toward analytics
	assert.Equal(t, 0, uow.analytics.upsertCalls)
}

func TestSendMessageLowRiskNoAlert(t *testing.T) {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{}
	publisher := &fakeAlertPublisher{}
	svc := newTestChatService(uow, provider, publisher)

	resp, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: "I'm feeling a bit overwhelmed today",
	})
	require.NoError(t, err)

	assert.True(t, resp.CrisisDetected)
	assert.Equal(t, "low", resp.RiskLevel)
	assert.Equal(t, 0, provider.calls)

	require.Len(t, uow.crisisLogs.logs, 1)
	assert.False(t, uow.crisisLogs.logs[0].FollowUpNeeded)
	assert.False(t, uow.crisisLogs.logs[0].AdminNotified)
	assert.Empty(t, publisher.published, "only high severity pages anyone")
}

func TestSendMessageCompletionPath(t *testing.T) {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{reply: "Start with three sets of ten squats, then add light cardio."}
	publisher := &fakeAlertPublisher{}
	svc := newTestChatService(uow, provider, publisher)

	resp, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: "What's a good beginner workout?",
	})
	require.NoError(t, err)

	assert.False(t, resp.CrisisDetected)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "exercise", resp.AssistantMessage.MessageType)
	assert.Equal(t, provider.reply, resp.AssistantMessage.Content)
	assert.InDelta(t, 0.85, resp.Metadata.Confidence, 0.0001)
	assert.Empty(t, uow.crisisLogs.logs)

	// A genuine exchange increments the daily counters
	assert.Equal(t, 1, uow.analytics.upsertCalls)
	assert.Equal(t, 1, uow.analytics.messageCount)
	assert.Equal(t, 1, uow.commits)
}

func TestSendMessageProviderFailureFallsBack(t *testing.T) {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{err: errors.New("connection refused")}
	publisher := &fakeAlertPublisher{}
	svc := newTestChatService(uow, provider, publisher)

	resp, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: "Any tips for my morning routine?",
	})
	require.NoError(t, err, "provider failure must not surface to the caller")

	assert.False(t, resp.CrisisDetected)
	assert.Equal(t, constant.FallbackReply, resp.AssistantMessage.Content)
	assert.Equal(t, "suggestion", resp.AssistantMessage.MessageType)

	// The user message is still persisted, the fallback is not analytics
	require.Len(t, uow.messages.messages, 2)
	assert.Equal(t, 0, uow.analytics.upsertCalls)
	assert.Equal(t, 1, uow.commits)
}

func TestSendMessageContentLengthGuard(t *testing.T) {
	uow := newFakeUnitOfWork()
	provider := &fakeProvider{reply: "ok"}
	svc := newTestChatService(uow, provider, &fakeAlertPublisher{})

	// 2001 characters: rejected before anything is persisted
	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: strings.Repeat("a", 2001),
	})
	var vErr *serverutils.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, uow.messages.messages)
	assert.Equal(t, 0, uow.conversations.createCalls)

	// Exactly 2000 characters is accepted
	_, err = svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: strings.Repeat("a", 2000),
	})
	require.NoError(t, err)

	// Characters are runes, not bytes: 2000 two-byte runes are accepted
	_, err = svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: strings.Repeat("é", 2000),
	})
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: strings.Repeat("é", 2001),
	})
	require.ErrorAs(t, err, &vErr)
}

func TestSendMessageUnknownConversation(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChatService(uow, &fakeProvider{reply: "ok"}, &fakeAlertPublisher{})

	// Conversation exists but belongs to another user
	otherId := uuid.New()
	uow.conversations.conversations = append(uow.conversations.conversations, &entity.Conversation{
		Id:       otherId,
		UserId:   uuid.New(),
		IsActive: true,
	})

	_, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		ConversationId: &otherId,
		Content:        "hello there",
	})
	var nfErr *serverutils.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Len(t, uow.messages.messages, 0)
}

func TestSendMessageReusesActiveConversation(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChatService(uow, &fakeProvider{reply: "ok"}, &fakeAlertPublisher{})

	userId := uuid.New()
	existing := &entity.Conversation{
		Id:       uuid.New(),
		UserId:   userId,
		Title:    "Earlier chat",
		IsActive: true,
	}
	uow.conversations.conversations = append(uow.conversations.conversations, existing)

	resp, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
		Content: "back again with a question",
	})
	require.NoError(t, err)

	assert.Equal(t, existing.Id, resp.Conversation.Id)
	assert.Equal(t, 0, uow.conversations.createCalls)
}

// Commit-gated conversation storage: rows created inside a transaction
// become visible to other transactions only on Commit, like READ COMMITTED
// in the real store. Used to show auto-creation stays serialized across the
// whole unit of work, provider call included.

type conversationLedger struct {
	mu        sync.Mutex
	committed []*entity.Conversation
	creates   int
}

type gatedConversationRepo struct {
	ledger  *conversationLedger
	pending []*entity.Conversation
}

func (r *gatedConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.ledger.mu.Lock()
	r.ledger.creates++
	r.ledger.mu.Unlock()
	r.pending = append(r.pending, c)
	return nil
}

func (r *gatedConversationRepo) Update(ctx context.Context, c *entity.Conversation) error {
	return nil
}

func (r *gatedConversationRepo) TouchLastMessageAt(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *gatedConversationRepo) Close(ctx context.Context, id uuid.UUID) error { return nil }

func (r *gatedConversationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	for _, c := range r.ledger.committed {
		if conversationMatches(c, specs) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *gatedConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	var matches []*entity.Conversation
	for _, c := range r.ledger.committed {
		if conversationMatches(c, specs) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (r *gatedConversationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, _ := r.FindAll(ctx, specs...)
	return int64(len(matches)), nil
}

type gatedUnitOfWork struct {
	conversations *gatedConversationRepo
	messages      *fakeMessageRepo
	crisisLogs    *fakeCrisisLogRepo
	profiles      *fakeWellnessRepo
	analytics     *fakeAnalyticsRepo
	users         *fakeUserRepo
}

func (u *gatedUnitOfWork) Begin(ctx context.Context) error { return nil }

func (u *gatedUnitOfWork) Commit() error {
	ledger := u.conversations.ledger
	ledger.mu.Lock()
	ledger.committed = append(ledger.committed, u.conversations.pending...)
	ledger.mu.Unlock()
	u.conversations.pending = nil
	return nil
}

func (u *gatedUnitOfWork) Rollback() error {
	u.conversations.pending = nil
	return nil
}

func (u *gatedUnitOfWork) UserRepository() contract.UserRepository { return u.users }
func (u *gatedUnitOfWork) ConversationRepository() contract.ConversationRepository {
	return u.conversations
}
func (u *gatedUnitOfWork) MessageRepository() contract.MessageRepository { return u.messages }
func (u *gatedUnitOfWork) CrisisLogRepository() contract.CrisisLogRepository {
	return u.crisisLogs
}
func (u *gatedUnitOfWork) WellnessProfileRepository() contract.WellnessProfileRepository {
	return u.profiles
}
func (u *gatedUnitOfWork) ChatAnalyticsRepository() contract.ChatAnalyticsRepository {
	return u.analytics
}

type gatedFactory struct {
	ledger *conversationLedger
}

func (f *gatedFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &gatedUnitOfWork{
		conversations: &gatedConversationRepo{ledger: f.ledger},
		messages:      &fakeMessageRepo{},
		crisisLogs:    &fakeCrisisLogRepo{},
		profiles:      &fakeWellnessRepo{},
		analytics:     &fakeAnalyticsRepo{},
		users:         &fakeUserRepo{},
	}
}

// slowFirstProvider parks the first completion call until released;
// later calls answer immediately.
type slowFirstProvider struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (p *slowFirstProvider) Complete(ctx context.Context, req llm.CompletionRequest, options ...llm.Option) (*llm.Completion, error) {
	p.mu.Lock()
	p.calls++
	first := p.calls == 1
	p.mu.Unlock()

	if first {
		close(p.entered)
		<-p.release
	}
	return &llm.Completion{Content: "Try three sets of squats.", Model: "test-model", LatencyMs: 5}, nil
}

func TestSendMessageRapidDoubleSubmitCreatesOneConversation(t *testing.T) {
	ledger := &conversationLedger{}
	provider := &slowFirstProvider{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewChatService(
		&gatedFactory{ledger: ledger},
		provider,
		5*time.Second,
		memory.NewCreationLockRepository(),
		&fakeAlertPublisher{},
		&noopLogger{},
	)

	userId := uuid.New()
	type sendResult struct {
		resp *dto.SendMessageResponse
		err  error
	}
	results := make(chan sendResult, 2)

	// First request enters the provider call with its conversation row
	// still uncommitted.
	go func() {
		resp, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
			Content: "I need a new training plan",
		})
		results <- sendResult{resp, err}
	}()
	<-provider.entered

	// Second request for the same user arrives while the first is still
	// in flight. It must wait for the first commit, then reuse its row.
	go func() {
		resp, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
			Content: "also what should I eat after",
		})
		results <- sendResult{resp, err}
	}()

	time.Sleep(50 * time.Millisecond)
	close(provider.release)

	first := <-results
	second := <-results
	require.NoError(t, first.err)
	require.NoError(t, second.err)

	assert.Equal(t, 1, ledger.creates, "a rapid double-submit must not create two conversations")
	assert.Equal(t, first.resp.Conversation.Id, second.resp.Conversation.Id)
}

func TestSendMessageCreatesConversationWithAutoTitle(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChatService(uow, &fakeProvider{reply: "ok"}, &fakeAlertPublisher{})

	resp, err := svc.SendMessage(context.Background(), uuid.New(), &dto.SendMessageRequest{
		Content: "Can you plan a week of simple vegetarian dinners for me",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, uow.conversations.createCalls)
	assert.Equal(t, "Can you plan a week of...", resp.Conversation.Title)
	assert.True(t, resp.Conversation.IsActive)
}

func TestSendMessageCrisisUsesProfileRegion(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChatService(uow, &fakeProvider{}, &fakeAlertPublisher{})

	userId := uuid.New()
	uow.profiles.profile = &entity.WellnessProfile{
		Id:     uuid.New(),
		UserId: userId,
		Region: "Lagos, Nigeria",
	}

	_, err := svc.SendMessage(context.Background(), userId, &dto.SendMessageRequest{
		Content: "lately I feel there is no reason to live",
	})
	require.NoError(t, err)

	require.Len(t, uow.crisisLogs.logs, 1)
	joined := strings.Join(uow.crisisLogs.logs[0].HotlinesShared, "\n")
	assert.Contains(t, joined, "112", "regional hotline numbers should be selected from the profile")
}

func TestCloseConversation(t *testing.T) {
	uow := newFakeUnitOfWork()
	svc := newTestChatService(uow, &fakeProvider{}, &fakeAlertPublisher{})

	userId := uuid.New()
	conv := &entity.Conversation{Id: uuid.New(), UserId: userId, IsActive: true}
	uow.conversations.conversations = append(uow.conversations.conversations, conv)

	require.NoError(t, svc.CloseConversation(context.Background(), userId, conv.Id))
	assert.False(t, conv.IsActive)

	var nfErr *serverutils.NotFoundError
	err := svc.CloseConversation(context.Background(), uuid.New(), conv.Id)
	require.ErrorAs(t, err, &nfErr)
}
