package aichat

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/app/services/shared/ratelimiter"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAiChatRepository struct {
	mu     sync.Mutex
	chats  map[string]*models.AiChat
	nextID int
}

func newFakeAiChatRepository() *fakeAiChatRepository {
	return &fakeAiChatRepository{chats: make(map[string]*models.AiChat)}
}

func (r *fakeAiChatRepository) CreateAiChat(ctx context.Context, chat *models.AiChat) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	chat.ID = fmt.Sprintf("chat-%d", r.nextID)
	r.chats[chat.ID] = chat
	return chat.ID, nil
}

func (r *fakeAiChatRepository) FindByID(ctx context.Context, chatID string) (*models.AiChat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.chats[chatID], nil
}

func (r *fakeAiChatRepository) FindByUser(ctx context.Context, userID string, page, pageSize int) ([]models.AiChat, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.AiChat
	for _, chat := range r.chats {
		if chat.UserID == userID {
			result = append(result, *chat)
		}
	}
	return result, len(result), nil
}

type stubAIClient struct {
	analysis *contracts.SymptomAnalysis
	err      error
	calls    int
}

func (c *stubAIClient) AnalyzeSymptoms(ctx context.Context, symptoms string) (*contracts.SymptomAnalysis, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.analysis, nil
}

func (c *stubAIClient) AnalyzeReport(ctx context.Context, reportText string) (*contracts.ReportAnalysis, error) {
	return nil, errors.New("not implemented")
}

// counterRedis implements just enough of RedisRepository for the limiter.
type counterRedis struct {
	mu       sync.Mutex
	counters map[string]int
}

func newCounterRedis() *counterRedis {
	return &counterRedis{counters: make(map[string]int)}
}

func (r *counterRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (r *counterRedis) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (r *counterRedis) Delete(ctx context.Context, key string) error {
	return nil
}

func (r *counterRedis) Increment(ctx context.Context, key string) error {
	return nil
}

func (r *counterRedis) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[key]++
	return r.counters[key], nil
}

func (r *counterRedis) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

type fakeSessionService struct{}

func (s *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func sessionData(t *testing.T, userID string) string {
	t.Helper()
	payload, err := json.Marshal(&models.Session{
		SessionID: "sess-1",
		UserID:    userID,
		Name:      "Ana Reyes",
		Role:      constvars.RolePatient,
		PatientID: "pat-1",
	})
	require.NoError(t, err)
	return string(payload)
}

func newTestAiChatUsecase(client *stubAIClient) (AiChatUsecase, *fakeAiChatRepository) {
	repo := newFakeAiChatRepository()
	limiter := ratelimiter.NewResourceLimiter(newCounterRedis(), zap.NewNop())
	uc := NewAiChatUsecase(repo, client, limiter, &fakeSessionService{}, zap.NewNop())
	return uc, repo
}

func triageAnalysis() *contracts.SymptomAnalysis {
	return &contracts.SymptomAnalysis{
		ProbableCauses: []string{"Tension headache", "Migraine"},
		Severity:       "LOW",
		Recommendation: "Rest and hydrate. See a doctor if symptoms persist beyond 3 days.",
		Disclaimer:     "This is not a medical diagnosis.",
	}
}

func TestAiChatUsecaseCheckSymptoms(t *testing.T) {
	ctx := context.Background()

	t.Run("analyzes symptoms and stores the exchange", func(t *testing.T) {
		client := &stubAIClient{analysis: triageAnalysis()}
		uc, repo := newTestAiChatUsecase(client)

		result, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), &requests.SymptomCheck{
			Symptoms: "Throbbing headache since yesterday, sensitive to light",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "LOW", result.Severity)
		assert.Equal(t, []string{"Tension headache", "Migraine"}, result.ProbableCauses)
		assert.NotEmpty(t, result.Disclaimer)

		stored, err := repo.FindByID(ctx, result.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "user-1", stored.UserID)
		assert.Equal(t, "Throbbing headache since yesterday, sensitive to light", stored.Symptoms)
	})

	t.Run("propagates analysis failure without storing", func(t *testing.T) {
		client := &stubAIClient{err: exceptions.ErrAIRequestFailed(errors.New("upstream 503"))}
		uc, repo := newTestAiChatUsecase(client)

		_, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), &requests.SymptomCheck{
			Symptoms: "Chest pain",
		})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Empty(t, repo.chats)
	})

	t.Run("rejects requests over the per-user quota", func(t *testing.T) {
		client := &stubAIClient{analysis: triageAnalysis()}
		uc, _ := newTestAiChatUsecase(client)

		request := &requests.SymptomCheck{Symptoms: "Persistent cough"}
		for i := 0; i < triageMaxQuota; i++ {
			_, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), request)
			require.NoError(t, err)
		}

		_, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), request)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
		assert.Greater(t, customErr.RetryAfterSecs, 0)
		// The AI client is never reached once the quota is exhausted.
		assert.Equal(t, triageMaxQuota, client.calls)
	})

	t.Run("quota is tracked per user", func(t *testing.T) {
		client := &stubAIClient{analysis: triageAnalysis()}
		uc, _ := newTestAiChatUsecase(client)

		request := &requests.SymptomCheck{Symptoms: "Sore throat"}
		for i := 0; i < triageMaxQuota; i++ {
			_, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), request)
			require.NoError(t, err)
		}

		_, err := uc.CheckSymptoms(ctx, sessionData(t, "user-2"), request)
		assert.NoError(t, err)
	})
}

func TestAiChatUsecaseHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("lists only the requester's chats", func(t *testing.T) {
		client := &stubAIClient{analysis: triageAnalysis()}
		uc, _ := newTestAiChatUsecase(client)

		_, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), &requests.SymptomCheck{Symptoms: "Headache"})
		require.NoError(t, err)
		_, err = uc.CheckSymptoms(ctx, sessionData(t, "user-2"), &requests.SymptomCheck{Symptoms: "Back pain"})
		require.NoError(t, err)

		chats, total, err := uc.ListMyChats(ctx, sessionData(t, "user-1"), 1, 20)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, chats, 1)
		assert.Equal(t, "Headache", chats[0].Symptoms)
	})

	t.Run("fetches an owned chat by id", func(t *testing.T) {
		client := &stubAIClient{analysis: triageAnalysis()}
		uc, _ := newTestAiChatUsecase(client)

		created, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), &requests.SymptomCheck{Symptoms: "Fever"})
		require.NoError(t, err)

		chat, err := uc.GetChat(ctx, sessionData(t, "user-1"), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Fever", chat.Symptoms)
		assert.Equal(t, "LOW", chat.Severity)
	})

	t.Run("foreign chat looks like a missing one", func(t *testing.T) {
		client := &stubAIClient{analysis: triageAnalysis()}
		uc, _ := newTestAiChatUsecase(client)

		created, err := uc.CheckSymptoms(ctx, sessionData(t, "user-1"), &requests.SymptomCheck{Symptoms: "Fever"})
		require.NoError(t, err)

		_, err = uc.GetChat(ctx, sessionData(t, "user-2"), created.ID)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)

		_, missingErr := uc.GetChat(ctx, sessionData(t, "user-2"), "chat-999")
		require.Error(t, missingErr)
		var missingCustomErr *exceptions.CustomError
		require.True(t, errors.As(missingErr, &missingCustomErr))
		assert.Equal(t, customErr.ClientMessage, missingCustomErr.ClientMessage)
	})
}
