package session

import (
	"context"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionState struct {
	GroupIndex int       `json:"group_index"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type sessionRepository struct {
	RedisRepository contracts.RedisRepository
	TTL             time.Duration
	Log             *zap.Logger
}

func NewSessionRepository(redisRepository contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SessionRepository {
	return &sessionRepository{
		RedisRepository: redisRepository,
		TTL:             ttl,
		Log:             logger,
	}
}

// FindGroupIndex returns nil when the wizard has no stored override.
func (r *sessionRepository) FindGroupIndex(ctx context.Context, subject, questionnaireID string) (*int, error) {
	key := utils.GenerateSessionKey(subject, questionnaireID)
	raw, err := r.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var state sessionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		r.Log.Warn("sessionRepository.FindGroupIndex dropping unreadable session",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil, nil
	}
	return &state.GroupIndex, nil
}

func (r *sessionRepository) SaveGroupIndex(ctx context.Context, subject, questionnaireID string, groupIndex int) error {
	state := sessionState{GroupIndex: groupIndex, UpdatedAt: time.Now().UTC()}
	return r.RedisRepository.Set(ctx, utils.GenerateSessionKey(subject, questionnaireID), state, r.TTL)
}

func (r *sessionRepository) DeleteGroupIndex(ctx context.Context, subject, questionnaireID string) error {
	return r.RedisRepository.Delete(ctx, utils.GenerateSessionKey(subject, questionnaireID))
}
