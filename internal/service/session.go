package service

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strconv"
	"time"

	"trivia-orb/internal/cache"
	"trivia-orb/internal/config"
	"trivia-orb/internal/domain"
	"trivia-orb/internal/logger"
	"trivia-orb/internal/util"

	"go.uber.org/zap"
)

// Session hash fields.
const (
	fieldGuest     = "guest"
	fieldScore     = "score"
	fieldAnswered  = "answered"
	fieldCorrect   = "correct"
	fieldState     = "state"
	fieldCreatedAt = "created_at"
	fieldQuestion  = "question"
	// fieldAttempts is reset to 0 when a question is recorded; the first
	// HIncrBy to reach 1 owns the judgement.
	fieldAttempts = "attempts"
)

// SessionService manages guest sessions, their current question and score.
type SessionService interface {
	CreateSession(ctx context.Context) (*domain.Session, error)
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	// EndSession discards the session and its score.
	EndSession(ctx context.Context, sessionID string) error
	// BeginQuestion marks the session as waiting for a generated question and
	// returns the state it had before.
	BeginQuestion(ctx context.Context, sessionID string) (domain.AnswerState, error)
	// RecordQuestion stores q as the session's current question.
	RecordQuestion(ctx context.Context, sessionID string, q *domain.TriviaQuestion) error
	// AbandonQuestion puts a loading session back into prior after a failed
	// generation, so an earlier unanswered question stays answerable.
	AbandonQuestion(ctx context.Context, sessionID string, prior domain.AnswerState) error
	SubmitAnswer(ctx context.Context, sessionID string, selected string) (*domain.AnswerResult, error)
}

type sessionService struct {
	cache domain.Cache
	cfg   config.SessionConfig
	now   func() time.Time
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(cache domain.Cache, cfg config.SessionConfig) SessionService {
	return &sessionService{
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
	}
}

// CreateSession implements SessionService
func (s *sessionService) CreateSession(ctx context.Context) (*domain.Session, error) {
	session := &domain.Session{
		ID:        util.NewULID(),
		Guest:     true,
		State:     domain.StateIdle,
		CreatedAt: s.now().UTC(),
	}
	key := cache.SessionKey(session.ID)

	fields := [][2]string{
		{fieldGuest, "1"},
		{fieldScore, "0"},
		{fieldAnswered, "0"},
		{fieldCorrect, "0"},
		{fieldState, string(session.State)},
		{fieldCreatedAt, session.CreatedAt.Format(time.RFC3339Nano)},
	}
	for _, f := range fields {
		if err := s.cache.HSet(ctx, key, f[0], f[1]); err != nil {
			return nil, domain.NewInternalError("Failed to create session", err)
		}
	}
	if err := s.touch(ctx, key); err != nil {
		return nil, err
	}

	logger.Get().Info("Guest session created", zap.String("session_id", session.ID))
	return session, nil
}

// GetSession implements SessionService
func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, _, err := s.load(ctx, sessionID)
	return session, err
}

// EndSession implements SessionService
func (s *sessionService) EndSession(ctx context.Context, sessionID string) error {
	if _, _, err := s.load(ctx, sessionID); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, cache.SessionKey(sessionID)); err != nil {
		return domain.NewInternalError("Failed to end session", err)
	}
	logger.Get().Info("Guest session ended", zap.String("session_id", sessionID))
	return nil
}

// BeginQuestion implements SessionService
func (s *sessionService) BeginQuestion(ctx context.Context, sessionID string) (domain.AnswerState, error) {
	session, _, err := s.load(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if err := s.setState(ctx, cache.SessionKey(sessionID), domain.StateLoading); err != nil {
		return "", err
	}
	return session.State, nil
}

// RecordQuestion implements SessionService
func (s *sessionService) RecordQuestion(ctx context.Context, sessionID string, q *domain.TriviaQuestion) error {
	if q == nil {
		return domain.NewInternalError("cannot record nil question", nil)
	}
	if _, _, err := s.load(ctx, sessionID); err != nil {
		return err
	}

	data, err := json.Marshal(q)
	if err != nil {
		return domain.NewInternalError("Failed to encode question", err)
	}
	key := cache.SessionKey(sessionID)
	if err := s.cache.HSet(ctx, key, fieldQuestion, string(data)); err != nil {
		return domain.NewInternalError("Failed to record question", err)
	}
	if err := s.cache.HSet(ctx, key, fieldAttempts, "0"); err != nil {
		return domain.NewInternalError("Failed to record question", err)
	}
	if err := s.setState(ctx, key, domain.StateLoaded); err != nil {
		return err
	}
	return s.touch(ctx, key)
}

// AbandonQuestion implements SessionService
func (s *sessionService) AbandonQuestion(ctx context.Context, sessionID string, prior domain.AnswerState) error {
	session, _, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.State != domain.StateLoading {
		return nil
	}
	if prior == "" || prior == domain.StateLoading {
		prior = domain.StateIdle
	}
	return s.setState(ctx, cache.SessionKey(sessionID), prior)
}

// SubmitAnswer implements SessionService
func (s *sessionService) SubmitAnswer(ctx context.Context, sessionID string, selected string) (*domain.AnswerResult, error) {
	session, hash, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State.Answered() {
		return nil, domain.NewConflictError("Question already answered")
	}
	if session.State != domain.StateLoaded {
		return nil, domain.NewConflictError("No question loaded for this session")
	}

	var q domain.TriviaQuestion
	if err := json.Unmarshal([]byte(hash[fieldQuestion]), &q); err != nil {
		return nil, domain.NewInternalError("Stored question is corrupt", err)
	}
	if !slices.Contains(q.Options, selected) {
		return nil, domain.NewBadRequestError("selected is not one of the options")
	}

	key := cache.SessionKey(sessionID)
	attempt, err := s.cache.HIncrBy(ctx, key, fieldAttempts, 1)
	if err != nil {
		return nil, domain.NewInternalError("Failed to submit answer", err)
	}
	if attempt != 1 {
		return nil, domain.NewConflictError("Question already answered")
	}

	result := &domain.AnswerResult{
		Correct:  q.IsCorrect(selected),
		Answer:   q.Answer,
		Selected: selected,
		State:    domain.StateAnsweredWrong,
	}
	if result.Correct {
		result.Awarded = s.cfg.CorrectCoin
		result.State = domain.StateAnsweredRight
		if _, err := s.cache.HIncrBy(ctx, key, fieldCorrect, 1); err != nil {
			return nil, domain.NewInternalError("Failed to update score", err)
		}
	}
	score, err := s.cache.HIncrBy(ctx, key, fieldScore, result.Awarded)
	if err != nil {
		return nil, domain.NewInternalError("Failed to update score", err)
	}
	result.Score = score
	if _, err := s.cache.HIncrBy(ctx, key, fieldAnswered, 1); err != nil {
		return nil, domain.NewInternalError("Failed to update score", err)
	}
	if err := s.setState(ctx, key, result.State); err != nil {
		return nil, err
	}
	if err := s.touch(ctx, key); err != nil {
		return nil, err
	}

	logger.Get().Info("Answer judged",
		zap.String("session_id", sessionID),
		zap.Bool("correct", result.Correct),
		zap.Int64("score", result.Score))
	return result, nil
}

// load reads the session hash. A missing key maps to NotFound.
func (s *sessionService) load(ctx context.Context, sessionID string) (*domain.Session, map[string]string, error) {
	if !util.IsULID(sessionID) {
		return nil, nil, domain.NewNotFoundError("Session not found")
	}
	hash, err := s.cache.HGetAll(ctx, cache.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil, domain.NewNotFoundError("Session not found")
		}
		return nil, nil, domain.NewInternalError("Failed to load session", err)
	}

	session := &domain.Session{
		ID:       sessionID,
		Guest:    hash[fieldGuest] == "1",
		Score:    parseCount(hash[fieldScore]),
		Answered: parseCount(hash[fieldAnswered]),
		Correct:  parseCount(hash[fieldCorrect]),
		State:    domain.AnswerState(hash[fieldState]),
	}
	if session.State == "" {
		session.State = domain.StateIdle
	}
	if ts, err := time.Parse(time.RFC3339Nano, hash[fieldCreatedAt]); err == nil {
		session.CreatedAt = ts
	}
	return session, hash, nil
}

func (s *sessionService) setState(ctx context.Context, key string, state domain.AnswerState) error {
	if err := s.cache.HSet(ctx, key, fieldState, string(state)); err != nil {
		return domain.NewInternalError("Failed to update session state", err)
	}
	return nil
}

// touch refreshes the session TTL.
func (s *sessionService) touch(ctx context.Context, key string) error {
	if s.cfg.TTL <= 0 {
		return nil
	}
	if err := s.cache.Expire(ctx, key, s.cfg.TTL); err != nil {
		return domain.NewInternalError("Failed to refresh session", err)
	}
	return nil
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
