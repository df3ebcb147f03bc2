package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"mindwell/internal/cache"
	"mindwell/internal/chatbot"
	"mindwell/internal/model"
	"mindwell/internal/repository"
	"mindwell/internal/sentiment"
)

// trendWindow bounds how many recent conversations feed a trend summary
const trendWindow = 50

// ChatService runs the chat pipeline: analyze, respond, persist
type ChatService struct {
	analyzer    *sentiment.Analyzer
	responder   *chatbot.Responder
	convRepo    repository.ConversationRepo
	trendsCache cache.TrendsCache
	broadcaster Broadcaster
}

// NewChatService creates a new chat service
func NewChatService(
	analyzer *sentiment.Analyzer,
	responder *chatbot.Responder,
	convRepo repository.ConversationRepo,
	trendsCache cache.TrendsCache,
) *ChatService {
	return &ChatService{
		analyzer:    analyzer,
		responder:   responder,
		convRepo:    convRepo,
		trendsCache: trendsCache,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket alerts
func (s *ChatService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// HandleMessage analyzes one user message and produces the chat turn.
// Persistence is write-through and best-effort: storage failures are
// logged, never surfaced, and never block the response.
func (s *ChatService) HandleMessage(ctx context.Context, userID, sessionID, message string) (*model.ChatTurnResponse, *model.AnalysisResult) {
	analysis := s.analyzer.Analyze(message)
	response := s.responder.Respond(message, analysis)

	conv := &model.Conversation{
		UserID:          userID,
		SessionID:       sessionID,
		UserMessage:     message,
		ResponseText:    response.ResponseText,
		Analysis:        analysis,
		EscalationLevel: response.EscalationLevel,
		Timestamp:       time.Now(),
	}
	if _, err := s.convRepo.Create(ctx, conv); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to save conversation")
	} else if err := s.trendsCache.Invalidate(ctx, userID); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate trends cache")
	}

	if s.broadcaster != nil && (response.EscalationLevel == model.EscalationCritical || response.EscalationLevel == model.EscalationHigh) {
		s.broadcaster.BroadcastAlert("chat_escalation", map[string]interface{}{
			"user_id":          userID,
			"session_id":       sessionID,
			"escalation_level": response.EscalationLevel,
			"crisis_detected":  response.CrisisDetected,
			"timestamp":        conv.Timestamp,
		})
	}

	return response, analysis
}

// Trends returns a cached or freshly computed sentiment trend summary
// for a user's recent conversations.
func (s *ChatService) Trends(ctx context.Context, userID string) (*model.TrendSummary, error) {
	if cached, err := s.trendsCache.Get(ctx, userID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("trends cache read failed")
	}

	convs, err := s.convRepo.GetByUserID(ctx, userID, trendWindow)
	if err != nil {
		return nil, err
	}

	// Stored newest-first; trends want oldest-first
	analyses := make([]*model.AnalysisResult, 0, len(convs))
	for i := len(convs) - 1; i >= 0; i-- {
		if convs[i].Analysis != nil {
			analyses = append(analyses, convs[i].Analysis)
		}
	}

	summary := sentiment.Trends(analyses)
	if err := s.trendsCache.Set(ctx, userID, summary); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("trends cache write failed")
	}
	return summary, nil
}
