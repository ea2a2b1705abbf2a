package service

import (
	"context"
	"strings"

	"laundryops-bot/internal/pkg/logger"
	"laundryops-bot/pkg/llm"
	"laundryops-bot/pkg/rag/prompt"
	"laundryops-bot/pkg/rag/retriever"
)

// NoKnowledgeAnswer is returned without a model call when retrieval finds
// nothing to ground an answer on.
const NoKnowledgeAnswer = `I don't have information on that yet. 🙏 Please reach out to support with <b>help</b>, or ask me about bookings, pricing, or order tracking.`

type IRagService interface {
	// Answer produces a grounded reply to a free-form question. With zero
	// retrieved passages it refuses instead of calling the model.
	Answer(ctx context.Context, question string) (string, error)
}

type ragService struct {
	retriever   *retriever.Retriever
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewRagService(r *retriever.Retriever, llmProvider llm.LLMProvider, log logger.ILogger) IRagService {
	return &ragService{
		retriever:   r,
		llmProvider: llmProvider,
		log:         log,
	}
}

func (s *ragService) Answer(ctx context.Context, question string) (string, error) {
	passages, err := s.retriever.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}
	if len(passages) == 0 {
		s.log.Info("rag", "no passages retrieved, refusing", map[string]interface{}{"question": question})
		return NoKnowledgeAnswer, nil
	}

	history := []llm.Message{
		{Role: "system", Content: prompt.FaqSystem},
		{Role: "user", Content: prompt.BuildFaqPrompt(question, passages)},
	}

	answer, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.2), llm.WithMaxTokens(400))
	if err != nil {
		s.log.Error("rag", "answer generation failed", map[string]interface{}{"error": err.Error()})
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return NoKnowledgeAnswer, nil
	}
	return answer, nil
}
