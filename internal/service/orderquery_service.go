package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"laundryops-bot/internal/constant"
	"laundryops-bot/internal/entity"
	"laundryops-bot/internal/pkg/apperror"
	"laundryops-bot/internal/pkg/logger"
	"laundryops-bot/pkg/llm"
	"laundryops-bot/pkg/rag/prompt"
)

// orderCodeRe spots an ORD- code anywhere in a message, dash optional.
var orderCodeRe = regexp.MustCompile(`(?i)\bORD-?([A-Za-z0-9]{8})\b`)

// ExtractOrderCode returns the normalized ORD- code in a message, or "".
func ExtractOrderCode(message string) string {
	m := orderCodeRe.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return "ORD-" + strings.ToUpper(m[1])
}

type IOrderQueryService interface {
	// Answer handles a natural-language question about an order. A code in
	// the message wins; otherwise the chat's latest order is used. A chat
	// with no orders gets fixed copy, no model call.
	Answer(ctx context.Context, chatID, message string) (string, error)
}

type orderQueryService struct {
	tracking    ITrackingService
	llmProvider llm.LLMProvider
	log         logger.ILogger
}

func NewOrderQueryService(tracking ITrackingService, llmProvider llm.LLMProvider, log logger.ILogger) IOrderQueryService {
	return &orderQueryService{
		tracking:    tracking,
		llmProvider: llmProvider,
		log:         log,
	}
}

func (s *orderQueryService) Answer(ctx context.Context, chatID, message string) (string, error) {
	var (
		order *entity.Order
		err   error
	)

	if code := ExtractOrderCode(message); code != "" {
		order, err = s.tracking.FindOrderByCode(ctx, code)
		if errors.Is(err, apperror.ErrOrderNotFound) {
			return constant.OrderNotFoundMessage, nil
		}
	} else {
		order, err = s.tracking.FindLatestOrderByChatID(ctx, chatID)
		if errors.Is(err, apperror.ErrNoLinkedOrder) {
			return constant.NoOrdersFallback, nil
		}
	}
	if err != nil {
		return "", err
	}

	history := []llm.Message{
		{Role: "system", Content: prompt.OrderSystem},
		{Role: "user", Content: prompt.BuildOrderPrompt(message, order)},
	}

	answer, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(0.2), llm.WithMaxTokens(400))
	if err != nil {
		// The record itself still answers the question.
		s.log.Warn("orderquery", "generation failed, replying with plain card", map[string]interface{}{"error": err.Error()})
		return RenderOrderCard(order), nil
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return RenderOrderCard(order), nil
	}
	return answer, nil
}
