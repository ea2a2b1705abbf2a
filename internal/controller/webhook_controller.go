package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"laundryops-bot/internal/dto"
	"laundryops-bot/internal/pkg/logger"
	"laundryops-bot/internal/pkg/serverutils"
	"laundryops-bot/internal/service"
	"laundryops-bot/pkg/telegram"
)

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	HandleTelegramUpdate(ctx *fiber.Ctx) error
	SimulateChat(ctx *fiber.Ctx) error
}

type webhookController struct {
	chatbotService service.IChatbotService
	sender         telegram.Sender
	log            logger.ILogger
}

func NewWebhookController(chatbotService service.IChatbotService, sender telegram.Sender, log logger.ILogger) IWebhookController {
	return &webhookController{
		chatbotService: chatbotService,
		sender:         sender,
		log:            log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/webhook/v1")
	h.Post("telegram", c.HandleTelegramUpdate)
	h.Post("simulate", c.SimulateChat)
}

// HandleTelegramUpdate always acknowledges with 200: Telegram retries
// non-2xx responses, which would replay the same message into the dialogue.
func (c *webhookController) HandleTelegramUpdate(ctx *fiber.Ctx) error {
	var update dto.TelegramUpdate
	if err := ctx.BodyParser(&update); err != nil {
		c.log.Warn("webhook", "unparseable update", map[string]interface{}{"error": err.Error()})
		return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("ignored", nil))
	}

	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("ignored", nil))
	}

	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
	senderName := displayName(update.Message.From)

	reply, err := c.chatbotService.HandleMessage(ctx.Context(), chatID, senderName, update.Message.Text)
	if err != nil {
		c.log.Error("webhook", "message handling failed", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
		return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("ignored", nil))
	}

	if err := c.sender.SendMessage(chatID, reply); err != nil {
		c.log.Warn("webhook", "push send failed, answering inline", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
		// Telegram executes a method returned in the webhook response body.
		return ctx.Status(fiber.StatusOK).JSON(dto.WebhookReply{
			Method:    "sendMessage",
			ChatID:    update.Message.Chat.ID,
			Text:      reply,
			ParseMode: "HTML",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("ok", nil))
}

// SimulateChat drives the pipeline without Telegram, for local testing.
func (c *webhookController) SimulateChat(ctx *fiber.Ctx) error {
	var req dto.SimulateChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	reply, err := c.chatbotService.HandleMessage(ctx.Context(), req.ChatID, req.Name, req.Message)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(serverutils.SuccessResponse("ok", dto.SimulateChatResponse{Reply: reply}))
}

func displayName(from *dto.TelegramUser) string {
	if from == nil {
		return ""
	}
	name := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if name == "" {
		name = from.Username
	}
	return name
}
