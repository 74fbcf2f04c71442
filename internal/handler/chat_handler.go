package handler

import (
	"errors"
	"log"
	"net/http"

	"invoice-analytics/internal/service"
	"invoice-analytics/pkg/response"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/chat-with-data", h.ChatWithData)
}

type chatRequest struct {
	Query string `json:"query" binding:"required"`
}

// @Summary      Chat with data
// @Description  Forwards a natural-language question to the NL-to-SQL service and relays its answer
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        payload body handler.chatRequest true "Natural-language question"
// @Success      200 {object} service.ChatAnswer
// @Failure      400 {object} map[string]interface{} "Query is required"
// @Failure      503 {object} map[string]interface{} "AI service unreachable"
// @Failure      504 {object} map[string]interface{} "AI service timed out"
// @Router       /api/chat-with-data [post]
func (h *ChatHandler) ChatWithData(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Query is required")
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.Query)
	if err != nil {
		log.Printf("Error processing chat query: %v", err)

		var upstream *service.UpstreamError
		switch {
		case errors.As(err, &upstream):
			response.Error(c, upstream.StatusCode, upstream.Message)
		case errors.Is(err, service.ErrChatTimeout):
			response.Error(c, http.StatusGatewayTimeout, "AI service timed out")
		default:
			response.Error(c, http.StatusServiceUnavailable, "Failed to connect to AI service")
		}
		return
	}
	c.JSON(http.StatusOK, answer)
}
