package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gaablh4z/v7-sistema-completo/internal/middleware"
	"github.com/gaablh4z/v7-sistema-completo/internal/models"
	"github.com/gaablh4z/v7-sistema-completo/internal/notify"
)

type WSHandler struct {
	hub *notify.Hub
	log *zap.Logger
}

func NewWSHandler(hub *notify.Hub, log *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

// Notifications abre a conexão websocket do usuário autenticado.
// A autenticação já passou pelo middleware (token no query param).
func (h *WSHandler) Notifications(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)
	isAdmin := c.GetString(middleware.ContextUserRole) == models.RoleAdmin

	if err := h.hub.Register(c.Writer, c.Request, userID, isAdmin); err != nil {
		h.log.Warn("websocket upgrade failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
}
