package httpapi

import (
	"net/http"

	"guest-push/domain"

	"github.com/gin-gonic/gin"
)

// Directory endpoints maintain the records the dispatch path reads:
// device tokens, chat participants and the hotel staff mapping.

type pushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func (s *Server) handleSetPushToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req pushTokenRequest
		if !s.bind(c, &req) {
			return
		}

		if err := s.users.SetPushToken(c.Param("id"), req.Token); err != nil {
			s.log.Error("Token registration failed", "user", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register push token"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

type saveChatRequest struct {
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
}

func (s *Server) handleSaveChat() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveChatRequest
		if !s.bind(c, &req) {
			return
		}

		chat := domain.Chat{ID: c.Param("id"), Participants: req.Participants}
		if err := s.chats.SaveChat(chat); err != nil {
			s.log.Error("Chat save failed", "chat", chat.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save chat"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

type receptionistRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (s *Server) handleSetReceptionist() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req receptionistRequest
		if !s.bind(c, &req) {
			return
		}

		if err := s.staff.SetReceptionist(c.Param("id"), req.UserID); err != nil {
			s.log.Error("Receptionist mapping failed", "hotel", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to map receptionist"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
