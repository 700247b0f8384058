package httpapi

import (
	"net/http"

	"guest-push/domain"

	"github.com/gin-gonic/gin"
)

// Trigger payloads mirror the document-change events the external
// scheduler observes: the created document, or a before/after pair.
// Dispatch failures surface as 502 so the scheduler sees them and applies
// its own retry policy; this core never retries.

type chatMessagePayload struct {
	ID       string `json:"id"`
	SenderID string `json:"senderId" validate:"required"`
	Text     string `json:"text"`
}

type chatMessageTrigger struct {
	ChatID  string             `json:"chatId" validate:"required"`
	Message chatMessagePayload `json:"message" validate:"required"`
}

func (s *Server) handleChatMessageTrigger() gin.HandlerFunc {
	return func(c *gin.Context) {
		var trigger chatMessageTrigger
		if !s.bind(c, &trigger) {
			return
		}

		msg := domain.ChatMessage{
			ID:       trigger.Message.ID,
			ChatID:   trigger.ChatID,
			SenderID: trigger.Message.SenderID,
			Text:     trigger.Message.Text,
		}
		if err := s.chatMessages.HandleNewMessage(c.Request.Context(), msg); err != nil {
			s.log.Error("Chat message fan-out failed", "chat", trigger.ChatID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

type checkInSnapshot struct {
	Status   string `json:"status" validate:"required"`
	ClientID string `json:"clientId"`
}

type checkInTrigger struct {
	RequestID string          `json:"requestId"`
	Before    checkInSnapshot `json:"before" validate:"required"`
	After     checkInSnapshot `json:"after" validate:"required"`
}

func (s *Server) handleCheckInTrigger() gin.HandlerFunc {
	return func(c *gin.Context) {
		var trigger checkInTrigger
		if !s.bind(c, &trigger) {
			return
		}

		before := domain.CheckInRequest{
			ID:       trigger.RequestID,
			ClientID: trigger.Before.ClientID,
			Status:   domain.CheckInStatus(trigger.Before.Status),
		}
		after := domain.CheckInRequest{
			ID:       trigger.RequestID,
			ClientID: trigger.After.ClientID,
			Status:   domain.CheckInStatus(trigger.After.Status),
		}
		if err := s.checkIns.HandleStatusChange(c.Request.Context(), before, after); err != nil {
			s.log.Error("Check-in notification failed", "request", trigger.RequestID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

type serviceRequestCreatedTrigger struct {
	RequestID   string `json:"requestId" validate:"required"`
	HotelID     string `json:"hotelId" validate:"required"`
	ClientID    string `json:"clientId"`
	ServiceType string `json:"serviceType" validate:"required"`
}

func (s *Server) handleServiceRequestCreatedTrigger() gin.HandlerFunc {
	return func(c *gin.Context) {
		var trigger serviceRequestCreatedTrigger
		if !s.bind(c, &trigger) {
			return
		}

		request := domain.ServiceRequest{
			ID:          trigger.RequestID,
			HotelID:     trigger.HotelID,
			ClientID:    trigger.ClientID,
			ServiceType: trigger.ServiceType,
		}
		if err := s.serviceRequests.HandleCreated(c.Request.Context(), request); err != nil {
			s.log.Error("Service request notification failed", "request", trigger.RequestID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

type serviceRequestSnapshot struct {
	Status   string `json:"status" validate:"required"`
	ClientID string `json:"clientId"`
}

type serviceRequestStatusTrigger struct {
	RequestID string                 `json:"requestId"`
	Before    serviceRequestSnapshot `json:"before" validate:"required"`
	After     serviceRequestSnapshot `json:"after" validate:"required"`
}

func (s *Server) handleServiceRequestStatusTrigger() gin.HandlerFunc {
	return func(c *gin.Context) {
		var trigger serviceRequestStatusTrigger
		if !s.bind(c, &trigger) {
			return
		}

		before := domain.ServiceRequest{
			ID:       trigger.RequestID,
			ClientID: trigger.Before.ClientID,
			Status:   domain.ServiceStatus(trigger.Before.Status),
		}
		after := domain.ServiceRequest{
			ID:       trigger.RequestID,
			ClientID: trigger.After.ClientID,
			Status:   domain.ServiceStatus(trigger.After.Status),
		}
		if err := s.serviceRequests.HandleStatusChange(c.Request.Context(), before, after); err != nil {
			s.log.Error("Service request status notification failed", "request", trigger.RequestID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// bind decodes the JSON body and applies the validate tags.
// Responds 400 and returns false when the payload is unusable.
func (s *Server) bind(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	if err := validate.Struct(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
