package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type sendRequest struct {
	Token string            `json:"token" validate:"required"`
	Title string            `json:"title" validate:"required"`
	Body  string            `json:"body" validate:"required"`
	Data  map[string]string `json:"dataPayload"`
}

// handleSend is the direct-invocation entry point: the caller supplies the
// device token, so no recipient resolution happens. The response is always
// 200 with a structured result; a transport failure is data, not an HTTP
// error.
func (s *Server) handleSend() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendRequest
		if !s.bind(c, &req) {
			return
		}

		result := s.direct.SendDirect(c.Request.Context(), req.Token, req.Title, req.Body, req.Data)
		c.JSON(http.StatusOK, result)
	}
}
