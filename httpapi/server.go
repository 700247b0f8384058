// Package httpapi exposes the notification core over JSON/HTTP: the
// trigger webhooks invoked by the document-change scheduler, the
// direct-send entry point and the directory seed endpoints.
package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"guest-push/notify"
	"guest-push/repositories"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Server struct {
	router *gin.Engine
	addr   string
	log    *slog.Logger

	chatMessages    notify.IChatMessageHandler
	checkIns        notify.ICheckInHandler
	serviceRequests notify.IServiceRequestHandler
	direct          notify.IDirectSender

	users repositories.IUserRepository
	chats repositories.IChatRepository
	staff repositories.IStaffDirectory
}

func NewServer(
	log *slog.Logger,
	addr string,
	chatMessages notify.IChatMessageHandler,
	checkIns notify.ICheckInHandler,
	serviceRequests notify.IServiceRequestHandler,
	direct notify.IDirectSender,
	users repositories.IUserRepository,
	chats repositories.IChatRepository,
	staff repositories.IStaffDirectory,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(Recovery(log))

	s := &Server{
		router:          router,
		addr:            addr,
		log:             log,
		chatMessages:    chatMessages,
		checkIns:        checkIns,
		serviceRequests: serviceRequests,
		direct:          direct,
		users:           users,
		chats:           chats,
		staff:           staff,
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api/v1")
	{
		triggers := api.Group("/triggers")
		{
			// Document-change webhooks, one per observed event category
			triggers.POST("/chat-messages", s.handleChatMessageTrigger())
			triggers.POST("/check-ins", s.handleCheckInTrigger())
			triggers.POST("/service-requests", s.handleServiceRequestCreatedTrigger())
			triggers.POST("/service-requests/status", s.handleServiceRequestStatusTrigger())
		}

		// Direct send with an explicit device token
		api.POST("/notifications/send", s.handleSend())

		// Directory records the handlers read at dispatch time
		api.PUT("/users/:id/push-token", s.handleSetPushToken())
		api.PUT("/chats/:id", s.handleSaveChat())
		api.PUT("/hotels/:id/receptionist", s.handleSetReceptionist())
	}

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "guest-push"})
	})
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}
