//go:generate go run go.uber.org/mock/mockgen -source=service_request.go -destination=../mocks/mock_service_request_handler.go -package=mocks
package notify

import (
	"context"
	"log/slog"

	"guest-push/domain"
	"guest-push/errors"
	"guest-push/repositories"
)

type IServiceRequestHandler interface {
	HandleCreated(ctx context.Context, request domain.ServiceRequest) error
	HandleStatusChange(ctx context.Context, before, after domain.ServiceRequest) error
}

// ServiceRequestHandler observes service request creation and update events.
type ServiceRequestHandler struct {
	staff      repositories.IStaffDirectory
	dispatcher IDispatcher
	log        *slog.Logger
}

func NewServiceRequestHandler(staff repositories.IStaffDirectory, dispatcher IDispatcher, log *slog.Logger) IServiceRequestHandler {
	return &ServiceRequestHandler{staff: staff, dispatcher: dispatcher, log: log}
}

// HandleCreated notifies the receptionist of the hotel a request was filed
// against. The recipient comes from the staff directory; deployments
// predating the directory keyed receptionist accounts by hotel ID, so that
// convention survives as a logged fallback.
func (h *ServiceRequestHandler) HandleCreated(ctx context.Context, request domain.ServiceRequest) error {
	recipient, err := h.staff.Receptionist(request.HotelID)
	if errors.Is(err, errors.ErrStaffNotFound) {
		h.log.Warn("No receptionist mapping, falling back to hotel ID as recipient",
			"hotel", request.HotelID, "request", request.ID)
		recipient = request.HotelID
	} else if err != nil {
		return err
	}

	return h.dispatcher.Dispatch(ctx, recipient, domain.Notification{
		Title: "New Service Request",
		Body:  "New request: " + request.ServiceType,
		Data: map[string]string{
			domain.DataKeyType:      domain.TypeServiceRequest,
			domain.DataKeyRequestID: request.ID,
		},
	})
}

// HandleStatusChange notifies the client when their request moved to a
// status with a message on file. Unchanged or silent statuses no-op.
func (h *ServiceRequestHandler) HandleStatusChange(ctx context.Context, before, after domain.ServiceRequest) error {
	if before.Status == after.Status {
		return nil
	}

	body, ok := after.Status.Message()
	if !ok {
		h.log.Debug("Service request status carries no message, skipping",
			"request", after.ID, "status", after.Status)
		return nil
	}

	return h.dispatcher.Dispatch(ctx, after.ClientID, domain.Notification{
		Title: "Service Request Update",
		Body:  body,
		Data: map[string]string{
			domain.DataKeyType:   domain.TypeServiceRequest,
			domain.DataKeyStatus: string(after.Status),
		},
	})
}
