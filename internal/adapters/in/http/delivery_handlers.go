package http

import (
	"net/http"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/application/usecases/queries"
	"pod/internal/core/domain/model/delivery"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// VerifyDelivery handles PUT /api/coordinator/deliveries/:id/verify.
func (s *Server) VerifyDelivery(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}

	var req VerifyDeliveryRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	p, err := principal(ctx)
	if err != nil {
		return err
	}

	decision, err := delivery.ParseVerificationStatus(req.VerificationStatus)
	if err != nil {
		return err
	}

	cmd, err := commands.NewVerifyDeliveryCommand(id, p.UserID, decision, req.VerificationNotes)
	if err != nil {
		return err
	}

	d, err := s.handlers.VerifyDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, DeliveryUpdateResponse{Message: "Delivery verified", Delivery: toDelivery(d)})
}

// ReassignDelivery handles PUT /api/coordinator/deliveries/:id/reassign.
func (s *Server) ReassignDelivery(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}

	var req ReassignDeliveryRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	messengerID, err := kernel.UUIDFromString(req.NewMessengerID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("newMessengerId", err)
	}

	cmd, err := commands.NewReassignDeliveryCommand(id, messengerID)
	if err != nil {
		return err
	}

	d, err := s.handlers.ReassignDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, DeliveryUpdateResponse{Message: "Delivery reassigned successfully", Delivery: toDelivery(d)})
}

// GetTracking handles GET /api/coordinator/tracking.
func (s *Server) GetTracking(ctx echo.Context) error {
	tracking, err := s.handlers.TrackDeliveries.Handle(ctx.Request().Context(), queries.NewTrackDeliveriesQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toTracking(tracking, true))
}

// GetRoutes handles GET /api/messenger/routes: the caller's deliveries with stats.
func (s *Server) GetRoutes(ctx echo.Context) error {
	p, err := principal(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewMessengerRoutesQuery(p.UserID)
	if err != nil {
		return err
	}

	tracking, err := s.handlers.TrackDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toTracking(tracking, false))
}

// ListMyDeliveries handles GET /api/messenger/deliveries?status=.
func (s *Server) ListMyDeliveries(ctx echo.Context) error {
	p, err := principal(ctx)
	if err != nil {
		return err
	}

	filter := queries.DeliveryFilter{MessengerID: &p.UserID}
	if raw := ctx.QueryParam("status"); raw != "" {
		status, parseErr := delivery.ParseStatus(raw)
		if parseErr != nil {
			return parseErr
		}
		filter.Status = &status
	}

	return s.listDeliveries(ctx, filter)
}

// ListDeliveries handles GET /api/deliveries.
func (s *Server) ListDeliveries(ctx echo.Context) error {
	return s.listDeliveries(ctx, queries.DeliveryFilter{})
}

// ListDeliveriesByStatus handles GET /api/deliveries/status/:status.
func (s *Server) ListDeliveriesByStatus(ctx echo.Context) error {
	raw, err := bindPathString(ctx, "status")
	if err != nil {
		return err
	}

	status, err := delivery.ParseStatus(raw)
	if err != nil {
		return err
	}

	return s.listDeliveries(ctx, queries.DeliveryFilter{Status: &status})
}

func (s *Server) listDeliveries(ctx echo.Context, filter queries.DeliveryFilter) error {
	query, err := queries.NewListDeliveriesQuery(filter)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, deliveriesFromViews(views))
}

// GetDelivery handles GET /api/messenger/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryQuery(id)
	if err != nil {
		return err
	}

	detail, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, deliveryFromDetail(detail))
}

// UpdateDeliveryStatus handles PUT /api/messenger/deliveries/:id/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	p, err := principal(ctx)
	if err != nil {
		return err
	}

	status, err := delivery.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, p.UserID, status, req.FailureReason, req.Notes)
	if err != nil {
		return err
	}

	d, err := s.handlers.UpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, DeliveryUpdateResponse{Message: "Delivery status updated", Delivery: toDelivery(d)})
}

// AttachProof handles POST /api/messenger/deliveries/:id/proof.
func (s *Server) AttachProof(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}

	var req AttachProofRequest
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	p, err := principal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAttachProofCommand(id, p.UserID, req.ImageData)
	if err != nil {
		return err
	}

	d, err := s.handlers.AttachProof.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, DeliveryUpdateResponse{Message: "Proof uploaded successfully", Delivery: toDelivery(d)})
}
