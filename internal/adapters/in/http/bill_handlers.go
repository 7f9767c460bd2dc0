package http

import (
	"fmt"
	"net/http"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/application/usecases/queries"
	"pod/internal/core/domain/model/bill"
	"pod/internal/core/domain/model/kernel"
	"pod/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateBills handles POST /api/coordinator/bills. Each bill is stored on its
// own; the response lists which ones were rejected.
func (s *Server) CreateBills(ctx echo.Context) error {
	var req NewBills
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	details := make([]bill.Details, 0, len(req.Bills))
	for i, b := range req.Bills {
		typ, err := bill.ParseType(b.BillType)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("bills[%d].billType", i), err)
		}
		details = append(details, bill.Details{
			AccountNumber: b.AccountNumber,
			CustomerName:  b.CustomerName,
			Address:       b.Address,
			Route:         b.Route,
			Area:          b.Area,
			Type:          typ,
			BillingMonth:  b.BillingMonth,
			Amount:        b.Amount,
			Quantity:      b.Quantity,
			Notes:         b.Notes,
		})
	}

	cmd, err := commands.NewCreateBillsCommand(details)
	if err != nil {
		return err
	}

	result, err := s.handlers.CreateBills.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toBatchResponse(result))
}

// ListBills handles GET /api/coordinator/bills?status=&route=&billType=.
func (s *Server) ListBills(ctx echo.Context) error {
	var filter queries.BillFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := bill.ParseStatus(raw)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	if raw := ctx.QueryParam("billType"); raw != "" {
		typ, err := bill.ParseType(raw)
		if err != nil {
			return err
		}
		filter.Type = &typ
	}
	filter.Route = ctx.QueryParam("route")

	query, err := queries.NewListBillsQuery(filter)
	if err != nil {
		return err
	}

	return s.listBills(ctx, query)
}

// ListBillsByRoute handles GET /api/bills/by-route/:route.
func (s *Server) ListBillsByRoute(ctx echo.Context) error {
	route, err := bindPathString(ctx, "route")
	if err != nil {
		return err
	}

	query, err := queries.NewBillsByRouteQuery(route)
	if err != nil {
		return err
	}

	return s.listBills(ctx, query)
}

func (s *Server) listBills(ctx echo.Context, query queries.ListBillsQuery) error {
	views, err := s.handlers.ListBills.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Bill, 0, len(views))
	for _, v := range views {
		response = append(response, billFromView(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetBillInventory handles GET /api/bills/inventory.
func (s *Server) GetBillInventory(ctx echo.Context) error {
	entries, err := s.handlers.BillInventory.Handle(ctx.Request().Context(), queries.NewBillInventoryQuery())
	if err != nil {
		return err
	}

	response := make([]InventoryEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, InventoryEntry{Status: e.Status.String(), Count: e.Count})
	}
	return ctx.JSON(http.StatusOK, response)
}

// AssignBills handles POST /api/coordinator/assign-bills.
func (s *Server) AssignBills(ctx echo.Context) error {
	var req AssignBillsRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	p, err := principal(ctx)
	if err != nil {
		return err
	}

	billIDs, err := kernel.UUIDsFromStrings("billIds", req.BillIDs)
	if err != nil {
		return err
	}
	messengerID, err := kernel.UUIDFromString(req.MessengerID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("messengerId", err)
	}

	cmd, err := commands.NewAssignBillsCommand(billIDs, messengerID, p.UserID)
	if err != nil {
		return err
	}

	result, err := s.handlers.AssignBills.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toBatchResponse(result))
}
