package http

import (
	"pod/internal/adapters/in/http/auth"
	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/application/usecases/queries"
	"pod/internal/core/domain/model/kernel"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	Login               commands.LoginCommandHandler
	CreateUser          commands.CreateUserCommandHandler
	UpdateMessenger     commands.UpdateMessengerCommandHandler
	DeleteMessenger     commands.DeleteMessengerCommandHandler
	CreateBills         commands.CreateBillsCommandHandler
	AssignBills         commands.AssignBillsCommandHandler
	VerifyDelivery      commands.VerifyDeliveryCommandHandler
	ReassignDelivery    commands.ReassignDeliveryCommandHandler
	UpdateStatus        commands.UpdateDeliveryStatusCommandHandler
	AttachProof         commands.AttachProofCommandHandler
	GenerateDailyReport commands.GenerateDailyReportCommandHandler

	// Query handlers
	GetUser         queries.GetUserQueryHandler
	ListMessengers  queries.ListMessengersQueryHandler
	ListBills       queries.ListBillsQueryHandler
	BillInventory   queries.BillInventoryQueryHandler
	ListDeliveries  queries.ListDeliveriesQueryHandler
	TrackDeliveries queries.TrackDeliveriesQueryHandler
	GetDelivery     queries.GetDeliveryQueryHandler
	ListReports     queries.ListReportsQueryHandler
}

// Server adapts HTTP requests to commands and queries.
type Server struct {
	handlers Handlers
	tokens   *auth.JWTManager
	clock    kernel.Clock
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, tokens *auth.JWTManager, clock kernel.Clock) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		clock:    clock,
	}
}
