package http

import (
	"net/http"

	"pod/internal/core/application/usecases/commands"
	"pod/internal/core/application/usecases/queries"
	"pod/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Login handles POST /api/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return err
	}

	u, err := s.handlers.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, User: toUser(u)})
}

// GetMe handles GET /api/auth/me.
func (s *Server) GetMe(ctx echo.Context) error {
	p, err := principal(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(p.UserID)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, userFromView(view))
}

// CreateUser handles POST /api/auth/users. The role comes from the body.
func (s *Server) CreateUser(ctx echo.Context) error {
	var req NewUser
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return err
	}

	return s.createUser(ctx, req, role)
}

// ListMessengers handles GET /api/coordinator/messengers.
func (s *Server) ListMessengers(ctx echo.Context) error {
	views, err := s.handlers.ListMessengers.Handle(ctx.Request().Context(), queries.NewListMessengersQuery())
	if err != nil {
		return err
	}

	response := make([]User, 0, len(views))
	for _, v := range views {
		response = append(response, userFromView(v))
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateMessenger handles POST /api/coordinator/messengers. Any role in the
// body is ignored.
func (s *Server) CreateMessenger(ctx echo.Context) error {
	var req NewUser
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	return s.createUser(ctx, req, user.Messenger)
}

func (s *Server) createUser(ctx echo.Context, req NewUser, role user.Role) error {
	cmd, err := commands.NewCreateUserCommand(req.Name, req.Email, req.Password, role, user.Profile{
		EmployeeID: req.EmployeeID,
		Phone:      req.Phone,
		Area:       req.Area,
	})
	if err != nil {
		return err
	}

	u, err := s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toUser(u))
}

// UpdateMessenger handles PUT /api/coordinator/messengers/:id.
func (s *Server) UpdateMessenger(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}

	var req UpdateMessenger
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMessengerCommand(id, req.Name, req.Email, user.Profile{
		EmployeeID: req.EmployeeID,
		Phone:      req.Phone,
		Area:       req.Area,
	}, req.IsActive)
	if err != nil {
		return err
	}

	u, err := s.handlers.UpdateMessenger.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toUser(u))
}

// DeleteMessenger handles DELETE /api/coordinator/messengers/:id.
func (s *Server) DeleteMessenger(ctx echo.Context) error {
	id, err := bindPathID(ctx, "id")
	if err != nil {
		return err
	}

	p, err := principal(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteMessengerCommand(id, p.UserID)
	if err != nil {
		return err
	}

	result, err := s.handlers.DeleteMessenger.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, DeleteMessengerResponse{
		Message:           "Messenger deleted successfully",
		DeletedDeliveries: result.DeletedDeliveries,
		UnassignedBills:   result.UnassignedBills,
	})
}
