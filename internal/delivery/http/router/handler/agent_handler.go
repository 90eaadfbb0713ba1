package handler

import (
	"net/http"

	"dreamcrm/internal/delivery/http/response"
	"dreamcrm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AgentHandler holds dependencies for agent handlers.
type AgentHandler struct {
	uc usecase.AgentUsecase
}

// NewAgentHandler is the constructor for AgentHandler, injected by Fx.
func NewAgentHandler(uc usecase.AgentUsecase) *AgentHandler {
	return &AgentHandler{uc: uc}
}

// Leaderboard returns the agents ranked by commission earned.
func (h *AgentHandler) Leaderboard(c echo.Context) error {
	rows, err := h.uc.Leaderboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rows, "")
}

// Add creates a new Agent-role user.
func (h *AgentHandler) Add(c echo.Context) error {
	var input *usecase.AddAgentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid agent input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	agent, err := h.uc.Add(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, agent, "Agent added successfully")
}
