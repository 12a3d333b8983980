package handler

import (
	"trivia-orb/internal/dto"
	"trivia-orb/internal/service"
	"trivia-orb/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler serves guest sessions and answer judging.
type SessionHandler struct {
	sessions  service.SessionService
	validator *validation.Validator
}

// NewSessionHandler creates a new SessionHandler instance
func NewSessionHandler(sessions service.SessionService, validator *validation.Validator) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		validator: validator,
	}
}

// CreateSession godoc
// @Summary Start a guest session
// @Tags sessions
// @Produce json
// @Success 201 {object} domain.Session
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	session, err := h.sessions.CreateSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSession godoc
// @Summary Get a guest session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} domain.Session
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.sessions.GetSession(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(session)
}

// EndSession godoc
// @Summary End a guest session
// @Description Discards the session together with its score and current question.
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) EndSession(c *fiber.Ctx) error {
	if err := h.sessions.EndSession(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SubmitAnswer godoc
// @Summary Answer the session's current question
// @Description Judges the selection against the question issued with this session. A correct answer adds coins to the score.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitAnswerRequest true "Selected option"
// @Success 200 {object} domain.AnswerResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions/{id}/answers [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validator.Struct(&req, nil); err != nil {
		return err
	}

	result, err := h.sessions.SubmitAnswer(c.UserContext(), c.Params("id"), req.Selected)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
