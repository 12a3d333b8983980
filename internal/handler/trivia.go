package handler

import (
	"trivia-orb/internal/domain"
	"trivia-orb/internal/dto"
	"trivia-orb/internal/logger"
	"trivia-orb/internal/service"
	"trivia-orb/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	errTopicsFailed    = "Failed to generate topics."
	errQuestionFailed  = "Failed to generate question."
	errMissingSubtopic = "Missing subtopic in body"
)

// TriviaHandler serves the two generation endpoints.
type TriviaHandler struct {
	generation service.GenerationService
	sessions   service.SessionService
	validator  *validation.Validator
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(generation service.GenerationService, sessions service.SessionService, validator *validation.Validator) *TriviaHandler {
	return &TriviaHandler{
		generation: generation,
		sessions:   sessions,
		validator:  validator,
	}
}

// GenerateTopics godoc
// @Summary Generate trivia subtopics
// @Description Asks the language model for five subtopics of the given topic. A blank or missing topic falls back to general trivia.
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.GenerateTopicsRequest false "Seed topic"
// @Success 200 {object} dto.GenerateTopicsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generateTopics [post]
func (h *TriviaHandler) GenerateTopics(c *fiber.Ctx) error {
	var req dto.GenerateTopicsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			logger.Get().Debug("Ignoring unparsable topics body", zap.Error(err))
			req = dto.GenerateTopicsRequest{}
		}
	}

	topics, err := h.generation.GenerateTopics(c.UserContext(), req.Topic)
	if err != nil {
		return generationFailure(c, err, errTopicsFailed)
	}

	return c.JSON(dto.GenerateTopicsResponse{Topics: topics})
}

// GenerateQuestion godoc
// @Summary Generate one trivia question
// @Description Asks the language model for one multiple-choice question about the subtopic. With session_id the question becomes the session's current question.
// @Tags trivia
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionRequest true "Subtopic"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generateQuestion [post]
func (h *TriviaHandler) GenerateQuestion(c *fiber.Ctx) error {
	var req dto.GenerateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: errMissingSubtopic})
	}
	if err := h.validator.Struct(&req, map[string]string{"subtopic": errMissingSubtopic}); err != nil {
		return err
	}

	ctx := c.UserContext()
	var prior domain.AnswerState
	if req.SessionID != "" {
		state, err := h.sessions.BeginQuestion(ctx, req.SessionID)
		if err != nil {
			return err
		}
		prior = state
	}

	question, err := h.generation.GenerateQuestion(ctx, req.Subtopic)
	if err != nil {
		if req.SessionID != "" {
			if abandonErr := h.sessions.AbandonQuestion(ctx, req.SessionID, prior); abandonErr != nil {
				logger.Get().Warn("Failed to reset session after generation failure",
					zap.String("session_id", req.SessionID), zap.Error(abandonErr))
			}
		}
		return generationFailure(c, err, errQuestionFailed)
	}

	if req.SessionID != "" {
		if err := h.sessions.RecordQuestion(ctx, req.SessionID, question); err != nil {
			return err
		}
	}

	return c.JSON(dto.NewQuestionResponse(question))
}

// generationFailure answers a failed pipeline run with the endpoint's fixed
// message. The failure kind stays in the server log.
func generationFailure(c *fiber.Ctx, err error, message string) error {
	logger.Get().Error("Generation request failed",
		zap.String("path", c.Path()),
		zap.String("code", string(domain.CodeOf(err))),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: message})
}
