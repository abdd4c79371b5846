package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/synth-sarmi/synthsurvey-back/internal/application/usecases"
	"github.com/synth-sarmi/synthsurvey-back/internal/domain/errs"
)

// SurveyHandler lida com o ciclo de vida das pesquisas: criação cobrada em
// tokens, edição da lista de perguntas em draft e transições de estado.
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

func (h *SurveyHandler) Create(c *fiber.Ctx) error {
	var input usecases.CreateSurveyInput
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	survey, err := h.surveyUseCase.Create(authID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": survey,
	})
}

func (h *SurveyHandler) List(c *fiber.Ctx) error {
	surveys, err := h.surveyUseCase.List(authID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": surveys,
	})
}

func (h *SurveyHandler) Get(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	survey, questions, err := h.surveyUseCase.Get(authID(c), surveyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data":      survey,
		"questions": questions,
	})
}

type attachQuestionRequest struct {
	QuestionID  int64 `json:"question_id"`
	OrderNumber int   `json:"order_number"`
}

// AttachQuestion vincula (ou reposiciona) uma pergunta da pesquisa em draft.
func (h *SurveyHandler) AttachQuestion(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req attachQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	if err := h.surveyUseCase.Attach(authID(c), surveyID, req.QuestionID, req.OrderNumber); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Question attached",
	})
}

func (h *SurveyHandler) DetachQuestion(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	questionID, err := idParam(c, "question_id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.surveyUseCase.Detach(authID(c), surveyID, questionID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Question detached",
	})
}

func (h *SurveyHandler) Questions(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	questions, err := h.surveyUseCase.Questions(authID(c), surveyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": questions,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus é o gatilho externo de publicação/conclusão.
func (h *SurveyHandler) UpdateStatus(c *fiber.Ctx) error {
	surveyID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, errs.NewInvalidInput("Invalid request body"))
	}

	survey, err := h.surveyUseCase.UpdateStatus(authID(c), surveyID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": survey,
	})
}
