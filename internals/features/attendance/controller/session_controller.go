package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/dto"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/ledger"
)

type SessionController struct {
	Ledger   *ledger.Ledger
	Journal  *service.JournalService
	validate *validator.Validate
}

func NewSessionController(l *ledger.Ledger, j *service.JournalService) *SessionController {
	return &SessionController{Ledger: l, Journal: j, validate: validator.New()}
}

/* ===================== CREATE ===================== */
// POST /api/sessions
func (ctrl *SessionController) CreateSession(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	s, err := ctrl.Ledger.CreateSession(callerOf(c), req.SessionName, req.SessionTeacherName)
	if err != nil {
		return ledgerError(c, err)
	}

	resp := dto.NewSessionResponse(s)
	appendJournal(ctrl.Journal, ledger.OpCreateSession, journalActor(c), resp)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sesi berhasil dibuat", resp)
}

/* ===================== LIST ===================== */
// GET /api/sessions?page=&per_page=
func (ctrl *SessionController) ListSessions(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.DefaultOpts)
	total := int(ctrl.Ledger.SessionCount())
	list := ctrl.Ledger.Sessions(p.Offset(), p.PerPage)

	return helper.Success(c, "Daftar sesi", fiber.Map{
		"sessions":   dto.NewSessionResponses(list),
		"pagination": helper.BuildPageMeta(p, total),
	})
}

/* ===================== COUNT ===================== */
// GET /api/sessions/count
func (ctrl *SessionController) GetSessionCount(c *fiber.Ctx) error {
	return helper.Success(c, "Jumlah sesi", fiber.Map{
		"session_count": ctrl.Ledger.SessionCount(),
	})
}

/* ===================== DETAIL ===================== */
// GET /api/sessions/:id
func (ctrl *SessionController) GetSession(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "Parameter id tidak valid")
	}
	s, ok := ctrl.Ledger.Session(uint64(id))
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}
	return helper.Success(c, "Detail sesi", dto.NewSessionResponse(s))
}
