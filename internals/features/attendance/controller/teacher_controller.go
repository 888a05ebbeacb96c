package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/dto"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/ledger"
)

type TeacherController struct {
	Ledger   *ledger.Ledger
	Journal  *service.JournalService
	validate *validator.Validate
}

func NewTeacherController(l *ledger.Ledger, j *service.JournalService) *TeacherController {
	return &TeacherController{Ledger: l, Journal: j, validate: validator.New()}
}

/* ===================== REGISTER ===================== */
// POST /api/teachers
func (ctrl *TeacherController) RegisterTeacher(c *fiber.Ctx) error {
	var req dto.RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	t, err := ctrl.Ledger.RegisterTeacher(callerOf(c), req.TeacherName)
	if err != nil {
		return ledgerError(c, err)
	}

	resp := dto.NewTeacherResponse(t)
	appendJournal(ctrl.Journal, ledger.OpRegisterTeacher, journalActor(c), resp)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajar berhasil didaftarkan", resp)
}

/* ===================== LIST ===================== */
// GET /api/teachers?page=&per_page=
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.RosterOpts)
	total := ctrl.Ledger.TeacherCount()
	list := ctrl.Ledger.Teachers(p.Offset(), p.PerPage)

	return helper.Success(c, "Daftar pengajar", fiber.Map{
		"teachers":   dto.NewTeacherResponses(list),
		"pagination": helper.BuildPageMeta(p, total),
	})
}

/* ===================== DETAIL ===================== */
// GET /api/teachers/:name
func (ctrl *TeacherController) GetTeacher(c *fiber.Ctx) error {
	name, err := decodeNameParam(c)
	if err != nil {
		return err
	}
	t, ok := ctrl.Ledger.Teacher(name)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
	}
	return helper.Success(c, "Detail pengajar", dto.NewTeacherResponse(t))
}
