package controller

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/dto"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/ledger"
)

type StudentController struct {
	Ledger   *ledger.Ledger
	Journal  *service.JournalService
	validate *validator.Validate
}

func NewStudentController(l *ledger.Ledger, j *service.JournalService) *StudentController {
	return &StudentController{Ledger: l, Journal: j, validate: validator.New()}
}

/* ===================== REGISTER ===================== */
// POST /api/students
func (ctrl *StudentController) RegisterStudent(c *fiber.Ctx) error {
	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	s, err := ctrl.Ledger.RegisterStudent(callerOf(c), req.StudentName)
	if err != nil {
		return ledgerError(c, err)
	}

	resp := dto.NewStudentResponse(s)
	appendJournal(ctrl.Journal, ledger.OpRegisterStudent, journalActor(c), resp)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil didaftarkan", resp)
}

/* ===================== LIST ===================== */
// GET /api/students?page=&per_page=
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	p := helper.ParsePage(c, helper.RosterOpts)
	total := ctrl.Ledger.StudentCount()
	list := ctrl.Ledger.Students(p.Offset(), p.PerPage)

	return helper.Success(c, "Daftar siswa", fiber.Map{
		"students":   dto.NewStudentResponses(list),
		"pagination": helper.BuildPageMeta(p, total),
	})
}

/* ===================== DETAIL ===================== */
// GET /api/students/:name
func (ctrl *StudentController) GetStudent(c *fiber.Ctx) error {
	name, err := decodeNameParam(c)
	if err != nil {
		return err
	}
	s, ok := ctrl.Ledger.Student(name)
	if !ok {
		return helper.Error(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.Success(c, "Detail siswa", dto.NewStudentResponse(s))
}

/* ===================== ATTENDANCE COUNT ===================== */
// GET /api/students/:name/attendance
// Total function: nama tak dikenal → count 0, bukan error.
func (ctrl *StudentController) GetStudentAttendanceCount(c *fiber.Ctx) error {
	name, err := decodeNameParam(c)
	if err != nil {
		return err
	}
	return helper.Success(c, "Jumlah kehadiran siswa", fiber.Map{
		"student_name":             name,
		"student_attendance_count": ctrl.Ledger.StudentAttendanceCount(name),
	})
}

// decodeNameParam membaca path param :name (URL-encoded, boleh ada spasi).
func decodeNameParam(c *fiber.Ctx) (string, error) {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Parameter nama tidak valid")
	}
	return name, nil
}
