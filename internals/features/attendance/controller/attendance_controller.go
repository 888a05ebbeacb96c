package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/dto"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/ledger"
)

type AttendanceController struct {
	Ledger   *ledger.Ledger
	Journal  *service.JournalService
	validate *validator.Validate
}

func NewAttendanceController(l *ledger.Ledger, j *service.JournalService) *AttendanceController {
	return &AttendanceController{Ledger: l, Journal: j, validate: validator.New()}
}

/* ===================== MARK ===================== */
// POST /api/attendance
// Operasi paling kritikal: pengecekan sesi → siswa → duplikat dilakukan
// atomik di dalam ledger, di sini hanya parsing + mapping error.
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	count, err := ctrl.Ledger.MarkAttendance(callerOf(c), req.AttendanceSessionId, req.AttendanceStudentName)
	if err != nil {
		return ledgerError(c, err)
	}

	resp := dto.MarkAttendanceResponse{
		AttendanceSessionId:    req.AttendanceSessionId,
		AttendanceStudentName:  req.AttendanceStudentName,
		StudentAttendanceCount: count,
	}
	appendJournal(ctrl.Journal, ledger.OpMarkAttendance, journalActor(c), resp)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran berhasil ditandai", resp)
}

/* ===================== STATUS ===================== */
// GET /api/attendance/status?session_id=&student_name=
// Query total: id di luar jangkauan atau nama tak dikenal → present=false.
func (ctrl *AttendanceController) GetAttendanceStatus(c *fiber.Ctx) error {
	sessionID, err := strconv.ParseUint(c.Query("session_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query session_id tidak valid")
	}
	studentName := c.Query("student_name")
	if studentName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query student_name tidak valid")
	}

	return helper.Success(c, "Status kehadiran", dto.AttendanceStatusResponse{
		AttendanceSessionId:   sessionID,
		AttendanceStudentName: studentName,
		AttendanceIsPresent:   ctrl.Ledger.Present(sessionID, studentName),
	})
}
