package route

import (
	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/controller"
	"absensiku_backend/internals/features/attendance/service"
	"absensiku_backend/internals/ledger"
)

// AttendanceRoutes memasang seluruh endpoint ledger di bawah group api
// (group sudah membawa auth middleware dari SetupRoutes).
func AttendanceRoutes(api fiber.Router, l *ledger.Ledger, j *service.JournalService) {
	studentCtrl := controller.NewStudentController(l, j)
	teacherCtrl := controller.NewTeacherController(l, j)
	sessionCtrl := controller.NewSessionController(l, j)
	attendanceCtrl := controller.NewAttendanceController(l, j)
	journalCtrl := controller.NewJournalController(j)

	// ===================== STUDENTS =====================
	students := api.Group("/students")
	students.Post("/", studentCtrl.RegisterStudent)
	students.Get("/", studentCtrl.ListStudents)
	students.Get("/:name", studentCtrl.GetStudent)
	students.Get("/:name/attendance", studentCtrl.GetStudentAttendanceCount)

	// ===================== TEACHERS =====================
	teachers := api.Group("/teachers")
	teachers.Post("/", teacherCtrl.RegisterTeacher)
	teachers.Get("/", teacherCtrl.ListTeachers)
	teachers.Get("/:name", teacherCtrl.GetTeacher)

	// ===================== SESSIONS =====================
	sessions := api.Group("/sessions")
	sessions.Post("/", sessionCtrl.CreateSession)
	sessions.Get("/", sessionCtrl.ListSessions)
	sessions.Get("/count", sessionCtrl.GetSessionCount)
	sessions.Get("/:id", sessionCtrl.GetSession)

	// ===================== ATTENDANCE =====================
	attendance := api.Group("/attendance")
	attendance.Post("/", attendanceCtrl.MarkAttendance)
	attendance.Get("/status", attendanceCtrl.GetAttendanceStatus)

	// ===================== JOURNAL =====================
	journal := api.Group("/journal")
	journal.Get("/", journalCtrl.ListJournal)
	journal.Get("/verify", journalCtrl.VerifyJournal)
}
