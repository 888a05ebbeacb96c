package dto

import (
	"absensiku_backend/internals/ledger"
)

/* ===================== REQUEST ===================== */

type RegisterStudentRequest struct {
	StudentName string `json:"student_name" validate:"required,max=100"`
}

type RegisterTeacherRequest struct {
	TeacherName string `json:"teacher_name" validate:"required,max=100"`
}

type CreateSessionRequest struct {
	SessionName        string `json:"session_name" validate:"required,max=200"`
	SessionTeacherName string `json:"session_teacher_name" validate:"required,max=100"`
}

type MarkAttendanceRequest struct {
	AttendanceSessionId   uint64 `json:"attendance_session_id" validate:"required,min=1"`
	AttendanceStudentName string `json:"attendance_student_name" validate:"required,max=100"`
}

/* ===================== RESPONSE ===================== */

type StudentResponse struct {
	StudentName            string `json:"student_name"`
	StudentIsRegistered    bool   `json:"student_is_registered"`
	StudentAttendanceCount uint64 `json:"student_attendance_count"`
}

func NewStudentResponse(s ledger.Student) StudentResponse {
	return StudentResponse{
		StudentName:            s.Name,
		StudentIsRegistered:    s.Registered,
		StudentAttendanceCount: s.AttendanceCount,
	}
}

func NewStudentResponses(list []ledger.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

type TeacherResponse struct {
	TeacherName         string `json:"teacher_name"`
	TeacherIsRegistered bool   `json:"teacher_is_registered"`
}

func NewTeacherResponse(t ledger.Teacher) TeacherResponse {
	return TeacherResponse{
		TeacherName:         t.Name,
		TeacherIsRegistered: t.Registered,
	}
}

func NewTeacherResponses(list []ledger.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTeacherResponse(t))
	}
	return out
}

type SessionResponse struct {
	SessionId          uint64 `json:"session_id"`
	SessionName        string `json:"session_name"`
	SessionTeacherName string `json:"session_teacher_name"`
}

func NewSessionResponse(s ledger.Session) SessionResponse {
	return SessionResponse{
		SessionId:          s.ID,
		SessionName:        s.Name,
		SessionTeacherName: s.TeacherName,
	}
}

func NewSessionResponses(list []ledger.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, NewSessionResponse(s))
	}
	return out
}

type AttendanceStatusResponse struct {
	AttendanceSessionId   uint64 `json:"attendance_session_id"`
	AttendanceStudentName string `json:"attendance_student_name"`
	AttendanceIsPresent   bool   `json:"attendance_is_present"`
}

type MarkAttendanceResponse struct {
	AttendanceSessionId    uint64 `json:"attendance_session_id"`
	AttendanceStudentName  string `json:"attendance_student_name"`
	StudentAttendanceCount uint64 `json:"student_attendance_count"`
}
