package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/configs"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/ledger"
	authMiddleware "absensiku_backend/internals/middlewares/auth"
)

type envelope struct {
	Code    int               `json:"code"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestApp(authz ledger.Authorizer) *fiber.App {
	app := fiber.New()
	api := app.Group("/api", authMiddleware.AuthMiddleware())
	AttendanceRoutes(api, ledger.New(authz), service.New(nil))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s decode: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func TestAttendanceAPIEndToEnd(t *testing.T) {
	app := newTestApp(ledger.OpenPolicy{})

	// registrasi siswa + duplikat
	status, _ := doJSON(t, app, http.MethodPost, "/api/students", fiber.Map{"student_name": "Alice"}, "")
	if status != http.StatusCreated {
		t.Fatalf("register Alice status = %d, want 201", status)
	}
	status, env := doJSON(t, app, http.MethodPost, "/api/students", fiber.Map{"student_name": "Alice"}, "")
	if status != http.StatusConflict || env.Errors["kind"] != "AlreadyRegistered" {
		t.Fatalf("duplicate register = (%d, %v), want 409 AlreadyRegistered", status, env.Errors)
	}
	if status, _ = doJSON(t, app, http.MethodPost, "/api/students", fiber.Map{"student_name": "Bob"}, ""); status != http.StatusCreated {
		t.Fatalf("register Bob status = %d, want 201", status)
	}

	// sesi dengan pengajar belum terdaftar → tidak ada mutasi counter
	status, env = doJSON(t, app, http.MethodPost, "/api/sessions",
		fiber.Map{"session_name": "Algo 101", "session_teacher_name": "Dr. Lee"}, "")
	if status != http.StatusBadRequest || env.Errors["kind"] != "TeacherNotRegistered" {
		t.Fatalf("session with ghost teacher = (%d, %v), want 400 TeacherNotRegistered", status, env.Errors)
	}
	_, env = doJSON(t, app, http.MethodGet, "/api/sessions/count", nil, "")
	var countData struct {
		SessionCount uint64 `json:"session_count"`
	}
	mustUnmarshal(t, env.Data, &countData)
	if countData.SessionCount != 0 {
		t.Fatalf("session count setelah create gagal = %d, want 0", countData.SessionCount)
	}

	// pengajar + sesi
	if status, _ = doJSON(t, app, http.MethodPost, "/api/teachers", fiber.Map{"teacher_name": "Dr. Lee"}, ""); status != http.StatusCreated {
		t.Fatalf("register teacher status = %d, want 201", status)
	}
	status, env = doJSON(t, app, http.MethodPost, "/api/sessions",
		fiber.Map{"session_name": "Algo 101", "session_teacher_name": "Dr. Lee"}, "")
	if status != http.StatusCreated {
		t.Fatalf("create session status = %d, want 201", status)
	}
	var sessionData struct {
		SessionId          uint64 `json:"session_id"`
		SessionTeacherName string `json:"session_teacher_name"`
	}
	mustUnmarshal(t, env.Data, &sessionData)
	if sessionData.SessionId != 1 || sessionData.SessionTeacherName != "Dr. Lee" {
		t.Fatalf("session = %+v, want id 1 teacher Dr. Lee", sessionData)
	}

	// mark Alice, lalu duplikat, lalu siswa tak dikenal
	status, env = doJSON(t, app, http.MethodPost, "/api/attendance",
		fiber.Map{"attendance_session_id": 1, "attendance_student_name": "Alice"}, "")
	if status != http.StatusCreated {
		t.Fatalf("mark Alice status = %d, want 201", status)
	}
	var markData struct {
		StudentAttendanceCount uint64 `json:"student_attendance_count"`
	}
	mustUnmarshal(t, env.Data, &markData)
	if markData.StudentAttendanceCount != 1 {
		t.Fatalf("count after mark = %d, want 1", markData.StudentAttendanceCount)
	}

	status, env = doJSON(t, app, http.MethodPost, "/api/attendance",
		fiber.Map{"attendance_session_id": 1, "attendance_student_name": "Alice"}, "")
	if status != http.StatusConflict || env.Errors["kind"] != "AlreadyMarked" {
		t.Fatalf("re-mark = (%d, %v), want 409 AlreadyMarked", status, env.Errors)
	}

	status, env = doJSON(t, app, http.MethodPost, "/api/attendance",
		fiber.Map{"attendance_session_id": 1, "attendance_student_name": "Carol"}, "")
	if status != http.StatusBadRequest || env.Errors["kind"] != "StudentNotRegistered" {
		t.Fatalf("mark Carol = (%d, %v), want 400 StudentNotRegistered", status, env.Errors)
	}

	status, env = doJSON(t, app, http.MethodPost, "/api/attendance",
		fiber.Map{"attendance_session_id": 99, "attendance_student_name": "Alice"}, "")
	if status != http.StatusBadRequest || env.Errors["kind"] != "InvalidSession" {
		t.Fatalf("mark invalid session = (%d, %v), want 400 InvalidSession", status, env.Errors)
	}

	// status & count query
	_, env = doJSON(t, app, http.MethodGet, "/api/attendance/status?session_id=1&student_name=Alice", nil, "")
	var statusData struct {
		AttendanceIsPresent bool `json:"attendance_is_present"`
	}
	mustUnmarshal(t, env.Data, &statusData)
	if !statusData.AttendanceIsPresent {
		t.Fatal("Alice tidak tercatat hadir lewat API")
	}

	_, env = doJSON(t, app, http.MethodGet, "/api/students/Alice/attendance", nil, "")
	var attData struct {
		StudentAttendanceCount uint64 `json:"student_attendance_count"`
	}
	mustUnmarshal(t, env.Data, &attData)
	if attData.StudentAttendanceCount != 1 {
		t.Fatalf("attendance count via API = %d, want 1", attData.StudentAttendanceCount)
	}

	// roster paging urut registrasi
	_, env = doJSON(t, app, http.MethodGet, "/api/students?page=1&per_page=1", nil, "")
	var listData struct {
		Students []struct {
			StudentName string `json:"student_name"`
		} `json:"students"`
	}
	mustUnmarshal(t, env.Data, &listData)
	if len(listData.Students) != 1 || listData.Students[0].StudentName != "Alice" {
		t.Fatalf("page 1 roster = %+v, want [Alice]", listData.Students)
	}

	// lookup yang tidak ada → 404
	if status, _ = doJSON(t, app, http.MethodGet, "/api/students/Carol", nil, ""); status != http.StatusNotFound {
		t.Fatalf("unknown student status = %d, want 404", status)
	}
	if status, _ = doJSON(t, app, http.MethodGet, "/api/sessions/42", nil, ""); status != http.StatusNotFound {
		t.Fatalf("unknown session status = %d, want 404", status)
	}
}

func TestAttendanceAPIOwnerMode(t *testing.T) {
	prevSecret := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	defer func() { configs.JWTSecret = prevSecret }()

	app := newTestApp(ledger.OwnerPolicy{Owner: "admin"})

	// anonim ditolak tanpa mutasi
	status, env := doJSON(t, app, http.MethodPost, "/api/students", fiber.Map{"student_name": "Alice"}, "")
	if status != http.StatusForbidden || env.Errors["kind"] != "NotAuthorized" {
		t.Fatalf("anonymous write = (%d, %v), want 403 NotAuthorized", status, env.Errors)
	}

	// caller lain juga ditolak
	intruderToken, err := helper.IssueCallerToken(configs.JWTSecret, "intruder", time.Minute)
	if err != nil {
		t.Fatalf("issue intruder token: %v", err)
	}
	if status, _ = doJSON(t, app, http.MethodPost, "/api/students", fiber.Map{"student_name": "Alice"}, intruderToken); status != http.StatusForbidden {
		t.Fatalf("intruder write status = %d, want 403", status)
	}

	// owner boleh
	ownerToken, err := helper.IssueCallerToken(configs.JWTSecret, "admin", time.Minute)
	if err != nil {
		t.Fatalf("issue owner token: %v", err)
	}
	if status, _ = doJSON(t, app, http.MethodPost, "/api/students", fiber.Map{"student_name": "Alice"}, ownerToken); status != http.StatusCreated {
		t.Fatalf("owner write status = %d, want 201", status)
	}

	// read tetap terbuka untuk anonim
	if status, _ = doJSON(t, app, http.MethodGet, "/api/students/Alice", nil, ""); status != http.StatusOK {
		t.Fatalf("anonymous read status = %d, want 200", status)
	}
}

func TestAttendanceAPIValidation(t *testing.T) {
	app := newTestApp(ledger.OpenPolicy{})

	status, _ := doJSON(t, app, http.MethodPost, "/api/students", fiber.Map{"student_name": ""}, "")
	if status != http.StatusBadRequest {
		t.Fatalf("empty name status = %d, want 400", status)
	}
	status, _ = doJSON(t, app, http.MethodPost, "/api/attendance",
		fiber.Map{"attendance_session_id": 0, "attendance_student_name": "Alice"}, "")
	if status != http.StatusBadRequest {
		t.Fatalf("session id 0 status = %d, want 400", status)
	}
}

func mustUnmarshal(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("unmarshal %s: %v", string(raw), err)
	}
}
