// Package ledger menyimpan state otoritatif absensi: registry siswa &
// pengajar, daftar sesi, dan relasi kehadiran (sessionId, studentName).
// Semua write diserialisasi lewat satu mutex sehingga setiap operasi
// commit penuh atau tidak sama sekali; semua pengecekan precondition
// dilakukan sebelum mutasi pertama.
package ledger

import (
	"strings"
	"sync"
)

// Student adalah record siswa. Name unik di registry siswa.
type Student struct {
	Name            string
	Registered      bool
	AttendanceCount uint64
}

// Teacher adalah record pengajar. Name unik di registry pengajar.
type Teacher struct {
	Name       string
	Registered bool
}

// Session immutable setelah dibuat; ID berurutan mulai dari 1, tidak
// pernah dipakai ulang. TeacherName menunjuk pengajar yang terdaftar
// pada saat sesi dibuat.
type Session struct {
	ID          uint64
	Name        string
	TeacherName string
}

type presenceKey struct {
	SessionID   uint64
	StudentName string
}

// Ledger memegang seluruh state secara eksklusif; tidak ada global.
type Ledger struct {
	mu    sync.RWMutex
	authz Authorizer

	students     map[string]*Student
	studentNames []string // urutan registrasi, untuk enumerasi/paging

	teachers     map[string]*Teacher
	teacherNames []string

	sessions []Session // index i menyimpan sesi ber-ID i+1

	attendance map[presenceKey]bool
}

// New membuat ledger kosong. authz nil dianggap OpenPolicy.
func New(authz Authorizer) *Ledger {
	if authz == nil {
		authz = OpenPolicy{}
	}
	return &Ledger{
		authz:      authz,
		students:   make(map[string]*Student),
		teachers:   make(map[string]*Teacher),
		attendance: make(map[presenceKey]bool),
	}
}

func validName(name string) bool {
	return strings.TrimSpace(name) != ""
}

/* ===================== WRITES ===================== */

// RegisterStudent mendaftarkan siswa baru bernama name.
func (l *Ledger) RegisterStudent(caller, name string) (Student, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.authz.Authorized(OpRegisterStudent, caller) {
		return Student{}, ErrNotAuthorized
	}
	if !validName(name) {
		return Student{}, ErrInvalidName
	}
	if _, ada := l.students[name]; ada {
		return Student{}, ErrAlreadyRegistered
	}

	s := &Student{Name: name, Registered: true}
	l.students[name] = s
	l.studentNames = append(l.studentNames, name)
	return *s, nil
}

// RegisterTeacher mendaftarkan pengajar baru bernama name.
func (l *Ledger) RegisterTeacher(caller, name string) (Teacher, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.authz.Authorized(OpRegisterTeacher, caller) {
		return Teacher{}, ErrNotAuthorized
	}
	if !validName(name) {
		return Teacher{}, ErrInvalidName
	}
	if _, ada := l.teachers[name]; ada {
		return Teacher{}, ErrAlreadyRegistered
	}

	t := &Teacher{Name: name, Registered: true}
	l.teachers[name] = t
	l.teacherNames = append(l.teacherNames, name)
	return *t, nil
}

// CreateSession membuat sesi baru dan mengembalikan record-nya (ID =
// counter setelah increment). name disimpan verbatim tanpa normalisasi.
func (l *Ledger) CreateSession(caller, name, teacherName string) (Session, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.authz.Authorized(OpCreateSession, caller) {
		return Session{}, ErrNotAuthorized
	}
	if _, ada := l.teachers[teacherName]; !ada {
		return Session{}, ErrTeacherNotRegistered
	}

	s := Session{
		ID:          uint64(len(l.sessions)) + 1,
		Name:        name,
		TeacherName: teacherName,
	}
	l.sessions = append(l.sessions, s)
	return s, nil
}

// MarkAttendance menandai siswa hadir pada satu sesi, maksimal sekali per
// pasangan. Urutan pengecekan: otorisasi, sesi valid, siswa terdaftar,
// belum pernah ditandai. Mengembalikan attendanceCount siswa sesudahnya.
func (l *Ledger) MarkAttendance(caller string, sessionID uint64, studentName string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.authz.Authorized(OpMarkAttendance, caller) {
		return 0, ErrNotAuthorized
	}
	if sessionID < 1 || sessionID > uint64(len(l.sessions)) {
		return 0, ErrInvalidSession
	}
	s, ada := l.students[studentName]
	if !ada {
		return 0, ErrStudentNotRegistered
	}
	key := presenceKey{SessionID: sessionID, StudentName: studentName}
	if l.attendance[key] {
		return 0, ErrAlreadyMarked
	}

	l.attendance[key] = true
	s.AttendanceCount++
	return s.AttendanceCount, nil
}

/* ===================== READS ===================== */
// Semua read total: key yang tidak dikenal menghasilkan found=false /
// nilai nol yang terdefinisi, tidak pernah error.

// Student mengembalikan record siswa dan flag ketemu.
func (l *Ledger) Student(name string) (Student, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ada := l.students[name]
	if !ada {
		return Student{}, false
	}
	return *s, true
}

// Teacher mengembalikan record pengajar dan flag ketemu.
func (l *Ledger) Teacher(name string) (Teacher, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	t, ada := l.teachers[name]
	if !ada {
		return Teacher{}, false
	}
	return *t, true
}

// Session mengembalikan sesi ber-ID id; found=false untuk id di luar
// [1, SessionCount].
func (l *Ledger) Session(id uint64) (Session, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if id < 1 || id > uint64(len(l.sessions)) {
		return Session{}, false
	}
	return l.sessions[id-1], true
}

func (l *Ledger) StudentCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.studentNames)
}

func (l *Ledger) TeacherCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.teacherNames)
}

// SessionCount = nilai counter sesi saat ini (jumlah sesi yang pernah
// berhasil dibuat).
func (l *Ledger) SessionCount() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return uint64(len(l.sessions))
}

// StudentNameAt mengembalikan nama siswa pada posisi i (urutan
// registrasi, 0-based).
func (l *Ledger) StudentNameAt(i int) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.studentNames) {
		return "", false
	}
	return l.studentNames[i], true
}

// TeacherNameAt mengembalikan nama pengajar pada posisi i.
func (l *Ledger) TeacherNameAt(i int) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.teacherNames) {
		return "", false
	}
	return l.teacherNames[i], true
}

// Students mengembalikan slice roster siswa [offset, offset+limit) dalam
// urutan registrasi. Di luar range → slice kosong.
func (l *Ledger) Students(offset, limit int) []Student {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if offset < 0 || limit <= 0 || offset >= len(l.studentNames) {
		return nil
	}
	end := offset + limit
	if end > len(l.studentNames) {
		end = len(l.studentNames)
	}
	out := make([]Student, 0, end-offset)
	for _, name := range l.studentNames[offset:end] {
		out = append(out, *l.students[name])
	}
	return out
}

// Teachers analog dengan Students.
func (l *Ledger) Teachers(offset, limit int) []Teacher {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if offset < 0 || limit <= 0 || offset >= len(l.teacherNames) {
		return nil
	}
	end := offset + limit
	if end > len(l.teacherNames) {
		end = len(l.teacherNames)
	}
	out := make([]Teacher, 0, end-offset)
	for _, name := range l.teacherNames[offset:end] {
		out = append(out, *l.teachers[name])
	}
	return out
}

// Sessions mengembalikan sesi [offset, offset+limit) urut ID.
func (l *Ledger) Sessions(offset, limit int) []Session {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if offset < 0 || limit <= 0 || offset >= len(l.sessions) {
		return nil
	}
	end := offset + limit
	if end > len(l.sessions) {
		end = len(l.sessions)
	}
	out := make([]Session, end-offset)
	copy(out, l.sessions[offset:end])
	return out
}

// Present menjawab apakah pasangan (sessionID, studentName) sudah
// ditandai hadir. Selalu terdefinisi; id di luar range → false.
func (l *Ledger) Present(sessionID uint64, studentName string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.attendance[presenceKey{SessionID: sessionID, StudentName: studentName}]
}

// StudentAttendanceCount mengembalikan counter kehadiran siswa; 0 untuk
// nama yang tidak dikenal.
func (l *Ledger) StudentAttendanceCount(name string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if s, ada := l.students[name]; ada {
		return s.AttendanceCount
	}
	return 0
}
