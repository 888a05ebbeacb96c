package ledger

import "errors"

// Error taksonomi ledger. Semua write yang gagal mengembalikan salah satu
// error di bawah ini tanpa ada mutasi state sama sekali.
var (
	ErrNotAuthorized        = errors.New("not authorized")
	ErrInvalidName          = errors.New("invalid name")
	ErrAlreadyRegistered    = errors.New("already registered")
	ErrTeacherNotRegistered = errors.New("teacher not registered")
	ErrInvalidSession       = errors.New("invalid session")
	ErrStudentNotRegistered = errors.New("student not registered")
	ErrAlreadyMarked        = errors.New("already marked")
)

// Kind mengembalikan nama taksonomi untuk ditampilkan ke klien
// (mis. "AlreadyMarked"), atau "" jika bukan error ledger.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrNotAuthorized):
		return "NotAuthorized"
	case errors.Is(err, ErrInvalidName):
		return "InvalidName"
	case errors.Is(err, ErrAlreadyRegistered):
		return "AlreadyRegistered"
	case errors.Is(err, ErrTeacherNotRegistered):
		return "TeacherNotRegistered"
	case errors.Is(err, ErrInvalidSession):
		return "InvalidSession"
	case errors.Is(err, ErrStudentNotRegistered):
		return "StudentNotRegistered"
	case errors.Is(err, ErrAlreadyMarked):
		return "AlreadyMarked"
	default:
		return ""
	}
}
