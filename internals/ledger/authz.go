package ledger

// Operation adalah nama operasi write yang dicek ke Authorizer.
type Operation string

const (
	OpRegisterStudent Operation = "register_student"
	OpRegisterTeacher Operation = "register_teacher"
	OpCreateSession   Operation = "create_session"
	OpMarkAttendance  Operation = "mark_attendance"
)

// Authorizer adalah hook otorisasi yang bisa ditukar per deployment.
// Dipanggil paling awal oleh setiap operasi write; kalau false, operasi
// gagal ErrNotAuthorized tanpa menyentuh state. Logika transisi state
// tidak perlu diubah untuk mengganti kebijakan.
type Authorizer interface {
	Authorized(op Operation, caller string) bool
}

// OpenPolicy: mode self-registration. Siapa pun (termasuk caller anonim)
// boleh menjalankan semua operasi write; precondition referensial tetap
// dicek oleh ledger.
type OpenPolicy struct{}

func (OpenPolicy) Authorized(Operation, string) bool { return true }

// OwnerPolicy: mode lama yang di-gate owner. Hanya caller dengan nama
// persis sama dengan Owner yang boleh write. Owner kosong berarti tidak
// ada yang lolos (fail closed).
type OwnerPolicy struct {
	Owner string
}

func (p OwnerPolicy) Authorized(_ Operation, caller string) bool {
	return p.Owner != "" && caller == p.Owner
}
