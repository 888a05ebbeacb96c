package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/ledger"
	authmw "absensiku_backend/internals/middlewares/auth"
)

// ledgerError memetakan error taksonomi ledger ke response HTTP dengan
// kind yang bisa dibaca UI. Pesan untuk pengguna, detail ke log.
func ledgerError(c *fiber.Ctx, err error) error {
	kind := ledger.Kind(err)
	status := fiber.StatusBadRequest
	msg := "Permintaan tidak valid"

	switch {
	case errors.Is(err, ledger.ErrNotAuthorized):
		status, msg = fiber.StatusForbidden, "Tidak berwenang melakukan operasi ini"
	case errors.Is(err, ledger.ErrAlreadyRegistered):
		status, msg = fiber.StatusConflict, "Nama sudah terdaftar"
	case errors.Is(err, ledger.ErrAlreadyMarked):
		status, msg = fiber.StatusConflict, "Kehadiran sudah pernah ditandai"
	case errors.Is(err, ledger.ErrTeacherNotRegistered):
		msg = "Pengajar belum terdaftar"
	case errors.Is(err, ledger.ErrStudentNotRegistered):
		msg = "Siswa belum terdaftar"
	case errors.Is(err, ledger.ErrInvalidSession):
		msg = "Sesi tidak valid (id di luar jangkauan)"
	case errors.Is(err, ledger.ErrInvalidName):
		msg = "Nama tidak boleh kosong"
	default:
		log.Printf("[ERROR] ledger error tak terduga: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.ErrorWithKind(c, status, msg, kind)
}

// callerOf: identitas caller dari token (kosong = anonim).
func callerOf(c *fiber.Ctx) string {
	return authmw.CallerName(c)
}

// journalActor: nilai actor yang dicatat di jurnal.
func journalActor(c *fiber.Ctx) string {
	if name := callerOf(c); name != "" {
		return name
	}
	return "anonim"
}

// appendJournal mencatat write yang sudah commit. Ledger in-memory tetap
// otoritatif: gagal tulis jurnal hanya di-log, tidak membatalkan request.
func appendJournal(j *service.JournalService, op ledger.Operation, actor string, payload interface{}) {
	if !j.Enabled() {
		return
	}
	if _, err := j.Append(string(op), actor, payload); err != nil {
		log.Printf("[ERROR] Gagal tulis jurnal op=%s: %v", op, err)
	}
}
