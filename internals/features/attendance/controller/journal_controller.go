package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
)

type JournalController struct {
	Journal *service.JournalService
}

func NewJournalController(j *service.JournalService) *JournalController {
	return &JournalController{Journal: j}
}

/* ===================== LIST ===================== */
// GET /api/journal?page=&per_page=
func (ctrl *JournalController) ListJournal(c *fiber.Ctx) error {
	if !ctrl.Journal.Enabled() {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Jurnal nonaktif (DB tidak dikonfigurasi)")
	}

	p := helper.ParsePage(c, helper.DefaultOpts)
	entries, total, err := ctrl.Journal.List(p.Offset(), p.PerPage)
	if err != nil {
		log.Printf("[ERROR] Gagal baca jurnal: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca jurnal")
	}

	return helper.Success(c, "Entri jurnal", fiber.Map{
		"entries":    entries,
		"pagination": helper.BuildPageMeta(p, int(total)),
	})
}

/* ===================== VERIFY ===================== */
// GET /api/journal/verify — telusuri ulang rantai hash.
func (ctrl *JournalController) VerifyJournal(c *fiber.Ctx) error {
	if !ctrl.Journal.Enabled() {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Jurnal nonaktif (DB tidak dikonfigurasi)")
	}

	checked, err := ctrl.Journal.Verify()
	if err != nil {
		log.Printf("[ERROR] Verifikasi jurnal gagal: %v", err)
		return helper.ErrorWithDetails(c, fiber.StatusConflict, "Rantai jurnal tidak konsisten", fiber.Map{
			"detail": err.Error(),
		})
	}

	return helper.Success(c, "Rantai jurnal konsisten", fiber.Map{
		"entries_checked": checked,
	})
}
