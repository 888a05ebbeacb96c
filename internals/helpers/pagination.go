package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PageOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Preset =====
var (
	DefaultOpts = PageOptions{DefaultPerPage: 25, MaxPerPage: 200}
	RosterOpts  = PageOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PageParams struct {
	Page    int
	PerPage int
}

// Offset posisi awal (0-based) untuk slice roster.
func (p PageParams) Offset() int { return (p.Page - 1) * p.PerPage }

// ParsePage membaca ?page= & ?per_page= (alias ?limit=) dari query fiber.
func ParsePage(c *fiber.Ctx, opt PageOptions) PageParams {
	return parsePageValues(c.Query("page"), firstNonEmpty(c.Query("per_page"), c.Query("limit")), opt)
}

// parsePageValues: inti murni supaya gampang di-unit-test.
func parsePageValues(pageRaw, perRaw string, opt PageOptions) PageParams {
	page := atoiDefault(pageRaw, DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := opt.DefaultPerPage
	if n, err := strconv.Atoi(strings.TrimSpace(perRaw)); err == nil && n > 0 {
		per = n
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}
	if per < 1 {
		per = opt.DefaultPerPage
	}

	return PageParams{Page: page, PerPage: per}
}

// BuildPageMeta menyusun blok meta pagination untuk response list.
func BuildPageMeta(p PageParams, total int) fiber.Map {
	totalPages := 0
	if total > 0 {
		totalPages = (total + p.PerPage - 1) / p.PerPage
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
