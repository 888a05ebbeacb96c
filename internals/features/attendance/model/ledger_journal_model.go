package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LedgerJournalModel: jurnal append-only dari write yang sudah commit di
// ledger. Seq monoton naik, Hash membentuk rantai sha256 dengan entri
// sebelumnya sehingga modifikasi/ penghapusan di tengah rantai ketahuan.
type LedgerJournalModel struct {
	LedgerJournalId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ledger_journal_id" json:"ledger_journal_id"`

	LedgerJournalSeq       int64          `gorm:"uniqueIndex;not null;column:ledger_journal_seq"        json:"ledger_journal_seq"`
	LedgerJournalOperation string         `gorm:"not null;column:ledger_journal_operation"              json:"ledger_journal_operation"`
	LedgerJournalActor     string         `gorm:"column:ledger_journal_actor"                           json:"ledger_journal_actor"`
	LedgerJournalPayload   datatypes.JSON `gorm:"not null;column:ledger_journal_payload"                json:"ledger_journal_payload"`

	LedgerJournalPrevHash string `gorm:"not null;column:ledger_journal_prev_hash" json:"ledger_journal_prev_hash"`
	LedgerJournalHash     string `gorm:"not null;column:ledger_journal_hash"      json:"ledger_journal_hash"`

	LedgerJournalCreatedAt time.Time `gorm:"column:ledger_journal_created_at;autoCreateTime" json:"ledger_journal_created_at"`
}

func (LedgerJournalModel) TableName() string { return "ledger_journal_entries" }
