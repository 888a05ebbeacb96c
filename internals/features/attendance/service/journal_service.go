package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"absensiku_backend/internals/features/attendance/model"
)

// GenesisHash: prev_hash entri pertama rantai.
const GenesisHash = "genesis"

type JournalService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *JournalService {
	return &JournalService{DB: db}
}

// Enabled false kalau service jalan tanpa DB (journal nonaktif).
func (s *JournalService) Enabled() bool {
	return s != nil && s.DB != nil
}

// Append menambahkan satu entri jurnal untuk write yang sudah commit.
// Seq dan rantai hash dihitung di dalam satu transaksi; baris terakhir
// dikunci supaya dua append bersamaan tidak memakai prev yang sama.
func (s *JournalService) Append(op, actor string, payload interface{}) (*model.LedgerJournalModel, error) {
	if !s.Enabled() {
		return nil, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	var entry model.LedgerJournalModel
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var last model.LedgerJournalModel
		prevHash := GenesisHash
		var seq int64 = 1

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order("ledger_journal_seq DESC").
			First(&last).Error
		switch {
		case err == nil:
			prevHash = last.LedgerJournalHash
			seq = last.LedgerJournalSeq + 1
		case errors.Is(err, gorm.ErrRecordNotFound):
			// rantai baru
		default:
			return err
		}

		entry = model.LedgerJournalModel{
			LedgerJournalSeq:       seq,
			LedgerJournalOperation: op,
			LedgerJournalActor:     actor,
			LedgerJournalPayload:   raw,
			LedgerJournalPrevHash:  prevHash,
			LedgerJournalHash:      ChainHash(prevHash, seq, op, actor, raw),
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List mengembalikan entri jurnal urut seq naik plus total baris.
func (s *JournalService) List(offset, limit int) ([]model.LedgerJournalModel, int64, error) {
	if !s.Enabled() {
		return nil, 0, nil
	}
	var total int64
	if err := s.DB.Model(&model.LedgerJournalModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var entries []model.LedgerJournalModel
	err := s.DB.Order("ledger_journal_seq ASC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

// Verify menyusuri seluruh rantai dan memastikan seq rapat mulai 1 dan
// setiap hash cocok dengan perhitungan ulang. Mengembalikan jumlah entri
// yang diperiksa.
func (s *JournalService) Verify() (int64, error) {
	if !s.Enabled() {
		return 0, nil
	}

	prevHash := GenesisHash
	var checked int64
	var wantSeq int64 = 1

	batch := make([]model.LedgerJournalModel, 0, 500)
	err := s.DB.Order("ledger_journal_seq ASC").
		FindInBatches(&batch, 500, func(tx *gorm.DB, _ int) error {
			for _, e := range batch {
				if e.LedgerJournalSeq != wantSeq {
					return fmt.Errorf("seq bolong: dapat %d, harusnya %d", e.LedgerJournalSeq, wantSeq)
				}
				if e.LedgerJournalPrevHash != prevHash {
					return fmt.Errorf("prev_hash putus di seq %d", e.LedgerJournalSeq)
				}
				want := ChainHash(prevHash, e.LedgerJournalSeq, e.LedgerJournalOperation, e.LedgerJournalActor, e.LedgerJournalPayload)
				if e.LedgerJournalHash != want {
					return fmt.Errorf("hash tidak cocok di seq %d", e.LedgerJournalSeq)
				}
				prevHash = e.LedgerJournalHash
				wantSeq++
				checked++
			}
			return nil
		}).Error
	return checked, err
}

// ChainHash: sha256 atas (prev hash, seq, op, actor, payload) dengan
// separator eksplisit supaya field tidak bisa saling "bocor".
func ChainHash(prevHash string, seq int64, op, actor string, payload []byte) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s|", prevHash, seq, op, actor)
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
