//go:generate go run go.uber.org/mock/mockgen -source=provision.go -destination=../mocks/mock_provision_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IProvisionRepository interface {
	StoreProvision(record ProvisionRecord) error
	ListProvisions(guildID string, limit int) ([]ProvisionRecord, error)
}

type ProvisionStatus string

const (
	ProvisionDone   ProvisionStatus = "done"
	ProvisionFailed ProvisionStatus = "failed"
)

// ProvisionRecord is the audit trail of one finished request interaction.
type ProvisionRecord struct {
	ID          uuid.UUID       `json:"id"`
	GuildID     string          `json:"guild_id"`
	RequesterID string          `json:"requester_id"`
	ChannelID   string          `json:"channel_id,omitempty"`
	ChannelName string          `json:"channel_name"`
	Status      ProvisionStatus `json:"status"`
	Added       []string        `json:"added,omitempty"`
	Invalid     []string        `json:"invalid,omitempty"`
	Error       string          `json:"error,omitempty"`
	At          time.Time       `json:"at"`
}

type ProvisionRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewProvisionRepository(db *badger.DB, log *slog.Logger) ProvisionRepository {
	return ProvisionRepository{db: db, log: log}
}

// StoreProvision persists a record in BadgerDB.
// The key is formatted as "provision:{guild_id}:{timestamp_padded}:{uuid}" to:
//  1. Keep a guild's records together and chronologically sorted (19-digit zero padding).
//  2. Avoid collisions when two interactions finish at the same nanosecond.
func (r ProvisionRepository) StoreProvision(record ProvisionRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	key := fmt.Sprintf("provision:%s:%019d:%s", record.GuildID, record.At.UnixNano(), record.ID)
	bytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListProvisions returns the most recent records of a guild, newest first.
// A limit of zero or less returns every record.
func (r ProvisionRepository) ListProvisions(guildID string, limit int) ([]ProvisionRecord, error) {
	var records []ProvisionRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("provision:%s:", guildID))
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest possible key of the prefix
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999~")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(records) == limit {
				r.log.Debug(fmt.Sprintf("Maximum of %d records reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var record ProvisionRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}
