package storage

import (
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRecord is the key-value row a persisted collection lives in. One
// row per (entity kind, user id) pair; the value is the JSON-serialized
// full collection.
type UserRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(128)"`
	Value     string `gorm:"type:text"`
	UpdatedAt time.Time
}

// GORMStore is a GORM-backed implementation of RecordStore. It is the
// durable stand-in for browser local storage; like it, writes are
// best-effort and failures are absorbed.
type GORMStore struct {
	db *gorm.DB
}

// NewGORMStore creates a new instance of GORMStore.
func NewGORMStore(db *gorm.DB) *GORMStore {
	return &GORMStore{
		db: db,
	}
}

// Load unmarshals the collection stored under the namespaced key into
// out. Missing rows, read errors, and corrupt payloads all leave out
// untouched.
func (s *GORMStore) Load(kind Kind, userID string, out interface{}) {
	var record UserRecord
	if err := s.db.First(&record, "key = ?", Key(kind, userID)).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("storage: failed to load %s: %v", Key(kind, userID), err)
		}
		return
	}
	if err := json.Unmarshal([]byte(record.Value), out); err != nil {
		log.Printf("storage: discarding corrupt record %s: %v", Key(kind, userID), err)
	}
}

// Save upserts the full collection under the namespaced key. Write
// failures are logged and dropped, never returned.
func (s *GORMStore) Save(kind Kind, userID string, collection interface{}) {
	raw, err := json.Marshal(collection)
	if err != nil {
		log.Printf("storage: failed to serialize %s: %v", Key(kind, userID), err)
		return
	}

	record := UserRecord{Key: Key(kind, userID), Value: string(raw)}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		log.Printf("storage: failed to save %s: %v", Key(kind, userID), err)
	}
}
