package credentials

import (
	"context"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stocklink-lite/internal/domain"
)

// credential is one row of the local key-value table, the same shape the
// mobile build keeps in AsyncStorage.
type credential struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

func (credential) TableName() string { return "credentials" }

// SQLiteStore keeps the token pair in a local SQLite file.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens and migrates the credential database at path. Tests use
// ":memory:".
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	if err := db.AutoMigrate(&credential{}); err != nil {
		return nil, &StorageError{Op: "migrate", Err: err}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context) (domain.Session, error) {
	var rows []credential
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return domain.Session{}, &StorageError{Op: "get", Err: err}
	}
	var out domain.Session
	for _, r := range rows {
		switch r.Key {
		case keyAccessToken:
			out.AccessToken = r.Value
		case keyRefreshToken:
			out.RefreshToken = r.Value
		}
	}
	return out, nil
}

// Set writes both tokens in one transaction so the pair is never half-set.
func (s *SQLiteStore) Set(ctx context.Context, sess domain.Session) error {
	rows := []credential{
		{Key: keyAccessToken, Value: sess.AccessToken},
		{Key: keyRefreshToken, Value: sess.RefreshToken},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &StorageError{Op: "set", Err: err}
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&credential{}).Error; err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
