package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/sentence-chain/domain"
	"github.com/Guyuepp/sentence-chain/internal/repository/db/model"
)

type store struct {
	DB *gorm.DB
}

var _ domain.Store = (*store)(nil)

// NewStore 创建基于 gorm 的键值存储
func NewStore(db *gorm.DB) *store {
	return &store{db}
}

// Migrate creates the entry table when missing.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Entry{})
}

func (s *store) Get(ctx context.Context, profile, key string) ([]byte, error) {
	var entry model.Entry
	err := s.DB.WithContext(ctx).
		Where("profile = ? AND entry_key = ?", profile, key).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrKeyNotFound
	} else if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (s *store) Set(ctx context.Context, profile, key string, value []byte) error {
	entry := model.Entry{
		Profile: profile,
		Key:     key,
		Value:   value,
	}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		UpdateAll: true,
	}).Create(&entry).Error
}

func (s *store) Del(ctx context.Context, profile, key string) error {
	return s.DB.WithContext(ctx).
		Where("profile = ? AND entry_key = ?", profile, key).
		Delete(&model.Entry{}).Error
}
