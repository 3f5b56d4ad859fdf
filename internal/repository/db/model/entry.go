package model

import "time"

// Entry is one record of a profile's key-value namespace
type Entry struct {
	Profile   string    `gorm:"primaryKey;type:varchar(64)"`
	Key       string    `gorm:"primaryKey;column:entry_key;type:varchar(64)"`
	Value     []byte    `gorm:"type:longblob;not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Entry) TableName() string {
	return "story_entries"
}
