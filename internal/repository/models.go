package repository

import "time"

// Receipt is the stored on-chain summary of a transaction.
type Receipt struct {
	TransactionHash   string  `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	TransactionStatus uint64  `gorm:"not null"`                     // 1 (success) or 0 (failure)
	BlockHash         string  `gorm:"size:66;not null"`
	BlockNumber       uint64  `gorm:"not null;index"`
	From              string  `gorm:"size:42;not null"`
	To                *string `gorm:"size:42"`
	GasUsed           uint64  `gorm:"not null;default:0"`
	LogsCount         int     `gorm:"not null;default:0"`
	Input             string  `gorm:"type:text;not null"`
	Value             string  `gorm:"size:100;not null"` // wei
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// JournalEntry is a lending operation submitted by a user.
type JournalEntry struct {
	ID              string    `gorm:"primaryKey;autoIncrement:false"`
	UserID          string    `gorm:"size:36;index;not null"`
	Kind            string    `gorm:"size:16;not null"`
	TransactionHash string    `gorm:"size:66;index;not null"`
	Market          string    `gorm:"size:42;not null"`
	Currency        string    `gorm:"size:42;not null"`
	Amount          string    `gorm:"size:100;not null"` // decimal or "max"
	Sender          string    `gorm:"size:42;not null"`
	ChainID         int64     `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null;index"`
}
