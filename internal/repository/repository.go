package repository

import (
	"context"
	"errors"
	"fmt"
	"lendboard/internal/db"
	"slices"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

type JournalRepository struct {
	db Storage
}

func NewJournalRepository(db Storage) *JournalRepository {
	return &JournalRepository{
		db: db,
	}
}

func (r *JournalRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&Receipt{}, &User{}, &JournalEntry{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
		{
			ID:           uuid.NewString(),
			Username:     "carol",
			PasswordHash: "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
		},
		{
			ID:           uuid.NewString(),
			Username:     "dave",
			PasswordHash: "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG",
		},
	}
	err = r.db.Seed(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *JournalRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *JournalRepository) SaveReceipts(ctx context.Context, receipts []Receipt) error {
	err := r.db.SaveToTable(ctx, &receipts)
	if err != nil {
		return fmt.Errorf("save to table: %w", err)
	}

	return nil
}

func (r *JournalRepository) GetReceiptsByHash(ctx context.Context, txHashes []string) ([]Receipt, error) {
	receipts := []Receipt{}
	if len(txHashes) == 0 {
		return receipts, nil
	}

	err := r.db.GetAllBy(ctx, "transaction_hash", txHashes, &receipts)
	if err != nil {
		return receipts, fmt.Errorf("get receipts by hash: %w", err)
	}

	return receipts, nil
}

func (r *JournalRepository) SaveJournalEntry(ctx context.Context, entry JournalEntry) error {
	entries := []JournalEntry{entry}
	err := r.db.SaveToTable(ctx, &entries)
	if err != nil {
		return fmt.Errorf("save journal entry: %w", err)
	}

	return nil
}

// GetUserJournal returns the operations of userID, newest first.
func (r *JournalRepository) GetUserJournal(ctx context.Context, userID string) ([]JournalEntry, error) {
	entries := []JournalEntry{}

	err := r.db.GetAllBy(ctx, "user_id", userID, &entries)
	if err != nil {
		return nil, fmt.Errorf("get user journal: %w", err)
	}

	slices.SortFunc(entries, func(a, b JournalEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return entries, nil
}
