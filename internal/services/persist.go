package services

import (
	"fmt"
	"time"

	"github.com/akulinov/passbook/internal/logger"
	"github.com/akulinov/passbook/internal/models"
	"github.com/akulinov/passbook/internal/storage"
)

// Save - writes the whole account collection to path. An empty collection is
// rejected; in-memory state is left untouched regardless of outcome.
func (m *Manager) Save(path string) (string, error) {
	if len(m.accounts) == 0 {
		logger.Warn("Save with no accounts")
		return "", ErrNothingToSave
	}

	if err := m.store.Save(path, m.snapshot()); err != nil {
		logger.Error("Failed to save accounts:", err)
		return "", fmt.Errorf("save accounts: %w", err)
	}

	logger.Info("Saved accounts:", len(m.accounts), path)
	return fmt.Sprintf("saved %d account(s) to %s", len(m.accounts), path), nil
}

// Load - replaces the whole account collection with the snapshot at path and
// drops the active session. Never merges; on any failure the collection and
// the session are exactly as they were before the call.
func (m *Manager) Load(path string) (string, error) {
	snap, err := m.store.Load(path)
	if err != nil {
		logger.Error("Failed to load accounts:", err)
		return "", fmt.Errorf("load accounts: %w", err)
	}

	accounts := make(map[string]*models.Account, len(snap.Accounts))
	for _, pa := range snap.Accounts {
		accounts[pa.Login] = restoreAccount(pa)
	}
	m.accounts = accounts
	m.session = nil

	logger.Info("Loaded accounts:", len(m.accounts), path)
	return fmt.Sprintf("loaded %d account(s) from %s", len(m.accounts), path), nil
}

// snapshot converts the collection into its persisted shape.
func (m *Manager) snapshot() storage.Snapshot {
	snap := storage.Snapshot{
		Meta:     storage.Meta{CreatedAt: time.Now()},
		Accounts: make([]storage.Account, 0, len(m.accounts)),
	}
	for _, account := range m.accounts {
		snap.Accounts = append(snap.Accounts, persistAccount(account))
	}
	return snap
}

func persistAccount(account *models.Account) storage.Account {
	pa := storage.Account{
		UserID:       account.UserID,
		Login:        account.Login,
		PasswordHash: account.PasswordHash,
		Balance:      account.Balance,
		LastLogOn:    account.LastLogOn,
		Transactions: make([]storage.Transaction, 0, len(account.Transactions)),
	}
	for _, t := range account.Transactions {
		pa.Transactions = append(pa.Transactions, storage.Transaction{
			ProcessedAt: t.ProcessedAt,
			Verb:        t.Verb,
			Amount:      t.Amount,
			Success:     t.Success,
			Balance:     t.Balance,
			Note:        t.Note,
		})
	}
	return pa
}

// restoreAccount rebuilds an account from its persisted shape. The stored
// digest is taken verbatim, nothing is ever re-hashed on load.
func restoreAccount(pa storage.Account) *models.Account {
	account := &models.Account{
		UserID:       pa.UserID,
		Login:        pa.Login,
		PasswordHash: pa.PasswordHash,
		Balance:      pa.Balance,
		LastLogOn:    pa.LastLogOn,
		Transactions: make([]models.Transaction, 0, len(pa.Transactions)),
	}
	for _, t := range pa.Transactions {
		account.Transactions = append(account.Transactions, models.Transaction{
			ProcessedAt: t.ProcessedAt,
			Verb:        t.Verb,
			Amount:      t.Amount,
			Success:     t.Success,
			Balance:     t.Balance,
			Note:        t.Note,
		})
	}
	return account
}
