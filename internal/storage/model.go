// Package storage persists the whole account collection as a versioned JSON
// snapshot. It only knows the data shapes, no account business rules live here.
package storage

import (
	"time"

	"github.com/shopspring/decimal"
)

// Meta - snapshot metadata: format name, structure version and creation time.
// Used to reject foreign files and incompatible versions on load.
type Meta struct {
	Format    string    `json:"format"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction - serialized form of one history record.
type Transaction struct {
	ProcessedAt time.Time       `json:"processed_at"`
	Verb        string          `json:"verb"`
	Amount      decimal.Decimal `json:"amount"`
	Success     bool            `json:"success"`
	Balance     decimal.Decimal `json:"balance"`
	Note        string          `json:"note,omitempty"`
}

// Account - serialized form of one account. Carries the stored password
// digest as-is; plaintext never crosses the persistence boundary.
type Account struct {
	UserID       string          `json:"user_id"`
	Login        string          `json:"login"`
	PasswordHash string          `json:"password_hash"`
	Balance      decimal.Decimal `json:"balance"`
	LastLogOn    time.Time       `json:"last_logon"`
	Transactions []Transaction   `json:"transactions"`
}

// Snapshot - the complete persisted state: metadata plus every account with
// its full ordered transaction history.
type Snapshot struct {
	Meta     Meta      `json:"_meta"`
	Accounts []Account `json:"accounts"`
}
