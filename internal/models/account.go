package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/akulinov/passbook/internal/password"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction verbs
const (
	VerbDeposit    = "deposit"
	VerbWithdrawal = "withdrawal"
)

var (
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")
)

// Transaction - one record of a balance-affecting (or rejected) operation.
// Records are append-only and never edited after creation.
type Transaction struct {
	ProcessedAt time.Time
	Verb        string
	Amount      decimal.Decimal
	Success     bool
	Balance     decimal.Decimal
	Note        string
}

// String - renders the record as a single human-readable history line.
func (t Transaction) String() string {
	outcome := "ok"
	if !t.Success {
		outcome = "failed: " + t.Note
	}
	return fmt.Sprintf("%s  %s %s - %s (balance %s)",
		t.ProcessedAt.Format(time.RFC3339), t.Verb, t.Amount.StringFixed(2), outcome, t.Balance.StringFixed(2))
}

// Account - a named account with its credential digest, balance and history.
// The login is the unique identifier and never changes after creation.
type Account struct {
	UserID       string
	Login        string
	PasswordHash string
	Balance      decimal.Decimal
	LastLogOn    time.Time
	Transactions []Transaction
}

// NewAccount - creates an account with a zero balance and a hashed password.
func NewAccount(login string, plaintext string) *Account {
	return &Account{
		UserID:       uuid.New().String(),
		Login:        login,
		PasswordHash: password.Hash(plaintext),
		Balance:      decimal.Zero,
		LastLogOn:    time.Now(),
	}
}

// CheckPassword - verifies the plaintext against the stored digest.
func (a *Account) CheckPassword(plaintext string) bool {
	return password.Verify(plaintext, a.PasswordHash)
}

// UpdateLastLogOn - stamps the account with the current time.
func (a *Account) UpdateLastLogOn() {
	a.LastLogOn = time.Now()
}

// record appends a transaction with the balance as it stands after the operation.
func (a *Account) record(verb string, amount decimal.Decimal, success bool, note string) {
	a.Transactions = append(a.Transactions, Transaction{
		ProcessedAt: time.Now(),
		Verb:        verb,
		Amount:      amount,
		Success:     success,
		Balance:     a.Balance,
		Note:        note,
	})
}

// Deposit - adds the amount to the balance and records the transaction.
// A negative amount is rejected and recorded as a failed transaction.
func (a *Account) Deposit(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		a.record(VerbDeposit, amount.Abs(), false, ErrNegativeAmount.Error())
		return "", ErrNegativeAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.record(VerbDeposit, amount, true, "")
	return fmt.Sprintf("deposited %s, balance %s", amount.StringFixed(2), a.Balance.StringFixed(2)), nil
}

// Withdraw - subtracts the amount from the balance and records the transaction.
// A negative amount is always rejected. Unless allowOverdraft is set, an amount
// above the balance is rejected and recorded as "insufficient funds"; with
// allowOverdraft the withdrawal goes through and the balance may turn negative.
func (a *Account) Withdraw(amount decimal.Decimal, allowOverdraft bool) (string, error) {
	if amount.IsNegative() {
		a.record(VerbWithdrawal, amount.Abs(), false, ErrNegativeAmount.Error())
		return "", ErrNegativeAmount
	}
	if !allowOverdraft && amount.GreaterThan(a.Balance) {
		a.record(VerbWithdrawal, amount, false, "insufficient funds")
		return "", ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.record(VerbWithdrawal, amount, true, "")
	return fmt.Sprintf("withdrew %s, balance %s", amount.StringFixed(2), a.Balance.StringFixed(2)), nil
}

// TransactionHistory - one line per recorded transaction, in insertion order.
func (a *Account) TransactionHistory() []string {
	history := make([]string, 0, len(a.Transactions))
	for _, t := range a.Transactions {
		history = append(history, t.String())
	}
	return history
}
