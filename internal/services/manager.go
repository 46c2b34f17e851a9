// Package services holds the account manager: the collection of accounts,
// the single active session and the operations the caller drives.
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/akulinov/passbook/internal/logger"
	"github.com/akulinov/passbook/internal/models"
	"github.com/akulinov/passbook/internal/storage"
	"github.com/shopspring/decimal"
)

var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNotRecognized = errors.New("user not recognized")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrNothingToSave     = errors.New("nothing to save")
)

// Manager - owns the account collection, keyed by login, and at most one
// active session pointing into it. One caller at a time; the manager does no
// locking of its own, a concurrent host must serialize access to an instance.
type Manager struct {
	store          storage.Store
	accounts       map[string]*models.Account
	session        *models.Account
	allowOverdraft bool
}

// NewManager - creates an empty manager. The overdraft policy is fixed for
// the life of the instance.
func NewManager(store storage.Store, allowOverdraft bool) *Manager {
	return &Manager{
		store:          store,
		accounts:       make(map[string]*models.Account),
		allowOverdraft: allowOverdraft,
	}
}

// CreateAccount - registers a new account and logs its creator on.
// The login must not collide with an existing one (exact match).
func (m *Manager) CreateAccount(login string, plaintext string) (string, error) {
	logger.Info("Create account:", login)

	if _, ok := m.accounts[login]; ok {
		logger.Warn("User already exists:", login)
		return "", fmt.Errorf("%q: %w", login, ErrUserAlreadyExists)
	}

	account := models.NewAccount(login, plaintext)
	m.accounts[login] = account
	m.session = account
	return fmt.Sprintf("account %q created, you are logged on", login), nil
}

// LogOn - authenticates the login/password pair and makes the account the
// active session. The success message reports the previous log-on time,
// captured before the stamp is updated.
func (m *Manager) LogOn(login string, plaintext string) (string, error) {
	logger.Info("Log on:", login)

	account, ok := m.accounts[login]
	if !ok {
		logger.Warn("Unknown user:", login)
		return "", fmt.Errorf("%q: %w", login, ErrUserNotRecognized)
	}
	if !account.CheckPassword(plaintext) {
		logger.Warn("Invalid password:", login)
		return "", ErrInvalidPassword
	}

	previous := account.LastLogOn
	account.UpdateLastLogOn()
	m.session = account
	return fmt.Sprintf("welcome back %s, previous log-on %s", login, previous.Format(time.RFC3339)), nil
}

// LogOut - drops the active session. A no-op when nobody is logged on;
// the account itself stays in the collection.
func (m *Manager) LogOut() {
	if m.session != nil {
		logger.Info("Log out:", m.session.Login)
	}
	m.session = nil
}

// IsLoggedOn - reports whether a session is active.
func (m *Manager) IsLoggedOn() bool {
	return m.session != nil
}

// CurrentLogin - the login of the active session, empty without one.
func (m *Manager) CurrentLogin() string {
	if m.session == nil {
		return ""
	}
	return m.session.Login
}

// CurrentBalance - the balance of the active session, zero without one.
func (m *Manager) CurrentBalance() decimal.Decimal {
	if m.session == nil {
		return decimal.Zero
	}
	return m.session.Balance
}

// CurrentHistory - the history lines of the active session, nil without one.
func (m *Manager) CurrentHistory() []string {
	if m.session == nil {
		return nil
	}
	return m.session.TransactionHistory()
}
