package services

import (
	"github.com/akulinov/passbook/internal/logger"
	"github.com/shopspring/decimal"
)

// Deposit - credits the active session's account. Fails without a session;
// otherwise the account's own result is returned verbatim.
func (m *Manager) Deposit(amount decimal.Decimal) (string, error) {
	if m.session == nil {
		logger.Warn("Deposit without an active session")
		return "", ErrNotLoggedIn
	}
	msg, err := m.session.Deposit(amount)
	if err != nil {
		logger.Warn("Deposit rejected:", m.session.Login, err)
	}
	return msg, err
}

// Withdraw - debits the active session's account under the manager's
// overdraft policy. Fails without a session; otherwise the account's own
// result is returned verbatim.
func (m *Manager) Withdraw(amount decimal.Decimal) (string, error) {
	if m.session == nil {
		logger.Warn("Withdrawal without an active session")
		return "", ErrNotLoggedIn
	}
	msg, err := m.session.Withdraw(amount, m.allowOverdraft)
	if err != nil {
		logger.Warn("Withdrawal rejected:", m.session.Login, err)
	}
	return msg, err
}
