package services

import (
	"errors"
	"testing"
	"time"

	"github.com/akulinov/passbook/internal/config"
	"github.com/akulinov/passbook/internal/logger"
	"github.com/akulinov/passbook/internal/storage"
	"github.com/akulinov/passbook/internal/storage/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newMockedManager(t *testing.T) (*Manager, *mocks.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockStore := mocks.NewMockStore(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}
	return NewManager(mockStore, config.AllowOverdraft), mockStore
}

func TestSave(t *testing.T) {
	t.Run("Save: empty collection #1", func(t *testing.T) {
		manager, _ := newMockedManager(t)

		_, err := manager.Save("passbook.json")
		if !errors.Is(err, ErrNothingToSave) {
			t.Errorf("Expected ErrNothingToSave, got: '%v'", err)
		}
	})

	t.Run("Save: snapshot carries the collection #2", func(t *testing.T) {
		manager, mockStore := newMockedManager(t)
		if _, err := manager.CreateAccount("mda", "test_pass"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if _, err := manager.Deposit(decimal.NewFromInt(100)); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}

		var saved storage.Snapshot
		mockStore.EXPECT().Save("passbook.json", gomock.Any()).
			DoAndReturn(func(path string, snap storage.Snapshot) error {
				saved = snap
				return nil
			})

		if _, err := manager.Save("passbook.json"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if len(saved.Accounts) != 1 {
			t.Fatalf("Expected 1 account in the snapshot, got: %d", len(saved.Accounts))
		}
		account := saved.Accounts[0]
		if account.Login != "mda" {
			t.Errorf("Expected login 'mda', got: '%s'", account.Login)
		}
		if account.PasswordHash != manager.accounts["mda"].PasswordHash {
			t.Error("Expected the stored digest to be persisted verbatim")
		}
		if !account.Balance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("Expected balance 100, got: %s", account.Balance)
		}
		if len(account.Transactions) != 1 {
			t.Errorf("Expected 1 transaction, got: %d", len(account.Transactions))
		}
		if saved.Meta.CreatedAt.IsZero() {
			t.Error("Expected the snapshot creation time to be stamped")
		}
	})

	t.Run("Save: store failure leaves state untouched #3", func(t *testing.T) {
		manager, mockStore := newMockedManager(t)
		if _, err := manager.CreateAccount("mda", "test_pass"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}

		storeErr := errors.New("disk full")
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(storeErr)

		_, err := manager.Save("passbook.json")
		if !errors.Is(err, storeErr) {
			t.Errorf("Expected the store error to be reported, got: '%v'", err)
		}
		if len(manager.accounts) != 1 || !manager.IsLoggedOn() {
			t.Error("Expected the collection and session to be untouched")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("Load: replaces the collection and clears the session #1", func(t *testing.T) {
		manager, mockStore := newMockedManager(t)
		if _, err := manager.CreateAccount("old", "old_pass"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}

		logOn := time.Date(2025, 11, 10, 9, 30, 0, 0, time.UTC)
		mockStore.EXPECT().Load("passbook.json").Return(storage.Snapshot{
			Meta: storage.Meta{Format: storage.SnapshotFormat, Version: storage.SnapshotVersion},
			Accounts: []storage.Account{
				{
					UserID:       "7d8f1b1e-4f4a-4f2e-9a65-2a1532b2b01c",
					Login:        "mda",
					PasswordHash: "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
					Balance:      decimal.NewFromInt(70),
					LastLogOn:    logOn,
					Transactions: []storage.Transaction{
						{ProcessedAt: logOn, Verb: "deposit", Amount: decimal.NewFromInt(70), Success: true, Balance: decimal.NewFromInt(70)},
					},
				},
			},
		}, nil)

		if _, err := manager.Load("passbook.json"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if manager.IsLoggedOn() {
			t.Error("Expected the session to be cleared by Load")
		}
		if len(manager.accounts) != 1 {
			t.Fatalf("Expected the old collection to be replaced, got %d accounts", len(manager.accounts))
		}
		if _, ok := manager.accounts["old"]; ok {
			t.Error("Expected the old account to be discarded, not merged")
		}
		// digest restored verbatim: "password" still verifies
		if !manager.accounts["mda"].CheckPassword("password") {
			t.Error("Expected the restored digest to verify the original password")
		}
		if !manager.accounts["mda"].LastLogOn.Equal(logOn) {
			t.Errorf("Expected LastLogOn %s, got: %s", logOn, manager.accounts["mda"].LastLogOn)
		}
	})

	t.Run("Load: store failure leaves state untouched #2", func(t *testing.T) {
		manager, mockStore := newMockedManager(t)
		if _, err := manager.CreateAccount("mda", "test_pass"); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}

		storeErr := errors.New("no such file")
		mockStore.EXPECT().Load(gomock.Any()).Return(storage.Snapshot{}, storeErr)

		_, err := manager.Load("missing.json")
		if !errors.Is(err, storeErr) {
			t.Errorf("Expected the store error to be reported, got: '%v'", err)
		}
		if len(manager.accounts) != 1 {
			t.Error("Expected the collection to be untouched")
		}
		if !manager.IsLoggedOn() || manager.CurrentLogin() != "mda" {
			t.Error("Expected the session to be untouched")
		}
	})
}
