package shell

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akulinov/passbook/internal/config"
	"github.com/akulinov/passbook/internal/logger"
	"github.com/akulinov/passbook/internal/services"
	"github.com/akulinov/passbook/internal/storage"
)

// runScript feeds a scripted session into a fresh shell and returns the output.
func runScript(t *testing.T, dataFile string, script string) string {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}
	manager := services.NewManager(storage.NewFileStore(), config.AllowOverdraft)

	var out bytes.Buffer
	New(manager, dataFile, strings.NewReader(script), &out).Run()
	return out.String()
}

func TestShellSession(t *testing.T) {
	script := strings.Join([]string{
		"register alice pw1",
		"deposit 100",
		"withdraw 30",
		"balance",
		"withdraw 500",
		"history",
		"logout",
		"balance",
		"exit",
	}, "\n") + "\n"

	out := runScript(t, "passbook.json", script)

	expectedParts := []string{
		`account "alice" created`,
		"deposited 100.00, balance 100.00",
		"withdrew 30.00, balance 70.00",
		"balance 70.00",
		"error: insufficient funds for withdrawal",
		"withdrawal 500.00 - failed: insufficient funds (balance 70.00)",
		"logged out",
		"error: not logged in",
		"bye",
	}
	for _, part := range expectedParts {
		if !strings.Contains(out, part) {
			t.Errorf("Expected output to contain '%s', got:\n%s", part, out)
		}
	}

	// prompt follows the session
	if !strings.Contains(out, "alice> ") {
		t.Errorf("Expected the prompt to show the session login, got:\n%s", out)
	}
}

func TestShellInputErrors(t *testing.T) {
	script := strings.Join([]string{
		"register alice pw1",
		"deposit abc",
		"deposit",
		"frobnicate",
		"login alice",
		"exit",
	}, "\n") + "\n"

	out := runScript(t, "passbook.json", script)

	expectedParts := []string{
		`error: invalid amount "abc"`,
		"error: usage: deposit <amount>",
		`unknown command "frobnicate"`,
		"error: usage: login <login> <password>",
	}
	for _, part := range expectedParts {
		if !strings.Contains(out, part) {
			t.Errorf("Expected output to contain '%s', got:\n%s", part, out)
		}
	}
}

func TestShellSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passbook.json")

	out := runScript(t, path, strings.Join([]string{
		"register alice pw1",
		"deposit 100",
		"save",
		"exit",
	}, "\n")+"\n")
	if !strings.Contains(out, "saved 1 account(s) to "+path) {
		t.Fatalf("Expected a save confirmation, got:\n%s", out)
	}

	// a fresh shell restores the collection from the same file
	out = runScript(t, path, strings.Join([]string{
		"load",
		"login alice pw1",
		"balance",
		"exit",
	}, "\n")+"\n")

	expectedParts := []string{
		"loaded 1 account(s) from " + path,
		"welcome back alice",
		"balance 100.00",
	}
	for _, part := range expectedParts {
		if !strings.Contains(out, part) {
			t.Errorf("Expected output to contain '%s', got:\n%s", part, out)
		}
	}
}

func TestShellEndOfInput(t *testing.T) {
	// no exit command, the loop stops at end of input
	out := runScript(t, "passbook.json", "register alice pw1\n")
	if !strings.Contains(out, `account "alice" created`) {
		t.Errorf("Expected the command to run before end of input, got:\n%s", out)
	}
}
