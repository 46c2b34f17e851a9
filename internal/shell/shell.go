// Package shell is the interactive front of the program: it parses command
// lines, dispatches to the account manager and renders the results as text.
// No account rules live here.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/akulinov/passbook/internal/services"
	"github.com/akulinov/passbook/internal/validators"
)

var errQuit = errors.New("quit")

// command - one entry of the dispatch table.
type command struct {
	usage   string
	help    string
	handler func(args []string) (string, error)
}

// Shell - reads commands from in and writes results to out, one at a time.
type Shell struct {
	manager  *services.Manager
	dataFile string
	in       *bufio.Scanner
	out      io.Writer
	commands map[string]command
}

// New - creates a shell over the manager. dataFile is the default snapshot
// path used when save/load is called without an argument.
func New(manager *services.Manager, dataFile string, in io.Reader, out io.Writer) *Shell {
	s := &Shell{
		manager:  manager,
		dataFile: dataFile,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	s.commands = map[string]command{
		"register": {
			usage:   "register <login> <password>",
			help:    "create an account and log on",
			handler: s.register,
		},
		"login": {
			usage:   "login <login> <password>",
			help:    "log on to an existing account",
			handler: s.login,
		},
		"logout": {
			usage:   "logout",
			help:    "drop the active session",
			handler: s.logout,
		},
		"deposit": {
			usage:   "deposit <amount>",
			help:    "add to the balance",
			handler: s.deposit,
		},
		"withdraw": {
			usage:   "withdraw <amount>",
			help:    "take from the balance",
			handler: s.withdraw,
		},
		"balance": {
			usage:   "balance",
			help:    "show the current balance",
			handler: s.balance,
		},
		"history": {
			usage:   "history",
			help:    "show the transaction history",
			handler: s.history,
		},
		"save": {
			usage:   "save [file]",
			help:    "save all accounts to a file",
			handler: s.save,
		},
		"load": {
			usage:   "load [file]",
			help:    "replace all accounts from a file",
			handler: s.load,
		},
		"help": {
			usage:   "help",
			help:    "show this help",
			handler: s.help,
		},
		"exit": {
			usage:   "exit",
			help:    "leave the shell",
			handler: func([]string) (string, error) { return "", errQuit },
		},
	}
	return s
}

// Run - the read-dispatch-print loop. Returns on "exit" or end of input.
func (s *Shell) Run() {
	fmt.Fprintln(s.out, "passbook - type 'help' for commands")
	for {
		fmt.Fprintf(s.out, "%s> ", s.prompt())
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return
		}
		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}

		cmd, ok := s.commands[strings.ToLower(fields[0])]
		if !ok {
			fmt.Fprintf(s.out, "unknown command %q, type 'help'\n", fields[0])
			continue
		}

		msg, err := cmd.handler(fields[1:])
		if errors.Is(err, errQuit) {
			fmt.Fprintln(s.out, "bye")
			return
		}
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
			continue
		}
		if msg != "" {
			fmt.Fprintln(s.out, msg)
		}
	}
}

func (s *Shell) prompt() string {
	if login := s.manager.CurrentLogin(); login != "" {
		return login
	}
	return "passbook"
}

func (s *Shell) register(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: %s", s.commands["register"].usage)
	}
	return s.manager.CreateAccount(args[0], args[1])
}

func (s *Shell) login(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: %s", s.commands["login"].usage)
	}
	return s.manager.LogOn(args[0], args[1])
}

func (s *Shell) logout([]string) (string, error) {
	s.manager.LogOut()
	return "logged out", nil
}

func (s *Shell) deposit(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s", s.commands["deposit"].usage)
	}
	amount, err := validators.ParseAmount(args[0])
	if err != nil {
		return "", err
	}
	return s.manager.Deposit(amount)
}

func (s *Shell) withdraw(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s", s.commands["withdraw"].usage)
	}
	amount, err := validators.ParseAmount(args[0])
	if err != nil {
		return "", err
	}
	return s.manager.Withdraw(amount)
}

func (s *Shell) balance([]string) (string, error) {
	if !s.manager.IsLoggedOn() {
		return "", services.ErrNotLoggedIn
	}
	return fmt.Sprintf("balance %s", s.manager.CurrentBalance().StringFixed(2)), nil
}

func (s *Shell) history([]string) (string, error) {
	if !s.manager.IsLoggedOn() {
		return "", services.ErrNotLoggedIn
	}
	history := s.manager.CurrentHistory()
	if len(history) == 0 {
		return "no transactions yet", nil
	}
	return strings.Join(history, "\n"), nil
}

func (s *Shell) save(args []string) (string, error) {
	return s.manager.Save(s.pathArg(args))
}

func (s *Shell) load(args []string) (string, error) {
	return s.manager.Load(s.pathArg(args))
}

// pathArg picks the explicit file argument over the configured default.
func (s *Shell) pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return s.dataFile
}

func (s *Shell) help([]string) (string, error) {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		cmd := s.commands[name]
		fmt.Fprintf(&b, "  %-28s %s\n", cmd.usage, cmd.help)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
