package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleared-dev/qif/qif"
)

// FileName is the accounts file inside a project directory.
const FileName = "accounts.csv"

// Service provides in-memory lookup over the configured accounts.
type Service struct {
	accounts []*qif.Account
	byName   map[string]*qif.Account
}

// NewService creates a Service from a slice of accounts. Names are matched
// case-insensitively; a later duplicate is an error.
func NewService(accounts []*qif.Account) (*Service, error) {
	byName := make(map[string]*qif.Account, len(accounts))
	for _, a := range accounts {
		key := strings.ToLower(a.Name())
		if _, dup := byName[key]; dup {
			return nil, fmt.Errorf("duplicate account %q", a.Name())
		}
		byName[key] = a
	}
	return &Service{accounts: accounts, byName: byName}, nil
}

// Load reads accounts.csv from a project directory and returns a Service.
func Load(dir string) (*Service, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading accounts: %w", err)
	}
	return NewService(accts)
}

// All returns all accounts.
func (s *Service) All() []*qif.Account {
	return s.accounts
}

// Get returns an account by name.
func (s *Service) Get(name string) (*qif.Account, bool) {
	a, ok := s.byName[strings.ToLower(name)]
	return a, ok
}

// Exists reports whether an account name exists.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[strings.ToLower(name)]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType qif.AccountType) []*qif.Account {
	var result []*qif.Account
	for _, a := range s.accounts {
		if a.Type() == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the accounts to dir/accounts.csv.
func (s *Service) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating project dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}
	return nil
}
