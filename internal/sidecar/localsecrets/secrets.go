// Package localsecrets resolves secrets from environment variables, the
// local-development stand-in for a managed secret store. Secret names are
// normalized ("reddog-sql-password" -> "REDDOG_SQL_PASSWORD").
package localsecrets

import (
	"os"
	"strings"

	"reddog/internal/pkg/errs"
)

type Store struct{}

func New() *Store {
	return &Store{}
}

func (s *Store) Get(name string) (string, error) {
	envName := strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	value, ok := os.LookupEnv(envName)
	if !ok {
		return "", errs.New("secret not found: " + name)
	}
	return value, nil
}
