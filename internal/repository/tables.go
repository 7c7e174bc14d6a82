package repository

import (
	"fmt"
	"regexp"
)

// Table names are resolved by the environment resolver and interpolated into
// SQL, since identifiers cannot be bound as query parameters. The pattern
// guard keeps a malformed name from ever reaching the store.
var tableNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func checkTable(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("invalid table name: %q", table)
	}
	return nil
}
