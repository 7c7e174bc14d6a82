package environment

import "fmt"

// Mode is the logical dataset the application is pointed at.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

// devSuffix is appended to every logical table name in development.
// The development tables are the staging dataset; production tables
// keep the plain logical names.
const devSuffix = "_dev"

// Logical table names shared by both environments.
const (
	TableCategories = "categories"
	TableQuestions  = "questions"
)

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Development, Production:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown environment mode: %q", s)
	}
}

// IsValid reports whether m is one of the known modes.
func (m Mode) IsValid() bool {
	return m == Development || m == Production
}

// TableFor resolves a logical table name to the concrete name used in
// the given mode. Production returns the logical name unchanged.
func TableFor(logical string, mode Mode) string {
	if mode == Development {
		return logical + devSuffix
	}
	return logical
}

// Tables is a snapshot of the concrete table names for one environment.
// Long-running operations resolve this once up front instead of
// re-resolving per item, since the current mode can change between calls.
type Tables struct {
	Categories string
	Questions  string
}

// TablesFor resolves all content tables for the given mode.
func TablesFor(mode Mode) Tables {
	return Tables{
		Categories: TableFor(TableCategories, mode),
		Questions:  TableFor(TableQuestions, mode),
	}
}
