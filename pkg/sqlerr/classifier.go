package sqlerr

import (
	"errors"
	"sync"
)

// Kind is the classification outcome for a driver error.
type Kind int

const (
	// KindNone means the error is not a recognized constraint violation.
	KindNone Kind = iota

	// KindUnique means a unique-key constraint was violated.
	KindUnique

	// KindForeignKey means a foreign-key constraint was violated.
	KindForeignKey
)

// String returns the kind's name for logs.
func (k Kind) String() string {
	switch k {
	case KindUnique:
		return "unique_violation"
	case KindForeignKey:
		return "foreign_key_violation"
	default:
		return "none"
	}
}

// Rule maps one driver error type to its constraint-violation codes.
// TypeName is the fully qualified name as produced by TypeNameOf. Field names
// an exported field holding the driver's error code; integer and string
// fields are both supported, codes are compared as decimal strings.
type Rule struct {
	TypeName   string
	Field      string
	Unique     []string
	ForeignKey []string
}

// registry holds the active rules keyed by qualified type name. The defaults
// cover the drivers of the four supported engine families; Register extends
// the set at setup time.
var (
	registryMu sync.RWMutex
	registry   = map[string]Rule{}
)

func init() {
	for _, r := range defaultRules() {
		registry[r.TypeName] = r
	}
}

// defaultRules returns the built-in table. SQLSTATE-based engines (Postgres)
// report string codes, the rest report numeric codes; both are normalized to
// strings for the comparison.
func defaultRules() []Rule {
	return []Rule{
		{
			TypeName:   "github.com/jackc/pgx/v5/pgconn.PgError",
			Field:      "Code",
			Unique:     []string{"23505"},
			ForeignKey: []string{"23503"},
		},
		{
			TypeName:   "github.com/lib/pq.Error",
			Field:      "Code",
			Unique:     []string{"23505"},
			ForeignKey: []string{"23503"},
		},
		{
			TypeName:   "github.com/go-sql-driver/mysql.MySQLError",
			Field:      "Number",
			Unique:     []string{"1062"},
			ForeignKey: []string{"1452"},
		},
		{
			TypeName:   "github.com/mattn/go-sqlite3.Error",
			Field:      "ExtendedCode",
			Unique:     []string{"1555", "2067"},
			ForeignKey: []string{"787"},
		},
		{
			TypeName:   "github.com/microsoft/go-mssqldb.Error",
			Field:      "Number",
			Unique:     []string{"2627", "2601"},
			ForeignKey: []string{"547"},
		},
		{
			TypeName:   "github.com/denisenkom/go-mssqldb.Error",
			Field:      "Number",
			Unique:     []string{"2627", "2601"},
			ForeignKey: []string{"547"},
		},
	}
}

// Register adds or replaces a rule. Call it during initialization, before
// Classify runs on the type in question.
func Register(r Rule) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[r.TypeName] = r
}

// Classify reports whether err (or anything in its unwrap chain) is a known
// unique or foreign-key violation. It never panics: nil errors, unknown
// types, and types missing the expected field all classify as KindNone.
func Classify(err error) (kind Kind) {
	// Reflection on arbitrary foreign values must not take the caller down.
	defer func() {
		if recover() != nil {
			kind = KindNone
		}
	}()

	for e := err; e != nil; e = errors.Unwrap(e) {
		if k := classifyOne(e); k != KindNone {
			return k
		}
	}
	return KindNone
}

// IsUnique reports whether err is a unique-key violation.
func IsUnique(err error) bool { return Classify(err) == KindUnique }

// IsForeignKey reports whether err is a foreign-key violation.
func IsForeignKey(err error) bool { return Classify(err) == KindForeignKey }

func classifyOne(err error) Kind {
	name := TypeNameOf(err)
	if name == "" {
		return KindNone
	}

	registryMu.RLock()
	rule, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return KindNone
	}

	code, ok := fieldCode(err, rule.Field)
	if !ok {
		return KindNone
	}

	for _, c := range rule.Unique {
		if c == code {
			return KindUnique
		}
	}
	for _, c := range rule.ForeignKey {
		if c == code {
			return KindForeignKey
		}
	}
	return KindNone
}
