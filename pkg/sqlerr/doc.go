// Package sqlerr classifies database driver errors into constraint-violation
// categories without importing any driver.
//
// Drivers expose unique-key and foreign-key violations through unrelated
// concrete error types (pgconn.PgError, pq.Error, mysql.MySQLError,
// sqlite3.Error, mssqldb.Error). Depending on all of them would pull five
// driver modules into every consumer, so sqlerr instead inspects the failure's
// runtime shape: it matches the fully qualified type name, reads a named field
// by reflection, and compares the value against engine-specific sentinel
// codes.
//
// The rule table is a closed lookup, not a heuristic. Errors whose type or
// field is unknown classify as KindNone and fall through to generic failure
// handling. Classify never panics, whatever it is given.
//
// Rules for additional drivers can be added with Register, typically from an
// init function:
//
//	sqlerr.Register(sqlerr.Rule{
//	    TypeName:   sqlerr.TypeNameOf(&exotic.DriverError{}),
//	    Field:      "Code",
//	    Unique:     []string{"U001"},
//	    ForeignKey: []string{"F001"},
//	})
package sqlerr
