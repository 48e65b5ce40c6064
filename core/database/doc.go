// Package database manages the connection to the rooms metadata database.
//
// The database is an optional dependency: the server degrades gracefully
// when it is unreachable, and commands that require it report an error.
// MySQL is the production driver; SQLite is supported for local use and
// tests.
//
// The inspector provides schema introspection (SHOW COLUMNS / PRAGMA
// table_info) used by the database integrity check.
package database
