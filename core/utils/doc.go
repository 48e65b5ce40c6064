// Package utils provides small type-conversion helpers for values read from
// the database or parsed from CSV cells, where drivers and exports disagree
// on the concrete type of the same logical field.
package utils
