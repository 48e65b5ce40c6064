// Package dataset describes the layout of the BAS data bucket.
//
// The building automation system exports one CSV per room, named with a
// fixed prefix (e.g. "Flo2.3-A3-70.csv"). This package centralizes the
// naming conventions and series parameters so that ingestion, integrity
// checks, and reconciliation all agree on where data lives.
package dataset
