// Package storage provides access to the object storage bucket holding the
// BAS data files.
//
// The bucket mirrors the on-disk layout of the original data directory:
// per-room CSV exports under a BAS prefix, the occupancy subset under its
// own prefix, plus the outside-air series and the room roster as top-level
// objects.
//
// The Client interface wraps the Minio operations used by the rest of the
// application so that tests can substitute the mocks package.
package storage
