package snapshot

import "errors"

var (
	// ErrSnapshotNotFound is returned when no snapshot is stored for a component
	ErrSnapshotNotFound = errors.New("snapshot.repository: snapshot not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("snapshot.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("snapshot.repository: failed to execute query")

	// ErrEncodePayload is returned when the snapshot cannot be serialized
	ErrEncodePayload = errors.New("snapshot.repository: failed to encode payload")

	// ErrDecodePayload is returned when a stored snapshot cannot be deserialized
	ErrDecodePayload = errors.New("snapshot.repository: failed to decode payload")
)
