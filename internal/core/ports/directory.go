package ports

import "context"

// DirectoryRecord is a person as returned by the remote directory, flattened
// from its wire shape. The directory has no role concept; the store assigns
// one on import.
type DirectoryRecord struct {
	ID      int
	Name    string
	Email   string
	Company string
	City    string
	Website string
	Phone   string
}

// DirectoryClient reads the remote read-only person directory.
type DirectoryClient interface {
	FetchUsers(ctx context.Context) ([]DirectoryRecord, error)
}
