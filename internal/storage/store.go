package storage

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/akulinov/passbook/internal/storage Store

// Store - whole-collection persistence: one snapshot in, one snapshot out.
type Store interface {
	Save(path string, snap Snapshot) error
	Load(path string) (Snapshot, error)
}
