package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

const (
	SnapshotFormat  = "passbook_snapshot"
	SnapshotVersion = 1
)

var ErrBadSnapshot = errors.New("malformed or incompatible snapshot")

// Marshal - encodes a snapshot as indented JSON. Accounts are ordered by
// login so the same collection always produces the same byte stream.
func Marshal(snap Snapshot) ([]byte, error) {
	snap.Meta.Format = SnapshotFormat
	snap.Meta.Version = SnapshotVersion

	// sort a copy, the caller keeps its own order
	accounts := make([]Account, len(snap.Accounts))
	copy(accounts, snap.Accounts)
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Login < accounts[j].Login })
	snap.Accounts = accounts

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Unmarshal - decodes a snapshot, rejecting foreign or incompatible input.
func Unmarshal(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrBadSnapshot, err)
	}
	if snap.Meta.Format != SnapshotFormat {
		return Snapshot{}, fmt.Errorf("%w: unknown format %q", ErrBadSnapshot, snap.Meta.Format)
	}
	if snap.Meta.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, snap.Meta.Version)
	}
	return snap, nil
}
