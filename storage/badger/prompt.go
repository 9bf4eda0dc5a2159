package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/peeq/core"
	"github.com/poiesic/peeq/storage"
)

// PromptRepository implements storage.PromptRepository for BadgerDB.
type PromptRepository struct {
	backend *Backend
}

var _ storage.PromptRepository = (*PromptRepository)(nil)

// NewPromptRepository creates a new PromptRepository.
func NewPromptRepository(backend *Backend) (*PromptRepository, error) {
	return &PromptRepository{
		backend: backend,
	}, nil
}

// Close releases resources. PromptRepository has no resources to release.
func (r *PromptRepository) Close() error {
	return nil
}

// AddPrompt stores a new prompt version. The new record gets the next
// sequential version number and becomes the active prompt; every other
// record is deactivated in the same transaction.
func (r *PromptRepository) AddPrompt(ctx context.Context, content string) (*core.PromptRecord, error) {
	record := &core.PromptRecord{
		Content:   content,
		Active:    true,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		existing, err := readAllPrompts(tx)
		if err != nil {
			return err
		}

		var maxVersion int64
		for _, old := range existing {
			if old.Version > maxVersion {
				maxVersion = old.Version
			}
			if old.Active {
				old.Active = false
				if err := tx.Set(makePromptKey(old.Version), storage.MarshalPromptRecord(old)); err != nil {
					return err
				}
			}
		}

		record.Version = maxVersion + 1
		if err := core.ValidatePromptRecord(record); err != nil {
			return err
		}
		if err := tx.Set(makePromptKey(record.Version), storage.MarshalPromptRecord(record)); err != nil {
			return err
		}
		if err := tx.Set(makePromptActiveKey(), storage.MarshalVersion(record.Version)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// ActivePrompt returns the currently active prompt record.
func (r *PromptRepository) ActivePrompt(ctx context.Context) (*core.PromptRecord, error) {
	var result *core.PromptRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makePromptActiveKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var version int64
		err = item.Value(func(val []byte) error {
			version, err = storage.UnmarshalVersion(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readPrompt(tx, makePromptKey(version))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListPrompts returns all stored prompt versions, newest first.
func (r *PromptRepository) ListPrompts(ctx context.Context) ([]*core.PromptRecord, error) {
	var results []*core.PromptRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		results, err = readAllPrompts(tx)
		return err
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.PromptRecord) int {
		if a.Version > b.Version {
			return -1
		}
		if a.Version < b.Version {
			return 1
		}
		return 0
	})

	return results, nil
}

// ActivatePrompt makes an existing version the active prompt,
// deactivating all others in the same transaction.
func (r *PromptRepository) ActivatePrompt(ctx context.Context, version int64) (*core.PromptRecord, error) {
	var result *core.PromptRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		existing, err := readAllPrompts(tx)
		if err != nil {
			return err
		}

		for _, record := range existing {
			if record.Version == version {
				result = record
			}
		}
		if result == nil {
			return storage.ErrNotFound
		}

		for _, record := range existing {
			active := record.Version == version
			if record.Active == active {
				continue
			}
			record.Active = active
			if err := tx.Set(makePromptKey(record.Version), storage.MarshalPromptRecord(record)); err != nil {
				return err
			}
		}

		if err := tx.Set(makePromptActiveKey(), storage.MarshalVersion(version)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Helper methods

// hasPrefix checks if a byte slice has a given prefix
func hasPrefix(s, prefix []byte) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

// readPrompt reads a prompt record from the transaction.
func readPrompt(tx *badger.Txn, key []byte) (*core.PromptRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.PromptRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalPromptRecord(val)
		return err
	})
	return record, err
}

// readAllPrompts scans every prompt record in the transaction.
func readAllPrompts(tx *badger.Txn) ([]*core.PromptRecord, error) {
	var results []*core.PromptRecord

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = true
	iter := tx.NewIterator(opts)
	defer iter.Close()

	prefix := []byte(promptRecordPrefix + ":")
	for iter.Seek(prefix); iter.Valid(); iter.Next() {
		item := iter.Item()
		if !hasPrefix(item.Key(), prefix) {
			break
		}

		var record *core.PromptRecord
		err := item.Value(func(val []byte) error {
			var err error
			record, err = storage.UnmarshalPromptRecord(val)
			return err
		})
		if err != nil {
			return nil, err
		}
		if record != nil {
			results = append(results, record)
		}
	}

	return results, nil
}
