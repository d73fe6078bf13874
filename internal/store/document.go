package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// idSetMaxSize is the ceiling on the number of IDs a single ID-set lookup
// may carry, mirroring the upstream document store's limit of ten values
// per "ID in set" predicate. Larger requests are chunked by getDocsByIDs.
const idSetMaxSize = 10

// chunkIDs splits ids into consecutive chunks of at most size elements.
// Every input ID lands in exactly one chunk; order is preserved.
func chunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// createDoc stores a new document under prefix+id, failing with dupErr if
// the key is already taken.
func createDoc(s *DB, prefix, id string, doc any, dupErr error) error {
	key := []byte(prefix + id)

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			return dupErr
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check existing key: %w", err)
		}
		return txn.Set(key, data)
	})
}

// getDoc retrieves a document by ID, failing with notFoundErr if absent.
func getDoc[T any](s *DB, prefix, id string, notFoundErr error) (*T, error) {
	var doc T
	if err := s.get([]byte(prefix+id), &doc); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, notFoundErr
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &doc, nil
}

// getDocsByIDs retrieves the documents for an ID list, splitting the list
// into chunks of at most idSetMaxSize. Each multi-ID chunk is resolved in
// one read transaction; a single-ID chunk uses a direct point get. IDs with
// no document are skipped silently. The caller is responsible for
// deduplicating the input.
func getDocsByIDs[T any](s *DB, prefix string, ids []string) ([]*T, error) {
	docs := make([]*T, 0, len(ids))

	for _, chunk := range chunkIDs(ids, idSetMaxSize) {
		if len(chunk) == 1 {
			var doc T
			err := s.get([]byte(prefix+chunk[0]), &doc)
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("get document %s: %w", chunk[0], err)
			}
			docs = append(docs, &doc)
			continue
		}

		err := s.db.View(func(txn *badger.Txn) error {
			for _, id := range chunk {
				item, err := txn.Get([]byte(prefix + id))
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				if err != nil {
					return fmt.Errorf("get document %s: %w", id, err)
				}

				var doc T
				err = item.Value(func(val []byte) error {
					return json.Unmarshal(val, &doc)
				})
				if err != nil {
					return err
				}
				docs = append(docs, &doc)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return docs, nil
}

// listDocs iterates all documents under a prefix, keeping those that match.
// A nil match keeps everything; limit <= 0 means unlimited.
func listDocs[T any](s *DB, ctx context.Context, prefix string, match func(*T) bool, limit int) ([]*T, error) {
	var docs []*T

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var doc T
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return err
			}

			if match != nil && !match(&doc) {
				continue
			}
			docs = append(docs, &doc)

			if limit > 0 && len(docs) >= limit {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	return docs, nil
}

// saveDoc overwrites an existing document, failing with notFoundErr if it
// does not exist.
func saveDoc(s *DB, prefix, id string, doc any, notFoundErr error) error {
	key := []byte(prefix + id)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check document exists: %w", err)
	}
	if !exists {
		return notFoundErr
	}

	return s.set(key, doc)
}

// deleteDoc removes a document, failing with notFoundErr if absent.
func deleteDoc(s *DB, prefix, id string, notFoundErr error) error {
	key := []byte(prefix + id)

	exists, err := s.exists(key)
	if err != nil {
		return fmt.Errorf("check document exists: %w", err)
	}
	if !exists {
		return notFoundErr
	}

	return s.delete(key)
}
