package store

import (
	"fmt"
	"strings"

	"go.etcd.io/bbolt"

	"moujaz/internal/domain"
)

// schemaVersion guards the on-disk layout. Bump on incompatible bucket
// changes; old databases are cleared rather than migrated.
const schemaVersion = "1"

var (
	bucketArabic  = []byte("stopwords_ar")
	bucketEnglish = []byte("stopwords_en")
	bucketMeta    = []byte("meta")
	keySchema     = []byte("schema_version")
)

// BoltStore persists per-language custom stopwords in a bbolt
// database. Words are stored lowercased, one key per word.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the database at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open stopword db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketArabic, bucketEnglish, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}

		meta := tx.Bucket(bucketMeta)
		stored := meta.Get(keySchema)
		if stored != nil && string(stored) != schemaVersion {
			for _, b := range [][]byte{bucketArabic, bucketEnglish} {
				if err := tx.DeleteBucket(b); err != nil {
					return err
				}
				if _, err := tx.CreateBucket(b); err != nil {
					return err
				}
			}
		}
		return meta.Put(keySchema, []byte(schemaVersion))
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Add stores words for lang. Blank entries are skipped.
func (s *BoltStore) Add(lang string, words []string) error {
	bucket, err := bucketFor(lang)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w == "" {
				continue
			}
			if err := b.Put([]byte(w), nil); err != nil {
				return err
			}
		}
		return nil
	})
}

// Remove deletes words for lang. Unknown words are ignored.
func (s *BoltStore) Remove(lang string, words []string) error {
	bucket, err := bucketFor(lang)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if err := b.Delete([]byte(w)); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns the stored words for lang in key order.
func (s *BoltStore) List(lang string) ([]string, error) {
	bucket, err := bucketFor(lang)
	if err != nil {
		return nil, err
	}
	var words []string
	err = s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, _ []byte) error {
			words = append(words, string(k))
			return nil
		})
	})
	return words, err
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func bucketFor(lang string) ([]byte, error) {
	switch lang {
	case domain.LangArabic:
		return bucketArabic, nil
	case domain.LangEnglish:
		return bucketEnglish, nil
	}
	return nil, fmt.Errorf("unknown language %q (want %q or %q)", lang, domain.LangArabic, domain.LangEnglish)
}
