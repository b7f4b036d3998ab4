package lexicon

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	bucketPositive  = []byte("positive")
	bucketNegative  = []byte("negative")
	bucketNeutral   = []byte("neutral")
	bucketStopwords = []byte("stopwords")
	bucketMeta      = []byte("meta")
	keyImportedAt   = []byte("imported_at")
	keySource       = []byte("source")
	present         = []byte{1}
)

var setBuckets = [][]byte{bucketPositive, bucketNegative, bucketNeutral, bucketStopwords}

// BoltStore persists lexicon sets, one bucket per set keyed by folded word.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range append(setBuckets, bucketMeta) {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Import replaces every stored set with d.
func (s *BoltStore) Import(d Data, source string) error {
	lists := map[string][]string{
		string(bucketPositive):  d.Positive,
		string(bucketNegative):  d.Negative,
		string(bucketNeutral):   d.Neutral,
		string(bucketStopwords): d.Stopwords,
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range setBuckets {
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return err
			}
			b, err := tx.CreateBucket(name)
			if err != nil {
				return err
			}
			for _, w := range lists[string(name)] {
				w = Fold(w)
				if w == "" {
					continue
				}
				if err := b.Put([]byte(w), present); err != nil {
					return err
				}
			}
		}
		meta := tx.Bucket(bucketMeta)
		if err := meta.Put(keySource, []byte(source)); err != nil {
			return err
		}
		return meta.Put(keyImportedAt, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Load reads all sets. Keys come back in byte order.
func (s *BoltStore) Load() (Data, error) {
	var d Data
	err := s.db.View(func(tx *bbolt.Tx) error {
		read := func(name []byte) ([]string, error) {
			var words []string
			err := tx.Bucket(name).ForEach(func(k, _ []byte) error {
				words = append(words, string(k))
				return nil
			})
			return words, err
		}
		var err error
		if d.Positive, err = read(bucketPositive); err != nil {
			return err
		}
		if d.Negative, err = read(bucketNegative); err != nil {
			return err
		}
		if d.Neutral, err = read(bucketNeutral); err != nil {
			return err
		}
		d.Stopwords, err = read(bucketStopwords)
		return err
	})
	return d, err
}

// StoreInfo describes the last import.
type StoreInfo struct {
	Stats
	Source     string `json:"source"`
	ImportedAt string `json:"imported_at"`
}

func (s *BoltStore) Info() (StoreInfo, error) {
	var info StoreInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		info.Positive = tx.Bucket(bucketPositive).Stats().KeyN
		info.Negative = tx.Bucket(bucketNegative).Stats().KeyN
		info.Neutral = tx.Bucket(bucketNeutral).Stats().KeyN
		info.Stopwords = tx.Bucket(bucketStopwords).Stats().KeyN
		meta := tx.Bucket(bucketMeta)
		info.Source = string(meta.Get(keySource))
		info.ImportedAt = string(meta.Get(keyImportedAt))
		return nil
	})
	return info, err
}
