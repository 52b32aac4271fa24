package main

import (
	"fmt"

	"github.com/gooms-gusto/excel-generation-api/contracts"
	"go.etcd.io/bbolt"
)

var templatesBucket = []byte("templates")

// TemplateRepository stores uploaded template workbooks by name.
type TemplateRepository struct {
	db *bbolt.DB
}

func NewTemplateRepository(db *bbolt.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Put(name string, buffer []byte) error {
	return r.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(templatesBucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(name), buffer)
	})
}

func (r *TemplateRepository) Get(name string) (buffer []byte, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(templatesBucket)
		if bucket == nil {
			return fmt.Errorf("%s: %w", name, contracts.TemplateNotFoundError)
		}

		stored := bucket.Get([]byte(name))
		if stored == nil {
			return fmt.Errorf("%s: %w", name, contracts.TemplateNotFoundError)
		}

		// bucket values are only valid inside the transaction
		buffer = make([]byte, len(stored))
		copy(buffer, stored)

		return nil
	})

	return
}

func (r *TemplateRepository) List() (names []string, err error) {
	names = make([]string, 0)

	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(templatesBucket)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(key []byte, _ []byte) error {
			names = append(names, string(key))
			return nil
		})
	})

	return
}
