package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/datastore"
)

const collectionKind = "AttendanceCollection"

// collectionEntity is the datastore shape of one collection document.
type collectionEntity struct {
	Doc []byte `datastore:"doc,noindex"`
}

// DatastoreBackend stores each collection document as one entity keyed by
// the collection key.
type DatastoreBackend struct {
	client *datastore.Client
}

// NewDatastoreBackend connects to the project's datastore.
func NewDatastoreBackend(ctx context.Context, projectID string) (*DatastoreBackend, error) {
	if projectID == "" {
		return nil, fmt.Errorf("datastore backend requires a project id")
	}
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create datastore client: %w", err)
	}
	return &DatastoreBackend{client: client}, nil
}

func (db *DatastoreBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var entity collectionEntity
	err := db.client.Get(ctx, datastore.NameKey(collectionKind, key, nil), &entity)
	if errors.Is(err, datastore.ErrNoSuchEntity) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return entity.Doc, nil
}

func (db *DatastoreBackend) Put(ctx context.Context, key string, doc []byte) error {
	_, err := db.client.Put(ctx, datastore.NameKey(collectionKind, key, nil), &collectionEntity{Doc: doc})
	return err
}

// Close releases the underlying client.
func (db *DatastoreBackend) Close() error {
	return db.client.Close()
}
