package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gwaste/gwaste/pkg/db"
)

// ListCollectors returns every roster entry ordered by driver name.
func (s *Store) ListCollectors(ctx context.Context) ([]db.Collector, error) {
	iter := s.client.Collection(collectorsCollection).
		OrderBy("driver", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	collectors := []db.Collector{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate collectors: %w", err)
		}
		var c db.Collector
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode collector %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		collectors = append(collectors, c)
	}
	return collectors, nil
}

func (s *Store) GetCollector(ctx context.Context, id string) (*db.Collector, error) {
	doc, err := s.client.Collection(collectorsCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateErr(err)
	}
	var c db.Collector
	if err := doc.DataTo(&c); err != nil {
		return nil, fmt.Errorf("failed to decode collector %s: %w", id, err)
	}
	c.ID = doc.Ref.ID
	return &c, nil
}

func (s *Store) CreateCollector(ctx context.Context, c *db.Collector) (string, error) {
	docRef := s.client.Collection(collectorsCollection).NewDoc()
	if _, err := docRef.Create(ctx, c); err != nil {
		return "", err
	}
	return docRef.ID, nil
}

func (s *Store) UpdateCollector(ctx context.Context, id string, c *db.Collector) error {
	_, err := s.client.Collection(collectorsCollection).Doc(id).Set(ctx, c)
	return translateErr(err)
}

func (s *Store) DeleteCollector(ctx context.Context, id string) error {
	_, err := s.client.Collection(collectorsCollection).Doc(id).Delete(ctx)
	return translateErr(err)
}
