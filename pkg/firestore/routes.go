package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gwaste/gwaste/pkg/db"
)

// ListRoutes returns every stored schedule ordered by route number.
func (s *Store) ListRoutes(ctx context.Context) ([]db.Route, error) {
	iter := s.client.Collection(routesCollection).
		OrderBy("route", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	routes := []db.Route{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate routes: %w", err)
		}
		var r db.Route
		if err := doc.DataTo(&r); err != nil {
			return nil, fmt.Errorf("failed to decode route %s: %w", doc.Ref.ID, err)
		}
		r.ID = doc.Ref.ID
		routes = append(routes, r)
	}
	return routes, nil
}

func (s *Store) GetRoute(ctx context.Context, id string) (*db.Route, error) {
	doc, err := s.client.Collection(routesCollection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateErr(err)
	}
	var r db.Route
	if err := doc.DataTo(&r); err != nil {
		return nil, fmt.Errorf("failed to decode route %s: %w", id, err)
	}
	r.ID = doc.Ref.ID
	return &r, nil
}

func (s *Store) CreateRoute(ctx context.Context, r *db.Route) (string, error) {
	docRef := s.client.Collection(routesCollection).NewDoc()
	if _, err := docRef.Create(ctx, r); err != nil {
		return "", err
	}
	return docRef.ID, nil
}

func (s *Store) UpdateRoute(ctx context.Context, id string, r *db.Route) error {
	_, err := s.client.Collection(routesCollection).Doc(id).Set(ctx, r)
	return translateErr(err)
}

// DeleteRoutesForDriver removes every schedule assigned to the driver in a
// single batch and returns how many were removed.
func (s *Store) DeleteRoutesForDriver(ctx context.Context, driver string) (int, error) {
	iter := s.client.Collection(routesCollection).
		Where("driver", "==", driver).
		Documents(ctx)
	defer iter.Stop()

	batch := s.client.Batch()
	n := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to iterate routes for driver: %w", err)
		}
		batch.Delete(doc.Ref)
		n++
	}
	if n == 0 {
		return 0, nil
	}
	if _, err := batch.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete routes for driver: %w", err)
	}
	return n, nil
}
