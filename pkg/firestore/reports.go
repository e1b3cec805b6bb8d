package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/gwaste/gwaste/pkg/db"
)

// ListReports returns every citizen report, unresolved first.
func (s *Store) ListReports(ctx context.Context) ([]db.Report, error) {
	iter := s.client.Collection(reportsCollection).
		OrderBy("status", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	reports := []db.Report{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate reports: %w", err)
		}
		var r db.Report
		if err := doc.DataTo(&r); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", doc.Ref.ID, err)
		}
		r.ID = doc.Ref.ID
		reports = append(reports, r)
	}
	return reports, nil
}

func (s *Store) UpdateReportStatus(ctx context.Context, id, status string) error {
	_, err := s.client.Collection(reportsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
	})
	return translateErr(err)
}
