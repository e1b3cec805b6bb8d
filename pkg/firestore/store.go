// Package firestore persists collectors, schedules, and citizen reports in
// Cloud Firestore and verifies dashboard sign-in tokens against Firebase
// Auth.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gwaste/gwaste/pkg/db"
)

const (
	collectorsCollection = "collectors"
	routesCollection     = "routes"
	reportsCollection    = "reports"
)

// Store wraps a Firestore client and the Firebase Auth client derived from
// the same app.
type Store struct {
	app    *firebase.App
	auth   *auth.Client
	client *firestore.Client
}

// New connects to Firestore for the given project. credentialsFile may be
// empty, in which case application default credentials are used.
func New(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise Firebase app: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise Firebase auth: %w", err)
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise Firestore client: %w", err)
	}

	return &Store{app: app, auth: authClient, client: client}, nil
}

// Close releases the underlying Firestore connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// translateErr maps a gRPC not-found status onto db.ErrNotFound so callers
// never depend on Firestore error types.
func translateErr(err error) error {
	if status.Code(err) == codes.NotFound {
		return db.ErrNotFound
	}
	return err
}
