package firestore

import (
	"context"
	"fmt"

	"github.com/gwaste/gwaste/pkg/db"
)

// VerifyIDToken checks a Firebase ID token and returns the signed-in admin's
// identity. Display name and email come from the token claims when present.
func (s *Store) VerifyIDToken(ctx context.Context, idToken string) (*db.Identity, error) {
	token, err := s.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	identity := &db.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}
