package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Tekmindlabs/Aivy-Dojo/ent"
	"github.com/Tekmindlabs/Aivy-Dojo/ent/session"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) UserIDForToken(ctx context.Context, token string) (string, error) {
	s, err := r.client.Session.Query().
		Where(session.Token(token)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query session: %w", err)
	}

	if !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(time.Now()) {
		return "", nil
	}

	return s.UserID, nil
}
