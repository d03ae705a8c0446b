package store

import (
	"context"
	"fmt"

	"github.com/Tekmindlabs/Aivy-Dojo/ent"
	"github.com/Tekmindlabs/Aivy-Dojo/ent/user"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, userID string) (*Profile, error) {
	u, err := r.client.User.Query().
		Where(user.ID(userID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user %s: %w", userID, err)
	}

	return &Profile{
		UserID:               u.ID,
		LearningStyle:        u.LearningStyle,
		DifficultyPreference: u.DifficultyPreference,
		Interests:            u.Interests,
	}, nil
}
