package store

import (
	"context"
	"fmt"

	"github.com/Tekmindlabs/Aivy-Dojo/ent"
	"github.com/google/uuid"
)

type chatRepo struct {
	client *ent.Client
}

func (r *chatRepo) Append(ctx context.Context, rec ChatRecord) error {
	metadata := map[string]any{
		"personalization": map[string]any{
			"learningStyle": rec.Personalization.LearningStyle,
			"difficulty":    rec.Personalization.Difficulty,
			"interests":     rec.Personalization.Interests,
		},
	}

	_, err := r.client.Chat.Create().
		SetID(uuid.NewString()).
		SetUserID(rec.UserID).
		SetMessage(rec.Message).
		SetResponse(rec.Response).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat record: %w", err)
	}

	return nil
}
