package service

import (
	"context"

	"github.com/blaisecz/wellbeing-tracker/internal/domain"
	"github.com/blaisecz/wellbeing-tracker/internal/repository"
	"github.com/google/uuid"
)

// ensureUser returns domain.ErrNotFound for unknown users.
func ensureUser(ctx context.Context, users repository.UserRepository, userID uuid.UUID) error {
	exists, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

// nonNilStrings returns the tags with duplicates removed, first occurrence
// first. Tag columns hold sets and are never stored as null.
func nonNilStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
