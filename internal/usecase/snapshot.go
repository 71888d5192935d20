package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/cache"
	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// authorSnapshot is the denormalized author info stamped onto posts and
// comments at creation time. It is deliberately a snapshot; later profile
// edits do not rewrite existing documents, so the cache never needs
// invalidation and a stale hit is as good as a fresh read.
type authorSnapshot struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type snapshotSource struct {
	userRepo domain.UserRepo
	cache    *cache.Cache
}

func conciseUserKey(userId primitive.ObjectID) string {
	return fmt.Sprintf("concise:%s", userId.Hex())
}

func (s snapshotSource) get(ctx context.Context, userId primitive.ObjectID) (authorSnapshot, error) {
	key := conciseUserKey(userId)

	if s.cache != nil {
		if val, err := s.cache.GetValue(key); err == nil {
			var snap authorSnapshot
			if err := json.Unmarshal([]byte(val), &snap); err == nil {
				return snap, nil
			}
		}
	}

	user, err := s.userRepo.GetById(ctx, userId)
	if err != nil {
		return authorSnapshot{}, err
	}
	snap := authorSnapshot{Name: user.Name, Avatar: user.Avatar}

	// A cold or unreachable redis only costs the lookup above.
	if s.cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			if err := s.cache.SetValue(key, string(raw)); err == nil {
				s.cache.ExpireKey(key, cache.Expire18HR)
			}
		}
	}

	return snap, nil
}
