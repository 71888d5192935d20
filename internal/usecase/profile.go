package usecase

import (
	"context"
	"time"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type profileUC struct {
	profileRepo    domain.ProfileRepo
	userRepo       domain.UserRepo
	contextTimeout time.Duration
}

func NewProfileUC(pr domain.ProfileRepo, ur domain.UserRepo, timeout time.Duration) domain.ProfileUC {
	return profileUC{
		profileRepo:    pr,
		userRepo:       ur,
		contextTimeout: timeout,
	}
}

func (pu profileUC) GetMine(ctx context.Context, caller domain.Identity) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.profileRepo.GetByUser(ctx, caller.UserID)
}

func (pu profileUC) GetByUser(ctx context.Context, userId primitive.ObjectID) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.profileRepo.GetByUser(ctx, userId)
}

func (pu profileUC) GetAll(ctx context.Context) ([]domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.profileRepo.GetAll(ctx)
}

func (pu profileUC) Upsert(ctx context.Context, caller domain.Identity, fields domain.ProfileFields) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.profileRepo.Upsert(ctx, caller.UserID, fields)
}

func (pu profileUC) AddExperience(ctx context.Context, caller domain.Identity, exp domain.Experience) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	exp.Id = primitive.NewObjectID()
	return pu.profileRepo.AddExperience(ctx, caller.UserID, exp)
}

func (pu profileUC) RemoveExperience(ctx context.Context, caller domain.Identity, expId primitive.ObjectID) (domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()
	return pu.profileRepo.RemoveExperience(ctx, caller.UserID, expId)
}

// DeleteAccount removes the caller's profile and then the user record. The
// two deletes are sequential with no rollback; posts authored by the caller
// are left in place.
func (pu profileUC) DeleteAccount(ctx context.Context, caller domain.Identity) error {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	if err := pu.profileRepo.DeleteByUser(ctx, caller.UserID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return pu.userRepo.Delete(ctx, caller.UserID)
}
