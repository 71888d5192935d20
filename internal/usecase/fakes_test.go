package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/TestingSDK2/sidekiq-backend/sidekiq-network/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The fakes below implement the same conditional-update contract as the
// mongo repositories, guarded by a mutex so concurrency tests exercise the
// engine the way parallel requests would.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[primitive.ObjectID]domain.User)}
	for _, u := range users {
		repo.users[u.Id] = u
	}
	return repo
}

func (fr *fakeUserRepo) GetById(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	user, ok := fr.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (fr *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	delete(fr.users, id)
	return nil
}

func clonePost(p domain.Post) domain.Post {
	cp := p
	cp.Likes = append([]domain.Like{}, p.Likes...)
	cp.Comments = append([]domain.Comment{}, p.Comments...)
	return cp
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]domain.Post
}

func newFakePostRepo(posts ...domain.Post) *fakePostRepo {
	repo := &fakePostRepo{posts: make(map[primitive.ObjectID]domain.Post)}
	for _, p := range posts {
		repo.posts[p.Id] = clonePost(p)
	}
	return repo
}

func (fr *fakePostRepo) Create(ctx context.Context, post domain.Post) (domain.Post, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	fr.posts[post.Id] = clonePost(post)
	return clonePost(post), nil
}

func (fr *fakePostRepo) GetById(ctx context.Context, id primitive.ObjectID) (domain.Post, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	post, ok := fr.posts[id]
	if !ok {
		return domain.Post{}, domain.ErrNotFound
	}
	return clonePost(post), nil
}

func (fr *fakePostRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	posts := make([]domain.Post, 0, len(fr.posts))
	for _, p := range fr.posts {
		posts = append(posts, clonePost(p))
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (fr *fakePostRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if _, ok := fr.posts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(fr.posts, id)
	return nil
}

func (fr *fakePostRepo) AddLike(ctx context.Context, postId primitive.ObjectID, like domain.Like) (bool, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	post, ok := fr.posts[postId]
	if !ok {
		return false, nil
	}
	for _, l := range post.Likes {
		if l.User == like.User {
			return false, nil
		}
	}
	post.Likes = append([]domain.Like{like}, post.Likes...)
	fr.posts[postId] = post
	return true, nil
}

func (fr *fakePostRepo) RemoveLike(ctx context.Context, postId, userId primitive.ObjectID) (bool, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	post, ok := fr.posts[postId]
	if !ok {
		return false, domain.ErrNotFound
	}
	for i, l := range post.Likes {
		if l.User == userId {
			post.Likes = append(post.Likes[:i:i], post.Likes[i+1:]...)
			fr.posts[postId] = post
			return true, nil
		}
	}
	return false, nil
}

func (fr *fakePostRepo) AddComment(ctx context.Context, postId primitive.ObjectID, comment domain.Comment) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	post, ok := fr.posts[postId]
	if !ok {
		return domain.ErrNotFound
	}
	post.Comments = append([]domain.Comment{comment}, post.Comments...)
	fr.posts[postId] = post
	return nil
}

func (fr *fakePostRepo) RemoveComment(ctx context.Context, postId, commentId primitive.ObjectID) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	post, ok := fr.posts[postId]
	if !ok {
		return domain.ErrNotFound
	}
	for i, cm := range post.Comments {
		if cm.Id == commentId {
			post.Comments = append(post.Comments[:i:i], post.Comments[i+1:]...)
			fr.posts[postId] = post
			return nil
		}
	}
	return domain.ErrNotFound
}

func cloneProfile(p domain.Profile) domain.Profile {
	cp := p
	cp.Skills = append([]string{}, p.Skills...)
	cp.Experience = append([]domain.Experience{}, p.Experience...)
	return cp
}

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[primitive.ObjectID]domain.Profile // keyed by owning user
}

func newFakeProfileRepo(profiles ...domain.Profile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[primitive.ObjectID]domain.Profile)}
	for _, p := range profiles {
		repo.profiles[p.User] = cloneProfile(p)
	}
	return repo
}

func (fr *fakeProfileRepo) GetByUser(ctx context.Context, userId primitive.ObjectID) (domain.Profile, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	profile, ok := fr.profiles[userId]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	return cloneProfile(profile), nil
}

func (fr *fakeProfileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	profiles := make([]domain.Profile, 0, len(fr.profiles))
	for _, p := range fr.profiles {
		profiles = append(profiles, cloneProfile(p))
	}
	return profiles, nil
}

func (fr *fakeProfileRepo) Upsert(ctx context.Context, userId primitive.ObjectID, fields domain.ProfileFields) (domain.Profile, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	profile, ok := fr.profiles[userId]
	if !ok {
		profile = domain.Profile{
			Id:         primitive.NewObjectID(),
			User:       userId,
			Experience: []domain.Experience{},
		}
	}
	profile.Company = fields.Company
	profile.Website = fields.Website
	profile.Location = fields.Location
	profile.Status = fields.Status
	profile.Bio = fields.Bio
	profile.GithubUsername = fields.GithubUsername
	profile.Skills = append([]string{}, fields.Skills...)
	profile.Social = fields.Social
	fr.profiles[userId] = profile
	return cloneProfile(profile), nil
}

func (fr *fakeProfileRepo) AddExperience(ctx context.Context, userId primitive.ObjectID, exp domain.Experience) (domain.Profile, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	profile, ok := fr.profiles[userId]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	profile.Experience = append([]domain.Experience{exp}, profile.Experience...)
	fr.profiles[userId] = profile
	return cloneProfile(profile), nil
}

func (fr *fakeProfileRepo) RemoveExperience(ctx context.Context, userId, expId primitive.ObjectID) (domain.Profile, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	profile, ok := fr.profiles[userId]
	if !ok {
		return domain.Profile{}, domain.ErrNotFound
	}
	for i, e := range profile.Experience {
		if e.Id == expId {
			profile.Experience = append(profile.Experience[:i:i], profile.Experience[i+1:]...)
			fr.profiles[userId] = profile
			return cloneProfile(profile), nil
		}
	}
	return domain.Profile{}, domain.ErrNotFound
}

func (fr *fakeProfileRepo) DeleteByUser(ctx context.Context, userId primitive.ObjectID) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	delete(fr.profiles, userId)
	return nil
}
