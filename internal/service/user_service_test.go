package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lendcircle/internal/model"
)

// fakeCache is an in-memory stand-in for the redis-backed cache client.
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	return f.entries[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func TestUserService_GetUser_CachesResult(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, newFakeCache())

	repo.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "a@example.com", Name: "Ada"}, nil)

	first, err := svc.GetUser(context.Background(), 7)
	assert.NoError(t, err)
	second, err := svc.GetUser(context.Background(), 7)
	assert.NoError(t, err)

	assert.Equal(t, first.Email, second.Email)
	repo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestUserService_UpdateProfile_InvalidatesCache(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewUserService(repo, newFakeCache())

	user := &model.User{ID: 7, Email: "a@example.com", Name: "Ada", City: "Lagos"}
	repo.On("FindByID", mock.Anything, uint(7)).Return(user, nil)
	repo.On("Update", mock.Anything, user).Return(nil)

	// Prime the cache.
	_, err := svc.GetUser(context.Background(), 7)
	assert.NoError(t, err)
	repo.AssertNumberOfCalls(t, "FindByID", 1)

	user.City = "Accra"
	updated, err := svc.UpdateProfile(context.Background(), user)
	assert.NoError(t, err)
	assert.Equal(t, "Accra", updated.City)

	// The stale cached copy is gone: the next read goes to the repository.
	got, err := svc.GetUser(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, "Accra", got.City)
	repo.AssertNumberOfCalls(t, "FindByID", 2)
	repo.AssertExpectations(t)
}
