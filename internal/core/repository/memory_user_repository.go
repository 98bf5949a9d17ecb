package repository

import (
	"fmt"
	"sync"

	"scheduling/internal/core/model"
)

type inMemoryUserRepository struct {
	users map[string]*model.User
	mutex sync.RWMutex
}

func NewInMemoryUserRepository() UserRepository {
	return &inMemoryUserRepository{
		users: make(map[string]*model.User),
	}
}

func (r *inMemoryUserRepository) Create(user *model.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.users {
		if existing.ClerkID == user.ClerkID {
			return fmt.Errorf("user with clerk id %s already exists", user.ClerkID)
		}
	}

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *inMemoryUserRepository) Update(user *model.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		return fmt.Errorf("user not found")
	}

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *inMemoryUserRepository) FindByID(id string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if user, exists := r.users[id]; exists {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemoryUserRepository) FindByClerkID(clerkID string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, user := range r.users {
		if user.ClerkID == clerkID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepository) FindByEmail(email string) (*model.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}
