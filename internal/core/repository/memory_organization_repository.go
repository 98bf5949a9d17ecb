package repository

import (
	"fmt"
	"sync"

	"scheduling/internal/core/model"
)

type inMemoryOrganizationRepository struct {
	orgs  map[string]*model.Organization
	mutex sync.RWMutex
}

func NewInMemoryOrganizationRepository() OrganizationRepository {
	return &inMemoryOrganizationRepository{
		orgs: make(map[string]*model.Organization),
	}
}

func (r *inMemoryOrganizationRepository) Create(org *model.Organization) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.orgs {
		if existing.ClerkOrgID == org.ClerkOrgID {
			return fmt.Errorf("organization with clerk org id %s already exists", org.ClerkOrgID)
		}
	}

	copied := *org
	r.orgs[org.ID] = &copied
	return nil
}

func (r *inMemoryOrganizationRepository) Update(org *model.Organization) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.orgs[org.ID]; !exists {
		return fmt.Errorf("organization not found")
	}

	copied := *org
	r.orgs[org.ID] = &copied
	return nil
}

func (r *inMemoryOrganizationRepository) FindByID(id string) (*model.Organization, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if org, exists := r.orgs[id]; exists {
		copied := *org
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemoryOrganizationRepository) FindByClerkOrgID(clerkOrgID string) (*model.Organization, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, org := range r.orgs {
		if org.ClerkOrgID == clerkOrgID {
			copied := *org
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *inMemoryOrganizationRepository) FindBySlug(slug string) (*model.Organization, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, org := range r.orgs {
		if org.Slug == slug {
			copied := *org
			return &copied, nil
		}
	}
	return nil, nil
}
