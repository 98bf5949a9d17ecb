package repository

import (
	"fmt"
	"sync"

	"scheduling/internal/core/model"
)

type inMemoryOrganizationMembershipRepository struct {
	memberships map[string]*model.OrganizationMembership
	mutex       sync.RWMutex
}

func NewInMemoryOrganizationMembershipRepository() OrganizationMembershipRepository {
	return &inMemoryOrganizationMembershipRepository{
		memberships: make(map[string]*model.OrganizationMembership),
	}
}

func pairKey(userID, orgID string) string {
	return fmt.Sprintf("%s:%s", userID, orgID)
}

func (r *inMemoryOrganizationMembershipRepository) Create(membership *model.OrganizationMembership) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := pairKey(membership.UserID, membership.OrganizationID)
	if _, exists := r.memberships[key]; exists {
		return fmt.Errorf("membership already exists")
	}

	copied := *membership
	r.memberships[key] = &copied
	return nil
}

func (r *inMemoryOrganizationMembershipRepository) Update(membership *model.OrganizationMembership) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := pairKey(membership.UserID, membership.OrganizationID)
	if _, exists := r.memberships[key]; !exists {
		return fmt.Errorf("membership not found")
	}

	copied := *membership
	r.memberships[key] = &copied
	return nil
}

func (r *inMemoryOrganizationMembershipRepository) FindByUserAndOrg(userID, orgID string) (*model.OrganizationMembership, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if membership, exists := r.memberships[pairKey(userID, orgID)]; exists {
		copied := *membership
		return &copied, nil
	}
	return nil, nil
}

func (r *inMemoryOrganizationMembershipRepository) FindByUser(userID string) ([]*model.OrganizationMembership, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.OrganizationMembership
	for _, membership := range r.memberships {
		if membership.UserID == userID {
			copied := *membership
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *inMemoryOrganizationMembershipRepository) FindDefaultByUser(userID string) (*model.OrganizationMembership, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, membership := range r.memberships {
		if membership.UserID == userID && membership.IsDefault {
			copied := *membership
			return &copied, nil
		}
	}
	return nil, nil
}
