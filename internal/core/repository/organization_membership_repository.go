package repository

import (
	"context"
	"time"

	"scheduling/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrganizationMembershipRepository interface {
	Create(membership *model.OrganizationMembership) error
	Update(membership *model.OrganizationMembership) error
	FindByUserAndOrg(userID, orgID string) (*model.OrganizationMembership, error)
	FindByUser(userID string) ([]*model.OrganizationMembership, error)
	FindDefaultByUser(userID string) (*model.OrganizationMembership, error)
}

type MongoOrganizationMembershipRepository struct {
	collection *mongo.Collection
}

func NewMongoOrganizationMembershipRepository(db *mongo.Database) *MongoOrganizationMembershipRepository {
	return &MongoOrganizationMembershipRepository{
		collection: db.Collection("organizationMemberships"),
	}
}

func (r *MongoOrganizationMembershipRepository) Create(membership *model.OrganizationMembership) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, membership)
	return err
}

func (r *MongoOrganizationMembershipRepository) Update(membership *model.OrganizationMembership) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": membership.ID}, membership)
	return err
}

func (r *MongoOrganizationMembershipRepository) FindByUserAndOrg(userID, orgID string) (*model.OrganizationMembership, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var membership model.OrganizationMembership
	err := r.collection.FindOne(ctx, bson.M{
		"userId":         userID,
		"organizationId": orgID,
	}).Decode(&membership)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &membership, err
}

func (r *MongoOrganizationMembershipRepository) FindByUser(userID string) ([]*model.OrganizationMembership, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var memberships []*model.OrganizationMembership
	if err = cursor.All(ctx, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

func (r *MongoOrganizationMembershipRepository) FindDefaultByUser(userID string) (*model.OrganizationMembership, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var membership model.OrganizationMembership
	err := r.collection.FindOne(ctx, bson.M{
		"userId":    userID,
		"isDefault": true,
	}).Decode(&membership)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &membership, err
}
