package repository

import (
	"context"
	"time"

	"scheduling/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrganizationRepository interface {
	Create(org *model.Organization) error
	Update(org *model.Organization) error
	FindByID(id string) (*model.Organization, error)
	FindByClerkOrgID(clerkOrgID string) (*model.Organization, error)
	FindBySlug(slug string) (*model.Organization, error)
}

type MongoOrganizationRepository struct {
	collection *mongo.Collection
}

func NewMongoOrganizationRepository(db *mongo.Database) *MongoOrganizationRepository {
	return &MongoOrganizationRepository{
		collection: db.Collection("organizations"),
	}
}

func (r *MongoOrganizationRepository) Create(org *model.Organization) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, org)
	return err
}

func (r *MongoOrganizationRepository) Update(org *model.Organization) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": org.ID}, org)
	return err
}

func (r *MongoOrganizationRepository) FindByID(id string) (*model.Organization, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var org model.Organization
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &org, err
}

func (r *MongoOrganizationRepository) FindByClerkOrgID(clerkOrgID string) (*model.Organization, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var org model.Organization
	err := r.collection.FindOne(ctx, bson.M{"clerkOrgId": clerkOrgID}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &org, err
}

func (r *MongoOrganizationRepository) FindBySlug(slug string) (*model.Organization, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var org model.Organization
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &org, err
}
