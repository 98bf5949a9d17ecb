package repository

import (
	"context"
	"time"

	"scheduling/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRepository interface {
	Create(schedule *model.Schedule) error
	Update(schedule *model.Schedule) error
	FindByID(id string) (*model.Schedule, error)
	FindByOrganization(orgID string) ([]*model.Schedule, error)
	FindByOrganizationAndStatus(orgID string, status model.ScheduleStatus) ([]*model.Schedule, error)
}

type MongoScheduleRepository struct {
	collection *mongo.Collection
}

func NewMongoScheduleRepository(db *mongo.Database) *MongoScheduleRepository {
	return &MongoScheduleRepository{
		collection: db.Collection("schedules"),
	}
}

func (r *MongoScheduleRepository) Create(schedule *model.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, schedule)
	return err
}

func (r *MongoScheduleRepository) Update(schedule *model.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": schedule.ID}, schedule)
	return err
}

func (r *MongoScheduleRepository) FindByID(id string) (*model.Schedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var schedule model.Schedule
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&schedule)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &schedule, err
}

func (r *MongoScheduleRepository) FindByOrganization(orgID string) ([]*model.Schedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"organizationId": orgID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*model.Schedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *MongoScheduleRepository) FindByOrganizationAndStatus(orgID string, status model.ScheduleStatus) ([]*model.Schedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{
		"organizationId": orgID,
		"status":         status,
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*model.Schedule
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}
