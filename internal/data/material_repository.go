package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarhub/internal/model"
)

// MaterialRepository stores study materials shared by tutors.
type MaterialRepository struct {
	col *mongo.Collection
}

func NewMaterialRepository(db *mongo.Database) *MaterialRepository {
	return &MaterialRepository{col: db.Collection("materials")}
}

func (r *MaterialRepository) Create(ctx context.Context, material *model.Material) (*model.InsertResult, error) {
	return insertOne(ctx, r.col, material)
}

func (r *MaterialRepository) GetByID(ctx context.Context, id string) (*model.Material, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var material model.Material
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&material); err != nil {
		return nil, handleError(err)
	}
	return &material, nil
}

func (r *MaterialRepository) List(ctx context.Context, skip, limit int64) ([]*model.Material, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, handleError(err)
	}
	var materials []*model.Material
	if err := cur.All(ctx, &materials); err != nil {
		return nil, handleError(err)
	}
	return materials, nil
}

func (r *MaterialRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, handleError(err)
	}
	return count, nil
}

func (r *MaterialRepository) ListByTutor(ctx context.Context, tutorEmail string) ([]*model.Material, error) {
	cur, err := r.col.Find(ctx, bson.M{"tutor_email": tutorEmail})
	if err != nil {
		return nil, handleError(err)
	}
	var materials []*model.Material
	if err := cur.All(ctx, &materials); err != nil {
		return nil, handleError(err)
	}
	return materials, nil
}

func (r *MaterialRepository) Update(ctx context.Context, id string, input *model.UpdateMaterialInput, mode UpdateMode) (*model.UpdateResult, error) {
	set := bson.M{
		"title": input.Title,
		"link":  input.Link,
		"img":   input.Img,
	}
	return updateByID(ctx, r.col, id, set, mode)
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}
