package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarhub/internal/model"
)

// ReviewRepository stores student reviews. Reviews are append-only.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (*model.InsertResult, error) {
	return insertOne(ctx, r.col, review)
}

func (r *ReviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, handleError(err)
	}
	var reviews []*model.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, handleError(err)
	}
	return reviews, nil
}
