package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarhub/internal/model"
)

// BookedSessionRepository stores session bookings. Bookings are append-only.
type BookedSessionRepository struct {
	col *mongo.Collection
}

func NewBookedSessionRepository(db *mongo.Database) *BookedSessionRepository {
	return &BookedSessionRepository{col: db.Collection("bookedSessions")}
}

func (r *BookedSessionRepository) Create(ctx context.Context, booking *model.BookedSession) (*model.InsertResult, error) {
	return insertOne(ctx, r.col, booking)
}

func (r *BookedSessionRepository) ListByEmail(ctx context.Context, email string) ([]*model.BookedSession, error) {
	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, handleError(err)
	}
	var bookings []*model.BookedSession
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, handleError(err)
	}
	return bookings, nil
}
