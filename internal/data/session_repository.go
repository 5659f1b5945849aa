package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarhub/internal/model"
)

// SessionRepository stores tutoring sessions.
type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection("sessions")}
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) (*model.InsertResult, error) {
	return insertOne(ctx, r.col, session)
}

func (r *SessionRepository) List(ctx context.Context) ([]*model.Session, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, handleError(err)
	}
	return count, nil
}

func (r *SessionRepository) ListByTutor(ctx context.Context, tutorEmail string, skip, limit int64) ([]*model.Session, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	return r.find(ctx, bson.M{"tutor_email": tutorEmail}, opts)
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id string, input *model.UpdateSessionStatusInput, mode UpdateMode) (*model.UpdateResult, error) {
	set := bson.M{
		"status":           input.Status,
		"registration_fee": input.RegistrationFee,
		"reason":           input.Reason,
		"feedback":         input.Feedback,
	}
	return updateByID(ctx, r.col, id, set, mode)
}

func (r *SessionRepository) Update(ctx context.Context, id string, input *model.UpdateSessionInput, mode UpdateMode) (*model.UpdateResult, error) {
	set := bson.M{
		"session_title":           input.Title,
		"description":             input.Description,
		"registration_start_date": input.RegistrationStartDate,
		"registration_end_date":   input.RegistrationEndDate,
		"class_start_time":        input.ClassStartTime,
		"class_end_time":          input.ClassEndTime,
		"session_duration":        input.Duration,
		"registration_fee":        input.RegistrationFee,
		"category":                input.Category,
		"status":                  input.Status,
	}
	return updateByID(ctx, r.col, id, set, mode)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}

func (r *SessionRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*model.Session, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, handleError(err)
	}
	var sessions []*model.Session
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, handleError(err)
	}
	return sessions, nil
}
