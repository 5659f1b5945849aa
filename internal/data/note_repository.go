package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarhub/internal/model"
)

// NoteRepository stores personal study notes.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection("notes")}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.Note) (*model.InsertResult, error) {
	return insertOne(ctx, r.col, note)
}

func (r *NoteRepository) GetByID(ctx context.Context, id string) (*model.Note, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var note model.Note
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&note); err != nil {
		return nil, handleError(err)
	}
	return &note, nil
}

func (r *NoteRepository) ListByOwner(ctx context.Context, email string) ([]*model.Note, error) {
	cur, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, handleError(err)
	}
	var notes []*model.Note
	if err := cur.All(ctx, &notes); err != nil {
		return nil, handleError(err)
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, id string, input *model.UpdateNoteInput, mode UpdateMode) (*model.UpdateResult, error) {
	set := bson.M{
		"title":       input.Title,
		"description": input.Description,
	}
	return updateByID(ctx, r.col, id, set, mode)
}

func (r *NoteRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	return deleteByID(ctx, r.col, id)
}
