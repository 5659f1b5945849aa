package data

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"scholarhub/internal/model"
)

// UserRepository stores user records keyed by email.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	return insertOne(ctx, r.col, user)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	return r.find(ctx, bson.M{})
}

// SearchByName matches a case-insensitive substring of the display name.
func (r *UserRepository) SearchByName(ctx context.Context, search string) ([]*model.User, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: search, Options: "i"}}
	return r.find(ctx, filter)
}

func (r *UserRepository) SetRole(ctx context.Context, id string, role model.Role, mode UpdateMode) (*model.UpdateResult, error) {
	return updateByID(ctx, r.col, id, bson.M{"role": role}, mode)
}

func (r *UserRepository) find(ctx context.Context, filter bson.M) ([]*model.User, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, handleError(err)
	}
	var users []*model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, handleError(err)
	}
	return users, nil
}
