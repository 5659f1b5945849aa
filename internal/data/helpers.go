package data

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"scholarhub/internal/errdefs"
	"scholarhub/internal/model"
)

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: malformed id %q", errdefs.ErrValidation, id)
	}
	return oid, nil
}

func insertOne(ctx context.Context, col *mongo.Collection, doc any) (*model.InsertResult, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return nil, handleError(err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected inserted id type", errdefs.ErrUpstream)
	}
	return &model.InsertResult{InsertedId: oid.Hex()}, nil
}

func updateByID(ctx context.Context, col *mongo.Collection, id string, set bson.M, mode UpdateMode) (*model.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	opts := options.Update()
	if mode == Upsert {
		opts.SetUpsert(true)
	}
	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, handleError(err)
	}
	if mode == UpdateExisting && res.MatchedCount == 0 {
		return nil, errdefs.ErrNotFound
	}
	out := &model.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if upserted, ok := res.UpsertedID.(primitive.ObjectID); ok {
		hex := upserted.Hex()
		out.UpsertedId = &hex
	}
	return out, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) (*model.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, handleError(err)
	}
	if res.DeletedCount == 0 {
		return nil, errdefs.ErrNotFound
	}
	return &model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
