// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

// mongoSaveRepository is the MongoDB-backed implementation of
// [SaveRepository].
type mongoSaveRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoSaveRepository constructs a [SaveRepository] over the saves
// collection of db.
func NewMongoSaveRepository(db *mongo.Database, logger *logger.Logger) SaveRepository {
	logger.Debug().Msg("creating mongo save repository")
	return &mongoSaveRepository{
		coll:   db.Collection(savesCollection),
		logger: logger,
	}
}

// UpsertSave implements [SaveRepository] with a single FindOneAndUpdate.
//
// Two first-time upserts for the same username can race on the unique
// index; the loser gets a duplicate key error and is retried once, at which
// point the document exists and the update path is taken.
func (r *mongoSaveRepository) UpsertSave(ctx context.Context, username string, score int, at time.Time) (models.RemoteSave, error) {
	log := logger.FromContext(ctx)

	filter := bson.M{"username": username}
	update := bson.M{"$set": bson.M{
		"username":    username,
		"score":       score,
		"lastSaveUtc": models.Timestamp(at),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc saveDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		log.Debug().Str("func", "*mongoSaveRepository.UpsertSave").Msg("upsert raced on unique index, retrying")
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoSaveRepository.UpsertSave").Msg("error upserting save")
		return models.RemoteSave{}, mongoError(err)
	}

	return doc.toModel(), nil
}

// LoadSave implements [SaveRepository].
func (r *mongoSaveRepository) LoadSave(ctx context.Context, username string) (models.RemoteSave, error) {
	var doc saveDocument
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.RemoteSave{}, ErrSaveNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSaveRepository.LoadSave").Msg("error loading save")
		return models.RemoteSave{}, mongoError(err)
	}

	return doc.toModel(), nil
}

// TopN implements [SaveRepository]. _id is the last sort key so that equal
// scores saved in the same millisecond still come back in a stable order.
func (r *mongoSaveRepository) TopN(ctx context.Context, n int) ([]models.RemoteSave, error) {
	if n <= 0 {
		return []models.RemoteSave{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "score", Value: -1},
			{Key: "lastSaveUtc", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetLimit(int64(n))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSaveRepository.TopN").Msg("error querying leaderboard")
		return nil, mongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []saveDocument
	if err = cursor.All(ctx, &docs); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSaveRepository.TopN").Msg("error decoding leaderboard")
		return nil, mongoError(err)
	}

	result := make([]models.RemoteSave, 0, len(docs))
	for _, doc := range docs {
		result = append(result, doc.toModel())
	}
	return result, nil
}

// DeleteSave implements [SaveRepository].
func (r *mongoSaveRepository) DeleteSave(ctx context.Context, username string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"username": username}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSaveRepository.DeleteSave").Msg("error deleting save")
		return mongoError(err)
	}
	return nil
}

func (d saveDocument) toModel() models.RemoteSave {
	return models.RemoteSave{
		ID:                d.ID.Hex(),
		Username:          d.Username,
		Score:             d.Score,
		LastSaveTimestamp: models.Timestamp(d.LastSaveUtc),
	}
}
