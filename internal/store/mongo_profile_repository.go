// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/models"
)

// mongoProfileRepository is the MongoDB-backed implementation of
// [ProfileRepository]. Username uniqueness is enforced by the
// ux_profiles_username index, not by a read-before-write.
type mongoProfileRepository struct {
	coll   *mongo.Collection
	logger *logger.Logger
}

// NewMongoProfileRepository constructs a [ProfileRepository] over the
// profiles collection of db.
func NewMongoProfileRepository(db *mongo.Database, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating mongo profile repository")
	return &mongoProfileRepository{
		coll:   db.Collection(profilesCollection),
		logger: logger,
	}
}

// CreateProfile implements [ProfileRepository].
func (r *mongoProfileRepository) CreateProfile(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	_, err := r.coll.InsertOne(ctx, profileDocument{
		Username:       credential.Username,
		PasswordDigest: credential.PasswordDigest,
		Salt:           credential.Salt,
		IterationCount: credential.IterationCount,
		CreatedAt:      models.Timestamp(credential.CreatedAt),
	})
	if err != nil {
		mapped := mongoError(err)
		if !errors.Is(mapped, ErrDuplicateUsername) {
			log.Err(err).Str("func", "*mongoProfileRepository.CreateProfile").Msg("error inserting profile")
		}
		return mapped
	}

	return nil
}

// FindProfile implements [ProfileRepository].
func (r *mongoProfileRepository) FindProfile(ctx context.Context, username string) (models.Credential, error) {
	var doc profileDocument
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Credential{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoProfileRepository.FindProfile").Msg("error finding profile")
		return models.Credential{}, mongoError(err)
	}

	return models.Credential{
		Username:       doc.Username,
		PasswordDigest: doc.PasswordDigest,
		Salt:           doc.Salt,
		IterationCount: doc.IterationCount,
		CreatedAt:      models.Timestamp(doc.CreatedAt),
	}, nil
}

// DeleteProfile implements [ProfileRepository].
func (r *mongoProfileRepository) DeleteProfile(ctx context.Context, username string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoProfileRepository.DeleteProfile").Msg("error deleting profile")
		return mongoError(err)
	}
	if res.DeletedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}
