// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
)

const (
	profilesCollection = "profiles"
	savesCollection    = "saves"

	indexProfilesUsername = "ux_profiles_username"
	indexSavesUsername    = "ux_saves_username"
	indexLeaderboard      = "ix_leaderboard_score_date"
)

// profileDocument is the BSON shape of a credential in the profiles collection.
type profileDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Username       string             `bson:"username"`
	PasswordDigest []byte             `bson:"passwordDigest"`
	Salt           []byte             `bson:"salt"`
	IterationCount int                `bson:"iterationCount"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

// saveDocument is the BSON shape of a remote save in the saves collection.
type saveDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username"`
	Score       int                `bson:"score"`
	LastSaveUtc time.Time          `bson:"lastSaveUtc"`
}

// MongoDB owns the client connection and the game database handle.
type MongoDB struct {
	client *mongo.Client
	*mongo.Database
	logger *logger.Logger
}

// NewConnectMongo connects to cfg.URI, pings the primary and makes sure the
// indexes the repositories rely on exist.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during mongo connection")
		return nil, fmt.Errorf("%w: connect mongo: %w", ErrStoreUnavailable, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping mongo: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongo successfully")

	db := &MongoDB{
		client:   client,
		Database: client.Database(cfg.Database),
		logger:   log,
	}

	if err = EnsureMongoIndexes(ctx, db.Database); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating mongo indexes")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return db, nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// EnsureMongoIndexes creates the unique username indexes of both
// collections and the leaderboard index. It is idempotent.
//
// The unique index on saves.username keeps concurrent upserts for the same
// player from inserting two documents.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(profilesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(indexProfilesUsername),
	})
	if err != nil {
		return fmt.Errorf("%w: create profiles index: %w", ErrStoreUnavailable, err)
	}

	_, err = db.Collection(savesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(indexSavesUsername),
		},
		{
			Keys:    bson.D{{Key: "score", Value: -1}, {Key: "lastSaveUtc", Value: -1}},
			Options: options.Index().SetName(indexLeaderboard),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: create saves indexes: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// mongoError maps a driver error onto the store taxonomy.
func mongoError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUsername
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
