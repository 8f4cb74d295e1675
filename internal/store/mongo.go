package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akadam/exercise-tracker/internal/models"
)

var (
	// ErrNotFound means no user matched the given identifier.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidUserID means the identifier is not a valid object id.
	ErrInvalidUserID = errors.New("invalid userId")
)

// MongoStore handles user CRUD against the users collection, with
// exercises embedded in each user document.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("users")}
}

func (s *MongoStore) InsertUser(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{Username: username, Exercises: []models.Exercise{}}
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// ListUsers returns every user projected to {_id, username}, in
// collection iteration order.
func (s *MongoStore) ListUsers(ctx context.Context) ([]models.UserRef, error) {
	opts := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 1},
		{Key: "username", Value: 1},
	})
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.UserRef
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AddExercise appends an exercise to the user's log and returns the
// updated document, projected to username and exercise fields.
func (s *MongoStore) AddExercise(ctx context.Context, userID string, ex models.Exercise) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.D{
			{Key: "username", Value: 1},
			{Key: "exercises.description", Value: 1},
			{Key: "exercises.duration", Value: 1},
			{Key: "exercises.date", Value: 1},
		})

	var u models.User
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"exercises": ex}},
		opts,
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("mongo update: %w", err)
	}
	return &u, nil
}

// FindLog returns the user's exercise log, range-filtered and capped
// server-side.
func (s *MongoStore) FindLog(ctx context.Context, userID string, f models.LogFilter) (*models.UserLog, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	cur, err := s.col.Aggregate(ctx, logPipeline(oid, f))
	if err != nil {
		return nil, fmt.Errorf("mongo aggregate: %w", err)
	}
	defer cur.Close(ctx)

	var logs []models.UserLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, ErrNotFound
	}
	lg := logs[0]
	lg.Count = len(lg.Log)
	return &lg, nil
}

// logPipeline projects a user down to username plus the exercises whose
// dates fall strictly inside the filter's bounds, capped at its limit.
func logPipeline(id primitive.ObjectID, f models.LogFilter) mongo.Pipeline {
	var conds bson.A
	if !f.From.IsZero() {
		conds = append(conds, bson.M{"$gt": bson.A{"$$entry.date", f.From}})
	}
	if !f.To.IsZero() {
		conds = append(conds, bson.M{"$lt": bson.A{"$$entry.date", f.To}})
	}

	var entries interface{} = "$exercises"
	if len(conds) > 0 {
		entries = bson.M{"$filter": bson.M{
			"input": "$exercises",
			"as":    "entry",
			"cond":  bson.M{"$and": conds},
		}}
	}
	if f.Limit > 0 {
		entries = bson.M{"$slice": bson.A{entries, f.Limit}}
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$project", Value: bson.M{"username": 1, "exercises": entries}}},
	}
}
