package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"strive/backend/internal/domain"
	"strive/backend/internal/repository"
)

const accountCollectionName = "users"

// mongoAccountRepository implements repository.AccountRepository using MongoDB.
type mongoAccountRepository struct {
	collection *mongo.Collection
}

// NewMongoAccountRepository creates a new account repository backed by the
// users collection of the given database.
func NewMongoAccountRepository(db *mongo.Database) repository.AccountRepository {
	return &mongoAccountRepository{
		collection: db.Collection(accountCollectionName),
	}
}

// Create inserts a new account. The maxima default to zero and the
// totalWeight field is intentionally left out of the document until the
// first submission increments it (the Account bson tags take care of that).
//
// There is deliberately no duplicate email/username check here; registration
// never had one. See README, "Known gaps".
func (r *mongoAccountRepository) Create(ctx context.Context, account *domain.Account) (primitive.ObjectID, error) {
	if account.Email == "" || account.Username == "" || account.Name == "" {
		return primitive.NilObjectID, errors.New("account email, username, and name are required")
	}

	account.ID = primitive.NewObjectID()
	if account.Workouts == nil {
		account.Workouts = []domain.Exercise{}
	}

	result, err := r.collection.InsertOne(ctx, account)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByID retrieves an account by its MongoDB ObjectID.
func (r *mongoAccountRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Account, error) {
	var account domain.Account
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetByNameAndEmail retrieves the account whose name AND email both match.
// This is the login lookup: an identity claim check, not authentication.
func (r *mongoAccountRepository) GetByNameAndEmail(ctx context.Context, name, email string) (*domain.Account, error) {
	var account domain.Account
	filter := bson.M{"name": name, "email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetAll retrieves every account. The leaderboard builder projects over the
// full set; the user base this serves is small enough to read in one pass.
func (r *mongoAccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	accounts := []domain.Account{}
	if err = cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ApplyStats persists a submission's effect on the account in one atomic
// update: $set for the maxima, $inc for the running total. Two concurrent
// submissions for the same account both land their increment this way; a
// compute-then-overwrite replacement would lose one of them.
func (r *mongoAccountRepository) ApplyStats(ctx context.Context, id primitive.ObjectID, maxima domain.LiftMaxima, delta float64) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"maxBench":    maxima.Bench,
			"maxSquat":    maxima.Squat,
			"maxDeadlift": maxima.Deadlift,
		},
		"$inc": bson.M{"totalWeight": delta},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAccountIndexes creates indexes for the users collection. The
// name+email index backs the login lookup. It is NOT unique: registration
// never prevented duplicate emails, and a unique index would change that
// observable behavior.
func EnsureAccountIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
