package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/domain"
	"github.com/Soruj24/e-Commarce-tsx-server/internal/core/ports"
)

const collectionUsers = "users"

// userDocument is the persistence shape of a user account. The _id is a
// Mongo ObjectID; domain ids are its hex form.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password,omitempty"`
	ImageURL     string             `bson:"image"`
	Role         string             `bson:"role"`
	IsAdmin      bool               `bson:"isAdmin"`
	IsActive     bool               `bson:"isActive"`
	IsBanned     bool               `bson:"isBanned"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		ImageURL:     d.ImageURL,
		Role:         d.Role,
		IsAdmin:      d.IsAdmin,
		IsActive:     d.IsActive,
		IsBanned:     d.IsBanned,
		CreatedAt:    d.CreatedAt,
	}
}

// readProjection strips the password digest on every read path. The digest
// only travels on FindByEmail, which the service uses internally.
var readProjection = bson.M{"password": 0}

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// Create inserts a new user document. A unique index violation on email is
// surfaced as domain.ErrEmailTaken; the index is authoritative over any
// pre-insert existence check.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDocument{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		ImageURL:     user.ImageURL,
		Role:         user.Role,
		IsAdmin:      user.IsAdmin,
		IsActive:     user.IsActive,
		IsBanned:     user.IsBanned,
		CreatedAt:    user.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	created := doc.toDomain()
	created.PasswordHash = ""
	return created, nil
}

// FindByEmail retrieves a user by exact email, including the password digest.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindByID retrieves a user by hex id with the password digest projected out.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}

	var doc userDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(readProjection)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// UpdateByID sets the username and returns the updated record.
func (r *UserRepository) UpdateByID(ctx context.Context, id string, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(readProjection)

	var doc userDocument
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"username": username}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// DeleteByID removes the user and returns the deleted record.
func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidUserID
	}

	var doc userDocument
	err = r.col.FindOneAndDelete(ctx,
		bson.M{"_id": oid},
		options.FindOneAndDelete().SetProjection(readProjection),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// FindPage returns one page of users matching filter plus the total count of
// matches across all pages. Sorting and paging are pushed down to the store.
func (r *UserRepository) FindPage(ctx context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildListQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	order := -1
	if filter.Ascending {
		order = 1
	}

	opts := options.Find().
		SetProjection(readProjection).
		SetSort(bson.D{{Key: filter.SortBy, Value: order}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	users := make([]*domain.User, 0, filter.Limit)
	for cur.Next(ctx) {
		var doc userDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, err
		}
		users = append(users, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func buildListQuery(filter ports.ListUsersFilter) bson.M {
	query := bson.M{}

	if filter.Search != "" {
		// Quote the term so user input matches literally.
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"username": pattern},
			bson.M{"email": pattern},
			bson.M{"role": pattern},
		}
	}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	return query
}

// EnsureIndexes creates the unique email index. It must run before the API
// accepts traffic; the uniqueness guarantee underpins signup conflict handling.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
