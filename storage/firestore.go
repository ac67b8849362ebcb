package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/myjobmatch/jobfeed/config"
	"github.com/myjobmatch/jobfeed/models"
)

const usersCollection = "users"

var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user with this email already exists")
)

// FirestoreClient stores accounts and their saved preferences. Accounts are
// keyed by lower-cased email.
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

func userKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (f *FirestoreClient) userDoc(id string) *firestore.DocumentRef {
	return f.client.Collection(usersCollection).Doc(userKey(id))
}

// CreateUser stores a new account and sets user.ID.
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Email = userKey(user.Email)

	if _, err := f.userDoc(user.Email).Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = user.Email
	return nil
}

// GetUser loads an account by id (its email).
func (f *FirestoreClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	doc, err := f.userDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return decodeUser(doc)
}

// GetUserByGoogleID finds the account linked to a Google subject.
func (f *FirestoreClient) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	iter := f.client.Collection(usersCollection).Where("googleId", "==", googleID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if errors.Is(err, iterator.Done) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return decodeUser(doc)
}

// LinkGoogleID attaches a Google subject to an existing account.
func (f *FirestoreClient) LinkGoogleID(ctx context.Context, id, googleID string) error {
	return f.update(ctx, id, firestore.Update{Path: "googleId", Value: googleID})
}

// GetPreferences returns the preferences saved on an account.
func (f *FirestoreClient) GetPreferences(ctx context.Context, id string) (models.UserPreferences, error) {
	user, err := f.GetUser(ctx, id)
	if err != nil {
		return models.UserPreferences{}, err
	}
	return user.Preferences, nil
}

// SavePreferences replaces the preferences saved on an account.
func (f *FirestoreClient) SavePreferences(ctx context.Context, id string, prefs models.UserPreferences) error {
	return f.update(ctx, id, firestore.Update{Path: "preferences", Value: prefs})
}

func (f *FirestoreClient) update(ctx context.Context, id string, updates ...firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	if _, err := f.userDoc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func decodeUser(doc *firestore.DocumentSnapshot) (*models.User, error) {
	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
