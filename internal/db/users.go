package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CheckEmailExists reports whether a user with the given email is registered
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	count, err := db.users().CountDocuments(ctx, bson.M{"email": normalizeEmail(email)})
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

// CreateUser creates an unverified user and returns its ID
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now().UTC()

	doc := userDoc{
		ID:           id.String(),
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.users().InsertOne(ctx, doc); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	var doc userDoc
	err := db.users().FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.toUser()
}

// GetUserByEmail retrieves a user by email
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var doc userDoc
	err := db.users().FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return doc.toUser()
}

// SetPendingVerification attaches a fresh OTP to the user
func (db *DB) SetPendingVerification(ctx context.Context, id uuid.UUID, otp string, expiresAt time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"pendingVerification": PendingVerification{OTP: otp, ExpiresAt: expiresAt},
			"updatedAt":           time.Now().UTC(),
		},
	}
	result, err := db.users().UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return fmt.Errorf("failed to set pending verification: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// MarkVerified clears the pending verification and flags the user verified
func (db *DB) MarkVerified(ctx context.Context, id uuid.UUID) error {
	update := bson.M{
		"$set":   bson.M{"verified": true, "updatedAt": time.Now().UTC()},
		"$unset": bson.M{"pendingVerification": ""},
	}
	result, err := db.users().UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// UpdatePassword replaces the user's password hash
func (db *DB) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	update := bson.M{
		"$set": bson.M{"passwordHash": passwordHash, "updatedAt": time.Now().UTC()},
	}
	result, err := db.users().UpdateOne(ctx, bson.M{"_id": id.String()}, update)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("user not found: %s", id)
	}
	return nil
}

// normalizeEmail lowercases and trims an email for lookup consistency
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
