package server

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/marketpulse/internal/config"
	"github.com/jonathan/marketpulse/internal/db"
	"github.com/jonathan/marketpulse/internal/mail"
	"github.com/jonathan/marketpulse/internal/types"
)

// otpTTL is how long a verification code stays valid after issue.
const otpTTL = 10 * time.Minute

// UserStore is the subset of db operations the user service needs.
type UserStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	SetPendingVerification(ctx context.Context, id uuid.UUID, otp string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService provides business logic for user authentication operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
	mailer         mail.Sender
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig, mailer mail.Sender) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
		mailer:         mailer,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash
func convertDBUserToTypesUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:        dbUser.ID,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		Verified:  dbUser.Verified,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}

// Register creates a new unverified user and emails a verification code.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.issueOTP(ctx, userID, req.Email); err != nil {
		return nil, err
	}

	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// VerifyOTP checks the submitted code and marks the account verified.
func (s *UserService) VerifyOTP(ctx context.Context, email, otp string) (*types.User, error) {
	dbUser, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// An unknown email gets the same error as a wrong code.
	if dbUser == nil {
		return nil, &ErrInvalidOTP{}
	}
	if dbUser.Verified {
		return nil, &ErrAlreadyVerified{}
	}
	if dbUser.Pending == nil {
		return nil, &ErrInvalidOTP{}
	}
	if dbUser.Pending.Expired(time.Now().UTC()) {
		return nil, &ErrOTPExpired{}
	}
	if dbUser.Pending.OTP != otp {
		return nil, &ErrInvalidOTP{}
	}

	if err := s.store.MarkVerified(ctx, dbUser.ID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}

	verified, err := s.store.GetUser(ctx, dbUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve verified user: %w", err)
	}
	return convertDBUserToTypesUser(verified), nil
}

// ResendOTP issues a fresh verification code for an unverified account.
func (s *UserService) ResendOTP(ctx context.Context, email string) error {
	dbUser, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{Email: email}
	}
	if dbUser.Verified {
		return &ErrAlreadyVerified{}
	}

	return s.issueOTP(ctx, dbUser.ID, dbUser.Email)
}

// Login authenticates a user and returns user data. Unverified accounts are
// refused.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	if !dbUser.Verified {
		return nil, &ErrEmailNotVerified{}
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.store.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// issueOTP stores a fresh code on the user and emails it.
func (s *UserService) issueOTP(ctx context.Context, userID uuid.UUID, email string) error {
	otp, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	expiresAt := time.Now().UTC().Add(otpTTL)
	if err := s.store.SetPendingVerification(ctx, userID, otp, expiresAt); err != nil {
		return fmt.Errorf("failed to store pending verification: %w", err)
	}

	if err := s.mailer.SendOTP(email, otp); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

// generateOTP returns a random six-digit code with leading zeros preserved.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
