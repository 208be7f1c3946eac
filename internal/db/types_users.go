package db

import (
	"time"

	"github.com/google/uuid"
)

// PendingVerification is the OTP state attached to a user while email
// verification is outstanding. Absent entirely once the user is verified.
type PendingVerification struct {
	OTP       string    `bson:"otp" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Expired reports whether the OTP is past its expiry at the given time.
func (p *PendingVerification) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// User represents a registered API user
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Verified     bool
	Pending      *PendingVerification
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// userDoc is the bson shape of a user. The UUID is stored as its string
// form under _id so documents stay readable in the shell.
type userDoc struct {
	ID           string               `bson:"_id"`
	Name         string               `bson:"name"`
	Email        string               `bson:"email"`
	PasswordHash string               `bson:"passwordHash"`
	Verified     bool                 `bson:"verified"`
	Pending      *PendingVerification `bson:"pendingVerification,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

func (d *userDoc) toUser() (*User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Verified:     d.Verified,
		Pending:      d.Pending,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}
