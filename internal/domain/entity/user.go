package entity

import (
	"strings"
	"time"
)

type Role string

const (
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleFreelancer, RoleClient, RoleAdmin:
		return true
	}
	return false
}

// DefaultAvatarURL is assigned to new and cleared profiles.
const DefaultAvatarURL = "https://i.pinimg.com/originals/be/61/a4/be61a49e03cb65e9c26d86b15e63e12a.jpg"

type Profile struct {
	Bio       string   `json:"bio" firestore:"bio"`
	Skills    []string `json:"skills" firestore:"skills"`
	Portfolio []string `json:"portfolio" firestore:"portfolio"`
	Avatar    string   `json:"avatar" firestore:"avatar"`
}

func DefaultProfile() Profile {
	return Profile{
		Skills:    []string{},
		Portfolio: []string{},
		Avatar:    DefaultAvatarURL,
	}
}

// HasContent reports whether any of the user-authored fields are filled in.
// The avatar alone does not count.
func (p Profile) HasContent() bool {
	return p.Bio != "" || len(p.Skills) > 0 || len(p.Portfolio) > 0
}

type User struct {
	ID           string    `json:"id" firestore:"id"`
	FirstName    string    `json:"firstName" firestore:"firstName"`
	LastName     string    `json:"lastName" firestore:"lastName"`
	Email        string    `json:"email" firestore:"email"`
	PasswordHash string    `json:"-" firestore:"passwordHash"`
	Role         Role      `json:"role" firestore:"role"`
	RefreshToken string    `json:"-" firestore:"refreshToken"`
	Profile      Profile   `json:"profile" firestore:"profile"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`

	// UploadedAvatar is the last object stored through UploadAvatar. Only this
	// object is ever deleted from the bucket; Profile.Avatar is user input.
	UploadedAvatar string `json:"-" firestore:"uploadedAvatar,omitempty"`
}

// UserSummary is the identity subset embedded in other records' responses.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
