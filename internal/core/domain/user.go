package domain

import "time"

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID           uint64
	Nom          string
	Prenom       string
	Login        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// UserIdentity is the public subset of a user joined into grants and
// history entries.
type UserIdentity struct {
	ID     uint64
	Nom    string
	Prenom string
	Login  string
}

func (u User) Identity() UserIdentity {
	return UserIdentity{ID: u.ID, Nom: u.Nom, Prenom: u.Prenom, Login: u.Login}
}

type NewUserInput struct {
	Nom      string
	Prenom   string
	Login    string
	Password string
	Role     Role
}

// TokenClaims is the payload carried by a bearer token.
type TokenClaims struct {
	UserID uint64
	Login  string
	Role   Role
}

// Session is the result of a successful login.
type Session struct {
	Token string
	User  User
}
