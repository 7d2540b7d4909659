package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dome-hr/dome-backend/internal"
)

// Role identifiers as stored in users.id_roles.
const (
	RoleHCTreg     = 1 // HC-TREG admin
	RoleISH        = 2 // ISH admin
	RoleWitel      = 3 // Witel admin
	RoleSupervisor = 4 // outsource-supervisor admin
)

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IDRoles  int    `json:"id_roles"`
}

func (u *User) HasRole(roles ...int) bool {
	for _, r := range roles {
		if u.IDRoles == r {
			return true
		}
	}
	return false
}

// Capability checks implementing the canonical role matrix. Handlers gate via
// middleware, services re-check through these before mutating anything.

func (u *User) CanEditKaryawan() bool {
	return u.HasRole(RoleHCTreg, RoleISH)
}

func (u *User) CanCreateMutasi() bool {
	return u.HasRole(RoleISH)
}

func (u *User) CanEditMutasi() bool {
	return u.HasRole(RoleHCTreg, RoleISH)
}

func (u *User) CanDeleteMutasi() bool {
	return u.HasRole(RoleISH)
}

func (u *User) CanDecideMutasi() bool {
	return u.HasRole(RoleSupervisor)
}

func (u *User) CanSubmitRating() bool {
	return u.HasRole(RoleISH)
}

func (u *User) CanViewRatingDetail() bool {
	return u.HasRole(RoleISH, RoleSupervisor)
}

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (LoginResponse, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUserByID(userID int64) (*User, error)
	HashPassword(password string) (string, error)
}

type RepositoryAPI interface {
	GetCredentials(username string) (passwordHash string, user *User, err error)
	GetUserByID(userID int64) (*User, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(user *User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Claims carries the session identity inside the signed token, so requests
// can be authorized without a session store.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	IDRoles  int    `json:"id_roles"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret         []byte
	AccessTokenTTL time.Duration
}

var (
	ErrInvalidCredentials = internal.ErrInvalidCredentials
	ErrInvalidToken       = internal.ErrInvalidToken
	ErrTokenExpired       = internal.ErrTokenExpired
)

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
