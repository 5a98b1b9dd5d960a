package service

import (
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"vehiclebooking/internal/auth"
	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
)

// Fixed identity of the bootstrap administrator account.
const (
	adminEmail    = "admin@vehiclebooking.com"
	adminUsername = "admin"
)

// UserStore is what the auth service needs from persistence.
type UserStore interface {
	Create(u *db.User) error
	GetByID(id int) (*db.User, error)
	GetByEmail(email string) (*db.User, error)
}

type AuthService struct {
	Repo UserStore
}

func NewAuthService(repo UserStore) *AuthService {
	return &AuthService{Repo: repo}
}

// Register creates a regular user account. Duplicate username or email
// surfaces as a conflict error from the store.
func (s *AuthService) Register(req entities.RegisterRequest) (*db.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err, "could not hash password")
	}

	user := &db.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		IsAdmin:      false,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password and returns a signed token with the user's
// identity and admin flag.
func (s *AuthService) Login(req entities.LoginRequest) (string, *db.User, error) {
	user, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperrors.Authorization("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, apperrors.Authorization("invalid credentials")
	}

	token, err := auth.IssueToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", nil, apperrors.Internal(err, "could not issue token")
	}
	return token, user, nil
}

// EnsureAdmin creates the administrator account if it does not exist yet.
// It runs once at startup and is a no-op when the account is present.
func (s *AuthService) EnsureAdmin() error {
	admin, err := s.Repo.GetByEmail(adminEmail)
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "adminpassword"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Internal(err, "could not hash admin password")
	}

	user := &db.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Phone:        "555-123-4567",
		IsAdmin:      true,
	}
	if err := s.Repo.Create(user); err != nil {
		return err
	}
	logrus.Printf("Admin user created (%s)", adminEmail)
	return nil
}
