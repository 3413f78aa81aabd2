package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/soundvault/soundvault/internal/apperr"
	"github.com/soundvault/soundvault/internal/auth"
	"github.com/soundvault/soundvault/internal/domain"
	"github.com/soundvault/soundvault/internal/logger"
	"github.com/soundvault/soundvault/internal/store"
)

// Credentials are the fields accepted by register and login.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a signed token plus the public view of its user.
type Session struct {
	Token string            `json:"token"`
	User  domain.PublicUser `json:"user"`
}

type UserService interface {
	Register(creds Credentials) (*Session, error)
	Login(creds Credentials) (*Session, error)
	Get(id string) (*domain.User, error)
	UpdateFavorites(userID string, favoriteSongIDs domain.StringSlice) (*domain.User, error)
}

type userService struct {
	db     *store.DB
	tokens *auth.TokenManager
	logger *logger.Logger
}

func NewUserService(db *store.DB, tokens *auth.TokenManager, log *logger.Logger) UserService {
	return &userService{db: db, tokens: tokens, logger: log.WithComponent("users")}
}

func (s *userService) Register(creds Credentials) (*Session, error) {
	if creds.Username == "" || creds.Email == "" || creds.Password == "" {
		return nil, apperr.Validation("username, email and password are required")
	}

	hash, err := auth.HashPassword(creds.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:              uuid.New().String(),
		Username:        creds.Username,
		Email:           creds.Email,
		PasswordHash:    hash,
		FavoriteSongIDs: domain.StringSlice{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.db.CreateUser(user); err != nil {
		if store.IsUniqueViolation(err) {
			return nil, apperr.Conflict("a user with this username or email already exists")
		}
		return nil, apperr.Internal("failed to create user", err)
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}

	s.logger.WithUser(user.ID).Info("user registered", "username", user.Username)
	return &Session{Token: token, User: user.Public()}, nil
}

func (s *userService) Login(creds Credentials) (*Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	// Unknown email and wrong password produce the same message so the
	// response does not reveal which accounts exist.
	user, err := s.db.GetUserByEmail(creds.Email)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.Authentication("invalid credentials")
		}
		return nil, apperr.Internal("failed to load user", err)
	}
	if !auth.CheckPassword(creds.Password, user.PasswordHash) {
		return nil, apperr.Authentication("invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Internal("failed to issue token", err)
	}

	s.logger.WithUser(user.ID).Info("user logged in")
	return &Session{Token: token, User: user.Public()}, nil
}

func (s *userService) Get(id string) (*domain.User, error) {
	user, err := s.db.GetUserByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Internal("failed to load user", err)
	}
	return user, nil
}

func (s *userService) UpdateFavorites(userID string, favoriteSongIDs domain.StringSlice) (*domain.User, error) {
	if favoriteSongIDs == nil {
		favoriteSongIDs = domain.StringSlice{}
	}

	if err := s.db.UpdateUserFavorites(userID, favoriteSongIDs); err != nil {
		if err == store.ErrNotFound {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Internal("failed to update favorites", err)
	}
	return s.Get(userID)
}
