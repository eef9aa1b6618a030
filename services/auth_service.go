package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"eduboard/kvstore"
	"eduboard/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionKey = "eduUser"

// AuthService owns the single signed-in session. Login and signup are a
// stub boundary: any non-empty credentials are accepted and replace the
// current session wholesale. Passwords are hashed before the session
// record is persisted but are never verified against anything.
type AuthService struct {
	kv         kvstore.Store
	jwtSecret  string
	loginDelay time.Duration // simulated upstream latency, zero in tests
}

type AuthClaims struct {
	UserID string            `json:"user_id"`
	Name   string            `json:"name"`
	Role   models.UserRole   `json:"role"`
	Class  models.ClassLevel `json:"class,omitempty"`
	jwt.RegisteredClaims
}

func NewAuthService(kv kvstore.Store, jwtSecret string, loginDelay time.Duration) *AuthService {
	return &AuthService{kv: kv, jwtSecret: jwtSecret, loginDelay: loginDelay}
}

// Login creates a fresh session for the given credentials. The display
// name is derived from the email local part; students get a default
// class level until they pick one at signup.
func (s *AuthService) Login(email, password string, role models.UserRole) (*models.User, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}
	if !role.Valid() {
		return nil, models.ErrInvalidRole
	}

	time.Sleep(s.loginDelay)

	user := &models.User{
		ID:    uuid.NewString(),
		Name:  strings.SplitN(email, "@", 2)[0],
		Email: email,
		Role:  role,
	}
	if role == models.RoleStudent {
		user.Class = models.Class6th
	}
	if err := s.saveSession(user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// Signup creates a fresh session keeping the supplied name and, for
// students, the supplied class level verbatim.
func (s *AuthService) Signup(name, email, password string, role models.UserRole, class models.ClassLevel) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("name, email and password are required")
	}
	if !role.Valid() {
		return nil, models.ErrInvalidRole
	}
	if class != "" && !class.Valid() {
		return nil, errors.New("invalid class level")
	}

	time.Sleep(s.loginDelay)

	user := &models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Role:  role,
		Class: class,
	}
	if err := s.saveSession(user, password); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) saveSession(user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(context.Background(), sessionKey, string(data))
}

// Logout removes the persisted session. Logging out with no session is
// a no-op.
func (s *AuthService) Logout() error {
	return s.kv.Delete(context.Background(), sessionKey)
}

// Current returns the signed-in user, or nil when no session exists.
func (s *AuthService) Current() *models.User {
	data, err := s.kv.Get(context.Background(), sessionKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			log.Printf("Failed to read session: %v", err)
		}
		return nil
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		log.Printf("Failed to decode session: %v", err)
		return nil
	}
	return &user
}

func (s *AuthService) IsAuthenticated() bool {
	return s.Current() != nil
}

// GenerateToken issues a signed token carrying the user's identity for
// the HTTP layer.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := AuthClaims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Class:  user.Class,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyAuthToken parses and validates a token produced by GenerateToken.
func VerifyAuthToken(tokenString, jwtSecret string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
