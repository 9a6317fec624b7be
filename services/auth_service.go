package services

import (
	"errors"
	"time"

	"rhea-feedback-api/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService checks submitted credentials against the single configured
// operator identity and issues session tokens. There is no user table:
// the dashboard has exactly one operator.
type AuthService struct {
	username     string
	passwordHash []byte
	jwtSecret    []byte
	expiryH      int
}

func NewAuthService(authCfg config.AuthConfig, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{
		username:     authCfg.Username,
		passwordHash: []byte(authCfg.PasswordHash),
		jwtSecret:    []byte(jwtCfg.Secret),
		expiryH:      jwtCfg.ExpiryHours,
	}
}

func (s *AuthService) HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// Authenticate reports whether the submitted pair matches the configured
// identity. bcrypt's comparison is constant-time over the hash.
func (s *AuthService) Authenticate(username, password string) bool {
	if username != s.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(
				time.Duration(s.expiryH) * time.Hour,
			)),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.jwtSecret, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
