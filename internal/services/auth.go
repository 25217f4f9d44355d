package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yungbote/englishai-backend/internal/data/db"
	"github.com/yungbote/englishai-backend/internal/data/repos"
	types "github.com/yungbote/englishai-backend/internal/domain"
	"github.com/yungbote/englishai-backend/internal/platform/apierr"
	"github.com/yungbote/englishai-backend/internal/platform/ctxutil"
	"github.com/yungbote/englishai-backend/internal/platform/logger"
)

const (
	msgEmailTaken     = "Email already registered"
	msgBadCredentials = "Incorrect email or password"
	msgBadToken       = "Could not validate credentials"
)

type AuthService interface {
	RegisterUser(ctx context.Context, email, password string) (*types.User, error)
	// LoginUser returns a signed access token whose subject is the user's email.
	LoginUser(ctx context.Context, email, password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type AuthConfig struct {
	JWTSecretKey string
	AccessTTL    time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

type JWTClaims struct {
	jwt.RegisteredClaims
}

type authService struct {
	log       *logger.Logger
	userRepo  repos.UserRepo
	secret    []byte
	accessTTL time.Duration
	cost      int
}

func NewAuthService(log *logger.Logger, userRepo repos.UserRepo, cfg AuthConfig) (AuthService, error) {
	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return nil, errors.New("jwt secret key required")
	}
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &authService{
		log:       log.With("service", "AuthService"),
		userRepo:  userRepo,
		secret:    []byte(cfg.JWTSecretKey),
		accessTTL: ttl,
		cost:      cost,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (as *authService) RegisterUser(ctx context.Context, email, password string) (*types.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, apierr.InvalidArgument(errors.New("email and password are required"))
	}

	exists, err := as.userRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, apierr.Conflict(msgEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), as.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	created, err := as.userRepo.Create(ctx, nil, []*types.User{{Email: email, PasswordHash: string(hash)}})
	if err != nil {
		// lost a race with a concurrent registration
		if db.IsUniqueViolation(err) {
			return nil, apierr.Conflict(msgEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	as.log.Info("User registered", "user_id", created[0].ID)
	return created[0], nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apierr.Unauthorized(msgBadCredentials)
	}
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apierr.Unauthorized(msgBadCredentials)
	}
	return as.generateAccessToken(user)
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// SetContextFromToken verifies the token and attaches the user it names to ctx.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if strings.TrimSpace(tokenString) == "" {
		return ctx, apierr.Unauthorized(msgBadToken)
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return as.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		as.log.Debug("Token rejected", "error", err)
		return ctx, apierr.Unauthorized(msgBadToken)
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return ctx, apierr.Unauthorized(msgBadToken)
	}

	user, err := as.userRepo.GetByEmail(ctx, nil, claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx, apierr.Unauthorized(msgBadToken)
	}
	if err != nil {
		return ctx, fmt.Errorf("load user: %w", err)
	}
	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		UserID:      user.ID,
		Email:       user.Email,
		TokenString: tokenString,
	}), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
