package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/humidor-club/cmd/config"
	"github.com/muhammadheryan/humidor-club/constant"
	"github.com/muhammadheryan/humidor-club/model"
	redisrepo "github.com/muhammadheryan/humidor-club/repository/redis"
	userrepo "github.com/muhammadheryan/humidor-club/repository/user"
	"github.com/muhammadheryan/humidor-club/thirdparty/rabbitmq"
	"github.com/muhammadheryan/humidor-club/utils/devlink"
	"github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/muhammadheryan/humidor-club/utils/logger"
	"github.com/muhammadheryan/humidor-club/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	RequestMagicLink(ctx context.Context, req *model.MagicLinkRequest) (*model.MagicLinkResponse, error)
	VerifyMagicLink(ctx context.Context, req *model.VerifyMagicLinkRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	GetDevMagicLink(ctx context.Context, email string) (*model.DevMagicLinkResponse, error)
}

// MailPublisher hands sign-in links to the mailer worker.
type MailPublisher interface {
	PublishMagicLink(ctx context.Context, msg rabbitmq.MagicLinkMessage) error
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.RedisRepository
	devLinks  devlink.Store
	publisher MailPublisher
}

// NewUserApp wires magic-link auth. publisher may be nil; devLinks defaults to
// the no-op store.
func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.RedisRepository, devLinks devlink.Store, publisher MailPublisher) UserApp {
	if devLinks == nil {
		devLinks = devlink.Noop()
	}
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		devLinks:  devLinks,
		publisher: publisher,
	}
}

func (s *UserAppImpl) RequestMagicLink(ctx context.Context, req *model.MagicLinkRequest) (*model.MagicLinkResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		return nil, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "email is required")
	}

	tokenID := uuid.NewString()
	secret := strings.ReplaceAll(uuid.NewString(), "-", "")
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[RequestMagicLink] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ttl := s.config.Auth.MagicLinkTTL
	err = s.redisRepo.SetMagicLink(ctx, tokenID, &redisrepo.MagicLinkEntry{Email: email, SecretHash: string(hash)}, ttl)
	if err != nil {
		logger.Error("[RequestMagicLink] err SetMagicLink", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	expiresAt := time.Now().UTC().Add(ttl)
	link := s.config.Auth.MagicLinkBaseURL + "?token=" + url.QueryEscape(tokenID+"."+secret)

	if s.publisher != nil {
		msg := rabbitmq.MagicLinkMessage{Email: email, Link: link, ExpiresAt: expiresAt}
		if err := s.publisher.PublishMagicLink(ctx, msg); err != nil {
			logger.Error("[RequestMagicLink] publish magic link", zap.String("error", err.Error()))
		}
	}
	if s.devLinks.Enabled() {
		s.devLinks.Put(email, link)
		logger.Debug("[RequestMagicLink] dev link stored", zap.String("email", email))
	}
	metrics.MagicLinksIssued.Inc()

	return &model.MagicLinkResponse{
		Message:   "a sign-in link has been sent to " + email,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *UserAppImpl) VerifyMagicLink(ctx context.Context, req *model.VerifyMagicLinkRequest) (*model.LoginResponse, error) {
	tokenID, secret, ok := strings.Cut(strings.TrimSpace(req.Token), ".")
	if !ok || tokenID == "" || secret == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidMagicLink)
	}

	entry, err := s.redisRepo.ConsumeMagicLink(ctx, tokenID)
	if err != nil {
		if stderrors.Is(err, redisrepo.ErrNotFound) {
			return nil, errors.SetCustomError(constant.ErrInvalidMagicLink)
		}
		logger.Error("[VerifyMagicLink] err ConsumeMagicLink", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(entry.SecretHash), []byte(secret)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidMagicLink)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: entry.Email})
	if err != nil {
		logger.Error("[VerifyMagicLink] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		// first sign-in creates the member
		user, err = s.createOrGetUser(ctx, entry.Email)
		if err != nil {
			return nil, err
		}
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[VerifyMagicLink] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[VerifyMagicLink] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Token:       token,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// the session must still exist in redis and belong to the same user
	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}
	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) GetDevMagicLink(ctx context.Context, email string) (*model.DevMagicLinkResponse, error) {
	if !s.devLinks.Enabled() {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "dev link store is disabled")
	}
	email = normalizeEmail(email)
	link, ok := s.devLinks.Get(email)
	if !ok {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "no link issued for "+email)
	}
	return &model.DevMagicLinkResponse{Email: email, Link: link}, nil
}

// createOrGetUser inserts the member, falling back to a read when a
// concurrent first sign-in for the same email inserted it first.
func (s *UserAppImpl) createOrGetUser(ctx context.Context, email string) (*model.UserEntity, error) {
	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		Email:       email,
		DisplayName: displayName(email),
		CreatedAt:   time.Now().UTC(),
	})
	if err == nil {
		return user, nil
	}
	if !stderrors.Is(err, userrepo.ErrDuplicateEmail) {
		logger.Error("[VerifyMagicLink] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err = s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[VerifyMagicLink] err userRepo.Get after duplicate email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		logger.Error("[VerifyMagicLink] duplicate email but no user row", zap.String("email", email))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return user, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// displayName defaults to the mailbox part of the address.
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
