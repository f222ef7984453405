package user_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/humidor-club/application/user"
	"github.com/muhammadheryan/humidor-club/cmd/config"
	"github.com/muhammadheryan/humidor-club/constant"
	redismocks "github.com/muhammadheryan/humidor-club/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/humidor-club/mocks/repository/user"
	"github.com/muhammadheryan/humidor-club/model"
	redisrepo "github.com/muhammadheryan/humidor-club/repository/redis"
	userrepo "github.com/muhammadheryan/humidor-club/repository/user"
	"github.com/muhammadheryan/humidor-club/thirdparty/rabbitmq"
	"github.com/muhammadheryan/humidor-club/utils/devlink"
	cerr "github.com/muhammadheryan/humidor-club/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type fakeMailer struct {
	sent []rabbitmq.MagicLinkMessage
}

func (m *fakeMailer) PublishMagicLink(_ context.Context, msg rabbitmq.MagicLinkMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret",
			JWTExpiration:    time.Hour,
			SessionExpTime:   time.Hour,
			MagicLinkTTL:     15 * time.Minute,
			MagicLinkBaseURL: "http://localhost:3000/auth/verify",
		},
	}
}

func assertCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func hashOf(t *testing.T, secret string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(h)
}

func TestUserApp_RequestMagicLink(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRedisRepository(t)
	mailer := &fakeMailer{}
	links := devlink.NewMemoryStore(16, time.Hour)

	var stored *redisrepo.MagicLinkEntry
	var storedID string
	redisRepo.On("SetMagicLink", mock.Anything, mock.AnythingOfType("string"), mock.Anything, 15*time.Minute).
		Run(func(args mock.Arguments) {
			storedID = args.String(1)
			stored = args.Get(2).(*redisrepo.MagicLinkEntry)
		}).
		Return(nil).Once()

	app := appuser.NewUserApp(testConfig(), userRepo, redisRepo, links, mailer)
	res, err := app.RequestMagicLink(context.Background(), &model.MagicLinkRequest{Email: " Ana@Example.com "})
	if err != nil {
		t.Fatalf("RequestMagicLink() error = %v", err)
	}
	if res.ExpiresAt.IsZero() {
		t.Fatalf("expiry missing")
	}

	if len(mailer.sent) != 1 || mailer.sent[0].Email != "ana@example.com" {
		t.Fatalf("expected one mail to the normalized address, got %+v", mailer.sent)
	}
	link, ok := links.Get("ana@example.com")
	if !ok || link != mailer.sent[0].Link {
		t.Fatalf("dev link store = %q, want %q", link, mailer.sent[0].Link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatal(err)
	}
	tokenID, secret, _ := strings.Cut(u.Query().Get("token"), ".")
	if tokenID != storedID {
		t.Fatalf("token id = %s, stored under %s", tokenID, storedID)
	}
	if stored.Email != "ana@example.com" {
		t.Fatalf("stored email = %s", stored.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.SecretHash), []byte(secret)); err != nil {
		t.Fatalf("stored hash does not match the link secret: %v", err)
	}
}

func TestUserApp_RequestMagicLink_StoreFailure(t *testing.T) {
	redisRepo := redismocks.NewRedisRepository(t)
	redisRepo.On("SetMagicLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
	mailer := &fakeMailer{}

	app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redisRepo, nil, mailer)
	_, err := app.RequestMagicLink(context.Background(), &model.MagicLinkRequest{Email: "a@b.co"})
	assertCode(t, err, constant.ErrInternal)
	if len(mailer.sent) != 0 {
		t.Fatalf("no mail should be sent when the token was not stored")
	}
}

func TestUserApp_VerifyMagicLink(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		token    string
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: existing member",
			token: "tok.secret",
			mockCall: func(f fields) {
				f.redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").
					Return(&redisrepo.MagicLinkEntry{Email: "a@b.co", SecretHash: hashOf(t, "secret")}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "a@b.co"}).
					Return(&model.UserEntity{ID: 4, Email: "a@b.co", DisplayName: "Ana"}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(4), time.Hour).Return(nil).Once()
			},
			want: &model.LoginResponse{Email: "a@b.co", DisplayName: "Ana"},
		},
		{
			name:  "success: first sign-in creates the member",
			token: "tok.secret",
			mockCall: func(f fields) {
				f.redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").
					Return(&redisrepo.MagicLinkEntry{Email: "new@b.co", SecretHash: hashOf(t, "secret")}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "new@b.co"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.Email == "new@b.co" && u.DisplayName == "new"
				})).Return(&model.UserEntity{ID: 9, Email: "new@b.co", DisplayName: "new"}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(9), time.Hour).Return(nil).Once()
			},
			want: &model.LoginResponse{Email: "new@b.co", DisplayName: "new"},
		},
		{
			name:  "success: concurrent first sign-in reads the row the other request created",
			token: "tok.secret",
			mockCall: func(f fields) {
				f.redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").
					Return(&redisrepo.MagicLinkEntry{Email: "new@b.co", SecretHash: hashOf(t, "secret")}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "new@b.co"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, userrepo.ErrDuplicateEmail).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "new@b.co"}).
					Return(&model.UserEntity{ID: 11, Email: "new@b.co", DisplayName: "new"}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(11), time.Hour).Return(nil).Once()
			},
			want: &model.LoginResponse{Email: "new@b.co", DisplayName: "new"},
		},
		{
			name:  "error: create fails for another reason",
			token: "tok.secret",
			mockCall: func(f fields) {
				f.redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").
					Return(&redisrepo.MagicLinkEntry{Email: "new@b.co", SecretHash: hashOf(t, "secret")}, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "new@b.co"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("conn reset")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:    "error: malformed token",
			token:   "no-dot",
			wantErr: true,
			errCode: constant.ErrInvalidMagicLink,
		},
		{
			name:  "error: already used or expired",
			token: "tok.secret",
			mockCall: func(f fields) {
				f.redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").Return(nil, redisrepo.ErrNotFound).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidMagicLink,
		},
		{
			name:  "error: wrong secret",
			token: "tok.guess",
			mockCall: func(f fields) {
				f.redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").
					Return(&redisrepo.MagicLinkEntry{Email: "a@b.co", SecretHash: hashOf(t, "secret")}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidMagicLink,
		},
		{
			name:  "error: redis failure",
			token: "tok.secret",
			mockCall: func(f fields) {
				f.redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").Return(nil, errors.New("i/o timeout")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRedisRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo, nil, nil)

			got, err := app.VerifyMagicLink(context.Background(), &model.VerifyMagicLinkRequest{Token: tt.token})
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyMagicLink() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCode(t, err, tt.errCode)
				return
			}
			if got.Token == "" {
				t.Fatalf("token missing")
			}
			if got.Email != tt.want.Email || got.DisplayName != tt.want.DisplayName {
				t.Fatalf("VerifyMagicLink() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	redisRepo := redismocks.NewRedisRepository(t)
	app := appuser.NewUserApp(testConfig(), userRepo, redisRepo, nil, nil)

	var jti string
	redisRepo.On("ConsumeMagicLink", mock.Anything, "tok").
		Return(&redisrepo.MagicLinkEntry{Email: "a@b.co", SecretHash: hashOf(t, "s")}, nil).Once()
	userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{ID: 4, Email: "a@b.co"}, nil).Once()
	redisRepo.On("SetSession", mock.Anything, mock.Anything, uint64(4), time.Hour).
		Run(func(args mock.Arguments) { jti = args.String(1) }).
		Return(nil).Once()

	login, err := app.VerifyMagicLink(context.Background(), &model.VerifyMagicLinkRequest{Token: "tok.s"})
	if err != nil {
		t.Fatalf("VerifyMagicLink() error = %v", err)
	}

	t.Run("valid session", func(t *testing.T) {
		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(4), nil).Once()
		id, err := app.ValidateToken(context.Background(), login.Token)
		if err != nil || id != 4 {
			t.Fatalf("ValidateToken() = %d, %v; want 4", id, err)
		}
	})

	t.Run("session revoked", func(t *testing.T) {
		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), redisrepo.ErrNotFound).Once()
		if _, err := app.ValidateToken(context.Background(), login.Token); err == nil {
			t.Fatalf("expected error for revoked session")
		}
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other := appuser.NewUserApp(&config.Config{Auth: config.AuthConfig{JWTSecret: "other"}}, userRepo, redisRepo, nil, nil)
		if _, err := other.ValidateToken(context.Background(), login.Token); err == nil {
			t.Fatalf("expected signature error")
		}
	})
}

func TestUserApp_GetDevMagicLink(t *testing.T) {
	t.Run("disabled store", func(t *testing.T) {
		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t), devlink.Noop(), nil)
		_, err := app.GetDevMagicLink(context.Background(), "a@b.co")
		assertCode(t, err, constant.ErrNotFound)
	})

	t.Run("enabled store", func(t *testing.T) {
		links := devlink.NewMemoryStore(4, time.Hour)
		links.Put("a@b.co", "http://x/verify?token=t.s")
		app := appuser.NewUserApp(testConfig(), usermocks.NewUserRepository(t), redismocks.NewRedisRepository(t), links, nil)

		got, err := app.GetDevMagicLink(context.Background(), "A@B.co")
		if err != nil {
			t.Fatalf("GetDevMagicLink() error = %v", err)
		}
		if got.Link != "http://x/verify?token=t.s" {
			t.Fatalf("link = %s", got.Link)
		}
	})
}
