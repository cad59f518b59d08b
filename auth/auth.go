package auth

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tourcab/middleware"
	"tourcab/models"
	"tourcab/store"
)

const tokenTTL = 12 * time.Hour

// Credential is one entry of the fixed demo account list.
type Credential struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// DemoCredentials are the accounts that may sign in to the back-office.
var DemoCredentials = []Credential{
	{ID: "admin-1", Name: "Site Admin", Email: "admin@tourcab.in", Password: "admin123", Role: "admin"},
	{ID: "editor-1", Name: "Content Editor", Email: "editor@tourcab.in", Password: "editor123", Role: "editor"},
}

type account struct {
	user models.User
	hash []byte
}

// Options configure a Service. Zero values fall back to defaults.
type Options struct {
	Backend     store.Backend
	Secret      []byte
	Delay       time.Duration
	Credentials []Credential
	Cost        int
	Now         func() time.Time
	Logger      *zap.SugaredLogger
}

// Service checks demo credentials, signs tokens and keeps one session slot
// per signed-in user.
type Service struct {
	backend  store.Backend
	secret   []byte
	delay    time.Duration
	accounts map[string]account
	dummy    []byte
	now      func() time.Time
	logger   *zap.SugaredLogger
}

// Session is returned by a successful login.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}

var errInvalidCredentials = goerrors.New("invalid email or password", goerrors.CategoryAuth).WithTextCode("INVALID_CREDENTIALS")

// NewService hashes the credential list once at start.
func NewService(opts Options) (*Service, error) {
	if opts.Backend == nil {
		opts.Backend = store.NewMemoryBackend()
	}
	if opts.Credentials == nil {
		opts.Credentials = DemoCredentials
	}
	if opts.Cost == 0 {
		opts.Cost = bcrypt.DefaultCost
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if len(opts.Secret) == 0 {
		return nil, goerrors.New("jwt secret is required", goerrors.CategoryInternal).WithTextCode("NO_SECRET")
	}

	s := &Service{
		backend:  opts.Backend,
		secret:   opts.Secret,
		delay:    opts.Delay,
		accounts: make(map[string]account, len(opts.Credentials)),
		now:      opts.Now,
		logger:   opts.Logger,
	}
	for _, c := range opts.Credentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), opts.Cost)
		if err != nil {
			return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "hash demo credential")
		}
		s.accounts[strings.ToLower(c.Email)] = account{
			user: models.User{ID: c.ID, Name: c.Name, Email: c.Email, Role: c.Role},
			hash: hash,
		}
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-password"), opts.Cost)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "hash placeholder")
	}
	s.dummy = dummy
	return s, nil
}

// Login waits the configured delay, then checks the credentials, signs a
// token and records the user in its session slot. The wait ends early when
// ctx is done.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return Session{}, ctx.Err()
		case <-timer.C:
		}
	}

	acc, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	hash := s.dummy
	if ok {
		hash = acc.hash
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !ok {
		s.logger.Infow("login rejected", "email", email)
		return Session{}, errInvalidCredentials
	}

	now := s.now().UTC()
	user := acc.user
	user.LoggedInAt = now
	expires := now.Add(tokenTTL)

	claims := &middleware.Claims{
		Username: user.Email,
		UserID:   user.ID,
		Role:     []string{user.Role},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, goerrors.Wrap(err, goerrors.CategoryInternal, "sign token")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return Session{}, goerrors.Wrap(err, goerrors.CategoryInternal, "encode session")
	}
	if err := s.backend.Set(ctx, store.SessionSlot(user.ID), raw); err != nil {
		return Session{}, goerrors.Wrap(err, goerrors.CategoryInternal, "store session")
	}

	s.logger.Infow("login", "user", user.ID)
	return Session{Token: token, ExpiresAt: expires, User: user}, nil
}

// CurrentUser reads the session slot. Malformed data clears the slot and is
// reported as no session.
func (s *Service) CurrentUser(ctx context.Context, userID string) (models.User, bool, error) {
	key := store.SessionSlot(userID)
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		return models.User{}, false, goerrors.Wrap(err, goerrors.CategoryInternal, "read session")
	}
	if !ok {
		return models.User{}, false, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID != userID {
		s.logger.Warnw("clearing malformed session", "user", userID)
		if err := s.backend.Remove(ctx, key); err != nil {
			return models.User{}, false, goerrors.Wrap(err, goerrors.CategoryInternal, "clear session")
		}
		return models.User{}, false, nil
	}
	return user, true, nil
}

// Logout removes the session slot. Logging out twice is not an error.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.backend.Remove(ctx, store.SessionSlot(userID)); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "remove session")
	}
	s.logger.Infow("logout", "user", userID)
	return nil
}
