package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gamewish/internal/middleware"
	"gamewish/internal/models"
	"gamewish/internal/service"
	"gamewish/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryStore is an in-process session.Store for router tests.
type memoryStore struct {
	sessions map[string]*session.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*session.Session)}
}

func (s *memoryStore) Create(_ context.Context, userID, username, role string) (*session.Session, error) {
	sess := &session.Session{
		Token:    uuid.New().String(),
		UserID:   userID,
		Username: username,
		Role:     role,
	}
	s.sessions[sess.Token] = sess
	return sess, nil
}

func (s *memoryStore) Get(_ context.Context, token string) (*session.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, session.ErrNoSession
	}
	return sess, nil
}

func (s *memoryStore) Destroy(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, password, firstName, lastName, email string) (*models.User, error) {
	args := m.Called(username, password, firstName, lastName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (*models.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(userID, newPassword string) error {
	args := m.Called(userID, newPassword)
	return args.Error(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListGames(ctx context.Context, categoryName string) ([]service.GameRow, error) {
	args := m.Called(ctx, categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.GameRow), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCatalogService) CreateGame(ctx context.Context, title string, year int, categoryID int64) (*models.Game, error) {
	args := m.Called(ctx, title, year, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockCatalogService) DeleteGame(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Details(ctx context.Context, id int64) (*service.GameDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GameDetails), args.Error(1)
}

func (m *MockGameService) AddComment(ctx context.Context, userID string, gameID int64, opinion string) error {
	args := m.Called(ctx, userID, gameID, opinion)
	return args.Error(0)
}

func (m *MockGameService) SubmitRating(ctx context.Context, userID string, gameID int64, rate float64) error {
	args := m.Called(ctx, userID, gameID, rate)
	return args.Error(0)
}

func (m *MockGameService) SubmitWish(ctx context.Context, userID string, gameID int64, label string) error {
	args := m.Called(ctx, userID, gameID, label)
	return args.Error(0)
}

type MockWishlistService struct {
	mock.Mock
}

func (m *MockWishlistService) Profile(ctx context.Context, userID string, descending bool) (*service.Profile, error) {
	args := m.Called(ctx, userID, descending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Profile), args.Error(1)
}

func (m *MockWishlistService) DeletePriority(ctx context.Context, actorID string, priorityID int64) error {
	args := m.Called(ctx, actorID, priorityID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) Get(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// testEnv bundles a fully wired router with its mocked services.
type testEnv struct {
	router   *gin.Engine
	store    *memoryStore
	auth     *MockAuthService
	catalog  *MockCatalogService
	game     *MockGameService
	wishlist *MockWishlistService
	users    *MockUserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		store:    newMemoryStore(),
		auth:     new(MockAuthService),
		catalog:  new(MockCatalogService),
		game:     new(MockGameService),
		wishlist: new(MockWishlistService),
		users:    new(MockUserService),
	}
	env.router = NewRouter(
		env.store,
		NewAuthHandler(env.auth, env.store, 0),
		NewGameHandler(env.catalog, env.game),
		NewProfileHandler(env.wishlist, env.users),
	)
	return env
}

// login seeds a session directly into the store and returns its cookie.
func (env *testEnv) login(t *testing.T, userID, username, role string) *http.Cookie {
	t.Helper()
	sess, err := env.store.Create(context.Background(), userID, username, role)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.CookieName, Value: sess.Token}
}

func (env *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *testEnv) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
