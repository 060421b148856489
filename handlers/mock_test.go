package handlers_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-api/config"
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/routes"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var errMockStorage = errors.New("storage unavailable")

// mockStore implements store.Store with function fields so each test wires
// only the calls it expects.
type mockStore struct {
	FindAllFunc    func(ctx context.Context, coll string) ([]bson.M, error)
	FindOneFunc    func(ctx context.Context, coll string, filter bson.M) (bson.M, error)
	FindManyFunc   func(ctx context.Context, coll string, filter bson.M) ([]bson.M, error)
	InsertOneFunc  func(ctx context.Context, coll string, doc interface{}) (*store.InsertResult, error)
	UpdateOneFunc  func(ctx context.Context, coll string, filter, set bson.M) (*store.UpdateResult, error)
	DeleteOneFunc  func(ctx context.Context, coll string, filter bson.M) (*store.DeleteResult, error)
	DeleteManyFunc func(ctx context.Context, coll string, filter bson.M) (*store.DeleteResult, error)

	inserts int
	updates int
	deletes int
}

func (m *mockStore) FindAll(ctx context.Context, coll string) ([]bson.M, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, coll)
	}
	return []bson.M{}, nil
}

func (m *mockStore) FindOne(ctx context.Context, coll string, filter bson.M) (bson.M, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, coll, filter)
	}
	return nil, nil
}

func (m *mockStore) FindMany(ctx context.Context, coll string, filter bson.M) ([]bson.M, error) {
	if m.FindManyFunc != nil {
		return m.FindManyFunc(ctx, coll, filter)
	}
	return []bson.M{}, nil
}

func (m *mockStore) InsertOne(ctx context.Context, coll string, doc interface{}) (*store.InsertResult, error) {
	m.inserts++
	if m.InsertOneFunc != nil {
		return m.InsertOneFunc(ctx, coll, doc)
	}
	return &store.InsertResult{InsertedID: "mock-id"}, nil
}

func (m *mockStore) UpdateOne(ctx context.Context, coll string, filter, set bson.M) (*store.UpdateResult, error) {
	m.updates++
	if m.UpdateOneFunc != nil {
		return m.UpdateOneFunc(ctx, coll, filter, set)
	}
	return &store.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockStore) DeleteOne(ctx context.Context, coll string, filter bson.M) (*store.DeleteResult, error) {
	m.deletes++
	if m.DeleteOneFunc != nil {
		return m.DeleteOneFunc(ctx, coll, filter)
	}
	return &store.DeleteResult{DeletedCount: 1}, nil
}

func (m *mockStore) DeleteMany(ctx context.Context, coll string, filter bson.M) (*store.DeleteResult, error) {
	m.deletes++
	if m.DeleteManyFunc != nil {
		return m.DeleteManyFunc(ctx, coll, filter)
	}
	return &store.DeleteResult{DeletedCount: 0}, nil
}

func (m *mockStore) mutations() int {
	return m.inserts + m.updates + m.deletes
}

// mockGateway implements gateway.IntentCreator.
type mockGateway struct {
	CreateIntentFunc func(ctx context.Context, amountCents int64) (string, error)
}

func (m *mockGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, amountCents)
	}
	return "pi_mock_secret", nil
}

type testServer struct {
	router *gin.Engine
	store  *mockStore
	tokens *middleware.TokenService
}

func newTestServer(t *testing.T, ms *mockStore, gw *mockGateway, cfg *config.Config) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if ms == nil {
		ms = &mockStore{}
	}
	if gw == nil {
		gw = &mockGateway{}
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	tokens := middleware.NewTokenService([]byte("test-secret"))
	h := handlers.New(ms, tokens, gw)
	guard := middleware.NewGuard(tokens, h.AdminCheck())

	r := gin.New()
	routes.Setup(r, h, guard, cfg)
	return &testServer{router: r, store: ms, tokens: tokens}
}

func (s *testServer) request(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// adminUserLookup returns a FindOneFunc that serves the users collection the
// guard consults, marking the given email as admin.
func adminUserLookup(adminEmail string) func(ctx context.Context, coll string, filter bson.M) (bson.M, error) {
	return func(_ context.Context, coll string, filter bson.M) (bson.M, error) {
		if coll == store.Users && filter["email"] == adminEmail {
			return bson.M{"email": adminEmail, "role": "admin"}, nil
		}
		return nil, nil
	}
}

func (s *testServer) issue(t *testing.T, email string) string {
	t.Helper()
	token, err := s.tokens.Issue(email)
	if err != nil {
		t.Fatalf("issuing test token: %v", err)
	}
	return token
}
