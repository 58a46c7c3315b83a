package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hbnb/internal/cache"
	"hbnb/internal/controllers"
	"hbnb/internal/entities"
	"hbnb/internal/jwt"
	"hbnb/internal/models"
	"hbnb/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
	entities.PasswordCost = bcrypt.MinCost
}

type testServer struct {
	router *gin.Engine
	stores service.Stores
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	stores := service.NewInMemoryStores()
	facade := service.NewHBnBFacade(stores, zerolog.Nop())
	authService := service.NewAuthService(
		facade,
		jwt.NewJWTService("test-secret", time.Hour),
		cache.NewTokenDenylist(cache.NewFromClient(client, "hbnb-test:")),
		zerolog.Nop(),
	)

	router := controllers.NewRouter(controllers.RouterDeps{
		Facade:         facade,
		AuthService:    authService,
		FrontendURL:    "https://hbnb.example.com/",
		AllowedOrigins: []string{"*"},
		Logger:         zerolog.Nop(),
	})
	return &testServer{router: router, stores: stores}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *testServer) createUser(t *testing.T, email string) models.UserResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/users/", map[string]interface{}{
		"first_name": "Test", "last_name": "User", "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.UserResponse](t, w)
}

func (s *testServer) createAmenity(t *testing.T, name string) models.AmenityResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/amenities/", map[string]interface{}{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.AmenityResponse](t, w)
}

func (s *testServer) createPlace(t *testing.T, ownerID string, amenityIDs ...string) models.PlaceResponse {
	t.Helper()
	if amenityIDs == nil {
		amenityIDs = []string{}
	}
	w := s.do(t, http.MethodPost, "/api/v1/places/", map[string]interface{}{
		"title": "Loft", "description": "Central", "price": 80, "latitude": 48.85, "longitude": 2.35,
		"owner_id": ownerID, "amenities": amenityIDs,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.PlaceResponse](t, w)
}

func (s *testServer) createReview(t *testing.T, placeID, userID string) models.ReviewResponse {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/reviews/", map[string]interface{}{
		"text": "Great", "rating": 4, "place_id": placeID, "user_id": userID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.ReviewResponse](t, w)
}

func TestHealth(t *testing.T) {
	s := setupServer(t)
	w := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUsers(t *testing.T) {
	s := setupServer(t)
	u := s.createUser(t, "ada@example.com")
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.IsAdmin)

	t.Run("password is never exposed", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/users/"+u.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]interface{}](t, w)
		assert.NotContains(t, body, "password")
		assert.NotContains(t, body, "password_hash")
		assert.Equal(t, "ada@example.com", body["email"])
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/users/", map[string]interface{}{
			"first_name": "A", "last_name": "B", "email": "ada@example.com", "password": "secret123",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"Email already registered"}`, w.Body.String())
	})

	t.Run("invalid email", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/users/", map[string]interface{}{
			"first_name": "A", "last_name": "B", "email": "nope", "password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email format"}`, w.Body.String())
	})

	t.Run("password length", func(t *testing.T) {
		cases := map[string]string{
			"Password must not exceed 72 bytes":           strings.Repeat("a", 80),
			"Password must be at least 6 characters long": "ééé",
		}
		for message, password := range cases {
			w := s.do(t, http.MethodPost, "/api/v1/users/", map[string]interface{}{
				"first_name": "A", "last_name": "B", "email": "long@example.com", "password": password,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Equal(t, message, decode[map[string]string](t, w)["error"])
		}
	})

	t.Run("non-object body", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/users/", `["not", "an", "object"]`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w = s.do(t, http.MethodPost, "/api/v1/users/", `null`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/v1/users/"+u.ID, map[string]interface{}{"first_name": "Augusta"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Augusta", decode[models.UserResponse](t, w).FirstName)
	})

	t.Run("update conflict", func(t *testing.T) {
		other := s.createUser(t, "other@example.com")
		w := s.do(t, http.MethodPut, "/api/v1/users/"+other.ID, map[string]interface{}{"email": "ada@example.com"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/users/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())

		w = s.do(t, http.MethodPut, "/api/v1/users/missing", map[string]interface{}{"first_name": "X"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/v1/users/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]models.UserResponse](t, w), 2)
	})
}

func TestAmenities(t *testing.T) {
	s := setupServer(t)
	a := s.createAmenity(t, "Wifi")

	w := s.do(t, http.MethodPut, "/api/v1/amenities/"+a.ID, map[string]interface{}{"name": "Fiber"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Fiber", decode[models.AmenityResponse](t, w).Name)

	w = s.do(t, http.MethodPut, "/api/v1/amenities/"+a.ID, map[string]interface{}{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/amenities/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/amenities/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.AmenityResponse](t, w), 1)
}

func TestPlaces(t *testing.T) {
	s := setupServer(t)
	owner := s.createUser(t, "owner@example.com")
	guest := s.createUser(t, "guest@example.com")
	wifi := s.createAmenity(t, "Wifi")

	p := s.createPlace(t, owner.ID, wifi.ID, "ghost-amenity")
	require.NotNil(t, p.Owner)
	assert.Equal(t, owner.ID, p.Owner.ID)
	assert.Equal(t, []models.AmenitySummary{{ID: wifi.ID, Name: "Wifi"}}, p.Amenities)
	assert.Empty(t, p.Reviews)
	assert.Equal(t, 80.0, p.Price)

	t.Run("unknown owner", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/places/", map[string]interface{}{
			"title": "X", "price": 10, "latitude": 0, "longitude": 0, "owner_id": "ghost",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Owner not found"}`, w.Body.String())
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/places/", map[string]interface{}{
			"title": "X", "price": 10, "latitude": 90.0001, "longitude": 0, "owner_id": owner.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reviews are embedded", func(t *testing.T) {
		r := s.createReview(t, p.ID, guest.ID)
		w := s.do(t, http.MethodGet, "/api/v1/places/"+p.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[models.PlaceResponse](t, w)
		require.Len(t, got.Reviews, 1)
		assert.Equal(t, models.ReviewSummary{ID: r.ID, Text: "Great", Rating: 4, UserID: guest.ID}, got.Reviews[0])
	})

	t.Run("null amenities on update", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/v1/places/"+p.ID, `{"amenities": null}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"amenities must be a list of ids"}`, w.Body.String())

		w = s.do(t, http.MethodGet, "/api/v1/places/"+p.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []models.AmenitySummary{{ID: wifi.ID, Name: "Wifi"}}, decode[models.PlaceResponse](t, w).Amenities)
	})

	t.Run("update keeps owner", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/v1/places/"+p.ID, map[string]interface{}{
			"owner_id": guest.ID, "price": 95.5, "amenities": []string{},
		})
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[models.PlaceResponse](t, w)
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.Equal(t, 95.5, got.Price)
		assert.Empty(t, got.Amenities)
	})

	t.Run("dangling owner is omitted", func(t *testing.T) {
		s.stores.Users.Delete(owner.ID)
		w := s.do(t, http.MethodGet, "/api/v1/places/"+p.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]interface{}](t, w)
		assert.NotContains(t, body, "owner")
		assert.Equal(t, owner.ID, body["owner_id"])
	})

	t.Run("not found", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/places/missing", nil).Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPut, "/api/v1/places/missing",
			map[string]interface{}{"title": "x"}).Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/places/missing/reviews", nil).Code)
	})
}

func TestReviews(t *testing.T) {
	s := setupServer(t)
	owner := s.createUser(t, "owner@example.com")
	guest := s.createUser(t, "guest@example.com")
	p := s.createPlace(t, owner.ID)

	t.Run("self review is rejected", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/reviews/", map[string]interface{}{
			"text": "Mine", "rating": 5, "place_id": p.ID, "user_id": owner.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"You cannot review your own place"}`, w.Body.String())
	})

	t.Run("unknown place and user", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/reviews/", map[string]interface{}{
			"text": "x", "rating": 5, "place_id": "ghost", "user_id": guest.ID,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Place not found"}`, w.Body.String())

		w = s.do(t, http.MethodPost, "/api/v1/reviews/", map[string]interface{}{
			"text": "x", "rating": 5, "place_id": p.ID, "user_id": "ghost",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
	})

	t.Run("rating bounds", func(t *testing.T) {
		for _, rating := range []interface{}{0, 6, 4.5} {
			w := s.do(t, http.MethodPost, "/api/v1/reviews/", map[string]interface{}{
				"text": "x", "rating": rating, "place_id": p.ID, "user_id": guest.ID,
			})
			assert.Equal(t, http.StatusBadRequest, w.Code, "rating %v", rating)
		}
	})

	r := s.createReview(t, p.ID, guest.ID)
	require.NotNil(t, r.User)
	assert.Equal(t, guest.ID, r.User.ID)
	require.NotNil(t, r.Place)
	assert.Equal(t, models.PlaceSummary{ID: p.ID, Title: "Loft"}, *r.Place)

	t.Run("update", func(t *testing.T) {
		w := s.do(t, http.MethodPut, "/api/v1/reviews/"+r.ID, map[string]interface{}{
			"rating": 2, "user_id": owner.ID,
		})
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[models.ReviewResponse](t, w)
		assert.Equal(t, 2, got.Rating)
		assert.Equal(t, guest.ID, got.UserID)
	})

	t.Run("by place", func(t *testing.T) {
		for _, path := range []string{"/api/v1/reviews/places/" + p.ID, "/api/v1/places/" + p.ID + "/reviews"} {
			w := s.do(t, http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, w.Code, path)
			assert.Len(t, decode[[]models.ReviewResponse](t, w), 1)
		}
		w := s.do(t, http.MethodGet, "/api/v1/reviews/places/ghost", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := s.do(t, http.MethodDelete, "/api/v1/reviews/"+r.ID, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = s.do(t, http.MethodDelete, "/api/v1/reviews/"+r.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = s.do(t, http.MethodGet, "/api/v1/places/"+p.ID, nil)
		assert.Empty(t, decode[models.PlaceResponse](t, w).Reviews)

		w = s.do(t, http.MethodGet, "/api/v1/reviews/places/"+p.ID, nil)
		assert.Empty(t, decode[[]models.ReviewResponse](t, w))
	})
}

func TestPlaceQRCode(t *testing.T) {
	s := setupServer(t)
	owner := s.createUser(t, "owner@example.com")
	p := s.createPlace(t, owner.ID)

	w := s.do(t, http.MethodGet, "/api/v1/places/"+p.ID+"/qrcode", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = s.do(t, http.MethodGet, "/api/v1/places/missing/qrcode", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthFlow(t *testing.T) {
	s := setupServer(t)
	u := s.createUser(t, "ada@example.com")

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "ada@example.com", "password": "bad-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid email or password"}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "ada@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[models.LoginResponse](t, w)
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, u.ID, login.User.ID)
	bearer := "Bearer " + login.AccessToken

	w = s.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/auth/me", nil, "Authorization", bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, u.ID, decode[models.UserResponse](t, w).ID)

	w = s.do(t, http.MethodPost, "/api/v1/auth/logout", nil, "Authorization", bearer)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/auth/me", nil, "Authorization", bearer)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMe_UserGone(t *testing.T) {
	s := setupServer(t)
	u := s.createUser(t, "ada@example.com")

	w := s.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "ada@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	login := decode[models.LoginResponse](t, w)

	s.stores.Users.Delete(u.ID)
	w = s.do(t, http.MethodGet, "/api/v1/auth/me", nil, "Authorization", "Bearer "+login.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
