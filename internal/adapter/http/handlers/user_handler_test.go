package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"puentes_admin/internal/adapter/http/handlers/mocks"
	"puentes_admin/internal/domain/entities"
	"puentes_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestUserHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("omits passwords", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/users", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.User{
			{ID: 7, Name: "Laura", Email: "laura@example.com", State: entities.UserStateActivo, Password: "plaintext", Role: entities.RoleAdmin},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "plaintext") || strings.Contains(w.Body.String(), "password") {
			t.Fatalf("password leaked: %s", w.Body.String())
		}
	})

	t.Run("search filters by name or email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.GET("/v1/users", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.User{
			{ID: 7, Name: "Laura", Email: "laura@example.com"},
			{ID: 8, Name: "Pedro", Email: "pedro@example.com"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users?search=pedro", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var body struct {
			Items []json.RawMessage `json:"items"`
			Total int               `json:"total"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(body.Items) != 1 || body.Total != 1 {
			t.Fatalf("expected one match, got %+v", body)
		}
	})
}

func TestUserHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewUserHandler(mocks.NewMockIUserUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/users", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/v1/users", h.Create)

		want := entities.User{Name: "Pedro", Email: "pedro@example.com", Phone: "555-0102", State: entities.UserStateActivo, Password: "secret"}
		uc.EXPECT().Create(gomock.Any(), want).Return(nil)

		payload := `{"name":"Pedro","email":"pedro@example.com","phone":"555-0102","state":"Activo","password":"secret"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestUserHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewUserHandler(mocks.NewMockIUserUseCase(ctrl))

		r := gin.New()
		r.PUT("/v1/users/:id", h.Update)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/abc", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PUT("/v1/users/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(usecase.ErrUserNotFound)

		payload := `{"name":"Pedro","email":"pedro@example.com","state":"Activo","password":"secret"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/users/42", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success carries the path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.PUT("/v1/users/:id", h.Update)

		want := entities.User{ID: 42, Name: "Pedro", Email: "pedro@example.com", State: entities.UserStateActivo, Password: "secret"}
		uc.EXPECT().Update(gomock.Any(), want).Return(nil)

		payload := `{"name":"Pedro","email":"pedro@example.com","state":"Activo","password":"secret"}`
		req := httptest.NewRequest(http.MethodPut, "/v1/users/42", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestUserHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.DELETE("/v1/users/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), int64(42)).Return(usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/users/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.DELETE("/v1/users/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/users/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
