package classroom

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer() (*echo.Echo, *Server) {
	e := echo.New()
	s := NewServer()
	s.Register(e)
	return e, s
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWelcome(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodGet, "/welcome", "")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["message"] != "Welcome to Express!" {
		t.Errorf("Unexpected message: %s", response["message"])
	}
}

func TestCreateUser(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPost, "/users", `{"name": "John Doe", "email": "john@example.com"}`)
	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var user User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected assigned user ID")
	}
	if user.Name != "John Doe" {
		t.Errorf("Expected name 'John Doe', got %s", user.Name)
	}
}

func TestCreateUser_MissingFields(t *testing.T) {
	e, _ := newTestServer()

	for _, body := range []string{`{}`, `{"name": "John"}`, `{"email": "john@example.com"}`} {
		rec := doJSON(e, http.MethodPost, "/users", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Body %s: expected status 400, got %d", body, rec.Code)
		}
	}
}

func TestListUsers(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodGet, "/users", "")
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("Expected empty array, got %s", rec.Body.String())
	}

	doJSON(e, http.MethodPost, "/users", `{"name": "John Doe", "email": "john@example.com"}`)

	rec = doJSON(e, http.MethodGet, "/users", "")
	var users []User
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("Expected 1 user, got %d", len(users))
	}
}

func TestUpdateUser(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPost, "/users", `{"name": "John Doe", "email": "john@example.com"}`)
	var created User
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	rec = doJSON(e, http.MethodPut, "/users/1", `{"name": "Jane Doe", "email": "jane@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var updated User
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if updated.Name != "Jane Doe" {
		t.Errorf("Expected name 'Jane Doe', got %s", updated.Name)
	}
}

func TestUpdateUser_PartialKeepsOtherFields(t *testing.T) {
	e, _ := newTestServer()

	doJSON(e, http.MethodPost, "/users", `{"name": "John Doe", "email": "john@example.com"}`)

	rec := doJSON(e, http.MethodPut, "/users/1", `{"name": "Jane Doe"}`)
	var updated User
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if updated.Email != "john@example.com" {
		t.Errorf("Expected email unchanged, got %s", updated.Email)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	e, _ := newTestServer()

	rec := doJSON(e, http.MethodPut, "/users/999", `{"name": "Jane Doe"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteUser(t *testing.T) {
	e, _ := newTestServer()

	doJSON(e, http.MethodPost, "/users", `{"name": "John Doe", "email": "john@example.com"}`)

	rec := doJSON(e, http.MethodDelete, "/users/1", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/users/1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 on second delete, got %d", rec.Code)
	}
}
