package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/expenso/expenso-backend/internal/domain"
	"github.com/expenso/expenso-backend/internal/service"
	"github.com/expenso/expenso-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

func newCategoryHandler() (*CategoryHandler, *testutil.MockCategoryRepository, *testutil.MockTransactionRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	categoryService := service.NewCategoryService(categoryRepo, transactionRepo)
	return NewCategoryHandler(categoryService), categoryRepo, transactionRepo
}

func TestCreateCategory_Success(t *testing.T) {
	e := echo.New()
	handler, _, _ := newCategoryHandler()
	userID := uuid.New()

	reqBody := `{"name": "Groceries", "type": "expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/create", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupUserContext(c, userID)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Name != "groceries" {
		t.Errorf("Expected lowercased name 'groceries', got %s", response.Name)
	}
}

func TestCreateCategory_Duplicate409(t *testing.T) {
	e := echo.New()
	handler, _, _ := newCategoryHandler()
	userID := uuid.New()

	reqBody := `{"name": "food", "type": "expense"}`
	for i, wantStatus := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/create", strings.NewReader(reqBody))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		setupUserContext(c, userID)

		if err := handler.CreateCategory(c); err != nil {
			t.Fatalf("Expected JSON response, got error: %v", err)
		}
		if rec.Code != wantStatus {
			t.Errorf("Request %d: expected status %d, got %d", i+1, wantStatus, rec.Code)
		}
	}
}

func TestCreateCategory_InvalidType(t *testing.T) {
	e := echo.New()
	handler, _, _ := newCategoryHandler()

	reqBody := `{"name": "food", "type": "savings"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/create", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupUserContext(c, uuid.New())

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problemDetails ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problemDetails); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if problemDetails.Type != ErrorTypeValidation {
		t.Errorf("Expected error type %s, got %s", ErrorTypeValidation, problemDetails.Type)
	}
}

func TestCreateCategory_NoIdentity(t *testing.T) {
	e := echo.New()
	handler, _, _ := newCategoryHandler()

	reqBody := `{"name": "food", "type": "expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/create", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestGetCategories_Success(t *testing.T) {
	e := echo.New()
	handler, categoryRepo, _ := newCategoryHandler()
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "food", Type: domain.CategoryTypeExpense})
	categoryRepo.AddCategory(&domain.Category{ID: 2, UserID: uuid.New(), Name: "rent", Type: domain.CategoryTypeExpense})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/lists", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupUserContext(c, userID)

	if err := handler.GetCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 1 {
		t.Errorf("Expected 1 category, got %d", len(response))
	}
}

func TestUpdateCategory_RenameCascades(t *testing.T) {
	e := echo.New()
	handler, categoryRepo, transactionRepo := newCategoryHandler()
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "food", Type: domain.CategoryTypeExpense})
	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 1, UserID: userID, Type: domain.TransactionTypeExpense,
		Amount: decimal.NewFromInt(25), Category: "food",
	})

	reqBody := `{"name": "dining"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/categories/update/1", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("categoryId")
	c.SetParamValues("1")
	setupUserContext(c, userID)

	if err := handler.UpdateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	if transactionRepo.Transactions[1].Category != "dining" {
		t.Errorf("Expected transaction cascaded to 'dining', got %s", transactionRepo.Transactions[1].Category)
	}
}

func TestUpdateCategory_WrongOwner403(t *testing.T) {
	e := echo.New()
	handler, categoryRepo, _ := newCategoryHandler()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: uuid.New(), Name: "food", Type: domain.CategoryTypeExpense})

	reqBody := `{"name": "dining"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/categories/update/1", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("categoryId")
	c.SetParamValues("1")
	setupUserContext(c, uuid.New())

	if err := handler.UpdateCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rec.Code)
	}
}

func TestUpdateCategory_InvalidID(t *testing.T) {
	e := echo.New()
	handler, _, _ := newCategoryHandler()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/categories/update/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("categoryId")
	c.SetParamValues("abc")
	setupUserContext(c, uuid.New())

	if err := handler.UpdateCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteCategory_Success(t *testing.T) {
	e := echo.New()
	handler, categoryRepo, transactionRepo := newCategoryHandler()
	userID := uuid.New()

	categoryRepo.AddCategory(&domain.Category{ID: 1, UserID: userID, Name: "food", Type: domain.CategoryTypeExpense})
	transactionRepo.AddTransaction(&domain.Transaction{
		ID: 1, UserID: userID, Type: domain.TransactionTypeExpense,
		Amount: decimal.NewFromInt(25), Category: "food",
	})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/delete/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	setupUserContext(c, userID)

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["message"] != "Category removed and transactions updated" {
		t.Errorf("Unexpected message: %s", response["message"])
	}

	if transactionRepo.Transactions[1].Category != domain.UncategorizedName {
		t.Errorf("Expected transaction reassigned, got %s", transactionRepo.Transactions[1].Category)
	}
}

func TestDeleteCategory_NotFoundStill200(t *testing.T) {
	e := echo.New()
	handler, _, _ := newCategoryHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/delete/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")
	setupUserContext(c, uuid.New())

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["message"] != "Category not found or user not authorized" {
		t.Errorf("Unexpected message: %s", response["message"])
	}
}
