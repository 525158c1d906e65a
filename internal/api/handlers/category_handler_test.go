package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bazaarlabs/bazaar-be/internal/models"
	"github.com/bazaarlabs/bazaar-be/internal/services"
)

// --- Mock service ---

type mockCategoryService struct {
	categories []models.CategoryWithCount
	listErr    error
	createErr  error
	lastName   string
}

func (m *mockCategoryService) GetAllCategories() ([]models.CategoryWithCount, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.categories, nil
}

func (m *mockCategoryService) CreateCategory(name string) (models.Category, error) {
	m.lastName = name
	if m.createErr != nil {
		return models.Category{}, m.createErr
	}
	return models.Category{ID: 1, Name: name}, nil
}

func TestCategoryHandlerGetAll(t *testing.T) {
	testCases := []struct {
		name           string
		service        *mockCategoryService
		expectedStatus int
		checkResponse  func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "categories with counts",
			service: &mockCategoryService{categories: []models.CategoryWithCount{
				{ID: 1, Name: "Books", ItemCount: 3},
				{ID: 2, Name: "Tools", ItemCount: 0},
			}},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp []models.CategoryWithCount
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Len(t, resp, 2)
				assert.Equal(t, int64(3), resp[0].ItemCount)
				assert.Equal(t, int64(0), resp[1].ItemCount)
			},
		},
		{
			name:           "empty list",
			service:        &mockCategoryService{categories: []models.CategoryWithCount{}},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
			},
		},
		{
			name:           "service error",
			service:        &mockCategoryService{listErr: errors.New("db down")},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "Failed to retrieve categories", resp["msg"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(tc.service)
			rec := httptest.NewRecorder()
			handler.GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			tc.checkResponse(t, rec)
		})
	}
}

func TestCategoryHandlerCreate(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		service        *mockCategoryService
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "created",
			body:           `{"name":"Books"}`,
			service:        &mockCategoryService{},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{}`,
			service:        &mockCategoryService{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Category name is required",
		},
		{
			name:           "invalid body",
			body:           `{not json`,
			service:        &mockCategoryService{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request body",
		},
		{
			name:           "duplicate",
			body:           `{"name":"Books"}`,
			service:        &mockCategoryService{createErr: services.ErrCategoryExists},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Category already exists",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCategoryHandler(tc.service)
			req := httptest.NewRequest(http.MethodPost, "/api/categories", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			if tc.expectedMsg != "" {
				var resp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.expectedMsg, resp["msg"])
			}
		})
	}
}
