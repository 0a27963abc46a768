package tests

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "menubyte/internal/api/http"
	"menubyte/internal/domain"
	"menubyte/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serveRequest(handler *httpapi.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.ServeHTTP(w, req)
	return w
}

func TestCreateItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.ItemService)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"itemName":"Paneer Tikka","categoryId":3,"variants":[{"variantName":"Full","price":220}]}`,
			setupMock: func(m *mocks.ItemService) {
				m.On("CreateItemForBusiness", mock.Anything, int64(1), mock.AnythingOfType("domain.ItemCreationSpec")).
					Return(&domain.Item{ID: 100, ItemName: "Paneer Tikka"}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.ItemService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: `{"itemName":""}`,
			setupMock: func(m *mocks.ItemService) {
				m.On("CreateItemForBusiness", mock.Anything, int64(1), mock.AnythingOfType("domain.ItemCreationSpec")).
					Return(nil, fmt.Errorf("%w: item name cannot be empty", domain.ErrValidation)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown business",
			body: `{"itemName":"Dal","categoryId":3,"variants":[{"variantName":"Full","price":180}]}`,
			setupMock: func(m *mocks.ItemService) {
				m.On("CreateItemForBusiness", mock.Anything, int64(1), mock.AnythingOfType("domain.ItemCreationSpec")).
					Return(nil, fmt.Errorf("business 1: %w", domain.ErrNotFound)).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "lost category race unresolved",
			body: `{"itemName":"Dal","isNewCategory":true,"categoryDescription":"Starters","variants":[{"variantName":"Full","price":180}]}`,
			setupMock: func(m *mocks.ItemService) {
				m.On("CreateItemForBusiness", mock.Anything, int64(1), mock.AnythingOfType("domain.ItemCreationSpec")).
					Return(nil, fmt.Errorf("%w: category raced", domain.ErrConflict)).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			itemSvc := new(mocks.ItemService)
			testCase.setupMock(itemSvc)
			handler := httpapi.NewHandler(itemSvc, nil, nil, nil, nil, nil, nil)

			w := serveRequest(handler, "POST", "/api/items/1", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			itemSvc.AssertExpectations(t)
		})
	}
}

func TestUpdateItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.ItemService)
		wantCode  int
	}{
		{
			name: "updated",
			setupMock: func(m *mocks.ItemService) {
				m.On("UpdateItem", mock.Anything, int64(100), mock.AnythingOfType("domain.ItemUpdateSpec")).
					Return(&domain.Item{ID: 100}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "category from another menu",
			setupMock: func(m *mocks.ItemService) {
				m.On("UpdateItem", mock.Anything, int64(100), mock.AnythingOfType("domain.ItemUpdateSpec")).
					Return(nil, fmt.Errorf("%w", domain.ErrCrossTenantMismatch)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
	}

	body := `{"itemName":"Paneer Tikka","categoryId":3,"variants":[{"variantName":"Full","price":220}]}`
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			itemSvc := new(mocks.ItemService)
			testCase.setupMock(itemSvc)
			handler := httpapi.NewHandler(itemSvc, nil, nil, nil, nil, nil, nil)

			w := serveRequest(handler, "PUT", "/api/items/100", body)

			assert.Equal(t, testCase.wantCode, w.Code)
			itemSvc.AssertExpectations(t)
		})
	}
}

func TestDeleteItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.ItemService)
		wantCode  int
	}{
		{
			name: "deleted",
			setupMock: func(m *mocks.ItemService) {
				m.On("DeleteItem", mock.Anything, int64(100)).Return(nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "not found",
			setupMock: func(m *mocks.ItemService) {
				m.On("DeleteItem", mock.Anything, int64(100)).
					Return(fmt.Errorf("item 100: %w", domain.ErrNotFound)).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			itemSvc := new(mocks.ItemService)
			testCase.setupMock(itemSvc)
			handler := httpapi.NewHandler(itemSvc, nil, nil, nil, nil, nil, nil)

			w := serveRequest(handler, "DELETE", "/api/items/100", "")

			assert.Equal(t, testCase.wantCode, w.Code)
			itemSvc.AssertExpectations(t)
		})
	}
}

func TestBulkCreateItemsHandler(t *testing.T) {
	itemSvc := new(mocks.ItemService)
	itemSvc.On("CreateBulkItems", mock.Anything, int64(1), mock.AnythingOfType("[]domain.ItemCreationSpec")).
		Return([]domain.Item{{ID: 100}, {ID: 101}}, nil).Once()
	handler := httpapi.NewHandler(itemSvc, nil, nil, nil, nil, nil, nil)

	body := `{"businessId":1,"items":[{"itemName":"A","categoryId":3,"variants":[{"variantName":"Full","price":100}]},{"itemName":"B","categoryId":3,"variants":[{"variantName":"Full","price":120}]}]}`
	w := serveRequest(handler, "POST", "/api/items/bulk", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	itemSvc.AssertExpectations(t)
}

func TestCreateBusinessHandler_TrialLimit(t *testing.T) {
	businessSvc := new(mocks.BusinessService)
	businessSvc.On("CreateBusiness", mock.Anything, int64(1), mock.AnythingOfType("*domain.Business")).
		Return(nil, fmt.Errorf("user 1: %w", domain.ErrSubscriptionLimit)).Once()
	handler := httpapi.NewHandler(nil, businessSvc, nil, nil, nil, nil, nil)

	w := serveRequest(handler, "POST", "/api/businesses/user/1", `{"business_name":"Second Venture"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	businessSvc.AssertExpectations(t)
}

func TestGetMenuHandler(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MenuService)
		wantCode  int
	}{
		{
			name: "owner gets menu",
			setupMock: func(m *mocks.MenuService) {
				m.On("GetMenuForUserBusiness", mock.Anything, int64(2), int64(1)).
					Return(&domain.MenuView{MenuID: 10, BusinessID: 2}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name: "foreign user rejected",
			setupMock: func(m *mocks.MenuService) {
				m.On("GetMenuForUserBusiness", mock.Anything, int64(2), int64(1)).
					Return(nil, fmt.Errorf("%w", domain.ErrCrossTenantMismatch)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			menuSvc := new(mocks.MenuService)
			testCase.setupMock(menuSvc)
			handler := httpapi.NewHandler(nil, nil, menuSvc, nil, nil, nil, nil)

			w := serveRequest(handler, "GET", "/api/menu/2/user/1", "")

			assert.Equal(t, testCase.wantCode, w.Code)
			menuSvc.AssertExpectations(t)
		})
	}
}

func TestMenuQRCodeHandler(t *testing.T) {
	menuSvc := new(mocks.MenuService)
	menuSvc.On("MenuQRCode", mock.Anything, int64(2)).Return([]byte("png-bytes"), nil).Once()
	handler := httpapi.NewHandler(nil, nil, menuSvc, nil, nil, nil, nil)

	w := serveRequest(handler, "GET", "/api/menu/2/qrcode", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("png-bytes"), w.Body.Bytes())
	menuSvc.AssertExpectations(t)
}

func TestApplySubscriptionUpdateHandler(t *testing.T) {
	subscriptionSvc := new(mocks.SubscriptionService)
	subscriptionSvc.On("ApplySubscriptionUpdate", mock.Anything, int64(2), mock.AnythingOfType("domain.SubscriptionUpdateRequest")).
		Return(&domain.BusinessMaster{ID: 5, SubscriptionType: domain.SubscriptionMonthly}, nil).Once()
	handler := httpapi.NewHandler(nil, nil, nil, nil, nil, subscriptionSvc, nil)

	w := serveRequest(handler, "POST", "/api/subscriptions/2", `{"planType":"MONTHLY","tenureInMonths":3,"amountPaid":299}`)

	assert.Equal(t, http.StatusOK, w.Code)
	subscriptionSvc.AssertExpectations(t)
}

func TestResolveCategoryHandler(t *testing.T) {
	catalogSvc := new(mocks.CatalogService)
	catalogSvc.On("ResolveOrCreateCategory", mock.Anything, int64(10), mock.AnythingOfType("domain.CategorySpec")).
		Return(&domain.Category{ID: 7, MenuID: 10, CategoryDescription: "Starters"}, nil).Once()
	handler := httpapi.NewHandler(nil, nil, nil, catalogSvc, nil, nil, nil)

	w := serveRequest(handler, "POST", "/api/menus/10/categories", `{"isNewCategory":true,"categoryDescription":"Starters"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	catalogSvc.AssertExpectations(t)
}

func TestHealthCheckHandler(t *testing.T) {
	handler := httpapi.NewHandler(nil, nil, nil, nil, nil, nil, nil)

	w := serveRequest(handler, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestCreateUserHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.UserService)
		wantCode  int
	}{
		{
			name: "signup",
			body: `{"username":"asha","email":"asha@example.com","mobile_number":"9876543210"}`,
			setupMock: func(m *mocks.UserService) {
				m.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
					Return(&domain.User{ID: 1, Username: "asha"}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.UserService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: `{"username":"asha","email":"asha@example.com"}`,
			setupMock: func(m *mocks.UserService) {
				m.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
					Return(nil, fmt.Errorf("%w: a user with email already exists", domain.ErrConflict)).Once()
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			userSvc := new(mocks.UserService)
			testCase.setupMock(userSvc)
			handler := httpapi.NewHandler(nil, nil, nil, nil, nil, nil, userSvc)

			w := serveRequest(handler, "POST", "/api/users/signup", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			userSvc.AssertExpectations(t)
		})
	}
}

func TestGetUserHandler(t *testing.T) {
	userSvc := new(mocks.UserService)
	userSvc.On("GetUser", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Username: "asha", Email: "asha@example.com"}, nil).Once()
	handler := httpapi.NewHandler(nil, nil, nil, nil, nil, nil, userSvc)

	w := serveRequest(handler, "GET", "/api/users/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "asha@example.com")
	userSvc.AssertExpectations(t)
}

func TestDeleteBulkItemsHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.ItemService)
		wantCode  int
	}{
		{
			name: "deleted",
			body: `{"businessId":1,"itemIds":[100,101]}`,
			setupMock: func(m *mocks.ItemService) {
				m.On("DeleteBulkItems", mock.Anything, int64(1), []int64{100, 101}).
					Return(nil).Once()
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "foreign item",
			body: `{"businessId":1,"itemIds":[500]}`,
			setupMock: func(m *mocks.ItemService) {
				m.On("DeleteBulkItems", mock.Anything, int64(1), []int64{500}).
					Return(fmt.Errorf("%w: item 500 does not belong to business 1", domain.ErrCrossTenantMismatch)).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.ItemService) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			itemSvc := new(mocks.ItemService)
			testCase.setupMock(itemSvc)
			handler := httpapi.NewHandler(itemSvc, nil, nil, nil, nil, nil, nil)

			w := serveRequest(handler, "DELETE", "/api/items/bulk", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			itemSvc.AssertExpectations(t)
		})
	}
}
