package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"menubyte/internal/domain"
	"menubyte/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Items         service.ItemServiceInterface
	Businesses    service.BusinessServiceInterface
	Menus         service.MenuServiceInterface
	Catalog       service.CatalogServiceInterface
	MasterCatalog service.MasterCatalogServiceInterface
	Subscriptions service.SubscriptionServiceInterface
	Users         service.UserServiceInterface
}

func NewHandler(
	itemSvc service.ItemServiceInterface,
	businessSvc service.BusinessServiceInterface,
	menuSvc service.MenuServiceInterface,
	catalogSvc service.CatalogServiceInterface,
	masterSvc service.MasterCatalogServiceInterface,
	subscriptionSvc service.SubscriptionServiceInterface,
	userSvc service.UserServiceInterface,
) *Handler {
	return &Handler{
		Items:         itemSvc,
		Businesses:    businessSvc,
		Menus:         menuSvc,
		Catalog:       catalogSvc,
		MasterCatalog: masterSvc,
		Subscriptions: subscriptionSvc,
		Users:         userSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/users/signup", h.createUser).Methods("POST")
	r.HandleFunc("/api/users/{id}", h.getUser).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.updateUser).Methods("PUT")
	r.HandleFunc("/api/users/{id}", h.deleteUser).Methods("DELETE")

	r.HandleFunc("/api/items/bulk", h.createBulkItems).Methods("POST")
	r.HandleFunc("/api/items/bulk", h.deleteBulkItems).Methods("DELETE")
	r.HandleFunc("/api/items/by-business/{businessId}", h.getBusinessItems).Methods("GET")
	r.HandleFunc("/api/items/{businessId}", h.createItem).Methods("POST")
	r.HandleFunc("/api/items/{itemId}", h.getItem).Methods("GET")
	r.HandleFunc("/api/items/{itemId}", h.updateItem).Methods("PUT")
	r.HandleFunc("/api/items/{itemId}", h.deleteItem).Methods("DELETE")

	r.HandleFunc("/api/businesses/user/{userId}", h.createBusiness).Methods("POST")
	r.HandleFunc("/api/businesses/user/{userId}", h.getUserBusinesses).Methods("GET")
	r.HandleFunc("/api/businesses/{id}", h.getBusiness).Methods("GET")
	r.HandleFunc("/api/businesses/{id}", h.updateBusiness).Methods("PUT")
	r.HandleFunc("/api/businesses/{id}", h.deleteBusiness).Methods("DELETE")

	r.HandleFunc("/api/menu/{businessId}/user/{userId}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{businessId}/qrcode", h.getMenuQRCode).Methods("GET")

	r.HandleFunc("/api/menus/{menuId}/categories", h.resolveCategory).Methods("POST")
	r.HandleFunc("/api/menus/{menuId}/categories", h.getMenuCategories).Methods("GET")
	r.HandleFunc("/api/categories/{categoryId}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/categories/{categoryId}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/master-categories", h.createMasterCategory).Methods("POST")
	r.HandleFunc("/api/master-categories", h.getMasterCategories).Methods("GET")
	r.HandleFunc("/api/master-items", h.createMasterItem).Methods("POST")
	r.HandleFunc("/api/master-items", h.getMasterItems).Methods("GET")
	r.HandleFunc("/api/master-items/{id}", h.updateMasterItem).Methods("PUT")
	r.HandleFunc("/api/master-items/{id}", h.deleteMasterItem).Methods("DELETE")

	r.HandleFunc("/api/subscriptions/user/{userId}", h.getUserSubscriptions).Methods("GET")
	r.HandleFunc("/api/subscriptions/{businessId}", h.applySubscriptionUpdate).Methods("POST")
}

// writeError maps domain errors onto HTTP status codes. Anything unclassified
// is a 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrCrossTenantMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrSubscriptionLimit), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrUniqueViolation):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menubyte",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Users.CreateUser(r.Context(), &user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	user, err := h.Users.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.Users.UpdateUser(r.Context(), id, &user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if err := h.Users.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	var spec domain.ItemCreationSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Items.CreateItemForBusiness(r.Context(), businessID, spec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) createBulkItems(w http.ResponseWriter, r *http.Request) {
	var req domain.BulkItemCreationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	items, err := h.Items.CreateBulkItems(r.Context(), req.BusinessID, req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, items)
}

func (h *Handler) deleteBulkItems(w http.ResponseWriter, r *http.Request) {
	var req domain.BulkItemDeletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Items.DeleteBulkItems(r.Context(), req.BusinessID, req.ItemIDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getBusinessItems(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	items, err := h.Items.GetItemsForBusiness(r.Context(), businessID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	item, err := h.Items.GetItemByID(r.Context(), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	var spec domain.ItemUpdateSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.Items.UpdateItem(r.Context(), itemID, spec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "itemId")
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}
	if err := h.Items.DeleteItem(r.Context(), itemID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createBusiness(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	var business domain.Business
	if err := json.NewDecoder(r.Body).Decode(&business); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Businesses.CreateBusiness(r.Context(), userID, &business)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getUserBusinesses(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	businesses, err := h.Businesses.ListBusinessesByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, businesses)
}

func (h *Handler) getBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	business, err := h.Businesses.GetBusiness(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, business)
}

func (h *Handler) updateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	var business domain.Business
	if err := json.NewDecoder(r.Body).Decode(&business); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.Businesses.UpdateBusiness(r.Context(), id, &business)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	if err := h.Businesses.DeleteBusiness(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	menu, err := h.Menus.GetMenuForUserBusiness(r.Context(), businessID, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getMenuQRCode(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	qrCode, err := h.Menus.MenuQRCode(r.Context(), businessID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) resolveCategory(w http.ResponseWriter, r *http.Request) {
	menuID, err := pathID(r, "menuId")
	if err != nil {
		http.Error(w, "Invalid menu id", http.StatusBadRequest)
		return
	}
	var spec domain.CategorySpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	category, err := h.Catalog.ResolveOrCreateCategory(r.Context(), menuID, spec)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) getMenuCategories(w http.ResponseWriter, r *http.Request) {
	menuID, err := pathID(r, "menuId")
	if err != nil {
		http.Error(w, "Invalid menu id", http.StatusBadRequest)
		return
	}
	categories, err := h.Catalog.ListCategoriesForMenu(r.Context(), menuID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return
	}
	var body struct {
		CategoryDescription string `json:"category_description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	category, err := h.Catalog.UpdateCategory(r.Context(), categoryID, body.CategoryDescription)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.DeleteCategory(r.Context(), categoryID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createMasterCategory(w http.ResponseWriter, r *http.Request) {
	var mc domain.MasterCategory
	if err := json.NewDecoder(r.Body).Decode(&mc); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.MasterCatalog.CreateMasterCategory(r.Context(), &mc)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getMasterCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.MasterCatalog.ListMasterCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createMasterItem(w http.ResponseWriter, r *http.Request) {
	var mi domain.MasterItem
	if err := json.NewDecoder(r.Body).Decode(&mi); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.MasterCatalog.CreateMasterItem(r.Context(), &mi)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getMasterItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.MasterCatalog.ListMasterItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateMasterItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid master item id", http.StatusBadRequest)
		return
	}
	var mi domain.MasterItem
	if err := json.NewDecoder(r.Body).Decode(&mi); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.MasterCatalog.UpdateMasterItem(r.Context(), id, &mi)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteMasterItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid master item id", http.StatusBadRequest)
		return
	}
	if err := h.MasterCatalog.DeleteMasterItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getUserSubscriptions(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	subscriptions, err := h.Subscriptions.ListUserSubscriptions(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subscriptions)
}

func (h *Handler) applySubscriptionUpdate(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		http.Error(w, "Invalid business id", http.StatusBadRequest)
		return
	}
	var req domain.SubscriptionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	subscription, err := h.Subscriptions.ApplySubscriptionUpdate(r.Context(), businessID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, subscription)
}
