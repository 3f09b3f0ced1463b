package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	api "github.com/rogerio-castellano/freshtrack/internal/http"
	handler "github.com/rogerio-castellano/freshtrack/internal/http/handlers"
	"github.com/rogerio-castellano/freshtrack/internal/kvstore"
	"github.com/rogerio-castellano/freshtrack/internal/models"
	"github.com/rogerio-castellano/freshtrack/internal/repo"
	"github.com/rogerio-castellano/freshtrack/internal/scanner"
	"github.com/rogerio-castellano/freshtrack/internal/stats"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	scanRepo    *repo.InMemoryScanEventRepository
	kv          *kvstore.MemoryStore
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	scanRepo = repo.NewInMemoryScanEventRepository()
	handler.SetScanRepo(scanRepo)

	kv = kvstore.NewMemoryStore()
	handler.SetKVStore(kv)
	handler.SetNotifier(stats.NewNotifier(kv, nil))

	handler.SetLookupTable(scanner.NewLookupTable(map[string]scanner.ProductInfo{
		"4001234": {Name: "Organic Milk 1L", Category: models.CategoryFood},
	}))
	handler.SetScanFeed(scanner.NewFeed(16))

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearStoredSettings() {
	ctx := context.Background()
	kv.Delete(ctx, kvstore.SettingsKey)
	kv.Delete(ctx, kvstore.PendingNotificationKey)
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func testProductRequest(name string) handler.ProductRequest {
	return handler.ProductRequest{
		Name:       name,
		ExpiryDate: time.Now().AddDate(0, 1, 0),
		Quantity:   1,
		Category:   "food",
		Location:   "Fridge",
	}
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRequest(r http.Handler, method, path string, payload any, authorized bool) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
