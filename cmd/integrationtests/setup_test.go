package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	market "github.com/6ixapp/morren/internal/marketService"
	model "github.com/6ixapp/morren/internal/models"
	"github.com/6ixapp/morren/internal/repository"
	"github.com/6ixapp/morren/internal/server"
	"github.com/6ixapp/morren/internal/settlement"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing. The repository is returned so tests can seed orders
// with backdated timestamps.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := market.NewMarketService(repo)
	sweeper := settlement.NewSweeper(repo)
	router := server.SetupRouter(service, sweeper)
	return router, repo
}

// SetupTestRouterWithOrders initializes the router and seeds the repo with
// orders, keeping their timestamps untouched.
func SetupTestRouterWithOrders(orders ...model.Order) (*gin.Engine, *repository.MemoryRepo) {
	router, repo := SetupTestRouter()
	for _, order := range orders {
		repo.AddOrder(order)
	}
	return router, repo
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	case nil:
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
