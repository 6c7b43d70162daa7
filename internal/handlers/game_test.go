package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"eggbreak/internal/config"
	"eggbreak/internal/game"
	"eggbreak/internal/models"
)

type fixedSource struct{}

func (fixedSource) Float64() float64 { return 0 }

func newTestServer() *Server {
	cfg := config.Config{
		JWTSecret:     "test-secret",
		AdminToken:    "admin-token",
		AdminUsername: "admin",
		AdminPassword: "admin123",
		TotalEggs:     8,
	}
	store := game.NewStore(cfg.TotalEggs, fixedSource{})
	return NewServer(cfg, store, nil)
}

func newTestRouter(srv *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.GET("/game-state", srv.GetGameState)
	api.POST("/break-egg", srv.BreakEgg)
	api.POST("/claim-rewards", srv.ClaimRewards)
	api.POST("/reset-game", srv.ResetGame)
	api.POST("/auth/login", srv.Login)
	admin := api.Group("/admin", srv.AdminRequired())
	admin.GET("/eggs", srv.GetAllEggs)
	admin.POST("/links", srv.CreateLink)
	admin.DELETE("/links/:id", srv.DeleteLink)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, header map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBreakEggEndpoint(t *testing.T) {
	srv := newTestServer()
	r := newTestRouter(srv)
	if _, err := srv.Store.UpdateEgg(3, models.NumericReward(200), 100); err != nil {
		t.Fatalf("UpdateEgg: %v", err)
	}

	w := doJSON(r, http.MethodPost, "/api/break-egg", gin.H{"eggId": 3}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var result models.BreakEggResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.EggID != 3 || !result.Success {
		t.Fatalf("result = %+v", result)
	}
	if amount, ok := result.Reward.Amount(); !ok || amount != 200 {
		t.Fatalf("reward = %v, want 200", result.Reward)
	}

	w = doJSON(r, http.MethodPost, "/api/break-egg", gin.H{"eggId": 3}, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("second break status = %d, want 500", w.Code)
	}
}

func TestBreakEggInvalidID(t *testing.T) {
	srv := newTestServer()
	r := newTestRouter(srv)

	for _, id := range []int{0, 9, -1} {
		w := doJSON(r, http.MethodPost, "/api/break-egg", gin.H{"eggId": id}, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("eggId %d: status = %d, want 400", id, w.Code)
		}
	}
}

func TestClaimRewardsEndpointEmpty(t *testing.T) {
	srv := newTestServer()
	r := newTestRouter(srv)

	w := doJSON(r, http.MethodPost, "/api/claim-rewards", nil, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestGameStateEndpoint(t *testing.T) {
	srv := newTestServer()
	r := newTestRouter(srv)

	w := doJSON(r, http.MethodGet, "/api/game-state", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var state models.GameState
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(state.Eggs) != 8 || state.Progress != 0 {
		t.Fatalf("state = %+v", state)
	}
}

func TestAdminAuth(t *testing.T) {
	srv := newTestServer()
	r := newTestRouter(srv)

	w := doJSON(r, http.MethodGet, "/api/admin/eggs", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d, want 401", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/admin/eggs", nil, map[string]string{"X-Admin-Token": "admin-token"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin token status = %d, want 200", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/api/admin/eggs", nil, map[string]string{"Authorization": "Bearer not-a-jwt"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("bad bearer status = %d, want 403", w.Code)
	}
}

func TestLoginIssuesUsableToken(t *testing.T) {
	srv := newTestServer()
	r := newTestRouter(srv)

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "wrong"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password status = %d, want 401", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token   string `json:"token"`
		IsAdmin bool   `json:"isAdmin"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" || !resp.IsAdmin {
		t.Fatalf("resp = %+v", resp)
	}

	w = doJSON(r, http.MethodGet, "/api/admin/eggs", nil, map[string]string{"Authorization": "Bearer " + resp.Token})
	if w.Code != http.StatusOK {
		t.Fatalf("bearer status = %d, want 200", w.Code)
	}
}

func TestLinkEndpoints(t *testing.T) {
	srv := newTestServer()
	r := newTestRouter(srv)
	hdr := map[string]string{"X-Admin-Token": "admin-token"}

	w := doJSON(r, http.MethodPost, "/api/admin/links", gin.H{"domain": "x.com", "protocol": "http"}, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var link models.LinkResponse
	if err := json.Unmarshal(w.Body.Bytes(), &link); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if link.FullURL != "http://x.com" {
		t.Fatalf("fullUrl = %q, want http://x.com", link.FullURL)
	}

	w = doJSON(r, http.MethodPost, "/api/admin/links", gin.H{"protocol": "http"}, hdr)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("missing domain status = %d, want 500", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/api/admin/links/1", nil, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(r, http.MethodDelete, "/api/admin/links/1", nil, hdr)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}
