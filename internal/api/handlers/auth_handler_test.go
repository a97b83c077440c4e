package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ecogauge/back/internal/api/handlers"
	"github.com/ecogauge/back/internal/api/routes"
	"github.com/ecogauge/back/internal/clients"
	"github.com/ecogauge/back/internal/config"
	"github.com/ecogauge/back/internal/models"
	"github.com/ecogauge/back/internal/repositories"
	"github.com/ecogauge/back/internal/services"
)

type analysisClientStub struct {
	result *clients.AnalysisResult
}

func (c *analysisClientStub) Analyze(ctx context.Context, input string) (*clients.AnalysisResult, error) {
	return c.result, nil
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog := &models.Catalog{
		QuestionnaireReference: []models.Question{
			{QuestionID: "Q01", Dimension: "Organization", Element: "Structure", Question: "first"},
			{QuestionID: "Q02", Dimension: "Organization", Element: "Accountability", Question: "second"},
		},
		Responses: map[string]string{"1": "Resist", "2": "Comply", "3": "Optimize", "4": "Reinvent", "5": "Lead"},
	}

	cfg := &config.Config{DebugMode: true, DebugDefaultScore: 3}

	// 存在しないCSVパスを渡すとデフォルトユーザー(faiz)が作成される
	userRepo := repositories.NewMemoryUserRepository(filepath.Join(t.TempDir(), "none.csv"))
	sessionRepo := repositories.NewMemorySessionRepository()
	reportRepo := repositories.NewMemoryReportRepository()

	stub := &analysisClientStub{result: &clients.AnalysisResult{
		Success:       true,
		StatusCode:    200,
		ExtractedText: "# Report\n\nWell done.",
	}}

	authService := services.NewAuthService(userRepo, sessionRepo)
	scoreService := services.NewScoreService()
	assessmentService := services.NewAssessmentService(catalog, scoreService, stub, reportRepo)

	router := routes.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewQuestionnaireHandler(assessmentService, authService, catalog, cfg),
		handlers.NewHealthHandler(),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func login(t *testing.T, server *httptest.Server, username, password string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(models.LoginRequest{Username: username, Password: password})
	resp, err := http.Post(server.URL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	return resp
}

func loginToken(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp := login(t, server, "faiz", "envizi")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status=%d, want 200", resp.StatusCode)
	}

	var loginResp models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if !loginResp.Success || loginResp.Token == "" {
		t.Fatalf("expected token, got %+v", loginResp)
	}
	return loginResp.Token
}

func authedRequest(t *testing.T, method, url, token string, body []byte) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestLoginSetsSessionCookie(t *testing.T) {
	server := testServer(t)

	resp := login(t, server, "faiz", "envizi")
	defer resp.Body.Close()

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("login should set the session_id cookie")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if cookie.MaxAge != int(models.SessionTTL.Seconds()) {
		t.Errorf("cookie MaxAge=%d, want %d", cookie.MaxAge, int(models.SessionTTL.Seconds()))
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := testServer(t)

	resp := login(t, server, "faiz", "wrong")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status=%d, want 401", resp.StatusCode)
	}

	var loginResp models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loginResp.Success || loginResp.Token != "" {
		t.Errorf("expected failure without token, got %+v", loginResp)
	}
}

func TestQuestionnaireRequiresAuth(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/api/questionnaire")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status=%d, want 401", resp.StatusCode)
	}
}

func TestQuestionnaireWithToken(t *testing.T) {
	server := testServer(t)
	token := loginToken(t, server)

	resp := authedRequest(t, "GET", server.URL+"/api/questionnaire", token, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d, want 200", resp.StatusCode)
	}

	var body struct {
		Success           bool              `json:"success"`
		UserName          string            `json:"user_name"`
		TotalQuestions    int               `json:"total_questions"`
		Questions         []models.Question `json:"questions"`
		DebugMode         bool              `json:"debug_mode"`
		DebugDefaultScore int               `json:"debug_default_score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if body.UserName != "Faiz" {
		t.Errorf("user_name=%q, want Faiz", body.UserName)
	}
	if body.TotalQuestions != 2 || len(body.Questions) != 2 {
		t.Errorf("got %d/%d questions, want 2", body.TotalQuestions, len(body.Questions))
	}
	if !body.DebugMode || body.DebugDefaultScore != 3 {
		t.Errorf("debug toggles not surfaced: %+v", body)
	}
}

func TestSubmitAndReportFlow(t *testing.T) {
	server := testServer(t)
	token := loginToken(t, server)

	submitBody, _ := json.Marshal(models.SubmitRequest{
		General: models.GeneralInfo{
			Company:      "Apex Manufacturing",
			Name:         "Faiz",
			Email:        "faiz@apex-manufacturing.example",
			Industry:     "Chemical Manufacturing",
			Employees:    "500-1000",
			Headquarters: "Kuala Lumpur, Malaysia",
		},
		Answers: map[string]int{"Q01": 2, "Q02": 4},
	})

	resp := authedRequest(t, "POST", server.URL+"/api/submit-questionnaire", token, submitBody)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status=%d, want 200", resp.StatusCode)
	}

	successResp := authedRequest(t, "GET", server.URL+"/api/success", token, nil)
	defer successResp.Body.Close()
	if successResp.StatusCode != http.StatusOK {
		t.Fatalf("success status=%d, want 200", successResp.StatusCode)
	}
	var summary map[string]interface{}
	if err := json.NewDecoder(successResp.Body).Decode(&summary); err != nil {
		t.Fatalf("decode success summary: %v", err)
	}
	if summary["analysis_success"] != true {
		t.Errorf("analysis_success=%v, want true", summary["analysis_success"])
	}

	reportResp := authedRequest(t, "GET", server.URL+"/api/report", token, nil)
	defer reportResp.Body.Close()
	if reportResp.StatusCode != http.StatusOK {
		t.Fatalf("report status=%d, want 200", reportResp.StatusCode)
	}

	var report models.Report
	if err := json.NewDecoder(reportResp.Body).Decode(&report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if !report.Success {
		t.Error("report should be successful")
	}
	if got := report.DimensionScores["Organization"]; got != 3.0 {
		t.Errorf("Organization score=%v, want 3.0", got)
	}
	if report.HTMLContent == "" {
		t.Error("report should carry rendered HTML")
	}
}

func TestSubmitIncompleteRejected(t *testing.T) {
	server := testServer(t)
	token := loginToken(t, server)

	submitBody, _ := json.Marshal(models.SubmitRequest{
		General: models.GeneralInfo{
			Company:      "Apex Manufacturing",
			Name:         "Faiz",
			Email:        "faiz@apex-manufacturing.example",
			Industry:     "Chemical Manufacturing",
			Employees:    "500-1000",
			Headquarters: "Kuala Lumpur, Malaysia",
		},
		Answers: map[string]int{"Q01": 2}, // Q02 missing
	})

	resp := authedRequest(t, "POST", server.URL+"/api/submit-questionnaire", token, submitBody)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status=%d, want 400", resp.StatusCode)
	}
}

func TestReportBeforeSubmit(t *testing.T) {
	server := testServer(t)
	token := loginToken(t, server)

	resp := authedRequest(t, "GET", server.URL+"/api/report", token, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status=%d, want 404", resp.StatusCode)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	server := testServer(t)
	token := loginToken(t, server)

	resp := authedRequest(t, "POST", server.URL+"/api/logout", token, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status=%d, want 200", resp.StatusCode)
	}

	infoResp := authedRequest(t, "GET", server.URL+"/api/user-info", token, nil)
	defer infoResp.Body.Close()
	if infoResp.StatusCode != http.StatusUnauthorized {
		t.Errorf("user-info after logout status=%d, want 401", infoResp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status=%d, want 200", resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status=%v, want ok", body["status"])
	}
}
