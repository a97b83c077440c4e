package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ecogauge/back/internal/metrics"
	"github.com/ecogauge/back/internal/models"
	"github.com/ecogauge/back/internal/services"
	"github.com/ecogauge/back/internal/utils"
)

// sessionCookieName はブラウザ向けのセッションクッキー名
const sessionCookieName = "session_id"

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// sessionToken はAuthorizationヘッダー、無ければクッキーからトークンを取り出す
func sessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token := authHeader
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}
		return token
	}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// バリデーション
	if strings.TrimSpace(req.Username) == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Username is required")
		return
	}
	if req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Password is required")
		return
	}

	response, err := h.authService.Login(r.Context(), req)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !response.Success {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		utils.WriteJSONResponse(w, http.StatusUnauthorized, response)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	// ブラウザクライアント向けにセッションクッキーも設定する
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    response.Token,
		Path:     "/",
		MaxAge:   int(models.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication token required")
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	// クッキーを破棄
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out",
	})
}

func (h *AuthHandler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication token required")
		return
	}

	user, err := h.authService.ValidateToken(r.Context(), token)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
		return
	}

	// ユーザー情報のレスポンス（パスワードハッシュは除外）
	response := map[string]interface{}{
		"success":  true,
		"username": user.Username,
		"name":     user.Name,
		"email":    user.Email,
		"company":  user.Company,
		"industry": user.Industry,
		"revenue":  user.Revenue,
		"location": user.Location,
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}
