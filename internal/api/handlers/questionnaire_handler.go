package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ecogauge/back/internal/config"
	"github.com/ecogauge/back/internal/models"
	"github.com/ecogauge/back/internal/services"
	"github.com/ecogauge/back/internal/utils"
)

type QuestionnaireHandler struct {
	assessmentService services.AssessmentService
	authService       services.AuthService
	catalog           *models.Catalog
	cfg               *config.Config
}

func NewQuestionnaireHandler(
	assessmentService services.AssessmentService,
	authService services.AuthService,
	catalog *models.Catalog,
	cfg *config.Config,
) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		assessmentService: assessmentService,
		authService:       authService,
		catalog:           catalog,
		cfg:               cfg,
	}
}

// GetQuestionnaire は設問カタログと回答ラベルを返す（要認証）
func (h *QuestionnaireHandler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
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

	response := map[string]interface{}{
		"success":             true,
		"user_name":           user.Name,
		"total_questions":     len(h.catalog.QuestionnaireReference),
		"questions":           h.catalog.QuestionnaireReference,
		"responses":           h.catalog.Responses,
		"debug_mode":          h.cfg.DebugMode,
		"debug_default_score": h.cfg.DebugDefaultScore,
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// Submit は質問票の提出を受け付け、集計・分析してレポートを保存する（要認証）
func (h *QuestionnaireHandler) Submit(w http.ResponseWriter, r *http.Request) {
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

	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	report, err := h.assessmentService.Submit(r.Context(), user, token, req)
	if err != nil {
		if services.IsValidationError(err) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"report_id": report.ID,
	})
}

// GetSuccess は提出直後の完了ページ向けサマリーを返す（要認証）
func (h *QuestionnaireHandler) GetSuccess(w http.ResponseWriter, r *http.Request) {
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

	response := map[string]interface{}{
		"success":         true,
		"user_name":       user.Name,
		"total_questions": len(h.catalog.QuestionnaireReference),
	}

	// 提出済みであれば結果の概要を添える
	if report, err := h.assessmentService.Report(r.Context(), token); err == nil {
		response["report_id"] = report.ID
		response["analysis_success"] = report.Success
		if !report.Success {
			response["analysis_error"] = report.Error
		}
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// GetReport は保存済みの分析レポートを返す（要認証）。
// 分析サービスが失敗していた場合もレポートとして返し、エラーパネル表示は
// クライアント側で success フラグを見て行う
func (h *QuestionnaireHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	token := sessionToken(r)
	if token == "" {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Authentication token required")
		return
	}

	if _, err := h.authService.ValidateToken(r.Context(), token); err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid or expired session")
		return
	}

	report, err := h.assessmentService.Report(r.Context(), token)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusNotFound, "No report available")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, report)
}
