package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ecogauge/back/internal/clients"
	"github.com/ecogauge/back/internal/metrics"
	"github.com/ecogauge/back/internal/models"
	"github.com/ecogauge/back/internal/repositories"
	"github.com/ecogauge/back/internal/utils"
)

// ValidationError は提出内容の不備。HTTP 400として返される
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type AssessmentService interface {
	Submit(ctx context.Context, user *models.User, token string, req models.SubmitRequest) (*models.Report, error)
	Report(ctx context.Context, token string) (*models.Report, error)
}

type assessmentService struct {
	catalog        *models.Catalog
	scoreService   ScoreService
	analysisClient clients.AnalysisClient
	reportRepo     repositories.ReportRepository
	validate       *validator.Validate
	now            func() time.Time
}

func NewAssessmentService(
	catalog *models.Catalog,
	scoreService ScoreService,
	analysisClient clients.AnalysisClient,
	reportRepo repositories.ReportRepository,
) AssessmentService {
	return &assessmentService{
		catalog:        catalog,
		scoreService:   scoreService,
		analysisClient: analysisClient,
		reportRepo:     reportRepo,
		validate:       validator.New(),
		now:            time.Now,
	}
}

// Submit は提出内容を検証・集計し、外部分析サービスに転送した結果を
// セッショントークンをキーに保存して返す。分析失敗時もレポートとして
// 保存し、自動リトライはしない
func (s *assessmentService) Submit(ctx context.Context, user *models.User, token string, req models.SubmitRequest) (*models.Report, error) {
	// 基本情報のバリデーション
	if err := s.validate.Struct(req.General); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			var missing []string
			for _, fe := range verrs {
				missing = append(missing, strings.ToLower(fe.Field()))
			}
			return nil, &ValidationError{
				Message: fmt.Sprintf("Missing or invalid required fields: %s", strings.Join(missing, ", ")),
			}
		}
		return nil, err
	}

	// 回答セットの検証と集計（不完全な回答は集計前に拒否）
	averages, err := s.scoreService.DimensionAverages(s.catalog, req.Answers)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	metrics.SubmissionsTotal.Inc()

	overall := s.scoreService.OverallScore(averages)

	// 外部分析サービスを呼び出す
	formatted := s.formatQuestionnaire(user, req.General, req.Answers)

	start := time.Now()
	result, err := s.analysisClient.Analyze(ctx, formatted)
	metrics.AnalysisLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}

	report := &models.Report{
		ID:              uuid.NewString(),
		Username:        user.Username,
		General:         req.General,
		DimensionScores: averages,
		SpiderChart:     s.scoreService.SpiderChart(averages),
		OverallScore:    overall,
		MaturityLevel:   s.scoreService.MaturityLevel(overall),
		Success:         result.Success,
		StatusCode:      result.StatusCode,
		CreatedAt:       s.now(),
	}

	if result.Success {
		metrics.AnalysisRequestsTotal.WithLabelValues("success").Inc()
		report.ExtractedText = result.ExtractedText
		report.HTMLContent = utils.RenderMarkdown(result.ExtractedText)
	} else {
		metrics.AnalysisRequestsTotal.WithLabelValues("failure").Inc()
		report.Error = result.Error
		log.Printf("⚠️ 分析サービスの呼び出しに失敗しました: %s", result.Error)
	}

	if err := s.reportRepo.Save(ctx, token, report); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	return report, nil
}

// Report は保存済みのレポートを返す
func (s *assessmentService) Report(ctx context.Context, token string) (*models.Report, error) {
	return s.reportRepo.GetByToken(ctx, token)
}

// formatQuestionnaire は分析サービスに渡す質問票テキストを組み立てる
func (s *assessmentService) formatQuestionnaire(user *models.User, info models.GeneralInfo, answers map[string]int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - SUSTAINABILITY QUESTIONNAIRE\n", strings.ToUpper(info.Company))
	fmt.Fprintf(&b, "Company: %s\n", info.Company)
	fmt.Fprintf(&b, "Industry: %s\n", info.Industry)
	fmt.Fprintf(&b, "Revenue: %s\n", user.Revenue)
	fmt.Fprintf(&b, "Location: %s\n", info.Headquarters)
	fmt.Fprintf(&b, "Date: %s\n\n", s.now().Format("2006-01-02 15:04:05"))

	b.WriteString("QUESTIONNAIRE RESPONSES\n")
	b.WriteString("========================\n\n")

	for _, q := range s.catalog.QuestionnaireReference {
		number := strings.TrimPrefix(q.QuestionID, "Q")
		fmt.Fprintf(&b, "Q%s: %s\n", number, q.Question)
		fmt.Fprintf(&b, "Dimension: %s | Element: %s\n", q.Dimension, q.Element)

		if level, ok := answers[q.QuestionID]; ok {
			label := s.catalog.Responses[strconv.Itoa(level)]
			fmt.Fprintf(&b, "A%s: Level %d - %s\n\n", number, level, label)
		} else {
			fmt.Fprintf(&b, "A%s: Not answered\n\n", number)
		}
	}

	return b.String()
}
