package services

import (
	"fmt"
	"math"

	"github.com/ecogauge/back/internal/models"
)

// 成熟度レベル（スコア昇順）
const (
	MaturityResist   = "resist"
	MaturityComply   = "comply"
	MaturityOptimize = "optimize"
	MaturityReinvent = "reinvent"
	MaturityLead     = "lead"
)

// ディメンション名からレーダーチャートのフィールドへの対応
var chartFieldSetters = map[string]func(*models.SpiderChartModel, int){
	"Sustainability Leadership":      func(m *models.SpiderChartModel, v int) { m.SustainabilityLeadership = v },
	"Organization":                   func(m *models.SpiderChartModel, v int) { m.Organization = v },
	"Sustainability Risk Management": func(m *models.SpiderChartModel, v int) { m.SustainabilityRiskManagement = v },
	"Data & Systems":                 func(m *models.SpiderChartModel, v int) { m.DataSystems = v },
	"People & Competency":            func(m *models.SpiderChartModel, v int) { m.PeopleCompetency = v },
	"Asset Management":               func(m *models.SpiderChartModel, v int) { m.DirectAssetManagement = v },
	"Product Management":             func(m *models.SpiderChartModel, v int) { m.ProductManagement = v },
	"Vendor Management":              func(m *models.SpiderChartModel, v int) { m.VendorManagement = v },
	"Metrics & Reporting":            func(m *models.SpiderChartModel, v int) { m.MetricsReporting = v },
	"Managing Change":                func(m *models.SpiderChartModel, v int) { m.ManagingChange = v },
}

// ScoreService は回答の検証とディメンション別スコアの集計を行う。
// 同じ回答セットからは常に同じスコアが得られる（純粋・決定的）
type ScoreService interface {
	DimensionAverages(catalog *models.Catalog, answers map[string]int) (map[string]float64, error)
	OverallScore(averages map[string]float64) float64
	MaturityLevel(score float64) string
	SpiderChart(averages map[string]float64) models.SpiderChartModel
}

type scoreService struct{}

func NewScoreService() ScoreService {
	return &scoreService{}
}

// DimensionAverages は回答セットを検証し、ディメンションごとの算術平均を返す。
// 全設問に1〜5の回答が揃っていない場合は集計前に拒否する
func (s *scoreService) DimensionAverages(catalog *models.Catalog, answers map[string]int) (map[string]float64, error) {
	known := make(map[string]bool, len(catalog.QuestionnaireReference))
	for _, q := range catalog.QuestionnaireReference {
		known[q.QuestionID] = true
	}

	// 未知の設問IDを拒否
	for id := range answers {
		if !known[id] {
			return nil, fmt.Errorf("unknown question id: %s", id)
		}
	}

	// 全設問の回答が揃っているか、値が範囲内かを検証
	for _, q := range catalog.QuestionnaireReference {
		score, ok := answers[q.QuestionID]
		if !ok {
			return nil, fmt.Errorf("missing answer for question %s", q.QuestionID)
		}
		if score < 1 || score > 5 {
			return nil, fmt.Errorf("answer for question %s out of range: %d", q.QuestionID, score)
		}
	}

	// カタログ順に集計するため、回答マップの反復順序に依存しない
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, q := range catalog.QuestionnaireReference {
		sums[q.Dimension] += answers[q.QuestionID]
		counts[q.Dimension]++
	}

	averages := make(map[string]float64, len(sums))
	for _, dim := range catalog.Dimensions() {
		if counts[dim] == 0 {
			// 設問ゼロのディメンションは未定義（デフォルト値を返さない）
			return nil, fmt.Errorf("dimension %q has no questions", dim)
		}
		averages[dim] = round2(float64(sums[dim]) / float64(counts[dim]))
	}

	return averages, nil
}

// OverallScore はディメンション平均の平均を返す
func (s *scoreService) OverallScore(averages map[string]float64) float64 {
	if len(averages) == 0 {
		return 0
	}
	var sum float64
	for _, v := range averages {
		sum += v
	}
	return round2(sum / float64(len(averages)))
}

// MaturityLevel はスコアから成熟度レベルを判定する
func (s *scoreService) MaturityLevel(score float64) string {
	switch {
	case score < 2.0:
		return MaturityResist
	case score < 3.0:
		return MaturityComply
	case score < 4.0:
		return MaturityOptimize
	case score < 5.0:
		return MaturityReinvent
	default:
		return MaturityLead
	}
}

// SpiderChart はディメンション平均をレーダーチャート用の固定形状レコードに変換する。
// スコアの無いフィールドは最小値1で初期化される
func (s *scoreService) SpiderChart(averages map[string]float64) models.SpiderChartModel {
	chart := models.SpiderChartModel{
		SustainabilityLeadership:     1,
		Organization:                 1,
		SustainabilityRiskManagement: 1,
		DataSystems:                  1,
		PeopleCompetency:             1,
		DirectAssetManagement:        1,
		ProductManagement:            1,
		VendorManagement:             1,
		MetricsReporting:             1,
		ManagingChange:               1,
	}

	for dimension, score := range averages {
		if setter, ok := chartFieldSetters[dimension]; ok {
			setter(&chart, int(math.Round(score)))
		}
	}

	return chart
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
