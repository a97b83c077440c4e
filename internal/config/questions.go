package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/ecogauge/back/internal/models"
)

// LoadCatalog は設問カタログをJSONファイルから読み込む。
// ファイルが無い場合は最小のフォールバックカタログを返す
func LoadCatalog(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("⚠️ 設問ファイルが見つかりません: %s", path)
			log.Printf("📝 フォールバック: 組み込みの設問カタログを使用します")
			return fallbackCatalog(), nil
		}
		return nil, fmt.Errorf("設問ファイルの読み込みに失敗しました: %w", err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("設問ファイルの解析に失敗しました: %w", err)
	}

	if len(catalog.QuestionnaireReference) == 0 {
		return nil, fmt.Errorf("設問ファイルに設問がありません: %s", path)
	}
	if len(catalog.Responses) == 0 {
		return nil, fmt.Errorf("設問ファイルに回答ラベルがありません: %s", path)
	}

	log.Printf("✅ 設問カタログを読み込みました: %d 問", len(catalog.QuestionnaireReference))
	return &catalog, nil
}

func fallbackCatalog() *models.Catalog {
	return &models.Catalog{
		QuestionnaireReference: []models.Question{
			{
				QuestionID: "Q01",
				Dimension:  "Sustainability Leadership",
				Element:    "Leadership",
				Question:   "Sustainability is a priority for my Leadership committee",
			},
		},
		Responses: map[string]string{
			"1": "Resist - Minimal or no sustainability practices, reactive approach",
			"2": "Comply - Basic regulatory compliance, limited proactive measures",
			"3": "Optimize - Proactive sustainability improvements, some integration into business",
			"4": "Reinvent - Sustainability as core business driver, comprehensive approach",
			"5": "Lead - Industry leadership in sustainability, market shaping activities",
		},
	}
}
