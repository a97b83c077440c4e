package models

import "time"

// GeneralInfo は質問票の基本情報セクション
type GeneralInfo struct {
	Company               string `json:"company" validate:"required"`
	Name                  string `json:"name" validate:"required"`
	Email                 string `json:"email" validate:"required,email"`
	Industry              string `json:"industry" validate:"required"`
	Employees             string `json:"employees" validate:"required"`
	Headquarters          string `json:"headquarters" validate:"required"`
	Products              string `json:"products"`
	ManufacturingLocation string `json:"manufacturing_location"`
	Profile               string `json:"profile"`
}

type SubmitRequest struct {
	General GeneralInfo    `json:"general_information"`
	Answers map[string]int `json:"responses"`
}

// SpiderChartModel はレーダーチャート描画用の固定形状レコード（各値1〜5）
type SpiderChartModel struct {
	SustainabilityLeadership     int `json:"sustainability_leadership"`
	Organization                 int `json:"organization"`
	SustainabilityRiskManagement int `json:"sustainability_risk_management"`
	DataSystems                  int `json:"data_systems"`
	PeopleCompetency             int `json:"people_competency"`
	DirectAssetManagement        int `json:"direct_asset_management"`
	ProductManagement            int `json:"product_management"`
	VendorManagement             int `json:"vendor_management"`
	MetricsReporting             int `json:"metrics_reporting"`
	ManagingChange               int `json:"managing_change"`
}

// Report は提出1回分の分析結果。セッショントークンをキーに保持される
type Report struct {
	ID              string             `json:"id"`
	Username        string             `json:"username"`
	General         GeneralInfo        `json:"general_information"`
	DimensionScores map[string]float64 `json:"dimension_scores"`
	SpiderChart     SpiderChartModel   `json:"spider_chart_model"`
	OverallScore    float64            `json:"overall_score"`
	MaturityLevel   string             `json:"maturity_level"`
	ExtractedText   string             `json:"extracted_text,omitempty"`
	HTMLContent     string             `json:"html_content,omitempty"`
	Success         bool               `json:"success"`
	StatusCode      int                `json:"status_code,omitempty"`
	Error           string             `json:"error,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}
