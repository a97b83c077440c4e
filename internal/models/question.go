package models

// Question は設問定義（起動時に一度読み込まれ、以降は不変）
type Question struct {
	QuestionID string `json:"questionId"`
	Dimension  string `json:"dimension"`
	Element    string `json:"element"`
	Question   string `json:"question"`
}

// Catalog は設問カタログ全体。Responses は回答レベル(1〜5)のラベル
type Catalog struct {
	QuestionnaireReference []Question        `json:"questionnaireReference"`
	Responses              map[string]string `json:"responses"`
}

// Dimensions はカタログ順で重複を除いたディメンション一覧を返す
func (c *Catalog) Dimensions() []string {
	seen := make(map[string]bool)
	var dims []string
	for _, q := range c.QuestionnaireReference {
		if !seen[q.Dimension] {
			seen[q.Dimension] = true
			dims = append(dims, q.Dimension)
		}
	}
	return dims
}
