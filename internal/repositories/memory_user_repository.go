package repositories

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ecogauge/back/internal/models"
	"github.com/ecogauge/back/internal/utils"
)

type memoryUserRepository struct {
	users map[string]*models.User
	mutex sync.RWMutex
}

func NewMemoryUserRepository(csvPath string) UserRepository {
	repo := &memoryUserRepository{
		users: make(map[string]*models.User),
		mutex: sync.RWMutex{},
	}

	// seedデータを追加
	repo.seedData(csvPath)

	return repo
}

func (r *memoryUserRepository) seedData(csvPath string) {
	// CSVファイルからユーザーデータを読み込み
	users, err := r.loadUsersFromCSV(csvPath)
	if err != nil {
		log.Printf("⚠️ CSVファイルの読み込みに失敗しました: %v", err)
		log.Printf("📝 フォールバック: デフォルトユーザーを作成します")
		r.createDefaultUser()
		return
	}

	log.Printf("✅ CSVファイルから %d 人のユーザーを読み込みました", len(users))

	for _, user := range users {
		r.users[user.Username] = user
	}
}

func (r *memoryUserRepository) loadUsersFromCSV(csvPath string) ([]*models.User, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("CSVファイルを開けません: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSVファイルの読み込みに失敗しました: %w", err)
	}

	if len(records) < 2 { // ヘッダー + 最低1行のデータ
		return nil, fmt.Errorf("CSVファイルにデータがありません")
	}

	var users []*models.User
	now := time.Now()

	// ヘッダー行をスキップして処理
	// 列: username,name,password,email,company,industry,revenue,location
	for i, record := range records[1:] {
		if len(record) < 8 {
			log.Printf("⚠️ 行 %d: 列数が不足しています (期待値: 8, 実際: %d)", i+2, len(record))
			continue
		}

		// パスワードをハッシュ化
		passwordHash, err := utils.HashPassword(record[2])
		if err != nil {
			log.Printf("⚠️ 行 %d: パスワードのハッシュ化に失敗しました: %v", i+2, err)
			continue
		}

		users = append(users, &models.User{
			Username:     record[0],
			Name:         record[1],
			PasswordHash: passwordHash,
			Email:        record[3],
			Company:      record[4],
			Industry:     record[5],
			Revenue:      record[6],
			Location:     record[7],
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("有効なユーザーデータがありません")
	}

	return users, nil
}

func (r *memoryUserRepository) createDefaultUser() {
	passwordHash, err := utils.HashPassword("envizi")
	if err != nil {
		log.Printf("⚠️ デフォルトユーザーのパスワードハッシュ化に失敗しました: %v", err)
		return
	}

	now := time.Now()
	r.users["faiz"] = &models.User{
		Username:     "faiz",
		Name:         "Faiz",
		PasswordHash: passwordHash,
		Email:        "faiz@apex-manufacturing.example",
		Company:      "Apex Manufacturing",
		Industry:     "Chemical Manufacturing",
		Revenue:      "$75M-$100M",
		Location:     "Kuala Lumpur, Malaysia",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	log.Printf("✅ デフォルトユーザーを作成しました: faiz")
}

func (r *memoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[username]
	if !exists {
		return nil, fmt.Errorf("user not found: %s", username)
	}

	return user, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return fmt.Errorf("user already exists: %s", user.Username)
	}

	r.users[user.Username] = user
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.users[user.Username]; !exists {
		return fmt.Errorf("user not found: %s", user.Username)
	}

	user.UpdatedAt = time.Now()
	r.users[user.Username] = user
	return nil
}
