package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lingo_edu_backend/internal/repository"
	"lingo_edu_backend/internal/util"
	"lingo_edu_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dictionaryCacheKey = "dictionary:all"
	dictionaryCacheTTL = 5 * time.Minute
)

// DictionaryService 词典检索：视频词汇连同所属课程与模块。
// 无搜索词的全量列表走 Redis 缓存，搜索请求直查数据库。
type DictionaryService struct {
	videos *repository.VideoRepository
	redis  *redis.Client
}

func NewDictionaryService(videos *repository.VideoRepository, rdb *redis.Client) *DictionaryService {
	return &DictionaryService{
		videos: videos,
		redis:  rdb,
	}
}

// Search 按词检索词典，search 为空时返回全部（带缓存）
func (s *DictionaryService) Search(ctx context.Context, search string) ([]repository.WordRow, error) {
	if search == "" {
		return s.listAll(ctx)
	}
	return s.videos.SearchWords(search)
}

// GetWord 词典单条
func (s *DictionaryService) GetWord(videoID uint) (*repository.WordRow, error) {
	row, err := s.videos.FindWordByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrWordNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *DictionaryService) listAll(ctx context.Context) ([]repository.WordRow, error) {
	if s.redis != nil {
		val, err := s.redis.Get(ctx, dictionaryCacheKey).Result()
		if err == nil {
			var rows []repository.WordRow
			if err := json.Unmarshal([]byte(val), &rows); err == nil {
				return rows, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("词典缓存读取失败，回退数据库", zap.Error(err))
		}
	}

	rows, err := s.videos.SearchWords("")
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if val, err := json.Marshal(rows); err == nil {
			if err := s.redis.Set(ctx, dictionaryCacheKey, val, dictionaryCacheTTL).Err(); err != nil {
				logger.Log.Warn("词典缓存写入失败", zap.Error(err))
			}
		}
	}
	return rows, nil
}
