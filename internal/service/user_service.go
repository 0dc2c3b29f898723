package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"lingo_edu_backend/internal/model"
	"lingo_edu_backend/internal/repository"
	"lingo_edu_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Avatar 可选头像目录项
type Avatar struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
	URL  string `json:"url"`
}

// 头像没有建表，目录在这里维护
var avatarCatalogue = []Avatar{
	{ID: 1, Name: "Tigre", URL: "https://example.com/avatars/tigre.png"},
	{ID: 2, Name: "Leon", URL: "https://example.com/avatars/leon.png"},
	{ID: 3, Name: "Aguila", URL: "https://example.com/avatars/aguila.png"},
	{ID: 4, Name: "Oso", URL: "https://example.com/avatars/oso.png"},
	{ID: 5, Name: "Lobo", URL: "https://example.com/avatars/lobo.png"},
	{ID: 6, Name: "Panda", URL: "https://example.com/avatars/panda.png"},
	{ID: 7, Name: "Gato", URL: "https://example.com/avatars/gato.png"},
	{ID: 8, Name: "Perro", URL: "https://example.com/avatars/perro.png"},
	{ID: 9, Name: "Conejo", URL: "https://example.com/avatars/conejo.png"},
	{ID: 10, Name: "Zorro", URL: "https://example.com/avatars/zorro.png"},
}

// UserService 个人资料与头像
type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

func (s *UserService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateName 更新昵称
func (s *UserService) UpdateName(userID uint, name string) (*model.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetAvatar 从头像目录里选一个
func (s *UserService) SetAvatar(userID uint, avatarID int) (*model.User, error) {
	var chosen *Avatar
	for i := range avatarCatalogue {
		if avatarCatalogue[i].ID == avatarID {
			chosen = &avatarCatalogue[i]
			break
		}
	}
	if chosen == nil {
		return nil, util.ErrAvatarNotFound
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateAvatar(userID, chosen.URL); err != nil {
		return nil, err
	}
	user.Avatar = chosen.URL
	return user, nil
}

// UploadAvatar 上传自定义头像，文件名用 uuid 防冲突
func (s *UserService) UploadAvatar(ctx context.Context, userID uint, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if _, err := s.GetProfile(userID); err != nil {
		return "", err
	}

	objectName := "avatars/" + uuid.New().String() + filepath.Ext(filename)
	url, err := s.Storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	if err := s.UserRepo.UpdateAvatar(userID, url); err != nil {
		return "", err
	}
	return url, nil
}

// Avatars 可选头像目录
func (s *UserService) Avatars() []Avatar {
	return avatarCatalogue
}
