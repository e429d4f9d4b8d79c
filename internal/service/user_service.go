package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/repository"
	"context"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]*dto.UserSummary, error)
	GetUser(ctx context.Context, userID string) (*dto.UserDetail, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// ListUsers 全量用户摘要列表
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserSummary, error) {
	users, err := s.userRepo.ListUserSummaries(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserSummary, 0, len(users))
	for _, user := range users {
		item := &dto.UserSummary{}
		_ = copier.Copy(item, user)
		item.ID = user.ID.Hex()
		out = append(out, item)
	}
	return out, nil
}

// GetUser 用户详情。ID 格式非法先于任何查询失败
func (s *userServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserDetail, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	user, err := s.userRepo.GetUserByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	detail := &dto.UserDetail{}
	_ = copier.Copy(detail, user)
	detail.ID = user.ID.Hex()
	return detail, nil
}
