package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PhotoService interface {
	PhotosOfUser(ctx context.Context, userID string) ([]*dto.PhotoView, error)
}

type photoServiceImpl struct {
	photoRepo repository.PhotoRepo
	userRepo  repository.UserRepo
}

func NewPhotoService(photoRepo repository.PhotoRepo, userRepo repository.UserRepo) PhotoService {
	return &photoServiceImpl{
		photoRepo: photoRepo,
		userRepo:  userRepo,
	}
}

// PhotosOfUser 某用户的照片及展开后的评论。
// 评论者批量查一次 ($in) 再在内存里回填；悬空引用回填 null，不让整个请求失败。
func (s *photoServiceImpl) PhotosOfUser(ctx context.Context, userID string) ([]*dto.PhotoView, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	photos, err := s.photoRepo.ListByOwner(ctx, oid)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return nil, ErrNoPhotosFound
	}

	// 收集去重后的评论者 ID
	seen := make(map[primitive.ObjectID]struct{})
	var commenterIDs []primitive.ObjectID
	for _, photo := range photos {
		for _, comment := range photo.Comments {
			if _, ok := seen[comment.UserID]; ok {
				continue
			}
			seen[comment.UserID] = struct{}{}
			commenterIDs = append(commenterIDs, comment.UserID)
		}
	}

	commenters, err := s.userRepo.GetUsersByIDs(ctx, commenterIDs)
	if err != nil {
		return nil, err
	}
	commenterByID := make(map[primitive.ObjectID]*dto.UserSummary, len(commenters))
	for _, user := range commenters {
		commenterByID[user.ID] = &dto.UserSummary{
			ID:        user.ID.Hex(),
			FirstName: user.FirstName,
			LastName:  user.LastName,
		}
	}

	out := make([]*dto.PhotoView, 0, len(photos))
	for _, photo := range photos {
		view := &dto.PhotoView{
			ID:       photo.ID.Hex(),
			UserID:   photo.UserID.Hex(),
			FileName: photo.FileName,
			DateTime: photo.DateTime,
			Comments: make([]dto.CommentView, 0, len(photo.Comments)),
		}
		for _, comment := range photo.Comments {
			view.Comments = append(view.Comments, dto.CommentView{
				ID:       comment.ID.Hex(),
				Comment:  comment.Comment,
				DateTime: comment.DateTime,
				User:     commenterByID[comment.UserID],
			})
		}
		out = append(out, view)
	}
	return out, nil
}
