package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/model"
	"Photoshare/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	ComputeStats(ctx context.Context, userID string) (*dto.UserStats, error)
	ListUserPhotos(ctx context.Context, userID string) ([]*dto.PhotoSummary, error)
	ListUserComments(ctx context.Context, userID string) ([]*dto.UserCommentRow, error)
}

type statsServiceImpl struct {
	photoRepo repository.PhotoRepo
}

func NewStatsService(photoRepo repository.PhotoRepo) StatsService {
	return &statsServiceImpl{
		photoRepo: photoRepo,
	}
}

// ComputeStats 即时计算用户统计。照片计数与评论聚合是两次独立读，
// 并发执行，两者之间不保证事务一致 (只读报表，接受该窗口)。
// 统计不要求用户记录存在：合法 ID 但无任何照片/评论时返回全零，不算未找到。
func (s *statsServiceImpl) ComputeStats(ctx context.Context, userID string) (*dto.UserStats, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	var (
		photoCount   int64
		commentStats *model.CommentStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		photoCount, err = s.photoRepo.CountByOwner(gctx, oid)
		return err
	})
	g.Go(func() error {
		var err error
		commentStats, err = s.photoRepo.CommentStatsByUser(gctx, oid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := make([]dto.CommentSummary, 0, len(commentStats.RecentComments))
	for _, ref := range commentStats.RecentComments {
		recent = append(recent, dto.CommentSummary{
			PhotoID:  ref.PhotoID.Hex(),
			FileName: ref.FileName,
			Comment:  ref.Comment,
			DateTime: ref.DateTime,
		})
	}

	return &dto.UserStats{
		UserID:         userID,
		PhotoCount:     photoCount,
		CommentCount:   commentStats.CommentCount,
		RecentComments: recent,
	}, nil
}

// ListUserPhotos 照片摘要，最新的在前
func (s *statsServiceImpl) ListUserPhotos(ctx context.Context, userID string) ([]*dto.PhotoSummary, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	photos, err := s.photoRepo.ListSummariesByOwner(ctx, oid)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PhotoSummary, 0, len(photos))
	for _, photo := range photos {
		out = append(out, &dto.PhotoSummary{
			ID:       photo.ID.Hex(),
			FileName: photo.FileName,
			DateTime: photo.DateTime,
		})
	}
	return out, nil
}

// ListUserComments 用户发表的全部评论行，最新的在前
func (s *statsServiceImpl) ListUserComments(ctx context.Context, userID string) ([]*dto.UserCommentRow, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	rows, err := s.photoRepo.ListCommentRowsByUser(ctx, oid)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.UserCommentRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.UserCommentRow{
			PhotoID:  row.PhotoID.Hex(),
			FileName: row.FileName,
			Comment:  row.Comment,
			DateTime: row.DateTime,
		})
	}
	return out, nil
}
