package repository

import (
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	"context"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PhotoRepo interface {
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Photo, error)
	ListSummariesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Photo, error)
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
	CommentStatsByUser(ctx context.Context, userID primitive.ObjectID) (*model.CommentStats, error)
	ListCommentRowsByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.UserCommentRow, error)
}

type photoRepoImpl struct {
	col *mongo.Collection
}

func NewPhotoRepo(db *mongo.Database) PhotoRepo {
	return &photoRepoImpl{
		col: db.Collection(consts.CollectionPhotos),
	}
}

// ListByOwner 某用户的全部照片，含内嵌评论
func (s *photoRepoImpl) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Photo, error) {
	opts := options.Find().SetProjection(bson.M{
		"user_id":   1,
		"file_name": 1,
		"date_time": 1,
		"comments":  1,
	})

	cursor, err := s.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list photos by owner")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var photos []*model.Photo
	if err = cursor.All(ctx, &photos); err != nil {
		return nil, pkgerrors.Wrap(err, "decode photos")
	}
	return photos, nil
}

// ListSummariesByOwner 照片摘要，按拍摄时间倒序 (最新的在前)
func (s *photoRepoImpl) ListSummariesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Photo, error) {
	opts := options.Find().
		SetProjection(bson.M{"file_name": 1, "date_time": 1}).
		SetSort(bson.D{{Key: "date_time", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{"user_id": ownerID}, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list photo summaries")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var photos []*model.Photo
	if err = cursor.All(ctx, &photos); err != nil {
		return nil, pkgerrors.Wrap(err, "decode photo summaries")
	}
	return photos, nil
}

// CountByOwner 某用户拥有的照片数
func (s *photoRepoImpl) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return 0, pkgerrors.Wrap(err, "count photos by owner")
	}
	return count, nil
}

// CommentStatsByUser 聚合某用户发表的评论：
// 展开 comments → 过滤评论者 → 按评论时间倒序 → 计数并收集 → 截取最近 5 条。
// 排序在 $group 之前，$push 保序，因此 recentComments 确定性地取最新的。
func (s *photoRepoImpl) CommentStatsByUser(ctx context.Context, userID primitive.ObjectID) (*model.CommentStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$comments"}},
		bson.D{{Key: "$match", Value: bson.M{"comments.user_id": userID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "comments.date_time", Value: -1}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"commentCount": bson.M{"$sum": 1},
			"comments": bson.M{"$push": bson.M{
				"photoId":  "$_id",
				"fileName": "$file_name",
				"comment":  "$comments.comment",
				"dateTime": "$comments.date_time",
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":            0,
			"commentCount":   1,
			"recentComments": bson.M{"$slice": bson.A{"$comments", consts.RecentCommentLimit}},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "aggregate comment stats")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var results []*model.CommentStats
	if err = cursor.All(ctx, &results); err != nil {
		return nil, pkgerrors.Wrap(err, "decode comment stats")
	}

	// 没有任何评论时管道不输出分组，视为零值
	if len(results) == 0 {
		return &model.CommentStats{RecentComments: []model.CommentRef{}}, nil
	}
	return results[0], nil
}

// ListCommentRowsByUser 某用户发表的全部评论行，按评论时间倒序
func (s *photoRepoImpl) ListCommentRowsByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.UserCommentRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$comments"}},
		bson.D{{Key: "$match", Value: bson.M{"comments.user_id": userID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "comments.date_time", Value: -1}}}},
		bson.D{{Key: "$project", Value: bson.M{
			"file_name": 1,
			"comment":   "$comments.comment",
			"date_time": "$comments.date_time",
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "aggregate comment rows")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []*model.UserCommentRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, pkgerrors.Wrap(err, "decode comment rows")
	}
	return rows, nil
}
