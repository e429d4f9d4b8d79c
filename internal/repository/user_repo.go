package repository

import (
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	ListUserSummaries(ctx context.Context) ([]*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection(consts.CollectionUsers),
	}
}

// GetUserByID 按 ID 查询用户全部展示字段，不存在返回 (nil, nil)
func (s *userRepoImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "find user by id")
	}
	return &user, nil
}

// ListUserSummaries 全量用户列表，只投影姓名
func (s *userRepoImpl) ListUserSummaries(ctx context.Context) ([]*model.User, error) {
	opts := options.Find().SetProjection(bson.M{
		"first_name": 1,
		"last_name":  1,
	})

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list users")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, pkgerrors.Wrap(err, "decode user list")
	}
	return users, nil
}

// GetUsersByIDs 批量查询评论者，只投影姓名
func (s *userRepoImpl) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	opts := options.Find().SetProjection(bson.M{
		"first_name": 1,
		"last_name":  1,
	})

	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "find users by ids")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, pkgerrors.Wrap(err, "decode users by ids")
	}
	return users, nil
}
