package repository

import (
	"Photoshare/internal/model"
	"Photoshare/internal/pkg/consts"
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

// Counts 各集合的文档数
type Counts struct {
	User       int64
	Photo      int64
	SchemaInfo int64
}

type SchemaInfoRepo interface {
	Get(ctx context.Context) (*model.SchemaInfo, error)
	Counts(ctx context.Context) (*Counts, error)
}

type schemaInfoRepoImpl struct {
	db *mongo.Database
}

func NewSchemaInfoRepo(db *mongo.Database) SchemaInfoRepo {
	return &schemaInfoRepoImpl{db: db}
}

// Get 读取版本信息，全库应当只有一条，缺失返回 (nil, nil)
func (s *schemaInfoRepoImpl) Get(ctx context.Context) (*model.SchemaInfo, error) {
	var info model.SchemaInfo
	err := s.db.Collection(consts.CollectionSchemaInfos).FindOne(ctx, bson.M{}).Decode(&info)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(err, "find schema info")
	}
	return &info, nil
}

// Counts 并发统计三个集合的文档数
func (s *schemaInfoRepoImpl) Counts(ctx context.Context) (*Counts, error) {
	var counts Counts
	g, ctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int64) func() error {
		return func() error {
			n, err := s.db.Collection(name).CountDocuments(ctx, bson.M{})
			if err != nil {
				return pkgerrors.Wrapf(err, "count %s", name)
			}
			*dst = n
			return nil
		}
	}

	g.Go(count(consts.CollectionUsers, &counts.User))
	g.Go(count(consts.CollectionPhotos, &counts.Photo))
	g.Go(count(consts.CollectionSchemaInfos, &counts.SchemaInfo))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}
