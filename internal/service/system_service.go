package service

import (
	"Photoshare/internal/api/dto"
	"Photoshare/internal/model"
	"Photoshare/internal/repository"
	"context"
)

type SystemService interface {
	SchemaInfo(ctx context.Context) (*model.SchemaInfo, error)
	CollectionCounts(ctx context.Context) (*dto.CollectionCounts, error)
}

type systemServiceImpl struct {
	schemaInfoRepo repository.SchemaInfoRepo
}

func NewSystemService(schemaInfoRepo repository.SchemaInfoRepo) SystemService {
	return &systemServiceImpl{
		schemaInfoRepo: schemaInfoRepo,
	}
}

// SchemaInfo 数据集版本信息，缺失视为服务端错误
func (s *systemServiceImpl) SchemaInfo(ctx context.Context) (*model.SchemaInfo, error) {
	info, err := s.schemaInfoRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrSchemaInfoMissing
	}
	return info, nil
}

// CollectionCounts 各集合的文档数
func (s *systemServiceImpl) CollectionCounts(ctx context.Context) (*dto.CollectionCounts, error) {
	counts, err := s.schemaInfoRepo.Counts(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CollectionCounts{
		User:       counts.User,
		Photo:      counts.Photo,
		SchemaInfo: counts.SchemaInfo,
	}, nil
}
