package job

import (
	"Photoshare/internal/pkg/logger"
	"Photoshare/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// CollectionCensusJob 周期性统计各集合文档数并写日志，
// 用于观察数据集是否被外部导入流程更新过 (本服务自身无写路径)
type CollectionCensusJob struct {
	schemaInfoRepo repository.SchemaInfoRepo
}

func NewCollectionCensusJob(schemaInfoRepo repository.SchemaInfoRepo) *CollectionCensusJob {
	return &CollectionCensusJob{
		schemaInfoRepo: schemaInfoRepo,
	}
}

func (s *CollectionCensusJob) Run() {
	traceID := "job-census-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	counts, err := s.schemaInfoRepo.Counts(ctx)
	if err != nil {
		log.ErrorContext(ctx, "collection census failed", "err", err)
		return
	}

	log.InfoContext(ctx, "collection census",
		"users", counts.User,
		"photos", counts.Photo,
		"schema_infos", counts.SchemaInfo,
	)
}
