package minio

import (
	"Photoshare/internal/api/config"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// StatImage 检查照片对象是否存在
func StatImage(ctx context.Context, objectName string) error {
	if Client == nil {
		return fmt.Errorf("minio client is not initialized")
	}
	_, err := Client.StatObject(ctx, ImageBucket, objectName, minio.StatObjectOptions{})
	return err
}

// GetPublicURL 获取照片的公共访问URL
func GetPublicURL(objectName string) string {
	cfg := config.Cfg.MinIO

	protocol := "http"
	if cfg.UseSSL {
		protocol = "https"
	}

	return fmt.Sprintf("%s://%s/%s/%s", protocol, cfg.Endpoint, ImageBucket, objectName)
}
