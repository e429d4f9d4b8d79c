package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SchemaInfo 数据集版本信息，全库只有一条
type SchemaInfo struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Version      string             `bson:"version" json:"version"`
	LoadDateTime time.Time          `bson:"load_date_time" json:"load_date_time"`
}
