package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo 照片文档，评论内嵌在照片里，不单独成集合
type Photo struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   primitive.ObjectID `bson:"user_id"`
	FileName string             `bson:"file_name"`
	DateTime time.Time          `bson:"date_time"`
	Comments []Comment          `bson:"comments"`
}

// Comment 内嵌评论，user_id 指向评论者 (与照片归属者无关)
type Comment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Comment  string             `bson:"comment"`
	DateTime time.Time          `bson:"date_time"`
	UserID   primitive.ObjectID `bson:"user_id"`
}
