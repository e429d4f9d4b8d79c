package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCommentRow 展开后的单条评论行，_id 为评论所在照片的 ID
type UserCommentRow struct {
	PhotoID  primitive.ObjectID `bson:"_id"`
	FileName string             `bson:"file_name"`
	Comment  string             `bson:"comment"`
	DateTime time.Time          `bson:"date_time"`
}
