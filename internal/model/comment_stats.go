package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentStats 聚合管道输出：某用户的评论总数与最近评论
type CommentStats struct {
	CommentCount   int64        `bson:"commentCount"`
	RecentComments []CommentRef `bson:"recentComments"`
}

// CommentRef 评论摘要，携带所在照片的信息
type CommentRef struct {
	PhotoID  primitive.ObjectID `bson:"photoId"`
	FileName string             `bson:"fileName"`
	Comment  string             `bson:"comment"`
	DateTime time.Time          `bson:"dateTime"`
}
