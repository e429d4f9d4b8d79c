package dto

import "time"

// UserStats 每次请求即时计算，不落库
type UserStats struct {
	UserID         string           `json:"userId"`
	PhotoCount     int64            `json:"photoCount"`
	CommentCount   int64            `json:"commentCount"`
	RecentComments []CommentSummary `json:"recentComments"`
}

// CommentSummary 最近评论摘要
type CommentSummary struct {
	PhotoID  string    `json:"photoId"`
	FileName string    `json:"fileName"`
	Comment  string    `json:"comment"`
	DateTime time.Time `json:"dateTime"`
}

// CollectionCounts 各集合的文档数 (/test/counts)
type CollectionCounts struct {
	User       int64 `json:"user"`
	Photo      int64 `json:"photo"`
	SchemaInfo int64 `json:"schemaInfo"`
}
