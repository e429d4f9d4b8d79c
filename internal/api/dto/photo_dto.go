package dto

import "time"

// PhotoView 照片视图，评论已展开评论者姓名
type PhotoView struct {
	ID       string        `json:"_id"`
	UserID   string        `json:"user_id"`
	FileName string        `json:"file_name"`
	DateTime time.Time     `json:"date_time"`
	Comments []CommentView `json:"comments"`
}

// CommentView 展开后的评论。评论者无法解析时 User 为 null，不让整个请求失败
type CommentView struct {
	ID       string       `json:"_id"`
	Comment  string       `json:"comment"`
	DateTime time.Time    `json:"date_time"`
	User     *UserSummary `json:"user"`
}

// PhotoSummary 照片摘要 (/user/:id/photos)
type PhotoSummary struct {
	ID       string    `json:"_id"`
	FileName string    `json:"file_name"`
	DateTime time.Time `json:"date_time"`
}

// UserCommentRow 用户评论行 (/user/:id/comments)，_id 为评论所在照片的 ID
type UserCommentRow struct {
	PhotoID  string    `json:"_id"`
	FileName string    `json:"file_name"`
	Comment  string    `json:"comment"`
	DateTime time.Time `json:"date_time"`
}
