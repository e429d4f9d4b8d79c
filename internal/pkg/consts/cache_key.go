package consts

// CommentCacheKey 客户端评论缓存 Key 前缀，后接用户 ID
const CommentCacheKey = "comments_"
