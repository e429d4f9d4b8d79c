package consts

// Mongo 集合名 (Mongoose 复数化命名，与原始数据集保持一致)
const (
	CollectionUsers       = "users"
	CollectionPhotos      = "photos"
	CollectionSchemaInfos = "schemainfos"
)

// RecentCommentLimit 用户统计中最近评论的最大条数
const RecentCommentLimit = 5
