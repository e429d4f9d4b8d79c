package client

import (
	"Photoshare/internal/api/dto"
	"context"

	"golang.org/x/sync/errgroup"
)

// Features 界面功能开关。由 App 唯一持有，向下逐层显式传参，
// 不做成包级全局量
type Features struct {
	AdvancedEnabled bool
}

// App 浏览客户端的根组件，持有功能开关并把它传给各视图
type App struct {
	api      API
	features Features
	cache    SummaryCache
}

func NewApp(api API, features Features, cache SummaryCache) *App {
	return &App{
		api:      api,
		features: features,
		cache:    cache,
	}
}

func (s *App) UserListView() *UserListView {
	return &UserListView{api: s.api, features: s.features}
}

func (s *App) UserCommentsView() *UserCommentsView {
	return &UserCommentsView{api: s.api, cache: s.cache}
}

// OpenPhotos 加载某用户的照片流并装入状态机。
// targetPhotoID 来自路由参数，可为空
func (s *App) OpenPhotos(ctx context.Context, nav Navigator, userID, targetPhotoID string) (*PhotoViewState, error) {
	photos, err := s.api.PhotosOfUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	vs := NewPhotoViewState(nav)
	vs.Load(userID, photos, targetPhotoID)
	return vs, nil
}

// UserListItem 用户列表项；高级模式下附带统计
type UserListItem struct {
	dto.UserSummary
	Stats *dto.UserStats
}

// UserListView 用户列表视图
type UserListView struct {
	api      API
	features Features
}

// Load 拉取用户列表。高级模式下并发补齐每个用户的统计，
// 任何一个统计失败整个加载失败 (与参考实现的 Promise.all 行为一致)
func (s *UserListView) Load(ctx context.Context) ([]*UserListItem, error) {
	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*UserListItem, len(users))
	for i, user := range users {
		items[i] = &UserListItem{UserSummary: *user}
	}

	if !s.features.AdvancedEnabled {
		return items, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			stats, err := s.api.GetUserStats(gctx, item.ID)
			if err != nil {
				return err
			}
			item.Stats = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// UserComments 评论视图的加载结果。缓存命中时 User 为 nil (不回源)
type UserComments struct {
	User      *dto.UserDetail
	Comments  []dto.CommentSummary
	FromCache bool
}

// UserCommentsView 用户评论视图，缓存优先
type UserCommentsView struct {
	api   API
	cache SummaryCache
}

// Load 先查本地缓存，命中则完全不访问后端；
// 未命中时并发拉取用户详情与统计，然后填充缓存
func (s *UserCommentsView) Load(ctx context.Context, userID string) (*UserComments, error) {
	cached, hit, err := s.cache.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if hit {
		return &UserComments{Comments: cached, FromCache: true}, nil
	}

	var (
		user  *dto.UserDetail
		stats *dto.UserStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.api.GetUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.api.GetUserStats(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, userID, stats.RecentComments); err != nil {
		return nil, err
	}

	return &UserComments{
		User:     user,
		Comments: stats.RecentComments,
	}, nil
}
