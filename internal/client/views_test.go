package client

import (
	"Photoshare/internal/api/dto"
	"context"
	"net/http"
	"sync"
	"testing"
)

// fakeAPI serves canned data and counts backend calls per method.
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	users  []*dto.UserSummary
	detail map[string]*dto.UserDetail
	stats  map[string]*dto.UserStats
	photos map[string][]*dto.PhotoView
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:  make(map[string]int),
		detail: make(map[string]*dto.UserDetail),
		stats:  make(map[string]*dto.UserStats),
		photos: make(map[string][]*dto.PhotoView),
	}
}

func (f *fakeAPI) count(method string) {
	f.mu.Lock()
	f.calls[method]++
	f.mu.Unlock()
}

func (f *fakeAPI) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeAPI) ListUsers(_ context.Context) ([]*dto.UserSummary, error) {
	f.count("ListUsers")
	return f.users, nil
}

func (f *fakeAPI) GetUser(_ context.Context, userID string) (*dto.UserDetail, error) {
	f.count("GetUser")
	if user, ok := f.detail[userID]; ok {
		return user, nil
	}
	return nil, &APIError{StatusCode: http.StatusBadRequest, Message: "User not found"}
}

func (f *fakeAPI) GetUserStats(_ context.Context, userID string) (*dto.UserStats, error) {
	f.count("GetUserStats")
	if stats, ok := f.stats[userID]; ok {
		return stats, nil
	}
	return &dto.UserStats{UserID: userID, RecentComments: []dto.CommentSummary{}}, nil
}

func (f *fakeAPI) GetUserPhotos(_ context.Context, _ string) ([]*dto.PhotoSummary, error) {
	f.count("GetUserPhotos")
	return nil, nil
}

func (f *fakeAPI) GetUserComments(_ context.Context, _ string) ([]*dto.UserCommentRow, error) {
	f.count("GetUserComments")
	return nil, nil
}

func (f *fakeAPI) PhotosOfUser(_ context.Context, userID string) ([]*dto.PhotoView, error) {
	f.count("PhotosOfUser")
	if photos, ok := f.photos[userID]; ok {
		return photos, nil
	}
	return nil, &APIError{StatusCode: http.StatusBadRequest, Message: "No photos found for this user"}
}

func TestUserListView_BasicMode(t *testing.T) {
	api := newFakeAPI()
	api.users = []*dto.UserSummary{
		{ID: "u1", FirstName: "Ann", LastName: "Lee"},
		{ID: "u2", FirstName: "Bob", LastName: "Ray"},
	}
	app := NewApp(api, Features{}, NewMemorySummaryCache())

	items, err := app.UserListView().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Stats != nil {
			t.Fatalf("basic mode must not carry stats: %+v", item)
		}
	}
	if api.callCount("GetUserStats") != 0 {
		t.Fatalf("basic mode fetched stats %d times", api.callCount("GetUserStats"))
	}
}

func TestUserListView_AdvancedModeAttachesStats(t *testing.T) {
	api := newFakeAPI()
	api.users = []*dto.UserSummary{
		{ID: "u1", FirstName: "Ann", LastName: "Lee"},
		{ID: "u2", FirstName: "Bob", LastName: "Ray"},
	}
	api.stats["u1"] = &dto.UserStats{UserID: "u1", PhotoCount: 3, CommentCount: 5, RecentComments: []dto.CommentSummary{}}
	app := NewApp(api, Features{AdvancedEnabled: true}, NewMemorySummaryCache())

	items, err := app.UserListView().Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Stats == nil {
			t.Fatalf("advanced mode item %s has no stats", item.ID)
		}
		if item.ID == "u1" && item.Stats.PhotoCount != 3 {
			t.Fatalf("u1 stats = %+v", item.Stats)
		}
	}
	if api.callCount("GetUserStats") != 2 {
		t.Fatalf("want one stats call per user, got %d", api.callCount("GetUserStats"))
	}
}

func TestUserCommentsView_MissPopulatesCache(t *testing.T) {
	api := newFakeAPI()
	api.detail["u1"] = &dto.UserDetail{ID: "u1", FirstName: "Ann", LastName: "Lee"}
	api.stats["u1"] = &dto.UserStats{UserID: "u1", CommentCount: 1, RecentComments: []dto.CommentSummary{
		{PhotoID: "p1", FileName: "a.jpg", Comment: "nice"},
	}}
	cache := NewMemorySummaryCache()
	app := NewApp(api, Features{}, cache)

	view := app.UserCommentsView()
	result, err := view.Load(context.Background(), "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if result.FromCache {
		t.Fatal("first load must not be served from cache")
	}
	if result.User == nil || result.User.FirstName != "Ann" {
		t.Fatalf("user detail missing: %+v", result.User)
	}
	if len(result.Comments) != 1 || result.Comments[0].PhotoID != "p1" {
		t.Fatalf("comments = %+v", result.Comments)
	}

	_, hit, err := cache.Get(context.Background(), "u1")
	if err != nil || !hit {
		t.Fatalf("cache not populated: hit=%v err=%v", hit, err)
	}
}

func TestUserCommentsView_HitSkipsBackend(t *testing.T) {
	api := newFakeAPI()
	api.detail["u1"] = &dto.UserDetail{ID: "u1", FirstName: "Ann", LastName: "Lee"}
	api.stats["u1"] = &dto.UserStats{UserID: "u1", CommentCount: 1, RecentComments: []dto.CommentSummary{
		{PhotoID: "p1", FileName: "a.jpg", Comment: "nice"},
	}}
	app := NewApp(api, Features{}, NewMemorySummaryCache())
	view := app.UserCommentsView()

	if _, err := view.Load(context.Background(), "u1"); err != nil {
		t.Fatalf("first load: %v", err)
	}
	usersBefore := api.callCount("GetUser")
	statsBefore := api.callCount("GetUserStats")

	result, err := view.Load(context.Background(), "u1")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if !result.FromCache {
		t.Fatal("second load should come from cache")
	}
	if result.User != nil {
		t.Fatalf("cache hit must not fetch user detail, got %+v", result.User)
	}
	if len(result.Comments) != 1 || result.Comments[0].Comment != "nice" {
		t.Fatalf("comments = %+v", result.Comments)
	}
	if api.callCount("GetUser") != usersBefore || api.callCount("GetUserStats") != statsBefore {
		t.Fatal("cache hit still reached the backend")
	}
}

func TestOpenPhotos(t *testing.T) {
	api := newFakeAPI()
	api.photos["u1"] = []*dto.PhotoView{
		{ID: "p1", FileName: "a.jpg"},
		{ID: "p2", FileName: "b.jpg"},
	}
	app := NewApp(api, Features{}, NewMemorySummaryCache())

	vs, err := app.OpenPhotos(context.Background(), nil, "u1", "p2")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	cur, ok := vs.Current()
	if !ok || cur.ID != "p2" {
		t.Fatalf("current = %+v, ok = %v", cur, ok)
	}

	if _, err := app.OpenPhotos(context.Background(), nil, "nobody", ""); err == nil {
		t.Fatal("want error for user without photos")
	}
}
