package api

import (
	"Photoshare/internal/api/config"
	"Photoshare/internal/api/dto"
	"Photoshare/internal/api/handler"
	"Photoshare/internal/model"
	"Photoshare/internal/repository"
	"Photoshare/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	users map[primitive.ObjectID]*model.User
}

func (f *stubUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	return f.users[id], nil
}

func (f *stubUserRepo) ListUserSummaries(_ context.Context) ([]*model.User, error) {
	var out []*model.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *stubUserRepo) GetUsersByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	var out []*model.User
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type stubPhotoRepo struct {
	photos []*model.Photo
}

func (f *stubPhotoRepo) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]*model.Photo, error) {
	var out []*model.Photo
	for _, p := range f.photos {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *stubPhotoRepo) ListSummariesByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*model.Photo, error) {
	return f.ListByOwner(ctx, ownerID)
}

func (f *stubPhotoRepo) CountByOwner(_ context.Context, ownerID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range f.photos {
		if p.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (f *stubPhotoRepo) CommentStatsByUser(_ context.Context, _ primitive.ObjectID) (*model.CommentStats, error) {
	return &model.CommentStats{RecentComments: []model.CommentRef{}}, nil
}

func (f *stubPhotoRepo) ListCommentRowsByUser(_ context.Context, _ primitive.ObjectID) ([]*model.UserCommentRow, error) {
	return nil, nil
}

type stubSchemaInfoRepo struct {
	info *model.SchemaInfo
}

func (f *stubSchemaInfoRepo) Get(_ context.Context) (*model.SchemaInfo, error) {
	return f.info, nil
}

func (f *stubSchemaInfoRepo) Counts(_ context.Context) (*repository.Counts, error) {
	return &repository.Counts{User: 3, Photo: 7, SchemaInfo: 1}, nil
}

func newTestRouter(t *testing.T, userRepo repository.UserRepo, photoRepo repository.PhotoRepo, schemaRepo repository.SchemaInfoRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{}

	group := &HandlersGroup{
		UserHandler:  handler.NewUserHandler(service.NewUserService(userRepo), service.NewStatsService(photoRepo)),
		PhotoHandler: handler.NewPhotoHandler(service.NewPhotoService(photoRepo, userRepo)),
		TestHandler:  handler.NewTestHandler(service.NewSystemService(schemaRepo)),
	}
	return SetupRouter(group)
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, w.Body.String())
	}
	return body.Message
}

func TestRoutes_InvalidUserID(t *testing.T) {
	r := newTestRouter(t, &stubUserRepo{}, &stubPhotoRepo{}, &stubSchemaInfoRepo{})

	for _, path := range []string{
		"/user/badid",
		"/user/badid/stats",
		"/user/badid/photos",
		"/user/badid/comments",
		"/photosOfUser/badid",
	} {
		w := doGet(t, r, path)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: code = %d, want 400", path, w.Code)
		}
		if msg := decodeMessage(t, w); msg != "Invalid user ID format" {
			t.Fatalf("%s: message = %q", path, msg)
		}
	}
}

func TestRoutes_UserNotFound(t *testing.T) {
	r := newTestRouter(t, &stubUserRepo{}, &stubPhotoRepo{}, &stubSchemaInfoRepo{})

	w := doGet(t, r, "/user/"+primitive.NewObjectID().Hex())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "User not found" {
		t.Fatalf("message = %q", msg)
	}
}

func TestRoutes_StatsZeroActivityIsSuccess(t *testing.T) {
	r := newTestRouter(t, &stubUserRepo{}, &stubPhotoRepo{}, &stubSchemaInfoRepo{})

	w := doGet(t, r, "/user/"+primitive.NewObjectID().Hex()+"/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, want 200 (%s)", w.Code, w.Body.String())
	}

	var stats dto.UserStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.PhotoCount != 0 || stats.CommentCount != 0 || len(stats.RecentComments) != 0 {
		t.Fatalf("want zero stats, got %+v", stats)
	}
}

func TestRoutes_PhotosOfUser(t *testing.T) {
	owner := primitive.NewObjectID()
	commenter := primitive.NewObjectID()
	userRepo := &stubUserRepo{users: map[primitive.ObjectID]*model.User{
		commenter: {ID: commenter, FirstName: "Ann", LastName: "Lee"},
	}}
	photoRepo := &stubPhotoRepo{photos: []*model.Photo{
		{ID: primitive.NewObjectID(), UserID: owner, FileName: "p.jpg", DateTime: time.Now(), Comments: []model.Comment{
			{ID: primitive.NewObjectID(), UserID: commenter, Comment: "hi", DateTime: time.Now()},
		}},
	}}
	r := newTestRouter(t, userRepo, photoRepo, &stubSchemaInfoRepo{})

	w := doGet(t, r, "/photosOfUser/"+owner.Hex())
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d (%s)", w.Code, w.Body.String())
	}

	var photos []*dto.PhotoView
	if err := json.Unmarshal(w.Body.Bytes(), &photos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(photos) != 1 || len(photos[0].Comments) != 1 {
		t.Fatalf("unexpected payload: %s", w.Body.String())
	}
	if photos[0].Comments[0].User == nil || photos[0].Comments[0].User.FirstName != "Ann" {
		t.Fatalf("commenter not expanded: %s", w.Body.String())
	}

	// a valid id with no photos is reported distinctly from a malformed id
	w = doGet(t, r, "/photosOfUser/"+primitive.NewObjectID().Hex())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "No photos found for this user" {
		t.Fatalf("message = %q", msg)
	}
}

func TestRoutes_Test(t *testing.T) {
	info := &model.SchemaInfo{ID: primitive.NewObjectID(), Version: "1.0", LoadDateTime: time.Now()}
	r := newTestRouter(t, &stubUserRepo{}, &stubPhotoRepo{}, &stubSchemaInfoRepo{info: info})

	w := doGet(t, r, "/test/info")
	if w.Code != http.StatusOK {
		t.Fatalf("info code = %d", w.Code)
	}

	w = doGet(t, r, "/test/counts")
	if w.Code != http.StatusOK {
		t.Fatalf("counts code = %d", w.Code)
	}
	var counts dto.CollectionCounts
	if err := json.Unmarshal(w.Body.Bytes(), &counts); err != nil {
		t.Fatalf("decode counts: %v", err)
	}
	if counts.User != 3 || counts.Photo != 7 || counts.SchemaInfo != 1 {
		t.Fatalf("counts = %+v", counts)
	}

	w = doGet(t, r, "/test/bogus")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bogus code = %d, want 400", w.Code)
	}
}

func TestRoutes_TestInfoMissingSchemaInfo(t *testing.T) {
	r := newTestRouter(t, &stubUserRepo{}, &stubPhotoRepo{}, &stubSchemaInfoRepo{})

	w := doGet(t, r, "/test/info")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want 500", w.Code)
	}
	if msg := decodeMessage(t, w); msg != "Missing SchemaInfo" {
		t.Fatalf("message = %q", msg)
	}
}
