package client

import (
	"Photoshare/internal/api/dto"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
)

// API 浏览客户端所需的后端只读接口
type API interface {
	ListUsers(ctx context.Context) ([]*dto.UserSummary, error)
	GetUser(ctx context.Context, userID string) (*dto.UserDetail, error)
	GetUserStats(ctx context.Context, userID string) (*dto.UserStats, error)
	GetUserPhotos(ctx context.Context, userID string) ([]*dto.PhotoSummary, error)
	GetUserComments(ctx context.Context, userID string) ([]*dto.UserCommentRow, error)
	PhotosOfUser(ctx context.Context, userID string) ([]*dto.PhotoView, error)
}

// APIError 后端返回的错误响应
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client resty 实现的后端访问客户端
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
	}
}

func (s *Client) get(ctx context.Context, path string, out interface{}) error {
	resp, err := s.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		var body dto.ErrorResponse
		if err := json.Unmarshal(resp.Body(), &body); err != nil || body.Message == "" {
			body.Message = resp.Status()
		}
		return &APIError{StatusCode: resp.StatusCode(), Message: body.Message}
	}

	return json.Unmarshal(resp.Body(), out)
}

func (s *Client) ListUsers(ctx context.Context) ([]*dto.UserSummary, error) {
	var users []*dto.UserSummary
	if err := s.get(ctx, "/user/list", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Client) GetUser(ctx context.Context, userID string) (*dto.UserDetail, error) {
	var user dto.UserDetail
	if err := s.get(ctx, "/user/"+userID, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Client) GetUserStats(ctx context.Context, userID string) (*dto.UserStats, error) {
	var stats dto.UserStats
	if err := s.get(ctx, "/user/"+userID+"/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Client) GetUserPhotos(ctx context.Context, userID string) ([]*dto.PhotoSummary, error) {
	var photos []*dto.PhotoSummary
	if err := s.get(ctx, "/user/"+userID+"/photos", &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

func (s *Client) GetUserComments(ctx context.Context, userID string) ([]*dto.UserCommentRow, error) {
	var rows []*dto.UserCommentRow
	if err := s.get(ctx, "/user/"+userID+"/comments", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Client) PhotosOfUser(ctx context.Context, userID string) ([]*dto.PhotoView, error) {
	var photos []*dto.PhotoView
	if err := s.get(ctx, "/photosOfUser/"+userID, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}
