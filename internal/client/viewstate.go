package client

import (
	"Photoshare/internal/api/dto"
	"fmt"
)

// Navigator 导航副作用的注入点，让地址栏始终指向当前照片
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc 函数适配器
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// PhotoViewState 照片浏览状态机：只有 index 会变，照片序列本身从不被导航修改。
// 没有终止态，换用户浏览时 Load 重置整个机器。
type PhotoViewState struct {
	nav    Navigator
	userID string
	photos []*dto.PhotoView
	index  int
}

func NewPhotoViewState(nav Navigator) *PhotoViewState {
	return &PhotoViewState{nav: nav}
}

// Load 装入某用户的照片序列。targetPhotoID 来自路由参数，可为空；
// 指定的照片不在序列里时回落到 0。
func (s *PhotoViewState) Load(userID string, photos []*dto.PhotoView, targetPhotoID string) {
	s.userID = userID
	s.photos = photos
	s.index = 0

	if targetPhotoID == "" {
		return
	}
	for i, photo := range photos {
		if photo.ID == targetPhotoID {
			s.index = i
			return
		}
	}
}

// Next 前进一张并发出导航副作用。已在最后一张时是 no-op，返回 false
func (s *PhotoViewState) Next() bool {
	if s.index+1 >= len(s.photos) {
		return false
	}
	s.index++
	s.navigate()
	return true
}

// Previous 后退一张。已在第一张时是 no-op，返回 false
func (s *PhotoViewState) Previous() bool {
	if s.index == 0 {
		return false
	}
	s.index--
	s.navigate()
	return true
}

func (s *PhotoViewState) navigate() {
	if s.nav == nil {
		return
	}
	s.nav.Navigate(fmt.Sprintf("/photos/%s/%s", s.userID, s.photos[s.index].ID))
}

// Current 当前照片，序列为空时 ok 为 false
func (s *PhotoViewState) Current() (*dto.PhotoView, bool) {
	if len(s.photos) == 0 {
		return nil, false
	}
	return s.photos[s.index], true
}

func (s *PhotoViewState) Index() int { return s.index }

func (s *PhotoViewState) Len() int { return len(s.photos) }

func (s *PhotoViewState) HasNext() bool { return s.index+1 < len(s.photos) }

func (s *PhotoViewState) HasPrevious() bool { return s.index > 0 }
