package service

import (
	"Photoshare/internal/model"
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetUser_InvalidID(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.GetUser(context.Background(), "zzz")
	if err != ErrInvalidUserID {
		t.Fatalf("want ErrInvalidUserID, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{})

	_, err := svc.GetUser(context.Background(), primitive.NewObjectID().Hex())
	if err != ErrUserNotFound {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

func TestGetUser_Found(t *testing.T) {
	id := primitive.NewObjectID()
	svc := NewUserService(&fakeUserRepo{users: map[primitive.ObjectID]*model.User{
		id: {ID: id, FirstName: "Bob", LastName: "Ray", Location: "Oslo", Occupation: "chef"},
	}})

	user, err := svc.GetUser(context.Background(), id.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.ID != id.Hex() || user.FirstName != "Bob" || user.Occupation != "chef" {
		t.Fatalf("unexpected detail: %+v", user)
	}
}
