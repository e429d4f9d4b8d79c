package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User 用户文档，本系统只读不写
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"first_name"`
	LastName    string             `bson:"last_name"`
	Location    string             `bson:"location"`
	Description string             `bson:"description"`
	Occupation  string             `bson:"occupation"`
}
