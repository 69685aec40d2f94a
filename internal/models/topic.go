package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Topic struct {
	ObjectID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID            string             `bson:"id" json:"id"`
	Name          Text               `bson:"name" json:"name"`
	Description   Text               `bson:"description" json:"description"`
	QuestionCount int                `bson:"questionCount" json:"questionCount"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
