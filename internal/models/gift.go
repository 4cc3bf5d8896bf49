package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Gift represents a second-hand gift listing in the gifts collection.
type Gift struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Condition   string             `json:"condition,omitempty" bson:"condition,omitempty"`
	AgeYears    int                `json:"age_years" bson:"age_years"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	DateAdded   string             `json:"date_added,omitempty" bson:"date_added,omitempty"`
	Comments    []Comment          `json:"comments,omitempty" bson:"comments,omitempty"`
}

// Comment is a user remark attached to a gift listing.
type Comment struct {
	User string `json:"user" bson:"user"`
	Text string `json:"text" bson:"text"`
}
