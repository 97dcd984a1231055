package domain

import "go.mongodb.org/mongo-driver/v2/bson"

type Movie struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Year        int           `bson:"year,omitempty" json:"year,omitempty"`
	Genre       Genre         `bson:"genre" json:"genre"`
	Director    Director      `bson:"director" json:"director"`
	ImagePath   string        `bson:"image_path,omitempty" json:"image_path,omitempty"`
	Featured    bool          `bson:"featured" json:"featured"`
}

type Genre struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

type Director struct {
	Name string `bson:"name" json:"name"`
	Bio  string `bson:"bio" json:"bio"`
}
