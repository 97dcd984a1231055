// Command seed populates the movies collection with the starter catalog.
// It is a no-op when the collection already has documents.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/myflix/api/internal/adapters/repository/mongodb"
	"github.com/myflix/api/internal/config"
	"github.com/myflix/api/internal/core/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	coll := db.Collection("movies")
	count, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatal(err)
	}
	if count > 0 {
		fmt.Printf("movies collection already has %d documents, nothing to do.\n", count)
		return
	}

	docs := make([]any, len(catalog))
	for i := range catalog {
		docs[i] = catalog[i]
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("seeded %d movies.\n", len(catalog))
}

var genres = map[string]domain.Genre{
	"Crime":           {Name: "Crime", Description: "Crime movies are movies that focus on criminal activities."},
	"Science Fiction": {Name: "Science Fiction", Description: "Science Fiction movies are movies that focus on science and technology."},
	"Action":          {Name: "Action", Description: "Action movies are movies that focus on physical action."},
}

var catalog = []domain.Movie{
	{
		Title:       "The Godfather",
		Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
		Year:        1972,
		Genre:       genres["Crime"],
		Director:    domain.Director{Name: "Francis Ford Coppola", Bio: "Francis Ford Coppola is an American film director, producer, and screenwriter. He was a central figure in the New Hollywood filmmaking movement of the 1960s and 1970s."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/1/1c/Godfather_ver1.jpg",
		Featured:    true,
	},
	{
		Title:       "Star Wars",
		Description: "A young farm boy joins a rebellion to save the galaxy from an evil empire.",
		Year:        1977,
		Genre:       genres["Science Fiction"],
		Director:    domain.Director{Name: "George Lucas", Bio: "George Lucas is an American film director, producer, screenwriter, and entrepreneur. Lucas is best known for creating the Star Wars and Indiana Jones franchises and founding Lucasfilm, LucasArts, and Industrial Light & Magic."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/8/87/StarWarsMoviePoster1977.jpg",
		Featured:    true,
	},
	{
		Title:       "Jurassic Park",
		Description: "A theme park showcasing genetically-engineered dinosaurs turns deadly when the creatures escape.",
		Year:        1993,
		Genre:       genres["Science Fiction"],
		Director:    domain.Director{Name: "Steven Spielberg", Bio: "Steven Spielberg is an American film director, producer, and screenwriter. He is considered one of the founding pioneers of the New Hollywood era and one of the most popular directors and producers in film history."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/e/e7/Jurassic_Park_poster.jpg",
	},
	{
		Title:       "The Matrix",
		Description: "A computer hacker discovers the world is a simulated reality and joins a rebellion to free humanity.",
		Year:        1999,
		Genre:       genres["Science Fiction"],
		Director:    domain.Director{Name: "The Wachowski Brothers", Bio: "The Wachowski Brothers are American film directors, writers, and producers."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/c/c1/The_Matrix_Poster.jpg",
	},
	{
		Title:       "Iron Man",
		Description: "A wealthy inventor creates a high-tech suit of armor to fight crime as Iron Man.",
		Year:        2008,
		Genre:       genres["Action"],
		Director:    domain.Director{Name: "Jon Favreau", Bio: "Jon Favreau is an American film director, producer, and screenwriter."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/7/70/Ironmanposter.JPG",
	},
	{
		Title:       "Gladiator",
		Description: "A betrayed Roman general fights for vengeance as a gladiator.",
		Year:        2000,
		Genre:       genres["Action"],
		Director:    domain.Director{Name: "Ridley Scott", Bio: "Ridley Scott is an English film director and producer."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/8/8d/Gladiator_ver1.jpg",
	},
	{
		Title:       "Indiana Jones and the Last Crusade",
		Description: "An archaeologist embarks on a quest to find the Holy Grail while battling Nazis.",
		Year:        1989,
		Genre:       genres["Action"],
		Director:    domain.Director{Name: "Steven Spielberg", Bio: "Steven Spielberg is an American film director, producer, and screenwriter. He is considered one of the founding pioneers of the New Hollywood era and one of the most popular directors and producers in film history."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/f/fc/Indiana_Jones_and_the_Last_Crusade_A.jpg",
	},
	{
		Title:       "Avengers: Endgame",
		Description: "The Avengers assemble once more to reverse the damage caused by Thanos and save the universe.",
		Year:        2019,
		Genre:       genres["Action"],
		Director:    domain.Director{Name: "Anthony and Joe Russo", Bio: "Anthony and Joe Russo are American film and television directors."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/0/0d/Avengers_Endgame_poster.jpg",
	},
	{
		Title:       "Armageddon",
		Description: "A team of drillers is sent into space to prevent a giant asteroid from colliding with Earth.",
		Year:        1998,
		Genre:       genres["Action"],
		Director:    domain.Director{Name: "Michael Bay", Bio: "Michael Bay is an American film director and producer."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/f/fc/Armageddon-poster06.jpg",
	},
	{
		Title:       "Assassins Creed",
		Description: "A man relives the memories of his ancestor, an Assassin, to uncover ancient secrets.",
		Year:        2016,
		Genre:       genres["Action"],
		Director:    domain.Director{Name: "Justin Kurzel", Bio: "Justin Kurzel is an Australian film director."},
		ImagePath:   "https://upload.wikimedia.org/wikipedia/en/a/a3/Assassin%27s_Creed_film_poster.jpg",
	},
}
