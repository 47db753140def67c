package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/pattaranan1/Twitter-Cloning/models"
)

func InitDB(config models.DBConfig) *sql.DB {
	DBpath := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)
	DB, err := sql.Open("postgres", DBpath)
	if err != nil {
		log.Fatal("Failed to Connect with DB", err.Error())
	}
	_, err = DB.Exec(`CREATE TABLE IF NOT EXISTS users (
        id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
        username VARCHAR(80) UNIQUE NOT NULL,
        password VARCHAR(200) NOT NULL
    );`)
	if err != nil {
		log.Fatal("Failed to create Users table: ", err.Error())
	}
	_, err = DB.Exec(`CREATE TABLE IF NOT EXISTS posts (
        id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
        user_id BIGINT NOT NULL REFERENCES users(id),
        content TEXT NOT NULL,
        created_at BIGINT NOT NULL
    );`)
	if err != nil {
		log.Fatal("Failed to create Posts table: ", err.Error())
	}
	_, err = DB.Exec(`CREATE TABLE IF NOT EXISTS followers (
        follower_id BIGINT NOT NULL REFERENCES users(id),
        followed_id BIGINT NOT NULL REFERENCES users(id),
        PRIMARY KEY (follower_id, followed_id)
    );`)
	if err != nil {
		log.Fatal("Failed to create Followers table: ", err.Error())
	}
	return DB
}
