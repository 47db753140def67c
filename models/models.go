package models

import "time"

type User struct {
	UserID   int64  `json:"userid,omitempty"`
	UserName string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

type Post struct {
	Id         int64  `json:"id"`
	User_id    int64  `json:"user_id"`
	Content    string `json:"content"`
	Created_at int64  `json:"created_at"`
}

// PostView is the hydrated timeline entry handed to the web layer.
type PostView struct {
	Content  string `json:"content"`
	UserName string `json:"username"`
	Elapsed  string `json:"elapsed"`
}

type ProfileView struct {
	UserID      int64 `json:"user_id"`
	Self        bool  `json:"self"`
	IsFollowing bool  `json:"is_following"`
}

// FeedItem is the fanout event payload published to Kafka
// and consumed by the FanoutWriter.
type FeedItem struct {
	PostId     int64 `json:"post_id"`
	UserId     int64 `json:"user_id"`
	Created_at int64 `json:"created_at"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Redis   RedisConfig   `yaml:"redis_config"`
	DB      DBConfig      `yaml:"db_config"`
	Kafka   KafkaConfig   `yaml:"kafka_config"`

	// loaded from env , not the yaml file
	JWTPrivateKey []byte
	JWTPublicKey  []byte
}

type ServerConfig struct {
	Host           string `yaml:"host"`
	HealthPort     string `yaml:"health_port"`
	TimelinePage   int64  `yaml:"timeline_page"`
	RecentUsers    int64  `yaml:"recent_users"`
	FanoutWorkers  int    `yaml:"fanout_worker_threshold"`
	AsyncFanout    bool   `yaml:"async_fanout"`
}

type StorageConfig struct {
	// "redis" (push model) or "postgres" (pull model)
	Backend string `yaml:"backend"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string
}

type DBConfig struct {
	DBHost string `yaml:"host"`
	DBPort string `yaml:"port"`
	DBUser string `yaml:"user"`
	DBName string `yaml:"name"`

	DBPassword string
}

type KafkaConfig struct {
	BootStrapServers string `yaml:"bootstrap_servers"`
	GroupID          string `yaml:"group_id"`
	OffsetReset      string `yaml:"offset_reset"`
	FetchMinBytes    string `yaml:"fetch_min_bytes"`
	Topic            string `yaml:"topic"`
}

func (p Post) CreatedTime() time.Time {
	return time.Unix(p.Created_at, 0)
}
