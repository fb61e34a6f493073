package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	LogConf logx.LogConf

	ChatModel ModelConf

	Mysql     MysqlConf       `json:",optional"`
	RedisConf redis.RedisConf `json:",optional"`
	KafkaConf KafkaConf       `json:",optional"`
	AsynqConf AsynqConf       `json:",optional"`

	WhatsApp WhatsAppConf `json:",optional"`

	Bot     BotConf
	Catalog CatalogConf
}

type ModelConf struct {
	BaseUrl string
	APIKey  string
	Model   string
}

type MysqlConf struct {
	DataSource string `json:",optional"`
}

type KafkaConf struct {
	Broker            []string `json:",optional"`
	ConversationTopic string   `json:",optional"`
	BillingTopic      string   `json:",optional"`
}

type AsynqConf struct {
	Addr        string `json:",optional"`
	Concurrency int    `json:",default=2"`
	// SweepSpec is an asynq scheduler spec, e.g. "@every 1h".
	SweepSpec string `json:",default=@every 1h"`
}

type WhatsAppConf struct {
	BaseUrl        string `json:",default=https://graph.facebook.com/v19.0"`
	PhoneId        string `json:",optional"`
	Token          string `json:",optional"`
	TimeoutSeconds int    `json:",default=10"`
}

type BotConf struct {
	// ConfidenceThreshold is the tuned classifier floor, kept
	// adjustable rather than re-derived.
	ConfidenceThreshold float64  `json:",default=0.55"`
	HistoryKeep         int      `json:",default=10"`
	SessionTTLHours     int      `json:",default=24"`
	EmployeeIds         []string `json:",optional"`

	Weights WeightsConf `json:",optional"`
}

// WeightsConf mirrors the resolver's scoring constants.
type WeightsConf struct {
	ExactName     int `json:",default=100"`
	NameContains  int `json:",default=50"`
	QueryContains int `json:",default=30"`
	WordOverlap   int `json:",default=10"`
	GenderBoost   int `json:",default=20"`
}

type CatalogConf struct {
	CategoriesCsv   string
	GalleriesCsv    string
	GalleryBasePath string `json:",default=https://catalog.atelier.example/g/"`
}
