package svc

import (
	"context"
	"time"

	"AtelierAI/app/common/consts/biz"
	dal "AtelierAI/app/dal/ledger"
	"AtelierAI/app/services/assistant/internal/bot"
	"AtelierAI/app/services/assistant/internal/bot/catalog"
	"AtelierAI/app/services/assistant/internal/bot/intent"
	"AtelierAI/app/services/assistant/internal/bot/ledger"
	"AtelierAI/app/services/assistant/internal/config"
	"AtelierAI/app/services/assistant/internal/llm"
	"AtelierAI/app/services/assistant/internal/session"
	"AtelierAI/app/services/assistant/internal/wa"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ServiceContext struct {
	Config config.Config

	Model        *llm.Model
	Resolver     *catalog.Resolver
	Sessions     session.Store
	Entries      ledger.EntryStore
	Orchestrator *bot.Orchestrator
	Sender       *wa.Client

	ConversationWriter *kafka.Writer
	BillingWriter      *kafka.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	model := llm.New(context.Background(), c.ChatModel.BaseUrl, c.ChatModel.APIKey, c.ChatModel.Model)

	tables, err := catalog.Load(c.Catalog.CategoriesCsv, c.Catalog.GalleriesCsv)
	if err != nil {
		logx.Errorw("catalog load failed, starting with empty tables", logx.Field("err", err))
		tables = &catalog.Tables{}
	} else {
		logx.Infow("catalog loaded",
			logx.Field("categories", len(tables.Categories)),
			logx.Field("galleries", len(tables.Galleries)))
	}
	resolver := catalog.NewResolver(tables, weightsFrom(c.Bot.Weights), c.Catalog.GalleryBasePath)

	var sessions session.Store
	if c.RedisConf.Host != "" {
		ttl := time.Duration(c.Bot.SessionTTLHours) * time.Hour
		if ttl <= 0 {
			ttl = biz.DefaultSessionTTL
		}
		sessions = session.NewRedisStore(redis.MustNewRedis(c.RedisConf), ttl)
	} else {
		sessions = session.NewMemoryStore()
	}

	var counters ledger.CounterStore
	var entries ledger.EntryStore
	if c.Mysql.DataSource != "" {
		conn := sqlx.NewMysql(c.Mysql.DataSource)
		store := ledger.NewSqlStore(dal.NewCounterRowsModel(conn), dal.NewBillingEntriesModel(conn), biz.CounterSheetKey)
		counters, entries = store, store
	} else {
		logx.Infow("no mysql configured, ledger kept in memory")
		mem := ledger.NewMemoryStore()
		counters, entries = mem, mem
	}
	recorder := ledger.NewRecorder(ledger.NewSequencer(counters, intent.Billing), entries)

	sc := &ServiceContext{
		Config:   c,
		Model:    model,
		Resolver: resolver,
		Sessions: sessions,
		Entries:  entries,
		Sender: wa.NewClient(c.WhatsApp.BaseUrl, c.WhatsApp.PhoneId, c.WhatsApp.Token,
			time.Duration(c.WhatsApp.TimeoutSeconds)*time.Second),
	}

	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.ConversationTopic != "" {
		sc.ConversationWriter = newWriter(c.KafkaConf.Broker, c.KafkaConf.ConversationTopic)
	}
	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.BillingTopic != "" {
		sc.BillingWriter = newWriter(c.KafkaConf.Broker, c.KafkaConf.BillingTopic)
	}

	sc.Orchestrator = bot.New(bot.Deps{
		Sessions:    sessions,
		Model:       model,
		Resolver:    resolver,
		Recorder:    recorder,
		EmployeeIDs: c.Bot.EmployeeIds,
		Threshold:   c.Bot.ConfidenceThreshold,
		HistoryKeep: c.Bot.HistoryKeep,
	})

	return sc
}

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           5 * time.Millisecond,
	}
}

func weightsFrom(w config.WeightsConf) catalog.Weights {
	out := catalog.DefaultWeights()
	if w.ExactName > 0 {
		out.ExactName = w.ExactName
	}
	if w.NameContains > 0 {
		out.NameContains = w.NameContains
	}
	if w.QueryContains > 0 {
		out.QueryContains = w.QueryContains
	}
	if w.WordOverlap > 0 {
		out.WordOverlap = w.WordOverlap
	}
	if w.GenderBoost > 0 {
		out.GenderBoost = w.GenderBoost
	}
	return out
}
