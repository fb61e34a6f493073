package bootstrap

import (
	"github.com/hibiken/asynq"

	"AtelierAI/app/services/assistant/internal/mq"
	"AtelierAI/app/services/assistant/internal/svc"
)

// StartAsynq runs the background worker plus the periodic session
// sweep. Without a redis address it is a no-op, which keeps local runs
// dependency-free.
func StartAsynq(sc *svc.ServiceContext) func() {
	addr := sc.Config.AsynqConf.Addr
	if addr == "" {
		addr = sc.Config.RedisConf.Host
	}
	if addr == "" {
		return func() {}
	}

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: addr}, asynq.Config{
		Concurrency: sc.Config.AsynqConf.Concurrency,
	})
	mux := mq.NewAsynqMux(sc)
	go func() {
		if err := srv.Run(mux); err != nil {
			panic(err)
		}
	}()

	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: addr}, nil)
	if _, err := scheduler.Register(sc.Config.AsynqConf.SweepSpec, asynq.NewTask(mq.TaskSweepSessions, nil)); err != nil {
		panic(err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			panic(err)
		}
	}()

	return func() {
		scheduler.Shutdown()
		srv.Shutdown()
	}
}
