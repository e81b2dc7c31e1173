package bootstrap

import (
	"context"

	"github.com/yujm08/MSAProjects-ezen/internal/buffer"
	"github.com/yujm08/MSAProjects-ezen/internal/scheduler"
	"github.com/yujm08/MSAProjects-ezen/pkg/config"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
	"github.com/yujm08/MSAProjects-ezen/pkg/postgresql"
	"github.com/yujm08/MSAProjects-ezen/pkg/redis"
)

// Bootstrap wires the collector: repositories over the database clients,
// usecases over the repositories, ingestors over the usecases and buffer,
// and the scheduler over everything.
type Bootstrap struct {
	Config   *config.Config
	Logger   logger.Interface
	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client

	Repository Repository
	Usecase    Usecase
	Ingestor   Ingestor

	Buffer    *buffer.Buffer
	ForexSlot *buffer.Slot
	Scheduler *scheduler.Scheduler
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config   *config.Config
	Logger   logger.Interface
	Postgres postgresql.PostgreSQLClient
	Redis    redis.Client
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Config = config.Config
	b.Logger = config.Logger
	b.Postgres = config.Postgres
	b.Redis = config.Redis

	b.Buffer = buffer.New()
	b.ForexSlot = buffer.NewSlot()

	b.registerRepository()
	b.registerUsecase()
	b.registerIngestor()
	b.registerScheduler()

	return *b
}

// SubscribeAllDomestic subscribes the streaming ingestor to every
// instrument in the master table. It also serves as the restart entry
// point after a streaming transport failure.
func (b *Bootstrap) SubscribeAllDomestic(ctx context.Context) error {
	instruments, err := b.Repository.Master.FindAll(ctx)
	if err != nil {
		return err
	}

	for _, instrument := range instruments {
		if err := b.Ingestor.Stream.Subscribe(ctx, instrument.Code); err != nil {
			b.Logger.ErrorContext(ctx, err, logger.Field{
				Key:   "instrument",
				Value: instrument.Code,
			})
		}
	}
	return nil
}
