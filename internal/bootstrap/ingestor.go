package bootstrap

import (
	"github.com/yujm08/MSAProjects-ezen/internal/credential"
	"github.com/yujm08/MSAProjects-ezen/internal/ingest/forex"
	"github.com/yujm08/MSAProjects-ezen/internal/ingest/poll"
	"github.com/yujm08/MSAProjects-ezen/internal/ingest/stream"
)

// Ingestor is the ingestor set for the collector.
type Ingestor struct {
	Stream      *stream.Service
	GlobalPoll  *poll.Service
	ForexStream *forex.Stream
	ForexPoller *forex.Poller
	ForexSaver  *forex.Saver

	// Credential caches shared by the ingestors: the long-lived streaming
	// approval key and the short-lived REST bearer token.
	Approvals *credential.Cache
	Tokens    *credential.Cache
}

// registerIngestor registers the ingestor.
func (b *Bootstrap) registerIngestor() {
	kis := b.Config.KIS

	b.Ingestor.Approvals = credential.NewCache(
		credential.NewApprovalKeyIssuer(kis.RESTURL, kis.AppKey, kis.AppSecret, b.Logger),
		kis.ApprovalKeyExpiry,
		kis.ApprovalKeyMargin,
	)
	b.Ingestor.Tokens = credential.NewCache(
		credential.NewAccessTokenIssuer(kis.RESTURL, kis.AppKey, kis.AppSecret, kis.IssueCooldown, b.Logger),
		kis.AccessTokenExpiry,
		0,
	)

	b.Ingestor.Stream = stream.NewService(kis.WSURLDomestic, b.Buffer, b.Ingestor.Approvals, b.Logger)
	b.Ingestor.GlobalPoll = poll.NewService(
		kis.RESTURL, kis.AppKey, kis.AppSecret,
		b.Ingestor.Tokens,
		b.Config.Collector.PollThrottle,
		b.Usecase.GlobalDaily,
		b.Logger,
	)

	twelveData := b.Config.TwelveData
	b.Ingestor.ForexStream = forex.NewStream(twelveData.WSURL, twelveData.APIKey, b.ForexSlot, b.Logger)
	b.Ingestor.ForexPoller = forex.NewPoller(twelveData.RESTURL, twelveData.APIKey, b.Usecase.ForexDaily, b.Logger)
	b.Ingestor.ForexSaver = forex.NewSaver(b.ForexSlot, b.Usecase.ForexDaily, b.Logger)
}
