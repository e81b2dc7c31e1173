package master

import "context"

// InstrumentRepository is the interface for the instrument master repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type InstrumentRepository interface {
	FindAll(ctx context.Context) ([]*Instrument, error)
	FindByCode(ctx context.Context, code string) (*Instrument, error)
}
