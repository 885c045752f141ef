package audit

import (
	"context"
	"it-inventory/model"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DefaultHistoryLimit = 100

type Processor struct {
	l         logrus.FieldLogger
	ctx       context.Context
	db        *gorm.DB
	now       func() time.Time
	hub       *Hub
	GetLatest func(limit int) ([]Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:   l,
		ctx: ctx,
		db:  db,
		now: time.Now,
		hub: GetHub(),
	}
	p.GetLatest = model.CollapseProvider(p.LatestProvider)
	return p
}

func (p *Processor) clone(db *gorm.DB) *Processor {
	c := &Processor{
		l:   p.l,
		ctx: p.ctx,
		db:  db,
		now: p.now,
		hub: p.hub,
	}
	c.GetLatest = model.CollapseProvider(c.LatestProvider)
	return c
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	return p.clone(db)
}

func (p *Processor) WithClock(now func() time.Time) *Processor {
	c := p.clone(p.db)
	c.now = now
	return c
}

func (p *Processor) WithHub(h *Hub) *Processor {
	c := p.clone(p.db)
	c.hub = h
	return c
}

func (p *Processor) LatestProvider(limit int) model.Provider[[]Model] {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return model.SliceMap(Make)(getLatest(limit)(p.db))
}

func (p *Processor) ByAssetCodeProvider(assetCode string, limit int) model.Provider[[]Model] {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return model.SliceMap(Make)(getByAssetCode(assetCode, limit)(p.db))
}

// Record appends one entry attributed to the actor bound to the processor context. Callers run it
// inside the transaction that performs the mutation being recorded.
func (p *Processor) Record(transactionId uuid.UUID, action Action, assetCode string, details string) (Model, error) {
	user := ActorFromContext(p.ctx)
	m, err := create(p.db, transactionId, p.now().UTC(), action, assetCode, details, user)
	if err != nil {
		p.l.WithError(err).Errorf("Unable to record [%s] audit entry for asset [%s].", action, assetCode)
		return Model{}, err
	}
	p.l.Debugf("Recorded [%s] audit entry [%d] for asset [%s] by [%s].", action, m.Id(), assetCode, user)
	return m, nil
}

// Publish pushes committed entries to live history subscribers.
func (p *Processor) Publish(ms ...Model) {
	if p.hub == nil {
		return
	}
	p.hub.Broadcast(p.l, ms...)
}
