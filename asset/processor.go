package asset

import (
	"context"
	"it-inventory/audit"
	"it-inventory/kafka/message"
	asset2 "it-inventory/kafka/message/asset"
	"it-inventory/kafka/producer"
	"it-inventory/model"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const codeSequence = "asset-code"

type Processor struct {
	l              logrus.FieldLogger
	ctx            context.Context
	db             *gorm.DB
	now            func() time.Time
	auditProcessor *audit.Processor
	producer       producer.Provider
	GetById        func(id uint32) (Model, error)
	Search         func(f Filter) ([]Model, error)
	GetAll         func() ([]Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:              l,
		ctx:            ctx,
		db:             db,
		now:            time.Now,
		auditProcessor: audit.NewProcessor(l, ctx, db),
		producer:       producer.ProviderImpl(l)(ctx),
	}
	p.wire()
	return p
}

func (p *Processor) wire() {
	p.GetById = model.CollapseProvider(p.ByIdProvider)
	p.Search = model.CollapseProvider(p.SearchProvider)
	p.GetAll = p.AllProvider()
}

func (p *Processor) clone() *Processor {
	c := &Processor{
		l:              p.l,
		ctx:            p.ctx,
		db:             p.db,
		now:            p.now,
		auditProcessor: p.auditProcessor,
		producer:       p.producer,
	}
	c.wire()
	return c
}

func (p *Processor) WithTransaction(db *gorm.DB) *Processor {
	c := p.clone()
	c.db = db
	c.auditProcessor = p.auditProcessor.WithTransaction(db)
	return c
}

// WithClock replaces the time source used for createdAt, updatedAt and audit timestamps.
func (p *Processor) WithClock(now func() time.Time) *Processor {
	c := p.clone()
	c.now = now
	c.auditProcessor = p.auditProcessor.WithClock(now)
	return c
}

func (p *Processor) WithAuditProcessor(ap *audit.Processor) *Processor {
	c := p.clone()
	c.auditProcessor = ap
	return c
}

func (p *Processor) WithProducer(pp producer.Provider) *Processor {
	c := p.clone()
	c.producer = pp
	return c
}

func (p *Processor) ByIdProvider(id uint32) model.Provider[Model] {
	return func() (Model, error) {
		m, err := model.Map(Make)(getById(id)(p.db))()
		if err != nil {
			return Model{}, translateError(err, "")
		}
		return m, nil
	}
}

func (p *Processor) SearchProvider(f Filter) model.Provider[[]Model] {
	return model.SliceMap(Make)(search(f)(p.db))
}

func (p *Processor) AllProvider() model.Provider[[]Model] {
	return func() ([]Model, error) {
		return model.SliceMap(Make)(getAll()(p.db))()
	}
}

// Create validates f and inserts a new asset along with its CREATE audit entry.
func (p *Processor) Create(mb *message.Buffer) func(transactionId uuid.UUID, f Fields) (Model, error) {
	return func(transactionId uuid.UUID, f Fields) (Model, error) {
		b, err := builderFromFields(f)
		if err != nil {
			p.l.WithError(err).Debugf("Rejected asset creation.")
			return Model{}, err
		}
		m := b.Build()
		return p.insert(mb, transactionId, m, audit.ActionCreate, "Created new asset: "+m.Name(), asset2.StatusEventTypeCreated)
	}
}

// Import inserts one row of a bulk import. Validation is identical to Create; the audit entry is
// recorded as IMPORT.
func (p *Processor) Import(mb *message.Buffer) func(transactionId uuid.UUID, f Fields) (Model, error) {
	return func(transactionId uuid.UUID, f Fields) (Model, error) {
		b, err := builderFromFields(f)
		if err != nil {
			return Model{}, err
		}
		m := b.Build()
		return p.insert(mb, transactionId, m, audit.ActionImport, "Imported from CSV: "+m.Name(), asset2.StatusEventTypeImported)
	}
}

func (p *Processor) insert(mb *message.Buffer, transactionId uuid.UUID, m Model, action audit.Action, details string, eventType string) (Model, error) {
	if m.AssetCode() == "" {
		lock := LockRegistry().Get(codeSequence)
		lock.Lock()
		defer lock.Unlock()
	}

	p.l.Debugf("Attempting to insert asset [%s] with code [%s].", m.Name(), m.AssetCode())
	var a Model
	var entry audit.Model
	txErr := p.db.Transaction(func(tx *gorm.DB) error {
		if m.AssetCode() == "" {
			maxId, err := getMaxId(tx)
			if err != nil {
				return err
			}
			m = Clone(m).SetAssetCode(FormatCode(maxId + 1)).Build()
		}

		var err error
		a, err = create(tx, m, p.now().UTC())
		if err != nil {
			return translateError(err, m.AssetCode())
		}
		entry, err = p.auditProcessor.WithTransaction(tx).Record(transactionId, action, a.AssetCode(), details)
		if err != nil {
			return err
		}
		return mb.Put(asset2.EnvEventTopicStatus, CreatedEventStatusProvider(transactionId, audit.ActorFromContext(p.ctx), eventType, a))
	})
	if txErr != nil {
		p.l.WithError(txErr).Debugf("Unable to insert asset [%s].", m.Name())
		return Model{}, txErr
	}
	p.auditProcessor.Publish(entry)
	p.l.Debugf("Inserted asset [%d] with code [%s].", a.Id(), a.AssetCode())
	return a, nil
}

// Update overlays every provided field of f onto the stored asset and records an UPDATE entry.
func (p *Processor) Update(mb *message.Buffer) func(transactionId uuid.UUID, id uint32, f Fields) (Model, error) {
	return func(transactionId uuid.UUID, id uint32, f Fields) (Model, error) {
		p.l.Debugf("Attempting to update asset [%d].", id)
		var a Model
		var entry audit.Model
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			old, err := p.WithTransaction(tx).GetById(id)
			if err != nil {
				return err
			}
			merged, err := merge(old, f)
			if err != nil {
				return err
			}
			a, err = update(tx, merged, p.now().UTC())
			if err != nil {
				return translateError(err, merged.AssetCode())
			}
			entry, err = p.auditProcessor.WithTransaction(tx).Record(transactionId, audit.ActionUpdate, a.AssetCode(), "Updated asset from "+old.Name()+" to "+a.Name())
			if err != nil {
				return err
			}
			return mb.Put(asset2.EnvEventTopicStatus, UpdatedEventStatusProvider(transactionId, audit.ActorFromContext(p.ctx), old, a))
		})
		if txErr != nil {
			p.l.WithError(txErr).Debugf("Unable to update asset [%d].", id)
			return Model{}, txErr
		}
		p.auditProcessor.Publish(entry)
		p.l.Debugf("Updated asset [%d].", id)
		return a, nil
	}
}

// Delete removes the asset and records a DELETE entry using the code and name captured beforehand.
func (p *Processor) Delete(mb *message.Buffer) func(transactionId uuid.UUID, id uint32) error {
	return func(transactionId uuid.UUID, id uint32) error {
		p.l.Debugf("Attempting to delete asset [%d].", id)
		var entry audit.Model
		txErr := p.db.Transaction(func(tx *gorm.DB) error {
			old, err := p.WithTransaction(tx).GetById(id)
			if err != nil {
				return err
			}
			if err = deleteById(tx, id); err != nil {
				return err
			}
			entry, err = p.auditProcessor.WithTransaction(tx).Record(transactionId, audit.ActionDelete, old.AssetCode(), "Deleted asset: "+old.Name())
			if err != nil {
				return err
			}
			return mb.Put(asset2.EnvEventTopicStatus, DeletedEventStatusProvider(transactionId, audit.ActorFromContext(p.ctx), old))
		})
		if txErr != nil {
			p.l.WithError(txErr).Debugf("Unable to delete asset [%d].", id)
			return txErr
		}
		p.auditProcessor.Publish(entry)
		p.l.Debugf("Deleted asset [%d].", id)
		return nil
	}
}

func (p *Processor) CreateAndEmit(transactionId uuid.UUID, f Fields) (Model, error) {
	return emit(p, func(mb *message.Buffer) (Model, error) {
		return p.Create(mb)(transactionId, f)
	})
}

func (p *Processor) ImportAndEmit(transactionId uuid.UUID, f Fields) (Model, error) {
	return emit(p, func(mb *message.Buffer) (Model, error) {
		return p.Import(mb)(transactionId, f)
	})
}

func (p *Processor) UpdateAndEmit(transactionId uuid.UUID, id uint32, f Fields) (Model, error) {
	return emit(p, func(mb *message.Buffer) (Model, error) {
		return p.Update(mb)(transactionId, id, f)
	})
}

func (p *Processor) DeleteAndEmit(transactionId uuid.UUID, id uint32) error {
	_, err := emit(p, func(mb *message.Buffer) (struct{}, error) {
		return struct{}{}, p.Delete(mb)(transactionId, id)
	})
	return err
}

// emit runs f against a fresh buffer and, once f has committed, hands the buffered events to the
// producer. Emission failures are logged; the committed mutation stands.
func emit[M any](p *Processor, f func(mb *message.Buffer) (M, error)) (M, error) {
	var result M
	var opErr error
	err := message.Emit(p.producer)(func(buf *message.Buffer) error {
		result, opErr = f(buf)
		return opErr
	})
	if opErr != nil {
		return result, opErr
	}
	if err != nil {
		p.l.WithError(err).Errorf("Unable to emit asset status events.")
	}
	return result, nil
}
