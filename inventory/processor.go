package inventory

import (
	"context"
	"it-inventory/audit"
	"it-inventory/model"
	"it-inventory/statistics"
	"it-inventory/vocabulary"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const recentActivity = 5

// Overview summarizes the inventory for the landing page.
type Overview struct {
	stats  statistics.Stats
	charts statistics.Charts
	recent []audit.Model
}

func (o Overview) Stats() statistics.Stats {
	return o.stats
}

func (o Overview) Charts() statistics.Charts {
	return o.charts
}

func (o Overview) Recent() []audit.Model {
	return o.recent
}

type Processor struct {
	l                   logrus.FieldLogger
	ctx                 context.Context
	db                  *gorm.DB
	statisticsProcessor *statistics.Processor
	auditProcessor      *audit.Processor
	GetOverview         func() (Overview, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:                   l,
		ctx:                 ctx,
		db:                  db,
		statisticsProcessor: statistics.NewProcessor(l, ctx, db),
		auditProcessor:      audit.NewProcessor(l, ctx, db),
	}
	p.GetOverview = p.OverviewProvider()
	return p
}

func (p *Processor) WithVocabulary(v vocabulary.Model, alertDays int) *Processor {
	c := *p
	c.statisticsProcessor = p.statisticsProcessor.WithVocabulary(v).WithAlertDays(alertDays)
	c.GetOverview = c.OverviewProvider()
	return &c
}

func (p *Processor) OverviewProvider() model.Provider[Overview] {
	return func() (Overview, error) {
		s, err := p.statisticsProcessor.GetStats()
		if err != nil {
			return Overview{}, err
		}
		c, err := p.statisticsProcessor.GetCharts()
		if err != nil {
			return Overview{}, err
		}
		recent, err := p.auditProcessor.GetLatest(recentActivity)
		if err != nil {
			return Overview{}, err
		}
		return Overview{stats: s, charts: c, recent: recent}, nil
	}
}
