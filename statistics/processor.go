package statistics

import (
	"context"
	"it-inventory/asset"
	"it-inventory/model"
	"it-inventory/vocabulary"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DefaultAlertDays = 30

type Processor struct {
	l              logrus.FieldLogger
	ctx            context.Context
	db             *gorm.DB
	vocabulary     vocabulary.Model
	alertDays      int
	now            func() time.Time
	location       *time.Location
	assetProcessor *asset.Processor
	GetStats       func() (Stats, error)
	GetCharts      func() (Charts, error)
	GetExpiring    func() ([]asset.Model, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:              l,
		ctx:            ctx,
		db:             db,
		vocabulary:     vocabulary.Default(),
		alertDays:      DefaultAlertDays,
		now:            time.Now,
		location:       time.Local,
		assetProcessor: asset.NewProcessor(l, ctx, db),
	}
	p.wire()
	return p
}

func (p *Processor) wire() {
	p.GetStats = p.StatsProvider()
	p.GetCharts = p.ChartsProvider()
	p.GetExpiring = p.ExpiringProvider()
}

func (p *Processor) clone() *Processor {
	c := *p
	c.wire()
	return &c
}

func (p *Processor) WithVocabulary(v vocabulary.Model) *Processor {
	c := p.clone()
	c.vocabulary = v
	c.wire()
	return c
}

func (p *Processor) WithAlertDays(days int) *Processor {
	c := p.clone()
	c.alertDays = days
	c.wire()
	return c
}

// WithLocation sets the zone whose calendar date is "today" for warranty alerts.
func (p *Processor) WithLocation(loc *time.Location) *Processor {
	c := p.clone()
	c.location = loc
	c.wire()
	return c
}

func (p *Processor) WithClock(now func() time.Time) *Processor {
	c := p.clone()
	c.now = now
	c.wire()
	return c
}

// expiring matches assets whose warranty ends between today and today plus the alert window, inclusive.
func (p *Processor) expiring() model.Filter[asset.Model] {
	today := truncate(p.now().In(p.location))
	horizon := today.AddDate(0, 0, p.alertDays)
	return func(a asset.Model) bool {
		we := a.WarrantyEnd()
		return we != nil && !we.Before(today) && !we.After(horizon)
	}
}

func (p *Processor) StatsProvider() model.Provider[Stats] {
	return func() (Stats, error) {
		alert := p.expiring()
		v := p.vocabulary
		return model.Fold(p.assetProcessor.AllProvider(), model.FixedProvider(Stats{}), func(s Stats, a asset.Model) (Stats, error) {
			s.total++
			switch a.Status() {
			case v.ActiveStatus():
				s.active++
			case v.MaintenanceStatus():
				s.maintenance++
			case v.BrokenStatus():
				s.broken++
			}
			if alert(a) {
				s.warrantyAlerts++
			}
			return s, nil
		})()
	}
}

// ExpiringProvider lists the assets counted as warranty alerts, ordered by id.
func (p *Processor) ExpiringProvider() model.Provider[[]asset.Model] {
	return func() ([]asset.Model, error) {
		return model.FilteredProvider(p.assetProcessor.AllProvider(), p.expiring())()
	}
}

type tally struct {
	category map[string]int
	status   map[string]int
	location map[string]int
	value    map[string]decimal.Decimal
}

func (p *Processor) ChartsProvider() model.Provider[Charts] {
	return func() (Charts, error) {
		supplier := model.FixedProvider(tally{
			category: make(map[string]int),
			status:   make(map[string]int),
			location: make(map[string]int),
			value:    make(map[string]decimal.Decimal),
		})
		t, err := model.Fold(p.assetProcessor.AllProvider(), supplier, func(t tally, a asset.Model) (tally, error) {
			t.category[a.Category()]++
			t.status[a.Status()]++
			t.location[a.Location()]++
			if a.Price().Valid {
				t.value[a.Category()] = t.value[a.Category()].Add(a.Price().Decimal)
			}
			return t, nil
		})()
		if err != nil {
			return Charts{}, err
		}

		v := p.vocabulary
		c := Charts{
			category: buckets(v.Categories(), t.category),
			status:   buckets(v.Statuses(), t.status),
			location: buckets(v.Locations(), t.location),
		}
		for _, k := range v.Categories() {
			c.value = append(c.value, ValueBucket{Key: k, Value: t.value[k].InexactFloat64()})
		}
		return c, nil
	}
}

func buckets(keys []string, counts map[string]int) []Bucket {
	r := make([]Bucket, 0, len(keys))
	for _, k := range keys {
		r = append(r, Bucket{Key: k, Count: counts[k]})
	}
	return r
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
