package label

import (
	"context"
	"errors"
	"fmt"
	"it-inventory/asset"
	"it-inventory/model"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

const DefaultSize = 370

var ErrEncoding = errors.New("unable to encode label")

// Encoder rasterizes a text payload into a PNG image of the given pixel size.
type Encoder func(payload string, size int) ([]byte, error)

func QREncoder(payload string, size int) ([]byte, error) {
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.PNG(size)
}

func Payload(m asset.Model) string {
	return fmt.Sprintf("Asset: %s\nName: %s\nSerial: %s", m.AssetCode(), m.Name(), m.SerialNumber())
}

type Processor struct {
	l              logrus.FieldLogger
	ctx            context.Context
	db             *gorm.DB
	size           int
	encoder        Encoder
	assetProcessor *asset.Processor
	Generate       func(assetId uint32) ([]byte, error)
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	p := &Processor{
		l:              l,
		ctx:            ctx,
		db:             db,
		size:           DefaultSize,
		encoder:        QREncoder,
		assetProcessor: asset.NewProcessor(l, ctx, db),
	}
	p.Generate = model.CollapseProvider(p.ImageProvider)
	return p
}

func (p *Processor) WithSize(size int) *Processor {
	c := *p
	if size > 0 {
		c.size = size
	}
	c.Generate = model.CollapseProvider(c.ImageProvider)
	return &c
}

func (p *Processor) WithEncoder(e Encoder) *Processor {
	c := *p
	c.encoder = e
	c.Generate = model.CollapseProvider(c.ImageProvider)
	return &c
}

// ImageProvider renders a fresh label for the asset on every call.
func (p *Processor) ImageProvider(assetId uint32) model.Provider[[]byte] {
	return func() ([]byte, error) {
		m, err := p.assetProcessor.GetById(assetId)
		if err != nil {
			return nil, err
		}
		b, err := p.encoder(Payload(m), p.size)
		if err != nil {
			p.l.WithError(err).Errorf("Unable to encode label for asset [%d].", assetId)
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		return b, nil
	}
}
