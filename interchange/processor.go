package interchange

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"it-inventory/asset"
	"it-inventory/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const SheetName = "Inventory"

// RowError describes a data row that was skipped during import. Row counts the header as row 1.
type RowError struct {
	Row   int
	Error string
}

type Result struct {
	imported []asset.Model
	failed   []RowError
}

func (r Result) Imported() []asset.Model {
	return r.imported
}

func (r Result) Failed() []RowError {
	return r.failed
}

type Processor struct {
	l              logrus.FieldLogger
	ctx            context.Context
	db             *gorm.DB
	assetProcessor *asset.Processor
}

func NewProcessor(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) *Processor {
	return &Processor{
		l:              l,
		ctx:            ctx,
		db:             db,
		assetProcessor: asset.NewProcessor(l, ctx, db),
	}
}

func (p *Processor) WithAssetProcessor(ap *asset.Processor) *Processor {
	return &Processor{
		l:              p.l,
		ctx:            p.ctx,
		db:             p.db,
		assetProcessor: ap,
	}
}

// Export writes every asset as UTF-8 CSV with the interchange header.
func (p *Processor) Export(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	err := model.ForEachSlice(p.assetProcessor.AllProvider(), func(m asset.Model) error {
		return cw.Write(Row(m))
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ExportWorkbook writes every asset to a single-sheet xlsx workbook with the interchange header.
func (p *Processor) ExportWorkbook(w io.Writer) error {
	ms, err := p.assetProcessor.GetAll()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.l.WithError(cerr).Warnf("Unable to close workbook.")
		}
	}()
	if err = f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err = f.SetCellValue(SheetName, cell, h); err != nil {
			return err
		}
		if err = f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	priceColumn := len(Header) - 2
	for r, m := range ms {
		row := Row(m)
		for i, v := range row {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			var value interface{} = v
			if i == priceColumn && m.Price().Valid {
				value = m.Price().Decimal.InexactFloat64()
			}
			if err = f.SetCellValue(SheetName, cell, value); err != nil {
				return err
			}
		}
	}

	last, _ := excelize.CoordinatesToCellName(len(Header), 1)
	if err = f.AutoFilter(SheetName, "A1:"+last, []excelize.AutoFilterOptions{}); err != nil {
		return err
	}
	if err = f.SetPanes(SheetName, &excelize.Panes{Freeze: true, Split: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	return f.Write(w)
}

// Import inserts one asset per data row. Each row commits on its own with its audit entry; a row
// that fails validation or insertion is skipped and reported without affecting the others.
func (p *Processor) Import(r io.Reader) (Result, error) {
	transactionId := uuid.New()
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(bom)); err == nil && string(b) == bom {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	res := Result{imported: make([]asset.Model, 0), failed: make([]RowError, 0)}
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return res, nil
	}
	if err != nil {
		return res, &asset.ValidationError{Field: "file", Reason: fmt.Sprintf("unreadable header: %v", err)}
	}
	index := indexHeader(header)

	row := 1
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			p.l.WithError(err).Warnf("Skipping unreadable import row [%d].", row)
			res.failed = append(res.failed, RowError{Row: row, Error: err.Error()})
			continue
		}
		f := record{index: index, cells: cells}.Fields()
		m, err := p.assetProcessor.ImportAndEmit(transactionId, f)
		if err != nil {
			p.l.WithError(err).Warnf("Skipping import row [%d].", row)
			res.failed = append(res.failed, RowError{Row: row, Error: err.Error()})
			continue
		}
		res.imported = append(res.imported, m)
	}
	p.l.Infof("Imported [%d] assets, skipped [%d] rows.", len(res.imported), len(res.failed))
	return res, nil
}
