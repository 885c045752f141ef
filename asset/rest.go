package asset

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type RestModel struct {
	Id           uint32    `json:"id"`
	AssetCode    string    `json:"assetCode"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Brand        string    `json:"brand"`
	Model        string    `json:"model"`
	SerialNumber string    `json:"serialNumber"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	AssignedTo   string    `json:"assignedTo"`
	UserEmail    string    `json:"userEmail"`
	PurchaseDate *string   `json:"purchaseDate"`
	WarrantyEnd  *string   `json:"warrantyEnd"`
	Price        *float64  `json:"price"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func Transform(m Model) (RestModel, error) {
	var price *float64
	if m.Price().Valid {
		v := m.Price().Decimal.InexactFloat64()
		price = &v
	}
	return RestModel{
		Id:           m.Id(),
		AssetCode:    m.AssetCode(),
		Name:         m.Name(),
		Category:     m.Category(),
		Brand:        m.Brand(),
		Model:        m.Model(),
		SerialNumber: m.SerialNumber(),
		Status:       m.Status(),
		Location:     m.Location(),
		AssignedTo:   m.AssignedTo(),
		UserEmail:    m.UserEmail(),
		PurchaseDate: FormatDate(m.PurchaseDate()),
		WarrantyEnd:  FormatDate(m.WarrantyEnd()),
		Price:        price,
		Notes:        m.Notes(),
		CreatedAt:    m.CreatedAt().UTC(),
		UpdatedAt:    m.UpdatedAt().UTC(),
	}, nil
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// Amount accepts a price written either as a JSON number or a JSON string. Null decodes to empty.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*a = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price must be a number or string")
	}
	*a = Amount(n.String())
	return nil
}

// InputRestModel is the request body for create and update. Absent or empty fields are not provided.
type InputRestModel struct {
	AssetCode    *string `json:"assetCode"`
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Brand        *string `json:"brand"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serialNumber"`
	Status       *string `json:"status"`
	Location     *string `json:"location"`
	AssignedTo   *string `json:"assignedTo"`
	UserEmail    *string `json:"userEmail"`
	PurchaseDate *string `json:"purchaseDate"`
	WarrantyEnd  *string `json:"warrantyEnd"`
	Price        Amount  `json:"price"`
	Notes        *string `json:"notes"`
}

func Extract(rm InputRestModel) (Fields, error) {
	var price *string
	if rm.Price != "" {
		v := string(rm.Price)
		price = &v
	}
	return Fields{
		AssetCode:    rm.AssetCode,
		Name:         rm.Name,
		Category:     rm.Category,
		Brand:        rm.Brand,
		Model:        rm.Model,
		SerialNumber: rm.SerialNumber,
		Status:       rm.Status,
		Location:     rm.Location,
		AssignedTo:   rm.AssignedTo,
		UserEmail:    rm.UserEmail,
		PurchaseDate: rm.PurchaseDate,
		WarrantyEnd:  rm.WarrantyEnd,
		Price:        price,
		Notes:        rm.Notes,
	}, nil
}
