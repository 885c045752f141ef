package interchange

import "fmt"

type RowErrorRestModel struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type ImportRestModel struct {
	Message  string              `json:"message"`
	Imported int                 `json:"imported"`
	Failed   []RowErrorRestModel `json:"failed"`
}

func TransformResult(r Result) (ImportRestModel, error) {
	rm := ImportRestModel{
		Message:  fmt.Sprintf("Successfully imported %d assets", len(r.imported)),
		Imported: len(r.imported),
		Failed:   make([]RowErrorRestModel, 0, len(r.failed)),
	}
	for _, f := range r.failed {
		rm.Failed = append(rm.Failed, RowErrorRestModel{Row: f.Row, Error: f.Error})
	}
	return rm, nil
}
