package statistics

type StatsRestModel struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	Maintenance    int `json:"maintenance"`
	Broken         int `json:"broken"`
	WarrantyAlerts int `json:"warrantyAlerts"`
}

func TransformStats(s Stats) (StatsRestModel, error) {
	return StatsRestModel{
		Total:          s.total,
		Active:         s.active,
		Maintenance:    s.maintenance,
		Broken:         s.broken,
		WarrantyAlerts: s.warrantyAlerts,
	}, nil
}

type ChartsRestModel struct {
	Category map[string]int     `json:"category"`
	Status   map[string]int     `json:"status"`
	Location map[string]int     `json:"location"`
	Value    map[string]float64 `json:"value"`
}

func TransformCharts(c Charts) (ChartsRestModel, error) {
	rm := ChartsRestModel{
		Category: counts(c.category),
		Status:   counts(c.status),
		Location: counts(c.location),
		Value:    make(map[string]float64, len(c.value)),
	}
	for _, v := range c.value {
		rm.Value[v.Key] = v.Value
	}
	return rm, nil
}

func counts(bs []Bucket) map[string]int {
	r := make(map[string]int, len(bs))
	for _, b := range bs {
		r[b.Key] = b.Count
	}
	return r
}
