package statistics

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderDashboard writes an HTML page with one chart per distribution.
func RenderDashboard(w io.Writer, s Stats, c Charts) error {
	page := components.NewPage()
	page.PageTitle = "IT Asset Dashboard"
	page.AddCharts(
		pie("Assets by Category", fmt.Sprintf("%d assets, %d warranty alerts", s.Total(), s.WarrantyAlerts()), c.Category()),
		pie("Assets by Status", fmt.Sprintf("%d active, %d in maintenance, %d broken", s.Active(), s.Maintenance(), s.Broken()), c.Status()),
		bar("Assets by Location", c.Location()),
		valueBar("Value by Category", c.Value()),
	)
	return page.Render(w)
}

func pie(title string, subtitle string, bs []Bucket) *charts.Pie {
	p := charts.NewPie()
	p.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}))
	data := make([]opts.PieData, 0, len(bs))
	for _, b := range bs {
		data = append(data, opts.PieData{Name: b.Key, Value: b.Count})
	}
	p.AddSeries(title, data)
	return p
}

func bar(title string, bs []Bucket) *charts.Bar {
	b := charts.NewBar()
	b.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	keys := make([]string, 0, len(bs))
	data := make([]opts.BarData, 0, len(bs))
	for _, v := range bs {
		keys = append(keys, v.Key)
		data = append(data, opts.BarData{Value: v.Count})
	}
	b.SetXAxis(keys).AddSeries("assets", data)
	return b
}

func valueBar(title string, vs []ValueBucket) *charts.Bar {
	b := charts.NewBar()
	b.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	keys := make([]string, 0, len(vs))
	data := make([]opts.BarData, 0, len(vs))
	for _, v := range vs {
		keys = append(keys, v.Key)
		data = append(data, opts.BarData{Value: v.Value})
	}
	b.SetXAxis(keys).AddSeries("value", data)
	return b
}
