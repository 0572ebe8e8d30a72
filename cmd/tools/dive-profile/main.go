// Command dive-profile renders an HTML depth-and-sensor profile chart for a
// telemetry CSV export, with a numeric summary on stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"github.com/nautilus-data/dive.report/internal/scene"
	"github.com/nautilus-data/dive.report/internal/telemetry"
	"github.com/nautilus-data/dive.report/internal/units"
)

func main() {
	var inPath string
	var outPath string
	var configPath string

	flag.StringVar(&inPath, "in", "", "path to telemetry CSV export")
	flag.StringVar(&outPath, "out", "dive-profile.html", "output HTML path")
	flag.StringVar(&configPath, "config", "", "optional JSON config file")
	flag.Parse()

	if inPath == "" {
		log.Fatal("-in is required")
	}

	cfg := &scene.Config{}
	if configPath != "" {
		var err error
		cfg, err = scene.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}

	rows, err := telemetry.ReadCSV(inPath)
	if err != nil {
		log.Fatalf("read %s: %v", inPath, err)
	}

	var diags telemetry.Collector
	series := telemetry.Normalize(rows, telemetry.DefaultFieldMap(), cfg.GetPositionMode(), &diags)
	if series.Empty() {
		log.Fatalf("no usable telemetry in %s", inPath)
	}

	page := components.NewPage()
	page.PageTitle = "Dive Profile"
	page.AddCharts(depthChart(series))
	for _, name := range cfg.GetSensorFields() {
		if chart := sensorChart(series, name); chart != nil {
			page.AddCharts(chart)
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("create %s: %v", outPath, err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}

	printSummary(series, cfg.GetSensorFields())
	fmt.Printf("wrote %s (%d records)\n", outPath, len(series.Records))
}

// depthChart plots depth against elapsed seconds.
func depthChart(series *telemetry.Series) *charts.Line {
	xs := make([]string, 0, len(series.Records))
	ys := make([]opts.LineData, 0, len(series.Records))
	for i := range series.Records {
		if series.Records[i].Depth == nil {
			continue
		}
		xs = append(xs, fmt.Sprintf("%.0f", series.Offsets[i]))
		ys = append(ys, opts.LineData{Value: *series.Records[i].Depth})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Dive Profile", Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Depth", Subtitle: fmt.Sprintf("%s to %s", series.Start().Format("15:04:05"), series.End().Format("15:04:05"))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "elapsed (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "depth (m)"}),
	)
	line.SetXAxis(xs)
	line.AddSeries("depth", ys, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return line
}

// sensorChart plots one named sensor series, or nil if no record carries it.
func sensorChart(series *telemetry.Series, name string) *charts.Line {
	xs := make([]string, 0, len(series.Records))
	ys := make([]opts.LineData, 0, len(series.Records))
	for i := range series.Records {
		v, ok := series.Records[i].Sensor(name)
		if !ok {
			continue
		}
		xs = append(xs, fmt.Sprintf("%.0f", series.Offsets[i]))
		ys = append(ys, opts.LineData{Value: v})
	}
	if len(ys) == 0 {
		return nil
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: name}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "elapsed (s)"}),
	)
	line.SetXAxis(xs)
	line.AddSeries(name, ys)
	return line
}

// fieldSummary holds the descriptive statistics printed for one series.
type fieldSummary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func summarize(values []float64) fieldSummary {
	s := fieldSummary{Count: len(values)}
	if s.Count == 0 {
		return s
	}
	s.Min, s.Max = values[0], values[0]
	for _, v := range values[1:] {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = stat.Mean(values, nil)
	if s.Count > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	return s
}

func printSummary(series *telemetry.Series, sensors []string) {
	var depths []float64
	for i := range series.Records {
		if d := series.Records[i].Depth; d != nil {
			depths = append(depths, *d)
		}
	}
	s := summarize(depths)
	fmt.Printf("depth: n=%d min=%.1fm max=%.1fm mean=%.1fm sd=%.1f\n",
		s.Count, s.Min, s.Max, s.Mean, s.StdDev)

	for _, name := range sensors {
		var vals []float64
		for i := range series.Records {
			if v, ok := series.Records[i].Sensor(name); ok {
				vals = append(vals, v)
			}
		}
		s := summarize(vals)
		if s.Count == 0 {
			continue
		}
		fmt.Printf("%s: n=%d min=%s max=%s mean=%s sd=%.2f\n",
			name, s.Count,
			units.FormatReading(name, s.Min),
			units.FormatReading(name, s.Max),
			units.FormatReading(name, s.Mean),
			s.StdDev)
	}
}
