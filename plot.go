package kairos

import (
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/kairos-ml/kairos/timedataset"
)

// LineForecaster generates an echart line chart plotting the historical values
// along with the projected forecast.
func LineForecaster(trainingData *timedataset.TimeDataset, res *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Forecast",
			},
		),
	)

	lineDataActual := make([]opts.LineData, 0, len(trainingData.T)+len(res.T))
	lineDataForecast := make([]opts.LineData, 0, len(trainingData.T)+len(res.T))

	for i := 0; i < len(trainingData.T); i++ {
		lineDataActual = append(lineDataActual, opts.LineData{Value: trainingData.Y[i]})
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: nil})
	}
	for i := 0; i < len(res.T); i++ {
		lineDataActual = append(lineDataActual, opts.LineData{Value: nil})
		lineDataForecast = append(lineDataForecast, opts.LineData{Value: res.Forecast[i]})
	}

	t := make(timedataset.TimeSlice, 0, len(trainingData.T)+len(res.T))
	t = append(t, trainingData.T...)
	t = append(t, res.T...)

	line.SetXAxis(t).
		AddSeries("Actual", lineDataActual).
		AddSeries("Forecast", lineDataForecast)
	return line
}

// LineTSeries generates an echart multi-line chart for some arbitrary
// time/value combination. The input y is a slice of series that must have the
// same length as the input time slice.
func LineTSeries(title string, seriesName []string, t []time.Time, y [][]float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineData := make([][]opts.LineData, len(y))
	for i := 0; i < len(y); i++ {
		lineData[i] = make([]opts.LineData, 0, len(y[i]))
		for j := 0; j < len(y[i]); j++ {
			lineData[i] = append(lineData[i], opts.LineData{Value: y[i][j]})
		}
	}

	line = line.SetXAxis(t)
	for i, series := range seriesName {
		line = line.AddSeries(series, lineData[i])
	}

	return line
}

// PlotForecast renders the training history and forecast result to an html
// page for local inspection.
func PlotForecast(w io.Writer, trainingData *timedataset.TimeDataset, res *Results) error {
	page := components.NewPage()
	page.AddCharts(
		LineForecaster(trainingData, res),
	)
	return page.Render(w)
}
