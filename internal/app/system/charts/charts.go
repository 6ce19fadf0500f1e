// Package charts derives Chart.js-shaped data from dashboard state.
//
// Derivation never reorders input: index i of a monthly series is month i,
// and slice i of the membership chart is category i.
package charts

import (
	"github.com/dalemusser/eventhub/internal/app/system/money"
	"github.com/dalemusser/eventhub/internal/domain/models"
)

// Months are the fixed x-axis labels for monthly series.
var Months = [models.TrendMonths]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthLabels returns a copy of Months as a slice.
func MonthLabels() []string {
	out := make([]string, len(Months))
	copy(out, Months[:])
	return out
}

// LineDataset is a single line series.
type LineDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	Fill            bool      `json:"fill"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	Tension         float64   `json:"tension"`
}

// LineChart is the data block of a Chart.js line chart.
type LineChart struct {
	Labels   []string      `json:"labels"`
	Datasets []LineDataset `json:"datasets"`
}

// DoughnutDataset carries one value and one color per slice.
type DoughnutDataset struct {
	Data            []int64  `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// DoughnutChart is the data block of a Chart.js doughnut chart.
type DoughnutChart struct {
	Labels   []string          `json:"labels"`
	Datasets []DoughnutDataset `json:"datasets"`
}

// MembershipPoint is one (label, value, color) triple.
type MembershipPoint struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

// RevenueChart is the revenue line chart plus display values.
// Chart data stays in minor units; Display and Formatted are the
// major-unit values tick and tooltip callbacks show.
type RevenueChart struct {
	LineChart
	Display   []float64  `json:"display"`
	Formatted []string   `json:"formatted"`
	Currency  money.Meta `json:"currency"`
}

const (
	registrationsFill   = "rgba(255, 153, 0, 0.2)"
	registrationsBorder = "rgba(255, 153, 0, 1)"
	revenueFill         = "rgba(16, 185, 129, 0.2)"
	revenueBorder       = "rgba(16, 185, 129, 1)"
	lineTension         = 0.4
)

// Registrations maps the monthly registration counts onto month labels.
func Registrations(t models.Trends) LineChart {
	return LineChart{
		Labels: monthLabelsFor(len(t.Registrations)),
		Datasets: []LineDataset{{
			Label:           "Registrations",
			Data:            toFloats(t.Registrations),
			Fill:            true,
			BackgroundColor: registrationsFill,
			BorderColor:     registrationsBorder,
			Tension:         lineTension,
		}},
	}
}

// Revenue maps monthly revenue onto month labels. The dataset keeps the
// stored minor units; division by 100 only happens in Display/Formatted.
func Revenue(t models.Trends) RevenueChart {
	display := make([]float64, len(t.Revenue))
	formatted := make([]string, len(t.Revenue))
	for i, v := range t.Revenue {
		display[i] = money.ToMajorFloat(v)
		formatted[i] = money.FormatCurrency(v)
	}

	return RevenueChart{
		LineChart: LineChart{
			Labels: monthLabelsFor(len(t.Revenue)),
			Datasets: []LineDataset{{
				Label:           "Revenue",
				Data:            toFloats(t.Revenue),
				Fill:            true,
				BackgroundColor: revenueFill,
				BorderColor:     revenueBorder,
				Tension:         lineTension,
			}},
		},
		Display:   display,
		Formatted: formatted,
		Currency:  money.CurrencyMeta(),
	}
}

// Membership maps the breakdown into triples, preserving order.
func Membership(slices []models.MembershipSlice) []MembershipPoint {
	out := make([]MembershipPoint, len(slices))
	for i, s := range slices {
		out[i] = MembershipPoint{Label: s.Category, Value: s.Count, Color: s.Color}
	}
	return out
}

// MembershipDoughnut lays the triples out the way Chart.js expects.
func MembershipDoughnut(slices []models.MembershipSlice) DoughnutChart {
	points := Membership(slices)
	ds := DoughnutDataset{
		Data:            make([]int64, len(points)),
		BackgroundColor: make([]string, len(points)),
	}
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
		ds.Data[i] = p.Value
		ds.BackgroundColor[i] = p.Color
	}
	return DoughnutChart{Labels: labels, Datasets: []DoughnutDataset{ds}}
}

// monthLabelsFor returns the first n month labels. Series longer than a
// year are labelled only for the months that exist.
func monthLabelsFor(n int) []string {
	if n > len(Months) {
		n = len(Months)
	}
	out := make([]string, n)
	copy(out, Months[:n])
	return out
}

func toFloats(in []int64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
