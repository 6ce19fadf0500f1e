package charts_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dalemusser/eventhub/internal/app/store/fixtures"
	"github.com/dalemusser/eventhub/internal/app/system/charts"
	"github.com/dalemusser/eventhub/internal/domain/models"
)

func TestRegistrations_PositionalMonths(t *testing.T) {
	trends := fixtures.Dashboard().Trends
	c := charts.Registrations(trends)

	if !reflect.DeepEqual(c.Labels, charts.MonthLabels()) {
		t.Errorf("labels = %v, want %v", c.Labels, charts.MonthLabels())
	}
	if len(c.Datasets) != 1 {
		t.Fatalf("got %d datasets, want 1", len(c.Datasets))
	}
	data := c.Datasets[0].Data
	if len(data) != 12 {
		t.Fatalf("got %d points, want 12", len(data))
	}
	for i, v := range trends.Registrations {
		if data[i] != float64(v) {
			t.Errorf("point %d (%s) = %v, want %d", i, c.Labels[i], data[i], v)
		}
	}
}

func TestRevenue_DisplayDividesByHundred(t *testing.T) {
	trends := models.Trends{
		Revenue: []int64{120000, 180000, 220000, 350000, 280000, 190000, 240000, 320000, 410000, 380000, 420000, 460000},
	}
	c := charts.Revenue(trends)

	want := []float64{1200, 1800, 2200, 3500, 2800, 1900, 2400, 3200, 4100, 3800, 4200, 4600}
	if !reflect.DeepEqual(c.Display, want) {
		t.Errorf("Display = %v, want %v", c.Display, want)
	}

	// stored units are untouched
	if c.Datasets[0].Data[0] != 120000 {
		t.Errorf("dataset[0] = %v, want minor units 120000", c.Datasets[0].Data[0])
	}
	if trends.Revenue[0] != 120000 {
		t.Errorf("input mutated: %d", trends.Revenue[0])
	}

	if len(c.Formatted) != 12 {
		t.Fatalf("got %d formatted values, want 12", len(c.Formatted))
	}
	if !strings.Contains(c.Formatted[0], "1,200.00") {
		t.Errorf("Formatted[0] = %q, want 1,200.00", c.Formatted[0])
	}
	if c.Currency.Locale != "en-IN" {
		t.Errorf("currency locale = %q", c.Currency.Locale)
	}
}

func TestMembership_PreservesOrderAndColors(t *testing.T) {
	in := []models.MembershipSlice{
		{Category: "Standard", Count: 245, Color: "#4F46E5"},
		{Category: "Premium", Count: 125, Color: "#10B981"},
	}

	points := charts.Membership(in)
	want := []charts.MembershipPoint{
		{Label: "Standard", Value: 245, Color: "#4F46E5"},
		{Label: "Premium", Value: 125, Color: "#10B981"},
	}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("Membership() = %+v, want %+v", points, want)
	}

	d := charts.MembershipDoughnut(in)
	if !reflect.DeepEqual(d.Labels, []string{"Standard", "Premium"}) {
		t.Errorf("labels = %v", d.Labels)
	}
	if !reflect.DeepEqual(d.Datasets[0].BackgroundColor, []string{"#4F46E5", "#10B981"}) {
		t.Errorf("colors = %v", d.Datasets[0].BackgroundColor)
	}
	if !reflect.DeepEqual(d.Datasets[0].Data, []int64{245, 125}) {
		t.Errorf("data = %v", d.Datasets[0].Data)
	}
}

func TestMembership_Empty(t *testing.T) {
	d := charts.MembershipDoughnut(nil)
	if len(d.Labels) != 0 || len(d.Datasets) != 1 || len(d.Datasets[0].Data) != 0 {
		t.Errorf("MembershipDoughnut(nil) = %+v", d)
	}
}
