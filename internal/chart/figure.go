// Package chart turns a computed timeline into a Plotly.js figure.
package chart

import (
	"jobtimeline/internal/history"
	"jobtimeline/internal/models"
)

const (
	categoryLimit = 20
	ellipsis      = "..."
)

// Figure is the JSON document handed to Plotly.newPlot.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Config Options `json:"config"`
}

// Trace is a single bar trace.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	X            []string  `json:"x"`
	Y            []float64 `json:"y"`
	Base         []float64 `json:"base"`
	Marker       Marker    `json:"marker"`
	Text         []string  `json:"text"`
	TextPosition string    `json:"textposition"`
	HoverText    []string  `json:"hovertext"`
	HoverInfo    string    `json:"hoverinfo"`
	Width        float64   `json:"width,omitempty"`
}

// Marker styles the bars of a trace.
type Marker struct {
	Color []string `json:"color"`
}

type Layout struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	PaperBGColor string  `json:"paper_bgcolor"`
	PlotBGColor  string  `json:"plot_bgcolor"`
	Font         Font    `json:"font"`
	XAxis        XAxis   `json:"xaxis"`
	YAxis        YAxis   `json:"yaxis"`
	BarMode      string  `json:"barmode"`
	BarGap       float64 `json:"bargap"`
	DragMode     string  `json:"dragmode"`
	Margin       Margin  `json:"margin"`
	AutoSize     bool    `json:"autosize"`
	ShowLegend   bool    `json:"showlegend"`
}

type Font struct {
	Color string `json:"color"`
}

type Title struct {
	Text string `json:"text"`
}

type XAxis struct {
	Title      Title    `json:"title"`
	FixedRange bool     `json:"fixedrange"`
	TickAngle  int      `json:"tickangle"`
	TickMode   string   `json:"tickmode"`
	TickVals   []string `json:"tickvals"`
	TickText   []string `json:"ticktext"`
	GridColor  string   `json:"gridcolor"`
}

type YAxis struct {
	Title      Title      `json:"title"`
	Range      [2]float64 `json:"range"`
	TickMode   string     `json:"tickmode"`
	TickVals   []int      `json:"tickvals"`
	TickText   []string   `json:"ticktext"`
	FixedRange bool       `json:"fixedrange"`
	GridColor  string     `json:"gridcolor"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Options is the Plotly config object.
type Options struct {
	DisplayLogo bool `json:"displaylogo"`
	ScrollZoom  bool `json:"scrollZoom"`
	Responsive  bool `json:"responsive"`
}

// Build lays out one stacked bar trace per status series.
func Build(tl history.Timeline) Figure {
	view := tl.View
	fig := Figure{
		Data:   make([]Trace, 0, len(tl.Series)),
		Layout: layout(tl),
		Config: Options{DisplayLogo: false, ScrollZoom: true},
	}
	for _, s := range tl.Series {
		fig.Data = append(fig.Data, trace(s, view))
	}
	return fig
}

func trace(s models.Series, view models.View) Trace {
	t := Trace{
		Type:         "bar",
		Name:         string(s.Status),
		X:            make([]string, 0, len(s.Bars)),
		Y:            make([]float64, 0, len(s.Bars)),
		Base:         make([]float64, 0, len(s.Bars)),
		Marker:       Marker{Color: make([]string, 0, len(s.Bars))},
		Text:         make([]string, 0, len(s.Bars)),
		TextPosition: "inside",
		HoverText:    make([]string, 0, len(s.Bars)),
		HoverInfo:    "text",
		Width:        view.BarWidth,
	}
	for _, bar := range s.Bars {
		t.X = append(t.X, Truncate(bar.JobName, categoryLimit))
		t.Y = append(t.Y, bar.EndOffsetMinutes-bar.StartOffsetMinutes)
		t.Base = append(t.Base, bar.StartOffsetMinutes)
		t.Marker.Color = append(t.Marker.Color, bar.Color)
		t.Text = append(t.Text, history.FormatMinutes(bar.DurationMinutes))
		t.HoverText = append(t.HoverText, bar.HoverText)
	}
	return t
}

func layout(tl history.Timeline) Layout {
	tickVals := make([]string, 0, len(tl.Bars))
	tickText := make([]string, 0, len(tl.Bars))
	for _, bar := range tl.Bars {
		tickVals = append(tickVals, Truncate(bar.JobName, categoryLimit))
		tickText = append(tickText, TickText(bar.JobName, tl.View.TickLabelLimit))
	}

	yTitle := "Time"
	if tl.View.Kind == models.ViewDaily {
		yTitle = "Time of Day"
	}

	axis := tl.Axis
	return Layout{
		Width:        1200,
		Height:       600,
		PaperBGColor: "#111111",
		PlotBGColor:  "#111111",
		Font:         Font{Color: "#f2f5fa"},
		XAxis: XAxis{
			Title:      Title{Text: "Job Names"},
			FixedRange: true,
			TickAngle:  0,
			TickMode:   "array",
			TickVals:   tickVals,
			TickText:   tickText,
			GridColor:  "#283442",
		},
		YAxis: YAxis{
			Title:      Title{Text: yTitle},
			Range:      [2]float64{float64(axis.RangeStart), float64(axis.NowMinutes)},
			TickMode:   "array",
			TickVals:   axis.TickValues,
			TickText:   axis.TickLabels,
			FixedRange: false,
			GridColor:  "#283442",
		},
		BarMode:    "stack",
		BarGap:     0.2,
		DragMode:   "pan",
		Margin:     Margin{L: 50, R: 50, T: 30, B: 80},
		AutoSize:   false,
		ShowLegend: true,
	}
}

// Truncate shortens names longer than limit runes to limit-3 runes plus "...".
func Truncate(name string, limit int) string {
	r := []rune(name)
	if len(r) <= limit {
		return name
	}
	keep := limit - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string(r[:keep]) + ellipsis
}

// TickText abbreviates a category label once the name exceeds limit runes,
// keeping the first seven runes.
func TickText(name string, limit int) string {
	r := []rune(name)
	if len(r) <= limit {
		return name
	}
	const keep = 7
	if len(r) < keep {
		return name
	}
	return string(r[:keep]) + ellipsis
}
