// Package chart renders the cash-flow series as a self-contained SVG area
// chart, suitable for direct embedding or serving as image/svg+xml.
package chart

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Opts customises the area chart renderer.
type Opts struct {
	Title       string
	Description string
	StrokeColor string
	FillColor   string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
}

// Defaults for the cash-flow chart. Colors echo the boutique theme.
const (
	DefaultWidth   = 720
	DefaultHeight  = 280
	DefaultPadding = 32.0
	DefaultTicks   = 5
)

// Area renders an SVG area chart for the given series and x-axis labels.
func Area(width, height int, series []float64, labels []string, opts Opts) (string, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("chart: series required")
	}
	if len(series) != len(labels) {
		return "", fmt.Errorf("chart: labels length must match series")
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	tickCount := opts.TickCount
	if tickCount <= 0 {
		tickCount = DefaultTicks
	}
	strokeColor := fallback(opts.StrokeColor, "#D4AF37")
	fillColor := fallback(opts.FillColor, "rgba(212,175,55,0.18)")
	axisColor := fallback(opts.AxisColor, "#475569")
	gridColor := fallback(opts.GridColor, "#cbd5e1")

	plotWidth := float64(width) - 2*padding
	plotHeight := float64(height) - 2*padding
	if plotWidth <= 0 || plotHeight <= 0 {
		return "", fmt.Errorf("chart: viewport too small")
	}

	// Always anchor the scale at zero so the balance sign stays readable.
	minVal, maxVal := bounds(series)
	if minVal > 0 {
		minVal = 0
	}
	if maxVal < 0 {
		maxVal = 0
	}
	if maxVal-minVal < 1e-9 {
		maxVal = minVal + 1
	}
	scale := plotHeight / (maxVal - minVal)

	step := 0.0
	if len(series) > 1 {
		step = plotWidth / float64(len(series)-1)
	}
	xAt := func(i int) float64 {
		if len(series) > 1 {
			return padding + float64(i)*step
		}
		return padding + plotWidth/2
	}
	yAt := func(v float64) float64 {
		return padding + plotHeight - (v-minVal)*scale
	}

	var path strings.Builder
	for i, value := range series {
		if i == 0 {
			fmt.Fprintf(&path, "M%.2f %.2f", xAt(i), yAt(value))
		} else {
			fmt.Fprintf(&path, " L%.2f %.2f", xAt(i), yAt(value))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img">`, width, height)
	fmt.Fprintf(&b, "<title>%s</title>", template.HTMLEscapeString(fallback(opts.Title, "Cash flow")))
	fmt.Fprintf(&b, "<desc>%s</desc>", template.HTMLEscapeString(fallback(opts.Description, "Cumulative balance over time")))

	// Horizontal grid with tick values.
	for i := 0; i <= tickCount; i++ {
		ratio := float64(i) / float64(tickCount)
		y := padding + plotHeight - ratio*plotHeight
		value := minVal + (maxVal-minVal)*ratio
		fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.5" stroke-dasharray="2,4"></line>`,
			padding, y, padding+plotWidth, y, gridColor)
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="end">%s</text>`,
			padding-6, y+4, axisColor, template.HTMLEscapeString(formatTick(value)))
	}

	fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"></line>`,
		padding, padding, padding, padding+plotHeight, axisColor)
	fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1"></line>`,
		padding, padding+plotHeight, padding+plotWidth, padding+plotHeight, axisColor)

	// Filled area down to the x axis, then the line on top.
	base := padding + plotHeight
	fmt.Fprintf(&b, `<path d="%s L%.2f %.2f L%.2f %.2f Z" fill="%s" stroke="none"></path>`,
		path.String(), xAt(len(series)-1), base, xAt(0), base, fillColor)
	fmt.Fprintf(&b, `<path d="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round" stroke-linecap="round"></path>`,
		path.String(), strokeColor)

	// X-axis labels; thin out when the series is dense.
	every := 1
	if len(labels) > 12 {
		every = (len(labels) + 11) / 12
	}
	for i, label := range labels {
		if i%every != 0 && i != len(labels)-1 {
			continue
		}
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="middle">%s</text>`,
			xAt(i), padding+plotHeight+14, axisColor, template.HTMLEscapeString(label))
	}

	b.WriteString("</svg>")
	return b.String(), nil
}

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func bounds(series []float64) (float64, float64) {
	minVal := series[0]
	maxVal := series[0]
	for _, v := range series[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
