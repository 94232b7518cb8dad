// Package viz renders co-simulation traces for the terminal.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/fab-twin/waferslip/internal/cosim"
)

// PlotTrace charts the slip factor over the run. The sentinel samples
// from a vented chuck are clipped to keep the axis readable.
func PlotTrace(trace *cosim.Trace, width, height int) string {
	if len(trace.SlipFactor) == 0 {
		return "no samples"
	}

	const clip = 2.0
	data := make([]float64, len(trace.SlipFactor))
	clipped := false
	for i, v := range trace.SlipFactor {
		if v > clip {
			v = clip
			clipped = true
		}
		data[i] = v
	}

	caption := "slip factor (margin 0.85)"
	if clipped {
		caption += ", clipped at 2.0"
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Summary renders the styled run report printed after a run.
func Summary(name string, trace *cosim.Trace) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("run %s", name)))
	b.WriteString("\n")

	writeMetric := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	writeMetric("samples:       ", valueStyle.Render(fmt.Sprintf("%d", len(trace.Times))))
	writeMetric("max slip:      ", valueStyle.Render(fmt.Sprintf("%.4f", trace.MaxSlipFactor)))
	if n := len(trace.MaxSafeAccel); n > 0 {
		writeMetric("max safe accel:", valueStyle.Render(fmt.Sprintf("%.2f rad/s²", trace.MaxSafeAccel[n-1])))
	}

	if trace.SlipAlarms > 0 {
		writeMetric("alarms:        ", alarmStyle.Render(fmt.Sprintf("%d SLIP", trace.SlipAlarms)))
	} else {
		writeMetric("alarms:        ", okStyle.Render("none"))
	}

	return b.String()
}
