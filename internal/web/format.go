package web

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/insights"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
)

// templateFuncs are the formatting helpers shared by all pages.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"crc":          formatCRC,
		"amount":       formatAmount,
		"pct":          formatPct,
		"label":        model.CategoryLabel,
		"insightDelta": formatInsightDelta,
	}
}

// formatAmount renders an amount for data attributes: the shortest exact
// decimal form, so 5000 stays "5000" and 12.5 stays "12.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatCRC renders colones: no decimals for whole amounts, two otherwise.
func formatCRC(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "₡0"
	}

	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	if v == math.Trunc(v) {
		return sign + "₡" + groupThousands(strconv.FormatFloat(v, 'f', 0, 64))
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	return sign + "₡" + groupThousands(s[:dot]) + "," + s[dot+1:]
}

// groupThousands inserts "." separators every three digits, es-CR style.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatPct renders a month-over-month delta chip, e.g. "+12.5%".
func formatPct(v *float64) string {
	if v == nil {
		return ""
	}
	if *v >= 0 {
		return fmt.Sprintf("+%.1f%%", *v)
	}
	return fmt.Sprintf("%.1f%%", *v)
}

func formatInsightDelta(row insights.InsightRow) string {
	switch row.Direction {
	case insights.DirectionNew:
		return "nuevo"
	case insights.DirectionFlat:
		return "sin cambio"
	case insights.DirectionDown:
		return "-" + formatCRC(-row.Delta)
	default:
		return "+" + formatCRC(row.Delta)
	}
}
