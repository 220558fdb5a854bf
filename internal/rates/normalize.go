package rates

import (
	"github.com/sirupsen/logrus"

	"fxboard/internal/adapters"
	"fxboard/internal/domain"
)

// The bulk download endpoint labels its columns in one of three layouts
// depending on provider version and symbol count. Layout is detected once
// per response and each variant has its own conversion.
type frameLayout int

const (
	layoutUnknown     frameLayout = iota
	layoutTickerPrice             // two labels: (ticker, price type)
	layoutPriceTicker             // two labels: (price type, ticker)
	layoutFlat                    // one label: ticker, close prices only
)

var priceTypes = map[string]struct{}{
	"Open":  {},
	"High":  {},
	"Low":   {},
	"Close": {},
}

// tickerPair inverts ChartTickers so provider symbols map back to pairs.
var tickerPair = func() map[string]domain.Pair {
	m := make(map[string]domain.Pair, len(domain.ChartTickers))
	for pair, ticker := range domain.ChartTickers {
		m[ticker] = pair
	}
	return m
}()

// DetectLayout classifies a bulk frame by inspecting its column labels.
func DetectLayout(frame *adapters.BulkFrame) frameLayout {
	for _, col := range frame.Columns {
		switch len(col.Labels) {
		case 1:
			return layoutFlat
		case 2:
			if _, ok := priceTypes[col.Labels[0]]; ok {
				return layoutPriceTicker
			}
			if _, ok := priceTypes[col.Labels[1]]; ok {
				return layoutTickerPrice
			}
			return layoutUnknown
		default:
			return layoutUnknown
		}
	}
	return layoutUnknown
}

// Normalize splits a bulk frame into close, high, low and open tables
// sharing the frame's date axis, with provider symbols renamed to pairs.
// Columns for unknown symbols or price types are dropped. An unknown
// layout yields empty tables, treated downstream as a data gap.
func Normalize(frame *adapters.BulkFrame, log *logrus.Logger) (closeT, highT, lowT, openT *domain.Table) {
	closeT, highT, lowT, openT = domain.NewTable(), domain.NewTable(), domain.NewTable(), domain.NewTable()
	if frame == nil || len(frame.Dates) == 0 {
		return
	}

	layout := DetectLayout(frame)
	if layout == layoutUnknown {
		log.Warn("unrecognized bulk frame layout, discarding response")
		return
	}

	for _, t := range []*domain.Table{closeT, highT, lowT, openT} {
		t.Dates = append(t.Dates, frame.Dates...)
	}

	for _, col := range frame.Columns {
		var ticker, price string
		switch layout {
		case layoutTickerPrice:
			ticker, price = col.Labels[0], col.Labels[1]
		case layoutPriceTicker:
			price, ticker = col.Labels[0], col.Labels[1]
		case layoutFlat:
			ticker, price = col.Labels[0], "Close"
		}

		pair, ok := tickerPair[ticker]
		if !ok {
			continue
		}

		var dst *domain.Table
		switch price {
		case "Close":
			dst = closeT
		case "High":
			dst = highT
		case "Low":
			dst = lowT
		case "Open":
			dst = openT
		default:
			continue
		}

		values := make([]*float64, len(frame.Dates))
		copy(values, col.Values)
		dst.Cols[pair] = values
	}

	for _, t := range []*domain.Table{closeT, highT, lowT, openT} {
		if len(t.Cols) == 0 {
			t.Dates = nil
		}
	}
	return
}
