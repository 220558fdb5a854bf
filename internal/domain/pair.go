package domain

// Pair names a currency relationship used as a table column key.
type Pair string

const (
	EURUSD Pair = "EUR_USD"
	USDJPY Pair = "USD_JPY"
	GBPUSD Pair = "GBP_USD"
	USDCAD Pair = "USD_CAD"
	USDSEK Pair = "USD_SEK"
	USDCHF Pair = "USD_CHF"
	USDKRW Pair = "USD_KRW"

	// Derived columns, never fetched directly.
	JPYKRW Pair = "JPY_KRW"
	JXY    Pair = "JXY"
)

// IndexConstant calibrates the weighted geometric mean so the index matches
// its historical base value.
const IndexConstant = 50.143432

// IndexWeights are the fixed exponents of the six dollar-index components.
var IndexWeights = map[Pair]float64{
	EURUSD: -0.576,
	USDJPY: 0.136,
	GBPUSD: -0.119,
	USDCAD: 0.091,
	USDSEK: 0.042,
	USDCHF: 0.036,
}

// ChartTickers maps pairs to the chart provider's symbols.
var ChartTickers = map[Pair]string{
	EURUSD: "EURUSD=X",
	USDJPY: "JPY=X",
	GBPUSD: "GBPUSD=X",
	USDCAD: "CAD=X",
	USDSEK: "SEK=X",
	USDCHF: "CHF=X",
	USDKRW: "USDKRW=X",
}

// IndexPairs lists the six dollar-index components in a stable order.
var IndexPairs = []Pair{EURUSD, USDJPY, GBPUSD, USDCAD, USDSEK, USDCHF}

// TrackedPairs is the full fetched set: index components plus USD/KRW.
var TrackedPairs = []Pair{EURUSD, USDJPY, GBPUSD, USDCAD, USDSEK, USDCHF, USDKRW}

// DerivedPairs are computed from USD_JPY and USD_KRW, never persisted as-is
// when the computation is impossible (zero is a missing-value sentinel).
var DerivedPairs = []Pair{JPYKRW, JXY}

// IsDerived reports whether a zero value for the pair means "not computable"
// rather than a real rate.
func (p Pair) IsDerived() bool {
	return p == JPYKRW || p == JXY
}

// PeriodRange maps a supported month count to the chart provider's range
// token. Unsupported values fall back to one year.
func PeriodRange(months int) string {
	switch months {
	case 1:
		return "1mo"
	case 3:
		return "3mo"
	case 6:
		return "6mo"
	default:
		return "1y"
	}
}

// PeriodDays returns the lookback window in calendar days for a period,
// padded so weekends and holidays at the edges do not truncate the series.
func PeriodDays(months int) int {
	switch months {
	case 1:
		return 35
	case 3:
		return 95
	case 6:
		return 185
	default:
		return 370
	}
}
