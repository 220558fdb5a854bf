package rates

import (
	"math"

	"fxboard/internal/domain"
)

// crossCell divides KRW-per-dollar by yen-per-dollar to get the yen/won
// cross rate. Nil unless both inputs are present, finite and positive.
func crossCell(krw, jpy *float64) *float64 {
	if krw == nil || jpy == nil {
		return nil
	}
	if !validRate(*krw) || !validRate(*jpy) {
		return nil
	}
	v := *krw / *jpy
	return &v
}

// jxyCell is the yen index: 100 over yen-per-dollar.
func jxyCell(jpy *float64) *float64 {
	if jpy == nil || !validRate(*jpy) {
		return nil
	}
	v := 100 / *jpy
	return &v
}

func validRate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// AddDerivedColumns computes JPY_KRW and JXY for the four price tables.
// High and Low use the opposite extreme of USD_JPY as divisor: a lower
// yen-per-dollar rate inflates the yen-per-won cross rate, so the day's
// cross-rate high pairs USD_KRW's high with USD_JPY's low, and vice versa.
func AddDerivedColumns(closeT, highT, lowT, openT *domain.Table) {
	deriveSameRow(closeT)
	deriveSameRow(openT)
	deriveOpposite(highT, lowT)
	deriveOpposite(lowT, highT)
}

func deriveSameRow(t *domain.Table) {
	if t.IsEmpty() {
		return
	}
	if _, ok := t.Cols[domain.USDJPY]; !ok {
		return
	}
	for i := range t.Dates {
		jpy := t.Cell(i, domain.USDJPY)
		t.SetCell(i, domain.JPYKRW, crossCell(t.Cell(i, domain.USDKRW), jpy))
		t.SetCell(i, domain.JXY, jxyCell(jpy))
	}
}

// deriveOpposite fills t's derived columns using the divisor values from
// the table holding USD_JPY's opposite extreme.
func deriveOpposite(t, divisorT *domain.Table) {
	if t.IsEmpty() || divisorT.IsEmpty() {
		return
	}
	if _, ok := divisorT.Cols[domain.USDJPY]; !ok {
		return
	}

	divisorRows := make(map[int64]int, len(divisorT.Dates))
	for i, d := range divisorT.Dates {
		divisorRows[domain.Day(d).Unix()] = i
	}

	for i, d := range t.Dates {
		var jpy *float64
		if at, ok := divisorRows[domain.Day(d).Unix()]; ok {
			jpy = divisorT.Cell(at, domain.USDJPY)
		}
		t.SetCell(i, domain.JPYKRW, crossCell(t.Cell(i, domain.USDKRW), jpy))
		t.SetCell(i, domain.JXY, jxyCell(jpy))
	}
}

// DeriveSnapshot fills the JXY and JPY_KRW keys of a snapshot from its
// USD_JPY and USD_KRW entries. Keys are present but nil when the inputs
// are missing or unusable — never zero.
func DeriveSnapshot(s domain.Snapshot) {
	s[domain.JXY] = nil
	s[domain.JPYKRW] = nil

	jpy, jpyOK := s.Get(domain.USDJPY)
	if jpyOK {
		v := 100 / jpy
		s[domain.JXY] = &v
	}
	if krw, krwOK := s.Get(domain.USDKRW); krwOK && jpyOK {
		v := krw / jpy
		s[domain.JPYKRW] = &v
	}
}

// CurrentIndex computes the weighted geometric-mean dollar index from the
// six component rates. When any component is missing or unusable the index
// is unavailable, signalled by an error rather than a misleading zero.
func CurrentIndex(s domain.Snapshot) (float64, error) {
	product := 1.0
	for pair, weight := range domain.IndexWeights {
		rate, ok := s.Get(pair)
		if !ok {
			return 0, domain.ErrIndexUnavailable
		}
		product *= math.Pow(rate, weight)
	}
	return domain.IndexConstant * product, nil
}

// IndexSeries computes the index row-wise over a close table. Dates with
// a missing component yield nil for that date only.
func IndexSeries(closeT *domain.Table) []*float64 {
	if closeT.IsEmpty() {
		return nil
	}
	series := make([]*float64, len(closeT.Dates))
	for i := range closeT.Dates {
		product := 1.0
		usable := true
		for pair, weight := range domain.IndexWeights {
			cell := closeT.Cell(i, pair)
			if cell == nil || !validRate(*cell) {
				usable = false
				break
			}
			product *= math.Pow(*cell, weight)
		}
		if usable {
			v := domain.IndexConstant * product
			series[i] = &v
		}
	}
	return series
}
