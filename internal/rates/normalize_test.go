package rates

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"fxboard/internal/adapters"
	"fxboard/internal/domain"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func frameDates() []time.Time {
	return []time.Time{day("2025-08-01"), day("2025-08-04")}
}

func TestDetectLayout(t *testing.T) {
	cases := []struct {
		name   string
		labels []string
		want   frameLayout
	}{
		{name: "ticker then price", labels: []string{"USDKRW=X", "Close"}, want: layoutTickerPrice},
		{name: "price then ticker", labels: []string{"Close", "USDKRW=X"}, want: layoutPriceTicker},
		{name: "flat ticker", labels: []string{"USDKRW=X"}, want: layoutFlat},
		{name: "no price type", labels: []string{"USDKRW=X", "Volume"}, want: layoutUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frame := &adapters.BulkFrame{
				Dates:   frameDates(),
				Columns: []adapters.BulkColumn{{Labels: tc.labels, Values: []*float64{f(1), f(2)}}},
			}
			require.Equal(t, tc.want, DetectLayout(frame))
		})
	}
}

func TestNormalize_TickerPriceLayout(t *testing.T) {
	frame := &adapters.BulkFrame{
		Dates: frameDates(),
		Columns: []adapters.BulkColumn{
			{Labels: []string{"USDKRW=X", "Close"}, Values: []*float64{f(1390), f(1392)}},
			{Labels: []string{"USDKRW=X", "High"}, Values: []*float64{f(1395), nil}},
			{Labels: []string{"JPY=X", "Close"}, Values: []*float64{f(147.2), f(147.5)}},
		},
	}

	closeT, highT, lowT, _ := Normalize(frame, testLogger())

	require.Len(t, closeT.Dates, 2)
	require.Equal(t, 1390.0, *closeT.Cell(0, domain.USDKRW))
	require.Equal(t, 147.5, *closeT.Cell(1, domain.USDJPY))
	require.Equal(t, 1395.0, *highT.Cell(0, domain.USDKRW))
	require.Nil(t, highT.Cell(1, domain.USDKRW))
	require.True(t, lowT.IsEmpty())
}

func TestNormalize_PriceTickerLayout(t *testing.T) {
	frame := &adapters.BulkFrame{
		Dates: frameDates(),
		Columns: []adapters.BulkColumn{
			{Labels: []string{"Close", "USDKRW=X"}, Values: []*float64{f(1390), f(1392)}},
			{Labels: []string{"Low", "USDKRW=X"}, Values: []*float64{f(1385), f(1388)}},
		},
	}

	closeT, _, lowT, _ := Normalize(frame, testLogger())

	require.Equal(t, 1392.0, *closeT.Cell(1, domain.USDKRW))
	require.Equal(t, 1385.0, *lowT.Cell(0, domain.USDKRW))
}

func TestNormalize_FlatLayoutIsCloseOnly(t *testing.T) {
	frame := &adapters.BulkFrame{
		Dates: frameDates(),
		Columns: []adapters.BulkColumn{
			{Labels: []string{"USDKRW=X"}, Values: []*float64{f(1390), f(1392)}},
			{Labels: []string{"JPY=X"}, Values: []*float64{f(147.2), f(147.5)}},
		},
	}

	closeT, highT, lowT, openT := Normalize(frame, testLogger())

	require.Equal(t, 1390.0, *closeT.Cell(0, domain.USDKRW))
	require.Equal(t, 147.5, *closeT.Cell(1, domain.USDJPY))
	require.True(t, highT.IsEmpty())
	require.True(t, lowT.IsEmpty())
	require.True(t, openT.IsEmpty())
}

func TestNormalize_UnknownSymbolsAndLayoutsDropped(t *testing.T) {
	unknown := &adapters.BulkFrame{
		Dates: frameDates(),
		Columns: []adapters.BulkColumn{
			{Labels: []string{"Adj Close", "Volume", "Extra"}, Values: []*float64{f(1), f(2)}},
		},
	}
	closeT, _, _, _ := Normalize(unknown, testLogger())
	require.True(t, closeT.IsEmpty())

	mixed := &adapters.BulkFrame{
		Dates: frameDates(),
		Columns: []adapters.BulkColumn{
			{Labels: []string{"BTC-USD", "Close"}, Values: []*float64{f(1), f(2)}},
			{Labels: []string{"USDKRW=X", "Close"}, Values: []*float64{f(1390), f(1392)}},
		},
	}
	closeT, _, _, _ = Normalize(mixed, testLogger())
	require.Len(t, closeT.Pairs(), 1)
	require.Equal(t, 1390.0, *closeT.Cell(0, domain.USDKRW))
}
