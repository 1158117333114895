package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafflehouse/admin-backend/internal/models"
)

func saleAt(price float64, at time.Time) models.TicketSale {
	return models.TicketSale{Price: price, CreatedAt: at}
}

func TestAggregateDaily(t *testing.T) {
	mon := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)  // Monday
	tue := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)  // Tuesday
	sales := []models.TicketSale{
		saleAt(100, mon),
		saleAt(50, tue),
		saleAt(30, time.Time{}), // missing createdAt, skipped
	}

	s := Aggregate(sales, Daily)
	assert.Equal(t, []string{"Mon", "Tue"}, s.Labels)
	assert.Equal(t, []float64{100, 50}, s.Values)
}

// Sales from the same weekday of different weeks share a bucket; the
// chart has always aliased this way.
func TestAggregateDailyAliasesAcrossWeeks(t *testing.T) {
	week1Mon := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	week2Mon := time.Date(2024, 1, 8, 17, 0, 0, 0, time.UTC)

	s := Aggregate([]models.TicketSale{saleAt(10, week1Mon), saleAt(15, week2Mon)}, Daily)
	assert.Equal(t, []string{"Mon"}, s.Labels)
	assert.Equal(t, []float64{25}, s.Values)
}

func TestAggregateWeekly(t *testing.T) {
	// 2024 starts on a Monday (Jan 1 weekday = 1, Sunday-based).
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jan7 := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC) // first Sunday

	s := Aggregate([]models.TicketSale{saleAt(5, jan1), saleAt(7, jan7)}, Weekly)
	assert.Equal(t, []string{"Week 1", "Week 2"}, s.Labels)
	assert.Equal(t, []float64{5, 7}, s.Values)
}

func TestAggregateWeeklyNaturalOrdering(t *testing.T) {
	var sales []models.TicketSale
	// One sale a week from January through mid-March.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 11; i++ {
		sales = append(sales, saleAt(1, start.AddDate(0, 0, 7*i)))
	}

	s := Aggregate(sales, Weekly)
	require.Len(t, s.Labels, 11)
	assert.Equal(t, "Week 1", s.Labels[0])
	assert.Equal(t, "Week 2", s.Labels[1])
	assert.Equal(t, "Week 10", s.Labels[9])
	assert.Equal(t, "Week 11", s.Labels[10])
}

func TestAggregateMonthly(t *testing.T) {
	s := Aggregate([]models.TicketSale{
		saleAt(10, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		saleAt(20, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		saleAt(5, time.Date(2024, 1, 28, 0, 0, 0, 0, time.UTC)),
	}, Monthly)
	assert.Equal(t, []string{"Feb", "Jan"}, s.Labels)
	assert.Equal(t, []float64{20, 15}, s.Values)
}

// The sum of output values equals the sum of prices of all sales with
// a parseable createdAt, at every granularity.
func TestAggregateSumInvariant(t *testing.T) {
	sales := []models.TicketSale{
		saleAt(100, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)),
		saleAt(50, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		saleAt(0, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)), // falsy price still counted as 0
		saleAt(25, time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)),
		saleAt(999, time.Time{}), // dropped: no createdAt
	}
	const wantSum = 175.0

	for _, g := range []Granularity{Daily, Weekly, Monthly} {
		s := Aggregate(sales, g)
		var sum float64
		for _, v := range s.Values {
			sum += v
		}
		assert.Equal(t, wantSum, sum, "granularity %s", g)
		assert.Len(t, s.Values, len(s.Labels))
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	s := Aggregate(nil, Daily)
	assert.Empty(t, s.Labels)
	assert.Empty(t, s.Values)
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("weekly")
	require.NoError(t, err)
	assert.Equal(t, Weekly, g)

	g, err = ParseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, Daily, g)

	_, err = ParseGranularity("hourly")
	assert.Error(t, err)
}

func TestNaturalLess(t *testing.T) {
	assert.True(t, naturalLess("Week 2", "Week 10"))
	assert.False(t, naturalLess("Week 10", "Week 2"))
	assert.True(t, naturalLess("Week 9", "Week 11"))
	assert.True(t, naturalLess("Apr", "Aug"))
	assert.False(t, naturalLess("Mon", "Mon"))
	assert.True(t, naturalLess("Week", "Week 1"), "prefix sorts first")
}
