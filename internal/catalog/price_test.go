package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"plain", "$45.00", 45.00},
		{"thousands separator", "$1,234.50", 1234.50},
		{"surrounding whitespace", "  $99.99 ", 99.99},
		{"no symbol", "150.00", 150.00},
		{"multiple separators", "$1,234,567.89", 1234567.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.label)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestParsePriceRejectsGarbage(t *testing.T) {
	for _, label := range []string{"", "  ", "$", "free", "$12.34.56"} {
		_, err := ParsePrice(label)
		assert.Error(t, err, "label %q", label)
	}
}

func TestFormatPriceRoundTrips(t *testing.T) {
	for _, value := range []float64{0, 5.5, 45.00, 99.99, 1234.50, 1234567.89} {
		label := FormatPrice(value)
		got, err := ParsePrice(label)
		require.NoError(t, err, "label %q", label)
		assert.InDelta(t, value, got, 0.001, "label %q", label)
	}
}

func TestFormatPriceCarriesRoundedCents(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1.999, "$2.00"},
		{0.995, "$1.00"},
		{999.995, "$1,000.00"},
		{41.994, "$41.99"},
	}

	for _, tt := range tests {
		label := FormatPrice(tt.value)
		assert.Equal(t, tt.want, label, "value %v", tt.value)

		got, err := ParsePrice(label)
		require.NoError(t, err, "label %q", label)
		assert.Equal(t, label, FormatPrice(got), "re-format of %q", label)
	}
}

func TestEffectivePricesPrefersSpecialPrice(t *testing.T) {
	html := `<ul class="products-grid">
		<li class="item first">
			<div class="price-box">
				<p class="old-price"><span class="price">$50.00</span></p>
				<p class="special-price"><span class="price">$41.99</span></p>
			</div>
		</li>
		<li class="item">
			<div class="price-box">
				<span class="regular-price"><span class="price">$45.00</span></span>
			</div>
		</li>
		<li class="item last">
			<div class="price-box">
				<p class="special-price"><span class="price">$1,099.50</span></p>
			</div>
		</li>
	</ul>`

	prices, err := EffectivePrices(html)
	require.NoError(t, err)
	require.Len(t, prices, 3)
	assert.InDelta(t, 41.99, prices[0], 0.001)
	assert.InDelta(t, 45.00, prices[1], 0.001)
	assert.InDelta(t, 1099.50, prices[2], 0.001)
}

func TestEffectivePricesSkipsTilesWithoutPrices(t *testing.T) {
	html := `<ul>
		<li class="item"><div class="banner">New arrivals</div></li>
		<li class="item"><span class="regular-price"><span class="price">$10.00</span></span></li>
	</ul>`

	prices, err := EffectivePrices(html)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.InDelta(t, 10.00, prices[0], 0.001)
}

func TestIsSortedAscending(t *testing.T) {
	assert.True(t, IsSortedAscending(nil))
	assert.True(t, IsSortedAscending([]float64{5}))
	assert.True(t, IsSortedAscending([]float64{1, 1, 2, 3.5}))
	assert.False(t, IsSortedAscending([]float64{1, 3, 2}))
}

func TestWithinRange(t *testing.T) {
	assert.True(t, WithinRange(0, 0, 99.99))
	assert.True(t, WithinRange(99.99, 0, 99.99))
	assert.False(t, WithinRange(100, 0, 99.99))
}
