// Package catalog holds the storefront pricing logic that needs no browser:
// currency parsing and the effective-price extraction used to verify
// category sorting.
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	specialPriceSelector = "p.special-price span.price"
	regularPriceSelector = "span.regular-price span.price"
)

// ParsePrice converts a storefront price label such as "$1,234.50" to its
// numeric value. The currency symbol and thousands separators are stripped;
// surrounding whitespace is ignored.
func ParsePrice(label string) (float64, error) {
	cleaned := strings.TrimSpace(label)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty price label %q", label)
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable price label %q: %w", label, err)
	}
	return value, nil
}

// FormatPrice renders a numeric value back into the storefront's label form.
// Rounding happens on the total cent count, so a fraction at or above .995
// carries into the whole part.
func FormatPrice(value float64) string {
	cents := int64(math.Round(value * 100))
	var b strings.Builder
	b.WriteByte('$')
	digits := strconv.FormatInt(cents/100, 10)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	fmt.Fprintf(&b, ".%02d", cents%100)
	return b.String()
}

// EffectivePrices extracts the price a shopper would pay for each product
// tile in a category listing: the special price when one is shown, otherwise
// the regular price. html is the serialized category-products list.
func EffectivePrices(html string) ([]float64, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse category listing: %w", err)
	}

	tiles := doc.Find("li.item")
	if tiles.Length() == 0 {
		tiles = doc.Find("ul").First().ChildrenFiltered("li")
	}

	var prices []float64
	var parseErr error
	tiles.EachWithBreak(func(_ int, tile *goquery.Selection) bool {
		label := tile.Find(specialPriceSelector).First().Text()
		if strings.TrimSpace(label) == "" {
			label = tile.Find(regularPriceSelector).First().Text()
		}
		if strings.TrimSpace(label) == "" {
			return true
		}
		value, err := ParsePrice(label)
		if err != nil {
			parseErr = err
			return false
		}
		prices = append(prices, value)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return prices, nil
}

// IsSortedAscending reports whether prices never decrease from one tile to
// the next.
func IsSortedAscending(prices []float64) bool {
	for i := 1; i < len(prices); i++ {
		if prices[i] < prices[i-1] {
			return false
		}
	}
	return true
}

// WithinRange reports whether value falls inside [low, high].
func WithinRange(value, low, high float64) bool {
	return value >= low && value <= high
}
