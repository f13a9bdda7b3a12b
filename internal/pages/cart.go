package pages

import (
	"fmt"
	"strconv"

	"github.com/ternarybob/shopcheck/internal/browser"
	"github.com/ternarybob/shopcheck/internal/catalog"
)

const (
	cartRows         = "table#shopping-cart-table tbody tr"
	cartRowSubtotal  = " td.product-cart-total span.price"
	cartRowQtyInput  = " input.qty"
	cartRowUpdateBtn = " button[title='Update']"
	emptyCartMessage = ".cart-empty p"
)

// The totals footer markup varies between cart states; candidates are tried
// in order.
var grandTotalCandidates = []string{
	"#shopping-cart-totals-table tfoot tr.last td.a-right span.price",
	"#shopping-cart-totals-table tfoot tr td:nth-child(2) span.price",
	"#shopping-cart-totals-table tfoot .price",
}

// Delete controls differ per row template; candidates are tried in order
// within the row.
var deleteButtonCandidates = []string{
	" a.btn-remove",
	" a.btn-remove2",
	" a[title='Remove item']",
	" td.product-cart-remove a",
}

// Cart is the shopping cart page.
type Cart struct {
	s   *browser.Session
	nav *Navigator
}

func NewCart(nav *Navigator) *Cart {
	return &Cart{s: nav.Session(), nav: nav}
}

func (p *Cart) row(i int) string {
	return fmt.Sprintf("%s:nth-child(%d)", cartRows, i+1)
}

func (p *Cart) checkBounds(i int) error {
	count, err := p.RowCount()
	if err != nil {
		return err
	}
	if i < 0 || i >= count {
		return fmt.Errorf("cart row %d of %d: %w", i, count, ErrOutOfRange)
	}
	return nil
}

// RowCount returns the number of item rows in the cart.
func (p *Cart) RowCount() (int, error) {
	return p.s.Count(cartRows)
}

// RowSubtotals returns the parsed subtotal of every cart row, in row order.
func (p *Cart) RowSubtotals() ([]float64, error) {
	count, err := p.RowCount()
	if err != nil {
		return nil, err
	}

	subtotals := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		label, err := p.s.Text(p.row(i) + cartRowSubtotal)
		if err != nil {
			return nil, fmt.Errorf("reading subtotal of cart row %d: %w", i, err)
		}
		value, err := catalog.ParsePrice(label)
		if err != nil {
			return nil, fmt.Errorf("parsing subtotal of cart row %d: %w", i, err)
		}
		subtotals = append(subtotals, value)
	}
	return subtotals, nil
}

// GrandTotal locates the grand total through the candidate chain and parses it.
func (p *Cart) GrandTotal() (float64, error) {
	sel, err := p.s.FirstDisplayed(grandTotalCandidates)
	if err != nil {
		return 0, fmt.Errorf("locating grand total: %w", err)
	}
	label, err := p.s.Text(sel)
	if err != nil {
		return 0, err
	}
	return catalog.ParsePrice(label)
}

// SetRowQuantity replaces the quantity input of row i.
func (p *Cart) SetRowQuantity(i, qty int) error {
	if err := p.checkBounds(i); err != nil {
		return err
	}
	row := p.row(i)
	if err := p.s.ScrollIntoView(row); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}
	return p.s.ClearAndType(row+cartRowQtyInput, strconv.Itoa(qty))
}

// UpdateRow submits row i's update button and waits out the cart reload.
func (p *Cart) UpdateRow(i int) error {
	if err := p.checkBounds(i); err != nil {
		return err
	}
	button := p.row(i) + cartRowUpdateBtn
	if err := p.s.ScrollIntoView(button); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}
	if err := p.s.ScriptClick(button); err != nil {
		return err
	}
	return browser.Pause(p.s.Ctx(), p.nav.Timing().CartUpdateDelay)
}

// DeleteRow removes row i through its delete control, located via the
// candidate chain, and waits out the cart reload.
func (p *Cart) DeleteRow(i int) error {
	if err := p.checkBounds(i); err != nil {
		return err
	}
	row := p.row(i)
	if err := p.s.ScrollIntoView(row); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}

	candidates := make([]string, len(deleteButtonCandidates))
	for j, suffix := range deleteButtonCandidates {
		candidates[j] = row + suffix
	}
	sel, err := p.s.FirstDisplayed(candidates)
	if err != nil {
		return fmt.Errorf("locating delete control of cart row %d: %w", i, err)
	}

	if err := p.s.ScriptClick(sel); err != nil {
		return err
	}
	return browser.Pause(p.s.Ctx(), p.nav.Timing().CartUpdateDelay)
}

// DeleteFirstRow removes the first row in the cart.
func (p *Cart) DeleteFirstRow() error {
	return p.DeleteRow(0)
}

// IsEmpty reports whether the empty-cart message is rendered. Absence is an
// ordinary false.
func (p *Cart) IsEmpty() (bool, error) {
	count, err := p.s.Count(emptyCartMessage)
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	return p.s.IsDisplayed(emptyCartMessage)
}

// EmptyMessage returns the empty-cart message text, "" when absent.
func (p *Cart) EmptyMessage() (string, error) {
	empty, err := p.IsEmpty()
	if err != nil || !empty {
		return "", err
	}
	return p.s.Text(emptyCartMessage)
}
