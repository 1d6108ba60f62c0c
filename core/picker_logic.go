package core

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionOpened
	PickerActionMoved
	PickerActionSelected
	PickerActionDismissed
)

func (a PickerAction) String() string {
	switch a {
	case PickerActionOpened:
		return "opened"
	case PickerActionMoved:
		return "moved"
	case PickerActionSelected:
		return "selected"
	case PickerActionDismissed:
		return "dismissed"
	default:
		return "none"
	}
}

type PickerResult struct {
	Action   PickerAction
	Currency Currency
}

const DefaultPageSize = 10

// Picker is the two-state (closed/open) machine behind the currency
// selector. The currency list and the selected currency belong to the caller;
// Picker only reads them.
type Picker struct {
	currencies []Currency
	filtered   []Currency
	selected   Currency
	visible    bool
	query      string
	cursor     int
	offset     int
	pageSize   int
}

func NewPicker(currencies []Currency, selected Currency) *Picker {
	p := &Picker{selected: selected, pageSize: DefaultPageSize}
	p.SetCurrencies(currencies)
	return p
}

func (p *Picker) Visible() bool {
	if p == nil {
		return false
	}
	return p.visible
}

func (p *Picker) Query() string {
	if p == nil {
		return ""
	}
	return p.query
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) Selected() Currency {
	if p == nil {
		return Currency{}
	}
	return p.selected
}

func (p *Picker) Currencies() []Currency {
	if p == nil {
		return nil
	}
	return p.currencies
}

// Filtered returns the current view of the list. Callers must not modify it:
// with an empty query it is the caller-supplied slice.
func (p *Picker) Filtered() []Currency {
	if p == nil {
		return nil
	}
	return p.filtered
}

func (p *Picker) PageSize() int {
	if p == nil {
		return DefaultPageSize
	}
	return p.pageSize
}

// SetCurrencies replaces the full list. The slice is held, never written.
func (p *Picker) SetCurrencies(currencies []Currency) {
	if p == nil {
		return
	}
	p.currencies = currencies
	p.rebuildFiltered()
}

func (p *Picker) SetSelected(c Currency) {
	if p == nil {
		return
	}
	p.selected = c
}

func (p *Picker) SetPageSize(n int) {
	if p == nil {
		return
	}
	if n < 1 {
		n = 1
	}
	p.pageSize = n
	p.scrollToCursor()
}

// IsSelected reports whether c is the externally selected currency.
func (p *Picker) IsSelected(c Currency) bool {
	if p == nil {
		return false
	}
	return SameCurrency(p.selected, c)
}

// Open moves Closed -> Open. Opening an open picker does nothing.
func (p *Picker) Open() PickerResult {
	if p == nil || p.visible {
		return PickerResult{Action: PickerActionNone}
	}
	p.visible = true
	p.cursor = 0
	p.offset = 0
	return PickerResult{Action: PickerActionOpened}
}

// Dismiss moves Open -> Closed without a selection and clears the query.
func (p *Picker) Dismiss() PickerResult {
	if p == nil || !p.visible {
		return PickerResult{Action: PickerActionNone}
	}
	p.close()
	return PickerResult{Action: PickerActionDismissed}
}

func (p *Picker) SetQuery(q string) {
	if p == nil || q == p.query {
		return
	}
	p.query = q
	p.cursor = 0
	p.offset = 0
	p.rebuildFiltered()
}

func (p *Picker) CursorUp() PickerResult {
	return p.moveCursor(-1)
}

func (p *Picker) CursorDown() PickerResult {
	return p.moveCursor(1)
}

func (p *Picker) PageUp() PickerResult {
	return p.moveCursor(-p.PageSize())
}

func (p *Picker) PageDown() PickerResult {
	return p.moveCursor(p.PageSize())
}

// Home jumps to the first filtered row.
func (p *Picker) Home() PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	return p.moveCursor(-p.cursor)
}

// End jumps to the last filtered row.
func (p *Picker) End() PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	return p.moveCursor(len(p.filtered) - 1 - p.cursor)
}

func (p *Picker) CurrentCurrency() (Currency, bool) {
	if p == nil || len(p.filtered) == 0 {
		return Currency{}, false
	}
	idx := p.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(p.filtered) {
		idx = len(p.filtered) - 1
	}
	return p.filtered[idx], true
}

// Select commits the row under the cursor. onSelect runs before the picker
// closes. With no rows the picker stays open.
func (p *Picker) Select(onSelect func(Currency)) PickerResult {
	if p == nil || !p.visible {
		return PickerResult{Action: PickerActionNone}
	}
	return p.SelectAt(p.cursor, onSelect)
}

// SelectAt commits the filtered row at index.
func (p *Picker) SelectAt(index int, onSelect func(Currency)) PickerResult {
	if p == nil || !p.visible || index < 0 || index >= len(p.filtered) {
		return PickerResult{Action: PickerActionNone}
	}
	c := p.filtered[index]
	if onSelect != nil {
		onSelect(c)
	}
	p.close()
	return PickerResult{Action: PickerActionSelected, Currency: c}
}

// Window returns the half-open range of filtered rows that fit the page.
func (p *Picker) Window() (start, end int) {
	if p == nil {
		return 0, 0
	}
	start = p.offset
	end = start + p.pageSize
	if end > len(p.filtered) {
		end = len(p.filtered)
	}
	if start > end {
		start = end
	}
	return start, end
}

func (p *Picker) close() {
	p.visible = false
	p.cursor = 0
	p.offset = 0
	if p.query != "" {
		p.query = ""
		p.rebuildFiltered()
	}
}

func (p *Picker) moveCursor(delta int) PickerResult {
	if p == nil || !p.visible || len(p.filtered) == 0 {
		return PickerResult{Action: PickerActionNone}
	}
	before := p.cursor
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if maxIdx := len(p.filtered) - 1; p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	p.scrollToCursor()
	if p.cursor == before {
		return PickerResult{Action: PickerActionNone}
	}
	return PickerResult{Action: PickerActionMoved}
}

func (p *Picker) scrollToCursor() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.pageSize {
		p.offset = p.cursor - p.pageSize + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

func (p *Picker) rebuildFiltered() {
	p.filtered = FilterCurrencies(p.currencies, p.query)

	maxIdx := len(p.filtered) - 1
	if maxIdx < 0 {
		p.cursor = 0
	} else if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	p.scrollToCursor()
}
