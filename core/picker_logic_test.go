package core

import "testing"

func TestPickerStartsClosedWithEmptyQuery(t *testing.T) {
	p := NewPicker(testCurrencies(), testCurrencies()[0])
	if p.Visible() {
		t.Fatal("picker should start closed")
	}
	if p.Query() != "" {
		t.Fatalf("query = %q, want empty", p.Query())
	}
	if len(p.Filtered()) != len(testCurrencies()) {
		t.Fatalf("filtered = %d rows, want full list", len(p.Filtered()))
	}
}

func TestPickerOpenTwiceIsNoop(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{Code: "USD"})
	if res := p.Open(); res.Action != PickerActionOpened {
		t.Fatalf("action = %v, want %v", res.Action, PickerActionOpened)
	}
	if res := p.Open(); res.Action != PickerActionNone {
		t.Fatalf("second open action = %v, want none", res.Action)
	}
	if !p.Visible() {
		t.Fatal("picker should be open")
	}
}

func TestPickerSelectInvokesCallbackOnceThenCloses(t *testing.T) {
	list := []Currency{
		{Code: "USD", Symbol: "$", Name: "US Dollar"},
		{Code: "EUR", Symbol: "€", Name: "Euro"},
	}
	p := NewPicker(list, list[0])
	p.Open()
	p.SetQuery("eu")
	if got := codes(p.Filtered()); got != "EUR" {
		t.Fatalf("filtered = %q, want EUR", got)
	}

	var calls []Currency
	var visibleDuringCallback bool
	res := p.Select(func(c Currency) {
		calls = append(calls, c)
		visibleDuringCallback = p.Visible()
	})

	if res.Action != PickerActionSelected {
		t.Fatalf("action = %v, want %v", res.Action, PickerActionSelected)
	}
	if len(calls) != 1 {
		t.Fatalf("callback calls = %d, want 1", len(calls))
	}
	want := Currency{Code: "EUR", Symbol: "€", Name: "Euro"}
	if calls[0] != want || res.Currency != want {
		t.Fatalf("callback got %+v, result %+v, want %+v", calls[0], res.Currency, want)
	}
	if !visibleDuringCallback {
		t.Fatal("callback should run before the picker closes")
	}
	if p.Visible() {
		t.Fatal("picker should close after selection")
	}
	if p.Query() != "" {
		t.Fatalf("query = %q, want cleared", p.Query())
	}
	if len(p.Filtered()) != len(list) {
		t.Fatalf("filtered = %d rows after close, want full list", len(p.Filtered()))
	}
}

func TestPickerSelectDoesNotChangeSelectedItself(t *testing.T) {
	list := testCurrencies()
	p := NewPicker(list, list[0])
	p.Open()
	p.CursorDown()
	p.Select(nil)
	if p.Selected().Code != "USD" {
		t.Fatalf("selected = %s; the owner decides what is selected", p.Selected().Code)
	}
}

func TestPickerDismissClearsQueryKeepsSelection(t *testing.T) {
	list := testCurrencies()
	p := NewPicker(list, list[1])
	p.Open()
	p.SetQuery("yen")
	p.CursorDown()

	res := p.Dismiss()
	if res.Action != PickerActionDismissed {
		t.Fatalf("action = %v, want %v", res.Action, PickerActionDismissed)
	}
	if p.Visible() || p.Query() != "" || p.Cursor() != 0 {
		t.Fatalf("after dismiss visible=%v query=%q cursor=%d", p.Visible(), p.Query(), p.Cursor())
	}
	if p.Selected() != list[1] {
		t.Fatalf("selected = %+v, want %+v", p.Selected(), list[1])
	}
	if res := p.Dismiss(); res.Action != PickerActionNone {
		t.Fatalf("dismissing a closed picker = %v, want none", res.Action)
	}
}

func TestPickerSelectWithNoRowsStaysOpen(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{Code: "USD"})
	p.Open()
	p.SetQuery("nothing matches this")
	called := false
	res := p.Select(func(Currency) { called = true })
	if res.Action != PickerActionNone || called {
		t.Fatalf("action = %v called = %v, want none and no callback", res.Action, called)
	}
	if !p.Visible() {
		t.Fatal("picker should stay open on an empty list")
	}
}

func TestPickerSelectWhileClosedIsNoop(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{Code: "USD"})
	called := false
	if res := p.Select(func(Currency) { called = true }); res.Action != PickerActionNone || called {
		t.Fatalf("closed select: action = %v called = %v", res.Action, called)
	}
}

func TestPickerCursorClampsAndResetsOnQuery(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{Code: "USD"})
	p.Open()
	if res := p.CursorUp(); res.Action != PickerActionNone {
		t.Fatalf("cursor up at top = %v, want none", res.Action)
	}
	for i := 0; i < 20; i++ {
		p.CursorDown()
	}
	if p.Cursor() != len(testCurrencies())-1 {
		t.Fatalf("cursor = %d, want last row", p.Cursor())
	}
	p.SetQuery("dollar")
	if p.Cursor() != 0 {
		t.Fatalf("cursor = %d after query change, want 0", p.Cursor())
	}
	cur, ok := p.CurrentCurrency()
	if !ok || cur.Code != "USD" {
		t.Fatalf("current = %+v ok=%v, want USD", cur, ok)
	}
}

func TestPickerWindowFollowsCursor(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{Code: "USD"})
	p.SetPageSize(2)
	p.Open()

	if start, end := p.Window(); start != 0 || end != 2 {
		t.Fatalf("window = [%d,%d), want [0,2)", start, end)
	}
	p.CursorDown()
	p.CursorDown()
	if start, end := p.Window(); start != 1 || end != 3 {
		t.Fatalf("window = [%d,%d), want [1,3)", start, end)
	}
	p.PageDown()
	if p.Cursor() != 4 {
		t.Fatalf("cursor = %d after page down, want 4", p.Cursor())
	}
	if start, end := p.Window(); start != 3 || end != 5 {
		t.Fatalf("window = [%d,%d), want [3,5)", start, end)
	}
	p.PageUp()
	p.PageUp()
	if start, end := p.Window(); start != 0 || end != 2 {
		t.Fatalf("window = [%d,%d), want [0,2)", start, end)
	}
}

func TestPickerReopenStartsFresh(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{Code: "USD"})
	for i := 0; i < 3; i++ {
		p.Open()
		p.SetQuery("o")
		p.CursorDown()
		p.Dismiss()
	}
	p.Open()
	if p.Query() != "" || p.Cursor() != 0 {
		t.Fatalf("reopen query=%q cursor=%d, want fresh state", p.Query(), p.Cursor())
	}
}

func TestPickerIsSelectedByCode(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{Code: "EUR", Name: "stale name"})
	if !p.IsSelected(Currency{Code: "EUR", Symbol: "€", Name: "Euro"}) {
		t.Fatal("identity is by code")
	}
	p.SetSelected(Currency{Code: "XXX"})
	for _, c := range p.Filtered() {
		if p.IsSelected(c) {
			t.Fatalf("%s should not be selected for an unknown code", c.Code)
		}
	}
}

func TestPickerNilSafe(t *testing.T) {
	var p *Picker
	if p.Visible() || p.Query() != "" || p.Cursor() != 0 {
		t.Fatal("nil picker should report zero state")
	}
	if res := p.Open(); res.Action != PickerActionNone {
		t.Fatalf("nil open = %v", res.Action)
	}
	p.SetQuery("x")
	p.SetCurrencies(nil)
}

func TestPickerActionString(t *testing.T) {
	if PickerActionSelected.String() != "selected" || PickerAction(99).String() != "none" {
		t.Fatal("unexpected action names")
	}
}

func TestPickerHomeEnd(t *testing.T) {
	p := NewPicker(testCurrencies(), Currency{})
	p.SetPageSize(2)
	p.Open()

	if res := p.End(); res.Action != PickerActionMoved {
		t.Fatalf("end = %v", res.Action)
	}
	last := len(p.Filtered()) - 1
	if p.Cursor() != last {
		t.Fatalf("cursor = %d, want %d", p.Cursor(), last)
	}
	if start, end := p.Window(); end != last+1 || start != last-1 {
		t.Fatalf("window = %d-%d", start, end)
	}
	if res := p.End(); res.Action != PickerActionNone {
		t.Fatalf("second end = %v", res.Action)
	}
	p.Home()
	if p.Cursor() != 0 {
		t.Fatalf("cursor after home = %d", p.Cursor())
	}
}
