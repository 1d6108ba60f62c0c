package catalog

import "github.com/jask/currencypicker/core"

// Builtin returns the catalog seeded into a fresh store. Order is display
// order.
func Builtin() []core.Currency {
	return []core.Currency{
		{Code: "USD", Symbol: "$", Name: "US Dollar"},
		{Code: "EUR", Symbol: "€", Name: "Euro"},
		{Code: "GBP", Symbol: "£", Name: "British Pound"},
		{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
		{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
		{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
		{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
		{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
		{Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
		{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
		{Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
		{Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
		{Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
		{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
		{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
		{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
		{Code: "MXN", Symbol: "Mex$", Name: "Mexican Peso"},
		{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
		{Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},
		{Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
		{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
		{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
		{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	}
}
