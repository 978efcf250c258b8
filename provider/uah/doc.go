// Package uah provides quote providers for Ukrainian Hryvnia (UAH)
// exchange points.
//
// # Providers
//
// ## Raiffeisen
//
// Source: "Raiffeisen"
// URL: https://raiffeisen.ua/
//
// The bank's landing page embeds its currency table as an HTML-entity
// escaped JSON array inside the ":currencies" attribute of a
// <currency-table> element, nested in "div#currency-table".
// The provider unescapes and decodes that array. Quotes already use the
// canonical field names; the base currency is fixed to UAH.
//
// ## PrivatBank
//
// Source: "PrivatBank"
// API: https://api.privatbank.ua/p24api/pubinfo?exchange&json&coursid=11
//
// A plain JSON REST endpoint returning an array of quote records.
// Field names are remapped to the canonical schema:
//
//	ccy -> currency, base_ccy -> base_currency, buy -> rate_buy, sale -> rate_sell
//
// ## Bestobmin
//
// Source: "Bestobmin"
// URL: https://bestobmin.com.ua/
//
// Scraped from the "div#opt" rate board. Each "div.row" holds a buy
// value, a currency label and a sell value in nested elements. Rows
// missing any of the three parts are skipped individually, so one
// malformed row never discards the rest of the board.
//
// All three providers pass rate values through as the exact decimal
// strings rendered by the source, with no numeric parsing.
package uah
