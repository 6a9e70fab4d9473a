// Package pen provides the USD/PEN quote sources and the cycle
// sampler that drives them.
//
// # Sources
//
// ## Fintech board
//
// URL: https://cuantoestaeldolar.pe/
//
// A JS-rendered board of exchange-house entries, each carrying a
// display name and a buy / sell price pair. Generated class suffixes
// on the page are unstable, so entries are matched by class-name
// prefix only. Entries missing either price cell are dropped whole.
//
// ## Spot reference
//
// URL: https://www.investing.com/currencies/usd-pen
//
// A single prominent interbank price element, used as an independent
// reference alongside the board averages.
//
// Both sources share one browsing session per cycle. Navigation and
// the structural wait are retried a fixed number of times with
// increasing backoff; a source that still fails yields no data for
// the cycle and never aborts it.
package pen
