// Package entity defines the domain models for the eod feature.
package entity

import "cloud.google.com/go/civil"

// Bar is one end-of-day OHLCV data point for a symbol, with its split/dividend
// adjusted counterparts.
type Bar struct {
	Symbol    string     // Stock ticker symbol (e.g., "AAPL")
	Exchange  string     // Exchange MIC (e.g., "XNAS")
	TradeDate civil.Date // Trading day the bar belongs to
	Timestamp string     // Collection time as reported upstream, ISO-8601

	Open   float64 // Raw opening price
	High   float64 // Raw high price
	Low    float64 // Raw low price
	Close  float64 // Raw closing price
	Volume float64 // Raw volume

	AdjOpen   float64
	AdjHigh   float64
	AdjLow    float64
	AdjClose  float64
	AdjVolume float64

	SplitFactor float64 // Factor used to adjust prices for splits and distributions
	Dividend    float64 // Cash dividend paid on this day
}
