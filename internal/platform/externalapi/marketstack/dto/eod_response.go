// Package dto defines the request and response data shapes of the marketstack end-of-day API.
package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// EodResponse represents the JSON response from the end-of-day endpoints.
// Data keeps the order the API returned it in.
type EodResponse struct {
	Pagination Pagination    `json:"pagination"`
	Data       []DailyRecord `json:"data"`
}

// Pagination describes one page of a larger result set.
type Pagination struct {
	Limit  int64 `json:"limit"`  // page size
	Offset int64 `json:"offset"` // page offset
	Count  int64 `json:"count"`  // results on this page
	Total  int64 `json:"total"`  // results available overall
}

// DailyRecord is one end-of-day data point for a symbol.
//
// Adjusted prices are amended for corporate actions such as splits and dividends,
// following the CRSP calculation methodology.
type DailyRecord struct {
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Volume      float64 `json:"volume"`
	AdjHigh     float64 `json:"adjHigh"`
	AdjLow      float64 `json:"adjLow"`
	AdjClose    float64 `json:"adjClose"`
	AdjOpen     float64 `json:"adjOpen"`
	AdjVolume   float64 `json:"adjVolume"`
	SplitFactor float64 `json:"splitFactor"`
	Dividend    float64 `json:"dividend"`
	Symbol      string  `json:"symbol"`
	Exchange    string  `json:"exchange"` // MIC
	Date        string  `json:"date"`     // ISO-8601 UTC timestamp, kept as sent
}

// rawResponse distinguishes an absent or null pagination/data key from an empty one.
type rawResponse struct {
	Pagination *Pagination    `json:"pagination"`
	Data       *[]DailyRecord `json:"data"`
	Error      *APIError      `json:"error"`
}

// UnmarshalJSON decodes an EOD response. Missing fields inside pagination and records
// default to their zero value; a missing, null or mistyped pagination or data key fails
// with ErrMalformedResponse. An error envelope is returned as *APIError.
func (r *EodResponse) UnmarshalJSON(b []byte) error {
	var raw rawResponse
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if raw.Error != nil {
		return raw.Error
	}
	if raw.Pagination == nil {
		return fmt.Errorf("%w: pagination is missing", ErrMalformedResponse)
	}
	if raw.Data == nil {
		return fmt.Errorf("%w: data is missing", ErrMalformedResponse)
	}
	r.Pagination = *raw.Pagination
	r.Data = *raw.Data
	return nil
}

// MarshalJSON encodes a nil Data as an empty array so the output decodes again.
func (r EodResponse) MarshalJSON() ([]byte, error) {
	type plain EodResponse
	p := plain(r)
	if p.Data == nil {
		p.Data = []DailyRecord{}
	}
	return json.Marshal(p)
}

// DecodeEodResponse reads one EOD response body from rd.
func DecodeEodResponse(rd io.Reader) (EodResponse, error) {
	var resp EodResponse
	if err := json.NewDecoder(rd).Decode(&resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) || errors.Is(err, ErrMalformedResponse) {
			return EodResponse{}, err
		}
		return EodResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp, nil
}

// UnmarshalEodResponse decodes an EOD response body held in memory.
func UnmarshalEodResponse(b []byte) (EodResponse, error) {
	return DecodeEodResponse(bytes.NewReader(b))
}
