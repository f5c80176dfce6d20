package dto

// PathPrefix is the path every end-of-day request starts with.
const PathPrefix = "/eod/"

// EodRequest pairs an endpoint with its query parameters.
type EodRequest struct {
	Endpoint EndpointType
	Query    EodQuery
}

// NewEodRequest returns a request for endpoint with query q.
func NewEodRequest(endpoint EndpointType, q EodQuery) EodRequest {
	return EodRequest{Endpoint: endpoint, Query: q}
}

// Path returns the request path, e.g. /eod/latest or /eod/2020-01-01.
func (r EodRequest) Path() string {
	return PathPrefix + r.Endpoint.PathSegment()
}
