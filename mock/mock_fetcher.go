package mock

import (
	"github.com/pkg/errors"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
)

// Fetcher is a scripted transport double. Responses play back in call order;
// a nil entry, or running past the end of the script, fails that call.
type Fetcher struct {
	Responses []*f1data.RawResponse
	Err       error // error returned for failed calls; a default is used when nil

	Calls []*f1data.RequestDescriptor
}

func (m *Fetcher) Fetch(desc *f1data.RequestDescriptor) (*f1data.RawResponse, error) {
	m.Calls = append(m.Calls, desc)
	i := len(m.Calls) - 1
	if i >= len(m.Responses) || m.Responses[i] == nil {
		if m.Err != nil {
			return nil, m.Err
		}
		return nil, errors.New("scripted transport failure")
	}
	return m.Responses[i], nil
}

// JSONResponse wraps a body in a 200 response with a JSON content type.
func JSONResponse(body string) *f1data.RawResponse {
	return &f1data.RawResponse{
		StatusCode:  200,
		ContentType: "application/json",
		Body:        []byte(body),
	}
}
