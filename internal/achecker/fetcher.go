package achecker

import "context"

// OutputREST selects the XML report format of the checking service.
const OutputREST = "rest"

// InvalidCredentialMarker appears in the response body when the web service
// ID is rejected, whatever the status code.
const InvalidCredentialMarker = "Invalid web service ID"

type Request struct {
	URI   string
	ID    string
	Guide string
}

// Fetcher retrieves the raw report for a page from the checking service.
//
//go:generate mockery --name Fetcher --output ../mocks --with-expecter
type Fetcher interface {
	Fetch(ctx context.Context, r Request) (string, error)
}
