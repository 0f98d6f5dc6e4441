package artifact

// NewFetcherWithClient exports newFetcherWithClient for testing.
var NewFetcherWithClient = newFetcherWithClient
