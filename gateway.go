package brandsight

import "context"

// Prober checks that a remote reference is fetchable without downloading
// its full body. Probe failures (timeout, transport error, non-success
// status) are normal outcomes, not fatal conditions; callers treat any
// error as "candidate unreachable" and move on.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

// Asset is a remote resource fetched through the gateway.
type Asset struct {
	ContentType string
	Body        []byte
}

// Gateway performs pass-through fetches of remote assets on behalf of
// same-origin callers, using a browser-like user agent. It backs both the
// reachability probe used during logo validation and the GET pass-through
// used for final asset rendering.
type Gateway interface {
	Prober

	// FetchAsset retrieves the remote resource's bytes and content type.
	// Returns EUNAVAILABLE if the resource cannot be fetched.
	FetchAsset(ctx context.Context, url string) (*Asset, error)
}

// Rewriter converts absolute remote URLs into same-origin proxied
// references. Inline data references pass through unchanged and an empty
// input yields an empty output. Every URL-valued Signal field goes through
// a Rewriter before assembly.
type Rewriter interface {
	Rewrite(url string) string
}
