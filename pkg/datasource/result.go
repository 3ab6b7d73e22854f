// Package datasource queries authoritative statistical APIs (FRED, BLS,
// World Bank, IMF, Federal Register, USITC) on behalf of the fact
// verifier and formats their responses as plain-text evidence blocks.
package datasource

// Result is the outcome of one data source query. Content is formatted
// text meant to be placed directly into a verifier prompt; Extra carries
// selected raw values for archival.
type Result struct {
	Content    string         // formatted text, or an error message when OK is false
	DataPeriod *string        // human-readable span the data covers
	SourceURL  *string        // canonical URL for citation
	SourceType string         // source identifier (fred, bls, world_bank, ...)
	OK         bool           // false means the query failed
	Extra      map[string]any // selected raw values (optional)
}

// fail builds a failed Result whose Content explains what went wrong.
func fail(sourceType, msg string) Result {
	return Result{Content: msg, SourceType: sourceType}
}

// failAt is fail with a citation URL attached.
func failAt(sourceType, msg, sourceURL string) Result {
	r := fail(sourceType, msg)
	r.SourceURL = &sourceURL
	return r
}

func strptr(s string) *string { return &s }
