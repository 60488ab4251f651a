// Package engine drives the user directory pipeline.
//
// The pipeline walks the paginated id listing, fetches each user's detail
// record, keeps only users with a valid US phone number and reports the
// youngest of them ordered by name:
//   - Aggregator: continuation-token pagination with partial-failure tolerance
//   - SelectTop / SelectTopFive: youngest-N selection followed by a name sort
//   - UserSorter: stable single-field sorting of users
//   - Pipeline: Aggregator and selection wired together for one run
//
// Transport and decoding live behind the ListFetcher and DetailFetcher
// interfaces; see internal/directory for the HTTP implementation.
package engine
