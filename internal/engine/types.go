package engine

import (
	"context"
	"io"
)

// User is a single user detail record.
type User struct {
	ID          int    `json:"id"     yaml:"id"`
	Name        string `json:"name"   yaml:"name"`
	Age         int    `json:"age"    yaml:"age"`
	PhoneNumber string `json:"number" yaml:"number"`
}

// ListPage is one page of the id listing.
// An empty NextToken means there are no further pages.
type ListPage struct {
	IDs       []int
	NextToken string
}

// HasNext reports whether another page follows this one.
func (p ListPage) HasNext() bool {
	return p.NextToken != ""
}

// ListFetcher retrieves one page of user ids. An empty token requests the first page.
type ListFetcher interface {
	FetchPage(ctx context.Context, token string) (ListPage, error)
}

// DetailFetcher retrieves a single user record.
// It returns ErrUserAbsent when the service has no usable record for id,
// and a *FetchError for transport or decode failures.
type DetailFetcher interface {
	FetchDetail(ctx context.Context, id int) (User, error)
}

// PhoneMatcher decides whether a phone number is acceptable.
type PhoneMatcher interface {
	IsValid(phoneNumber string) bool
}

// AggregateResult is the outcome of one pagination run.
type AggregateResult struct {
	// Users holds qualifying users in the order their ids were listed.
	Users []User

	// Pages is the number of list pages fetched successfully.
	Pages int

	// Fetched is the number of detail records retrieved.
	Fetched int

	// Skipped is the number of ids whose detail was absent or failed.
	Skipped int

	// Rejected is the number of fetched users with an invalid phone number.
	Rejected int

	// Err is the failure that stopped pagination early, nil if every page was read.
	Err error
}

// Partial reports whether pagination stopped before the last page.
func (r AggregateResult) Partial() bool {
	return r.Err != nil
}

// Report is the final output of a pipeline run.
type Report struct {
	// Users is the selected users in display order.
	Users []User

	// Qualified is the number of users that passed the phone filter.
	Qualified int

	// Pages is the number of list pages read.
	Pages int

	// Err is the pagination failure, if any. The report is still usable.
	Err error
}

// Partial reports whether the report was built from truncated pagination.
func (r Report) Partial() bool {
	return r.Err != nil
}

// Reporter renders a report.
type Reporter interface {
	Render(w io.Writer, report Report) error
}
