package engine

import (
	"context"
	"errors"
	"strings"
)

// fakeLister serves pages keyed by the token that requests them.
type fakeLister struct {
	pages    map[string]ListPage
	failures map[string]error
	calls    []string
}

func (f *fakeLister) FetchPage(_ context.Context, token string) (ListPage, error) {
	f.calls = append(f.calls, token)
	if err, ok := f.failures[token]; ok {
		return ListPage{}, err
	}
	page, ok := f.pages[token]
	if !ok {
		return ListPage{}, &FetchError{Kind: TransportFailure, Op: "list", Err: errors.New("no such page")}
	}
	return page, nil
}

// fakeDetails serves users by id; ids in failures return that error.
type fakeDetails struct {
	users    map[int]User
	failures map[int]error
	calls    []int
}

func (f *fakeDetails) FetchDetail(_ context.Context, id int) (User, error) {
	f.calls = append(f.calls, id)
	if err, ok := f.failures[id]; ok {
		return User{}, err
	}
	user, ok := f.users[id]
	if !ok {
		return User{}, ErrUserAbsent
	}
	return user, nil
}

// validPrefix accepts phone numbers starting with "555".
type validPrefix struct{}

func (validPrefix) IsValid(s string) bool {
	return strings.HasPrefix(s, "555")
}

func usersWithValidPhones(ids ...int) map[int]User {
	users := make(map[int]User, len(ids))
	for _, id := range ids {
		users[id] = User{ID: id, Name: "user", Age: id, PhoneNumber: "555-123-4567"}
	}
	return users
}

func ids(users []User) []int {
	out := make([]int, len(users))
	for i, u := range users {
		out[i] = u.ID
	}
	return out
}
