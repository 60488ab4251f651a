package directory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rshade/topfive/internal/engine"
)

// listResponse is the list endpoint body.
type listResponse struct {
	Result []int   `json:"result"`
	Token  *string `json:"token"`
}

// userResponse is the detail endpoint body.
type userResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Number string `json:"number"`
}

var jsonNull = []byte("null")

// decodeListPage parses a list body. A null token means the last page.
func decodeListPage(body []byte) (engine.ListPage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return engine.ListPage{}, errors.New("empty list response")
	}

	var resp listResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return engine.ListPage{}, fmt.Errorf("decoding list response: %w", err)
	}

	page := engine.ListPage{IDs: resp.Result}
	if page.IDs == nil {
		page.IDs = []int{}
	}
	if resp.Token != nil {
		page.NextToken = *resp.Token
	}
	return page, nil
}

// decodeUser parses a detail body. An empty or null body is engine.ErrUserAbsent.
func decodeUser(body []byte) (engine.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return engine.User{}, engine.ErrUserAbsent
	}

	var resp userResponse
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return engine.User{}, fmt.Errorf("decoding user response: %w", err)
	}

	return engine.User{
		ID:          resp.ID,
		Name:        resp.Name,
		Age:         resp.Age,
		PhoneNumber: resp.Number,
	}, nil
}
