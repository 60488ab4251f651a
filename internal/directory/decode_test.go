package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/topfive/internal/engine"
)

func TestDecodeListPage(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    engine.ListPage
		wantErr bool
	}{
		{
			name: "with token",
			body: `{"result":[1,2,3],"token":"abc"}`,
			want: engine.ListPage{IDs: []int{1, 2, 3}, NextToken: "abc"},
		},
		{
			name: "null token",
			body: `{"result":[4],"token":null}`,
			want: engine.ListPage{IDs: []int{4}},
		},
		{
			name: "missing token",
			body: `{"result":[]}`,
			want: engine.ListPage{IDs: []int{}},
		},
		{
			name: "missing result",
			body: ` {"token":"t"} `,
			want: engine.ListPage{IDs: []int{}, NextToken: "t"},
		},
		{name: "empty body", body: "", wantErr: true},
		{name: "null body", body: "null", wantErr: true},
		{name: "wrong id type", body: `{"result":["a"]}`, wantErr: true},
		{name: "not json", body: `<html>`, wantErr: true},
		{name: "array body", body: `[1,2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeListPage([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUser(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		got, err := decodeUser([]byte(`{"id":7,"name":"Ada","age":36,"number":"555 123 4567","bio":"x"}`))
		require.NoError(t, err)
		assert.Equal(t, engine.User{ID: 7, Name: "Ada", Age: 36, PhoneNumber: "555 123 4567"}, got)
	})

	t.Run("empty is absent", func(t *testing.T) {
		_, err := decodeUser([]byte("  "))
		assert.ErrorIs(t, err, engine.ErrUserAbsent)
	})

	t.Run("null is absent", func(t *testing.T) {
		_, err := decodeUser([]byte("null"))
		assert.ErrorIs(t, err, engine.ErrUserAbsent)
	})

	t.Run("wrong age type", func(t *testing.T) {
		_, err := decodeUser([]byte(`{"id":7,"age":"old"}`))
		require.Error(t, err)
		assert.NotErrorIs(t, err, engine.ErrUserAbsent)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := decodeUser([]byte(`{"id":7,`))
		assert.Error(t, err)
	})
}
