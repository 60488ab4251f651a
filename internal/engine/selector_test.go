package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSelectTopFive_TwoPassOrdering(t *testing.T) {
	users := []User{
		{ID: 1, Age: 30, Name: "Bob"},
		{ID: 2, Age: 20, Name: "Zoe"},
		{ID: 3, Age: 20, Name: "Amy"},
		{ID: 4, Age: 40, Name: "Tom"},
		{ID: 5, Age: 20, Name: "Cid"},
		{ID: 6, Age: 25, Name: "Dan"},
	}
	original := append([]User(nil), users...)

	got := SelectTopFive(users)

	want := []User{
		{ID: 3, Age: 20, Name: "Amy"},
		{ID: 1, Age: 30, Name: "Bob"},
		{ID: 5, Age: 20, Name: "Cid"},
		{ID: 6, Age: 25, Name: "Dan"},
		{ID: 2, Age: 20, Name: "Zoe"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SelectTopFive() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(original, users); diff != "" {
		t.Errorf("input was modified (-want +got):\n%s", diff)
	}
}

func TestSelectTopFive_AgeTiesKeepAccumulationOrder(t *testing.T) {
	// Six users of the same age: the first five accumulated win.
	users := []User{
		{ID: 1, Age: 20, Name: "F"},
		{ID: 2, Age: 20, Name: "E"},
		{ID: 3, Age: 20, Name: "D"},
		{ID: 4, Age: 20, Name: "C"},
		{ID: 5, Age: 20, Name: "B"},
		{ID: 6, Age: 20, Name: "A"},
	}

	got := SelectTopFive(users)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, ids(got))
}

func TestSelectTopFive_NameTiesKeepAgeOrder(t *testing.T) {
	users := []User{
		{ID: 1, Age: 33, Name: "Sam"},
		{ID: 2, Age: 21, Name: "Sam"},
		{ID: 3, Age: 27, Name: "Sam"},
	}

	got := SelectTopFive(users)

	assert.Equal(t, []int{2, 3, 1}, ids(got))
}

func TestSelectTop_FewerThanLimit(t *testing.T) {
	users := []User{
		{ID: 1, Age: 50, Name: "Yves"},
		{ID: 2, Age: 18, Name: "Kim"},
		{ID: 3, Age: 35, Name: "Ann"},
	}

	got := SelectTopFive(users)

	assert.Len(t, got, 3)
	assert.Equal(t, []string{"Ann", "Kim", "Yves"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestSelectTop_Limits(t *testing.T) {
	users := []User{
		{ID: 1, Age: 40, Name: "Dee"},
		{ID: 2, Age: 10, Name: "Cal"},
		{ID: 3, Age: 30, Name: "Bea"},
		{ID: 4, Age: 20, Name: "Abe"},
	}

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "one", n: 1, want: []int{2}},
		{name: "two", n: 2, want: []int{4, 2}},
		{name: "all", n: 10, want: []int{4, 3, 2, 1}},
		{name: "zero", n: 0, want: []int{}},
		{name: "negative", n: -3, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SelectTop(users, tt.n)))
		})
	}
}

func TestSelectTopFive_Empty(t *testing.T) {
	assert.Empty(t, SelectTopFive(nil))
	assert.NotNil(t, SelectTopFive(nil))
	assert.Empty(t, SelectTopFive([]User{}))
}
