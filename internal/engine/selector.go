package engine

// TopCount is the number of users in the default report.
const TopCount = 5

// SelectTopFive returns the five youngest users ordered by name.
func SelectTopFive(users []User) []User {
	return SelectTop(users, TopCount)
}

// SelectTop returns the n youngest users ordered by name.
//
// Selection and display order are two separate stable passes: users are
// ordered by age (ties keep accumulation order), the first n are kept, and
// those are re-ordered by name (ties keep age order). This is not the same
// as a single age-then-name composite sort. The input is never modified.
func SelectTop(users []User, n int) []User {
	if n <= 0 || len(users) == 0 {
		return []User{}
	}

	sorter := NewUserSorter()

	youngest := sorter.Sort(users, SortFieldAge, SortOrderAsc)
	if len(youngest) > n {
		youngest = youngest[:n]
	}

	return sorter.Sort(youngest, SortFieldName, SortOrderAsc)
}
