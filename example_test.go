// Copyright 2013 The Go Authors.
// Copyright 2015 Randall Farmer.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keysort_test

import (
	"fmt"

	"github.com/cps-sort/keysort"
)

func Example_strings() {
	groceries := keysort.StringSlice{"peppers", "tortillas", "tomatoes", "cheese"}
	groceries.Sort() // or keysort.BytesSlice([][]byte).Sort()
	fmt.Println(groceries)
	// Output: [cheese peppers tomatoes tortillas]
}

// User is a stand-in for any record type whose sort key lives behind a
// field access rather than being the value itself.
type User struct {
	Username string
}

// Users wraps a slice of User so it can implement keysort.Accessor without
// needing User itself to expose any sort-specific methods.
type Users []User

func (u Users) Len() int                        { return len(u) }
func (u Users) GetKey(i int) []byte              { return []byte(u[i].Username) }
func (u Users) GetU64Prefix(i, offset int) uint64 { return keysort.DefaultU64Prefix(u, i, offset) }

func Example_custom() {
	users := Users{
		{Username: "carol"},
		{Username: "alice"},
		{Username: "bob"},
	}
	indices := keysort.SortIndices(users)
	for _, i := range indices {
		fmt.Println(users[i].Username)
	}
	// Output:
	// alice
	// bob
	// carol
}
