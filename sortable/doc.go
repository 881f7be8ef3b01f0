// Package sortable provides the Sortable capability and wrapper types for
// primitive types that implement it.
//
// # Overview
//
// The sort, merge and dedup algorithms in this module take an explicit
// [github.com/amp-labs/amp-containers/compare.Comparator]. When the ordering
// is a property of the element type itself, implement [Sortable] on the type
// and derive the comparator with [Comparator]:
//
//	values := []sortable.Int{5, 3, 8}
//	sorting.SortSlice(values, sortable.Comparator[sortable.Int]())
//	// values is now [3 5 8]
//
// The ordering is required statically by the type parameter constraint; there
// is no reflection-based fallback to a "natural" order.
//
// # Creating Custom Sortable Types
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// Equals and LessThan must agree: for any a and b exactly one of a.LessThan(b),
// b.LessThan(a) and a.Equals(b) holds.
package sortable
