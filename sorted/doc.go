// Package sorted implements single-pass algorithms over sequences that are
// already sorted by a comparator: merging two sorted inputs, removing adjacent
// duplicates, and checking the sortedness precondition.
//
// Sortedness of the inputs is a caller contract. Merge trusts it; Dedup checks
// each adjacent pair it visits and fails with errors.ErrNotSorted when the
// contract is broken. A failed call returns no partial result.
package sorted
