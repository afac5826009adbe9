// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

// IDSeq allocates sequential material identifiers. It is owned by the
// caller and threaded through every generation call, so composition order
// stays deterministic and the numeric-offset contract of each shape
// family holds regardless of nesting. There is no global counter.
//
// On a failed generation call the sequence may have advanced past ids
// that were never committed; committed emission state is never partial.
type IDSeq struct {
	next int
}

// NewIDSeq returns a sequence whose first id is start
func NewIDSeq(start int) *IDSeq {
	return &IDSeq{next: start}
}

// Next returns the next id and advances the sequence
func (o *IDSeq) Next() int {
	id := o.next
	o.next++
	return id
}

// Peek returns the next id without advancing
func (o *IDSeq) Peek() int {
	return o.next
}
