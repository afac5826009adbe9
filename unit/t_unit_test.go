// Copyright 2016 The Fibsec Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_parse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse01")

	s, err := Parse("US")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if s != US {
		tst.Errorf("wrong system: %v\n", s)
		return
	}

	s, err = Parse("SI")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if s != SI {
		tst.Errorf("wrong system: %v\n", s)
		return
	}

	_, err = Parse("metric")
	if err == nil {
		tst.Errorf("test failed: error must be non-nil for unknown tag\n")
		return
	}

	if US.String() != "US" || SI.String() != "SI" {
		tst.Errorf("wrong tags\n")
		return
	}
	if System(0).Valid() {
		tst.Errorf("zero system must be invalid\n")
		return
	}
}
