// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve_test

import (
	"fmt"

	"github.com/destiny/z85/curve"
)

func ExampleNewKeyPairFromSecretZ85() {
	kp, err := curve.NewKeyPairFromSecretZ85("D:)Q[IlAW!ahhC2ac:9*A}h:p?([4%wOTJ%JR%cs")
	if err != nil {
		panic(err)
	}
	fmt.Println(kp.PublicKeyZ85())
	// Output: Yne@$w-vo<fVvi]a<NY6T1ed:M$fCG*[IaLV{hID
}
