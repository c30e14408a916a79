// Copyright 2025 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testutil

// CurveKeys are the CURVE key pairs used by the libzmq test suite. Each
// public key is the X25519 public key of the matching secret key.
var CurveKeys = struct {
	ServerPublicZ85 string
	ServerSecretZ85 string
	ClientPublicZ85 string
	ClientSecretZ85 string
}{
	ServerPublicZ85: "rq:rM>}U?@Lns47E1%kR.o@n%FcmmsL/@{H8]yf7",
	ServerSecretZ85: "JTKVSB%%)wK0E.X)V>+}o?pNmC{O&4W4b!Ni{Lh6",
	ClientPublicZ85: "Yne@$w-vo<fVvi]a<NY6T1ed:M$fCG*[IaLV{hID",
	ClientSecretZ85: "D:)Q[IlAW!ahhC2ac:9*A}h:p?([4%wOTJ%JR%cs",
}
