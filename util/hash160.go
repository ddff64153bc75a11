// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	shaHash := sha256.Sum256(buf)
	ripeHasher := ripemd160.New()
	ripeHasher.Write(shaHash[:])
	return ripeHasher.Sum(nil)
}
