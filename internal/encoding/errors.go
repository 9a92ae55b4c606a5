// Copyright 2026 The Multicoin Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package encoding

import "errors"

// ErrNotEnoughData is returned when unmarshalling runs out of bytes.
var ErrNotEnoughData = errors.New("not enough data")

// ErrOverflow is returned when a varint overflows.
var ErrOverflow = errors.New("overflow")
