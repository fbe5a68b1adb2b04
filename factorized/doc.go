// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package factorized provides tensorized tensors held in factorized form
// (CP, block tensor-train and Tucker) that can be indexed without forming
// the full tensor.
//
// # Overview
//
// A tensorized shape is a sequence of modes. A plain mode is an ordinary
// axis; a grouped mode folds several logical axes into one flat axis:
//
//	(2,3),4  ->  flat shape [6 4]
//
// Indexing a factorized tensor takes one Index per mode (missing trailing
// modes keep everything) and returns a Result, which is either a smaller
// factorized tensor or a dense tensor.
//
// # Basic Usage
//
//	import "github.com/born-ml/tensorized/factorized"
//
//	func main() {
//	    tshape, _ := factorized.ParseShape("(2,3),4")
//	    tt, err := factorized.NewBlockTT(tshape, factorized.RankInt(3))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Row 0 of the grouped mode, every column: a dense [4] tensor.
//	    res, err := tt.GetItem(factorized.Point(0), factorized.Full{})
//
//	    // The same through NumPy-style notation.
//	    idx, _ := factorized.ParseIndex("0, :")
//	    res, err = tt.GetItem(idx...)
//	}
//
// # Errors
//
// Invalid user input (shapes, ranks, indices, factors) is reported as an
// error wrapping one of the Err* sentinels; out-of-range indices are
// reported as *IndexError.
//
// # Thread Safety
//
// Factorized tensors are immutable. Concurrent GetItem and ToTensor calls on
// the same value are safe.
package factorized
