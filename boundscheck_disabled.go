// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build membuf_nobounds

package membuf

// boundsCheckEnabled gates range validation on all typed accessors.
// With the membuf_nobounds tag the caller owes every range precondition.
const boundsCheckEnabled = false
