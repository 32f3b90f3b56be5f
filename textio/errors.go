// SPDX-License-Identifier: MIT

package textio

import "errors"

// ErrBadData indicates a malformed file: an unreadable header or fewer
// values than the header declares. File-system failures are returned as
// wrapped os errors, not this sentinel.
var ErrBadData = errors.New("textio: malformed or insufficient data")
