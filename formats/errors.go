// SPDX-License-Identifier: EPL-2.0

package formats

import "errors"

var ErrFormatNotSupported = errors.New("format not supported")
