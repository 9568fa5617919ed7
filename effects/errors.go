// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	ErrUnknownEffect = errors.New("unknown effect")
)
