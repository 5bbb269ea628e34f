// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"strings"
)

// FilePrefix starts every profile filename.
const FilePrefix = "positional_matrices"

// Filename returns "positional_matrices_<state>_<drawSession>.json" with the
// draw session lower-cased. Both labels are opaque here; validating them is the
// caller's job.
func Filename(state, drawSession string) string {
	return fmt.Sprintf("%s_%s_%s.json", FilePrefix, state, strings.ToLower(drawSession))
}
