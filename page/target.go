package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cdarip/cdarip/constant"
)

// ErrNotTargetPage reports a page outside the supported site.
var ErrNotTargetPage = errors.New("not a supported page")

// CheckTarget verifies that pageURL belongs to the site behind prefix.
// An empty prefix means constant.TargetPagePrefix.
func CheckTarget(pageURL, prefix string) error {
	if prefix == "" {
		prefix = constant.TargetPagePrefix
	}

	if !strings.HasPrefix(pageURL, prefix) {
		return fmt.Errorf("%w: works only on %q pages", ErrNotTargetPage, prefix+"*")
	}

	return nil
}
