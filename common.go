package derx509

/*
common.go contains small stdlib aliases and helpers used throughout this
package, following the same convention as the wider ASN.1/X.690 Go ecosystem
this package was grounded on: a single file of function-variable aliases so
call sites read as plain verbs instead of repeating package-qualified stdlib
names everywhere.
*/

import (
	"errors"
	"strconv"
	"strings"
)

var (
	mkerr func(string) error          = errors.New
	itoa  func(int) string            = strconv.Itoa
	join  func([]string, string) string = strings.Join
)

func bool2str(b bool) (s string) {
	if s = "false"; b {
		s = "true"
	}
	return
}
