package pkg

import (
	"fmt"
	"regexp"
)

// Account ids follow the NEAR naming rules: lowercase alphanumeric
// segments separated by a single '.', '-' or '_'.
var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[-_])*[a-z\d]+\.)*([a-z\d]+[-_])*[a-z\d]+$`)

func ValidateAccountID(account string) error {
	if len(account) < 2 || len(account) > 64 {
		return fmt.Errorf("account id must be between 2 and 64 characters, got %d", len(account))
	}
	if !accountIDPattern.MatchString(account) {
		return fmt.Errorf("invalid account id %q", account)
	}

	return nil
}
