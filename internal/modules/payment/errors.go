package payment

import "errors"

var ErrNothingDue = errors.New("no unpaid orders to settle")
