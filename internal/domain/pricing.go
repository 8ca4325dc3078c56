package domain

// BookingTotal computes the price of a stay: nightly rate times nights.
func BookingTotal(nightlyPrice float64, numNights int) float64 {
	return nightlyPrice * float64(numNights)
}

// OrderTotal computes a catalog order total. The result truncates to an
// integer because order totals are stored in integer columns.
func OrderTotal(unitPrice float64, quantity int) int64 {
	return int64(unitPrice * float64(quantity))
}
