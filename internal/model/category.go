package model // package model holds the persistent domain types of the FAQ service

import (
    "errors"
    "fmt"
    "strings"
)

// Category classifies an FAQ entry. The set of categories is closed: there
// is no category table and no runtime category management. A category is
// stored as its canonical upper-case name in the `faqs.category` column and
// compared by value.
type Category string

// The canonical category tags. These mirror the business taxonomy of the
// shopping mall (shipping, refunds, payment, membership and a catch-all).
const (
    CategoryGeneralFAQ                 Category = "GENERAL_FAQ"                  // frequently asked questions
    CategoryShipping                   Category = "SHIPPING"                     // delivery related
    CategoryCancellationRefundExchange Category = "CANCELLATION_REFUND_EXCHANGE" // cancel / refund / exchange related
    CategoryPayment                    Category = "PAYMENT"                      // payment related
    CategoryMember                     Category = "MEMBER"                       // membership related
    CategoryOther                      Category = "OTHER"                        // everything else
)

// ErrInvalidCategory is returned by ParseCategory when the input does not
// name any known category. Handlers should translate this into an HTTP 400
// response.
var ErrInvalidCategory = errors.New("invalid category")

// categories lists every valid tag in declaration order.
var categories = []Category{
    CategoryGeneralFAQ,
    CategoryShipping,
    CategoryCancellationRefundExchange,
    CategoryPayment,
    CategoryMember,
    CategoryOther,
}

// Categories returns the full closed set of category tags. The returned
// slice is a copy, so callers may not mutate the canonical set.
func Categories() []Category {
    out := make([]Category, len(categories))
    copy(out, categories)
    return out
}

// ParseCategory resolves a client-supplied category reference into a
// canonical tag. Matching is case-insensitive and exact after trimming
// surrounding whitespace. Unknown names fail with ErrInvalidCategory,
// wrapping the offending input for the error message.
func ParseCategory(s string) (Category, error) {
    name := strings.ToUpper(strings.TrimSpace(s))
    for _, c := range categories {
        if string(c) == name {
            return c, nil
        }
    }
    return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}
