package outreach

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// ReviewURL builds the public review link for a customer:
//
//	<base>/review/<customerID>?name=<name>&business=<business>
//
// The query keys are written in this fixed order; the link format is shared
// with the review form and must stay byte-stable for identical inputs.
func ReviewURL(baseURL string, customerID uuid.UUID, customerName, businessName string) string {
	return fmt.Sprintf("%s/review/%s?name=%s&business=%s",
		strings.TrimRight(baseURL, "/"),
		customerID,
		url.QueryEscape(customerName),
		url.QueryEscape(businessName),
	)
}
