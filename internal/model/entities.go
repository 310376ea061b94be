package model

// Entities holds the structured values the extractor pulled out of a complaint
// narrative. All fields are optional; a zero value means nothing was found.
// Consumed by the priority mapper and remediation selector, not the classifier.
type Entities struct {
	Amount         string   `json:"amount,omitempty"`          // first amount mention as written, e.g. "₹15,000"
	PhoneNumbers   []string `json:"phone_numbers,omitempty"`
	UPIID          string   `json:"upi_id,omitempty"`          // first payment handle, e.g. "victim@okaxis"
	URLs           []string `json:"urls,omitempty"`
	Platform       string   `json:"platform,omitempty"`        // first platform mention, lowercase
	AccountNumbers []string `json:"account_numbers,omitempty"`
	TransactionIDs []string `json:"transaction_ids,omitempty"`
	Dates          []string `json:"dates,omitempty"`
	BankNames      []string `json:"bank_names,omitempty"`
}
