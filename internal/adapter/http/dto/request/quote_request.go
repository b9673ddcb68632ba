package request

import "strings"

// QuoteRequest is the payload accepted when submitting a new quote.
type QuoteRequest struct {
	OpportunityID   string `json:"opportunity_id" binding:"required"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerCompany string `json:"customer_company"`
}

func (r QuoteRequest) ResolveOpportunityID() string {
	return strings.TrimSpace(r.OpportunityID)
}

func (r QuoteRequest) ResolveCustomerName() string {
	return strings.TrimSpace(r.CustomerName)
}

func (r QuoteRequest) ResolveCustomerEmail() string {
	return strings.TrimSpace(r.CustomerEmail)
}

func (r QuoteRequest) ResolveCustomerCompany() string {
	return strings.TrimSpace(r.CustomerCompany)
}

// StatusRequest is the payload accepted by the status-change endpoint.
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}
