package dto

// MonthlyReportResponse factory revenue summed over one calendar month.
type MonthlyReportResponse struct {
	FactoryID   string `json:"factory_id"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	TotalAmount int64  `json:"total_amount"`
}
