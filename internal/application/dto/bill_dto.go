package dto

import "time"

// BillItemRequest one line of a bill: product, quantity and rate in minor
// currency units. The line total is never accepted from the caller.
type BillItemRequest struct {
	ItemName string `json:"item_name" validate:"required,min=1"`
	Quantity int64  `json:"quantity" validate:"min=0"`
	Rate     int64  `json:"rate" validate:"min=0"`
}

// CreateBillRequest body for POST /bills.
type CreateBillRequest struct {
	FactoryID  string            `json:"factory_id" validate:"required,uuid"`
	GSTEnabled bool              `json:"gst_enabled"`
	GSTPercent int               `json:"gst_percent" validate:"min=0,max=100"`
	Items      []BillItemRequest `json:"items" validate:"required,min=1"`
}

// BillSummaryResponse the canonical checkout triple returned on creation.
type BillSummaryResponse struct {
	BillID     string `json:"bill_id"`
	SubTotal   int64  `json:"sub_total"`
	GSTAmount  int64  `json:"gst_amount"`
	GrandTotal int64  `json:"grand_total"`
}

// BillResponse bill with totals recomputed from its current items.
type BillResponse struct {
	ID         string    `json:"id"`
	FactoryID  string    `json:"factory_id"`
	GSTEnabled bool      `json:"gst_enabled"`
	GSTPercent int       `json:"gst_percent"`
	SubTotal   int64     `json:"sub_total"`
	GSTAmount  int64     `json:"gst_amount"`
	GrandTotal int64     `json:"grand_total"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateBillRequest body for PUT /bills/:bill_id. Full replacement of the
// item set, never a partial merge.
type UpdateBillRequest struct {
	Items []BillItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateBillResponse confirmation plus the recomputed totals triple.
type UpdateBillResponse struct {
	Message    string `json:"message"`
	SubTotal   int64  `json:"sub_total"`
	GSTAmount  int64  `json:"gst_amount"`
	GrandTotal int64  `json:"grand_total"`
}

// BillPDFResponse path of the rendered document on disk.
type BillPDFResponse struct {
	Message  string `json:"message"`
	FilePath string `json:"file_path"`
}

// WhatsAppLinkResponse pre-filled wa.me deep link for sharing a bill.
type WhatsAppLinkResponse struct {
	WhatsAppLink string `json:"whatsapp_link"`
}
