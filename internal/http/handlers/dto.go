package handlers

import "time"

type ProductRequest struct {
	Name       string    `json:"name"`
	Barcode    string    `json:"barcode,omitempty"`
	BatchID    string    `json:"batch_id,omitempty"`
	ExpiryDate time.Time `json:"expiry_date"`
	Quantity   int       `json:"quantity"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
}

// ProductUpdateRequest is a partial update; absent fields are untouched.
type ProductUpdateRequest struct {
	Name       *string    `json:"name,omitempty"`
	Barcode    *string    `json:"barcode,omitempty"`
	BatchID    *string    `json:"batch_id,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Quantity   *int       `json:"quantity,omitempty"`
	Category   *string    `json:"category,omitempty"`
	Location   *string    `json:"location,omitempty"`
}

type ProductResponse struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Barcode    string    `json:"barcode,omitempty"`
	BatchID    string    `json:"batch_id,omitempty"`
	ExpiryDate time.Time `json:"expiry_date"`
	Quantity   int       `json:"quantity"`
	Category   string    `json:"category"`
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type SettingsRequest struct {
	ThresholdDays      int    `json:"threshold_days"`
	EmailNotifications bool   `json:"email_notifications"`
	AppNotifications   bool   `json:"app_notifications"`
	EmailAddress       string `json:"email_address,omitempty"`
}

type SettingsResponse struct {
	ThresholdDays      int    `json:"threshold_days"`
	EmailNotifications bool   `json:"email_notifications"`
	AppNotifications   bool   `json:"app_notifications"`
	EmailAddress       string `json:"email_address,omitempty"`
	LastUpdated        string `json:"last_updated,omitempty"`
}

type PendingNotificationResponse struct {
	Message string `json:"message"`
}

type DecodeRequest struct {
	Barcode string `json:"barcode"`
}

type DecodeResponse struct {
	Barcode string           `json:"barcode"`
	Product *ProductResponse `json:"product,omitempty"`
	Info    *BarcodeInfo     `json:"info,omitempty"`
}

type BarcodeInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ScanEventResponse struct {
	ID        int    `json:"id"`
	Barcode   string `json:"barcode"`
	ProductID string `json:"product_id,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ScansSearchResult struct {
	Data []ScanEventResponse `json:"data"`
	Meta Meta                `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
