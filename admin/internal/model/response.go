package model

// Response envelopes match the storefront admin API wire format.

type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type BookList struct {
	Success    bool       `json:"success"`
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}

type UserList struct {
	Success    bool       `json:"success"`
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type OrderList struct {
	Success    bool           `json:"success"`
	Orders     []OrderSummary `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

type OrderDetailResponse struct {
	Success bool        `json:"success"`
	Order   OrderDetail `json:"order"`
}

type CategoryList struct {
	Success    bool       `json:"success"`
	Categories []Category `json:"categories"`
}

type StatsResponse struct {
	Success       bool           `json:"success"`
	Stats         Stats          `json:"stats"`
	RecentOrders  []OrderSummary `json:"recentOrders"`
	LowStockBooks []LowStockBook `json:"lowStockBooks"`
}
