package model

import (
	"database/sql"
	"time"
)

const DefaultPerPage = 20

type PageParams struct {
	Page    int
	PerPage int
}

// Normalize clamps out-of-range paging values instead of letting them
// reach the database as negative offsets.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	return p
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

func NewPagination(p PageParams, total int) Pagination {
	p = p.Normalize()
	pages := 0
	if total > 0 {
		pages = (total + p.PerPage - 1) / p.PerPage
	}
	return Pagination{
		Page:    p.Page,
		PerPage: p.PerPage,
		Pages:   pages,
		Total:   total,
	}
}

type Book struct {
	ISBN            string     `json:"isbn" db:"isbn"`
	Title           string     `json:"title" db:"title"`
	Price           float64    `json:"price" db:"price"`
	Stock           int        `json:"stock" db:"stock"`
	Pages           int        `json:"pages" db:"pages"`
	Description     string     `json:"description" db:"description"`
	Image           string     `json:"image" db:"image"`
	PublicationDate *time.Time `json:"publicationDate" db:"publication_date"`
	Author          string     `json:"author" db:"author"`
	Publisher       string     `json:"publisher" db:"publisher"`
	CategoryName    string     `json:"categoryName" db:"category_name"`
}

// BookFields is the writable part of a book. Request bodies keep the
// storefront's snake_case field names.
type BookFields struct {
	Title           string  `json:"title" validate:"required"`
	AuthorName      string  `json:"author_name" validate:"required"`
	PublisherName   string  `json:"publisher_name" validate:"required"`
	CategoryName    string  `json:"category_name" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	Stock           int     `json:"stock_quantity" validate:"gte=0"`
	Pages           int     `json:"pages" validate:"gte=0"`
	Description     string  `json:"description"`
	Image           string  `json:"image"`
	PublicationDate string  `json:"publication_date"`
}

type CreateBookRequest struct {
	ISBN string `json:"isbn" validate:"required"`
	BookFields
}

type User struct {
	ID         int       `json:"id" db:"id"`
	FirstName  string    `json:"firstName" db:"first_name"`
	LastName   string    `json:"lastName" db:"last_name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Address    string    `json:"address" db:"address"`
	City       string    `json:"city" db:"city"`
	PostalCode string    `json:"postalCode" db:"postal_code"`
	UserType   string    `json:"user_type" db:"user_type"`
	JoinedDate time.Time `json:"joinedDate" db:"joined_date"`
	Avatar     string    `json:"avatar" db:"-"`
}

type UpdateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	UserType string `json:"user_type" validate:"required"`
}

type OrderSummary struct {
	ID          int       `json:"id" db:"id"`
	OrderNumber string    `json:"orderNumber" db:"order_number"`
	TotalAmount float64   `json:"totalAmount" db:"total_amount"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	ItemsCount  int       `json:"itemsCount" db:"items_count"`
}

type OrderItem struct {
	ID           int     `json:"id" db:"id"`
	Quantity     int     `json:"quantity" db:"quantity"`
	PricePerItem float64 `json:"pricePerItem" db:"price_per_item"`
	TotalPrice   float64 `json:"totalPrice" db:"total_price"`
	Title        string  `json:"title" db:"title"`
	Image        string  `json:"image" db:"image"`
	Author       string  `json:"author" db:"author"`
}

// OrderRow is the raw join of an order with its (possibly deleted) customer.
type OrderRow struct {
	ID                 int            `db:"id"`
	OrderNumber        string         `db:"order_number"`
	TotalAmount        float64        `db:"total_amount"`
	PaymentStatus      string         `db:"payment_status"`
	FirstName          sql.NullString `db:"first_name"`
	LastName           sql.NullString `db:"last_name"`
	Email              sql.NullString `db:"email"`
	Phone              sql.NullString `db:"phone"`
	ShippingAddress    sql.NullString `db:"shipping_address"`
	ShippingCity       sql.NullString `db:"shipping_city"`
	ShippingPostalCode sql.NullString `db:"shipping_postal_code"`
}

type OrderTotals struct {
	Subtotal     float64 `json:"subtotal"`
	TaxAmount    float64 `json:"taxAmount"`
	ShippingCost float64 `json:"shippingCost"`
	TotalAmount  float64 `json:"totalAmount"`
}

type OrderCustomer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type OrderShipping struct {
	FullAddress string `json:"fullAddress"`
}

type OrderPayment struct {
	Status string `json:"status"`
}

type OrderDetail struct {
	ID          int           `json:"id"`
	OrderNumber string        `json:"orderNumber"`
	Items       []OrderItem   `json:"items"`
	Totals      OrderTotals   `json:"totals"`
	Customer    OrderCustomer `json:"customer"`
	Shipping    OrderShipping `json:"shipping"`
	Payment     OrderPayment  `json:"payment"`
}

type UpdateOrderRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}

type Category struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Description string `json:"description"`
}

type Stats struct {
	TotalUsers      int     `json:"totalUsers" db:"total_users"`
	TotalBooks      int     `json:"totalBooks" db:"total_books"`
	TotalOrders     int     `json:"totalOrders" db:"total_orders"`
	TotalRevenue    float64 `json:"totalRevenue" db:"total_revenue"`
	PendingOrders   int     `json:"pendingOrders" db:"pending_orders"`
	CompletedOrders int     `json:"completedOrders" db:"completed_orders"`
}

type LowStockBook struct {
	ID     string `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Stock  int    `json:"stock" db:"stock"`
	Image  string `json:"image" db:"image"`
	Author string `json:"author" db:"author"`
}
