package http

import "time"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerUserRequest struct {
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type bookRequest struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Category      string  `json:"category"`
	CoverImage    string  `json:"coverImage"`
}

type bookResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	Category      string  `json:"category"`
	CoverImage    string  `json:"coverImage"`
}

type orderLineRequest struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

type placeOrderRequest struct {
	ShippingAddress string             `json:"shippingAddress"`
	BillingAddress  string             `json:"billingAddress"`
	Items           []orderLineRequest `json:"items"`
}

// createdResponse reports the server-generated identifier of a newly
// created resource.
type createdResponse struct {
	ID string `json:"id"`
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	ID       string  `json:"id"`
	BookID   string  `json:"bookId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"userId"`
	OrderDate       time.Time           `json:"orderDate"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shippingAddress"`
	BillingAddress  string              `json:"billingAddress"`
	TotalAmount     float64             `json:"totalAmount"`
	Items           []orderItemResponse `json:"items"`
}

type addReviewRequest struct {
	BookID     string `json:"bookId"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
}

type reviewResponse struct {
	ID         string    `json:"id"`
	BookID     string    `json:"bookId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	ReviewText string    `json:"reviewText"`
	Rating     int       `json:"rating"`
	ReviewDate time.Time `json:"reviewDate"`
}
