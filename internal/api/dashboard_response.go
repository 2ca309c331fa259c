package api

// DashboardResponse is the admin landing page summary.
// swagger:model api.DashboardResponse
type DashboardResponse struct {
	OrdersCount    int             `json:"orders_count" example:"12"`
	ProductsCount  int             `json:"products_count" example:"4"`
	ArticlesCount  int             `json:"articles_count" example:"2"`
	UsersCount     int             `json:"users_count" example:"3"`
	NewOrdersCount int             `json:"new_orders_count" example:"2"`
	RecentOrders   []OrderResponse `json:"recent_orders"`
}
