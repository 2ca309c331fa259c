package api

// UpdateOrderRequest sets a new status and optionally appends an admin
// note; existing notes are never overwritten.
// swagger:model api.UpdateOrderRequest
type UpdateOrderRequest struct {
	Status string `form:"status" validate:"required,oneof=new processing done cancelled" example:"processing"`
	Note   string `form:"note"`
}
