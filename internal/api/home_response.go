package api

// HomeResponse carries the front page: latest published news and a
// selection of active products.
// swagger:model api.HomeResponse
type HomeResponse struct {
	News     []ArticleResponse `json:"news"`
	Products []ProductResponse `json:"products"`
}
