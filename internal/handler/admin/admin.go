// Package admin implements the back-office handlers. Every route here is
// mounted behind the admin middleware.
package admin

import (
	"context"
	"strconv"
	"time"

	"storefront/internal/cache"
	"storefront/internal/store"
	"storefront/internal/upload"
	"storefront/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	timeNow = time.Now

	saveImage   = upload.SaveImage
	removeImage = upload.Remove

	listArticles   = store.ListArticles
	getArticleByID = store.GetArticleByID
	createArticle  = store.CreateArticle
	updateArticle  = store.UpdateArticle
	deleteArticle  = store.DeleteArticle

	listProducts          = store.ListProducts
	getProductByID        = store.GetProductByID
	createProduct         = store.CreateProduct
	updateProduct         = store.UpdateProduct
	deleteProduct         = store.DeleteProduct
	toggleProduct         = store.ToggleProduct
	countOrdersForProduct = store.CountOrdersForProduct

	listOrders        = store.ListOrders
	getOrderByID      = store.GetOrderByID
	recentOrders      = store.RecentOrders
	updateOrderStatus = store.UpdateOrderStatus

	listUsers = store.ListUsers

	countOrders            = store.CountOrders
	countOrdersByStatus    = store.CountOrdersByStatus
	countActiveProducts    = store.CountActiveProducts
	countPublishedArticles = store.CountPublishedArticles
	countUsers             = store.CountUsers
)

const adminPerPage = 20

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// invalidateProductsCache drops the cached /api/products payload off the
// request path.
func invalidateProductsCache(wp worker.Pool, cch cache.Cache, key string) {
	wp.Submit(func() {
		if err := cch.Del(context.Background(), key).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache invalidation failed")
		}
	})
}
