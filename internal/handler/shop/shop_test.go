package shop

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newGetCtx(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, path, name, val string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	c.SetParamNames(name)
	c.SetParamValues(val)
	return c, rec
}

func restore() {
	latestPublishedArticles = store.LatestPublishedArticles
	listPublishedArticles = store.ListPublishedArticles
	getArticleByID = store.GetArticleByID
	listActiveProducts = store.ListActiveProducts
	listCatalog = store.ListCatalog
	listCategories = store.ListCategories
	getProductByID = store.GetProductByID
	searchProducts = store.SearchProducts
}

func TestHomeHandler(t *testing.T) {
	e := echo.New()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		latestPublishedArticles = func(_ context.Context, _ database.DB, limit int) ([]model.Article, error) {
			require.Equal(t, 5, limit)
			return []model.Article{{ID: 1, Title: "hello", IsPublished: true}}, nil
		}
		listActiveProducts = func(_ context.Context, _ database.DB, limit int) ([]model.Product, error) {
			require.Equal(t, 8, limit)
			return []model.Product{{ID: 2, Name: "laptop", IsActive: true, StockQuantity: 3}}, nil
		}

		ctx, rec := newGetCtx(e, "/")
		require.NoError(t, HomeHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"title":"hello"`)
		require.Contains(t, rec.Body.String(), `"in_stock":true`)
	})

	t.Run("articles error", func(t *testing.T) {
		t.Cleanup(restore)
		latestPublishedArticles = func(_ context.Context, _ database.DB, _ int) ([]model.Article, error) {
			return nil, errors.New("query")
		}

		ctx, rec := newGetCtx(e, "/")
		require.NoError(t, HomeHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestNewsListHandler(t *testing.T) {
	e := echo.New()

	t.Run("page defaults to 1", func(t *testing.T) {
		t.Cleanup(restore)
		listPublishedArticles = func(_ context.Context, _ database.DB, page, perPage int) ([]model.Article, int, error) {
			require.Equal(t, 1, page)
			require.Equal(t, 10, perPage)
			return []model.Article{{ID: 1, Title: "hello"}}, 1, nil
		}

		ctx, rec := newGetCtx(e, "/news")
		require.NoError(t, NewsListHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total":1`)
	})

	t.Run("explicit page", func(t *testing.T) {
		t.Cleanup(restore)
		listPublishedArticles = func(_ context.Context, _ database.DB, page, _ int) ([]model.Article, int, error) {
			require.Equal(t, 3, page)
			return nil, 21, nil
		}

		ctx, rec := newGetCtx(e, "/news?page=3")
		require.NoError(t, NewsListHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"page":3`)
	})
}

func TestNewsDetailHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, "/news/:id", "id", "abc")
		require.NoError(t, NewsDetailHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getArticleByID = func(_ context.Context, _ database.DB, _ int) (*model.Article, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newParamCtx(e, "/news/:id", "id", "9")
		require.NoError(t, NewsDetailHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		getArticleByID = func(_ context.Context, _ database.DB, id int) (*model.Article, error) {
			require.Equal(t, 9, id)
			return &model.Article{ID: 9, Title: "hello"}, nil
		}
		ctx, rec := newParamCtx(e, "/news/:id", "id", "9")
		require.NoError(t, NewsDetailHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"title":"hello"`)
	})
}

func TestCatalogHandler(t *testing.T) {
	e := echo.New()

	t.Run("filters forwarded", func(t *testing.T) {
		t.Cleanup(restore)
		listCatalog = func(_ context.Context, _ database.DB, f store.CatalogFilter) ([]model.Product, int, error) {
			require.Equal(t, "books", f.Category)
			require.NotNil(t, f.MinPrice)
			require.Equal(t, 10.0, *f.MinPrice)
			require.NotNil(t, f.MaxPrice)
			require.Equal(t, 50.0, *f.MaxPrice)
			require.True(t, f.InStockOnly)
			require.Equal(t, 2, f.Page)
			require.Equal(t, catalogPerPage, f.PerPage)
			return []model.Product{{ID: 1, Name: "handbook"}}, 13, nil
		}
		listCategories = func(_ context.Context, _ database.DB) ([]string, error) {
			return []string{"books", "electronics"}, nil
		}

		ctx, rec := newGetCtx(e, "/catalog?category=books&min_price=10&max_price=50&in_stock=1&page=2")
		require.NoError(t, CatalogHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total":13`)
		require.Contains(t, rec.Body.String(), `"categories":["books","electronics"]`)
	})

	t.Run("no filters", func(t *testing.T) {
		t.Cleanup(restore)
		listCatalog = func(_ context.Context, _ database.DB, f store.CatalogFilter) ([]model.Product, int, error) {
			require.Empty(t, f.Category)
			require.Nil(t, f.MinPrice)
			require.Nil(t, f.MaxPrice)
			require.False(t, f.InStockOnly)
			require.Equal(t, 1, f.Page)
			return nil, 0, nil
		}
		listCategories = func(_ context.Context, _ database.DB) ([]string, error) { return nil, nil }

		ctx, rec := newGetCtx(e, "/catalog")
		require.NoError(t, CatalogHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("query error", func(t *testing.T) {
		t.Cleanup(restore)
		listCatalog = func(_ context.Context, _ database.DB, _ store.CatalogFilter) ([]model.Product, int, error) {
			return nil, 0, errors.New("query")
		}

		ctx, rec := newGetCtx(e, "/catalog")
		require.NoError(t, CatalogHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestProductDetailHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		ctx, rec := newParamCtx(e, "/product/:id", "id", "x")
		require.NoError(t, ProductDetailHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		getProductByID = func(_ context.Context, _ database.DB, id int) (*model.Product, error) {
			require.Equal(t, 4, id)
			return &model.Product{ID: 4, Name: "laptop", IsActive: true, StockQuantity: 0}, nil
		}
		ctx, rec := newParamCtx(e, "/product/:id", "id", "4")
		require.NoError(t, ProductDetailHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"in_stock":false`)
	})
}
