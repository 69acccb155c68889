package routes

import (
	"time"

	"github.com/ahmadsvu/stationery-hub-frontend/app/controllers"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/adminsession"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/backend"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/cart"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/catalog"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/checkout"
	"github.com/ahmadsvu/stationery-hub-frontend/internal/probe"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ctx"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/middleware"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/router"
	"github.com/ahmadsvu/stationery-hub-frontend/pkg/ws"
)

// Deps are the wired services the API serves. internal/server.Wire builds
// the production set; tests build their own.
type Deps struct {
	Backend   *backend.Client
	Cart      *cart.Store
	Provider  *catalog.Provider
	Checkout  *checkout.Aggregator
	Sessions  *adminsession.Manager
	Prober    *probe.Prober
	StatusHub *ws.Hub
}

// RegisterAPI mounts the whole gateway surface.
func RegisterAPI(r *router.Router, d Deps) {
	catalogCtl := controllers.NewCatalogController(d.Provider)
	cartCtl := controllers.NewCartController(d.Cart)
	checkoutCtl := controllers.NewCheckoutController(d.Checkout)
	adminCtl := controllers.NewAdminController(d.Sessions, d.Backend)
	statusCtl := controllers.NewStatusController(d.Prober, d.StatusHub)

	r.Get("/healthz", "healthz", ctx.Wrap(statusCtl.Healthz))
	r.Get("/ws/status", "ws.status", ctx.Wrap(statusCtl.Stream))

	api := r.Group("/api")

	// Public storefront.
	api.Get("/products", "products.index", ctx.Wrap(catalogCtl.Products))
	api.Get("/products/{id}", "products.show", ctx.Wrap(catalogCtl.Product))
	api.Get("/categories", "categories.index", ctx.Wrap(catalogCtl.Categories))
	api.Get("/price-ranges", "priceranges.index", ctx.Wrap(catalogCtl.PriceRanges))
	api.Get("/blogs", "blogs.index", ctx.Wrap(catalogCtl.Blogs))
	api.Get("/status", "status.show", ctx.Wrap(statusCtl.Show))

	// Cart.
	cartGroup := api.Group("/cart")
	cartGroup.Get("", "cart.show", ctx.Wrap(cartCtl.Show))
	cartGroup.Delete("", "cart.clear", ctx.Wrap(cartCtl.Clear))
	cartGroup.Post("/items", "cart.add", ctx.Wrap(cartCtl.Add))
	cartGroup.Put("/items/{id}", "cart.update", ctx.Wrap(cartCtl.UpdateQuantity))
	cartGroup.Delete("/items/{id}", "cart.remove", ctx.Wrap(cartCtl.Remove))
	cartGroup.Post("/toggle", "cart.toggle", ctx.Wrap(cartCtl.Toggle))

	// Checkout.
	checkoutGroup := api.Group("/checkout")
	checkoutGroup.Get("/areas", "checkout.areas", ctx.Wrap(checkoutCtl.Areas))
	checkoutGroup.Get("/summary", "checkout.summary", ctx.Wrap(checkoutCtl.Summary))
	checkoutGroup.Post("", "checkout.submit", ctx.Wrap(checkoutCtl.Submit))

	// Admin. The login endpoint is rate limited; everything else requires
	// a valid session.
	admin := api.Group("/admin")
	admin.Post("/login", "admin.login", ctx.Wrap(adminCtl.Login), middleware.RateLimit(10, time.Minute))

	protected := admin.Group("", middleware.AdminGuard(d.Sessions))
	protected.Post("/logout", "admin.logout", ctx.Wrap(adminCtl.Logout))
	protected.Get("/whoami", "admin.whoami", ctx.Wrap(adminCtl.Whoami))
	protected.Put("/password", "admin.password", ctx.Wrap(adminCtl.ChangePassword))

	protected.Post("/products", "admin.products.create", ctx.Wrap(adminCtl.AddProduct))
	protected.Put("/products/{id}", "admin.products.update", ctx.Wrap(adminCtl.UpdateProduct))
	protected.Delete("/products/{id}", "admin.products.delete", ctx.Wrap(adminCtl.DeleteProduct))

	protected.Post("/blogs", "admin.blogs.create", ctx.Wrap(adminCtl.AddBlog))
	protected.Put("/blogs/{id}", "admin.blogs.update", ctx.Wrap(adminCtl.UpdateBlog))
	protected.Delete("/blogs/{id}", "admin.blogs.delete", ctx.Wrap(adminCtl.DeleteBlog))

	protected.Get("/orders", "admin.orders.index", ctx.Wrap(adminCtl.Orders))
	protected.Get("/orders/{id}", "admin.orders.show", ctx.Wrap(adminCtl.Order))
}
