package routes

import (
	"github.com/Estefano-cmd/impulsoApi/api/handlers"
	"github.com/Estefano-cmd/impulsoApi/config"
	"github.com/Estefano-cmd/impulsoApi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes sets up all the routes for the server
func SetupRoutes(r *gin.Engine, svc *service.Services, cfg *config.Config, log *logrus.Logger) {
	r.GET("/health", handlers.HealthCheck)

	authHandler := handlers.NewAuthHandler(svc.Auth, log)
	r.POST("/auth/login", authHandler.Login)

	// Route CRUD and user assignments. The user routes share the :id
	// segment, which there names the user.
	routeHandler := handlers.NewRouteHandler(svc.Routes, cfg.Routes.DetailMode, log)
	routes := r.Group("/routes")
	{
		routes.POST("", routeHandler.CreateRoute)
		routes.GET("", routeHandler.ListRoutes)
		routes.GET("/:id", routeHandler.GetRoute)
		routes.PUT("/:id", routeHandler.UpdateRoute)
		routes.DELETE("/:id", routeHandler.DeleteRoute)

		routes.POST("/:id/routes", routeHandler.AssignRouteToUser)
		routes.GET("/:id/routes/detail", routeHandler.GetRouteDetail)
		routes.DELETE("/:id/routes/:id_route", routeHandler.RemoveRouteFromUser)

		routes.POST("/:id/uvs", routeHandler.AddUVToRoute)
		routes.DELETE("/:id/uvs/:id_uv", routeHandler.RemoveUVFromRoute)
	}

	uvs := r.Group("/uvs")
	{
		uvs.POST("", routeHandler.CreateUV)
		uvs.GET("", routeHandler.ListUVs)
	}

	saleHandler := handlers.NewSaleHandler(svc.Sales, log)
	sales := r.Group("/sales")
	{
		sales.POST("", saleHandler.CreateSale)
		sales.GET("", saleHandler.ListSales)
		sales.GET("/:id", saleHandler.GetSale)
		sales.PATCH("/:id", saleHandler.UpdateSale)
		sales.DELETE("/:id", saleHandler.DeleteSale)
		sales.GET("/route/:id_route", saleHandler.GetSalesByRoute)
		sales.GET("/user/:id_user", saleHandler.GetSalesByUser)
	}

	saleDetails := r.Group("/sale-details")
	{
		saleDetails.POST("", saleHandler.CreateSaleDetail)
		saleDetails.GET("", saleHandler.ListSaleDetails)
		saleDetails.GET("/:id", saleHandler.GetSaleDetail)
		saleDetails.PUT("/:id", saleHandler.UpdateSaleDetail)
		saleDetails.DELETE("/:id", saleHandler.DeleteSaleDetail)
	}

	customerHandler := handlers.NewCustomerHandler(svc.Customers, log)
	customers := r.Group("/customers")
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.PATCH("/:id", customerHandler.UpdateCustomer)
		customers.DELETE("/:id", customerHandler.DeleteCustomer)
		customers.GET("/route/:id_route", customerHandler.GetCustomersByRoute)
	}

	userHandler := handlers.NewUserHandler(svc.Users, log)
	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	roleHandler := handlers.NewRoleHandler(svc.Roles, log)
	roles := r.Group("/roles")
	{
		roles.POST("", roleHandler.CreateRole)
		roles.GET("", roleHandler.ListRoles)
		roles.GET("/:id", roleHandler.GetRole)
		roles.PUT("/:id", roleHandler.UpdateRole)
		roles.DELETE("/:id", roleHandler.DeleteRole)
	}

	productHandler := handlers.NewProductHandler(svc.Products, log)
	products := r.Group("/products")
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}
}
