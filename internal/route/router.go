package router

import (
	"travel-booking-service/internal/module/booking/handler"
	"travel-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1", m.ValidateToken)
	v1.Get("/bookings", handlerBooking.ShowBookings)

	tours := v1.Group("/tours")
	tours.Post("/bookings", handlerBooking.CreateTourBooking)
	tours.Post("/bookings/quote", handlerBooking.QuoteTourBooking)
	tours.Get("/bookings/:id", handlerBooking.GetTourBooking)
	tours.Patch("/bookings/:id", handlerBooking.UpdateTourBooking)
	tours.Post("/bookings/:id/reschedule", handlerBooking.RescheduleTourBooking)
	tours.Post("/bookings/:id/cancel", handlerBooking.CancelTourBooking)
	tours.Get("/bookings/:id/voucher", handlerBooking.DownloadTourVoucher)
	tours.Get("/schedules/:id/availability", handlerBooking.CheckTourAvailability)

	vehicles := v1.Group("/vehicles")
	vehicles.Post("/bookings", handlerBooking.CreateVehicleBooking)
	vehicles.Post("/bookings/quote", handlerBooking.QuoteVehicleBooking)
	vehicles.Get("/bookings/:id", handlerBooking.GetVehicleBooking)
	vehicles.Patch("/bookings/:id", handlerBooking.UpdateVehicleBooking)
	vehicles.Post("/bookings/:id/cancel", handlerBooking.CancelVehicleBooking)
	vehicles.Get("/bookings/:id/voucher", handlerBooking.DownloadVehicleVoucher)
	vehicles.Get("/:id/availability", handlerBooking.CheckVehicleAvailability)

	admin := v1.Group("/admin", m.RequireAdmin)
	admin.Patch("/tours/bookings/:id/status", handlerBooking.SetTourBookingStatus)
	admin.Patch("/vehicles/bookings/:id/status", handlerBooking.SetVehicleBookingStatus)
	admin.Post("/tours/schedules/reconcile", handlerBooking.ReconcileSchedules)

	return app

}
