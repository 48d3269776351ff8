package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Post("/user/sign_out", authMiddleware.ThenFunc(app.userHandler.SignOut))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/user/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/user/:id", authMiddleware.ThenFunc(app.userHandler.DeleteUser))

	// Properties. Static segments are registered before /property/:id so pat
	// does not swallow them as ids.
	mux.Get("/property/search", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertiesDynamic))
	mux.Get("/property/pending", adminAuthMiddleware.ThenFunc(app.propertyHandler.GetNonApprovedProperties))
	mux.Get("/property/type/:type", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertiesByType))
	mux.Get("/property/location/:type/:city", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertiesByLocation))
	mux.Get("/property/user/:user_id", authMiddleware.ThenFunc(app.propertyHandler.GetPropertiesByUserID))
	mux.Post("/property", authMiddleware.ThenFunc(app.propertyHandler.CreateProperty))
	mux.Get("/property", standardMiddleware.ThenFunc(app.propertyHandler.GetApprovedProperties))
	mux.Get("/property/:id", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertyByID))
	mux.Put("/property/:id", authMiddleware.ThenFunc(app.propertyHandler.UpdateProperty))
	mux.Del("/property/:id", authMiddleware.ThenFunc(app.propertyHandler.DeleteProperty))
	mux.Put("/property/:id/approve", adminAuthMiddleware.ThenFunc(app.propertyHandler.ApproveProperty))

	// Listing media
	mux.Post("/property/:id/images", authMiddleware.ThenFunc(app.imageHandler.UploadPropertyImages))
	mux.Del("/images/:id", authMiddleware.ThenFunc(app.imageHandler.DeletePropertyImage))
	mux.Post("/property/:id/models", authMiddleware.ThenFunc(app.imageHandler.UploadPropertyModel))
	mux.Get("/property/:id/models", standardMiddleware.ThenFunc(app.propertyHandler.GetPropertyModels))
	mux.Del("/models/:id", authMiddleware.ThenFunc(app.imageHandler.DeletePropertyModel))

	// Inquiries
	mux.Post("/inquiry", authMiddleware.ThenFunc(app.inquiryHandler.CreateInquiry))
	mux.Get("/inquiry/property/:property_id", authMiddleware.ThenFunc(app.inquiryHandler.GetInquiriesByPropertyID))
	mux.Del("/inquiry/:id", adminAuthMiddleware.ThenFunc(app.inquiryHandler.DeleteInquiry))

	// Price prediction
	mux.Post("/predict", standardMiddleware.ThenFunc(app.predictionHandler.PredictPrice))

	return standardMiddleware.Then(mux)
}
