// Copyright (C) 2025 DocuMedic (tactualcoder24@gmail.com)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TactualCoder24/final-documedic--sub000/services/webapp/handlers"
)

func SetupRoutes(router *gin.Engine, deps *handlers.Deps) {
	router.GET("/health", handlers.Health())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1 group
	v1 := router.Group("/v1")
	{
		v1.GET("/notifications/ws", handlers.NotificationsWS(deps))
		v1.GET("/community/posts", handlers.ListCommunityPosts(deps))
		v1.POST("/community/posts", handlers.AddCommunityPost(deps))
		v1.GET("/care-locations", handlers.ListCareLocations(deps))

		users := v1.Group("/users/:userId")
		{
			users.GET("", handlers.GetUser(deps))
			users.GET("/profile", handlers.GetProfile(deps))
			users.PUT("/profile", handlers.UpdateProfile(deps))

			users.GET("/records", handlers.ListRecords(deps))
			users.POST("/records", handlers.AddRecord(deps))
			users.PUT("/records/:id", handlers.UpdateRecord(deps))
			users.DELETE("/records/:id", handlers.DeleteRecord(deps))

			meds := users.Group("/medications")
			{
				meds.GET("", handlers.ListMedications(deps))
				meds.GET("/active", handlers.ListActiveMedications(deps))
				// New medications go through the staged interaction check;
				// there is no direct-add route.
				meds.POST("/staged", handlers.SubmitMedication(deps))
				meds.GET("/staged", handlers.MedicationCheckStatus(deps))
				meds.POST("/staged/confirm", handlers.ConfirmMedication(deps))
				meds.POST("/staged/cancel", handlers.CancelMedication(deps))
				meds.PUT("/:id", handlers.UpdateMedication(deps))
				meds.DELETE("/:id", handlers.DeleteMedication(deps))
				meds.PUT("/:id/taken", handlers.SetMedicationTaken(deps))
			}

			users.GET("/reminders", handlers.ListReminders(deps))
			users.POST("/reminders", handlers.AddReminder(deps))
			users.PUT("/reminders/:id", handlers.UpdateReminder(deps))
			users.DELETE("/reminders/:id", handlers.DeleteReminder(deps))

			users.GET("/appointments", handlers.ListAppointments(deps))
			users.POST("/appointments", handlers.AddAppointment(deps))
			users.PUT("/appointments/:id", handlers.UpdateAppointment(deps))
			users.DELETE("/appointments/:id", handlers.DeleteAppointment(deps))

			users.GET("/symptoms", handlers.ListSymptoms(deps))
			users.POST("/symptoms", handlers.AddSymptom(deps))
			users.DELETE("/symptoms/:id", handlers.DeleteSymptom(deps))

			users.GET("/vitals", handlers.ListVitals(deps))
			users.POST("/vitals", handlers.AddVital(deps))

			users.GET("/food-logs", handlers.ListFoodLogs(deps))
			users.POST("/food-logs", handlers.AddFoodLog(deps))
			users.DELETE("/food-logs/:id", handlers.DeleteFoodLog(deps))
			users.PUT("/water-intake", handlers.SetWaterIntake(deps))

			users.GET("/allergies", handlers.ListAllergies(deps))
			users.POST("/allergies", handlers.AddAllergy(deps))
			users.DELETE("/allergies/:id", handlers.DeleteAllergy(deps))

			users.GET("/immunizations", handlers.ListImmunizations(deps))
			users.POST("/immunizations", handlers.AddImmunization(deps))

			users.GET("/care-plans", handlers.ListCarePlans(deps))
			users.POST("/care-plans", handlers.AddCarePlan(deps))
			users.PUT("/care-plans/:id", handlers.UpdateCarePlan(deps))

			users.GET("/notifications/permission", handlers.GetNotificationPermission(deps))
			users.PUT("/notifications/permission", handlers.SetNotificationPermission(deps))
		}
	}
}
