// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-recipe-keeper server handlers and the command-line client.
//
// All Msg* constants are the user-facing strings written into HTTP response
// bodies. Log entries stay in English; these are shown to API users.
package app

const (
	// MsgMissingData is returned when registration or login lacks a field.
	MsgMissingData = "Faltan datos"

	// MsgEmailTooLong and MsgPasswordTooLong reject registrations that could
	// not be stored.
	MsgEmailTooLong    = "El email es demasiado largo"
	MsgPasswordTooLong = "La contraseña no puede superar los 72 bytes"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "El cuerpo de la petición no es un JSON válido"

	// MsgUserCreated confirms a registration.
	MsgUserCreated = "El usuario se creo correctamente"

	// MsgUserAlreadyExists is returned when the email is already registered.
	MsgUserAlreadyExists = "Ese usuario ya existe"

	// MsgWrongCredentials is returned for an unknown email or a wrong password.
	MsgWrongCredentials = "Credenciales incorrectas"

	// MsgRecipeFieldsRequired is returned when a new recipe lacks title,
	// ingredients or instructions.
	MsgRecipeFieldsRequired = "El título, los ingredientes y las instrucciones son obligatorios"

	// MsgMissingRequiredFields is returned when an update lacks a required field.
	MsgMissingRequiredFields = "Faltan campos obligatorios"

	MsgRecipeCreated = "Receta creada exitosamente"
	MsgRecipeUpdated = "Receta actualizada correctamente"
	MsgRecipeDeleted = "Receta eliminada correctamente"

	// MsgRecipeNotFound is returned when no recipe has the requested id.
	MsgRecipeNotFound = "Esa receta no existe"

	MsgNoPermissionToModify = "No tienes permiso para modificar esta receta"
	MsgNoPermissionToDelete = "No tienes permiso para eliminar esta receta"

	// MsgNoRecipesYet is the body of an empty own-recipes listing.
	MsgNoRecipesYet = "Aún no has creado ninguna receta"

	// MsgMissingToken is returned when a protected route is called without
	// an Authorization header.
	MsgMissingToken = "Falta el token de autorización"

	// MsgTokenExpired is returned when the bearer token is past its expiry.
	MsgTokenExpired = "El token ha expirado"

	// MsgTokenInvalid is returned when the bearer token cannot be verified.
	MsgTokenInvalid = "Token inválido"

	// MsgUnknownTokenUser is returned when a valid token names a user that
	// no longer exists.
	MsgUnknownTokenUser = "El usuario del token no existe"

	// MsgInternalServerError hides unexpected failures; details go to the log.
	MsgInternalServerError = "Error interno del servidor"

	MsgNotFound         = "Recurso no encontrado"
	MsgMethodNotAllowed = "Método no permitido"
)
