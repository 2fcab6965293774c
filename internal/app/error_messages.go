// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// portal server handlers and middleware.
//
// All Msg* constants are the German message strings written into HTTP
// response bodies. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "Ungültige Eingabe"

	// MsgRequiredFieldMissing is returned when a required text field is blank.
	MsgRequiredFieldMissing = "Bitte alle Pflichtfelder ausfüllen"

	// MsgInvalidLoginPassword is returned when the email/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "E-Mail oder Passwort ist falsch"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a valid session.
	MsgNotAuthenticated = "Nicht angemeldet"

	// MsgSessionExpired is returned when the session token has expired or
	// the session was revoked.
	MsgSessionExpired = "Sitzung abgelaufen, bitte erneut anmelden"

	// MsgAccessDenied is returned when the user lacks the rights for an action.
	MsgAccessDenied = "Zugriff verweigert"

	// MsgWrongPassword is returned when the current password given on a
	// password change does not verify.
	MsgWrongPassword = "Aktuelles Passwort ist falsch"

	// MsgPasswordTooShort is returned when a new password is shorter than
	// the minimum length.
	MsgPasswordTooShort = "Das Passwort muss mindestens 6 Zeichen lang sein"

	// MsgNotFirstLogin is returned when the first-login password is set for
	// an account that already has its own password.
	MsgNotFirstLogin = "Das Passwort wurde bereits gesetzt"

	// MsgEmailAlreadyExists is returned when an email is already in use.
	MsgEmailAlreadyExists = "Diese E-Mail-Adresse wird bereits verwendet"

	// MsgUserNotFound is returned when the addressed user does not exist.
	MsgUserNotFound = "Benutzer nicht gefunden"

	// MsgDataNotFound is returned when the addressed record does not exist.
	MsgDataNotFound = "Eintrag nicht gefunden"

	// MsgUnknownDay is returned for a meal plan day outside Montag..Freitag.
	MsgUnknownDay = "Unbekannter Wochentag"

	// MsgInvalidVote is returned for a vote direction the list does not accept.
	MsgInvalidVote = "Ungültige Abstimmung"

	// MsgInvalidImage is returned when a profile picture is not a JPEG or
	// PNG data URI or is larger than 5 MB.
	MsgInvalidImage = "Ungültiges Bild (JPEG oder PNG, maximal 5 MB)"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Interner Serverfehler"

	// MsgMethodNotAllowed is returned for an unsupported HTTP method.
	MsgMethodNotAllowed = "Methode nicht erlaubt"
)
