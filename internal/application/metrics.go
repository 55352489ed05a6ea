package application

import "expvar"

// Published on /api/debug/vars when debug metrics are enabled.
var (
	registrationsTotal    = expvar.NewInt("auth_registrations_total")
	loginsTotal           = expvar.NewInt("auth_logins_total")
	loginFailuresTotal    = expvar.NewInt("auth_login_failures_total")
	questionsCreatedTotal = expvar.NewInt("questions_created_total")
)
