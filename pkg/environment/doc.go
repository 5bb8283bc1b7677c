// Package environment defines the deployment stages the application knows
// about and carries the active one through request contexts.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	router.Use(environment.Middleware(env))
package environment
