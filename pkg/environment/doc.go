// Package environment names the environment the process runs in
// (development, staging, production) and carries it through
// context.Context.
//
// Parse normalizes names from configuration, resolving the short aliases
// "dev", "stage" and "prod". WithContext and FromContext attach and read the
// value; IsDevelopment, IsStaging and IsProduction query it.
//
// pkg/logger uses Parse to pick per-environment logging defaults.
//
// Missing values result in the zero value ("").
package environment
