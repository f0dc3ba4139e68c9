// Package config manages squill project configuration.
//
// It handles:
//   - Locating the project root from any directory inside it
//   - Reading and writing the project configuration file
//   - Environment overrides for the repository path and log settings
package config
