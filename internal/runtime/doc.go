// Package runtime provides the execution context for squill commands.
//
// It encapsulates shared dependencies needed by actions, such as the
// engine instance, logger, configuration, and project root path.
package runtime
