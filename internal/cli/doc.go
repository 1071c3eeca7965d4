// Package cli provides command-line interface setup and configuration
// for the g2p application. It handles flag parsing, command creation,
// configuration management using cobra and viper, and runs the
// requested conversions.
package cli
