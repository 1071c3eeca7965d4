//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "g2p"

// Default target to run when none is specified
var Default = Build

// Build compiles the g2p binary
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-o", binary, "./cmd/g2p")
}

// Test runs all package tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs g2p into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/g2p")
}

// Clean removes build artifacts
func Clean() error {
	return os.RemoveAll(binary)
}
