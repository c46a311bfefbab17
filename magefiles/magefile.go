//go:build mage

// Package main provides build targets for the zelopet project using Mage.
//
// Usage:
//
//	mage build    Compile zelopet binary to bin/
//	mage test     Run all tests
//	mage cover    Run tests with coverage report
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install zelopet to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/sh"
)

const (
	binaryName = "zelopet"
	binaryDir  = "bin"
	cmdDir     = "./cmd/zelopet"
)

// Build compiles the zelopet binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs tests with a coverage summary.
func Cover() error {
	if err := sh.RunV("go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func=coverage.out")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

// Install installs the zelopet binary to GOPATH/bin.
func Install() error {
	return sh.RunV("go", "install", cmdDir)
}
