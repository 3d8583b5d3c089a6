//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin = "bin/semogye-server"
	cliBin    = "bin/semogye"
)

// Build tidies deps, then compiles the server to ./bin/semogye-server.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building server binary...")
	return sh.Run("go", "build", "-o", serverBin, "./cmd/server")
}

// CLI compiles the command line calculator to ./bin/semogye.
func CLI() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building CLI binary...")
	return sh.Run("go", "build", "-o", cliBin, "./cmd/semogye")
}

// Run builds then executes the server binary.
func Run() error {
	mg.Deps(Build)
	fmt.Printf(">> Starting server on :%s ...\n", port())
	return sh.Run("./" + serverBin)
}

// Dev starts the server via go run with debug logging.
func Dev() error {
	fmt.Println(">> Dev mode: go run ./cmd/server ...")
	cmd := exec.Command("go", "run", "./cmd/server")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PORT="+port(), "LOG_LEVEL=debug")
	return cmd.Run()
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	db := os.Getenv("DB_PATH")
	if db == "" {
		db = "semogye.db"
	}
	return sh.Rm(db)
}

// Install installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Build, CLI)
	if err := sh.Run("go", "install", "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "install", "./cmd/semogye")
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
