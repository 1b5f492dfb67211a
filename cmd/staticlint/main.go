// Command staticlint is the vet tool run over ftracker sources:
//
//	go build -o bin/staticlint ./cmd/staticlint
//	go vet -vettool=bin/staticlint ./...
package main

//go:generate go build -o=../../bin/staticlint

import (
	"golang.org/x/tools/go/analysis/unitchecker"
)

func main() {
	unitchecker.Main(analyzers()...)
}
