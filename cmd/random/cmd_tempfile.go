package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var tempfileCmd = cmd{
	name:      "tempfile",
	shortHelp: "generates path to random temporary packages file",
	do:        generateTempfile,
}

func generateTempfile() {
	filename := random.ASCIIString(5, 8) + ".yaml"
	fmt.Print(filepath.Join(os.TempDir(), filename))
}
