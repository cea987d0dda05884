package main

import (
	_ "ytf/internal/selftest"
	"ytf/unit"
)

func main() {
	unit.Run()
}
