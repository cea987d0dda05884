package main

import (
	_ "ytf/internal/selftest/faildemo"
	"ytf/unit"
)

func main() {
	unit.Run()
}
