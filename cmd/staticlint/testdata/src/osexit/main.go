package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2)
}

func main() {
	fmt.Println("starting")
	defer helper()
	os.Exit(1) // want "avoid direct os.Exit call in main function of main package"
}
