package noprint

import (
	"fmt"
	"log"
	"os"
)

func Convert(n int) string {
	fmt.Println(n)        // want `fmt.Println writes to stdout; use the zap logger`
	fmt.Printf("%d\n", n) // want `fmt.Printf writes to stdout; use the zap logger`
	log.Printf("%d", n)   // want `log.Printf bypasses structured logging; use the zap logger`
	log.Println(n)        // want `log.Println bypasses structured logging; use the zap logger`
	fmt.Fprintln(os.Stderr, n)
	return fmt.Sprintf("%d", n)
}

func Must(err error) {
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
