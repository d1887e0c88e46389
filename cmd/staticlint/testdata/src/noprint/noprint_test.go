package noprint

import "fmt"

func ExampleConvert() {
	fmt.Println(Convert(1))
}
