// Command printfmt formats its arguments with a C99 printf template.
//
//	printfmt -e '%-8s|%05.1f|%#x\n' name 3.14159 255
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
