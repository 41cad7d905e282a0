/*
Copyright © 2026 The saffron-lang authors
*/
package main

import "github.com/saffron-lang/sid/cmd"

func main() {
	cmd.Execute()
}
