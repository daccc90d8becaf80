package main

import "github.com/orienta-pe/orienta_backend/cmd"

func main() {
	cmd.Execute()
}
