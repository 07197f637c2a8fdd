package main

import "github.com/apirek/plotutils/internal/cmd"

func main() {
	cmd.Execute()
}
