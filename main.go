package main

import "github.com/ValentinKolb/redis-udf/cmd"

func main() {
	cmd.Execute()
}
