package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"fintudo/cmd"

	_ "github.com/lib/pq"
)

func main() {
	fmt.Println(os.Getenv("commit_hash"))
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	port := 3009
	if p, err := strconv.Atoi(os.Getenv("FINTUDO_PORT")); err == nil {
		port = p
	}

	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}
